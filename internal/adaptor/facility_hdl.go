package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"facility-booking/internal/dto/request"
	"facility-booking/internal/scheduling"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FacilityHandler struct {
	service usecase.FacilityService
	log     *zap.Logger
}

func NewFacilityHandler(service usecase.FacilityService, log *zap.Logger) *FacilityHandler {
	return &FacilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "facility")),
	}
}

// GetPublicFacilities handles GET /api/facilities/public (public)
func (h *FacilityHandler) GetPublicFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.service.GetPublicFacilities(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get public facilities")
		return
	}

	utils.ResponseSuccess(w, "success", facilities)
}

// GetPublicFacilityByID handles GET /api/facilities/public/{id} (public)
func (h *FacilityHandler) GetPublicFacilityByID(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "id")
	if facilityID == "" {
		utils.ResponseBadRequest(w, "Facility ID is required", nil)
		return
	}

	facility, err := h.service.GetFacilityByID(r.Context(), facilityID)
	if err != nil {
		h.handleServiceError(w, err, "get facility by ID")
		return
	}

	utils.ResponseSuccess(w, "success", facility)
}

// ==================== STAFF / ADMIN METHODS ====================

// GetAllFacilities handles GET /api/facilities (staff)
func (h *FacilityHandler) GetAllFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.service.GetAllFacilities(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get all facilities")
		return
	}

	utils.ResponseSuccess(w, "success", facilities)
}

// CreateFacility handles POST /api/facilities (admin)
func (h *FacilityHandler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req request.FacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	facility, err := h.service.CreateFacility(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create facility")
		return
	}

	utils.ResponseCreated(w, "success", facility)
}

// UpdateFacility handles PUT /api/facilities/{id} (admin)
func (h *FacilityHandler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "id")
	if facilityID == "" {
		utils.ResponseBadRequest(w, "Facility ID is required", nil)
		return
	}

	var req request.FacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	facility, err := h.service.UpdateFacility(r.Context(), facilityID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update facility")
		return
	}

	utils.ResponseSuccess(w, "success", facility)
}

// DeleteFacility handles DELETE /api/facilities/{id} (admin)
func (h *FacilityHandler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "id")
	if facilityID == "" {
		utils.ResponseBadRequest(w, "Facility ID is required", nil)
		return
	}

	if err := h.service.DeleteFacility(r.Context(), facilityID); err != nil {
		h.handleServiceError(w, err, "delete facility")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *FacilityHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
