package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"facility-booking/internal/dto/request"
	"facility-booking/internal/scheduling"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), actor, &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetMyBookings handles GET /api/bookings/my (protected)
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.GetMyBookings(r.Context(), actor)
	if err != nil {
		h.handleServiceError(w, err, "get my bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id} (owner or staff)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), actor, bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles DELETE /api/bookings/{id} (owner or staff)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), actor, bookingID); err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetFacilityAvailability handles GET /api/bookings/facility/{id}/availability?date= (public)
func (h *BookingHandler) GetFacilityAvailability(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "id")
	if facilityID == "" {
		utils.ResponseBadRequest(w, "Facility ID is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query parameter is required (YYYY-MM-DD)", nil)
		return
	}

	availability, err := h.service.GetFacilityAvailability(r.Context(), facilityID, date)
	if err != nil {
		h.handleServiceError(w, err, "get facility availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// GetFacilityBookingsInRange handles GET /api/bookings/facility/{id}/range?start=&end= (public)
func (h *BookingHandler) GetFacilityBookingsInRange(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "id")
	if facilityID == "" {
		utils.ResponseBadRequest(w, "Facility ID is required", nil)
		return
	}

	start, err := parseTimeParam(r.URL.Query().Get("start"))
	if err != nil {
		utils.ResponseBadRequest(w, "start query parameter is required (RFC 3339 or YYYY-MM-DD)", nil)
		return
	}

	end, err := parseTimeParam(r.URL.Query().Get("end"))
	if err != nil {
		utils.ResponseBadRequest(w, "end query parameter is required (RFC 3339 or YYYY-MM-DD)", nil)
		return
	}

	bookings, err := h.service.GetFacilityBookingsInRange(r.Context(), facilityID, start, end)
	if err != nil {
		h.handleServiceError(w, err, "get facility bookings in range")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ==================== STAFF METHODS ====================

// ListBookings handles GET /api/bookings (staff)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListBookingsQuery{
		Status:     query.Get("status"),
		FacilityID: query.Get("facility_id"),
		Search:     query.Get("search"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
	}

	bookings, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateBookingStatus handles PUT /api/bookings/{id}/status (staff)
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.TransitionBooking(r.Context(), actor, bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// BlockSlot handles POST /api/bookings/block (staff)
func (h *BookingHandler) BlockSlot(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.BlockSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.BlockSlot(r.Context(), actor, &req)
	if err != nil {
		h.handleServiceError(w, err, "block slot")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// handleServiceError maps engine sentinel errors to response codes. String
// matching remains only for errors that have no sentinel.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, scheduling.ErrSlotUnavailable),
		errors.Is(err, scheduling.ErrFacilityUnavailable):
		h.log.Warn(operation+" failed - slot conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, scheduling.ErrInvalidInterval),
		errors.Is(err, scheduling.ErrInvalidTransition):
		h.log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not authorized"):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func parseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
