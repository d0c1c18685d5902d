package wire

import (
	"facility-booking/internal/adaptor"
	"facility-booking/internal/data/repository"
	"facility-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFacility(
	r chi.Router,
	facilityHandler *adaptor.FacilityHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Members browse only facilities marked available
	r.Get("/api/facilities/public", facilityHandler.GetPublicFacilities)
	r.Get("/api/facilities/public/{id}", facilityHandler.GetPublicFacilityByID)

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		// GET /api/facilities - full catalog including unavailable ones
		r.Get("/api/facilities", facilityHandler.GetAllFacilities)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/facilities", facilityHandler.CreateFacility)
		r.Put("/api/facilities/{id}", facilityHandler.UpdateFacility)
		r.Delete("/api/facilities/{id}", facilityHandler.DeleteFacility)
	})
}
