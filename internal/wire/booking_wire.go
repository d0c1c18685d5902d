package wire

import (
	"facility-booking/internal/adaptor"
	"facility-booking/internal/data/repository"
	"facility-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Availability lookups need no account so guests can check before registering
	r.Get("/api/bookings/facility/{id}/availability", bookingHandler.GetFacilityAvailability)
	r.Get("/api/bookings/facility/{id}/range", bookingHandler.GetFacilityBookingsInRange)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - create a pending booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings/my - caller's booking history
		r.Get("/api/bookings/my", bookingHandler.GetMyBookings)

		// GET /api/bookings/{id} - owner or staff
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

		// DELETE /api/bookings/{id} - cancel, subject to lifecycle rules
		r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)
	})

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		// GET /api/bookings - filtered dashboard listing with summary
		r.Get("/api/bookings", bookingHandler.ListBookings)

		// PUT /api/bookings/{id}/status - confirm/complete/cancel
		r.Put("/api/bookings/{id}/status", bookingHandler.UpdateBookingStatus)

		// POST /api/bookings/block - reserve a slot for maintenance
		r.Post("/api/bookings/block", bookingHandler.BlockSlot)
	})
}
