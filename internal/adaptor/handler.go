package adaptor

import (
	"context"

	"facility-booking/internal/scheduling"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Facility *FacilityHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Facility: NewFacilityHandler(service.Facility, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}

// actorFromContext rebuilds the caller identity stored by the auth middleware.
func actorFromContext(ctx context.Context) (scheduling.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return scheduling.Actor{}, false
	}

	actor := scheduling.Actor{ID: userID}
	if role, ok := utils.GetRoleFromContext(ctx); ok {
		actor.Roles = []scheduling.Role{scheduling.Role(role)}
	}

	return actor, true
}
