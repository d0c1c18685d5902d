package usecase

import (
	"facility-booking/internal/data/repository"
	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Facility FacilityService
	Booking  BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Facility: NewFacilityService(repo, log),
		Booking:  NewBookingService(repo, config, log),
	}
}
