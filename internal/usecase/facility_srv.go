package usecase

import (
	"context"
	"fmt"
	"time"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/data/repository"
	"facility-booking/internal/dto/request"
	"facility-booking/internal/dto/response"
	"facility-booking/internal/scheduling"
	"facility-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FacilityService interface {
	GetPublicFacilities(ctx context.Context) ([]response.FacilityResponse, error)
	GetFacilityByID(ctx context.Context, facilityID string) (*response.FacilityResponse, error)
	GetAllFacilities(ctx context.Context) ([]response.FacilityResponse, error)
	CreateFacility(ctx context.Context, req *request.FacilityRequest) (*response.FacilityResponse, error)
	UpdateFacility(ctx context.Context, facilityID string, req *request.FacilityRequest) (*response.FacilityResponse, error)
	DeleteFacility(ctx context.Context, facilityID string) error
}

type facilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFacilityService(repo *repository.Repository, log *zap.Logger) FacilityService {
	return &facilityService{
		repo: repo,
		log:  log.With(zap.String("service", "facility")),
	}
}

func (s *facilityService) GetPublicFacilities(ctx context.Context) ([]response.FacilityResponse, error) {
	facilities, err := s.repo.Facility.FindAvailable(ctx)
	if err != nil {
		s.log.Error("Failed to get public facilities", zap.Error(err))
		return nil, fmt.Errorf("get public facilities: %w", err)
	}

	return toFacilityResponses(facilities), nil
}

func (s *facilityService) GetFacilityByID(ctx context.Context, facilityID string) (*response.FacilityResponse, error) {
	id, err := uuid.Parse(facilityID)
	if err != nil {
		return nil, fmt.Errorf("invalid facility ID format %s: %w", facilityID, err)
	}

	facility, err := s.repo.Facility.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find facility: %w", err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility %s: %w", facilityID, scheduling.ErrNotFound)
	}

	resp := response.FacilityToResponse(facility)
	return &resp, nil
}

func (s *facilityService) GetAllFacilities(ctx context.Context) ([]response.FacilityResponse, error) {
	facilities, err := s.repo.Facility.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get facilities", zap.Error(err))
		return nil, fmt.Errorf("get facilities: %w", err)
	}

	return toFacilityResponses(facilities), nil
}

func (s *facilityService) CreateFacility(ctx context.Context, req *request.FacilityRequest) (*response.FacilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create facility validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	facility := &entity.Facility{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Capacity:    req.Capacity,
		HourlyRate:  req.HourlyRate,
		IsAvailable: req.IsAvailable,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Facility.Create(ctx, facility); err != nil {
		s.log.Error("Failed to create facility", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create facility: %w", err)
	}

	s.log.Info("Facility created",
		zap.String("facility_id", facility.ID.String()),
		zap.String("name", facility.Name))

	resp := response.FacilityToResponse(facility)
	return &resp, nil
}

func (s *facilityService) UpdateFacility(ctx context.Context, facilityID string, req *request.FacilityRequest) (*response.FacilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update facility validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(facilityID)
	if err != nil {
		return nil, fmt.Errorf("invalid facility ID format %s: %w", facilityID, err)
	}

	facility, err := s.repo.Facility.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find facility: %w", err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility %s: %w", facilityID, scheduling.ErrNotFound)
	}

	facility.Name = req.Name
	facility.Description = req.Description
	facility.Type = req.Type
	facility.Capacity = req.Capacity
	facility.HourlyRate = req.HourlyRate
	facility.IsAvailable = req.IsAvailable
	facility.ImageURL = req.ImageURL
	facility.UpdatedAt = time.Now()

	if err := s.repo.Facility.Update(ctx, facility); err != nil {
		s.log.Error("Failed to update facility", zap.Error(err), zap.String("facility_id", facilityID))
		return nil, fmt.Errorf("update facility: %w", err)
	}

	s.log.Info("Facility updated", zap.String("facility_id", facilityID))

	resp := response.FacilityToResponse(facility)
	return &resp, nil
}

func (s *facilityService) DeleteFacility(ctx context.Context, facilityID string) error {
	id, err := uuid.Parse(facilityID)
	if err != nil {
		return fmt.Errorf("invalid facility ID format %s: %w", facilityID, err)
	}

	if err := s.repo.Facility.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete facility", zap.Error(err), zap.String("facility_id", facilityID))
		return fmt.Errorf("delete facility: %w", err)
	}

	return nil
}

func toFacilityResponses(facilities []*entity.Facility) []response.FacilityResponse {
	out := make([]response.FacilityResponse, len(facilities))
	for i, facility := range facilities {
		out[i] = response.FacilityToResponse(facility)
	}
	return out
}
