package response

import (
	"time"

	"facility-booking/internal/data/entity"
)

type FacilityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
	HourlyRate  float64   `json:"hourlyRate"`
	IsAvailable bool      `json:"isAvailable"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FacilityToResponse(facility *entity.Facility) FacilityResponse {
	return FacilityResponse{
		ID:          facility.ID.String(),
		Name:        facility.Name,
		Description: facility.Description,
		Type:        facility.Type,
		Capacity:    facility.Capacity,
		HourlyRate:  facility.HourlyRate,
		IsAvailable: facility.IsAvailable,
		ImageURL:    facility.ImageURL,
		CreatedAt:   facility.CreatedAt,
	}
}
