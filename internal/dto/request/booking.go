package request

import "time"

type CreateBookingRequest struct {
	FacilityID string    `json:"facilityId" validate:"required,uuid4"`
	StartTime  time.Time `json:"startTime" validate:"required"`
	EndTime    time.Time `json:"endTime" validate:"required"`
	Notes      string    `json:"notes"`
}

type BlockSlotRequest struct {
	FacilityID string    `json:"facilityId" validate:"required,uuid4"`
	StartTime  time.Time `json:"startTime" validate:"required"`
	EndTime    time.Time `json:"endTime" validate:"required"`
	Reason     string    `json:"reason"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListBookingsQuery carries the staff dashboard filters. Empty fields
// impose no constraint.
type ListBookingsQuery struct {
	Status     string
	FacilityID string
	Search     string
	StartDate  string
	EndDate    string
}
