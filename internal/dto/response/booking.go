package response

import (
	"time"

	"facility-booking/internal/scheduling"
)

type BookingResponse struct {
	ID           string            `json:"id"`
	UserID       string            `json:"userId"`
	UserName     string            `json:"userName,omitempty"`
	FacilityID   string            `json:"facilityId"`
	FacilityName string            `json:"facilityName,omitempty"`
	StartTime    time.Time         `json:"startTime"`
	EndTime      time.Time         `json:"endTime"`
	Status       scheduling.Status `json:"status"`
	TotalPrice   float64           `json:"totalPrice"`
	Notes        string            `json:"notes,omitempty"`
	IsBlocked    bool              `json:"isBlocked"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// BookingListResponse is the staff dashboard payload: the filtered rows
// plus the status tally over them.
type BookingListResponse struct {
	Data    []BookingResponse  `json:"data"`
	Summary scheduling.Summary `json:"summary"`
}

type SlotResponse struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	IsBooked  bool      `json:"isBooked"`
}

type AvailabilityResponse struct {
	FacilityID string         `json:"facilityId"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

// Helper converters

func BookingToResponse(b *scheduling.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID.String(),
		UserID:     b.UserID.String(),
		FacilityID: b.FacilityID.String(),
		StartTime:  b.Interval.Start,
		EndTime:    b.Interval.End,
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
		Notes:      b.Notes,
		IsBlocked:  b.IsBlocked(),
		CreatedAt:  b.CreatedAt,
	}
}

func RecordToResponse(rec scheduling.Record) BookingResponse {
	resp := BookingToResponse(&rec.Booking)
	resp.UserName = rec.UserName
	resp.FacilityName = rec.FacilityName
	return resp
}

func SlotsToResponse(slots []scheduling.Slot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, slot := range slots {
		out[i] = SlotResponse{
			StartTime: slot.Interval.Start,
			EndTime:   slot.Interval.End,
			IsBooked:  slot.IsBooked,
		}
	}
	return out
}
