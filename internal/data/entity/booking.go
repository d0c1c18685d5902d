package entity

import (
	"time"

	"facility-booking/internal/scheduling"

	"github.com/google/uuid"
)

type Booking struct {
	Base
	UserID     uuid.UUID         `db:"user_id"`
	FacilityID uuid.UUID         `db:"facility_id"`
	StartTime  time.Time         `db:"start_time"`
	EndTime    time.Time         `db:"end_time"`
	Status     scheduling.Status `db:"status"`
	TotalPrice float64           `db:"total_price"`
	Notes      string            `db:"notes"`
}

// BookingDetail is a booking row joined with the display names the staff
// views search over.
type BookingDetail struct {
	Booking
	UserName     string `db:"username"`
	FacilityName string `db:"facility_name"`
}

// Interval returns the booking's occupied time as an engine interval.
func (b *Booking) Interval() scheduling.Interval {
	return scheduling.Interval{Start: b.StartTime, End: b.EndTime}
}
