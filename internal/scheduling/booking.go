package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlockedSlotMarker prefixes the notes of staff-created administrative
// blocks. The persisted format is frozen; IsBlocked centralizes the check.
const BlockedSlotMarker = "Blocked slot"

// Facility is the collaborator record the engine consumes. The catalog
// itself (name, capacity, description) is owned elsewhere.
type Facility struct {
	ID          uuid.UUID
	HourlyRate  float64
	IsAvailable bool
}

// Booking is the plain record the engine creates and mutates. Persistence
// and transport live outside this package.
type Booking struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	UserID     uuid.UUID
	Interval   Interval
	Status     Status
	TotalPrice float64
	Notes      string
	CreatedAt  time.Time
}

func (b *Booking) IsBlocked() bool {
	return strings.HasPrefix(b.Notes, BlockedSlotMarker)
}

// ComputePrice derives the total from the facility rate and the interval
// duration in fractional hours. Computed once at creation, never recomputed
// on status change.
func ComputePrice(hourlyRate float64, iv Interval) float64 {
	return hourlyRate * iv.Hours()
}

// NewBooking runs the creation gate: the facility must be bookable, the
// interval valid, and the candidate free of conflicts against the supplied
// active intervals. On success the booking starts in pending with its price
// fixed. No partial effects on failure.
//
// Conflict checking here is only the decision function; the caller must
// serialize check-then-insert per facility to uphold the non-overlap
// invariant under concurrent requests.
func NewBooking(actor Actor, facility Facility, iv Interval, notes string, existing []Interval) (*Booking, error) {
	if !facility.IsAvailable {
		return nil, fmt.Errorf("facility %s: %w", facility.ID, ErrFacilityUnavailable)
	}

	if err := iv.Validate(); err != nil {
		return nil, err
	}

	if HasConflict(iv, existing) {
		return nil, fmt.Errorf("facility %s: %w", facility.ID, ErrSlotUnavailable)
	}

	return &Booking{
		ID:         uuid.New(),
		FacilityID: facility.ID,
		UserID:     actor.ID,
		Interval:   iv,
		Status:     StatusPending,
		TotalPrice: ComputePrice(facility.HourlyRate, iv),
		Notes:      notes,
		CreatedAt:  time.Now(),
	}, nil
}

// BlockSlot is the staff-only composite operation: create a booking carrying
// the blocked-slot notes marker, then immediately confirm it through the
// lifecycle machine. A non-privileged actor fails the confirmation step with
// ErrInvalidTransition; other failure modes match normal creation.
func BlockSlot(actor Actor, facility Facility, iv Interval, reason string, existing []Interval) (*Booking, error) {
	notes := BlockedSlotMarker
	if reason != "" {
		notes = fmt.Sprintf("%s: %s", BlockedSlotMarker, reason)
	}

	booking, err := NewBooking(actor, facility, iv, notes, existing)
	if err != nil {
		return nil, err
	}

	if err := booking.Transition(actor, StatusConfirmed); err != nil {
		return nil, err
	}

	return booking, nil
}
