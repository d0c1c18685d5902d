package scheduling

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ParseStatus accepts a status in any letter case.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown booking status %q: %w", s, ErrInvalidTransition)
	}
}

// IsActive reports whether the status occupies the calendar. Only active
// bookings participate in conflict checks.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Transition drives the booking through the lifecycle machine:
//
//	pending   -> confirmed  (staff/admin)
//	pending   -> cancelled  (staff/admin, or the owning member)
//	confirmed -> completed  (staff/admin)
//	confirmed -> cancelled  (staff/admin)
//
// Anything else fails with ErrInvalidTransition, including transitions
// attempted by an actor without the required role.
func (b *Booking) Transition(actor Actor, target Status) error {
	allowed := false

	switch {
	case b.Status == StatusPending && target == StatusConfirmed:
		allowed = actor.IsStaff()
	case b.Status == StatusPending && target == StatusCancelled:
		allowed = actor.IsStaff() || actor.ID == b.UserID
	case b.Status == StatusConfirmed && target == StatusCompleted:
		allowed = actor.IsStaff()
	case b.Status == StatusConfirmed && target == StatusCancelled:
		allowed = actor.IsStaff()
	}

	if !allowed {
		return fmt.Errorf("transition %s -> %s: %w", b.Status, target, ErrInvalidTransition)
	}

	b.Status = target
	return nil
}
