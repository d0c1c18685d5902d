package scheduling

import "errors"

var (
	// ErrInvalidInterval - start is not strictly before end
	ErrInvalidInterval = errors.New("interval start must be before end")

	// ErrSlotUnavailable - candidate interval overlaps an active booking
	ErrSlotUnavailable = errors.New("this time overlaps an existing booking")

	// ErrFacilityUnavailable - facility is marked not bookable
	ErrFacilityUnavailable = errors.New("facility is not available for booking")

	// ErrInvalidTransition - status change not allowed from the current state,
	// or the actor lacks the required role for it
	ErrInvalidTransition = errors.New("booking status transition not allowed")

	// ErrNotFound - referenced booking or facility does not exist
	ErrNotFound = errors.New("not found")
)
