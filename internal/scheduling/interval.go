package scheduling

import "time"

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds a validated interval. Zero-length and inverted
// intervals are rejected.
func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

func (iv Interval) Validate() error {
	if !iv.Start.Before(iv.End) {
		return ErrInvalidInterval
	}
	return nil
}

// Overlaps reports whether the two intervals share any instant.
// Touching intervals (a.End == b.Start) do not overlap, so back-to-back
// bookings are permitted.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether instant falls inside the interval: Start <= t < End.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Hours returns the duration in hours as a real number, so a 90-minute
// interval yields 1.5.
func (iv Interval) Hours() float64 {
	return iv.End.Sub(iv.Start).Hours()
}
