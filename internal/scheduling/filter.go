package scheduling

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is the denormalized booking row the operational views work over:
// the engine booking plus the display names free-text search matches on.
type Record struct {
	Booking
	UserName     string
	FacilityName string
}

// Criteria constrains a booking collection. Zero values impose no
// constraint; supplied criteria combine with logical AND.
type Criteria struct {
	Status     Status
	FacilityID uuid.UUID
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
}

// FilterBookings returns the records satisfying all supplied criteria,
// preserving the input's relative order.
func FilterBookings(records []Record, c Criteria) []Record {
	var out []Record
	for _, rec := range records {
		if c.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (c Criteria) matches(rec Record) bool {
	if c.Status != "" && rec.Status != c.Status {
		return false
	}

	if c.FacilityID != uuid.Nil && rec.FacilityID != c.FacilityID {
		return false
	}

	if c.Search != "" && !matchesSearch(rec, c.Search) {
		return false
	}

	if c.StartDate != nil {
		dayStart := startOfDay(*c.StartDate)
		if rec.Interval.Start.Before(dayStart) {
			return false
		}
	}

	if c.EndDate != nil {
		dayEnd := startOfDay(*c.EndDate).AddDate(0, 0, 1)
		if rec.Interval.End.After(dayEnd) {
			return false
		}
	}

	return true
}

// matchesSearch does a case-insensitive substring match against the booking
// id, the owning user's display name, or the facility name.
func matchesSearch(rec Record, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(rec.ID.String()), needle) ||
		strings.Contains(strings.ToLower(rec.UserName), needle) ||
		strings.Contains(strings.ToLower(rec.FacilityName), needle)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Summary tallies a booking collection by status.
type Summary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}

// Summarize counts bookings per status. A status outside the known set
// still counts toward Total but lands in no bucket.
func Summarize(records []Record) Summary {
	var s Summary
	for _, rec := range records {
		s.Total++
		switch rec.Status {
		case StatusPending:
			s.Pending++
		case StatusConfirmed:
			s.Confirmed++
		case StatusCancelled:
			s.Cancelled++
		case StatusCompleted:
			s.Completed++
		}
	}
	return s
}
