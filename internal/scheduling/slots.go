package scheduling

import "time"

// SlotConfig controls the discrete availability grid rendered for a day.
type SlotConfig struct {
	GranularityHours int
	DayStartHour     int
	DayEndHour       int
}

// DefaultSlotConfig matches the booking page convention: 1-hour slots
// between 08:00 and 20:00, yielding 12 slots.
func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		GranularityHours: 1,
		DayStartHour:     8,
		DayEndHour:       20,
	}
}

// Slot is one candidate interval of the grid, annotated with whether an
// active booking already occupies it.
type Slot struct {
	Interval Interval
	IsBooked bool
}

// GenerateSlots produces the ordered, contiguous candidate slots covering
// [DayStartHour, DayEndHour) on the given date. Pure function of its inputs.
func GenerateSlots(date time.Time, cfg SlotConfig) []Interval {
	if cfg.GranularityHours <= 0 || cfg.DayStartHour >= cfg.DayEndHour {
		return nil
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var slots []Interval
	for hour := cfg.DayStartHour; hour+cfg.GranularityHours <= cfg.DayEndHour; hour += cfg.GranularityHours {
		slots = append(slots, Interval{
			Start: day.Add(time.Duration(hour) * time.Hour),
			End:   day.Add(time.Duration(hour+cfg.GranularityHours) * time.Hour),
		})
	}

	return slots
}

// BuildAvailability renders the day grid with each slot checked against the
// facility's active intervals. Recomputing from the same booking set yields
// an identical grid.
func BuildAvailability(date time.Time, cfg SlotConfig, active []Interval) []Slot {
	intervals := GenerateSlots(date, cfg)

	slots := make([]Slot, len(intervals))
	for i, iv := range intervals {
		slots[i] = Slot{
			Interval: iv,
			IsBooked: HasConflict(iv, active),
		}
	}

	return slots
}
