package scheduling

// HasConflict reports whether candidate overlaps any interval in existing.
// It is a pure predicate: callers are responsible for pre-filtering existing
// down to the same facility and active (pending/confirmed) statuses.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}
