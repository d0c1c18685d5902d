package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasConflict_EmptyExisting(t *testing.T) {
	assert.False(t, HasConflict(span(10, 11), nil))
	assert.False(t, HasConflict(span(10, 11), []Interval{}))
}

func TestHasConflict_ExactMatch(t *testing.T) {
	existing := []Interval{span(10, 11)}

	assert.True(t, HasConflict(span(10, 11), existing))
}

func TestHasConflict_PartialOverlap(t *testing.T) {
	existing := []Interval{span(10, 11)}

	assert.True(t, HasConflict(Interval{Start: at(10, 30), End: at(11, 30)}, existing))
}

func TestHasConflict_BackToBack(t *testing.T) {
	existing := []Interval{span(10, 11)}

	assert.False(t, HasConflict(span(11, 12), existing))
	assert.False(t, HasConflict(span(9, 10), existing))
}

func TestHasConflict_ScansWholeSet(t *testing.T) {
	existing := []Interval{span(8, 9), span(12, 13), span(15, 16)}

	assert.True(t, HasConflict(span(12, 14), existing))
	assert.False(t, HasConflict(span(9, 12), existing))
}
