package scheduling

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFacility(rate float64) Facility {
	return Facility{ID: uuid.New(), HourlyRate: rate, IsAvailable: true}
}

func TestNewBooking_Success(t *testing.T) {
	actor := memberActor(uuid.New())
	facility := openFacility(20)

	b, err := NewBooking(actor, facility, span(10, 11), "team meeting", nil)

	require.NoError(t, err)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, actor.ID, b.UserID)
	assert.Equal(t, facility.ID, b.FacilityID)
	assert.Equal(t, "team meeting", b.Notes)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.False(t, b.CreatedAt.IsZero())
	assert.InDelta(t, 20.0, b.TotalPrice, 1e-9)
}

func TestNewBooking_FractionalHourPrice(t *testing.T) {
	iv, err := NewInterval(at(10, 0), at(11, 30))
	require.NoError(t, err)

	b, err := NewBooking(memberActor(uuid.New()), openFacility(20), iv, "", nil)

	require.NoError(t, err)
	assert.InDelta(t, 30.0, b.TotalPrice, 1e-9)
}

func TestNewBooking_FacilityUnavailable(t *testing.T) {
	facility := Facility{ID: uuid.New(), HourlyRate: 20, IsAvailable: false}

	_, err := NewBooking(memberActor(uuid.New()), facility, span(10, 11), "", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFacilityUnavailable)
}

func TestNewBooking_InvalidInterval(t *testing.T) {
	_, err := NewBooking(memberActor(uuid.New()), openFacility(20), Interval{Start: at(11, 0), End: at(10, 0)}, "", nil)

	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewBooking_Conflict(t *testing.T) {
	existing := []Interval{span(10, 11)}

	_, err := NewBooking(memberActor(uuid.New()), openFacility(20), span(10, 11), "", existing)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestNewBooking_AdjacentSucceeds(t *testing.T) {
	existing := []Interval{span(10, 11)}

	b, err := NewBooking(memberActor(uuid.New()), openFacility(20), span(11, 12), "", existing)

	require.NoError(t, err)
	assert.Equal(t, StatusPending, b.Status)
}

func TestBlockSlot_NoReason(t *testing.T) {
	b, err := BlockSlot(staffActor(), openFacility(15), span(9, 12), "", nil)

	require.NoError(t, err)
	assert.Equal(t, "Blocked slot", b.Notes)
	assert.Equal(t, StatusConfirmed, b.Status, "block is confirmed immediately, never observably pending")
	assert.True(t, b.IsBlocked())
}

func TestBlockSlot_WithReason(t *testing.T) {
	b, err := BlockSlot(adminActor(), openFacility(15), span(9, 12), "HVAC", nil)

	require.NoError(t, err)
	assert.Equal(t, "Blocked slot: HVAC", b.Notes)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.True(t, b.IsBlocked())
}

func TestBlockSlot_NonStaffRejected(t *testing.T) {
	_, err := BlockSlot(memberActor(uuid.New()), openFacility(15), span(9, 12), "", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBlockSlot_Conflict(t *testing.T) {
	existing := []Interval{span(10, 11)}

	_, err := BlockSlot(staffActor(), openFacility(15), span(9, 12), "", existing)

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

// After any sequence of accepted creations against the same facility, the
// active intervals stay pairwise non-overlapping.
func TestNoOverlapInvariant(t *testing.T) {
	facility := openFacility(10)
	actor := memberActor(uuid.New())

	candidates := []Interval{
		span(10, 11),
		span(11, 12),              // adjacent, accepted
		span(10, 11),              // duplicate, rejected
		{Start: at(10, 30), End: at(11, 30)}, // partial, rejected
		span(14, 16),              // disjoint, accepted
		span(15, 17),              // partial against previous, rejected
	}

	var active []Interval
	for _, iv := range candidates {
		b, err := NewBooking(actor, facility, iv, "", active)
		if err != nil {
			continue
		}
		active = append(active, b.Interval)
	}

	require.Len(t, active, 3)
	for i := range active {
		for j := i + 1; j < len(active); j++ {
			assert.False(t, active[i].Overlaps(active[j]),
				"intervals %d and %d overlap", i, j)
		}
	}
}
