package usecase

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/data/repository"
	"facility-booking/internal/dto/request"
	"facility-booking/internal/scheduling"
	"facility-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==================== FAKES ====================

type fakeFacilityRepo struct {
	facilities map[uuid.UUID]*entity.Facility
}

func newFakeFacilityRepo() *fakeFacilityRepo {
	return &fakeFacilityRepo{facilities: make(map[uuid.UUID]*entity.Facility)}
}

func (f *fakeFacilityRepo) Create(ctx context.Context, facility *entity.Facility) error {
	f.facilities[facility.ID] = facility
	return nil
}

func (f *fakeFacilityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error) {
	return f.facilities[id], nil
}

func (f *fakeFacilityRepo) FindAll(ctx context.Context) ([]*entity.Facility, error) {
	var out []*entity.Facility
	for _, fac := range f.facilities {
		out = append(out, fac)
	}
	return out, nil
}

func (f *fakeFacilityRepo) FindAvailable(ctx context.Context) ([]*entity.Facility, error) {
	var out []*entity.Facility
	for _, fac := range f.facilities {
		if fac.IsAvailable {
			out = append(out, fac)
		}
	}
	return out, nil
}

func (f *fakeFacilityRepo) Update(ctx context.Context, facility *entity.Facility) error {
	f.facilities[facility.ID] = facility
	return nil
}

func (f *fakeFacilityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.facilities, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
	names    map[uuid.UUID]string // user id -> username
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*entity.Booking),
		names:    make(map[uuid.UUID]string),
	}
}

func (f *fakeBookingRepo) CreateChecked(ctx context.Context, booking *entity.Booking) error {
	for _, b := range f.bookings {
		if b.FacilityID == booking.FacilityID &&
			b.Status.IsActive() &&
			b.StartTime.Before(booking.EndTime) &&
			b.EndTime.After(booking.StartTime) {
			return scheduling.ErrSlotUnavailable
		}
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindAllDetailed(ctx context.Context) ([]*entity.BookingDetail, error) {
	var out []*entity.BookingDetail
	for _, b := range f.bookings {
		out = append(out, &entity.BookingDetail{
			Booking:      *b,
			UserName:     f.names[b.UserID],
			FacilityName: "Court A",
		})
	}
	return out, nil
}

func (f *fakeBookingRepo) FindActiveByFacility(ctx context.Context, facilityID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.FacilityID == facilityID && b.Status.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindActiveByFacilityInRange(ctx context.Context, facilityID uuid.UUID, start, end time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.FacilityID == facilityID &&
			b.Status.IsActive() &&
			b.StartTime.Before(end) &&
			b.EndTime.After(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status scheduling.Status) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return scheduling.ErrNotFound
	}
	b.Status = status
	return nil
}

// ==================== SETUP ====================

func newTestBookingService(t *testing.T) (BookingService, *fakeBookingRepo, *fakeFacilityRepo) {
	t.Helper()

	bookings := newFakeBookingRepo()
	facilities := newFakeFacilityRepo()
	repo := &repository.Repository{
		Facility: facilities,
		Booking:  bookings,
	}

	config := &utils.Config{
		Booking: utils.BookingConfig{
			SlotGranularityHours: 1,
			DayStartHour:         8,
			DayEndHour:           20,
		},
	}

	return NewBookingService(repo, config, zap.NewNop()), bookings, facilities
}

func seedFacility(t *testing.T, facilities *fakeFacilityRepo, rate float64, available bool) *entity.Facility {
	t.Helper()

	now := time.Now()
	facility := &entity.Facility{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        "Court A",
		Type:        "badminton",
		Capacity:    4,
		HourlyRate:  rate,
		IsAvailable: available,
	}
	facilities.facilities[facility.ID] = facility
	return facility
}

func member() scheduling.Actor {
	return scheduling.Actor{ID: uuid.New(), Roles: []scheduling.Role{scheduling.RoleMember}}
}

func staff() scheduling.Actor {
	return scheduling.Actor{ID: uuid.New(), Roles: []scheduling.Role{scheduling.RoleStaff}}
}

func tomorrowAt(hour int) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

// ==================== TESTS ====================

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending booking with computed price", func(t *testing.T) {
		svc, bookings, facilities := newTestBookingService(t)
		facility := seedFacility(t, facilities, 50.0, true)
		actor := member()

		resp, err := svc.CreateBooking(ctx, actor, &request.CreateBookingRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(10),
			EndTime:    tomorrowAt(12),
			Notes:      "doubles practice",
		})

		require.NoError(t, err)
		assert.Equal(t, scheduling.StatusPending, resp.Status)
		assert.Equal(t, 100.0, resp.TotalPrice)
		assert.Equal(t, actor.ID.String(), resp.UserID)
		assert.False(t, resp.IsBlocked)
		assert.Len(t, bookings.bookings, 1)
	})

	t.Run("rejects overlapping booking", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		facility := seedFacility(t, facilities, 50.0, true)

		_, err := svc.CreateBooking(ctx, member(), &request.CreateBookingRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(10),
			EndTime:    tomorrowAt(12),
		})
		require.NoError(t, err)

		_, err = svc.CreateBooking(ctx, member(), &request.CreateBookingRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(11),
			EndTime:    tomorrowAt(13),
		})
		assert.ErrorIs(t, err, scheduling.ErrSlotUnavailable)
	})

	t.Run("allows back to back bookings", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		facility := seedFacility(t, facilities, 50.0, true)

		_, err := svc.CreateBooking(ctx, member(), &request.CreateBookingRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(10),
			EndTime:    tomorrowAt(12),
		})
		require.NoError(t, err)

		_, err = svc.CreateBooking(ctx, member(), &request.CreateBookingRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(12),
			EndTime:    tomorrowAt(14),
		})
		assert.NoError(t, err)
	})

	t.Run("rejects unavailable facility", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		facility := seedFacility(t, facilities, 50.0, false)

		_, err := svc.CreateBooking(ctx, member(), &request.CreateBookingRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(10),
			EndTime:    tomorrowAt(12),
		})
		assert.ErrorIs(t, err, scheduling.ErrFacilityUnavailable)
	})

	t.Run("rejects unknown facility", func(t *testing.T) {
		svc, _, _ := newTestBookingService(t)

		_, err := svc.CreateBooking(ctx, member(), &request.CreateBookingRequest{
			FacilityID: uuid.New().String(),
			StartTime:  tomorrowAt(10),
			EndTime:    tomorrowAt(12),
		})
		assert.ErrorIs(t, err, scheduling.ErrNotFound)
	})

	t.Run("rejects start in the past", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		facility := seedFacility(t, facilities, 50.0, true)

		start := time.Now().Add(-2 * time.Hour)
		_, err := svc.CreateBooking(ctx, member(), &request.CreateBookingRequest{
			FacilityID: facility.ID.String(),
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
		})
		assert.ErrorIs(t, err, scheduling.ErrInvalidInterval)
	})

	t.Run("rejects inverted interval", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		facility := seedFacility(t, facilities, 50.0, true)

		_, err := svc.CreateBooking(ctx, member(), &request.CreateBookingRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(12),
			EndTime:    tomorrowAt(10),
		})
		assert.ErrorIs(t, err, scheduling.ErrInvalidInterval)
	})
}

func TestBlockSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("staff blocks slot as confirmed booking", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		facility := seedFacility(t, facilities, 50.0, true)

		resp, err := svc.BlockSlot(ctx, staff(), &request.BlockSlotRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(14),
			EndTime:    tomorrowAt(16),
			Reason:     "court resurfacing",
		})

		require.NoError(t, err)
		assert.Equal(t, scheduling.StatusConfirmed, resp.Status)
		assert.True(t, resp.IsBlocked)
		assert.Equal(t, "Blocked slot: court resurfacing", resp.Notes)
	})

	t.Run("member cannot block", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		facility := seedFacility(t, facilities, 50.0, true)

		_, err := svc.BlockSlot(ctx, member(), &request.BlockSlotRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(14),
			EndTime:    tomorrowAt(16),
		})
		assert.ErrorIs(t, err, scheduling.ErrInvalidTransition)
	})

	t.Run("blocked slot denies member booking", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		facility := seedFacility(t, facilities, 50.0, true)

		_, err := svc.BlockSlot(ctx, staff(), &request.BlockSlotRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(14),
			EndTime:    tomorrowAt(16),
		})
		require.NoError(t, err)

		_, err = svc.CreateBooking(ctx, member(), &request.CreateBookingRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(15),
			EndTime:    tomorrowAt(17),
		})
		assert.ErrorIs(t, err, scheduling.ErrSlotUnavailable)
	})
}

func TestTransitionBooking(t *testing.T) {
	ctx := context.Background()

	createPending := func(t *testing.T, svc BookingService, facilities *fakeFacilityRepo) (scheduling.Actor, string) {
		t.Helper()
		facility := seedFacility(t, facilities, 50.0, true)
		owner := member()
		resp, err := svc.CreateBooking(ctx, owner, &request.CreateBookingRequest{
			FacilityID: facility.ID.String(),
			StartTime:  tomorrowAt(10),
			EndTime:    tomorrowAt(12),
		})
		require.NoError(t, err)
		return owner, resp.ID
	}

	t.Run("staff confirms pending", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		_, id := createPending(t, svc, facilities)

		resp, err := svc.TransitionBooking(ctx, staff(), id, &request.UpdateBookingStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, scheduling.StatusConfirmed, resp.Status)
	})

	t.Run("member cannot confirm own booking", func(t *testing.T) {
		svc, bookings, facilities := newTestBookingService(t)
		owner, id := createPending(t, svc, facilities)

		_, err := svc.TransitionBooking(ctx, owner, id, &request.UpdateBookingStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, scheduling.ErrInvalidTransition)

		stored := bookings.bookings[uuid.MustParse(id)]
		assert.Equal(t, scheduling.StatusPending, stored.Status)
	})

	t.Run("owner cancels own pending booking", func(t *testing.T) {
		svc, bookings, facilities := newTestBookingService(t)
		owner, id := createPending(t, svc, facilities)

		require.NoError(t, svc.CancelBooking(ctx, owner, id))
		assert.Equal(t, scheduling.StatusCancelled, bookings.bookings[uuid.MustParse(id)].Status)
	})

	t.Run("other member cannot cancel", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		_, id := createPending(t, svc, facilities)

		err := svc.CancelBooking(ctx, member(), id)
		assert.ErrorIs(t, err, scheduling.ErrInvalidTransition)
	})

	t.Run("staff completes confirmed booking", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		_, id := createPending(t, svc, facilities)

		_, err := svc.TransitionBooking(ctx, staff(), id, &request.UpdateBookingStatusRequest{Status: "confirmed"})
		require.NoError(t, err)

		resp, err := svc.TransitionBooking(ctx, staff(), id, &request.UpdateBookingStatusRequest{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, scheduling.StatusCompleted, resp.Status)
	})

	t.Run("rejects unknown status value", func(t *testing.T) {
		svc, _, facilities := newTestBookingService(t)
		_, id := createPending(t, svc, facilities)

		_, err := svc.TransitionBooking(ctx, staff(), id, &request.UpdateBookingStatusRequest{Status: "approved"})
		assert.ErrorIs(t, err, scheduling.ErrInvalidTransition)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _, _ := newTestBookingService(t)

		_, err := svc.TransitionBooking(ctx, staff(), uuid.New().String(), &request.UpdateBookingStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, scheduling.ErrNotFound)
	})
}

func TestGetBookingByID(t *testing.T) {
	ctx := context.Background()

	svc, _, facilities := newTestBookingService(t)
	facility := seedFacility(t, facilities, 50.0, true)
	owner := member()

	created, err := svc.CreateBooking(ctx, owner, &request.CreateBookingRequest{
		FacilityID: facility.ID.String(),
		StartTime:  tomorrowAt(10),
		EndTime:    tomorrowAt(12),
	})
	require.NoError(t, err)

	t.Run("owner sees own booking", func(t *testing.T) {
		resp, err := svc.GetBookingByID(ctx, owner, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("staff sees any booking", func(t *testing.T) {
		_, err := svc.GetBookingByID(ctx, staff(), created.ID)
		assert.NoError(t, err)
	})

	t.Run("other member denied", func(t *testing.T) {
		_, err := svc.GetBookingByID(ctx, member(), created.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not authorized")
	})
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()

	svc, bookings, facilities := newTestBookingService(t)
	facility := seedFacility(t, facilities, 50.0, true)
	other := seedFacility(t, facilities, 80.0, true)
	owner := member()
	bookings.names[owner.ID] = "alice"

	first, err := svc.CreateBooking(ctx, owner, &request.CreateBookingRequest{
		FacilityID: facility.ID.String(),
		StartTime:  tomorrowAt(10),
		EndTime:    tomorrowAt(12),
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, owner, &request.CreateBookingRequest{
		FacilityID: other.ID.String(),
		StartTime:  tomorrowAt(10),
		EndTime:    tomorrowAt(12),
	})
	require.NoError(t, err)

	_, err = svc.TransitionBooking(ctx, staff(), first.ID, &request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	t.Run("no filters returns everything with summary", func(t *testing.T) {
		resp, err := svc.ListBookings(ctx, &request.ListBookingsQuery{})
		require.NoError(t, err)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, 2, resp.Summary.Total)
		assert.Equal(t, 1, resp.Summary.Pending)
		assert.Equal(t, 1, resp.Summary.Confirmed)
	})

	t.Run("status filter narrows rows and summary", func(t *testing.T) {
		resp, err := svc.ListBookings(ctx, &request.ListBookingsQuery{Status: "confirmed"})
		require.NoError(t, err)
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, 1, resp.Summary.Total)
		assert.Equal(t, 0, resp.Summary.Pending)
	})

	t.Run("facility filter", func(t *testing.T) {
		resp, err := svc.ListBookings(ctx, &request.ListBookingsQuery{FacilityID: other.ID.String()})
		require.NoError(t, err)
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, other.ID.String(), resp.Data[0].FacilityID)
	})

	t.Run("search matches user name", func(t *testing.T) {
		resp, err := svc.ListBookings(ctx, &request.ListBookingsQuery{Search: "ALICE"})
		require.NoError(t, err)
		assert.Len(t, resp.Data, 2)
	})

	t.Run("invalid status filter fails", func(t *testing.T) {
		_, err := svc.ListBookings(ctx, &request.ListBookingsQuery{Status: "bogus"})
		assert.Error(t, err)
	})

	t.Run("invalid date filter fails", func(t *testing.T) {
		_, err := svc.ListBookings(ctx, &request.ListBookingsQuery{StartDate: "30-08-2026"})
		assert.Error(t, err)
	})
}

func TestGetFacilityAvailability(t *testing.T) {
	ctx := context.Background()

	svc, _, facilities := newTestBookingService(t)
	facility := seedFacility(t, facilities, 50.0, true)

	_, err := svc.CreateBooking(ctx, member(), &request.CreateBookingRequest{
		FacilityID: facility.ID.String(),
		StartTime:  tomorrowAt(10),
		EndTime:    tomorrowAt(12),
	})
	require.NoError(t, err)

	date := tomorrowAt(0).Format("2006-01-02")

	resp, err := svc.GetFacilityAvailability(ctx, facility.ID.String(), date)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 12)

	booked := 0
	for _, slot := range resp.Slots {
		if slot.IsBooked {
			booked++
		}
	}
	assert.Equal(t, 2, booked)

	t.Run("unknown facility", func(t *testing.T) {
		_, err := svc.GetFacilityAvailability(ctx, uuid.New().String(), date)
		assert.ErrorIs(t, err, scheduling.ErrNotFound)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := svc.GetFacilityAvailability(ctx, facility.ID.String(), "tomorrow")
		assert.Error(t, err)
	})
}
