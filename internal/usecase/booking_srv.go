package usecase

import (
	"context"
	"fmt"
	"time"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/data/repository"
	"facility-booking/internal/dto/request"
	"facility-booking/internal/dto/response"
	"facility-booking/internal/scheduling"
	"facility-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Member endpoints
	CreateBooking(ctx context.Context, actor scheduling.Actor, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetMyBookings(ctx context.Context, actor scheduling.Actor) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, actor scheduling.Actor, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, actor scheduling.Actor, bookingID string) error

	// Availability (public)
	GetFacilityAvailability(ctx context.Context, facilityID, date string) (*response.AvailabilityResponse, error)
	GetFacilityBookingsInRange(ctx context.Context, facilityID string, start, end time.Time) ([]response.BookingResponse, error)

	// Staff endpoints
	ListBookings(ctx context.Context, query *request.ListBookingsQuery) (*response.BookingListResponse, error)
	TransitionBooking(ctx context.Context, actor scheduling.Actor, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	BlockSlot(ctx context.Context, actor scheduling.Actor, req *request.BlockSlotRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	slotCfg scheduling.SlotConfig
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		slotCfg: scheduling.SlotConfig{
			GranularityHours: config.Booking.SlotGranularityHours,
			DayStartHour:     config.Booking.DayStartHour,
			DayEndHour:       config.Booking.DayEndHour,
		},
		log: log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor scheduling.Actor, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.createBooking(ctx, actor, req.FacilityID, req.StartTime, req.EndTime, req.Notes, false)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("facility_id", booking.FacilityID.String()),
		zap.String("user_id", actor.ID.String()),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) BlockSlot(ctx context.Context, actor scheduling.Actor, req *request.BlockSlotRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Block slot validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.blockSlot(ctx, actor, req)
	if err != nil {
		return nil, err
	}

	s.log.Info("Slot blocked",
		zap.String("booking_id", booking.ID.String()),
		zap.String("facility_id", booking.FacilityID.String()),
		zap.String("staff_id", actor.ID.String()),
		zap.String("notes", booking.Notes),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// createBooking runs the shared creation path: resolve the facility, gate
// through the engine against current active intervals, persist with the
// repository's check-then-insert guard.
func (s *bookingService) createBooking(ctx context.Context, actor scheduling.Actor, facilityID string, start, end time.Time, notes string, skipFutureCheck bool) (*scheduling.Booking, error) {
	facID, err := uuid.Parse(facilityID)
	if err != nil {
		return nil, fmt.Errorf("invalid facility ID format %s: %w", facilityID, err)
	}

	interval, err := scheduling.NewInterval(start, end)
	if err != nil {
		return nil, err
	}

	// Members cannot book into the past; staff blocks are exempt so
	// maintenance can be recorded retroactively.
	if !skipFutureCheck && interval.Start.Before(time.Now()) {
		return nil, fmt.Errorf("bookings must start in the future: %w", scheduling.ErrInvalidInterval)
	}

	facility, err := s.repo.Facility.FindByID(ctx, facID)
	if err != nil {
		return nil, fmt.Errorf("find facility: %w", err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility %s: %w", facilityID, scheduling.ErrNotFound)
	}

	active, err := s.repo.Booking.FindActiveByFacility(ctx, facID)
	if err != nil {
		s.log.Error("Failed to load active bookings", zap.Error(err), zap.String("facility_id", facilityID))
		return nil, fmt.Errorf("load active bookings: %w", err)
	}

	booking, err := scheduling.NewBooking(actor, toEngineFacility(facility), interval, notes, toIntervals(active))
	if err != nil {
		return nil, err
	}

	if err := s.repo.Booking.CreateChecked(ctx, toEntityBooking(booking)); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *bookingService) blockSlot(ctx context.Context, actor scheduling.Actor, req *request.BlockSlotRequest) (*scheduling.Booking, error) {
	facID, err := uuid.Parse(req.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("invalid facility ID format %s: %w", req.FacilityID, err)
	}

	interval, err := scheduling.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	facility, err := s.repo.Facility.FindByID(ctx, facID)
	if err != nil {
		return nil, fmt.Errorf("find facility: %w", err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility %s: %w", req.FacilityID, scheduling.ErrNotFound)
	}

	active, err := s.repo.Booking.FindActiveByFacility(ctx, facID)
	if err != nil {
		s.log.Error("Failed to load active bookings", zap.Error(err), zap.String("facility_id", req.FacilityID))
		return nil, fmt.Errorf("load active bookings: %w", err)
	}

	booking, err := scheduling.BlockSlot(actor, toEngineFacility(facility), interval, req.Reason, toIntervals(active))
	if err != nil {
		return nil, err
	}

	if err := s.repo.Booking.CreateChecked(ctx, toEntityBooking(booking)); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *bookingService) GetMyBookings(ctx context.Context, actor scheduling.Actor) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", actor.ID.String()))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		engineBooking := toEngineBooking(b)
		out[i] = response.BookingToResponse(&engineBooking)
	}
	return out, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, actor scheduling.Actor, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Members may only see their own bookings
	if !actor.IsStaff() && booking.UserID != actor.ID {
		return nil, fmt.Errorf("not authorized to access this booking")
	}

	engineBooking := toEngineBooking(booking)
	resp := response.BookingToResponse(&engineBooking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actor scheduling.Actor, bookingID string) error {
	_, err := s.transition(ctx, actor, bookingID, scheduling.StatusCancelled)
	return err
}

func (s *bookingService) TransitionBooking(ctx context.Context, actor scheduling.Actor, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	target, err := scheduling.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	booking, err := s.transition(ctx, actor, bookingID, target)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) transition(ctx context.Context, actor scheduling.Actor, bookingID string, target scheduling.Status) (*scheduling.Booking, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	engineBooking := toEngineBooking(booking)
	if err := engineBooking.Transition(actor, target); err != nil {
		return nil, err
	}

	if err := s.repo.Booking.UpdateStatus(ctx, engineBooking.ID, engineBooking.Status); err != nil {
		return nil, err
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(engineBooking.Status)),
		zap.String("actor_id", actor.ID.String()),
	)

	return &engineBooking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, query *request.ListBookingsQuery) (*response.BookingListResponse, error) {
	details, err := s.repo.Booking.FindAllDetailed(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	criteria, err := buildCriteria(query)
	if err != nil {
		return nil, err
	}

	records := make([]scheduling.Record, len(details))
	for i, d := range details {
		records[i] = scheduling.Record{
			Booking:      toEngineBooking(&d.Booking),
			UserName:     d.UserName,
			FacilityName: d.FacilityName,
		}
	}

	filtered := scheduling.FilterBookings(records, criteria)

	out := make([]response.BookingResponse, len(filtered))
	for i, rec := range filtered {
		out[i] = response.RecordToResponse(rec)
	}

	return &response.BookingListResponse{
		Data:    out,
		Summary: scheduling.Summarize(filtered),
	}, nil
}

func (s *bookingService) GetFacilityAvailability(ctx context.Context, facilityID, date string) (*response.AvailabilityResponse, error) {
	facID, err := uuid.Parse(facilityID)
	if err != nil {
		return nil, fmt.Errorf("invalid facility ID format %s: %w", facilityID, err)
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	facility, err := s.repo.Facility.FindByID(ctx, facID)
	if err != nil {
		return nil, fmt.Errorf("find facility: %w", err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility %s: %w", facilityID, scheduling.ErrNotFound)
	}

	active, err := s.repo.Booking.FindActiveByFacilityInRange(ctx, facID, day, day.AddDate(0, 0, 1))
	if err != nil {
		s.log.Error("Failed to load bookings for availability",
			zap.Error(err), zap.String("facility_id", facilityID))
		return nil, fmt.Errorf("load bookings for availability: %w", err)
	}

	slots := scheduling.BuildAvailability(day, s.slotCfg, toIntervals(active))

	return &response.AvailabilityResponse{
		FacilityID: facilityID,
		Date:       date,
		Slots:      response.SlotsToResponse(slots),
	}, nil
}

func (s *bookingService) GetFacilityBookingsInRange(ctx context.Context, facilityID string, start, end time.Time) ([]response.BookingResponse, error) {
	facID, err := uuid.Parse(facilityID)
	if err != nil {
		return nil, fmt.Errorf("invalid facility ID format %s: %w", facilityID, err)
	}

	bookings, err := s.repo.Booking.FindActiveByFacilityInRange(ctx, facID, start, end)
	if err != nil {
		s.log.Error("Failed to get bookings in range", zap.Error(err), zap.String("facility_id", facilityID))
		return nil, fmt.Errorf("get bookings in range: %w", err)
	}

	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		engineBooking := toEngineBooking(b)
		out[i] = response.BookingToResponse(&engineBooking)
	}
	return out, nil
}

// ==================== HELPERS ====================

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, scheduling.ErrNotFound)
	}

	return booking, nil
}

func buildCriteria(query *request.ListBookingsQuery) (scheduling.Criteria, error) {
	var criteria scheduling.Criteria

	if query.Status != "" {
		status, err := scheduling.ParseStatus(query.Status)
		if err != nil {
			return criteria, fmt.Errorf("invalid status filter %q", query.Status)
		}
		criteria.Status = status
	}

	if query.FacilityID != "" {
		facID, err := uuid.Parse(query.FacilityID)
		if err != nil {
			return criteria, fmt.Errorf("invalid facility ID filter %q", query.FacilityID)
		}
		criteria.FacilityID = facID
	}

	criteria.Search = query.Search

	if query.StartDate != "" {
		start, err := utils.ParseDate(query.StartDate)
		if err != nil {
			return criteria, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", query.StartDate)
		}
		criteria.StartDate = &start
	}

	if query.EndDate != "" {
		end, err := utils.ParseDate(query.EndDate)
		if err != nil {
			return criteria, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", query.EndDate)
		}
		criteria.EndDate = &end
	}

	return criteria, nil
}

func toEngineFacility(f *entity.Facility) scheduling.Facility {
	return scheduling.Facility{
		ID:          f.ID,
		HourlyRate:  f.HourlyRate,
		IsAvailable: f.IsAvailable,
	}
}

func toEngineBooking(b *entity.Booking) scheduling.Booking {
	return scheduling.Booking{
		ID:         b.ID,
		FacilityID: b.FacilityID,
		UserID:     b.UserID,
		Interval:   b.Interval(),
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
	}
}

func toEntityBooking(b *scheduling.Booking) *entity.Booking {
	return &entity.Booking{
		Base: entity.Base{
			ID:        b.ID,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.CreatedAt,
		},
		UserID:     b.UserID,
		FacilityID: b.FacilityID,
		StartTime:  b.Interval.Start,
		EndTime:    b.Interval.End,
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
		Notes:      b.Notes,
	}
}

func toIntervals(bookings []*entity.Booking) []scheduling.Interval {
	intervals := make([]scheduling.Interval, len(bookings))
	for i, b := range bookings {
		intervals[i] = b.Interval()
	}
	return intervals
}
