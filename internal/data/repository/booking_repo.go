package repository

import (
	"context"
	"fmt"
	"time"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/scheduling"
	"facility-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateChecked inserts the booking only if no active booking for the
	// same facility overlaps it, serializing check-then-insert in a single
	// statement. A lost race surfaces as scheduling.ErrSlotUnavailable.
	CreateChecked(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindAllDetailed(ctx context.Context) ([]*entity.BookingDetail, error)
	FindActiveByFacility(ctx context.Context, facilityID uuid.UUID) ([]*entity.Booking, error)
	FindActiveByFacilityInRange(ctx context.Context, facilityID uuid.UUID, start, end time.Time) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status scheduling.Status) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, facility_id, start_time, end_time, status, total_price, notes, created_at, updated_at`

func (r *bookingRepository) CreateChecked(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		WHERE NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE facility_id = $3
			  AND status IN ('pending', 'confirmed')
			  AND start_time < $5
			  AND end_time > $4
		)
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.FacilityID,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.TotalPrice,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("facility_id", booking.FacilityID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("facility %s: %w", booking.FacilityID.String(), scheduling.ErrSlotUnavailable)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.FacilityID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.TotalPrice,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY start_time DESC
	`
	return r.findMany(ctx, query, userID)
}

func (r *bookingRepository) FindActiveByFacility(ctx context.Context, facilityID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE facility_id = $1 AND status IN ('pending', 'confirmed')
		ORDER BY start_time
	`
	return r.findMany(ctx, query, facilityID)
}

func (r *bookingRepository) FindActiveByFacilityInRange(ctx context.Context, facilityID uuid.UUID, start, end time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE facility_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time
	`
	return r.findMany(ctx, query, facilityID, start, end)
}

func (r *bookingRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.FacilityID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.TotalPrice,
			&booking.Notes,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) FindAllDetailed(ctx context.Context) ([]*entity.BookingDetail, error) {
	query := `
		SELECT b.id, b.user_id, b.facility_id, b.start_time, b.end_time,
		       b.status, b.total_price, b.notes, b.created_at, b.updated_at,
		       u.username, f.name
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN facilities f ON f.id = b.facility_id
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query detailed bookings", zap.Error(err))
		return nil, fmt.Errorf("query detailed bookings: %w", err)
	}
	defer rows.Close()

	var details []*entity.BookingDetail
	for rows.Next() {
		var d entity.BookingDetail
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.FacilityID,
			&d.StartTime,
			&d.EndTime,
			&d.Status,
			&d.TotalPrice,
			&d.Notes,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.UserName,
			&d.FacilityName,
		)
		if err != nil {
			r.log.Error("Failed to scan detailed booking row", zap.Error(err))
			return nil, fmt.Errorf("scan detailed booking row: %w", err)
		}
		details = append(details, &d)
	}

	return details, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status scheduling.Status) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", bookingID.String(), scheduling.ErrNotFound)
	}

	return nil
}
