package repository

import (
	"context"
	"fmt"

	"facility-booking/internal/data/entity"
	"facility-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FacilityRepository interface {
	Create(ctx context.Context, facility *entity.Facility) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error)
	FindAll(ctx context.Context) ([]*entity.Facility, error)
	FindAvailable(ctx context.Context) ([]*entity.Facility, error)
	Update(ctx context.Context, facility *entity.Facility) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type facilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFacilityRepository(db database.PgxIface, log *zap.Logger) FacilityRepository {
	return &facilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "facility")),
	}
}

const facilityColumns = `id, name, description, type, capacity, hourly_rate, is_available, image_url, created_at, updated_at`

func (r *facilityRepository) Create(ctx context.Context, facility *entity.Facility) error {
	query := `
		INSERT INTO facilities (` + facilityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		facility.ID,
		facility.Name,
		facility.Description,
		facility.Type,
		facility.Capacity,
		facility.HourlyRate,
		facility.IsAvailable,
		facility.ImageURL,
		facility.CreatedAt,
		facility.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create facility",
			zap.Error(err),
			zap.String("name", facility.Name),
		)
		return fmt.Errorf("create facility %s: %w", facility.Name, err)
	}

	return nil
}

func (r *facilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE id = $1`

	var facility entity.Facility
	err := r.db.QueryRow(ctx, query, id).Scan(
		&facility.ID,
		&facility.Name,
		&facility.Description,
		&facility.Type,
		&facility.Capacity,
		&facility.HourlyRate,
		&facility.IsAvailable,
		&facility.ImageURL,
		&facility.CreatedAt,
		&facility.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find facility by ID",
			zap.Error(err),
			zap.String("facility_id", id.String()),
		)
		return nil, fmt.Errorf("find facility by ID %s: %w", id.String(), err)
	}

	return &facility, nil
}

func (r *facilityRepository) FindAll(ctx context.Context) ([]*entity.Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities ORDER BY name`
	return r.findMany(ctx, query)
}

func (r *facilityRepository) FindAvailable(ctx context.Context) ([]*entity.Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE is_available = TRUE ORDER BY name`
	return r.findMany(ctx, query)
}

func (r *facilityRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Facility, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query facilities", zap.Error(err))
		return nil, fmt.Errorf("query facilities: %w", err)
	}
	defer rows.Close()

	var facilities []*entity.Facility
	for rows.Next() {
		var facility entity.Facility
		err := rows.Scan(
			&facility.ID,
			&facility.Name,
			&facility.Description,
			&facility.Type,
			&facility.Capacity,
			&facility.HourlyRate,
			&facility.IsAvailable,
			&facility.ImageURL,
			&facility.CreatedAt,
			&facility.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan facility row", zap.Error(err))
			return nil, fmt.Errorf("scan facility row: %w", err)
		}
		facilities = append(facilities, &facility)
	}

	return facilities, nil
}

func (r *facilityRepository) Update(ctx context.Context, facility *entity.Facility) error {
	query := `
		UPDATE facilities
		SET name = $2, description = $3, type = $4, capacity = $5,
		    hourly_rate = $6, is_available = $7, image_url = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		facility.ID,
		facility.Name,
		facility.Description,
		facility.Type,
		facility.Capacity,
		facility.HourlyRate,
		facility.IsAvailable,
		facility.ImageURL,
		facility.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update facility",
			zap.Error(err),
			zap.String("facility_id", facility.ID.String()),
		)
		return fmt.Errorf("update facility %s: %w", facility.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("facility %s not found", facility.ID.String())
	}

	return nil
}

func (r *facilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM facilities WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete facility",
			zap.Error(err),
			zap.String("facility_id", id.String()),
		)
		return fmt.Errorf("delete facility %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("facility %s not found", id.String())
	}

	r.log.Info("Facility deleted", zap.String("facility_id", id.String()))
	return nil
}
