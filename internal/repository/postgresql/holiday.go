package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tendaops/backoffice-go/internal/domain/holiday"
	"github.com/tendaops/backoffice-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, date, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, date, name, active, created_at, updated_at
	`

	var result holiday.Holiday
	err := q.QueryRow(ctx, query, h.ID, h.Date, h.Name, h.Active).Scan(
		&result.ID,
		&result.Date,
		&result.Name,
		&result.Active,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return result, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, active, created_at, updated_at
		FROM holidays
		WHERE id = $1
	`

	var result holiday.Holiday
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Date,
		&result.Name,
		&result.Active,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	return result, nil
}

// ListActiveByYear implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListActiveByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	query := `
		SELECT id, date, name, active, created_at, updated_at
		FROM holidays
		WHERE active = TRUE AND date >= $1 AND date < $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// List implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, active, created_at, updated_at
		FROM holidays
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET name = $1, active = $2, updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, h.Name, h.Active, h.ID)
	if err != nil {
		return fmt.Errorf("failed to update holiday: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

func scanHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		err := rows.Scan(
			&h.ID,
			&h.Date,
			&h.Name,
			&h.Active,
			&h.CreatedAt,
			&h.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return holidays, nil
}
