package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
	"github.com/tendaops/backoffice-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) timeclock.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements timeclock.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, punch timeclock.Punch) (timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (id, employee_id, date, time, kind, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, employee_id, date, time, kind, created_at
	`

	var result timeclock.Punch
	var kind string
	err := q.QueryRow(ctx, query, punch.ID, punch.EmployeeID, punch.Date, punch.Time, string(punch.Kind)).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.Date,
		&result.Time,
		&kind,
		&result.CreatedAt,
	)

	if err != nil {
		return timeclock.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	result.Kind = timeclock.Kind(kind)
	return result, nil
}

// ListByMonth implements timeclock.PunchRepository.
func (r *punchRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)
	start, end := monthRange(year, month)

	query := `
		SELECT id, employee_id, date, time, kind, created_at
		FROM punches
		WHERE date >= $1 AND date < $2
		ORDER BY employee_id, date, time ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// ListByEmployeeMonth implements timeclock.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)
	start, end := monthRange(year, month)

	query := `
		SELECT id, employee_id, date, time, kind, created_at
		FROM punches
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// Delete implements timeclock.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM punches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return timeclock.ErrPunchNotFound
	}

	return nil
}

func scanPunches(rows pgx.Rows) ([]timeclock.Punch, error) {
	var punches []timeclock.Punch
	for rows.Next() {
		var p timeclock.Punch
		var kind string
		err := rows.Scan(
			&p.ID,
			&p.EmployeeID,
			&p.Date,
			&p.Time,
			&kind,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		p.Kind = timeclock.Kind(kind)
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return punches, nil
}
