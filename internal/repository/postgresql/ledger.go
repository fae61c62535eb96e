package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tendaops/backoffice-go/internal/domain/ledger"
	"github.com/tendaops/backoffice-go/internal/pkg/database"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.EntryRepository {
	return &ledgerRepositoryImpl{db: db}
}

// Create implements ledger.EntryRepository.
func (r *ledgerRepositoryImpl) Create(ctx context.Context, entry ledger.Entry) (ledger.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ledger_entries (id, employee_id, date, kind, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, employee_id, date, kind, amount, description, created_at
	`

	var result ledger.Entry
	var kind string
	err := q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.Date, string(entry.Kind), entry.Amount, entry.Description,
	).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.Date,
		&kind,
		&result.Amount,
		&result.Description,
		&result.CreatedAt,
	)

	if err != nil {
		return ledger.Entry{}, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	result.Kind = ledger.Kind(kind)
	return result, nil
}

// ListByMonth implements ledger.EntryRepository.
func (r *ledgerRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]ledger.Entry, error) {
	q := GetQuerier(ctx, r.db)
	start, end := monthRange(year, month)

	query := `
		SELECT id, employee_id, date, kind, amount, description, created_at
		FROM ledger_entries
		WHERE date >= $1 AND date < $2
		ORDER BY employee_id, date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListByEmployeeMonth implements ledger.EntryRepository.
func (r *ledgerRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]ledger.Entry, error) {
	q := GetQuerier(ctx, r.db)
	start, end := monthRange(year, month)

	query := `
		SELECT id, employee_id, date, kind, amount, description, created_at
		FROM ledger_entries
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Delete implements ledger.EntryRepository.
func (r *ledgerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return ledger.ErrEntryNotFound
	}

	return nil
}

func scanEntries(rows pgx.Rows) ([]ledger.Entry, error) {
	var entries []ledger.Entry
	for rows.Next() {
		var e ledger.Entry
		var kind string
		err := rows.Scan(
			&e.ID,
			&e.EmployeeID,
			&e.Date,
			&kind,
			&e.Amount,
			&e.Description,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		e.Kind = ledger.Kind(kind)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}
