package ledger

import "context"

// EntryRepository defines data access methods for ledger entries.
type EntryRepository interface {
	// Create creates a new ledger entry
	Create(ctx context.Context, entry Entry) (Entry, error)

	// ListByMonth retrieves all entries dated inside (year, month),
	// ordered by employee and date
	ListByMonth(ctx context.Context, year, month int) ([]Entry, error)

	// ListByEmployeeMonth retrieves one employee's entries inside (year, month),
	// ordered by date
	ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]Entry, error)

	// Delete removes a ledger entry
	Delete(ctx context.Context, id string) error
}
