package ledger

import "context"

// LedgerService defines business logic for bonus, advance, deduction and
// occurrence entries
type LedgerService interface {
	// CreateEntry records a ledger entry against an employee
	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)

	// ListEmployeeMonth retrieves one employee's entries for a month
	ListEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]EntryResponse, error)

	// DeleteEntry removes a ledger entry
	DeleteEntry(ctx context.Context, id string) error
}
