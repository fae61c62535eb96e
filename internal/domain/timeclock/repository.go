package timeclock

import "context"

// PunchRepository defines data access methods for clock punches.
type PunchRepository interface {
	// Create records a new punch
	Create(ctx context.Context, punch Punch) (Punch, error)

	// ListByMonth retrieves all punches stamped inside (year, month),
	// ordered by employee, date and time
	ListByMonth(ctx context.Context, year, month int) ([]Punch, error)

	// ListByEmployeeMonth retrieves one employee's punches inside (year, month),
	// ordered by date and time
	ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]Punch, error)

	// Delete removes a punch (administrator correction)
	Delete(ctx context.Context, id string) error
}
