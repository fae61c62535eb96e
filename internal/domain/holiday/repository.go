package holiday

import "context"

// HolidayRepository defines data access methods for holidays.
type HolidayRepository interface {
	// Create creates a new holiday
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// GetByID retrieves a holiday by ID
	GetByID(ctx context.Context, id string) (Holiday, error)

	// ListActiveByYear retrieves active holidays falling inside a year
	ListActiveByYear(ctx context.Context, year int) ([]Holiday, error)

	// List retrieves every holiday, active or not, ordered by date
	List(ctx context.Context) ([]Holiday, error)

	// Update updates name and active flag
	Update(ctx context.Context, h Holiday) error

	// Delete removes a holiday
	Delete(ctx context.Context, id string) error
}
