package employee

import "context"

// EmployeeRepository defines data access methods for the roster.
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves all active employees ordered by name
	ListActive(ctx context.Context) ([]Employee, error)

	// Update updates name, role, hourly rate and active flag
	Update(ctx context.Context, emp Employee) error

	// Deactivate soft-deletes an employee from the roster
	Deactivate(ctx context.Context, id string) error
}
