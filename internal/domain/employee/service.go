package employee

import "context"

// EmployeeService defines business logic for roster operations
type EmployeeService interface {
	// CreateEmployee adds a new employee to the roster
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists the active roster ordered by name
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee applies a partial update to name, role, rate or active flag
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeactivateEmployee removes an employee from the active roster without
	// touching their history
	DeactivateEmployee(ctx context.Context, id string) error
}
