package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tendaops/backoffice-go/internal/domain/employee"
	"github.com/tendaops/backoffice-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, role, hourly_rate, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, name, role, hourly_rate, active, created_at, updated_at
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query, emp.ID, emp.Name, emp.Role, emp.HourlyRate, emp.Active).Scan(
		&result.ID,
		&result.Name,
		&result.Role,
		&result.HourlyRate,
		&result.Active,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, role, hourly_rate, active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Role,
		&result.HourlyRate,
		&result.Active,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, role, hourly_rate, active, created_at, updated_at
		FROM employees
		WHERE active = TRUE
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID,
			&emp.Name,
			&emp.Role,
			&emp.HourlyRate,
			&emp.Active,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, role = $2, hourly_rate = $3, active = $4, updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, emp.Name, emp.Role, emp.HourlyRate, emp.Active, emp.ID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
