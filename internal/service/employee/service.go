package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tendaops/backoffice-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	entity := employee.Employee{
		ID:         id.String(),
		Name:       req.Name,
		Role:       req.Role,
		HourlyRate: req.HourlyRate,
		Active:     true,
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapResponse(emp))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService. Only fields present in
// the request change; the rest keep their stored values.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.HourlyRate != nil {
		emp.HourlyRate = *req.HourlyRate
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapResponse(emp), nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Deactivate(ctx, id)
}

func mapResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Role:       emp.Role,
		HourlyRate: emp.HourlyRate,
		Active:     emp.Active,
	}
}
