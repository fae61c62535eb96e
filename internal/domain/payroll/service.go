package payroll

import "context"

// PayrollService runs the monthly computation. It is a stateless batch
// transform over snapshots loaded from the repositories; every call
// recomputes from scratch.
type PayrollService interface {
	// RunPayroll computes one payroll line per active, non-manager employee
	// for the requested period, plus advisory warnings.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunPayrollResponse, error)

	// GetStatement returns one employee's per-day log for the period,
	// suitable for a printable statement.
	GetStatement(ctx context.Context, employeeID string, month, year int) (StatementResponse, error)
}
