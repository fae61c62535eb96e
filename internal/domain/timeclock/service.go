package timeclock

import "context"

// TimeclockService defines business logic for the punch clock
type TimeclockService interface {
	// RecordPunch stamps a clock event for an active employee
	RecordPunch(ctx context.Context, req RecordPunchRequest) (PunchResponse, error)

	// ListEmployeeMonth retrieves one employee's punches for a month,
	// ordered by date and time
	ListEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]PunchResponse, error)

	// DeletePunch removes a mistaken punch (administrator correction)
	DeletePunch(ctx context.Context, id string) error
}
