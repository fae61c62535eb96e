package response

import (
	"errors"
	"net/http"

	"github.com/tendaops/backoffice-go/internal/domain/employee"
	"github.com/tendaops/backoffice-go/internal/domain/holiday"
	"github.com/tendaops/backoffice-go/internal/domain/ledger"
	"github.com/tendaops/backoffice-go/internal/domain/payroll"
	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
	"github.com/tendaops/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Timeclock domain errors
	case errors.Is(err, timeclock.ErrPunchNotFound):
		NotFound(w, "Punch not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already registered for this date")

	// Ledger domain errors
	case errors.Is(err, ledger.ErrEntryNotFound):
		NotFound(w, "Ledger entry not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
