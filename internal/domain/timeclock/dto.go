package timeclock

import (
	"github.com/tendaops/backoffice-go/internal/pkg/validator"
)

type RecordPunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Kind       string `json:"kind"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM (24h) format",
		})
	}

	if !validator.IsInSlice(r.Kind, []string{string(KindEntry), string(KindExit)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be either entry or exit",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Kind       string `json:"kind"`
}
