package employee

import (
	"github.com/shopspring/decimal"

	"github.com/tendaops/backoffice-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name"`
	Role       *string          `json:"role"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	Active     *bool            `json:"active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Role != nil && validator.IsEmpty(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must not be empty",
		})
	}

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Active     bool            `json:"active"`
}
