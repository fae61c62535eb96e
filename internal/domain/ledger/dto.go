package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tendaops/backoffice-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r *CreateEntryRequest) Validate() error {
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

	kind := Kind(r.Kind)
	if !validator.IsInSlice(r.Kind, []string{
		string(KindBonus), string(KindAdvance), string(KindDeduction), string(KindOccurrence),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of bonus, advance, deduction, occurrence",
		})
	} else if kind.Monetary() && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	} else if kind == KindOccurrence && validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required for occurrence entries",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}
