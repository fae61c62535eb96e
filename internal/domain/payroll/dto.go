package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/tendaops/backoffice-go/internal/pkg/validator"
)

type RunPayrollRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}

	if r.PeriodYear < 2000 || r.PeriodYear > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Role         string `json:"role"`
	PeriodMonth  int    `json:"period_month"`
	PeriodYear   int    `json:"period_year"`

	DaysWorked  int             `json:"days_worked"`
	WorkedHours decimal.Decimal `json:"worked_hours"`

	BasePay       decimal.Decimal `json:"base_pay"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	HolidayHours  decimal.Decimal `json:"holiday_hours"`
	HolidayPay    decimal.Decimal `json:"holiday_pay"`
	DSR           decimal.Decimal `json:"dsr"`
	GrossWithDSR  decimal.Decimal `json:"gross_with_dsr"`

	BonusTotal     decimal.Decimal `json:"bonus_total"`
	AdvanceTotal   decimal.Decimal `json:"advance_total"`
	DeductionTotal decimal.Decimal `json:"deduction_total"`
	NetPay         decimal.Decimal `json:"net_pay"`
}

type WarningResponse struct {
	Code       string `json:"code"`
	EmployeeID string `json:"employee_id,omitempty"`
	Message    string `json:"message"`
}

type RunPayrollResponse struct {
	PeriodMonth  int               `json:"period_month"`
	PeriodYear   int               `json:"period_year"`
	BusinessDays int               `json:"business_days"`
	RestDays     int               `json:"rest_days"`
	Records      []RecordResponse  `json:"records"`
	Warnings     []WarningResponse `json:"warnings"`
}

type StatementPunch struct {
	Time string `json:"time"`
	Kind string `json:"kind"`
}

type StatementEntry struct {
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

type StatementDayResponse struct {
	Date    string           `json:"date"`
	Minutes int              `json:"minutes"`
	Punches []StatementPunch `json:"punches"`
	Entries []StatementEntry `json:"entries,omitempty"`
}

type StatementResponse struct {
	EmployeeID   string                 `json:"employee_id"`
	EmployeeName string                 `json:"employee_name"`
	PeriodMonth  int                    `json:"period_month"`
	PeriodYear   int                    `json:"period_year"`
	Days         []StatementDayResponse `json:"days"`
	Record       RecordResponse         `json:"record"`
}
