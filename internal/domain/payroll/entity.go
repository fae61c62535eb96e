package payroll

import (
	"github.com/shopspring/decimal"
)

// Record is one employee's payroll line for a month. It is derived output,
// recomputed in full on every run and never persisted here.
//
// OvertimeHours/OvertimePay and HolidayHours/HolidayPay are carried in the
// schema but no computation path populates them; they stay zero.
type Record struct {
	EmployeeID   string
	EmployeeName string
	Role         string
	PeriodMonth  int
	PeriodYear   int

	DaysWorked  int
	WorkedHours decimal.Decimal

	BasePay       decimal.Decimal
	OvertimeHours decimal.Decimal
	OvertimePay   decimal.Decimal
	HolidayHours  decimal.Decimal
	HolidayPay    decimal.Decimal
	DSR           decimal.Decimal
	GrossWithDSR  decimal.Decimal

	BonusTotal     decimal.Decimal
	AdvanceTotal   decimal.Decimal
	DeductionTotal decimal.Decimal
	NetPay         decimal.Decimal
}

// Warning codes for advisory checks. Warnings never block a payroll run.
const (
	WarningCalendarAnomaly = "calendar_anomaly"
	WarningDSRRatio        = "dsr_ratio"
)

type Warning struct {
	Code       string
	EmployeeID string
	Message    string
}

// CalendarInfo summarizes one month: business days (Mon-Fri, non-holiday)
// and rest days (Sundays and active holidays, deduplicated by date).
type CalendarInfo struct {
	BusinessDays int
	RestDays     int
}
