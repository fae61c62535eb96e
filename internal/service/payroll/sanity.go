package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tendaops/backoffice-go/internal/domain/payroll"
)

// Advisory thresholds. A warning flags suspect input data for the operator;
// it never changes a computed value.
const (
	minBusinessDays = 15
	minRestDays     = 4
	maxRestDays     = 10
)

var maxDSRRatio = decimal.RequireFromString("0.35")

// CheckCalendar flags months whose business-day or rest-day counts fall
// outside the expected band.
func CheckCalendar(cal payroll.CalendarInfo, month, year int) []payroll.Warning {
	var warnings []payroll.Warning

	if cal.BusinessDays < minBusinessDays {
		warnings = append(warnings, payroll.Warning{
			Code:    payroll.WarningCalendarAnomaly,
			Message: fmt.Sprintf("only %d business days in %02d/%d, check the holiday table", cal.BusinessDays, month, year),
		})
	}

	if cal.RestDays < minRestDays || cal.RestDays > maxRestDays {
		warnings = append(warnings, payroll.Warning{
			Code:    payroll.WarningCalendarAnomaly,
			Message: fmt.Sprintf("%d rest days in %02d/%d is outside the expected 4-10 range", cal.RestDays, month, year),
		})
	}

	return warnings
}

// CheckDSRRatio flags an employee whose DSR exceeds 35% of base pay, which
// usually means malformed punches inflated a weekly average upstream.
func CheckDSRRatio(employeeID string, dsr, basePay decimal.Decimal) []payroll.Warning {
	if !basePay.IsPositive() {
		return nil
	}
	if dsr.Div(basePay).GreaterThan(maxDSRRatio) {
		return []payroll.Warning{{
			Code:       payroll.WarningDSRRatio,
			EmployeeID: employeeID,
			Message:    fmt.Sprintf("DSR %s exceeds 35%% of base pay %s", dsr.StringFixed(2), basePay.StringFixed(2)),
		}}
	}
	return nil
}
