package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/tendaops/backoffice-go/internal/domain/payroll"
	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
)

// ComputeDSR returns the month's paid-rest-day compensation.
//
// Whenever the employee punched at all, the weekly-preferential path runs:
// each week bucket contributes one average-daily-pay, i.e. the bucket's total
// hours divided by its count of distinct worked dates, converted to money at
// the hourly rate. The month's DSR is the sum of those contributions.
//
// With no punches the monthly fallback applies:
// (baseSalary / businessDays) x restDays, where baseSalary is the month's
// hours times the rate. Both paths guard their divisions; degenerate input
// yields zero, never an error.
func ComputeDSR(dayMinutes map[string]int, weeks map[WeekKey][]timeclock.Punch, hourlyRate decimal.Decimal, cal payroll.CalendarInfo) decimal.Decimal {
	if len(weeks) > 0 {
		total := decimal.Zero
		for _, bucket := range weeks {
			days := make(map[string]struct{})
			for _, p := range bucket {
				days[p.DateKey()] = struct{}{}
			}
			distinct := len(days)
			if distinct == 0 {
				continue
			}

			weekMinutes := 0
			for day := range days {
				weekMinutes += dayMinutes[day]
			}

			avgDailyHours := minutesToHours(weekMinutes).Div(decimal.NewFromInt(int64(distinct)))
			total = total.Add(hoursToPay(avgDailyHours, hourlyRate))
		}
		return total
	}

	if cal.BusinessDays == 0 {
		return decimal.Zero
	}

	monthMinutes := 0
	for _, m := range dayMinutes {
		monthMinutes += m
	}
	baseSalary := hoursToPay(minutesToHours(monthMinutes), hourlyRate)
	return baseSalary.
		Div(decimal.NewFromInt(int64(cal.BusinessDays))).
		Mul(decimal.NewFromInt(int64(cal.RestDays)))
}
