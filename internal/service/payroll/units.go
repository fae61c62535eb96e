package payroll

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// minutesToHours converts worked minutes to decimal hours. All hour math in
// this package goes through here so minutes never leak into a money formula.
func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}

// hoursToPay converts decimal hours to money at an hourly rate.
func hoursToPay(hours, hourlyRate decimal.Decimal) decimal.Decimal {
	return hours.Mul(hourlyRate)
}

// clockMinutes parses a "HH:MM" wall-clock stamp into minutes since midnight.
// A malformed stamp is reported via ok=false and the punch is dropped from
// the computation, matching how other bad punch data degrades to zero.
func clockMinutes(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
