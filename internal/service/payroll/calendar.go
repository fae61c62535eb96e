package payroll

import (
	"time"

	"github.com/tendaops/backoffice-go/internal/domain/holiday"
	"github.com/tendaops/backoffice-go/internal/domain/payroll"
)

// MonthCalendar walks every day of (year, month) and counts business days
// (Mon-Fri that are not holidays) and rest days (Sundays plus active
// holidays). Rest days are collected in a set keyed by date, so a holiday
// falling on a Sunday counts once.
func MonthCalendar(year, month int, holidays []holiday.Holiday) payroll.CalendarInfo {
	holidaySet := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		if h.Active {
			holidaySet[h.Date.Format("2006-01-02")] = true
		}
	}

	restDays := make(map[string]struct{})
	businessDays := 0

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == time.Month(month); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		isHoliday := holidaySet[key]

		switch wd := d.Weekday(); {
		case wd >= time.Monday && wd <= time.Friday && !isHoliday:
			businessDays++
		case wd == time.Sunday:
			restDays[key] = struct{}{}
		}
		if isHoliday {
			restDays[key] = struct{}{}
		}
	}

	return payroll.CalendarInfo{
		BusinessDays: businessDays,
		RestDays:     len(restDays),
	}
}
