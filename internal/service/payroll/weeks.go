package payroll

import (
	"time"

	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
)

// WeekKey identifies one payroll week bucket.
type WeekKey struct {
	Year int
	Week int
}

// weekNumber implements the payroll week convention: a rolling count from
// Jan 1 offset by the day's weekday (Sunday = 0), not ISO-8601 Monday-start
// weeks. Historical payrolls were settled on this numbering, so it is kept
// bit-for-bit.
func weekNumber(date time.Time) int {
	dow := int(date.Weekday())
	doy := date.YearDay() - 1
	return (dow + 1 + doy + 6) / 7
}

// GroupByWeek partitions a month's punches into week buckets keyed by
// (year, week number). Buckets carry no ordering relative to each other.
func GroupByWeek(punches []timeclock.Punch) map[WeekKey][]timeclock.Punch {
	weeks := make(map[WeekKey][]timeclock.Punch)
	for _, p := range punches {
		key := WeekKey{Year: p.Date.Year(), Week: weekNumber(p.Date)}
		weeks[key] = append(weeks[key], p)
	}
	return weeks
}
