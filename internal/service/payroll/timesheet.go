package payroll

import (
	"sort"

	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
)

// DayMinutes totals worked minutes for one employee's punches on a single
// day. Punches are paired by a sequential scan over time-sorted stamps: the
// first unmatched entry opens a slot, the next exit closes it and contributes
// exit-entry minutes. A duplicate entry while a slot is open is ignored, an
// exit with no open slot contributes nothing, and a trailing entry with no
// exit contributes nothing. The result is never negative.
func DayMinutes(punches []timeclock.Punch) int {
	type stamp struct {
		minutes int
		kind    timeclock.Kind
	}

	stamps := make([]stamp, 0, len(punches))
	for _, p := range punches {
		m, ok := clockMinutes(p.Time)
		if !ok {
			continue
		}
		stamps = append(stamps, stamp{minutes: m, kind: p.Kind})
	}
	sort.SliceStable(stamps, func(i, j int) bool {
		return stamps[i].minutes < stamps[j].minutes
	})

	total := 0
	pending := -1
	for _, s := range stamps {
		switch s.kind {
		case timeclock.KindEntry:
			if pending < 0 {
				pending = s.minutes
			}
		case timeclock.KindExit:
			if pending >= 0 {
				if d := s.minutes - pending; d > 0 {
					total += d
				}
				pending = -1
			}
		}
	}

	return total
}

// MonthTimesheet groups one employee's punches by day and totals worked
// minutes per day, keyed by "2006-01-02". Days with punches but no valid
// pair map to zero.
func MonthTimesheet(punches []timeclock.Punch) map[string]int {
	byDay := make(map[string][]timeclock.Punch)
	for _, p := range punches {
		key := p.DateKey()
		byDay[key] = append(byDay[key], p)
	}

	minutes := make(map[string]int, len(byDay))
	for day, dayPunches := range byDay {
		minutes[day] = DayMinutes(dayPunches)
	}
	return minutes
}
