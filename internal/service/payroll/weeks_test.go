package payroll

import (
	"testing"
	"time"

	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return date
}

func TestWeekNumber(t *testing.T) {
	// weekNumber is ceil((weekday+1+daysSinceJan1)/7) with Sunday=0, the
	// rolling convention historical payrolls were settled on.
	cases := []struct {
		date string
		want int
	}{
		{"2025-01-01", 1},  // Wed: (3+1+0)/7
		{"2025-01-04", 2},  // Sat: (6+1+3)/7
		{"2025-03-10", 10}, // Mon: (1+1+68)/7
		{"2025-03-11", 11}, // Tue: (2+1+69)/7
		{"2025-03-13", 11}, // Thu: (4+1+71)/7
	}
	for _, c := range cases {
		got := weekNumber(mustDate(t, c.date))
		if got != c.want {
			t.Errorf("weekNumber(%s) = %d, want %d", c.date, got, c.want)
		}
	}
}

func TestGroupByWeek(t *testing.T) {
	punches := []timeclock.Punch{
		punchAt("2025-03-11", "08:00", timeclock.KindEntry),
		punchAt("2025-03-11", "17:00", timeclock.KindExit),
		punchAt("2025-03-13", "08:00", timeclock.KindEntry),
		punchAt("2025-03-13", "17:00", timeclock.KindExit),
		punchAt("2025-03-10", "08:00", timeclock.KindEntry),
	}

	weeks := GroupByWeek(punches)

	if len(weeks) != 2 {
		t.Fatalf("expected 2 week buckets, got %d", len(weeks))
	}
	if got := len(weeks[WeekKey{Year: 2025, Week: 11}]); got != 4 {
		t.Errorf("week 11 holds %d punches, want 4", got)
	}
	if got := len(weeks[WeekKey{Year: 2025, Week: 10}]); got != 1 {
		t.Errorf("week 10 holds %d punches, want 1", got)
	}
}

func TestGroupByWeekEmpty(t *testing.T) {
	if weeks := GroupByWeek(nil); len(weeks) != 0 {
		t.Errorf("expected no buckets for no punches, got %d", len(weeks))
	}
}
