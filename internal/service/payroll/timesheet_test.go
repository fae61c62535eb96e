package payroll

import (
	"testing"
	"time"

	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
)

func punchAt(day, clock string, kind timeclock.Kind) timeclock.Punch {
	date, _ := time.Parse("2006-01-02", day)
	return timeclock.Punch{
		EmployeeID: "emp-1",
		Date:       date,
		Time:       clock,
		Kind:       kind,
	}
}

func TestDayMinutes(t *testing.T) {
	cases := []struct {
		name    string
		punches []timeclock.Punch
		want    int
	}{
		{
			name: "single full shift",
			punches: []timeclock.Punch{
				punchAt("2025-03-10", "08:00", timeclock.KindEntry),
				punchAt("2025-03-10", "17:00", timeclock.KindExit),
			},
			want: 540,
		},
		{
			name: "split shift with lunch break",
			punches: []timeclock.Punch{
				punchAt("2025-03-10", "08:00", timeclock.KindEntry),
				punchAt("2025-03-10", "12:00", timeclock.KindExit),
				punchAt("2025-03-10", "13:00", timeclock.KindEntry),
				punchAt("2025-03-10", "17:00", timeclock.KindExit),
			},
			want: 480,
		},
		{
			name: "duplicate entry is ignored, first one pairs",
			punches: []timeclock.Punch{
				punchAt("2025-03-10", "09:00", timeclock.KindEntry),
				punchAt("2025-03-10", "09:05", timeclock.KindEntry),
				punchAt("2025-03-10", "18:00", timeclock.KindExit),
			},
			want: 540,
		},
		{
			name: "trailing entry contributes nothing",
			punches: []timeclock.Punch{
				punchAt("2025-03-10", "08:00", timeclock.KindEntry),
				punchAt("2025-03-10", "12:00", timeclock.KindExit),
				punchAt("2025-03-10", "13:00", timeclock.KindEntry),
			},
			want: 240,
		},
		{
			name: "exit with no pending entry contributes nothing",
			punches: []timeclock.Punch{
				punchAt("2025-03-10", "07:00", timeclock.KindExit),
				punchAt("2025-03-10", "08:00", timeclock.KindEntry),
				punchAt("2025-03-10", "12:00", timeclock.KindExit),
			},
			want: 240,
		},
		{
			name: "unsorted input is sorted before pairing",
			punches: []timeclock.Punch{
				punchAt("2025-03-10", "17:00", timeclock.KindExit),
				punchAt("2025-03-10", "08:00", timeclock.KindEntry),
			},
			want: 540,
		},
		{
			name: "malformed stamp is dropped",
			punches: []timeclock.Punch{
				punchAt("2025-03-10", "garbage", timeclock.KindEntry),
				punchAt("2025-03-10", "08:00", timeclock.KindEntry),
				punchAt("2025-03-10", "09:00", timeclock.KindExit),
			},
			want: 60,
		},
		{
			name:    "no punches",
			punches: nil,
			want:    0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DayMinutes(c.punches)
			if got != c.want {
				t.Errorf("DayMinutes() = %d, want %d", got, c.want)
			}
			if got < 0 {
				t.Errorf("DayMinutes() = %d, must never be negative", got)
			}
		})
	}
}

func TestMonthTimesheet(t *testing.T) {
	punches := []timeclock.Punch{
		punchAt("2025-03-10", "08:00", timeclock.KindEntry),
		punchAt("2025-03-10", "17:00", timeclock.KindExit),
		punchAt("2025-03-11", "09:00", timeclock.KindEntry),
		punchAt("2025-03-11", "12:00", timeclock.KindExit),
		punchAt("2025-03-12", "08:00", timeclock.KindEntry), // never clocked out
	}

	sheet := MonthTimesheet(punches)

	if len(sheet) != 3 {
		t.Fatalf("expected 3 days in timesheet, got %d", len(sheet))
	}
	if sheet["2025-03-10"] != 540 {
		t.Errorf("2025-03-10 = %d, want 540", sheet["2025-03-10"])
	}
	if sheet["2025-03-11"] != 180 {
		t.Errorf("2025-03-11 = %d, want 180", sheet["2025-03-11"])
	}
	if sheet["2025-03-12"] != 0 {
		t.Errorf("2025-03-12 = %d, want 0 for an open pair", sheet["2025-03-12"])
	}
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"08:30", 510, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"08:60", 0, false},
		{"0800", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := clockMinutes(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("clockMinutes(%q) = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}
