package payroll

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tendaops/backoffice-go/internal/domain/payroll"
)

func TestCheckCalendar(t *testing.T) {
	cases := []struct {
		name         string
		businessDays int
		restDays     int
		wantWarnings int
	}{
		{"typical month", 21, 5, 0},
		{"business days at the floor", 15, 5, 0},
		{"business days below the floor", 14, 5, 1},
		{"rest days at the lower bound", 21, 4, 0},
		{"rest days below the lower bound", 21, 3, 1},
		{"rest days at the upper bound", 21, 10, 0},
		{"rest days above the upper bound", 21, 11, 1},
		{"both counts out of range", 10, 2, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cal := payroll.CalendarInfo{BusinessDays: c.businessDays, RestDays: c.restDays}
			warnings := CheckCalendar(cal, 3, 2025)
			if len(warnings) != c.wantWarnings {
				t.Fatalf("got %d warnings, want %d: %v", len(warnings), c.wantWarnings, warnings)
			}
			for _, w := range warnings {
				if w.Code != payroll.WarningCalendarAnomaly {
					t.Errorf("warning code = %q, want %q", w.Code, payroll.WarningCalendarAnomaly)
				}
				if w.EmployeeID != "" {
					t.Errorf("calendar warning carries employee %q, want none", w.EmployeeID)
				}
			}
		})
	}
}

func TestCheckDSRRatio(t *testing.T) {
	cases := []struct {
		name     string
		dsr      string
		basePay  string
		wantWarn bool
	}{
		{"ratio well under the cap", "20", "100", false},
		{"ratio exactly at the cap", "35", "100", false},
		{"ratio just over the cap", "35.01", "100", true},
		{"zero base pay is skipped", "50", "0", false},
		{"zero DSR", "0", "100", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			warnings := CheckDSRRatio("emp-1",
				decimal.RequireFromString(c.dsr),
				decimal.RequireFromString(c.basePay))

			if c.wantWarn {
				if len(warnings) != 1 {
					t.Fatalf("got %d warnings, want 1", len(warnings))
				}
				if warnings[0].Code != payroll.WarningDSRRatio {
					t.Errorf("warning code = %q, want %q", warnings[0].Code, payroll.WarningDSRRatio)
				}
				if warnings[0].EmployeeID != "emp-1" {
					t.Errorf("warning employee = %q, want emp-1", warnings[0].EmployeeID)
				}
			} else if len(warnings) != 0 {
				t.Fatalf("got %d warnings, want none: %v", len(warnings), warnings)
			}
		})
	}
}
