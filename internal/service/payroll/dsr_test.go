package payroll

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tendaops/backoffice-go/internal/domain/payroll"
	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
)

func TestComputeDSRWeekly(t *testing.T) {
	// One week, five distinct days, 40 hours at 15/h: the average daily pay
	// is 8h x 15 = 120, contributed once.
	days := []string{"2025-03-03", "2025-03-04", "2025-03-05", "2025-03-06", "2025-03-07"}
	dayMinutes := make(map[string]int)
	var bucket []timeclock.Punch
	for _, day := range days {
		dayMinutes[day] = 480
		bucket = append(bucket,
			punchAt(day, "08:00", timeclock.KindEntry),
			punchAt(day, "16:00", timeclock.KindExit),
		)
	}
	weeks := map[WeekKey][]timeclock.Punch{
		{Year: 2025, Week: 9}: bucket,
	}
	cal := payroll.CalendarInfo{BusinessDays: 21, RestDays: 5}

	dsr := ComputeDSR(dayMinutes, weeks, decimal.NewFromInt(15), cal)

	if !dsr.Equal(decimal.NewFromInt(120)) {
		t.Errorf("DSR = %s, want 120", dsr)
	}
}

func TestComputeDSRWeeklyMultipleBuckets(t *testing.T) {
	dayMinutes := map[string]int{
		"2025-03-03": 480,
		"2025-03-05": 480,
		"2025-03-11": 240,
	}
	weeks := map[WeekKey][]timeclock.Punch{
		{Year: 2025, Week: 9}: {
			punchAt("2025-03-03", "08:00", timeclock.KindEntry),
			punchAt("2025-03-03", "16:00", timeclock.KindExit),
			punchAt("2025-03-05", "08:00", timeclock.KindEntry),
			punchAt("2025-03-05", "16:00", timeclock.KindExit),
		},
		{Year: 2025, Week: 11}: {
			punchAt("2025-03-11", "08:00", timeclock.KindEntry),
			punchAt("2025-03-11", "12:00", timeclock.KindExit),
		},
	}
	cal := payroll.CalendarInfo{BusinessDays: 21, RestDays: 5}

	// Bucket one averages 8h, bucket two averages 4h; at 10/h that is
	// 80 + 40.
	dsr := ComputeDSR(dayMinutes, weeks, decimal.NewFromInt(10), cal)

	if !dsr.Equal(decimal.NewFromInt(120)) {
		t.Errorf("DSR = %s, want 120", dsr)
	}
}

func TestComputeDSRWeeklyZeroMinutesDay(t *testing.T) {
	// A day with punches but no closed pair still counts as a distinct day
	// and drags the weekly average down.
	dayMinutes := map[string]int{
		"2025-03-03": 480,
		"2025-03-05": 0,
	}
	weeks := map[WeekKey][]timeclock.Punch{
		{Year: 2025, Week: 9}: {
			punchAt("2025-03-03", "08:00", timeclock.KindEntry),
			punchAt("2025-03-03", "16:00", timeclock.KindExit),
			punchAt("2025-03-05", "08:00", timeclock.KindEntry),
		},
	}
	cal := payroll.CalendarInfo{BusinessDays: 21, RestDays: 5}

	dsr := ComputeDSR(dayMinutes, weeks, decimal.NewFromInt(10), cal)

	if !dsr.Equal(decimal.NewFromInt(40)) {
		t.Errorf("DSR = %s, want 40", dsr)
	}
}

func TestComputeDSRMonthlyFallback(t *testing.T) {
	cal := payroll.CalendarInfo{BusinessDays: 22, RestDays: 8}

	t.Run("no punches means zero base and zero DSR", func(t *testing.T) {
		dsr := ComputeDSR(nil, nil, decimal.NewFromInt(12), cal)
		if !dsr.IsZero() {
			t.Errorf("DSR = %s, want 0", dsr)
		}
	})

	t.Run("fallback formula divides base over business days", func(t *testing.T) {
		dayMinutes := map[string]int{"2025-03-03": 1320} // 22h at 20/h = 440
		dsr := ComputeDSR(dayMinutes, nil, decimal.NewFromInt(20), cal)
		if !dsr.Equal(decimal.NewFromInt(160)) {
			t.Errorf("DSR = %s, want 160", dsr)
		}
	})

	t.Run("zero business days never divides", func(t *testing.T) {
		dayMinutes := map[string]int{"2025-03-03": 480}
		dsr := ComputeDSR(dayMinutes, nil, decimal.NewFromInt(20), payroll.CalendarInfo{})
		if !dsr.IsZero() {
			t.Errorf("DSR = %s, want 0", dsr)
		}
	})
}
