package payroll

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tendaops/backoffice-go/internal/domain/employee"
	"github.com/tendaops/backoffice-go/internal/domain/ledger"
)

func testEmployee(rate int64) employee.Employee {
	return employee.Employee{
		ID:         "emp-1",
		Name:       "Ana Souza",
		Role:       employee.RoleCashier,
		HourlyRate: decimal.NewFromInt(rate),
		Active:     true,
	}
}

func ledgerEntry(kind ledger.Kind, amount string) ledger.Entry {
	return ledger.Entry{
		EmployeeID: "emp-1",
		Kind:       kind,
		Amount:     decimal.RequireFromString(amount),
	}
}

func TestSumLedger(t *testing.T) {
	entries := []ledger.Entry{
		ledgerEntry(ledger.KindBonus, "30"),
		ledgerEntry(ledger.KindBonus, "20"),
		ledgerEntry(ledger.KindAdvance, "30"),
		ledgerEntry(ledger.KindDeduction, "10"),
		{EmployeeID: "emp-1", Kind: ledger.KindOccurrence, Description: "late arrival"},
	}

	bonus, advance, deduction := SumLedger(entries)

	if !bonus.Equal(decimal.NewFromInt(50)) {
		t.Errorf("bonus = %s, want 50", bonus)
	}
	if !advance.Equal(decimal.NewFromInt(30)) {
		t.Errorf("advance = %s, want 30", advance)
	}
	if !deduction.Equal(decimal.NewFromInt(10)) {
		t.Errorf("deduction = %s, want 10", deduction)
	}
}

func TestAssembleRecord(t *testing.T) {
	t.Run("single shift at a flat rate", func(t *testing.T) {
		rec := AssembleRecord(testEmployee(10), 3, 2025,
			map[string]int{"2025-03-10": 540}, decimal.Zero, nil)

		if rec.DaysWorked != 1 {
			t.Errorf("DaysWorked = %d, want 1", rec.DaysWorked)
		}
		if !rec.WorkedHours.Equal(decimal.NewFromInt(9)) {
			t.Errorf("WorkedHours = %s, want 9", rec.WorkedHours)
		}
		if !rec.BasePay.Equal(decimal.NewFromInt(90)) {
			t.Errorf("BasePay = %s, want 90", rec.BasePay)
		}
		if !rec.NetPay.Equal(decimal.NewFromInt(90)) {
			t.Errorf("NetPay = %s, want 90", rec.NetPay)
		}
	})

	t.Run("ledger entries adjust the net", func(t *testing.T) {
		dayMinutes := map[string]int{
			"2025-03-03": 600, "2025-03-04": 600, "2025-03-05": 600,
			"2025-03-06": 600, "2025-03-07": 600,
		}
		entries := []ledger.Entry{
			ledgerEntry(ledger.KindBonus, "50"),
			ledgerEntry(ledger.KindAdvance, "30"),
			ledgerEntry(ledger.KindDeduction, "10"),
		}

		rec := AssembleRecord(testEmployee(10), 3, 2025, dayMinutes, decimal.Zero, entries)

		if !rec.BasePay.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("BasePay = %s, want 500", rec.BasePay)
		}
		if !rec.GrossWithDSR.Equal(decimal.NewFromInt(500)) {
			t.Errorf("GrossWithDSR = %s, want 500", rec.GrossWithDSR)
		}
		if !rec.NetPay.Equal(decimal.NewFromInt(510)) {
			t.Errorf("NetPay = %s, want 510 (500 + 50 - 30 - 10)", rec.NetPay)
		}
	})

	t.Run("DSR is part of the gross", func(t *testing.T) {
		rec := AssembleRecord(testEmployee(10), 3, 2025,
			map[string]int{"2025-03-10": 480}, decimal.NewFromInt(16), nil)

		if !rec.GrossWithDSR.Equal(decimal.NewFromInt(96)) {
			t.Errorf("GrossWithDSR = %s, want 96", rec.GrossWithDSR)
		}
		if !rec.NetPay.Equal(decimal.NewFromInt(96)) {
			t.Errorf("NetPay = %s, want 96", rec.NetPay)
		}
	})

	t.Run("employee with no activity gets an all-zero line", func(t *testing.T) {
		rec := AssembleRecord(testEmployee(10), 3, 2025, nil, decimal.Zero, nil)

		if rec.DaysWorked != 0 {
			t.Errorf("DaysWorked = %d, want 0", rec.DaysWorked)
		}
		for name, v := range map[string]decimal.Decimal{
			"WorkedHours": rec.WorkedHours, "BasePay": rec.BasePay,
			"DSR": rec.DSR, "GrossWithDSR": rec.GrossWithDSR, "NetPay": rec.NetPay,
		} {
			if !v.IsZero() {
				t.Errorf("%s = %s, want 0", name, v)
			}
		}
	})

	t.Run("overtime and holiday premiums stay zero", func(t *testing.T) {
		rec := AssembleRecord(testEmployee(10), 3, 2025,
			map[string]int{"2025-03-10": 720}, decimal.NewFromInt(5), nil)

		for name, v := range map[string]decimal.Decimal{
			"OvertimeHours": rec.OvertimeHours, "OvertimePay": rec.OvertimePay,
			"HolidayHours": rec.HolidayHours, "HolidayPay": rec.HolidayPay,
		} {
			if !v.IsZero() {
				t.Errorf("%s = %s, want 0", name, v)
			}
		}
	})
}
