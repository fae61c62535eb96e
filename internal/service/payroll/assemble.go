package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/tendaops/backoffice-go/internal/domain/employee"
	"github.com/tendaops/backoffice-go/internal/domain/ledger"
	"github.com/tendaops/backoffice-go/internal/domain/payroll"
)

// SumLedger totals the month's monetary ledger kinds. Occurrence entries
// carry no amount and are skipped.
func SumLedger(entries []ledger.Entry) (bonus, advance, deduction decimal.Decimal) {
	bonus, advance, deduction = decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Kind {
		case ledger.KindBonus:
			bonus = bonus.Add(e.Amount)
		case ledger.KindAdvance:
			advance = advance.Add(e.Amount)
		case ledger.KindDeduction:
			deduction = deduction.Add(e.Amount)
		}
	}
	return bonus, advance, deduction
}

// AssembleRecord combines base pay, DSR and the month's ledger entries into
// the final payroll line. An employee with no rate and no punches still gets
// an all-zero line, so the payroll always lists the whole roster.
//
// Overtime and holiday premium fields are filled with zero; no computation
// path populates them.
func AssembleRecord(emp employee.Employee, month, year int, dayMinutes map[string]int, dsr decimal.Decimal, entries []ledger.Entry) payroll.Record {
	// Days worked counts distinct punch dates, mirroring the distinct-day
	// rule the weekly DSR path applies to its buckets.
	monthMinutes := 0
	daysWorked := len(dayMinutes)
	for _, m := range dayMinutes {
		monthMinutes += m
	}

	workedHours := minutesToHours(monthMinutes)
	basePay := hoursToPay(workedHours, emp.HourlyRate)
	bonus, advance, deduction := SumLedger(entries)

	grossWithDSR := basePay.Add(dsr)
	netPay := grossWithDSR.Add(bonus).Sub(advance).Sub(deduction)

	return payroll.Record{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Role:         emp.Role,
		PeriodMonth:  month,
		PeriodYear:   year,

		DaysWorked:  daysWorked,
		WorkedHours: workedHours,

		BasePay:       basePay,
		OvertimeHours: decimal.Zero,
		OvertimePay:   decimal.Zero,
		HolidayHours:  decimal.Zero,
		HolidayPay:    decimal.Zero,
		DSR:           dsr,
		GrossWithDSR:  grossWithDSR,

		BonusTotal:     bonus,
		AdvanceTotal:   advance,
		DeductionTotal: deduction,
		NetPay:         netPay,
	}
}
