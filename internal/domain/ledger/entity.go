package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind tags a ledger entry. The three monetary kinds feed payroll totals;
// an occurrence carries description-only data for the printable statement.
type Kind string

const (
	KindBonus      Kind = "bonus"
	KindAdvance    Kind = "advance"
	KindDeduction  Kind = "deduction"
	KindOccurrence Kind = "occurrence"
)

// Monetary reports whether entries of this kind carry an amount.
func (k Kind) Monetary() bool {
	return k == KindBonus || k == KindAdvance || k == KindDeduction
}

type Entry struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Kind        Kind
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// DateKey returns the entry date formatted as "2006-01-02".
func (e Entry) DateKey() string {
	return e.Date.Format("2006-01-02")
}
