package timeclock

import "time"

// Kind discriminates clock-in from clock-out punches.
type Kind string

const (
	KindEntry Kind = "entry"
	KindExit  Kind = "exit"
)

// Punch is a single clock event. Date carries day granularity only; Time is
// the wall-clock "HH:MM" the terminal stamped. Punches are immutable once
// recorded; corrections go through delete + re-record by an administrator.
type Punch struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Time       string
	Kind       Kind
	CreatedAt  time.Time
}

// DateKey returns the punch date formatted as "2006-01-02", the key used
// throughout the payroll computation.
func (p Punch) DateKey() string {
	return p.Date.Format("2006-01-02")
}
