package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role labels. Managers are salaried outside the time-clock flow and never
// appear on the hourly payroll.
const (
	RoleManager = "manager"
	RoleClerk   = "clerk"
	RoleCashier = "cashier"
	RoleStock   = "stock"
)

type Employee struct {
	ID         string
	Name       string
	Role       string
	HourlyRate decimal.Decimal
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
