package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusDraft PayslipStatus = "DRAFT"
	PayslipStatusPaid  PayslipStatus = "PAID"
)

// Payslip - one pay period for one user. Amounts are canned figures; no
// computation happens from time entries.
type Payslip struct {
	ID          string
	UserID      string
	PeriodMonth int
	PeriodYear  int
	BaseSalary  decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	Status      PayslipStatus
	PaidAt      *time.Time
}
