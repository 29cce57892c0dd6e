package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rudratic/hr-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	now func() time.Time
}

func NewPayrollService() payroll.Service {
	return &PayrollServiceImpl{now: time.Now}
}

var (
	mockBaseSalary = decimal.NewFromInt(75000)
	mockAllowances = decimal.NewFromInt(8500)
	mockDeductions = decimal.NewFromInt(12300)
)

// ListPayslips implements payroll.Service. Serves the last three pay
// periods with canned amounts; the current month stays DRAFT.
func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, userID string) ([]payroll.PayslipResponse, error) {
	now := s.now()
	netPay := mockBaseSalary.Add(mockAllowances).Sub(mockDeductions)

	payslips := make([]payroll.PayslipResponse, 0, 3)
	for i := 0; i < 3; i++ {
		period := now.AddDate(0, -i, 0)

		p := payroll.Payslip{
			ID:          fmt.Sprintf("payslip-%s-%04d-%02d", userID, period.Year(), int(period.Month())),
			UserID:      userID,
			PeriodMonth: int(period.Month()),
			PeriodYear:  period.Year(),
			BaseSalary:  mockBaseSalary,
			Allowances:  mockAllowances,
			Deductions:  mockDeductions,
			NetPay:      netPay,
			Status:      payroll.PayslipStatusPaid,
		}

		if i == 0 {
			p.Status = payroll.PayslipStatusDraft
		} else {
			paidAt := time.Date(period.Year(), period.Month(), 28, 10, 0, 0, 0, time.UTC)
			p.PaidAt = &paidAt
		}

		payslips = append(payslips, payroll.ToPayslipResponse(p))
	}

	return payslips, nil
}
