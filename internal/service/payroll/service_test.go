package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollService_ListPayslips(t *testing.T) {
	ctx := context.Background()
	svc := &PayrollServiceImpl{now: func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	}}

	payslips, err := svc.ListPayslips(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, payslips, 3)

	// Current month: DRAFT, not yet paid.
	assert.Equal(t, "payslip-user-1-2026-03", payslips[0].ID)
	assert.Equal(t, 3, payslips[0].PeriodMonth)
	assert.Equal(t, 2026, payslips[0].PeriodYear)
	assert.Equal(t, "DRAFT", payslips[0].Status)
	assert.Nil(t, payslips[0].PaidAt)

	// Prior months: PAID on the 28th.
	assert.Equal(t, "payslip-user-1-2026-02", payslips[1].ID)
	assert.Equal(t, "PAID", payslips[1].Status)
	require.NotNil(t, payslips[1].PaidAt)
	assert.Contains(t, *payslips[1].PaidAt, "2026-02-28")

	assert.Equal(t, "payslip-user-1-2026-01", payslips[2].ID)
	assert.Equal(t, "PAID", payslips[2].Status)

	for _, p := range payslips {
		assert.Equal(t, "75000.00", p.BaseSalary)
		assert.Equal(t, "8500.00", p.Allowances)
		assert.Equal(t, "12300.00", p.Deductions)
		assert.Equal(t, "71200.00", p.NetPay)
	}
}

func TestPayrollService_ListPayslips_YearBoundary(t *testing.T) {
	ctx := context.Background()
	svc := &PayrollServiceImpl{now: func() time.Time {
		return time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	}}

	payslips, err := svc.ListPayslips(ctx, "user-2")

	require.NoError(t, err)
	require.Len(t, payslips, 3)
	assert.Equal(t, 2026, payslips[0].PeriodYear)
	assert.Equal(t, 1, payslips[0].PeriodMonth)
	assert.Equal(t, 2025, payslips[1].PeriodYear)
	assert.Equal(t, 12, payslips[1].PeriodMonth)
	assert.Equal(t, 2025, payslips[2].PeriodYear)
	assert.Equal(t, 11, payslips[2].PeriodMonth)
}
