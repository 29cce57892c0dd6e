package payroll

import "context"

// Service returns payslips for a user. The mock implementation serves
// canned periods until a payroll engine exists.
type Service interface {
	ListPayslips(ctx context.Context, userID string) ([]PayslipResponse, error)
}
