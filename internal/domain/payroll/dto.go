package payroll

import "time"

type PayslipResponse struct {
	ID          string  `json:"id"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
	BaseSalary  string  `json:"base_salary"`
	Allowances  string  `json:"allowances"`
	Deductions  string  `json:"deductions"`
	NetPay      string  `json:"net_pay"`
	Status      string  `json:"status"`
	PaidAt      *string `json:"paid_at,omitempty"`
}

func ToPayslipResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:          p.ID,
		PeriodMonth: p.PeriodMonth,
		PeriodYear:  p.PeriodYear,
		BaseSalary:  p.BaseSalary.StringFixed(2),
		Allowances:  p.Allowances.StringFixed(2),
		Deductions:  p.Deductions.StringFixed(2),
		NetPay:      p.NetPay.StringFixed(2),
		Status:      string(p.Status),
	}
	if p.PaidAt != nil {
		paidAt := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
