package payroll

import "errors"

var (
	ErrPayslipNotFound   = errors.New("payroll: payslip not found")
	ErrPayslipExists     = errors.New("payroll: payslip already exists for period")
	ErrPayslipNotPending = errors.New("payroll: payslip already resolved")
)
