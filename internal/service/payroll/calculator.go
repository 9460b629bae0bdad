package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andeshr/hrms-backend-go/internal/domain/payroll"
)

// Chilean settlement parameters. Tax brackets are expressed in UTM so the
// table survives monthly UTM adjustments; only the UTM value itself moves.
var (
	// Ingreso Minimo Mensual, CLP.
	minimumMonthlyIncome = decimal.NewFromInt(529000)
	// UTM value used for the income tax table, CLP.
	utmValue = decimal.NewFromInt(68785)

	gratificationRate = decimal.NewFromFloat(0.25)
	// Legal gratification cap: 4.75 IMM per year, paid monthly.
	gratificationCapFactor = decimal.NewFromFloat(4.75)

	healthRate       = decimal.NewFromFloat(0.07)
	unemploymentRate = decimal.NewFromFloat(0.006)

	overtimeSurcharge    = decimal.NewFromFloat(1.5)
	standardMonthlyHours = decimal.NewFromInt(160)
)

// afpRates maps AFP plan names to their total contribution rate (10% pension
// plus the administrator's commission).
var afpRates = map[string]decimal.Decimal{
	"Capital":   decimal.NewFromFloat(0.1144),
	"Cuprum":    decimal.NewFromFloat(0.1144),
	"Habitat":   decimal.NewFromFloat(0.1127),
	"PlanVital": decimal.NewFromFloat(0.1116),
	"ProVida":   decimal.NewFromFloat(0.1145),
	"Modelo":    decimal.NewFromFloat(0.1058),
	"Uno":       decimal.NewFromFloat(0.1049),
}

var defaultAFPRate = decimal.NewFromFloat(0.1145)

// taxBracket is one row of the Impuesto Unico de Segunda Categoria table.
// Bounds and rebates are in UTM; tax = base*rate - rebate*UTM.
type taxBracket struct {
	upperUTM decimal.Decimal // zero means no upper bound
	rate     decimal.Decimal
	rebate   decimal.Decimal
}

var taxBrackets = []taxBracket{
	{upperUTM: decimal.NewFromFloat(13.5), rate: decimal.Zero, rebate: decimal.Zero},
	{upperUTM: decimal.NewFromFloat(30), rate: decimal.NewFromFloat(0.04), rebate: decimal.NewFromFloat(0.54)},
	{upperUTM: decimal.NewFromFloat(50), rate: decimal.NewFromFloat(0.08), rebate: decimal.NewFromFloat(1.74)},
	{upperUTM: decimal.NewFromFloat(70), rate: decimal.NewFromFloat(0.135), rebate: decimal.NewFromFloat(4.49)},
	{upperUTM: decimal.NewFromFloat(90), rate: decimal.NewFromFloat(0.23), rebate: decimal.NewFromFloat(11.14)},
	{upperUTM: decimal.NewFromFloat(120), rate: decimal.NewFromFloat(0.304), rebate: decimal.NewFromFloat(17.80)},
	{upperUTM: decimal.NewFromFloat(310), rate: decimal.NewFromFloat(0.35), rebate: decimal.NewFromFloat(23.32)},
	{upperUTM: decimal.Zero, rate: decimal.NewFromFloat(0.40), rebate: decimal.NewFromFloat(38.82)},
}

// calculationInput carries everything the settlement needs, already resolved
// from storage by the service.
type calculationInput struct {
	EmployeeID         string
	Year               int
	Month              time.Month
	BaseSalary         decimal.Decimal
	AFPPlan            string
	HealthSystem       string
	MealAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal

	BusinessDays int
	WorkedDays   int
	OvertimeHrs  decimal.Decimal
}

// calculate produces a full payslip. Every money line is rounded to whole
// pesos as it is computed, so the net identity holds exactly over the
// rounded lines:
//
//	net = taxable + nonTaxable - (afp + health + ui + tax)
func calculate(in calculationInput) payroll.Payslip {
	slip := payroll.Payslip{
		EmployeeID:   in.EmployeeID,
		Year:         in.Year,
		Month:        in.Month,
		WorkedDays:   in.WorkedDays,
		AbsentDays:   in.BusinessDays - in.WorkedDays,
		OvertimeHrs:  in.OvertimeHrs,
		BaseSalary:   in.BaseSalary,
		AFPPlan:      in.AFPPlan,
		HealthSystem: in.HealthSystem,
		Status:       payroll.StatusPending,
	}
	if slip.AbsentDays < 0 {
		slip.AbsentDays = 0
	}

	base := in.BaseSalary.Round(0)
	slip.Gratification = gratification(base)
	slip.OvertimePay = overtimePay(base, in.OvertimeHrs)
	slip.TaxableIncome = base.Add(slip.Gratification).Add(slip.OvertimePay)

	slip.MealAllowance = in.MealAllowance.Round(0)
	slip.TransportAllowance = in.TransportAllowance.Round(0)
	slip.NonTaxableIncome = slip.MealAllowance.Add(slip.TransportAllowance)

	slip.AFPAmount = slip.TaxableIncome.Mul(afpRate(in.AFPPlan)).Round(0)
	slip.HealthAmount = slip.TaxableIncome.Mul(healthRate).Round(0)
	slip.UIAmount = slip.TaxableIncome.Mul(unemploymentRate).Round(0)

	taxBase := slip.TaxableIncome.Sub(slip.AFPAmount).Sub(slip.HealthAmount).Sub(slip.UIAmount)
	slip.TaxAmount = incomeTax(taxBase)

	deductions := slip.AFPAmount.Add(slip.HealthAmount).Add(slip.UIAmount).Add(slip.TaxAmount)
	slip.NetPay = slip.TaxableIncome.Add(slip.NonTaxableIncome).Sub(deductions)

	return slip
}

// gratification is 25% of the base salary, capped at 4.75 IMM / 12.
func gratification(base decimal.Decimal) decimal.Decimal {
	amount := base.Mul(gratificationRate)
	cap := minimumMonthlyIncome.Mul(gratificationCapFactor).Div(decimal.NewFromInt(12))
	if amount.GreaterThan(cap) {
		amount = cap
	}
	return amount.Round(0)
}

// overtimePay values overtime hours at the standard hourly rate with a 50%
// surcharge.
func overtimePay(base decimal.Decimal, hours decimal.Decimal) decimal.Decimal {
	if hours.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	hourly := base.Div(standardMonthlyHours)
	return hourly.Mul(overtimeSurcharge).Mul(hours).Round(0)
}

func afpRate(plan string) decimal.Decimal {
	if rate, ok := afpRates[plan]; ok {
		return rate
	}
	return defaultAFPRate
}

// incomeTax applies the progressive monthly table to the tax base (taxable
// income net of social contributions). Never negative.
func incomeTax(taxBase decimal.Decimal) decimal.Decimal {
	if taxBase.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	baseUTM := taxBase.Div(utmValue)
	bracket := taxBrackets[len(taxBrackets)-1]
	for _, b := range taxBrackets {
		if !b.upperUTM.IsZero() && baseUTM.LessThanOrEqual(b.upperUTM) {
			bracket = b
			break
		}
	}

	tax := taxBase.Mul(bracket.rate).Sub(bracket.rebate.Mul(utmValue))
	if tax.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return tax.Round(0)
}
