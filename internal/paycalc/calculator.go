// Package paycalc prices one unit of reported work.
package paycalc

import (
	"fmt"

	"github.com/clearops/payroll/internal/domain"
	"github.com/shopspring/decimal"
)

// Deduction rates applied to gross pay and the flat monthly amounts.
var (
	FederalTaxRate     = decimal.RequireFromString("0.10")
	StateTaxRate       = decimal.RequireFromString("0.05")
	SocialSecurityRate = decimal.RequireFromString("0.062")
	MedicareRate       = decimal.RequireFromString("0.0145")
	HealthInsurance    = decimal.NewFromInt(100)
	Retirement         = decimal.NewFromInt(50)
)

const places = 2

// Calculate computes gross pay, itemized deductions and net pay.
// All arithmetic is exact; each figure is rounded to cents only once, at the end,
// so total deductions and net pay are derived from unrounded components.
func Calculate(wage domain.Wage, quantity domain.Quantity) (domain.Pay, error) {
	if wage == nil {
		return domain.Pay{}, fmt.Errorf("rate is required: %w", domain.ErrInvalidInput)
	}
	if quantity == nil {
		return domain.Pay{}, fmt.Errorf("quantity is required: %w", domain.ErrInvalidInput)
	}
	if wage.Amount().IsNegative() {
		return domain.Pay{}, fmt.Errorf("rate must not be negative: %w", domain.ErrInvalidInput)
	}
	if quantity.Amount().IsNegative() {
		return domain.Pay{}, fmt.Errorf("quantity must not be negative: %w", domain.ErrInvalidInput)
	}
	if wage.Type() != quantity.Type() {
		return domain.Pay{}, fmt.Errorf("%s wage needs %s quantity, got %s: %w",
			wage.Type(), wage.Type(), quantity.Type(), domain.ErrInvalidInput)
	}

	gross := quantity.Amount().Mul(wage.Amount())
	federal := gross.Mul(FederalTaxRate)
	state := gross.Mul(StateTaxRate)
	social := gross.Mul(SocialSecurityRate)
	medicare := gross.Mul(MedicareRate)
	total := decimal.Sum(federal, state, social, medicare, HealthInsurance, Retirement)
	net := gross.Sub(total)

	return domain.Pay{
		GrossPay:               gross.Round(places),
		FederalTax:             federal.Round(places),
		StateTax:               state.Round(places),
		SocialSecurity:         social.Round(places),
		Medicare:               medicare.Round(places),
		HealthInsurance:        HealthInsurance.Round(places),
		RetirementContribution: Retirement.Round(places),
		TotalDeductions:        total.Round(places),
		NetPay:                 net.Round(places),
	}, nil
}

// Preview prices raw figures without an employee record. Exactly one of hours
// and days must be given and it has to match wageType.
func Preview(wageType domain.WageType, rate decimal.Decimal, hours, days *decimal.Decimal) (domain.Pay, error) {
	var wage domain.Wage
	switch wageType {
	case domain.WageHourly:
		wage = domain.HourlyWage{Rate: rate}
	case domain.WageDaily:
		wage = domain.DailyWage{Rate: rate}
	default:
		return domain.Pay{}, fmt.Errorf("unknown wage type %q: %w", wageType, domain.ErrInvalidInput)
	}

	entry := domain.WorkEntry{HoursWorked: hours, DaysWorked: days}
	quantity, err := entry.Quantity()
	if err != nil {
		return domain.Pay{}, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	return Calculate(wage, quantity)
}

// Price computes the pay of entry for employee.
func Price(employee domain.Employee, entry domain.WorkEntry) (domain.Pay, error) {
	wage, err := employee.Wage()
	if err != nil {
		return domain.Pay{}, err
	}
	quantity, err := entry.Quantity()
	if err != nil {
		return domain.Pay{}, err
	}
	return Calculate(wage, quantity)
}
