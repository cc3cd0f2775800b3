// Package export writes payroll runs as CSV registers.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type registerRow struct {
	EntryID             int    `csv:"entry_id"`
	EmployeeID          int    `csv:"employee_id"`
	Employee            string `csv:"employee"`
	WageType            string `csv:"worker_type"`
	HoursWorked         string `csv:"hours_worked"`
	DaysWorked          string `csv:"days_worked"`
	PaymentType         string `csv:"payment_type"`
	DeferredPaymentDate string `csv:"deferred_payment_date"`
	PaymentDate         string `csv:"payment_date"`
	IsPaid              bool   `csv:"is_paid"`
	GrossPay            string `csv:"gross_pay"`
	FederalTax          string `csv:"federal_tax"`
	StateTax            string `csv:"state_tax"`
	SocialSecurity      string `csv:"social_security"`
	Medicare            string `csv:"medicare"`
	HealthInsurance     string `csv:"health_insurance"`
	Retirement          string `csv:"retirement_contribution"`
	TotalDeductions     string `csv:"total_deductions"`
	NetPay              string `csv:"net_pay"`
}

// WriteRegister writes one row per work entry of run, in entry order.
func WriteRegister(w io.Writer, run domain.PayrollRun) error {
	rows := make([]*registerRow, 0, len(run.WorkEntries))
	for _, entry := range run.WorkEntries {
		row := &registerRow{
			EntryID:             entry.ID,
			EmployeeID:          entry.EmployeeID,
			HoursWorked:         optional(entry.HoursWorked),
			DaysWorked:          optional(entry.DaysWorked),
			PaymentType:         string(entry.PaymentType),
			DeferredPaymentDate: date(entry.DeferredPaymentDate),
			PaymentDate:         date(entry.PaymentDate),
			IsPaid:              entry.IsPaid,
		}
		if entry.Employee != nil {
			row.Employee = entry.Employee.FullName()
			row.WageType = string(entry.Employee.WageType)
		}
		if p := entry.Pay; p != nil {
			row.GrossPay = p.GrossPay.StringFixed(2)
			row.FederalTax = p.FederalTax.StringFixed(2)
			row.StateTax = p.StateTax.StringFixed(2)
			row.SocialSecurity = p.SocialSecurity.StringFixed(2)
			row.Medicare = p.Medicare.StringFixed(2)
			row.HealthInsurance = p.HealthInsurance.StringFixed(2)
			row.Retirement = p.RetirementContribution.StringFixed(2)
			row.TotalDeductions = p.TotalDeductions.StringFixed(2)
			row.NetPay = p.NetPay.StringFixed(2)
		}
		rows = append(rows, row)
	}
	return gocsv.Marshal(rows, w)
}

func FileName(run domain.PayrollRun) string {
	return fmt.Sprintf("payroll-%s_%s.csv", run.PeriodStart.Format(dateLayout), run.PeriodEnd.Format(dateLayout))
}

func optional(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
