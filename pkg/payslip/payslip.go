// Package payslip renders the payslip of one work entry as a PDF.
package payslip

import (
	"errors"
	"fmt"
	"io"

	"github.com/clearops/payroll/internal/domain"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var ErrNotPriced = errors.New("work entry has no computed pay")

// Render writes the payslip of entry in run to w.
func Render(w io.Writer, run domain.PayrollRun, entry domain.WorkEntry) error {
	if entry.Pay == nil {
		return ErrNotPriced
	}
	pay := entry.Pay

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %d-%d", run.ID, entry.ID), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, "Employee: "+employeeName(entry))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", run.PeriodStart.Format(dateLayout), run.PeriodEnd.Format(dateLayout)))
	pdf.Ln(7)
	pdf.Cell(0, 8, "Worked: "+worked(entry))
	pdf.Ln(7)
	pdf.Cell(0, 8, "Payment: "+payment(entry))
	pdf.Ln(10)

	lines := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Gross pay", pay.GrossPay},
		{"Federal tax", pay.FederalTax.Neg()},
		{"State tax", pay.StateTax.Neg()},
		{"Social security", pay.SocialSecurity.Neg()},
		{"Medicare", pay.Medicare.Neg()},
		{"Health insurance", pay.HealthInsurance.Neg()},
		{"Retirement", pay.RetirementContribution.Neg()},
		{"Total deductions", pay.TotalDeductions.Neg()},
	}
	for _, l := range lines {
		pdf.CellFormat(80, 7, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, l.amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(80, 9, "Net pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 9, pay.NetPay.StringFixed(2), "T", 1, "R", false, 0, "")

	if entry.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, entry.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

// FileName is the name a payslip is saved or downloaded under.
func FileName(run domain.PayrollRun, entry domain.WorkEntry) string {
	return fmt.Sprintf("payslip-%s-%d.pdf", run.PeriodEnd.Format(dateLayout), entry.ID)
}

func employeeName(entry domain.WorkEntry) string {
	if entry.Employee == nil {
		return fmt.Sprintf("#%d", entry.EmployeeID)
	}
	return entry.Employee.FullName()
}

func worked(entry domain.WorkEntry) string {
	switch {
	case entry.HoursWorked != nil:
		return entry.HoursWorked.String() + " hours"
	case entry.DaysWorked != nil:
		return entry.DaysWorked.String() + " days"
	}
	return "-"
}

func payment(entry domain.WorkEntry) string {
	if entry.PaymentType == domain.PaymentDeferred && entry.DeferredPaymentDate != nil {
		return "deferred to " + entry.DeferredPaymentDate.Format(dateLayout)
	}
	if entry.PaymentDate != nil {
		return string(entry.PaymentType) + " on " + entry.PaymentDate.Format(dateLayout)
	}
	return string(entry.PaymentType)
}
