package payslip

import (
	"bytes"
	"testing"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	hours := decimal.NewFromInt(40)
	paid := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	run := domain.PayrollRun{
		ID:          5,
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}
	entry := domain.WorkEntry{
		ID:          10,
		EmployeeID:  1,
		HoursWorked: &hours,
		PaymentType: domain.PaymentBankTransfer,
		PaymentDate: &paid,
		Notes:       "includes training day",
		Employee:    &domain.Employee{FirstName: "Ada", LastName: "Lovelace"},
		Pay: &domain.Pay{
			GrossPay:        decimal.RequireFromString("800"),
			TotalDeductions: decimal.RequireFromString("331.20"),
			NetPay:          decimal.RequireFromString("468.80"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, run, entry))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, "payslip-2024-01-07-10.pdf", FileName(run, entry))
}

func TestRender_NotPriced(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, domain.PayrollRun{}, domain.WorkEntry{ID: 1})
	assert.ErrorIs(t, err, ErrNotPriced)
	assert.Zero(t, buf.Len())
}

func TestDetails(t *testing.T) {
	days := decimal.RequireFromString("2.5")
	later := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "#3", employeeName(domain.WorkEntry{EmployeeID: 3}))
	assert.Equal(t, "2.5 days", worked(domain.WorkEntry{DaysWorked: &days}))
	assert.Equal(t, "-", worked(domain.WorkEntry{}))
	assert.Equal(t, "deferred to 2024-02-01", payment(domain.WorkEntry{PaymentType: domain.PaymentDeferred, DeferredPaymentDate: &later}))
	assert.Equal(t, "cash", payment(domain.WorkEntry{PaymentType: domain.PaymentCash}))
}
