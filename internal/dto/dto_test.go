package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunResponse(t *testing.T) {
	hours := decimal.NewFromInt(40)
	processed := time.Date(2024, 1, 8, 17, 0, 0, 0, time.UTC)
	run := domain.PayrollRun{
		ID:            5,
		PeriodStart:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:     time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		DateCreated:   time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
		DateProcessed: &processed,
		IsClosed:      true,
		WorkEntries: []domain.WorkEntry{{
			ID:           10,
			EmployeeID:   1,
			PayrollRunID: 5,
			HoursWorked:  &hours,
			PaymentType:  domain.PaymentBankTransfer,
			PaymentDate:  &processed,
			IsPaid:       true,
			Employee:     &domain.Employee{FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly},
			Pay:          &domain.Pay{GrossPay: decimal.NewFromInt(800), NetPay: decimal.RequireFromString("468.8")},
		}},
	}

	body, err := json.Marshal(NewRunResponse(run))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 5,
		"payroll_period_start": "2024-01-01",
		"payroll_period_end": "2024-01-07",
		"date_created": "2024-01-08T09:00:00Z",
		"date_processed": "2024-01-08T17:00:00Z",
		"is_closed": true,
		"status": "closed",
		"notes": "",
		"work_entries": [{
			"id": 10,
			"employee_id": 1,
			"payroll_run_id": 5,
			"employee_name": "Ada Lovelace",
			"worker_type": "hourly",
			"hours_worked": "40",
			"days_worked": null,
			"payment_type": "bank_transfer",
			"deferred_payment_date": null,
			"payment_date": "2024-01-08",
			"is_paid": true,
			"notes": "",
			"pay": {
				"gross_pay": "800.00",
				"federal_tax": "0.00",
				"state_tax": "0.00",
				"social_security": "0.00",
				"medicare": "0.00",
				"health_insurance": "0.00",
				"retirement_contribution": "0.00",
				"total_deductions": "0.00",
				"net_pay": "468.80"
			}
		}]
	}`, string(body))
}

func TestOpenRunHasNoEntries(t *testing.T) {
	resp := NewRunResponse(domain.PayrollRun{ID: 1})
	assert.Equal(t, "open", resp.Status)
	assert.Nil(t, resp.DateProcessed)
	assert.Nil(t, resp.WorkEntries)
}

func TestWorkEntryRequestAcceptsNumbers(t *testing.T) {
	var req SubmitEntriesRequestDTO
	err := json.Unmarshal([]byte(`{"entries":[{"employee_id":1,"hours_worked":37.5},{"employee_id":2,"days_worked":"5"}]}`), &req)
	require.NoError(t, err)
	require.Len(t, req.Entries, 2)
	assert.Equal(t, "37.5", req.Entries[0].HoursWorked.String())
	assert.Nil(t, req.Entries[0].DaysWorked)
	assert.Equal(t, "5", req.Entries[1].DaysWorked.String())
}
