package dto

import (
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateRunRequestDTO struct {
	PayrollPeriodStart string `json:"payroll_period_start" example:"2024-01-01"`
	PayrollPeriodEnd   string `json:"payroll_period_end" example:"2024-01-07"`
	Notes              string `json:"notes" example:"First week of January"`
}

type RunResponseDTO struct {
	ID                 int                    `json:"id" example:"1"`
	PayrollPeriodStart string                 `json:"payroll_period_start" example:"2024-01-01"`
	PayrollPeriodEnd   string                 `json:"payroll_period_end" example:"2024-01-07"`
	DateCreated        string                 `json:"date_created" example:"2024-01-08T09:00:00Z"`
	DateProcessed      *string                `json:"date_processed" example:"2024-01-08T17:00:00Z"`
	IsClosed           bool                   `json:"is_closed" example:"false"`
	Status             string                 `json:"status" example:"open" enums:"open,closed"`
	Notes              string                 `json:"notes"`
	WorkEntries        []WorkEntryResponseDTO `json:"work_entries,omitempty"`
}

type WorkEntryRequestDTO struct {
	EmployeeID          int              `json:"employee_id" example:"1"`
	HoursWorked         *decimal.Decimal `json:"hours_worked,omitempty" swaggertype:"string" example:"40"`
	DaysWorked          *decimal.Decimal `json:"days_worked,omitempty" swaggertype:"string"`
	PaymentType         string           `json:"payment_type,omitempty" example:"bank_transfer" enums:"bank_transfer,check,cash,deferred"`
	DeferredPaymentDate string           `json:"deferred_payment_date,omitempty" example:"2024-02-01"`
	Notes               string           `json:"notes,omitempty"`
}

type SubmitEntriesRequestDTO struct {
	Entries []WorkEntryRequestDTO `json:"entries"`
}

type PayDTO struct {
	GrossPay               string `json:"gross_pay" example:"800.00"`
	FederalTax             string `json:"federal_tax" example:"80.00"`
	StateTax               string `json:"state_tax" example:"40.00"`
	SocialSecurity         string `json:"social_security" example:"49.60"`
	Medicare               string `json:"medicare" example:"11.60"`
	HealthInsurance        string `json:"health_insurance" example:"100.00"`
	RetirementContribution string `json:"retirement_contribution" example:"50.00"`
	TotalDeductions        string `json:"total_deductions" example:"331.20"`
	NetPay                 string `json:"net_pay" example:"468.80"`
}

type WorkEntryResponseDTO struct {
	ID                  int              `json:"id" example:"10"`
	EmployeeID          int              `json:"employee_id" example:"1"`
	PayrollRunID        int              `json:"payroll_run_id" example:"1"`
	EmployeeName        string           `json:"employee_name,omitempty" example:"Ada Lovelace"`
	WorkerType          string           `json:"worker_type,omitempty" example:"hourly"`
	HoursWorked         *decimal.Decimal `json:"hours_worked" swaggertype:"string" example:"40"`
	DaysWorked          *decimal.Decimal `json:"days_worked" swaggertype:"string"`
	PaymentType         string           `json:"payment_type" example:"bank_transfer"`
	DeferredPaymentDate *string          `json:"deferred_payment_date"`
	PaymentDate         *string          `json:"payment_date"`
	IsPaid              bool             `json:"is_paid"`
	Notes               string           `json:"notes"`
	Pay                 *PayDTO          `json:"pay,omitempty"`
}

type PartialCloseResponseDTO struct {
	Status      int                    `json:"status" example:"207"`
	Message     string                 `json:"message"`
	RunID       int                    `json:"run_id" example:"1"`
	WorkEntries []WorkEntryResponseDTO `json:"work_entries"`
}

type PreviewRequestDTO struct {
	WorkerType  string           `json:"worker_type" example:"hourly" enums:"hourly,daily"`
	Rate        decimal.Decimal  `json:"rate" swaggertype:"string" example:"20.00"`
	HoursWorked *decimal.Decimal `json:"hours_worked,omitempty" swaggertype:"string" example:"40"`
	DaysWorked  *decimal.Decimal `json:"days_worked,omitempty" swaggertype:"string"`
}

func NewRunResponse(run domain.PayrollRun) RunResponseDTO {
	resp := RunResponseDTO{
		ID:                 run.ID,
		PayrollPeriodStart: run.PeriodStart.Format(DateLayout),
		PayrollPeriodEnd:   run.PeriodEnd.Format(DateLayout),
		DateCreated:        run.DateCreated.Format(time.RFC3339),
		DateProcessed:      formatTime(run.DateProcessed, time.RFC3339),
		IsClosed:           run.IsClosed,
		Status:             string(run.Status()),
		Notes:              run.Notes,
	}
	if len(run.WorkEntries) > 0 {
		resp.WorkEntries = NewWorkEntryResponses(run.WorkEntries)
	}
	return resp
}

func NewWorkEntryResponse(e domain.WorkEntry) WorkEntryResponseDTO {
	resp := WorkEntryResponseDTO{
		ID:                  e.ID,
		EmployeeID:          e.EmployeeID,
		PayrollRunID:        e.PayrollRunID,
		HoursWorked:         e.HoursWorked,
		DaysWorked:          e.DaysWorked,
		PaymentType:         string(e.PaymentType),
		DeferredPaymentDate: formatTime(e.DeferredPaymentDate, DateLayout),
		PaymentDate:         formatTime(e.PaymentDate, DateLayout),
		IsPaid:              e.IsPaid,
		Notes:               e.Notes,
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.FullName()
		resp.WorkerType = string(e.Employee.WageType)
	}
	if e.Pay != nil {
		pay := NewPayResponse(*e.Pay)
		resp.Pay = &pay
	}
	return resp
}

func NewWorkEntryResponses(entries []domain.WorkEntry) []WorkEntryResponseDTO {
	resp := make([]WorkEntryResponseDTO, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, NewWorkEntryResponse(e))
	}
	return resp
}

func NewPayResponse(p domain.Pay) PayDTO {
	return PayDTO{
		GrossPay:               p.GrossPay.StringFixed(2),
		FederalTax:             p.FederalTax.StringFixed(2),
		StateTax:               p.StateTax.StringFixed(2),
		SocialSecurity:         p.SocialSecurity.StringFixed(2),
		Medicare:               p.Medicare.StringFixed(2),
		HealthInsurance:        p.HealthInsurance.StringFixed(2),
		RetirementContribution: p.RetirementContribution.StringFixed(2),
		TotalDeductions:        p.TotalDeductions.StringFixed(2),
		NetPay:                 p.NetPay.StringFixed(2),
	}
}

func formatTime(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.Format(layout)
	return &s
}
