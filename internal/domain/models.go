package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Admin struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Employee struct {
	ID         int              `db:"id"`
	FirstName  string           `db:"first_name"`
	LastName   string           `db:"last_name"`
	WageType   WageType         `db:"worker_type"`
	HourlyRate *decimal.Decimal `db:"hourly_rate"`
	DailyRate  *decimal.Decimal `db:"daily_rate"`
	IsActive   bool             `db:"is_active"`
	HireDate   time.Time        `db:"hire_date"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Wage returns the employee's pay terms. The rate matching the wage type must be set.
func (e Employee) Wage() (Wage, error) {
	switch e.WageType {
	case WageHourly:
		if e.HourlyRate == nil {
			return nil, &FieldError{Field: "hourly_rate", Reason: "is required for hourly employees"}
		}
		return HourlyWage{Rate: *e.HourlyRate}, nil
	case WageDaily:
		if e.DailyRate == nil {
			return nil, &FieldError{Field: "daily_rate", Reason: "is required for daily employees"}
		}
		return DailyWage{Rate: *e.DailyRate}, nil
	default:
		return nil, &FieldError{Field: "worker_type", Reason: "must be hourly or daily"}
	}
}

type PayrollRun struct {
	ID            int        `db:"id"`
	PeriodStart   time.Time  `db:"payroll_period_start"`
	PeriodEnd     time.Time  `db:"payroll_period_end"`
	DateCreated   time.Time  `db:"date_created"`
	DateProcessed *time.Time `db:"date_processed"`
	IsClosed      bool       `db:"is_closed"`
	Notes         string     `db:"notes"`
	WorkEntries   []WorkEntry
}

func (r PayrollRun) Status() RunStatus {
	if r.IsClosed {
		return RunClosed
	}
	return RunOpen
}

type WorkEntry struct {
	ID                  int              `db:"id"`
	EmployeeID          int              `db:"employee_id"`
	PayrollRunID        int              `db:"payroll_run_id"`
	HoursWorked         *decimal.Decimal `db:"hours_worked"`
	DaysWorked          *decimal.Decimal `db:"days_worked"`
	PaymentType         PaymentType      `db:"payment_type"`
	DeferredPaymentDate *time.Time       `db:"deferred_payment_date"`
	PaymentDate         *time.Time       `db:"payment_date"`
	IsPaid              bool             `db:"is_paid"`
	Notes               string           `db:"notes"`
	Pay                 *Pay
	CreatedAt           time.Time `db:"created_at"`

	// Employee is joined in on reads for display and is never written.
	Employee *Employee
}

// Quantity returns the reported work. Exactly one of hours and days must be set.
func (w WorkEntry) Quantity() (Quantity, error) {
	switch {
	case w.HoursWorked != nil && w.DaysWorked != nil:
		return nil, &FieldError{Field: "hours_worked", Reason: "must not be combined with days_worked"}
	case w.HoursWorked != nil:
		return Hours{Value: *w.HoursWorked}, nil
	case w.DaysWorked != nil:
		return Days{Value: *w.DaysWorked}, nil
	default:
		return nil, &FieldError{Field: "hours_worked", Reason: "hours_worked or days_worked is required"}
	}
}

// Pay holds the computed figures of a work entry, rounded to cents.
type Pay struct {
	GrossPay               decimal.Decimal `db:"gross_pay"`
	FederalTax             decimal.Decimal `db:"federal_tax"`
	StateTax               decimal.Decimal `db:"state_tax"`
	SocialSecurity         decimal.Decimal `db:"social_security"`
	Medicare               decimal.Decimal `db:"medicare"`
	HealthInsurance        decimal.Decimal `db:"health_insurance"`
	RetirementContribution decimal.Decimal `db:"retirement_contribution"`
	TotalDeductions        decimal.Decimal `db:"total_deductions"`
	NetPay                 decimal.Decimal `db:"net_pay"`
}

// RunClosedEvent is published after a payroll run has been closed.
type RunClosedEvent struct {
	RunID    int
	ClosedAt time.Time
	Entries  int
	TotalNet decimal.Decimal
}
