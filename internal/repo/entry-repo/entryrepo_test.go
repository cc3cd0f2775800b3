package entryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var entryColumns = []string{
	"id", "employee_id", "payroll_run_id", "hours_worked", "days_worked",
	"payment_type", "deferred_payment_date", "payment_date", "is_paid", "notes",
	"gross_pay", "federal_tax", "state_tax", "social_security", "medicare",
	"health_insurance", "retirement_contribution", "total_deductions", "net_pay",
	"created_at", "first_name", "last_name", "worker_type",
}

const (
	selectQuery = `SELECT we.id, we.employee_id, we.payroll_run_id, we.hours_worked, we.days_worked, we.payment_type, we.deferred_payment_date, we.payment_date, we.is_paid, we.notes, we.gross_pay, we.federal_tax, we.state_tax, we.social_security, we.medicare, we.health_insurance, we.retirement_contribution, we.total_deductions, we.net_pay, we.created_at, e.first_name, e.last_name, e.worker_type FROM work_entries we JOIN employees e ON e.id = we.employee_id`
	lockQuery   = `SELECT is_closed FROM payroll_runs WHERE id = $1 FOR UPDATE`
	upsertQuery = `INSERT INTO work_entries (employee_id, payroll_run_id, hours_worked, days_worked, payment_type, deferred_payment_date, notes, gross_pay, federal_tax, state_tax, social_security, medicare, health_insurance, retirement_contribution, total_deductions, net_pay) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) ON CONFLICT (employee_id, payroll_run_id) DO UPDATE`
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func decPtr(v float64) *decimal.Decimal {
	d := dec(v)
	return &d
}

func hourlyPay() *domain.Pay {
	return &domain.Pay{
		GrossPay:               dec(800),
		FederalTax:             dec(80),
		StateTax:               dec(40),
		SocialSecurity:         dec(49.6),
		Medicare:               dec(11.6),
		HealthInsurance:        dec(100),
		RetirementContribution: dec(50),
		TotalDeductions:        dec(331.2),
		NetPay:                 dec(468.8),
	}
}

func TestRepository_UpsertBatch(t *testing.T) {
	repo, mock, tx := NewMock(t)
	created := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	deferredTo := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	entries := []domain.WorkEntry{
		{EmployeeID: 1, HoursWorked: decPtr(40), PaymentType: domain.PaymentBankTransfer, Pay: hourlyPay()},
		{EmployeeID: 2, DaysWorked: decPtr(5), PaymentType: domain.PaymentDeferred, DeferredPaymentDate: &deferredTo, Notes: "holiday"},
	}
	firstArgs := []any{1, 5, "40", nil, "bank_transfer", (*time.Time)(nil), "",
		"800.00", "80.00", "40.00", "49.60", "11.60", "100.00", "50.00", "331.20", "468.80"}
	secondArgs := []any{2, 5, nil, "5", "deferred", &deferredTo, "holiday",
		nil, nil, nil, nil, nil, nil, nil, nil, nil}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		result      []domain.WorkEntry
	}{
		{
			name: "Batch saved",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).WithArgs(5).
						WillReturnRows(pgxmock.NewRows([]string{"is_closed"}).AddRow(false))
					mock.ExpectQuery(regexp.QuoteMeta(upsertQuery)).WithArgs(firstArgs...).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(11, created))
					mock.ExpectQuery(regexp.QuoteMeta(upsertQuery)).WithArgs(secondArgs...).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(12, created))
					return fn(ctx)
				})
			},
			result: []domain.WorkEntry{
				{ID: 11, EmployeeID: 1, PayrollRunID: 5, HoursWorked: decPtr(40), PaymentType: domain.PaymentBankTransfer, Pay: hourlyPay(), CreatedAt: created},
				{ID: 12, EmployeeID: 2, PayrollRunID: 5, DaysWorked: decPtr(5), PaymentType: domain.PaymentDeferred, DeferredPaymentDate: &deferredTo, Notes: "holiday", CreatedAt: created},
			},
		},
		{
			name: "Run does not exist",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).WithArgs(5).WillReturnError(pgx.ErrNoRows)
					return fn(ctx)
				})
			},
			expectedErr: domain.ErrRunNotFound,
		},
		{
			name: "Run is closed",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).WithArgs(5).
						WillReturnRows(pgxmock.NewRows([]string{"is_closed"}).AddRow(true))
					return fn(ctx)
				})
			},
			expectedErr: domain.ErrRunClosed,
		},
		{
			name: "Lock fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).WithArgs(5).WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectedErr: errors.New("database error"),
		},
		{
			name: "Second entry fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).WithArgs(5).
						WillReturnRows(pgxmock.NewRows([]string{"is_closed"}).AddRow(false))
					mock.ExpectQuery(regexp.QuoteMeta(upsertQuery)).WithArgs(firstArgs...).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(11, created))
					mock.ExpectQuery(regexp.QuoteMeta(upsertQuery)).WithArgs(secondArgs...).
						WillReturnError(errors.New("check constraint violated"))
					return fn(ctx)
				})
			},
			expectedErr: errors.New("check constraint violated"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpsertBatch(context.Background(), 5, entries)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	// the input slice is left untouched
	assert.Zero(t, entries[0].ID)
	assert.Zero(t, entries[0].PayrollRunID)
}

func TestRepository_FindByRunID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	created := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	paid := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(selectQuery + ` WHERE we.payroll_run_id = $1 ORDER BY we.id`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.WorkEntry
	}{
		{
			name: "Entries found",
			mockSetup: func() {
				rows := pgxmock.NewRows(entryColumns).
					AddRow(11, 1, 5, 40.0, nil, "bank_transfer", nil, &paid, true, "",
						800.0, 80.0, 40.0, 49.6, 11.6, 100.0, 50.0, 331.2, 468.8,
						created, "Ada", "Lovelace", "hourly").
					AddRow(12, 2, 5, nil, 5.0, "cash", nil, nil, false, "no pay yet",
						nil, nil, nil, nil, nil, nil, nil, nil, nil,
						created, "Alan", "Turing", "daily")
				mock.ExpectQuery(query).WithArgs(5).WillReturnRows(rows)
			},
			result: []domain.WorkEntry{
				{
					ID: 11, EmployeeID: 1, PayrollRunID: 5, HoursWorked: decPtr(40), PaymentType: domain.PaymentBankTransfer,
					PaymentDate: &paid, IsPaid: true, Pay: hourlyPay(), CreatedAt: created,
					Employee: &domain.Employee{ID: 1, FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly},
				},
				{
					ID: 12, EmployeeID: 2, PayrollRunID: 5, DaysWorked: decPtr(5), PaymentType: domain.PaymentCash,
					Notes: "no pay yet", CreatedAt: created,
					Employee: &domain.Employee{ID: 2, FirstName: "Alan", LastName: "Turing", WageType: domain.WageDaily},
				},
			},
		},
		{
			name: "No entries",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(5).WillReturnRows(pgxmock.NewRows(entryColumns))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(5).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := pgxmock.NewRows(entryColumns).
					AddRow(11, 1, 5, "forty", nil, "bank_transfer", nil, nil, false, "",
						nil, nil, nil, nil, nil, nil, nil, nil, nil,
						created, "Ada", "Lovelace", "hourly")
				mock.ExpectQuery(query).WithArgs(5).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByRunID(context.Background(), 5)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	created := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(selectQuery + ` WHERE we.id = $1`)

	rows := pgxmock.NewRows(entryColumns).
		AddRow(11, 1, 5, 40.0, nil, "check", nil, nil, false, "",
			800.0, 80.0, 40.0, 49.6, 11.6, 100.0, 50.0, 331.2, 468.8,
			created, "Ada", "Lovelace", "hourly")
	mock.ExpectQuery(query).WithArgs(11).WillReturnRows(rows)

	entry, err := repo.FindByID(context.Background(), 11)
	assert.NoError(t, err)
	assert.Equal(t, &domain.WorkEntry{
		ID: 11, EmployeeID: 1, PayrollRunID: 5, HoursWorked: decPtr(40), PaymentType: domain.PaymentCheck,
		Pay: hourlyPay(), CreatedAt: created,
		Employee: &domain.Employee{ID: 1, FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly},
	}, entry)

	mock.ExpectQuery(query).WithArgs(12).WillReturnError(pgx.ErrNoRows)
	entry, err = repo.FindByID(context.Background(), 12)
	assert.NoError(t, err)
	assert.Nil(t, entry)

	mock.ExpectQuery(query).WithArgs(13).WillReturnError(errors.New("database error"))
	entry, err = repo.FindByID(context.Background(), 13)
	assert.Error(t, err)
	assert.Nil(t, entry)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByRunID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM work_entries WHERE payroll_run_id = $1`)

	mock.ExpectQuery(query).WithArgs(5).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	count, err := repo.CountByRunID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	mock.ExpectQuery(query).WithArgs(6).WillReturnError(errors.New("database error"))
	count, err = repo.CountByRunID(context.Background(), 6)
	assert.Error(t, err)
	assert.Zero(t, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
