package employeerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var employeeColumns = []string{"id", "first_name", "last_name", "worker_type", "hourly_rate", "daily_rate", "is_active", "hire_date"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func rate(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	hireDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO employees (first_name, last_name, worker_type, hourly_rate, daily_rate, is_active, hire_date) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`)

	tests := []struct {
		name      string
		employee  *domain.Employee
		mockSetup func()
		expectErr bool
		result    *domain.Employee
	}{
		{
			name: "Hourly employee saved",
			employee: &domain.Employee{
				FirstName:  "Ada",
				LastName:   "Lovelace",
				WageType:   domain.WageHourly,
				HourlyRate: rate(20.5),
				IsActive:   true,
				HireDate:   hireDate,
			},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("Ada", "Lovelace", "hourly", "20.5", nil, true, hireDate).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))
			},
			result: &domain.Employee{
				ID:         7,
				FirstName:  "Ada",
				LastName:   "Lovelace",
				WageType:   domain.WageHourly,
				HourlyRate: rate(20.5),
				IsActive:   true,
				HireDate:   hireDate,
			},
		},
		{
			name: "Daily employee saved",
			employee: &domain.Employee{
				FirstName: "Alan",
				LastName:  "Turing",
				WageType:  domain.WageDaily,
				DailyRate: rate(150),
				IsActive:  true,
				HireDate:  hireDate,
			},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("Alan", "Turing", "daily", nil, "150", true, hireDate).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(8))
			},
			result: &domain.Employee{
				ID:        8,
				FirstName: "Alan",
				LastName:  "Turing",
				WageType:  domain.WageDaily,
				DailyRate: rate(150),
				IsActive:  true,
				HireDate:  hireDate,
			},
		},
		{
			name: "Database error",
			employee: &domain.Employee{
				FirstName: "Alan",
				LastName:  "Turing",
				WageType:  domain.WageDaily,
				DailyRate: rate(150),
				HireDate:  hireDate,
			},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("Alan", "Turing", "daily", nil, "150", false, hireDate).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.employee)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	hireDate := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, first_name, last_name, worker_type, hourly_rate, daily_rate, is_active, hire_date FROM employees WHERE id = $1`)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Employee
	}{
		{
			name: "Employee exists",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(employeeColumns).
					AddRow(1, "Ada", "Lovelace", "hourly", 20.0, nil, true, hireDate)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.Employee{
				ID:         1,
				FirstName:  "Ada",
				LastName:   "Lovelace",
				WageType:   domain.WageHourly,
				HourlyRate: rate(20),
				IsActive:   true,
				HireDate:   hireDate,
			},
		},
		{
			name: "Employee does not exist",
			id:   2,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   3,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	hireDate := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, first_name, last_name, worker_type, hourly_rate, daily_rate, is_active, hire_date FROM employees WHERE is_active OR NOT $1 ORDER BY last_name, first_name, id`)

	tests := []struct {
		name       string
		activeOnly bool
		mockSetup  func()
		expectErr  bool
		result     []domain.Employee
	}{
		{
			name:       "Active employees",
			activeOnly: true,
			mockSetup: func() {
				rows := pgxmock.NewRows(employeeColumns).
					AddRow(1, "Ada", "Lovelace", "hourly", 20.0, nil, true, hireDate).
					AddRow(2, "Alan", "Turing", "daily", nil, 150.0, true, hireDate)
				mock.ExpectQuery(query).WithArgs(true).WillReturnRows(rows)
			},
			result: []domain.Employee{
				{ID: 1, FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate(20), IsActive: true, HireDate: hireDate},
				{ID: 2, FirstName: "Alan", LastName: "Turing", WageType: domain.WageDaily, DailyRate: rate(150), IsActive: true, HireDate: hireDate},
			},
		},
		{
			name:       "No employees",
			activeOnly: false,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(false).WillReturnRows(pgxmock.NewRows(employeeColumns))
			},
			result: nil,
		},
		{
			name:       "Database error",
			activeOnly: true,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(true).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name:       "Scan row error",
			activeOnly: true,
			mockSetup: func() {
				rows := pgxmock.NewRows(employeeColumns).
					AddRow(1, "Ada", "Lovelace", "hourly", "not a number", nil, true, hireDate)
				mock.ExpectQuery(query).WithArgs(true).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.activeOnly)
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

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	hireDate := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`UPDATE employees SET first_name = $2, last_name = $3, worker_type = $4, hourly_rate = $5, daily_rate = $6, is_active = $7, hire_date = $8 WHERE id = $1 RETURNING id`)
	employee := func() *domain.Employee {
		return &domain.Employee{ID: 4, FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate(22.5), HireDate: hireDate}
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Employee
	}{
		{
			name: "Employee deactivated with new rate",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(4, "Ada", "Lovelace", "hourly", "22.5", nil, false, hireDate).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(4))
			},
			result: employee(),
		},
		{
			name: "Employee does not exist",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Update(context.Background(), employee())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`DELETE FROM employees WHERE id = $1`)

	tests := []struct {
		name          string
		mockSetup     func()
		expectDeleted bool
		expectedError error
	}{
		{
			name: "Deleted",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(4).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectDeleted: true,
		},
		{
			name: "Employee does not exist",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(4).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			name: "Employee has work entries",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(4).WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "work_entries_employee_id_fkey"})
			},
			expectedError: domain.ErrEmployeeInUse,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(4).WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.Delete(context.Background(), 4)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectDeleted, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
