package employeeservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func rate(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)
	hired := time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		employee      domain.Employee
		prepareMock   func()
		expectedID    int
		expectedError error
	}{
		{
			name:     "Hourly employee",
			employee: domain.Employee{FirstName: " Ada ", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("20"), IsActive: true, HireDate: hired},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
					assert.Equal(t, "Ada", e.FirstName)
					assert.Equal(t, hired, e.HireDate)
					e.ID = 1
					return e, nil
				})
			},
			expectedID: 1,
		},
		{
			name:     "Hire date defaults to today",
			employee: domain.Employee{FirstName: "Alan", LastName: "Turing", WageType: domain.WageDaily, DailyRate: rate("150"), IsActive: true},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
					assert.False(t, e.HireDate.IsZero())
					e.ID = 2
					return e, nil
				})
			},
			expectedID: 2,
		},
		{
			name:          "Missing first name",
			employee:      domain.Employee{FirstName: "  ", LastName: "Turing", WageType: domain.WageDaily, DailyRate: rate("150")},
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "first_name", Reason: "is required"},
		},
		{
			name:          "Missing last name",
			employee:      domain.Employee{FirstName: "Alan", WageType: domain.WageDaily, DailyRate: rate("150")},
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "last_name", Reason: "is required"},
		},
		{
			name:          "Unknown wage type",
			employee:      domain.Employee{FirstName: "Alan", LastName: "Turing", WageType: "weekly", DailyRate: rate("150")},
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "worker_type", Reason: "must be hourly or daily"},
		},
		{
			name:          "Hourly employee with daily rate",
			employee:      domain.Employee{FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("20"), DailyRate: rate("150")},
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "daily_rate", Reason: "must be empty for hourly employees"},
		},
		{
			name:          "Daily employee with hourly rate",
			employee:      domain.Employee{FirstName: "Alan", LastName: "Turing", WageType: domain.WageDaily, HourlyRate: rate("20")},
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "hourly_rate", Reason: "must be empty for daily employees"},
		},
		{
			name:          "Missing rate",
			employee:      domain.Employee{FirstName: "Alan", LastName: "Turing", WageType: domain.WageDaily},
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "daily_rate", Reason: "is required for daily employees"},
		},
		{
			name:          "Negative rate",
			employee:      domain.Employee{FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("-1")},
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "hourly_rate", Reason: "must not be negative"},
		},
		{
			name:          "Rate beyond cents",
			employee:      domain.Employee{FirstName: "Alan", LastName: "Turing", WageType: domain.WageDaily, DailyRate: rate("150.005")},
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "daily_rate", Reason: "must have at most two decimal places"},
		},
		{
			name:     "Database error",
			employee: domain.Employee{FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("20")},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			employee, err := service.Create(context.Background(), tt.employee)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, employee)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, employee.ID)
			}
		})
	}
}

func TestCreate_ValidationCategory(t *testing.T) {
	service, _ := NewMock(t)

	_, err := service.Create(context.Background(), domain.Employee{FirstName: "Ada"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name             string
		id               int
		prepareMock      func()
		expectedEmployee *domain.Employee
		expectedError    error
	}{
		{
			name: "Employee found",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Employee{ID: 1, FirstName: "Ada"}, nil)
			},
			expectedEmployee: &domain.Employee{ID: 1, FirstName: "Ada"},
		},
		{
			name: "Employee not found",
			id:   2,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: domain.ErrEmployeeNotFound,
		},
		{
			name: "Database error",
			id:   3,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			employee, err := service.Get(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedEmployee, employee)
		})
	}
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().List(gomock.Any(), true).Return([]domain.Employee{{ID: 1}, {ID: 2}}, nil)
	employees, err := service.List(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, employees, 2)

	repo.EXPECT().List(gomock.Any(), false).Return(nil, errors.New("database error"))
	employees, err = service.List(context.Background(), false)
	assert.Error(t, err)
	assert.Nil(t, employees)
}

func TestUpdate(t *testing.T) {
	service, repo := NewMock(t)
	hired := time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC)
	stored := &domain.Employee{ID: 4, FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("20"), IsActive: true, HireDate: hired}

	tests := []struct {
		name          string
		employee      domain.Employee
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Deactivated with a new rate",
			employee: domain.Employee{FirstName: "Ada ", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("22.50"), HireDate: hired},
			prepareMock: func() {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
					assert.Equal(t, 4, e.ID)
					assert.Equal(t, "Ada", e.FirstName)
					assert.False(t, e.IsActive)
					assert.Equal(t, "22.5", e.HourlyRate.String())
					return e, nil
				})
			},
		},
		{
			name:     "Hire date kept when omitted",
			employee: domain.Employee{FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("20"), IsActive: true},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 4).Return(stored, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
					assert.Equal(t, hired, e.HireDate)
					return e, nil
				})
			},
		},
		{
			name:          "Rate beyond cents",
			employee:      domain.Employee{FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("20.001"), HireDate: hired},
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "hourly_rate", Reason: "must have at most two decimal places"},
		},
		{
			name:          "Rate of the other wage type",
			employee:      domain.Employee{FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageDaily, HourlyRate: rate("20"), HireDate: hired},
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "hourly_rate", Reason: "must be empty for daily employees"},
		},
		{
			name:     "Employee not found on lookup",
			employee: domain.Employee{FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("20")},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 4).Return(nil, nil)
			},
			expectedError: domain.ErrEmployeeNotFound,
		},
		{
			name:     "Employee not found on update",
			employee: domain.Employee{FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("20"), HireDate: hired},
			prepareMock: func() {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedError: domain.ErrEmployeeNotFound,
		},
		{
			name:     "Database error",
			employee: domain.Employee{FirstName: "Ada", LastName: "Lovelace", WageType: domain.WageHourly, HourlyRate: rate("20"), HireDate: hired},
			prepareMock: func() {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			employee, err := service.Update(context.Background(), 4, tt.employee)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, employee)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, employee.ID)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Delete(gomock.Any(), 4).Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), 4))

	repo.EXPECT().Delete(gomock.Any(), 5).Return(false, nil)
	assert.ErrorIs(t, service.Delete(context.Background(), 5), domain.ErrEmployeeNotFound)

	repo.EXPECT().Delete(gomock.Any(), 6).Return(false, domain.ErrEmployeeInUse)
	err := service.Delete(context.Background(), 6)
	assert.ErrorIs(t, err, domain.ErrEmployeeInUse)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
