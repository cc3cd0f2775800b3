package employeeservice

//go:generate mockgen -source=employeeservice.go -destination=mock_employeeservice.go -package=employeeservice

import (
	"context"
	"strings"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id int) (*domain.Employee, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Create registers an employee. Only the rate matching the wage type may be set;
// a missing hire date defaults to today.
func (s *Service) Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	employee.FirstName = strings.TrimSpace(employee.FirstName)
	employee.LastName = strings.TrimSpace(employee.LastName)
	if err := validate(employee); err != nil {
		return nil, err
	}
	if employee.HireDate.IsZero() {
		employee.HireDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	created, err := s.repo.Create(ctx, &employee)
	if err != nil {
		zap.L().Error("can't create employee", zap.Error(err))
		return nil, err
	}
	zap.L().Info("employee created", zap.Int("employee_id", created.ID), zap.String("wage_type", string(created.WageType)))
	return created, nil
}

// Update replaces the editable fields of an employee, re-checked like on create.
// A zero hire date keeps the stored one. Deactivated employees drop out of
// drafts and are rejected by new work entries; entries already saved stay.
func (s *Service) Update(ctx context.Context, id int, employee domain.Employee) (*domain.Employee, error) {
	employee.ID = id
	employee.FirstName = strings.TrimSpace(employee.FirstName)
	employee.LastName = strings.TrimSpace(employee.LastName)
	if err := validate(employee); err != nil {
		return nil, err
	}
	if employee.HireDate.IsZero() {
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		employee.HireDate = current.HireDate
	}

	updated, err := s.repo.Update(ctx, &employee)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	zap.L().Info("employee updated", zap.Int("employee_id", id), zap.Bool("active", updated.IsActive))
	return updated, nil
}

// Delete removes an employee that never had work entries.
func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrEmployeeNotFound
	}
	zap.L().Info("employee deleted", zap.Int("employee_id", id))
	return nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]domain.Employee, error) {
	employees, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		zap.L().Error("failed to list employees", zap.Error(err))
		return nil, err
	}
	return employees, nil
}

func validate(e domain.Employee) error {
	switch {
	case e.FirstName == "":
		return &domain.FieldError{Field: "first_name", Reason: "is required"}
	case e.LastName == "":
		return &domain.FieldError{Field: "last_name", Reason: "is required"}
	case !e.WageType.Valid():
		return &domain.FieldError{Field: "worker_type", Reason: "must be hourly or daily"}
	case e.WageType == domain.WageHourly && e.DailyRate != nil:
		return &domain.FieldError{Field: "daily_rate", Reason: "must be empty for hourly employees"}
	case e.WageType == domain.WageDaily && e.HourlyRate != nil:
		return &domain.FieldError{Field: "hourly_rate", Reason: "must be empty for daily employees"}
	}

	wage, err := e.Wage()
	if err != nil {
		return err
	}
	field := string(wage.Type()) + "_rate"
	if wage.Amount().IsNegative() {
		return &domain.FieldError{Field: field, Reason: "must not be negative"}
	}
	if !domain.FitsScale(wage.Amount()) {
		return &domain.FieldError{Field: field, Reason: "must have at most two decimal places"}
	}
	return nil
}
