package entryservice

//go:generate mockgen -source=entryservice.go -destination=mock_entryservice.go -package=entryservice

import (
	"context"
	"fmt"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/internal/paycalc"
	"go.uber.org/zap"
)

type Repo interface {
	UpsertBatch(ctx context.Context, runID int, entries []domain.WorkEntry) ([]domain.WorkEntry, error)
	FindByRunID(ctx context.Context, runID int) ([]domain.WorkEntry, error)
	FindByID(ctx context.Context, id int) (*domain.WorkEntry, error)
}

type EmployeeRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Employee, error)
}

type RunRepo interface {
	FindByID(ctx context.Context, id int) (*domain.PayrollRun, error)
}

// Service is the work entry store of payroll runs.
type Service struct {
	repo         Repo
	employeeRepo EmployeeRepo
	runRepo      RunRepo
}

func New(repo Repo, employeeRepo EmployeeRepo, runRepo RunRepo) *Service {
	return &Service{
		repo:         repo,
		employeeRepo: employeeRepo,
		runRepo:      runRepo,
	}
}

// SubmitBatch validates every entry, prices it and stores the batch for runID.
// Nothing is written unless the whole batch is valid. An entry for an employee
// that already has one in the run replaces it.
func (s *Service) SubmitBatch(ctx context.Context, runID int, entries []domain.WorkEntry) ([]domain.WorkEntry, error) {
	if len(entries) == 0 {
		return nil, domain.ErrNoValidEntries
	}

	run, err := s.runRepo.FindByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, domain.ErrRunNotFound
	}
	if run.IsClosed {
		return nil, domain.ErrRunClosed
	}

	priced := make([]domain.WorkEntry, len(entries))
	employees := make(map[int]*domain.Employee, len(entries))
	for i, entry := range entries {
		if _, ok := employees[entry.EmployeeID]; ok {
			return nil, &domain.EntryError{Index: i, EmployeeID: entry.EmployeeID,
				Err: &domain.FieldError{Field: "employee_id", Reason: "appears more than once in the batch"}}
		}
		employee, err := s.employeeRepo.FindByID(ctx, entry.EmployeeID)
		if err != nil {
			return nil, err
		}
		if err := s.check(employee, &entry); err != nil {
			zap.L().Info("work entry rejected",
				zap.Int("run_id", runID),
				zap.Int("index", i),
				zap.Int("employee_id", entry.EmployeeID),
				zap.Error(err),
			)
			return nil, &domain.EntryError{Index: i, EmployeeID: entry.EmployeeID, Err: err}
		}
		employees[entry.EmployeeID] = employee
		priced[i] = entry
	}

	saved, err := s.repo.UpsertBatch(ctx, runID, priced)
	if err != nil {
		return nil, err
	}
	for i := range saved {
		if e := employees[saved[i].EmployeeID]; e != nil {
			saved[i].Employee = &domain.Employee{ID: e.ID, FirstName: e.FirstName, LastName: e.LastName, WageType: e.WageType}
		}
	}
	zap.L().Info("work entries saved", zap.Int("run_id", runID), zap.Int("entries", len(saved)))
	return saved, nil
}

// check validates entry against employee and fills in its pay.
func (s *Service) check(employee *domain.Employee, entry *domain.WorkEntry) error {
	if employee == nil {
		return domain.ErrEmployeeNotFound
	}
	if !employee.IsActive {
		return &domain.FieldError{Field: "employee_id", Reason: "is not an active employee"}
	}

	if entry.PaymentType == "" {
		entry.PaymentType = domain.PaymentBankTransfer
	}
	if !entry.PaymentType.Valid() {
		return &domain.FieldError{Field: "payment_type", Reason: "must be one of bank_transfer, check, cash or deferred"}
	}
	if entry.PaymentType == domain.PaymentDeferred && entry.DeferredPaymentDate == nil {
		return &domain.FieldError{Field: "deferred_payment_date", Reason: "is required for deferred payments"}
	}
	if entry.PaymentType != domain.PaymentDeferred && entry.DeferredPaymentDate != nil {
		return &domain.FieldError{Field: "deferred_payment_date", Reason: "is only allowed for deferred payments"}
	}

	quantity, err := entry.Quantity()
	if err != nil {
		return err
	}
	if quantity.Type() != employee.WageType {
		field := "days_worked"
		if employee.WageType == domain.WageHourly {
			field = "hours_worked"
		}
		return &domain.FieldError{Field: field, Reason: fmt.Sprintf("is required for %s employees", employee.WageType)}
	}
	field := "hours_worked"
	if quantity.Type() == domain.WageDaily {
		field = "days_worked"
	}
	if !quantity.Amount().IsPositive() {
		return &domain.FieldError{Field: field, Reason: "must be greater than zero"}
	}
	if !domain.FitsScale(quantity.Amount()) {
		return &domain.FieldError{Field: field, Reason: "must have at most two decimal places"}
	}

	pay, err := paycalc.Price(*employee, *entry)
	if err != nil {
		return err
	}
	entry.Pay = &pay
	return nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.WorkEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

func (s *Service) ListByRun(ctx context.Context, runID int) ([]domain.WorkEntry, error) {
	entries, err := s.repo.FindByRunID(ctx, runID)
	if err != nil {
		zap.L().Error("failed to list work entries", zap.Int("run_id", runID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}
