// Package payrollservice drives a payroll run from draft entries to close.
package payrollservice

//go:generate mockgen -source=payrollservice.go -destination=mock_payrollservice.go -package=payrollservice

import (
	"context"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/internal/paycalc"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Runs interface {
	Create(ctx context.Context, start, end time.Time, notes string) (*domain.PayrollRun, error)
	Get(ctx context.Context, id int) (*domain.PayrollRun, error)
	List(ctx context.Context) ([]domain.PayrollRun, error)
	Active(ctx context.Context) (*domain.PayrollRun, error)
	Close(ctx context.Context, id int) (*domain.PayrollRun, error)
}

type Entries interface {
	SubmitBatch(ctx context.Context, runID int, entries []domain.WorkEntry) ([]domain.WorkEntry, error)
	Get(ctx context.Context, id int) (*domain.WorkEntry, error)
}

type Employees interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Employee, error)
}

// Notifier hands a closed run over to its observers. Publish must not block on them.
type Notifier interface {
	Publish(ctx context.Context, event domain.RunClosedEvent)
}

type Service struct {
	runs      Runs
	entries   Entries
	employees Employees
	notifier  Notifier
}

func New(runs Runs, entries Entries, employees Employees, notifier Notifier) *Service {
	return &Service{
		runs:      runs,
		entries:   entries,
		employees: employees,
		notifier:  notifier,
	}
}

func (s *Service) CreateRun(ctx context.Context, start, end time.Time, notes string) (*domain.PayrollRun, error) {
	return s.runs.Create(ctx, start, end, notes)
}

func (s *Service) ListRuns(ctx context.Context) ([]domain.PayrollRun, error) {
	return s.runs.List(ctx)
}

func (s *Service) GetRun(ctx context.Context, id int) (*domain.PayrollRun, error) {
	return s.runs.Get(ctx, id)
}

// GetActiveRun returns the open run, or nil when there is none.
func (s *Service) GetActiveRun(ctx context.Context) (*domain.PayrollRun, error) {
	return s.runs.Active(ctx)
}

func (s *Service) SubmitEntries(ctx context.Context, runID int, entries []domain.WorkEntry) ([]domain.WorkEntry, error) {
	return s.entries.SubmitBatch(ctx, runID, entries)
}

// GetEntry returns an entry only if it belongs to runID.
func (s *Service) GetEntry(ctx context.Context, runID, entryID int) (*domain.WorkEntry, error) {
	entry, err := s.entries.Get(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.PayrollRunID != runID {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

// Preview prices raw figures the way a submitted entry would be priced.
func (s *Service) Preview(wageType domain.WageType, rate decimal.Decimal, hours, days *decimal.Decimal) (domain.Pay, error) {
	return paycalc.Preview(wageType, rate, hours, days)
}

// PrepareEntries builds one draft per active employee for an open run.
// Drafts start from what was already submitted for the employee; the rest
// have no quantity and are paid by bank transfer. Nothing is written.
func (s *Service) PrepareEntries(ctx context.Context, runID int) ([]domain.WorkEntry, error) {
	run, err := s.runs.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.IsClosed {
		return nil, domain.ErrRunClosed
	}

	employees, err := s.employees.List(ctx, true)
	if err != nil {
		return nil, err
	}

	submitted := make(map[int]domain.WorkEntry, len(run.WorkEntries))
	for _, entry := range run.WorkEntries {
		submitted[entry.EmployeeID] = entry
	}

	drafts := make([]domain.WorkEntry, 0, len(employees))
	for _, employee := range employees {
		employee := employee
		draft, ok := submitted[employee.ID]
		if !ok {
			draft = domain.WorkEntry{
				EmployeeID:   employee.ID,
				PayrollRunID: runID,
				PaymentType:  domain.PaymentBankTransfer,
			}
		}
		draft.Employee = &employee
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// CloseRun closes a run whose entries were submitted earlier and notifies observers.
func (s *Service) CloseRun(ctx context.Context, id int) (*domain.PayrollRun, error) {
	run, err := s.runs.Close(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, run)
	return run, nil
}

// CloseRunWithEntries submits the drafts that carry work and closes the run.
// Drafts of unknown or inactive employees and drafts without a positive
// quantity for the employee's wage type are skipped. When the entries are
// saved but the close fails the result is a *domain.PartialCloseError; the
// entries stay saved and only the close has to be repeated.
func (s *Service) CloseRunWithEntries(ctx context.Context, runID int, drafts []domain.WorkEntry) (*domain.PayrollRun, error) {
	employees, err := s.employees.List(ctx, true)
	if err != nil {
		return nil, err
	}
	entries := filterDrafts(drafts, employees)
	if len(entries) == 0 {
		return nil, domain.ErrNoValidEntries
	}

	saved, err := s.entries.SubmitBatch(ctx, runID, entries)
	if err != nil {
		return nil, err
	}

	run, err := s.runs.Close(ctx, runID)
	if err != nil {
		zap.L().Error("work entries saved but payroll run not closed",
			zap.Int("run_id", runID),
			zap.Int("entries", len(saved)),
			zap.Error(err),
		)
		return nil, &domain.PartialCloseError{RunID: runID, Entries: saved, Err: err}
	}
	if len(run.WorkEntries) == 0 {
		run.WorkEntries = saved
	}
	s.publish(ctx, run)
	return run, nil
}

func (s *Service) publish(ctx context.Context, run *domain.PayrollRun) {
	event := domain.RunClosedEvent{
		RunID:    run.ID,
		Entries:  len(run.WorkEntries),
		TotalNet: decimal.Zero,
	}
	if run.DateProcessed != nil {
		event.ClosedAt = *run.DateProcessed
	}
	for _, entry := range run.WorkEntries {
		if entry.Pay != nil {
			event.TotalNet = event.TotalNet.Add(entry.Pay.NetPay)
		}
	}
	s.notifier.Publish(ctx, event)
}

func filterDrafts(drafts []domain.WorkEntry, active []domain.Employee) []domain.WorkEntry {
	wageTypes := make(map[int]domain.WageType, len(active))
	for _, e := range active {
		wageTypes[e.ID] = e.WageType
	}

	entries := make([]domain.WorkEntry, 0, len(drafts))
	for _, draft := range drafts {
		wageType, ok := wageTypes[draft.EmployeeID]
		if !ok {
			continue
		}
		switch wageType {
		case domain.WageHourly:
			if draft.HoursWorked == nil || !draft.HoursWorked.IsPositive() {
				continue
			}
			draft.DaysWorked = nil
		case domain.WageDaily:
			if draft.DaysWorked == nil || !draft.DaysWorked.IsPositive() {
				continue
			}
			draft.HoursWorked = nil
		}
		draft.Employee = nil
		draft.Pay = nil
		entries = append(entries, draft)
	}
	return entries
}
