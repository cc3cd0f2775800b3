package runservice

//go:generate mockgen -source=runservice.go -destination=mock_runservice.go -package=runservice

import (
	"context"
	"errors"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, run *domain.PayrollRun) (*domain.PayrollRun, error)
	FindByID(ctx context.Context, id int) (*domain.PayrollRun, error)
	FindOpen(ctx context.Context) (*domain.PayrollRun, error)
	List(ctx context.Context) ([]domain.PayrollRun, error)
	Close(ctx context.Context, id int, closedAt time.Time) (*domain.PayrollRun, error)
}

type EntryRepo interface {
	FindByRunID(ctx context.Context, runID int) ([]domain.WorkEntry, error)
	CountByRunID(ctx context.Context, runID int) (int, error)
}

// Service owns the open → closed lifecycle of payroll runs.
type Service struct {
	repo      Repo
	entryRepo EntryRepo
}

func New(repo Repo, entryRepo EntryRepo) *Service {
	return &Service{
		repo:      repo,
		entryRepo: entryRepo,
	}
}

// Create opens a run for the inclusive period [start, end].
func (s *Service) Create(ctx context.Context, start, end time.Time, notes string) (*domain.PayrollRun, error) {
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return nil, domain.ErrInvalidPeriod
	}

	open, err := s.repo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}
	if open != nil {
		zap.L().Info("payroll run already open", zap.Int("run_id", open.ID))
		return nil, domain.ErrRunAlreadyOpen
	}

	run, err := s.repo.Create(ctx, &domain.PayrollRun{
		PeriodStart: start,
		PeriodEnd:   end,
		Notes:       notes,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("payroll run created",
		zap.Int("run_id", run.ID),
		zap.Time("period_start", start),
		zap.Time("period_end", end),
	)
	return run, nil
}

// Get returns the run with its work entries.
func (s *Service) Get(ctx context.Context, id int) (*domain.PayrollRun, error) {
	run, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, domain.ErrRunNotFound
	}
	if err := s.withEntries(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *Service) List(ctx context.Context) ([]domain.PayrollRun, error) {
	runs, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list payroll runs", zap.Error(err))
		return nil, err
	}
	return runs, nil
}

// Active returns the open run with its entries, or nil when every run is closed.
func (s *Service) Active(ctx context.Context) (*domain.PayrollRun, error) {
	run, err := s.repo.FindOpen(ctx)
	if err != nil || run == nil {
		return nil, err
	}
	if err := s.withEntries(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// Close moves an open run with at least one entry to closed. It happens once:
// closing a closed run fails with domain.ErrRunClosed and changes nothing.
func (s *Service) Close(ctx context.Context, id int) (*domain.PayrollRun, error) {
	run, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, domain.ErrRunNotFound
	}
	if run.IsClosed {
		return nil, domain.ErrRunClosed
	}

	count, err := s.entryRepo.CountByRunID(ctx, id)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrNoValidEntries
	}

	closed, err := s.repo.Close(ctx, id, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrRunClosed) {
			zap.L().Info("payroll run closed concurrently", zap.Int("run_id", id))
		} else {
			zap.L().Error("can't close payroll run", zap.Int("run_id", id), zap.Error(err))
		}
		return nil, err
	}
	// The close is committed at this point, a failed reload only costs the entries.
	if err := s.withEntries(ctx, closed); err != nil {
		zap.L().Warn("payroll run closed but entries not reloaded", zap.Int("run_id", id), zap.Error(err))
	}
	zap.L().Info("payroll run closed", zap.Int("run_id", id), zap.Int("entries", len(closed.WorkEntries)))
	return closed, nil
}

func (s *Service) withEntries(ctx context.Context, run *domain.PayrollRun) error {
	entries, err := s.entryRepo.FindByRunID(ctx, run.ID)
	if err != nil {
		return err
	}
	run.WorkEntries = entries
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
