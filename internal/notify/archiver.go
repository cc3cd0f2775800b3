package notify

//go:generate mockgen -source=archiver.go -destination=mock_archiver.go -package=notify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/pkg/payslip"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const archiveLimit = 4

type RunReader interface {
	GetRun(ctx context.Context, id int) (*domain.PayrollRun, error)
}

// PayslipArchiver stores the payslips of a closed run under dir/run-<id>.
type PayslipArchiver struct {
	dir  string
	runs RunReader
}

func NewPayslipArchiver(dir string, runs RunReader) *PayslipArchiver {
	return &PayslipArchiver{
		dir:  dir,
		runs: runs,
	}
}

func (a *PayslipArchiver) Name() string {
	return "payslip-archive"
}

func (a *PayslipArchiver) Notify(ctx context.Context, event domain.RunClosedEvent) error {
	run, err := a.runs.GetRun(ctx, event.RunID)
	if err != nil {
		return err
	}

	dir := filepath.Join(a.dir, fmt.Sprintf("run-%d", run.ID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create payslip directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(archiveLimit)
	for _, entry := range run.WorkEntries {
		if entry.Pay == nil {
			continue
		}
		entry := entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writePayslip(filepath.Join(dir, payslip.FileName(*run, entry)), *run, entry)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	zap.L().Info("payslips archived", zap.Int("run_id", run.ID), zap.String("dir", dir))
	return nil
}

func writePayslip(path string, run domain.PayrollRun, entry domain.WorkEntry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return payslip.Render(f, run, entry)
}
