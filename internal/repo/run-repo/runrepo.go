package runrepo

import (
	"context"
	"errors"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const columns = `id, payroll_period_start, payroll_period_end, date_created, date_processed, is_closed, notes`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create inserts an open run. The single-open index rejects a second one with domain.ErrRunAlreadyOpen.
func (r *Repository) Create(ctx context.Context, run *domain.PayrollRun) (*domain.PayrollRun, error) {
	query := `
        INSERT INTO payroll_runs (payroll_period_start, payroll_period_end, notes)
        VALUES ($1, $2, $3)
        RETURNING id, date_created
    `
	err := r.db.QueryRow(ctx, query, run.PeriodStart, run.PeriodEnd, run.Notes).Scan(&run.ID, &run.DateCreated)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pg.UniqueViolation {
			zap.L().Info("open payroll run already exists", zap.String("constraint", pgErr.ConstraintName))
			return nil, domain.ErrRunAlreadyOpen
		}
		zap.L().Error("can't save payroll run", zap.Error(err))
		return nil, err
	}
	return run, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PayrollRun, error) {
	query := `
        SELECT ` + columns + `
        FROM payroll_runs
        WHERE id = $1
    `
	run, err := scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payroll run", zap.Int("run_id", id), zap.Error(err))
		return nil, err
	}
	return run, nil
}

func (r *Repository) FindOpen(ctx context.Context) (*domain.PayrollRun, error) {
	query := `
        SELECT ` + columns + `
        FROM payroll_runs
        WHERE NOT is_closed
    `
	run, err := scan(r.db.QueryRow(ctx, query))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find open payroll run", zap.Error(err))
		return nil, err
	}
	return run, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.PayrollRun, error) {
	query := `
        SELECT ` + columns + `
        FROM payroll_runs
        ORDER BY date_created DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get payroll runs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var runs []domain.PayrollRun
	for rows.Next() {
		run, err := scan(rows)
		if err != nil {
			zap.L().Error("can't scan payroll run row", zap.Error(err))
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payroll run rows", zap.Error(err))
		return nil, err
	}
	return runs, nil
}

// Close flips an open run to closed and marks its non-deferred entries paid
// on closedAt. A run that is already closed yields domain.ErrRunClosed.
func (r *Repository) Close(ctx context.Context, id int, closedAt time.Time) (*domain.PayrollRun, error) {
	closeQuery := `
        UPDATE payroll_runs
        SET is_closed = TRUE, date_processed = $2
        WHERE id = $1 AND NOT is_closed
        RETURNING ` + columns
	payQuery := `
        UPDATE work_entries
        SET is_paid = TRUE, payment_date = $2
        WHERE payroll_run_id = $1 AND payment_type <> 'deferred'
    `
	var run *domain.PayrollRun
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		closed, err := scan(r.db.QueryRow(ctx, closeQuery, id, closedAt))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRunClosed
		}
		if err != nil {
			zap.L().Error("can't close payroll run", zap.Int("run_id", id), zap.Error(err))
			return err
		}

		tag, err := r.db.Exec(ctx, payQuery, id, closedAt)
		if err != nil {
			zap.L().Error("can't mark work entries paid", zap.Int("run_id", id), zap.Error(err))
			return err
		}
		zap.L().Debug("work entries marked paid", zap.Int("run_id", id), zap.Int64("entries", tag.RowsAffected()))

		run = closed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

func scan(row pgx.Row) (*domain.PayrollRun, error) {
	var run domain.PayrollRun
	err := row.Scan(
		&run.ID,
		&run.PeriodStart,
		&run.PeriodEnd,
		&run.DateCreated,
		&run.DateProcessed,
		&run.IsClosed,
		&run.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
