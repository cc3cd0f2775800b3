package entryrepo

import (
	"context"
	"errors"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const selectEntries = `
        SELECT we.id, we.employee_id, we.payroll_run_id, we.hours_worked, we.days_worked,
               we.payment_type, we.deferred_payment_date, we.payment_date, we.is_paid, we.notes,
               we.gross_pay, we.federal_tax, we.state_tax, we.social_security, we.medicare,
               we.health_insurance, we.retirement_contribution, we.total_deductions, we.net_pay,
               we.created_at, e.first_name, e.last_name, e.worker_type
        FROM work_entries we
        JOIN employees e ON e.id = we.employee_id
    `

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

// UpsertBatch writes entries for runID in one transaction. The run row is
// locked first and the batch is rejected if it is missing or closed, so a
// concurrent close can never interleave with the writes.
// Existing entries for the same employee are updated in place.
func (r *Repository) UpsertBatch(ctx context.Context, runID int, entries []domain.WorkEntry) ([]domain.WorkEntry, error) {
	lockQuery := `
        SELECT is_closed
        FROM payroll_runs
        WHERE id = $1
        FOR UPDATE
    `
	upsertQuery := `
        INSERT INTO work_entries (employee_id, payroll_run_id, hours_worked, days_worked, payment_type,
            deferred_payment_date, notes, gross_pay, federal_tax, state_tax, social_security, medicare,
            health_insurance, retirement_contribution, total_deductions, net_pay)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        ON CONFLICT (employee_id, payroll_run_id) DO UPDATE
        SET hours_worked = EXCLUDED.hours_worked,
            days_worked = EXCLUDED.days_worked,
            payment_type = EXCLUDED.payment_type,
            deferred_payment_date = EXCLUDED.deferred_payment_date,
            notes = EXCLUDED.notes,
            gross_pay = EXCLUDED.gross_pay,
            federal_tax = EXCLUDED.federal_tax,
            state_tax = EXCLUDED.state_tax,
            social_security = EXCLUDED.social_security,
            medicare = EXCLUDED.medicare,
            health_insurance = EXCLUDED.health_insurance,
            retirement_contribution = EXCLUDED.retirement_contribution,
            total_deductions = EXCLUDED.total_deductions,
            net_pay = EXCLUDED.net_pay
        RETURNING id, created_at
    `
	saved := make([]domain.WorkEntry, 0, len(entries))
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var closed bool
		err := r.db.QueryRow(ctx, lockQuery, runID).Scan(&closed)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRunNotFound
		}
		if err != nil {
			zap.L().Error("can't lock payroll run", zap.Int("run_id", runID), zap.Error(err))
			return err
		}
		if closed {
			return domain.ErrRunClosed
		}

		for _, entry := range entries {
			entry.PayrollRunID = runID
			args := append([]any{
				entry.EmployeeID,
				runID,
				nullDecimal(entry.HoursWorked),
				nullDecimal(entry.DaysWorked),
				string(entry.PaymentType),
				entry.DeferredPaymentDate,
				entry.Notes,
			}, payArgs(entry.Pay)...)

			err := r.db.QueryRow(ctx, upsertQuery, args...).Scan(&entry.ID, &entry.CreatedAt)
			if err != nil {
				zap.L().Error("can't save work entry",
					zap.Int("run_id", runID),
					zap.Int("employee_id", entry.EmployeeID),
					zap.Error(err),
				)
				return err
			}
			saved = append(saved, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// FindByRunID returns the entries of a run in creation order with the employee projection filled.
func (r *Repository) FindByRunID(ctx context.Context, runID int) ([]domain.WorkEntry, error) {
	query := selectEntries + `
        WHERE we.payroll_run_id = $1
        ORDER BY we.id
    `
	rows, err := r.db.Query(ctx, query, runID)
	if err != nil {
		zap.L().Error("can't get work entries", zap.Int("run_id", runID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WorkEntry
	for rows.Next() {
		entry, err := scan(rows)
		if err != nil {
			zap.L().Error("can't scan work entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate work entry rows", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.WorkEntry, error) {
	query := selectEntries + `
        WHERE we.id = $1
    `
	entry, err := scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find work entry", zap.Int("entry_id", id), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) CountByRunID(ctx context.Context, runID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM work_entries
        WHERE payroll_run_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, runID).Scan(&count); err != nil {
		zap.L().Error("can't count work entries", zap.Int("run_id", runID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func scan(row pgx.Row) (*domain.WorkEntry, error) {
	var (
		entry       domain.WorkEntry
		employee    domain.Employee
		paymentType string
		wageType    string
		hours, days decimal.NullDecimal
		pay         [9]decimal.NullDecimal
	)
	err := row.Scan(
		&entry.ID,
		&entry.EmployeeID,
		&entry.PayrollRunID,
		&hours,
		&days,
		&paymentType,
		&entry.DeferredPaymentDate,
		&entry.PaymentDate,
		&entry.IsPaid,
		&entry.Notes,
		&pay[0], &pay[1], &pay[2], &pay[3], &pay[4], &pay[5], &pay[6], &pay[7], &pay[8],
		&entry.CreatedAt,
		&employee.FirstName,
		&employee.LastName,
		&wageType,
	)
	if err != nil {
		return nil, err
	}

	entry.PaymentType = domain.PaymentType(paymentType)
	if hours.Valid {
		entry.HoursWorked = &hours.Decimal
	}
	if days.Valid {
		entry.DaysWorked = &days.Decimal
	}
	if pay[0].Valid {
		entry.Pay = &domain.Pay{
			GrossPay:               pay[0].Decimal,
			FederalTax:             pay[1].Decimal,
			StateTax:               pay[2].Decimal,
			SocialSecurity:         pay[3].Decimal,
			Medicare:               pay[4].Decimal,
			HealthInsurance:        pay[5].Decimal,
			RetirementContribution: pay[6].Decimal,
			TotalDeductions:        pay[7].Decimal,
			NetPay:                 pay[8].Decimal,
		}
	}
	employee.ID = entry.EmployeeID
	employee.WageType = domain.WageType(wageType)
	entry.Employee = &employee
	return &entry, nil
}

func nullDecimal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func payArgs(p *domain.Pay) []any {
	if p == nil {
		return make([]any, 9)
	}
	return []any{
		p.GrossPay.StringFixed(2),
		p.FederalTax.StringFixed(2),
		p.StateTax.StringFixed(2),
		p.SocialSecurity.StringFixed(2),
		p.Medicare.StringFixed(2),
		p.HealthInsurance.StringFixed(2),
		p.RetirementContribution.StringFixed(2),
		p.TotalDeductions.StringFixed(2),
		p.NetPay.StringFixed(2),
	}
}
