package employeerepo

import (
	"context"
	"errors"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const columns = `id, first_name, last_name, worker_type, hourly_rate, daily_rate, is_active, hire_date`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	query := `
        INSERT INTO employees (first_name, last_name, worker_type, hourly_rate, daily_rate, is_active, hire_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		employee.FirstName,
		employee.LastName,
		string(employee.WageType),
		nullDecimal(employee.HourlyRate),
		nullDecimal(employee.DailyRate),
		employee.IsActive,
		employee.HireDate,
	).Scan(&employee.ID)
	if err != nil {
		zap.L().Error("can't save employee", zap.Error(err))
		return nil, err
	}
	return employee, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Employee, error) {
	query := `
        SELECT ` + columns + `
        FROM employees
        WHERE id = $1
    `
	employee, err := scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find employee", zap.Int("employee_id", id), zap.Error(err))
		return nil, err
	}
	return employee, nil
}

// Update overwrites the editable fields of employee.ID. A missing row gives nil, nil.
func (r *Repository) Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	query := `
        UPDATE employees
        SET first_name = $2, last_name = $3, worker_type = $4, hourly_rate = $5,
            daily_rate = $6, is_active = $7, hire_date = $8
        WHERE id = $1
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		employee.ID,
		employee.FirstName,
		employee.LastName,
		string(employee.WageType),
		nullDecimal(employee.HourlyRate),
		nullDecimal(employee.DailyRate),
		employee.IsActive,
		employee.HireDate,
	).Scan(&employee.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update employee", zap.Int("employee_id", employee.ID), zap.Error(err))
		return nil, err
	}
	return employee, nil
}

// Delete removes an employee without work entries. It reports whether a row was deleted.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pg.ForeignKeyViolation {
			return false, domain.ErrEmployeeInUse
		}
		zap.L().Error("can't delete employee", zap.Int("employee_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// List returns employees ordered by name. With activeOnly set, inactive ones are skipped.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]domain.Employee, error) {
	query := `
        SELECT ` + columns + `
        FROM employees
        WHERE is_active OR NOT $1
        ORDER BY last_name, first_name, id
    `
	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		zap.L().Error("can't get employees", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		employee, err := scan(rows)
		if err != nil {
			zap.L().Error("can't scan employee row", zap.Error(err))
			return nil, err
		}
		employees = append(employees, *employee)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate employee rows", zap.Error(err))
		return nil, err
	}
	return employees, nil
}

func scan(row pgx.Row) (*domain.Employee, error) {
	var (
		employee   domain.Employee
		wageType   string
		hourlyRate decimal.NullDecimal
		dailyRate  decimal.NullDecimal
	)
	err := row.Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&wageType,
		&hourlyRate,
		&dailyRate,
		&employee.IsActive,
		&employee.HireDate,
	)
	if err != nil {
		return nil, err
	}
	employee.WageType = domain.WageType(wageType)
	if hourlyRate.Valid {
		employee.HourlyRate = &hourlyRate.Decimal
	}
	if dailyRate.Valid {
		employee.DailyRate = &dailyRate.Decimal
	}
	return &employee, nil
}

func nullDecimal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}
