package repo

import (
	"github.com/clearops/payroll/internal/pg"
	adminrepo "github.com/clearops/payroll/internal/repo/admin-repo"
	employeerepo "github.com/clearops/payroll/internal/repo/employee-repo"
	entryrepo "github.com/clearops/payroll/internal/repo/entry-repo"
	runrepo "github.com/clearops/payroll/internal/repo/run-repo"
	"github.com/clearops/payroll/internal/service/authservice"
	"github.com/clearops/payroll/internal/service/employeeservice"
	"github.com/clearops/payroll/internal/service/entryservice"
	"github.com/clearops/payroll/internal/service/runservice"
)

// EntryRepo is read by the run state machine and written by the entry store.
type EntryRepo interface {
	entryservice.Repo
	runservice.EntryRepo
}

type Repositories struct {
	AdminRepo    authservice.Repo
	EmployeeRepo employeeservice.Repo
	RunRepo      runservice.Repo
	EntryRepo    EntryRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AdminRepo:    adminrepo.New(conn),
		EmployeeRepo: employeerepo.New(conn),
		RunRepo:      runrepo.New(conn, txManager),
		EntryRepo:    entryrepo.New(conn, txManager),
	}
}
