package service

import (
	"github.com/clearops/payroll/internal/config"
	"github.com/clearops/payroll/internal/handlers/auth"
	"github.com/clearops/payroll/internal/handlers/employees"
	"github.com/clearops/payroll/internal/handlers/payroll"
	"github.com/clearops/payroll/internal/repo"
	"github.com/clearops/payroll/internal/service/authservice"
	"github.com/clearops/payroll/internal/service/employeeservice"
	"github.com/clearops/payroll/internal/service/entryservice"
	"github.com/clearops/payroll/internal/service/payrollservice"
	"github.com/clearops/payroll/internal/service/runservice"

	pkgauth "github.com/clearops/payroll/pkg/auth"
)

type Services struct {
	AuthService     auth.Service
	EmployeeService employees.Service
	PayrollService  payroll.Service
	JWTService      pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, cfg *config.Config, notifier payrollservice.Notifier) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	employeeService := employeeservice.New(repo.EmployeeRepo)
	runService := runservice.New(repo.RunRepo, repo.EntryRepo)
	entryService := entryservice.New(repo.EntryRepo, repo.EmployeeRepo, repo.RunRepo)

	return &Services{
		AuthService:     authservice.New(repo.AdminRepo, &pkgauth.HashService{}, jwtService, cfg.TokenTTL),
		EmployeeService: employeeService,
		PayrollService:  payrollservice.New(runService, entryService, employeeService, notifier),
		JWTService:      jwtService,
	}
}
