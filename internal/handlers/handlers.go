package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/clearops/payroll/docs"
	authhandlers "github.com/clearops/payroll/internal/handlers/auth"
	employeehandlers "github.com/clearops/payroll/internal/handlers/employees"
	payrollhandlers "github.com/clearops/payroll/internal/handlers/payroll"
	"github.com/clearops/payroll/internal/service"
	"github.com/clearops/payroll/pkg/auth"
	"github.com/clearops/payroll/pkg/requestid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type PayrollHandler interface {
	ListRuns(w http.ResponseWriter, r *http.Request)
	CreateRun(w http.ResponseWriter, r *http.Request)
	GetActiveRun(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	DraftEntries(w http.ResponseWriter, r *http.Request)
	SubmitEntries(w http.ResponseWriter, r *http.Request)
	CloseRun(w http.ResponseWriter, r *http.Request)
	ProcessRun(w http.ResponseWriter, r *http.Request)
	ExportRun(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	EmployeeHandler EmployeeHandler
	PayrollHandler  PayrollHandler

	Authenticate func(http.Handler) http.Handler
	CORSOrigins  []string
}

func New(s *service.Services, corsOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		EmployeeHandler: employeehandlers.New(s.EmployeeService),
		PayrollHandler:  payrollhandlers.New(s.PayrollService),
		Authenticate:    auth.Middleware(s.JWTService),
		CORSOrigins:     corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", requestid.Header},
			ExposedHeaders:   []string{"Authorization", "Content-Disposition", requestid.Header},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/admin/register", h.AuthHandler.Register)
		r.Post("/admin/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)
			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.EmployeeHandler.ListEmployees)
				r.Post("/", h.EmployeeHandler.CreateEmployee)
				r.Get("/{employeeID}", h.EmployeeHandler.GetEmployee)
				r.Put("/{employeeID}", h.EmployeeHandler.UpdateEmployee)
				r.Delete("/{employeeID}", h.EmployeeHandler.DeleteEmployee)
			})
			r.Post("/pay/preview", h.PayrollHandler.Preview)
			r.Route("/payroll-runs", func(r chi.Router) {
				r.Get("/", h.PayrollHandler.ListRuns)
				r.Post("/", h.PayrollHandler.CreateRun)
				r.Get("/active", h.PayrollHandler.GetActiveRun)
				r.Route("/{runID}", func(r chi.Router) {
					r.Get("/", h.PayrollHandler.GetRun)
					r.Get("/draft-entries", h.PayrollHandler.DraftEntries)
					r.Post("/work-entries", h.PayrollHandler.SubmitEntries)
					r.Post("/close", h.PayrollHandler.CloseRun)
					r.Post("/process", h.PayrollHandler.ProcessRun)
					r.Get("/export.csv", h.PayrollHandler.ExportRun)
					r.Get("/work-entries/{entryID}/payslip.pdf", h.PayrollHandler.Payslip)
				})
			})
		})
	})

	return r
}
