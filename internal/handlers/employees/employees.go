package employees

//go:generate mockgen -source=employees.go -destination=mock_employees.go -package=employees

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/internal/dto"
	"github.com/clearops/payroll/internal/handlers/apierror"
	"github.com/clearops/payroll/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	Get(ctx context.Context, id int) (*domain.Employee, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Employee, error)
	Update(ctx context.Context, id int, employee domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int) error
}

type EmployeeHandler struct {
	employeeService Service
}

func New(employeeService Service) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// ListEmployees godoc
//
//	@Summary		List employees
//	@Description	List employees ordered by name, optionally only the active ones
//	@Tags			Employees
//	@Produce		json
//	@Param			active	query	bool	false	"Only active employees"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.EmployeeResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid active flag"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/employees [get]
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	activeOnly := false
	if v := r.URL.Query().Get("active"); v != "" {
		var err error
		activeOnly, err = strconv.ParseBool(v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "active must be true or false")
			return
		}
	}

	employees, err := h.employeeService.List(r.Context(), activeOnly)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}

	response := make([]dto.EmployeeResponseDTO, 0, len(employees))
	for _, e := range employees {
		response = append(response, dto.NewEmployeeResponse(e))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateEmployee godoc
//
//	@Summary		Create an employee
//	@Description	Register an hourly or daily employee. Only the rate matching worker_type may be set.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateEmployeeRequestDTO	true	"Employee"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.EmployeeResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid employee"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/employees [post]
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	employee, ok := decodeEmployee(w, r)
	if !ok {
		return
	}

	created, err := h.employeeService.Create(r.Context(), employee)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewEmployeeResponse(*created))
}

// GetEmployee godoc
//
//	@Summary		Get an employee
//	@Tags			Employees
//	@Produce		json
//	@Param			employeeID	path	int	true	"Employee ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EmployeeResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid employee ID"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Employee not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/employees/{employeeID} [get]
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	employee, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEmployeeResponse(*employee))
}

// UpdateEmployee godoc
//
//	@Summary		Update an employee
//	@Description	Replace the editable fields of an employee. Set is_active to false to keep the employee out of new payroll runs.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			employeeID	path	int								true	"Employee ID"
//	@Param			request		body	dto.CreateEmployeeRequestDTO	true	"Employee"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EmployeeResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid employee"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Employee not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/employees/{employeeID} [put]
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}
	employee, ok := decodeEmployee(w, r)
	if !ok {
		return
	}

	updated, err := h.employeeService.Update(r.Context(), id, employee)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEmployeeResponse(*updated))
}

// DeleteEmployee godoc
//
//	@Summary		Delete an employee
//	@Description	Only employees without work entries can be deleted, others have to be deactivated.
//	@Tags			Employees
//	@Param			employeeID	path	int	true	"Employee ID"
//	@Security		BearerAuth
//	@Success		204	"Employee deleted"
//	@Failure		400	{object}	utils.Response	"Invalid employee ID"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Employee not found"
//	@Failure		409	{object}	utils.Response	"Employee has work entries"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/employees/{employeeID} [delete]
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		apierror.Respond(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func employeeID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "employeeID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid employee ID")
		return 0, false
	}
	return id, true
}

// decodeEmployee reads the request body. An omitted is_active means active.
func decodeEmployee(w http.ResponseWriter, r *http.Request) (domain.Employee, bool) {
	var req dto.CreateEmployeeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return domain.Employee{}, false
	}

	employee := domain.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		WageType:   domain.WageType(req.WorkerType),
		HourlyRate: req.HourlyRate,
		DailyRate:  req.DailyRate,
		IsActive:   req.IsActive == nil || *req.IsActive,
	}
	if req.HireDate != "" {
		hired, err := time.Parse(dto.DateLayout, req.HireDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "hire_date must be a YYYY-MM-DD date")
			return domain.Employee{}, false
		}
		employee.HireDate = hired
	}
	return employee, true
}
