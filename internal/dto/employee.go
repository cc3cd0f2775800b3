package dto

import (
	"github.com/clearops/payroll/internal/domain"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type CreateEmployeeRequestDTO struct {
	FirstName  string           `json:"first_name" example:"Ada"`
	LastName   string           `json:"last_name" example:"Lovelace"`
	WorkerType string           `json:"worker_type" example:"hourly" enums:"hourly,daily"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty" swaggertype:"string" example:"20.00"`
	DailyRate  *decimal.Decimal `json:"daily_rate,omitempty" swaggertype:"string" example:"150.00"`
	IsActive   *bool            `json:"is_active,omitempty" example:"true"`
	HireDate   string           `json:"hire_date,omitempty" example:"2024-01-01"`
}

type EmployeeResponseDTO struct {
	ID         int              `json:"id" example:"1"`
	FirstName  string           `json:"first_name" example:"Ada"`
	LastName   string           `json:"last_name" example:"Lovelace"`
	WorkerType string           `json:"worker_type" example:"hourly"`
	HourlyRate *decimal.Decimal `json:"hourly_rate" swaggertype:"string" example:"20.00"`
	DailyRate  *decimal.Decimal `json:"daily_rate" swaggertype:"string"`
	IsActive   bool             `json:"is_active" example:"true"`
	HireDate   string           `json:"hire_date" example:"2024-01-01"`
}

func NewEmployeeResponse(e domain.Employee) EmployeeResponseDTO {
	return EmployeeResponseDTO{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		WorkerType: string(e.WageType),
		HourlyRate: e.HourlyRate,
		DailyRate:  e.DailyRate,
		IsActive:   e.IsActive,
		HireDate:   e.HireDate.Format(DateLayout),
	}
}
