package payroll

//go:generate mockgen -source=payroll.go -destination=mock_payroll.go -package=payroll

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/internal/dto"
	"github.com/clearops/payroll/internal/export"
	"github.com/clearops/payroll/internal/handlers/apierror"
	"github.com/clearops/payroll/pkg/payslip"
	"github.com/clearops/payroll/pkg/requestid"
	"github.com/clearops/payroll/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	CreateRun(ctx context.Context, start, end time.Time, notes string) (*domain.PayrollRun, error)
	ListRuns(ctx context.Context) ([]domain.PayrollRun, error)
	GetRun(ctx context.Context, id int) (*domain.PayrollRun, error)
	GetActiveRun(ctx context.Context) (*domain.PayrollRun, error)
	PrepareEntries(ctx context.Context, runID int) ([]domain.WorkEntry, error)
	SubmitEntries(ctx context.Context, runID int, entries []domain.WorkEntry) ([]domain.WorkEntry, error)
	CloseRun(ctx context.Context, id int) (*domain.PayrollRun, error)
	CloseRunWithEntries(ctx context.Context, runID int, drafts []domain.WorkEntry) (*domain.PayrollRun, error)
	GetEntry(ctx context.Context, runID, entryID int) (*domain.WorkEntry, error)
	Preview(wageType domain.WageType, rate decimal.Decimal, hours, days *decimal.Decimal) (domain.Pay, error)
}

type PayrollHandler struct {
	payrollService Service
}

func New(payrollService Service) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
	}
}

// ListRuns godoc
//
//	@Summary		List payroll runs
//	@Description	All payroll runs, newest first, without their entries
//	@Tags			Payroll
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.RunResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll-runs [get]
func (h *PayrollHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.payrollService.ListRuns(r.Context())
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}

	response := make([]dto.RunResponseDTO, 0, len(runs))
	for _, run := range runs {
		response = append(response, dto.NewRunResponse(run))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateRun godoc
//
//	@Summary		Open a payroll run
//	@Description	Open a run for an inclusive period. Only one run may be open at a time.
//	@Tags			Payroll
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateRunRequestDTO	true	"Payroll period"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.RunResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid period or another run is open"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll-runs [post]
func (h *PayrollHandler) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRunRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	start, err := time.Parse(dto.DateLayout, req.PayrollPeriodStart)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "payroll_period_start must be a YYYY-MM-DD date")
		return
	}
	end, err := time.Parse(dto.DateLayout, req.PayrollPeriodEnd)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "payroll_period_end must be a YYYY-MM-DD date")
		return
	}

	run, err := h.payrollService.CreateRun(r.Context(), start, end, req.Notes)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRunResponse(*run))
}

// GetActiveRun godoc
//
//	@Summary		Get the open payroll run
//	@Tags			Payroll
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RunResponseDTO
//	@Success		204	"No open run"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll-runs/active [get]
func (h *PayrollHandler) GetActiveRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.payrollService.GetActiveRun(r.Context())
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	if run == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRunResponse(*run))
}

// GetRun godoc
//
//	@Summary		Get a payroll run
//	@Description	The run with its work entries in creation order
//	@Tags			Payroll
//	@Produce		json
//	@Param			runID	path	int	true	"Payroll run ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RunResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid run ID"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Payroll run not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll-runs/{runID} [get]
func (h *PayrollHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := pathID(w, r, "runID")
	if !ok {
		return
	}
	run, err := h.payrollService.GetRun(r.Context(), runID)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRunResponse(*run))
}

// DraftEntries godoc
//
//	@Summary		Draft work entries
//	@Description	One draft per active employee, prefilled with what was already submitted. Nothing is saved.
//	@Tags			Payroll
//	@Produce		json
//	@Param			runID	path	int	true	"Payroll run ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WorkEntryResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid run ID"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Payroll run not found"
//	@Failure		409	{object}	utils.Response	"Payroll run is closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll-runs/{runID}/draft-entries [get]
func (h *PayrollHandler) DraftEntries(w http.ResponseWriter, r *http.Request) {
	runID, ok := pathID(w, r, "runID")
	if !ok {
		return
	}
	drafts, err := h.payrollService.PrepareEntries(r.Context(), runID)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWorkEntryResponses(drafts))
}

// SubmitEntries godoc
//
//	@Summary		Submit work entries
//	@Description	Validate, price and save a batch of entries. Nothing is saved unless every entry is valid.
//	@Tags			Payroll
//	@Accept			json
//	@Produce		json
//	@Param			runID	path	int							true	"Payroll run ID"
//	@Param			request	body	dto.SubmitEntriesRequestDTO	true	"Work entries"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WorkEntryResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid entry"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Payroll run or employee not found"
//	@Failure		409	{object}	utils.Response	"Payroll run is closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll-runs/{runID}/work-entries [post]
func (h *PayrollHandler) SubmitEntries(w http.ResponseWriter, r *http.Request) {
	runID, ok := pathID(w, r, "runID")
	if !ok {
		return
	}
	entries, ok := decodeEntries(w, r)
	if !ok {
		return
	}

	saved, err := h.payrollService.SubmitEntries(r.Context(), runID, entries)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWorkEntryResponses(saved))
}

// CloseRun godoc
//
//	@Summary		Close a payroll run
//	@Description	Close a run that already has entries. Non-deferred entries are marked paid.
//	@Tags			Payroll
//	@Produce		json
//	@Param			runID	path	int	true	"Payroll run ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RunResponseDTO
//	@Failure		400	{object}	utils.Response	"Run has no entries"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Payroll run not found"
//	@Failure		409	{object}	utils.Response	"Payroll run is closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll-runs/{runID}/close [post]
func (h *PayrollHandler) CloseRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := pathID(w, r, "runID")
	if !ok {
		return
	}
	run, err := h.payrollService.CloseRun(r.Context(), runID)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRunResponse(*run))
}

// ProcessRun godoc
//
//	@Summary		Submit entries and close the run
//	@Description	Drafts without a positive quantity are skipped. If the entries are saved but the run cannot be closed the response is 207 with the saved entries.
//	@Tags			Payroll
//	@Accept			json
//	@Produce		json
//	@Param			runID	path	int							true	"Payroll run ID"
//	@Param			request	body	dto.SubmitEntriesRequestDTO	true	"Draft entries"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RunResponseDTO
//	@Success		207	{object}	dto.PartialCloseResponseDTO	"Entries saved, run still open"
//	@Failure		400	{object}	utils.Response				"No valid entries"
//	@Failure		401	{object}	utils.Response				"Unauthorized"
//	@Failure		404	{object}	utils.Response				"Payroll run or employee not found"
//	@Failure		409	{object}	utils.Response				"Payroll run is closed"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/payroll-runs/{runID}/process [post]
func (h *PayrollHandler) ProcessRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := pathID(w, r, "runID")
	if !ok {
		return
	}
	drafts, ok := decodeEntries(w, r)
	if !ok {
		return
	}

	run, err := h.payrollService.CloseRunWithEntries(r.Context(), runID, drafts)
	var partial *domain.PartialCloseError
	if errors.As(err, &partial) {
		zap.L().Warn("payroll run processed partially",
			zap.Int("run_id", runID),
			requestid.Field(r.Context()),
			zap.Error(partial.Err),
		)
		utils.RespondWithJSON(w, http.StatusMultiStatus, dto.PartialCloseResponseDTO{
			Status:      http.StatusMultiStatus,
			Message:     partial.Error(),
			RunID:       partial.RunID,
			WorkEntries: dto.NewWorkEntryResponses(partial.Entries),
		})
		return
	}
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRunResponse(*run))
}

// ExportRun godoc
//
//	@Summary		Export a payroll run
//	@Description	CSV register with one row per work entry
//	@Tags			Payroll
//	@Produce		text/csv
//	@Param			runID	path	int	true	"Payroll run ID"
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Failure		400	{object}	utils.Response	"Invalid run ID"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Payroll run not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll-runs/{runID}/export.csv [get]
func (h *PayrollHandler) ExportRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := pathID(w, r, "runID")
	if !ok {
		return
	}
	run, err := h.payrollService.GetRun(r.Context(), runID)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteRegister(&buf, *run); err != nil {
		apierror.Respond(w, r, err)
		return
	}
	attach(w, "text/csv", export.FileName(*run), buf.Bytes())
}

// Payslip godoc
//
//	@Summary		Download a payslip
//	@Tags			Payroll
//	@Produce		application/pdf
//	@Param			runID	path	int	true	"Payroll run ID"
//	@Param			entryID	path	int	true	"Work entry ID"
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Failure		400	{object}	utils.Response	"Invalid ID"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Payroll run or work entry not found"
//	@Failure		409	{object}	utils.Response	"Work entry has no computed pay"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll-runs/{runID}/work-entries/{entryID}/payslip.pdf [get]
func (h *PayrollHandler) Payslip(w http.ResponseWriter, r *http.Request) {
	runID, ok := pathID(w, r, "runID")
	if !ok {
		return
	}
	entryID, ok := pathID(w, r, "entryID")
	if !ok {
		return
	}

	run, err := h.payrollService.GetRun(r.Context(), runID)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	entry, err := h.payrollService.GetEntry(r.Context(), runID, entryID)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}

	var buf bytes.Buffer
	err = payslip.Render(&buf, *run, *entry)
	if errors.Is(err, payslip.ErrNotPriced) {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	attach(w, "application/pdf", payslip.FileName(*run, *entry), buf.Bytes())
}

// Preview godoc
//
//	@Summary		Preview pay
//	@Description	Price a rate and quantity without saving anything
//	@Tags			Payroll
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PreviewRequestDTO	true	"Rate and quantity"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PayDTO
//	@Failure		400	{object}	utils.Response	"Invalid input"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/pay/preview [post]
func (h *PayrollHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req dto.PreviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	pay, err := h.payrollService.Preview(domain.WageType(req.WorkerType), req.Rate, req.HoursWorked, req.DaysWorked)
	if err != nil {
		apierror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayResponse(pay))
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func decodeEntries(w http.ResponseWriter, r *http.Request) ([]domain.WorkEntry, bool) {
	var req dto.SubmitEntriesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}

	entries := make([]domain.WorkEntry, 0, len(req.Entries))
	for i, e := range req.Entries {
		entry := domain.WorkEntry{
			EmployeeID:  e.EmployeeID,
			HoursWorked: e.HoursWorked,
			DaysWorked:  e.DaysWorked,
			PaymentType: domain.PaymentType(e.PaymentType),
			Notes:       e.Notes,
		}
		if e.DeferredPaymentDate != "" {
			date, err := time.Parse(dto.DateLayout, e.DeferredPaymentDate)
			if err != nil {
				apierror.Respond(w, r, &domain.EntryError{Index: i, EmployeeID: e.EmployeeID,
					Err: &domain.FieldError{Field: "deferred_payment_date", Reason: "must be a YYYY-MM-DD date"}})
				return nil, false
			}
			entry.DeferredPaymentDate = &date
		}
		entries = append(entries, entry)
	}
	return entries, true
}

func attach(w http.ResponseWriter, contentType, name string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		zap.L().Error("can't write attachment", zap.String("file", name), zap.Error(err))
	}
}
