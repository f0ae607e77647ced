package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/payrollpro/payroll-backend-go/internal/domain/auth"
	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/payrollpro/payroll-backend-go/internal/domain/payroll"
	"github.com/payrollpro/payroll-backend-go/internal/handler/http/response"
	"github.com/payrollpro/payroll-backend-go/internal/pkg/jwt"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	MyPayslips(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Process implements PayrollHandler.
func (h *PayrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var runReq payroll.RunPayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&runReq); err != nil {
		slog.Error("Process payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	summary, err := h.payrollService.Run(r.Context(), runReq)
	if err != nil {
		slog.Error("Process payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll run completed",
		"month", summary.Month,
		"year", summary.Year,
		"processed", summary.ProcessedCount,
		"skipped", len(summary.SkippedEmployeeIDs),
		"failures", len(summary.Failures),
	)
	response.SuccessWithMessage(w, "Payroll run completed", summary)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PayrollFilter{}

	if month, year, ok := parsePeriodQuery(r); ok {
		filter.Month = &month
		filter.Year = &year
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}

	records, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// MarkPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var markReq payroll.MarkPaidRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark paid decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.payrollService.MarkPaid(r.Context(), markReq); err != nil {
		slog.Error("Mark paid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll records marked paid", "count", len(markReq.RecordIDs))
	response.SuccessWithMessage(w, "Payroll records marked as paid", nil)
}

// Summary implements PayrollHandler. Defaults to the current month when no
// period is given.
func (h *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	month, year, ok := parsePeriodQuery(r)
	if !ok {
		now := time.Now()
		month, year = int(now.Month()), now.Year()
	}

	summary, err := h.payrollService.Summary(r.Context(), month, year)
	if err != nil {
		slog.Error("Payroll summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// MyPayslips implements PayrollHandler.
func (h *PayrollHandlerImpl) MyPayslips(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	if identity.EmployeeID == nil {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	payslips, err := h.payrollService.PayslipsFor(r.Context(), *identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}
