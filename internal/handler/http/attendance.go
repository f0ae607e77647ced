package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/payrollpro/payroll-backend-go/internal/domain/attendance"
	"github.com/payrollpro/payroll-backend-go/internal/domain/auth"
	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/payrollpro/payroll-backend-go/internal/handler/http/response"
	"github.com/payrollpro/payroll-backend-go/internal/pkg/jwt"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MyAttendance(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var markReq attendance.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	marked, err := h.attendanceService.Mark(r.Context(), markReq)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", marked)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{}

	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	month, year, ok := parsePeriodQuery(r)
	if ok {
		filter.Month = &month
		filter.Year = &year
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// MyAttendance implements AttendanceHandler. Defaults to the current month
// when no period is given.
func (h *AttendanceHandlerImpl) MyAttendance(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	if identity.EmployeeID == nil {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	month, year, ok := parsePeriodQuery(r)
	if !ok {
		now := time.Now()
		month, year = int(now.Month()), now.Year()
	}

	records, err := h.attendanceService.ListForEmployee(r.Context(), *identity.EmployeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// parsePeriodQuery reads the month and year query parameters. Both must be
// present and numeric for the pair to count.
func parsePeriodQuery(r *http.Request) (month, year int, ok bool) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if monthStr == "" || yearStr == "" {
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, false
	}
	year, err = strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, false
	}

	return month, year, true
}
