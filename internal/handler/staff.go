package handler

import (
	"net/http"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StaffHandler struct{ svc service.StaffService }

func NewStaffHandler(svc service.StaffService) *StaffHandler {
	return &StaffHandler{svc: svc}
}

func (h *StaffHandler) CreateEmployee(c *gin.Context) {
	var req dto.EmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	e, err := h.svc.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEmployeeResponse(e))
}

func (h *StaffHandler) GetEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.svc.GetEmployee(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(e))
}

func (h *StaffHandler) ListEmployees(c *gin.Context) {
	var filter dto.EmployeeFilter
	if !bindQuery(c, &filter) {
		return
	}
	employees, total, err := h.svc.ListEmployees(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	data := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		data = append(data, *toEmployeeResponse(&employees[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "total": total, "page": filter.Page, "limit": filter.Limit})
}

func (h *StaffHandler) DeactivateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeactivateEmployee(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StaffHandler) CreateSchedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sched, err := h.svc.CreateSchedule(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toScheduleResponse(sched))
}

func (h *StaffHandler) ListSchedules(c *gin.Context) {
	var filter dto.ScheduleFilter
	if !bindQuery(c, &filter) {
		return
	}
	schedules, total, err := h.svc.ListSchedules(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	data := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		data = append(data, *toScheduleResponse(&schedules[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "total": total, "page": filter.Page, "limit": filter.Limit})
}

func (h *StaffHandler) ClockIn(c *gin.Context) {
	var req dto.ClockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	// The uuid validator tag guarantees this parses.
	id, _ := uuid.Parse(req.EmployeeID)
	entry, err := h.svc.ClockIn(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTimeEntryResponse(entry))
}

func (h *StaffHandler) ClockOut(c *gin.Context) {
	var req dto.ClockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, _ := uuid.Parse(req.EmployeeID)
	entry, err := h.svc.ClockOut(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTimeEntryResponse(entry))
}

func (h *StaffHandler) ListTimeEntries(c *gin.Context) {
	var filter dto.TimeEntryFilter
	if !bindQuery(c, &filter) {
		return
	}
	entries, err := h.svc.ListTimeEntries(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	data := make([]dto.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		data = append(data, *toTimeEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func toEmployeeResponse(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:                    e.ID.String(),
		EmployeeNumber:        e.EmployeeNumber,
		FirstName:             e.FirstName,
		LastName:              e.LastName,
		Position:              e.Position,
		Department:            e.Department,
		HourlyRate:            e.HourlyRate,
		HireDate:              e.HireDate.Format("2006-01-02"),
		Email:                 e.Email,
		Phone:                 e.Phone,
		Address:               e.Address,
		EmergencyContactName:  e.EmergencyContactName,
		EmergencyContactPhone: e.EmergencyContactPhone,
		Status:                e.Status,
		CreatedAt:             e.CreatedAt.Format(time.RFC3339),
	}
}

func toScheduleResponse(s *model.Schedule) *dto.ScheduleResponse {
	resp := &dto.ScheduleResponse{
		ID:             s.ID.String(),
		EmployeeID:     s.EmployeeID.String(),
		ScheduleDate:   s.ScheduleDate.Format("2006-01-02"),
		ShiftStart:     s.ShiftStart,
		ShiftEnd:       s.ShiftEnd,
		BreakDuration:  s.BreakDuration,
		ScheduledHours: s.ScheduledHours,
		Position:       s.Position,
		Notes:          s.Notes,
	}
	if s.Employee != nil {
		resp.EmployeeName = s.Employee.FirstName + " " + s.Employee.LastName
	}
	return resp
}

func toTimeEntryResponse(e *model.TimeEntry) *dto.TimeEntryResponse {
	resp := &dto.TimeEntryResponse{
		ID:            e.ID.String(),
		EmployeeID:    e.EmployeeID.String(),
		ClockIn:       e.ClockIn.Format(time.RFC3339),
		BreakDuration: e.BreakDuration,
		HourlyRate:    e.HourlyRate,
		TotalHours:    e.TotalHours,
		OvertimeHours: e.OvertimeHours,
		GrossPay:      e.GrossPay,
		Status:        e.Status,
	}
	if e.ScheduleID != nil {
		id := e.ScheduleID.String()
		resp.ScheduleID = &id
	}
	if e.ClockOut != nil {
		out := e.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}
