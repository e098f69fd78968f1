package dto

import "github.com/shopspring/decimal"

type EmployeeRequest struct {
	EmployeeNumber        string          `json:"employee_number" validate:"required,max=20"`
	FirstName             string          `json:"first_name"      validate:"required,max=50"`
	LastName              string          `json:"last_name"       validate:"required,max=50"`
	Position              string          `json:"position"        validate:"required,max=50"`
	Department            *string         `json:"department"      validate:"omitempty,max=50"`
	HourlyRate            decimal.Decimal `json:"hourly_rate"     validate:"min=0"`
	HireDate              string          `json:"hire_date"       validate:"required"`
	Email                 *string         `json:"email"           validate:"omitempty,email"`
	Phone                 *string         `json:"phone"           validate:"omitempty,max=30"`
	Address               *string         `json:"address"         validate:"omitempty,max=255"`
	EmergencyContactName  *string         `json:"emergency_contact_name"  validate:"omitempty,max=100"`
	EmergencyContactPhone *string         `json:"emergency_contact_phone" validate:"omitempty,max=30"`
}

// EmployeeFilter is bound from the query string of GET /v1/staff/employees.
type EmployeeFilter struct {
	Status string `form:"status" validate:"omitempty,oneof=active inactive"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type EmployeeResponse struct {
	ID                    string          `json:"id"`
	EmployeeNumber        string          `json:"employee_number"`
	FirstName             string          `json:"first_name"`
	LastName              string          `json:"last_name"`
	Position              string          `json:"position"`
	Department            *string         `json:"department,omitempty"`
	HourlyRate            decimal.Decimal `json:"hourly_rate"`
	HireDate              string          `json:"hire_date"`
	Email                 *string         `json:"email,omitempty"`
	Phone                 *string         `json:"phone,omitempty"`
	Address               *string         `json:"address,omitempty"`
	EmergencyContactName  *string         `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string         `json:"emergency_contact_phone,omitempty"`
	Status                string          `json:"status"`
	CreatedAt             string          `json:"created_at"`
}

type ScheduleRequest struct {
	EmployeeID    string  `json:"employee_id"    validate:"required,uuid"`
	ScheduleDate  string  `json:"schedule_date"  validate:"required"`
	ShiftStart    string  `json:"shift_start"    validate:"required"`
	ShiftEnd      string  `json:"shift_end"      validate:"required"`
	BreakDuration *int    `json:"break_duration" validate:"omitempty,min=0,max=480"`
	Position      *string `json:"position"       validate:"omitempty,max=50"`
	Notes         string  `json:"notes"          validate:"max=255"`
}

// ScheduleFilter is bound from the query string of GET /v1/staff/schedules.
type ScheduleFilter struct {
	EmployeeID string `form:"employee_id" validate:"omitempty,uuid"`
	From       string `form:"from"        validate:"omitempty,datetime=2006-01-02"`
	To         string `form:"to"          validate:"omitempty,datetime=2006-01-02"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type ScheduleResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	ScheduleDate   string          `json:"schedule_date"`
	ShiftStart     string          `json:"shift_start"`
	ShiftEnd       string          `json:"shift_end"`
	BreakDuration  int             `json:"break_duration"`
	ScheduledHours decimal.Decimal `json:"scheduled_hours"`
	Position       *string         `json:"position,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

type ClockRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
}

// TimeEntryFilter is bound from the query string of GET /v1/staff/time-entries.
type TimeEntryFilter struct {
	EmployeeID string `form:"employee_id" validate:"required,uuid"`
	From       string `form:"from"        validate:"omitempty,datetime=2006-01-02"`
	To         string `form:"to"          validate:"omitempty,datetime=2006-01-02"`
}

type TimeEntryResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	ScheduleID    *string         `json:"schedule_id,omitempty"`
	ClockIn       string          `json:"clock_in"`
	ClockOut      *string         `json:"clock_out,omitempty"`
	BreakDuration int             `json:"break_duration"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	GrossPay      decimal.Decimal `json:"gross_pay"`
	Status        string          `json:"status"`
}
