package service

import (
	"context"
	"errors"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/repository"
	"stockli/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultBreakMinutes = 30

var (
	minutesPerHour = decimal.NewFromInt(60)
	// Hours past this daily threshold are paid at the overtime rate.
	overtimeThreshold  = decimal.NewFromInt(8)
	overtimeMultiplier = decimal.NewFromFloat(1.5)
)

// StaffService owns the employee roster, shift scheduling and
// clock-in/clock-out time tracking.
type StaffService interface {
	CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (*model.Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	ListEmployees(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, int64, error)
	DeactivateEmployee(ctx context.Context, performedBy, id uuid.UUID) error
	// CreateSchedule plans a shift for an active employee; one schedule
	// per employee per date. A shift end before its start means the
	// shift crosses midnight.
	CreateSchedule(ctx context.Context, createdBy uuid.UUID, req dto.ScheduleRequest) (*model.Schedule, error)
	ListSchedules(ctx context.Context, filter dto.ScheduleFilter) ([]model.Schedule, int64, error)
	// ClockIn opens a time entry, linking today's schedule when one
	// exists and snapshotting the employee's current hourly rate.
	ClockIn(ctx context.Context, employeeID uuid.UUID) (*model.TimeEntry, error)
	// ClockOut closes the open entry and computes hours and gross pay.
	ClockOut(ctx context.Context, employeeID uuid.UUID) (*model.TimeEntry, error)
	ListTimeEntries(ctx context.Context, filter dto.TimeEntryFilter) ([]model.TimeEntry, error)
}

type staffService struct {
	employees   repository.EmployeeRepository
	schedules   repository.ScheduleRepository
	timeEntries repository.TimeEntryRepository
	dispatcher  *worker.Dispatcher
	now         func() time.Time
}

func NewStaffService(
	employees repository.EmployeeRepository,
	schedules repository.ScheduleRepository,
	timeEntries repository.TimeEntryRepository,
	dispatcher *worker.Dispatcher,
) StaffService {
	return &staffService{
		employees:   employees,
		schedules:   schedules,
		timeEntries: timeEntries,
		dispatcher:  dispatcher,
		now:         time.Now,
	}
}

func (s *staffService) CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (*model.Employee, error) {
	if req.HourlyRate.IsNegative() {
		return nil, validationf("hourly_rate must not be negative")
	}
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return nil, validationf("hire_date must be YYYY-MM-DD")
	}

	// Employee numbers are unique across the whole roster, inactive
	// employees included.
	if _, err := s.employees.FindByNumber(ctx, req.EmployeeNumber); err == nil {
		return nil, validationf("employee_number %q is already in use", req.EmployeeNumber)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistencef("check employee number", err)
	}

	e := &model.Employee{
		EmployeeNumber:        req.EmployeeNumber,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Position:              req.Position,
		Department:            req.Department,
		HourlyRate:            req.HourlyRate,
		HireDate:              hireDate,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Address:               req.Address,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Status:                model.EmployeeActive,
	}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, persistencef("insert employee", err)
	}
	return e, nil
}

func (s *staffService) GetEmployee(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find employee", err)
	}
	return e, nil
}

func (s *staffService) ListEmployees(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, int64, error) {
	return s.employees.List(ctx, filter)
}

func (s *staffService) DeactivateEmployee(ctx context.Context, performedBy, id uuid.UUID) error {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return persistencef("find employee", err)
	}
	if err := s.employees.Deactivate(ctx, id); err != nil {
		return persistencef("deactivate employee", err)
	}
	s.dispatcher.EnqueueAudit(ctx, worker.AuditEvent{
		Action: "employee_deactivated",
		UserID: performedBy.String(),
		Detail: map[string]interface{}{"employee_number": e.EmployeeNumber},
	})
	return nil
}

// shiftHours turns a shift into worked hours. Both times are HH:MM; an
// end before the start adds a day. The break is unpaid.
func shiftHours(start, end string, breakMinutes int) (decimal.Decimal, error) {
	st, err := time.Parse("15:04", start)
	if err != nil {
		return decimal.Zero, validationf("shift_start must be HH:MM")
	}
	en, err := time.Parse("15:04", end)
	if err != nil {
		return decimal.Zero, validationf("shift_end must be HH:MM")
	}
	minutes := int(en.Sub(st).Minutes())
	if minutes <= 0 {
		minutes += 24 * 60
	}
	minutes -= breakMinutes
	if minutes <= 0 {
		return decimal.Zero, validationf("break exceeds shift length")
	}
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Round(2), nil
}

func (s *staffService) CreateSchedule(ctx context.Context, createdBy uuid.UUID, req dto.ScheduleRequest) (*model.Schedule, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, validationf("employee_id is not a valid uuid")
	}
	if _, err := s.employees.FindActiveByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find employee", err)
	}
	day, err := time.Parse("2006-01-02", req.ScheduleDate)
	if err != nil {
		return nil, validationf("schedule_date must be YYYY-MM-DD")
	}

	breakMinutes := defaultBreakMinutes
	if req.BreakDuration != nil {
		breakMinutes = *req.BreakDuration
	}
	hours, err := shiftHours(req.ShiftStart, req.ShiftEnd, breakMinutes)
	if err != nil {
		return nil, err
	}

	if _, err := s.schedules.FindForEmployeeOn(ctx, employeeID, day); err == nil {
		return nil, validationf("employee already has a schedule for %s", req.ScheduleDate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistencef("check schedule", err)
	}

	sched := &model.Schedule{
		EmployeeID:     employeeID,
		ScheduleDate:   day,
		ShiftStart:     req.ShiftStart,
		ShiftEnd:       req.ShiftEnd,
		BreakDuration:  breakMinutes,
		ScheduledHours: hours,
		Position:       req.Position,
		Notes:          req.Notes,
		CreatedBy:      createdBy,
	}
	if err := s.schedules.Create(ctx, sched); err != nil {
		return nil, persistencef("insert schedule", err)
	}
	return sched, nil
}

func (s *staffService) ListSchedules(ctx context.Context, filter dto.ScheduleFilter) ([]model.Schedule, int64, error) {
	return s.schedules.List(ctx, filter)
}

func (s *staffService) ClockIn(ctx context.Context, employeeID uuid.UUID) (*model.TimeEntry, error) {
	e, err := s.employees.FindActiveByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find employee", err)
	}

	if _, err := s.timeEntries.FindOpenByEmployee(ctx, employeeID); err == nil {
		return nil, validationf("employee is already clocked in")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistencef("check open time entry", err)
	}

	now := s.now()
	entry := &model.TimeEntry{
		EmployeeID:    employeeID,
		ClockIn:       now,
		BreakDuration: defaultBreakMinutes,
		HourlyRate:    e.HourlyRate,
		Status:        model.TimeEntryOpen,
	}
	// Link today's schedule when one exists and take its planned break.
	if sched, err := s.schedules.FindForEmployeeOn(ctx, employeeID, now); err == nil {
		id := sched.ID
		entry.ScheduleID = &id
		entry.BreakDuration = sched.BreakDuration
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistencef("find schedule", err)
	}

	if err := s.timeEntries.Create(ctx, entry); err != nil {
		return nil, persistencef("insert time entry", err)
	}
	s.dispatcher.EnqueueAudit(ctx, worker.AuditEvent{
		Action: "clock_in",
		UserID: employeeID.String(),
		Detail: map[string]interface{}{"employee_number": e.EmployeeNumber},
	})
	return entry, nil
}

func (s *staffService) ClockOut(ctx context.Context, employeeID uuid.UUID) (*model.TimeEntry, error) {
	entry, err := s.timeEntries.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("employee is not clocked in")
		}
		return nil, persistencef("find open time entry", err)
	}

	now := s.now()
	worked := decimal.NewFromFloat(now.Sub(entry.ClockIn).Minutes()).
		Sub(decimal.NewFromInt(int64(entry.BreakDuration))).
		Div(minutesPerHour)
	if worked.IsNegative() {
		worked = decimal.Zero
	}

	regular := worked
	overtime := decimal.Zero
	if worked.GreaterThan(overtimeThreshold) {
		regular = overtimeThreshold
		overtime = worked.Sub(overtimeThreshold)
	}
	gross := regular.Mul(entry.HourlyRate).
		Add(overtime.Mul(entry.HourlyRate).Mul(overtimeMultiplier)).
		Round(2)

	entry.ClockOut = &now
	entry.TotalHours = worked.Round(2)
	entry.OvertimeHours = overtime.Round(2)
	entry.GrossPay = gross
	entry.Status = model.TimeEntryCompleted
	if err := s.timeEntries.Update(ctx, entry); err != nil {
		return nil, persistencef("update time entry", err)
	}

	s.dispatcher.EnqueueAudit(ctx, worker.AuditEvent{
		Action: "clock_out",
		UserID: employeeID.String(),
		Detail: map[string]interface{}{
			"total_hours": entry.TotalHours.String(),
			"gross_pay":   entry.GrossPay.String(),
		},
	})
	return entry, nil
}

func (s *staffService) ListTimeEntries(ctx context.Context, filter dto.TimeEntryFilter) ([]model.TimeEntry, error) {
	employeeID, err := uuid.Parse(filter.EmployeeID)
	if err != nil {
		return nil, validationf("employee_id is not a valid uuid")
	}
	to := s.now()
	if filter.To != "" {
		t, err := time.Parse("2006-01-02", filter.To)
		if err != nil {
			return nil, validationf("to must be YYYY-MM-DD")
		}
		to = t.AddDate(0, 0, 1) // inclusive end date
	}
	from := to.AddDate(0, 0, -30)
	if filter.From != "" {
		t, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			return nil, validationf("from must be YYYY-MM-DD")
		}
		from = t
	}
	return s.timeEntries.ListByEmployee(ctx, employeeID, from, to)
}
