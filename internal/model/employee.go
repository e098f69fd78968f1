package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee statuses.
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// Employee is a staff member eligible for scheduling and time tracking.
// Deactivated via Status so past schedules and time entries keep a
// valid reference.
type Employee struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber        string    `gorm:"uniqueIndex;not null"`
	FirstName             string    `gorm:"not null"`
	LastName              string    `gorm:"not null"`
	Position              string    `gorm:"not null"`
	Department            *string
	HourlyRate            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	HireDate              time.Time       `gorm:"type:date;not null"`
	Email                 *string
	Phone                 *string
	Address               *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	Status                string `gorm:"not null;default:'active'"` // active | inactive
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Schedule is one planned shift; at most one per employee per date.
// ShiftStart and ShiftEnd are times of day in HH:MM. An end before the
// start means the shift runs past midnight into the next day.
type Schedule struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_schedules_employee_date"`
	ScheduleDate   time.Time       `gorm:"type:date;not null;uniqueIndex:idx_schedules_employee_date"`
	ShiftStart     string          `gorm:"not null"`
	ShiftEnd       string          `gorm:"not null"`
	BreakDuration  int             `gorm:"not null;default:30"` // minutes
	ScheduledHours decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Position       *string
	Notes          string
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
}

// TimeEntry statuses.
const (
	TimeEntryOpen      = "open"
	TimeEntryCompleted = "completed"
)

// TimeEntry is one clock-in/clock-out pair. HourlyRate is snapshotted
// at clock-in so a later raise does not rewrite past pay. Hours and
// pay stay zero until clock-out completes the entry.
type TimeEntry struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ScheduleID    *uuid.UUID `gorm:"type:uuid"`
	ClockIn       time.Time  `gorm:"not null"`
	ClockOut      *time.Time
	BreakDuration int             `gorm:"not null;default:30"` // minutes
	HourlyRate    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalHours    decimal.Decimal `gorm:"type:decimal(5,2)"`
	OvertimeHours decimal.Decimal `gorm:"type:decimal(5,2)"`
	GrossPay      decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status        string          `gorm:"not null;default:'open'"` // open | completed
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
}
