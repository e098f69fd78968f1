package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is written by the async audit worker after a mutation commits.
// It is never written inside the mutating transaction.
type AuditLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Action    string     `gorm:"not null;index"`
	Detail    string     `gorm:"type:jsonb;not null;default:'{}'"`
	UserID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// Alert is a dashboard notification, currently only low-stock warnings
// raised by the alert worker.
type Alert struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type        string    `gorm:"not null"` // low_stock | system
	Title       string    `gorm:"not null"`
	Message     string    `gorm:"not null"`
	Severity    string    `gorm:"not null;default:'warning'"`
	IsRead      bool      `gorm:"not null;default:false"`
	IsDismissed bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}
