package worker

import (
	"context"
	"encoding/json"

	"stockli/internal/model"
	"stockli/internal/repository"

	"github.com/google/uuid"
)

// AuditWorker persists audit events dequeued from redis into the
// audit_logs table.
type AuditWorker struct {
	repo repository.AuditLogRepository
}

func NewAuditWorker(repo repository.AuditLogRepository) *AuditWorker {
	return &AuditWorker{repo: repo}
}

func (w *AuditWorker) Handle(ctx context.Context, payload json.RawMessage) error {
	var ev AuditEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return err
	}

	detail, err := json.Marshal(ev.Detail)
	if err != nil {
		return err
	}

	entry := &model.AuditLog{
		Action: ev.Action,
		Detail: string(detail),
	}
	if uid, err := uuid.Parse(ev.UserID); err == nil {
		entry.UserID = &uid
	}
	return w.repo.Create(ctx, entry)
}
