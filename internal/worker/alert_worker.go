package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"stockli/internal/infra"
	"stockli/internal/model"
	"stockli/internal/repository"

	"github.com/google/uuid"
)

// AlertWorker raises low-stock alerts. It re-reads the product after the
// triggering mutation committed, so a restock racing the alert simply
// results in no alert.
type AlertWorker struct {
	products repository.ProductRepository
	alerts   repository.AuditLogRepository
	mailer   *infra.Mailer
	notify   []string // manager addresses for the digest mail
}

func NewAlertWorker(products repository.ProductRepository, alerts repository.AuditLogRepository, mailer *infra.Mailer, notify []string) *AlertWorker {
	return &AlertWorker{products: products, alerts: alerts, mailer: mailer, notify: notify}
}

func (w *AlertWorker) Handle(ctx context.Context, payload json.RawMessage) error {
	var job LowStockCheck
	if err := json.Unmarshal(payload, &job); err != nil {
		return err
	}
	pid, err := uuid.Parse(job.ProductID)
	if err != nil {
		return err
	}

	p, err := w.products.FindByID(ctx, pid)
	if err != nil {
		return err
	}
	if !p.IsLowStock() {
		return nil
	}

	alert := &model.Alert{
		Type:     "low_stock",
		Title:    "Low stock: " + p.Name,
		Message:  fmt.Sprintf("%s (%s) is at %d units, reorder point %d", p.Name, p.SKU, p.StockQuantity, p.ReorderPoint),
		Severity: "warning",
	}
	if err := w.alerts.CreateAlert(ctx, alert); err != nil {
		return err
	}

	if w.mailer != nil && len(w.notify) > 0 {
		// mail failures are logged by the mailer, not retried
		_ = w.mailer.Send(w.notify, alert.Title, alert.Message)
	}
	return nil
}
