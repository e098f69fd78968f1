package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueAudit  = "jobs:audit"
	QueueAlerts = "jobs:alerts"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AuditEvent is enqueued by services strictly AFTER their transaction
// commits; the audit trail is an out-of-band consumer, never a
// participant in the mutation.
type AuditEvent struct {
	Action string                 `json:"action"`
	UserID string                 `json:"user_id,omitempty"`
	Detail map[string]interface{} `json:"detail"`
}

// LowStockCheck asks the alert worker to re-evaluate a product that was
// just decremented.
type LowStockCheck struct {
	ProductID string `json:"product_id"`
}

// Dispatcher enqueues async jobs into Redis lists; the worker pool
// dequeues them via BRPOP. A nil Dispatcher is safe to call (unit test
// mode) — enqueues become no-ops.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher { return &Dispatcher{rdb: rdb} }

// EnqueueAudit pushes an audit event. Best-effort: a failed enqueue must
// never fail the already-committed business operation.
func (d *Dispatcher) EnqueueAudit(ctx context.Context, ev AuditEvent) {
	if d == nil || d.rdb == nil {
		return
	}
	if err := d.enqueue(ctx, QueueAudit, "audit", ev); err != nil {
		log.Warn().Err(err).Str("action", ev.Action).Msg("audit enqueue failed")
	}
}

// EnqueueLowStockCheck pushes an alert re-evaluation job, best-effort.
func (d *Dispatcher) EnqueueLowStockCheck(ctx context.Context, productID string) {
	if d == nil || d.rdb == nil {
		return
	}
	if err := d.enqueue(ctx, QueueAlerts, "low_stock_check", LowStockCheck{ProductID: productID}); err != nil {
		log.Warn().Err(err).Str("product_id", productID).Msg("alert enqueue failed")
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Handlers holds the concrete job processors wired at the composition root.
type Handlers struct {
	Audit *AuditWorker
	Alert *AlertWorker
}

// StartPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartPool(ctx context.Context, rdb *redis.Client, h *Handlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go run(ctx, rdb, h, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func run(ctx context.Context, rdb *redis.Client, h *Handlers, id int) {
	queues := []string{QueueAudit, QueueAlerts}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			process(ctx, h, result[0], result[1])
		}
	}
}

func process(ctx context.Context, h *Handlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var err error
	switch job.Type {
	case "audit":
		err = h.Audit.Handle(ctx, job.Payload)
	case "low_stock_check":
		err = h.Alert.Handle(ctx, job.Payload)
	default:
		log.Warn().Str("type", job.Type).Msg("unknown job type dropped")
		return
	}
	if err != nil {
		log.Error().Str("type", job.Type).Err(err).Msg("job failed")
	}
}
