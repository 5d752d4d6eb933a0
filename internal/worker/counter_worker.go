package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/LandLandeiro/oba-moda-afro/internal/repository"

	"github.com/google/uuid"
)

// CounterWorker applies engagement-counter jobs to Postgres.
type CounterWorker struct {
	products repository.ProductRepository
	stats    repository.SiteStatRepository
}

func NewCounterWorker(products repository.ProductRepository, stats repository.SiteStatRepository) *CounterWorker {
	return &CounterWorker{products: products, stats: stats}
}

// Handle processes one dequeued job. Errors send the job to the DLQ.
func (w *CounterWorker) Handle(ctx context.Context, job Job) error {
	var payload CounterPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("counter payload: %w", err)
	}

	switch job.Type {
	case JobProductView:
		id, err := uuid.Parse(payload.ProductID)
		if err != nil {
			return fmt.Errorf("product_view: bad product id %q", payload.ProductID)
		}
		return w.products.IncrementViewCount(ctx, id)
	case JobCartAdd:
		id, err := uuid.Parse(payload.ProductID)
		if err != nil {
			return fmt.Errorf("cart_add: bad product id %q", payload.ProductID)
		}
		return w.products.IncrementCartAddCount(ctx, id)
	case JobSiteStat:
		if payload.StatKey == "" {
			return fmt.Errorf("site_stat: empty key")
		}
		return w.stats.Increment(ctx, payload.StatKey, 1)
	default:
		return fmt.Errorf("unknown job type %q", job.Type)
	}
}
