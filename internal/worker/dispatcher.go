package worker

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const QueueCounters = "jobs:counters"

// Counter job kinds.
const (
	JobProductView = "product_view"
	JobCartAdd     = "cart_add"
	JobSiteStat    = "site_stat"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// CounterPayload carries one engagement-counter increment. Counters are
// bumped off the request path so a slow write never delays a page view.
type CounterPayload struct {
	ProductID string `json:"product_id,omitempty"`
	StatKey   string `json:"stat_key,omitempty"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueProductView bumps a product's view counter asynchronously.
func (d *Dispatcher) EnqueueProductView(ctx context.Context, productID uuid.UUID) error {
	return d.enqueue(ctx, JobProductView, CounterPayload{ProductID: productID.String()})
}

// EnqueueCartAdd bumps a product's cart-add counter asynchronously.
func (d *Dispatcher) EnqueueCartAdd(ctx context.Context, productID uuid.UUID) error {
	return d.enqueue(ctx, JobCartAdd, CounterPayload{ProductID: productID.String()})
}

// EnqueueSiteStat bumps a named site-wide counter asynchronously.
func (d *Dispatcher) EnqueueSiteStat(ctx context.Context, key string) error {
	return d.enqueue(ctx, JobSiteStat, CounterPayload{StatKey: key})
}

func (d *Dispatcher) enqueue(ctx context.Context, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueCounters, encoded).Err()
}
