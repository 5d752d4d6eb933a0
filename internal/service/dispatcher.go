package service

import (
	"context"

	"github.com/google/uuid"
)

// Dispatcher is the async side channel for engagement counters, satisfied
// by worker.Dispatcher. Services treat a nil dispatcher as "counters off"
// so unit tests run without Redis.
type Dispatcher interface {
	EnqueueProductView(ctx context.Context, productID uuid.UUID) error
	EnqueueCartAdd(ctx context.Context, productID uuid.UUID) error
	EnqueueSiteStat(ctx context.Context, key string) error
}
