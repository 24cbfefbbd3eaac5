package store

import (
	"context"

	"confetti-orders/models"
)

// Store persists the order collection, keyed by order id.
//
// Load and Put are not transactional as a pair: a Load -> mutate -> Put
// cycle can lose a concurrent writer's update. Backends serialize their
// own writes, but closing that wider race means swapping in a backend
// with a conditional Put behind this same interface.
type Store interface {
	Load(ctx context.Context) (map[string]models.Order, error)
	Put(ctx context.Context, order models.Order) error
}
