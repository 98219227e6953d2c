package ports

import (
	"context"

	"fishmarket/internal/core/domain/model/order"
)

// OrderEventPublisher notifies downstream consumers about order lifecycle
// changes. Publishing is best-effort and happens after the state change has
// committed; a publish failure is logged by the caller, never surfaced to the
// customer or allowed to block the transition.
type OrderEventPublisher interface {
	// PublishOrderPlaced announces a freshly placed order.
	PublishOrderPlaced(ctx context.Context, aggregate *order.Order) error

	// PublishOrderStatusChanged announces a committed status transition.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}
