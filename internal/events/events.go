package events

import "context"

// Routing keys published by this service
const (
	RKOrderCreated = "order.created"
)

type OrderItemEvent struct {
	BookID    int64 `json:"book_id"`
	Quantity  int64 `json:"quantity"`
	UnitCents int64 `json:"unit_cents"`
}

type OrderCreatedPayload struct {
	OrderID    int64            `json:"order_id"`
	UserID     string           `json:"user_id"`
	TotalCents int64            `json:"total_cents"`
	Items      []OrderItemEvent `json:"items"`
}

// Publisher decouples usecases from the broker. Publishing happens
// after commit and is best effort: a broker failure never fails the
// request that produced the event.
type Publisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

// NopPublisher is wired when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishJSON(ctx context.Context, routingKey string, v any) error {
	return nil
}
