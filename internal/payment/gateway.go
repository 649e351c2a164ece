package payment

import (
	"context"

	"github.com/google/uuid"
)

type Result struct {
	Approved  bool
	Reference string
	Reason    string
}

// Gateway is the external charge collaborator. Amounts are minor
// currency units; the caller decides them from persisted state, never
// from client input.
type Gateway interface {
	Charge(ctx context.Context, orderID int64, amountCents int64, method string) (Result, error)
}

// StaticGateway approves every charge with a generated reference.
// Stands in until a real provider is wired.
type StaticGateway struct{}

func NewStaticGateway() *StaticGateway { return &StaticGateway{} }

func (g *StaticGateway) Charge(ctx context.Context, orderID int64, amountCents int64, method string) (Result, error) {
	return Result{
		Approved:  true,
		Reference: "pay_" + uuid.NewString(),
	}, nil
}
