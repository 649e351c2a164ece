package repository

import (
	"context"

	"bookstore/internal/domain/model"
)

// CheckoutLine is a cart row joined with the live catalog price at
// the moment of checkout. Prices are never taken from the cart row
// itself.
type CheckoutLine struct {
	BookID    int64
	Quantity  int64
	UnitPrice int64
}

// CartLineView is a cart row joined with book details for display.
type CartLineView struct {
	BookID    int64
	Title     string
	Author    string
	UnitPrice int64
	Quantity  int64
}

type CartItemRepository interface {
	ListByUser(ctx context.Context, userID string) ([]CartLineView, error)
	// Same book adds up in one row
	Upsert(ctx context.Context, userID string, bookID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, userID string, bookID int64, qty int64) error
	Delete(ctx context.Context, userID string, bookID int64) error
	FindByUserAndBook(ctx context.Context, userID string, bookID int64) (model.CartItem, error)

	// Reads the user's cart lines with live prices, locking the cart
	// rows for the rest of the transaction. Must run inside WithinTx.
	ListForCheckout(ctx context.Context, userID string) ([]CheckoutLine, error)
	DeleteByUser(ctx context.Context, userID string) error
}
