package repository

import (
	"context"

	"bookstore/internal/domain/model"
)

// OrderLineView is an order item joined with book details for the
// order-detail response.
type OrderLineView struct {
	BookID   int64
	Title    string
	Author   string
	Quantity int64
	Price    int64
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	ListViewByOrderID(ctx context.Context, orderID int64) ([]OrderLineView, error)
}
