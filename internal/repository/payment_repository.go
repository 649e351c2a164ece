package repository

import (
	"context"

	"bookstore/internal/domain/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, p model.Payment) (int64, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Payment, error)
}
