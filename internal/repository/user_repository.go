package repository

import (
	"context"

	"bookstore/internal/domain/model"
)

type UserRepository interface {
	FindBySubject(ctx context.Context, subject string) (model.User, error)
	Create(ctx context.Context, u model.User) (int64, error)
	UpdateBySubject(ctx context.Context, u model.User) error
}
