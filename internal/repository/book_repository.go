package repository

import (
	"context"

	"bookstore/internal/domain/model"
)

// Read-only catalog access. Writes go through whatever seeds the
// catalog; this API never mutates books.
type BookRepository interface {
	ListActive(ctx context.Context) ([]model.Book, error)
	FindActiveByID(ctx context.Context, id int64) (model.Book, error)
	Search(ctx context.Context, query string) ([]model.Book, error)
}
