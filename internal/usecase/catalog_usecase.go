package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type CatalogUsecase struct {
	bookRepo repo.BookRepository
}

// DI
func NewCatalogUsecase(bookRepo repo.BookRepository) *CatalogUsecase {
	return &CatalogUsecase{bookRepo: bookRepo}
}

func (u *CatalogUsecase) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := u.bookRepo.ListActive(ctx)
	if err != nil {
		return []model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return books, nil
}

func (u *CatalogUsecase) GetBook(ctx context.Context, bookID int64) (model.Book, error) {
	if bookID <= 0 {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	b, err := u.bookRepo.FindActiveByID(ctx, bookID)
	if err == repo.ErrNotFound {
		return model.Book{}, NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

func (u *CatalogUsecase) SearchBooks(ctx context.Context, query string) ([]model.Book, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []model.Book{}, NewHTTPError(http.StatusBadRequest, "empty query")
	}
	if len(q) > 100 {
		return []model.Book{}, NewHTTPError(http.StatusBadRequest, "query too long")
	}

	books, err := u.bookRepo.Search(ctx, q)
	if err != nil {
		return []model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return books, nil
}
