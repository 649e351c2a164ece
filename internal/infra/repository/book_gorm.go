package repository

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"gorm.io/gorm"
)

type BookGormRepository struct {
	db *gorm.DB
}

// DI
func NewBookGormRepository(db *gorm.DB) *BookGormRepository {
	return &BookGormRepository{db: db}
}

// Active books only; retired titles stay out of every listing.
func (r *BookGormRepository) ListActive(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id asc").
		Find(&books).Error
	if err != nil {
		return []model.Book{}, err
	}
	return books, nil
}

func (r *BookGormRepository) FindActiveByID(ctx context.Context, id int64) (model.Book, error) {
	var b model.Book
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Book{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Book{}, err
	}
	return b, nil
}

// Title/author substring match. Always parameter-bound.
func (r *BookGormRepository) Search(ctx context.Context, query string) ([]model.Book, error) {
	like := "%" + strings.TrimSpace(query) + "%"

	var books []model.Book
	err := r.db.WithContext(ctx).
		Where("(title ILIKE ? OR author ILIKE ?) AND is_active = ?", like, like, true).
		Order("id asc").
		Find(&books).Error
	if err != nil {
		return []model.Book{}, err
	}
	return books, nil
}
