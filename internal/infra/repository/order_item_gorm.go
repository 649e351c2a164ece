package repository

import (
	"context"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

// Items joined with book details for the order-detail response.
func (r *OrderItemGormRepository) ListViewByOrderID(ctx context.Context, orderID int64) ([]repo.OrderLineView, error) {
	var lines []repo.OrderLineView
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.book_id, books.title, books.author, order_items.quantity, order_items.price").
		Joins("join books on books.id = order_items.book_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id asc").
		Scan(&lines).Error
	if err != nil {
		return []repo.OrderLineView{}, err
	}
	return lines, nil
}
