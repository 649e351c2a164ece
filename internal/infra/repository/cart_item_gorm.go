package repository

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// Cart lines joined with book details for display.
func (r *CartItemGormRepository) ListByUser(ctx context.Context, userID string) ([]repo.CartLineView, error) {
	var lines []repo.CartLineView

	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.book_id, books.title, books.author, books.price AS unit_price, cart_items.quantity").
		Joins("join books on books.id = cart_items.book_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id asc").
		Scan(&lines).Error
	if err != nil {
		return []repo.CartLineView{}, err
	}
	return lines, nil
}

// Same (user, book) adds up in one row.
func (r *CartItemGormRepository) Upsert(ctx context.Context, userID string, bookID int64, addQty int64) error {
	if addQty <= 0 {
		return errors.New("invalid quantity")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.CartItem

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND book_id = ?", userID, bookID).
			First(&item).Error

		if err == nil {
			res := tx.Model(&model.CartItem{}).
				Where("id = ?", item.ID).
				Update("quantity", item.Quantity+addQty)

			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		newItem := model.CartItem{
			UserID:    userID,
			BookID:    bookID,
			Quantity:  addQty,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := tx.Create(&newItem).Error; err != nil {
			return err
		}

		return nil
	})
}

func (r *CartItemGormRepository) UpdateQuantity(ctx context.Context, userID string, bookID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CartItemGormRepository) Delete(ctx context.Context, userID string, bookID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CartItemGormRepository) FindByUserAndBook(ctx context.Context, userID string, bookID int64) (model.CartItem, error) {
	var item model.CartItem

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// Joins the live catalog price and locks the cart rows. A concurrent
// checkout for the same user blocks here until the first one commits,
// then re-reads and finds the cart empty.
func (r *CartItemGormRepository) ListForCheckout(ctx context.Context, userID string) ([]repo.CheckoutLine, error) {
	var lines []repo.CheckoutLine

	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.book_id, cart_items.quantity, books.price AS unit_price").
		Joins("join books on books.id = cart_items.book_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id asc").
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "cart_items"}}).
		Scan(&lines).Error
	if err != nil {
		return []repo.CheckoutLine{}, err
	}
	return lines, nil
}

func (r *CartItemGormRepository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
