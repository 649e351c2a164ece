package model

import "time"

// One row per (user, book). Adding the same book again increments
// quantity instead of creating a second row.
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_user_book" json:"user_id"`
	BookID    int64     `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"book_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
