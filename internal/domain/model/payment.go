package model

import "time"

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64         `gorm:"not null;index" json:"order_id"`
	UserID        string        `gorm:"type:varchar(255);not null;index" json:"user_id"`
	Amount        int64         `gorm:"not null" json:"amount"`
	PaymentMethod string        `gorm:"type:varchar(50);not null" json:"payment_method"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	TransactionID string        `gorm:"type:varchar(255);not null" json:"transaction_id"`
	CreatedAt     time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
}
