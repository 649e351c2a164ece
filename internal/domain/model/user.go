package model

import "time"

// Subject is the opaque token subject assigned by the identity
// provider. Credentials never live in this table.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Subject   string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	FirstName string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100)" json:"last_name"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
