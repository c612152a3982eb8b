package models

import (
	"time"
)

// Vote is a binary endorsement of a product. The composite unique index is
// the store-level guarantee of at most one vote per (user, product); racing
// inserts surface as duplicate-key violations.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_product" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ProductID uint      `gorm:"not null;index;uniqueIndex:idx_user_product" json:"product_id"`
	Product   Product   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
