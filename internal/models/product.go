package models

import (
	"time"
)

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`
	Name        string    `gorm:"not null" json:"name"`
	Price       int       `gorm:"not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"` // Markdown source
	IsAvailable bool      `gorm:"default:true;not null" json:"is_available"`
	VoteCount   int       `gorm:"default:0;not null" json:"votes"` // Maintained in the same tx as vote writes
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
