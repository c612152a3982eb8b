package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"not null" json:"username"` // Display name, defaults to email local part
	Password  string    `gorm:"not null" json:"-"`        // Hash
	Approved  bool      `gorm:"default:false;not null" json:"approved"` // Gates product writes
	Admin     bool      `gorm:"default:false;not null" json:"admin"`    // Gates user management
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt for hard delete
}
