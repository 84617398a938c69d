package models

import (
	"time"
)

type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string     `gorm:"size:255;not null" json:"username"`
	Mobile    string     `gorm:"size:20;not null" json:"mobile"`
	Wallet    float64    `gorm:"default:0" json:"wallet"`
	LoginAt   *time.Time `json:"login_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type CreateUserRequest struct {
	Username string   `json:"username" binding:"required"`
	Mobile   string   `json:"mobile" binding:"required"`
	Wallet   *float64 `json:"wallet,omitempty"`
}

// UpdateUserRequest replaces the editable profile fields wholesale.
// Recording a login is a separate operation, not a side effect of update.
type UpdateUserRequest struct {
	Username string  `json:"username" binding:"required"`
	Mobile   string  `json:"mobile" binding:"required"`
	Wallet   float64 `json:"wallet"`
}
