package models

import (
	"time"
)

// Result is one user's computed outcome for a contest. The field set is fixed;
// callers cannot write arbitrary columns.
type Result struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ContestTitle string    `gorm:"column:contest_title;size:255;not null" json:"contest_title"`
	Username     string    `gorm:"size:255;not null" json:"username"`
	Mobile       string    `gorm:"size:20" json:"mobile"`
	Points       float64   `gorm:"default:0" json:"points"`
	Rank         int       `gorm:"default:0" json:"rank"`
	Winnings     float64   `gorm:"default:0" json:"winnings"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Result) TableName() string {
	return "result"
}

type ResultRequest struct {
	ContestTitle string  `json:"contest_title" binding:"required"`
	Username     string  `json:"username" binding:"required"`
	Mobile       string  `json:"mobile"`
	Points       float64 `json:"points"`
	Rank         int     `json:"rank"`
	Winnings     float64 `json:"winnings"`
}
