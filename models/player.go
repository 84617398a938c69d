package models

import (
	"time"
)

// Player is a real-world player made available for roster selection.
// The contest association is by title string, matching the join snapshots.
type Player struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Role         string    `gorm:"size:100" json:"role"`
	Team         string    `gorm:"size:255" json:"team"`
	Points       float64   `gorm:"default:0" json:"points"`
	ContestTitle string    `gorm:"column:contest_title;size:255" json:"contest_title"`
	ContestTeam  string    `gorm:"column:contest_team;size:255" json:"contest_team"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Player) TableName() string {
	return "player"
}

type PlayerRequest struct {
	Name         string  `json:"name" binding:"required"`
	Role         string  `json:"role"`
	Team         string  `json:"team"`
	Points       float64 `json:"points"`
	ContestTitle string  `json:"contest_title"`
	ContestTeam  string  `json:"contest_team"`
}
