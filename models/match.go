package models

import (
	"time"
)

// UpcomingMatch and FeaturedMatch are structurally identical but live in two
// tables because the storefront renders them as two independent carousels.

type UpcomingMatch struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamA     string    `gorm:"column:team_a;size:255;not null" json:"team_a"`
	TeamB     string    `gorm:"column:team_b;size:255;not null" json:"team_b"`
	Time      string    `gorm:"size:255" json:"time"`
	TeamALogo string    `gorm:"column:teama_logo;size:512" json:"teama_logo"`
	TeamBLogo string    `gorm:"column:teamb_logo;size:512" json:"teamb_logo"`
	Title     string    `gorm:"size:255" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UpcomingMatch) TableName() string {
	return "upcoming_matches"
}

type FeaturedMatch struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamA     string    `gorm:"column:team_a;size:255;not null" json:"team_a"`
	TeamB     string    `gorm:"column:team_b;size:255;not null" json:"team_b"`
	Time      string    `gorm:"size:255" json:"time"`
	TeamALogo string    `gorm:"column:teama_logo;size:512" json:"teama_logo"`
	TeamBLogo string    `gorm:"column:teamb_logo;size:512" json:"teamb_logo"`
	Title     string    `gorm:"size:255" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FeaturedMatch) TableName() string {
	return "featured_matches"
}

// MatchRequest is shared by both match tables for create and update.
type MatchRequest struct {
	TeamA     string `json:"team_a" binding:"required"`
	TeamB     string `json:"team_b" binding:"required"`
	Time      string `json:"time" binding:"required"`
	TeamALogo string `json:"teama_logo"`
	TeamBLogo string `json:"teamb_logo"`
	Title     string `json:"title"`
}
