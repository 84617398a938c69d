package models

import (
	"time"
)

type Contest struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Time      string    `gorm:"size:255" json:"time"`
	PrizePool float64   `gorm:"column:prize_pool" json:"prize_pool"`
	EntryFee  float64   `gorm:"column:entry_fee" json:"entry_fee"`
	SpotEntry int       `gorm:"column:spot_entry" json:"spot_entry"`
	SpotLeft  int       `gorm:"column:spot_left" json:"spot_left"`
	Category  string    `gorm:"size:100" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Contest) TableName() string {
	return "contest"
}

type ContestRequest struct {
	Title     string  `json:"title" binding:"required"`
	Time      string  `json:"time" binding:"required"`
	PrizePool float64 `json:"prize_pool"`
	EntryFee  float64 `json:"entry_fee"`
	SpotEntry int     `json:"spot_entry"`
	SpotLeft  int     `json:"spot_left"`
	Category  string  `json:"category"`
}

// JoinContestRequest enters a user into a contest atomically: the wallet
// debit, the spot_left decrement and the join record happen in one
// transaction. The legacy /joined_contests insert stays decoupled.
type JoinContestRequest struct {
	Username  string `json:"username" binding:"required"`
	Mobile    string `json:"mobile" binding:"required"`
	PaymentID string `json:"payment_id,omitempty"`
}
