package models

import (
	"time"
)

// JoinedContest is a denormalized snapshot of the contest at join time.
// There is deliberately no foreign key to Contest: the title, fee and time
// are frozen as the user saw them.
type JoinedContest struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ContestTitle string    `gorm:"column:contest_title;size:255;not null" json:"contest_title"`
	EntryFee     float64   `gorm:"column:entry_fee" json:"entry_fee"`
	Username     string    `gorm:"size:255;not null" json:"username"`
	Mobile       string    `gorm:"size:20;not null" json:"mobile"`
	PaymentID    string    `gorm:"column:paymentId;size:255" json:"paymentId,omitempty"`
	ContestTime  string    `gorm:"column:contest_time;size:255" json:"contest_time"`
	JoinedAt     time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}

func (JoinedContest) TableName() string {
	return "joined_contests"
}

type CreateJoinedContestRequest struct {
	ContestTitle string  `json:"contest_title" binding:"required"`
	EntryFee     float64 `json:"entry_fee"`
	Username     string  `json:"username" binding:"required"`
	Mobile       string  `json:"mobile" binding:"required"`
	PaymentID    string  `json:"paymentId,omitempty"`
	ContestTime  string  `json:"contest_time"`
}

type UpdateJoinedContestRequest struct {
	ContestTitle string     `json:"contest_title" binding:"required"`
	EntryFee     float64    `json:"entry_fee"`
	Username     string     `json:"username" binding:"required"`
	Mobile       string     `json:"mobile" binding:"required"`
	PaymentID    string     `json:"paymentId,omitempty"`
	ContestTime  string     `json:"contest_time"`
	JoinedAt     *time.Time `json:"joined_at,omitempty"`
}
