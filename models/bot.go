package models

// Bot is a read-only lookup row for the practice-opponent picker.
type Bot struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"size:255;not null" json:"name"`
	Level  int    `gorm:"default:1" json:"level"`
	Avatar string `gorm:"size:512" json:"avatar"`
}

func (Bot) TableName() string {
	return "bots"
}
