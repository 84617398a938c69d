package services

import (
	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

// BotService only lists; bots are seeded through fixtures, never via the API.
type BotService struct {
	db *gorm.DB
}

func NewBotService(db *gorm.DB) *BotService {
	return &BotService{
		db: db,
	}
}

func (s *BotService) GetAllBots() ([]models.Bot, error) {
	bots := []models.Bot{}

	if err := s.db.Find(&bots).Error; err != nil {
		return nil, err
	}

	return bots, nil
}
