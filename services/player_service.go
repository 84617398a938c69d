package services

import (
	"errors"
	"fmt"

	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) CreatePlayer(req models.PlayerRequest) (*models.Player, error) {
	player := &models.Player{
		Name:         req.Name,
		Role:         req.Role,
		Team:         req.Team,
		Points:       req.Points,
		ContestTitle: req.ContestTitle,
		ContestTeam:  req.ContestTeam,
	}

	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) GetAllPlayers() ([]models.Player, error) {
	players := []models.Player{}

	if err := s.db.Find(&players).Error; err != nil {
		return nil, err
	}

	return players, nil
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	if err := s.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: player %d", ErrNotFound, id)
		}
		return nil, err
	}

	return &player, nil
}

func (s *PlayerService) UpdatePlayer(id uint, req models.PlayerRequest) error {
	result := s.db.Model(&models.Player{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":          req.Name,
		"role":          req.Role,
		"team":          req.Team,
		"points":        req.Points,
		"contest_title": req.ContestTitle,
		"contest_team":  req.ContestTeam,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: player %d", ErrNotFound, id)
	}

	return nil
}

func (s *PlayerService) DeletePlayer(id uint) error {
	result := s.db.Delete(&models.Player{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: player %d", ErrNotFound, id)
	}

	return nil
}
