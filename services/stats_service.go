package services

import (
	"time"

	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

func (s *StatsService) GetStats() (*models.Stats, error) {
	stats := &models.Stats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Contest{}).Count(&stats.TotalContests).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.JoinedContest{}).Count(&stats.TotalJoined).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.SelectedTeam{}).Count(&stats.TotalRosters).Error; err != nil {
		return nil, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := s.db.Model(&models.JoinedContest{}).
		Where("joined_at >= ?", weekAgo).
		Count(&stats.JoinsLast7Days).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
