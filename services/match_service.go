package services

import (
	"errors"
	"fmt"

	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

// MatchService covers both match tables. The upcoming and featured listings
// are stored separately so either can be curated without touching the other.
type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

func matchFields(req models.MatchRequest) map[string]interface{} {
	return map[string]interface{}{
		"team_a":     req.TeamA,
		"team_b":     req.TeamB,
		"time":       req.Time,
		"teama_logo": req.TeamALogo,
		"teamb_logo": req.TeamBLogo,
		"title":      req.Title,
	}
}

func (s *MatchService) CreateUpcoming(req models.MatchRequest) (*models.UpcomingMatch, error) {
	match := &models.UpcomingMatch{
		TeamA:     req.TeamA,
		TeamB:     req.TeamB,
		Time:      req.Time,
		TeamALogo: req.TeamALogo,
		TeamBLogo: req.TeamBLogo,
		Title:     req.Title,
	}

	if err := s.db.Create(match).Error; err != nil {
		return nil, err
	}

	return match, nil
}

func (s *MatchService) GetAllUpcoming() ([]models.UpcomingMatch, error) {
	matches := []models.UpcomingMatch{}

	if err := s.db.Find(&matches).Error; err != nil {
		return nil, err
	}

	return matches, nil
}

func (s *MatchService) GetUpcomingByID(id uint) (*models.UpcomingMatch, error) {
	var match models.UpcomingMatch

	if err := s.db.First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: match %d", ErrNotFound, id)
		}
		return nil, err
	}

	return &match, nil
}

func (s *MatchService) UpdateUpcoming(id uint, req models.MatchRequest) error {
	result := s.db.Model(&models.UpcomingMatch{}).Where("id = ?", id).Updates(matchFields(req))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: match %d", ErrNotFound, id)
	}

	return nil
}

func (s *MatchService) DeleteUpcoming(id uint) error {
	result := s.db.Delete(&models.UpcomingMatch{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: match %d", ErrNotFound, id)
	}

	return nil
}

func (s *MatchService) CreateFeatured(req models.MatchRequest) (*models.FeaturedMatch, error) {
	match := &models.FeaturedMatch{
		TeamA:     req.TeamA,
		TeamB:     req.TeamB,
		Time:      req.Time,
		TeamALogo: req.TeamALogo,
		TeamBLogo: req.TeamBLogo,
		Title:     req.Title,
	}

	if err := s.db.Create(match).Error; err != nil {
		return nil, err
	}

	return match, nil
}

func (s *MatchService) GetAllFeatured() ([]models.FeaturedMatch, error) {
	matches := []models.FeaturedMatch{}

	if err := s.db.Find(&matches).Error; err != nil {
		return nil, err
	}

	return matches, nil
}

func (s *MatchService) GetFeaturedByID(id uint) (*models.FeaturedMatch, error) {
	var match models.FeaturedMatch

	if err := s.db.First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: match %d", ErrNotFound, id)
		}
		return nil, err
	}

	return &match, nil
}

func (s *MatchService) UpdateFeatured(id uint, req models.MatchRequest) error {
	result := s.db.Model(&models.FeaturedMatch{}).Where("id = ?", id).Updates(matchFields(req))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: match %d", ErrNotFound, id)
	}

	return nil
}

func (s *MatchService) DeleteFeatured(id uint) error {
	result := s.db.Delete(&models.FeaturedMatch{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: match %d", ErrNotFound, id)
	}

	return nil
}
