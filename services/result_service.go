package services

import (
	"errors"
	"fmt"

	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{
		db: db,
	}
}

func (s *ResultService) CreateResult(req models.ResultRequest) (*models.Result, error) {
	result := &models.Result{
		ContestTitle: req.ContestTitle,
		Username:     req.Username,
		Mobile:       req.Mobile,
		Points:       req.Points,
		Rank:         req.Rank,
		Winnings:     req.Winnings,
	}

	if err := s.db.Create(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (s *ResultService) GetAllResults() ([]models.Result, error) {
	results := []models.Result{}

	if err := s.db.Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (s *ResultService) GetResultByID(id uint) (*models.Result, error) {
	var result models.Result

	if err := s.db.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: result %d", ErrNotFound, id)
		}
		return nil, err
	}

	return &result, nil
}

func (s *ResultService) UpdateResult(id uint, req models.ResultRequest) error {
	result := s.db.Model(&models.Result{}).Where("id = ?", id).Updates(map[string]interface{}{
		"contest_title": req.ContestTitle,
		"username":      req.Username,
		"mobile":        req.Mobile,
		"points":        req.Points,
		"rank":          req.Rank,
		"winnings":      req.Winnings,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: result %d", ErrNotFound, id)
	}

	return nil
}

func (s *ResultService) DeleteResult(id uint) error {
	result := s.db.Delete(&models.Result{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: result %d", ErrNotFound, id)
	}

	return nil
}
