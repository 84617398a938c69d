package services

import (
	"errors"
	"fmt"

	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

type JoinedContestService struct {
	db *gorm.DB
}

func NewJoinedContestService(db *gorm.DB) *JoinedContestService {
	return &JoinedContestService{
		db: db,
	}
}

// CreateEntry records a join exactly as submitted. It does not verify the
// contest, the fee, the spot count or the wallet; those belong to the caller
// or to ContestService.JoinContest. Duplicate submissions produce duplicate
// rows.
func (s *JoinedContestService) CreateEntry(req models.CreateJoinedContestRequest) (*models.JoinedContest, error) {
	entry := &models.JoinedContest{
		ContestTitle: req.ContestTitle,
		EntryFee:     req.EntryFee,
		Username:     req.Username,
		Mobile:       req.Mobile,
		PaymentID:    req.PaymentID,
		ContestTime:  req.ContestTime,
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *JoinedContestService) GetAllEntries() ([]models.JoinedContest, error) {
	entries := []models.JoinedContest{}

	if err := s.db.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *JoinedContestService) GetEntryByID(id uint) (*models.JoinedContest, error) {
	var entry models.JoinedContest

	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: joined contest %d", ErrNotFound, id)
		}
		return nil, err
	}

	return &entry, nil
}

func (s *JoinedContestService) UpdateEntry(id uint, req models.UpdateJoinedContestRequest) error {
	fields := map[string]interface{}{
		"contest_title": req.ContestTitle,
		"entry_fee":     req.EntryFee,
		"username":      req.Username,
		"mobile":        req.Mobile,
		"paymentId":     req.PaymentID,
		"contest_time":  req.ContestTime,
	}
	if req.JoinedAt != nil {
		fields["joined_at"] = *req.JoinedAt
	}

	result := s.db.Model(&models.JoinedContest{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: joined contest %d", ErrNotFound, id)
	}

	return nil
}

func (s *JoinedContestService) DeleteEntry(id uint) error {
	result := s.db.Delete(&models.JoinedContest{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: joined contest %d", ErrNotFound, id)
	}

	return nil
}
