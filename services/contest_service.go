package services

import (
	"errors"
	"fmt"

	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

type ContestService struct {
	db *gorm.DB
}

func NewContestService(db *gorm.DB) *ContestService {
	return &ContestService{
		db: db,
	}
}

func (s *ContestService) CreateContest(req models.ContestRequest) (*models.Contest, error) {
	contest := &models.Contest{
		Title:     req.Title,
		Time:      req.Time,
		PrizePool: req.PrizePool,
		EntryFee:  req.EntryFee,
		SpotEntry: req.SpotEntry,
		SpotLeft:  req.SpotLeft,
		Category:  req.Category,
	}

	if err := s.db.Create(contest).Error; err != nil {
		return nil, err
	}

	return contest, nil
}

func (s *ContestService) GetAllContests() ([]models.Contest, error) {
	contests := []models.Contest{}

	if err := s.db.Find(&contests).Error; err != nil {
		return nil, err
	}

	return contests, nil
}

func (s *ContestService) GetContestByID(id uint) (*models.Contest, error) {
	var contest models.Contest

	if err := s.db.First(&contest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contest %d", ErrNotFound, id)
		}
		return nil, err
	}

	return &contest, nil
}

func (s *ContestService) UpdateContest(id uint, req models.ContestRequest) error {
	result := s.db.Model(&models.Contest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":      req.Title,
		"time":       req.Time,
		"prize_pool": req.PrizePool,
		"entry_fee":  req.EntryFee,
		"spot_entry": req.SpotEntry,
		"spot_left":  req.SpotLeft,
		"category":   req.Category,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: contest %d", ErrNotFound, id)
	}

	return nil
}

func (s *ContestService) DeleteContest(id uint) error {
	result := s.db.Delete(&models.Contest{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: contest %d", ErrNotFound, id)
	}

	return nil
}

// JoinContest enters a user into a contest in a single transaction: it takes a
// free spot, debits the entry fee from the wallet and writes the join snapshot.
// Any step failing rolls the whole entry back. The spot and wallet updates are
// guarded so two concurrent joins cannot take the last spot twice or drive a
// wallet negative.
func (s *ContestService) JoinContest(contestID uint, req models.JoinContestRequest) (*models.JoinedContest, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var contest models.Contest
	if err := tx.First(&contest, contestID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contest %d", ErrNotFound, contestID)
		}
		return nil, err
	}

	var user models.User
	if err := tx.Where("username = ? AND mobile = ?", req.Username, req.Mobile).
		First(&user).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, req.Username)
		}
		return nil, err
	}

	spot := tx.Model(&models.Contest{}).
		Where("id = ? AND spot_left > 0", contestID).
		UpdateColumn("spot_left", gorm.Expr("spot_left - 1"))
	if spot.Error != nil {
		tx.Rollback()
		return nil, spot.Error
	}
	if spot.RowsAffected == 0 {
		tx.Rollback()
		return nil, fmt.Errorf("%w: %s", ErrContestFull, contest.Title)
	}

	debit := tx.Model(&models.User{}).
		Where("id = ? AND wallet >= ?", user.ID, contest.EntryFee).
		UpdateColumn("wallet", gorm.Expr("wallet - ?", contest.EntryFee))
	if debit.Error != nil {
		tx.Rollback()
		return nil, debit.Error
	}
	if debit.RowsAffected == 0 {
		tx.Rollback()
		return nil, fmt.Errorf("%w: wallet %.2f, entry fee %.2f",
			ErrInsufficientFunds, user.Wallet, contest.EntryFee)
	}

	entry := &models.JoinedContest{
		ContestTitle: contest.Title,
		EntryFee:     contest.EntryFee,
		Username:     user.Username,
		Mobile:       user.Mobile,
		PaymentID:    req.PaymentID,
		ContestTime:  contest.Time,
	}
	if err := tx.Create(entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return entry, nil
}
