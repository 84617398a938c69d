package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db: db,
	}
}

func (s *UserService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Username: req.Username,
		Mobile:   req.Mobile,
	}
	if req.Wallet != nil {
		user.Wallet = *req.Wallet
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	// Initialized so an empty table serializes as [] rather than null.
	users := []models.User{}

	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}

	return &user, nil
}

// UpdateProfile replaces the editable fields wholesale. It does not touch
// login_at; see RecordLogin.
func (s *UserService) UpdateProfile(id uint, req models.UpdateUserRequest) error {
	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"username": req.Username,
		"mobile":   req.Mobile,
		"wallet":   req.Wallet,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", ErrNotFound, id)
	}

	return nil
}

// RecordLogin stamps login_at with the server clock.
func (s *UserService) RecordLogin(id uint) (*models.User, error) {
	now := time.Now()

	result := s.db.Model(&models.User{}).Where("id = ?", id).Update("login_at", now)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}

	return s.GetUserByID(id)
}

func (s *UserService) DeleteUser(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", ErrNotFound, id)
	}

	return nil
}
