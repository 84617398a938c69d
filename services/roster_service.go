package services

import (
	"errors"
	"fmt"

	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

type RosterService struct {
	db *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{
		db: db,
	}
}

func rosterFromRequest(req models.SubmitRosterRequest) *models.SelectedTeam {
	slots := req.Slots()
	roster := &models.SelectedTeam{
		Username:        req.Username,
		Mobile:          req.Mobile,
		Player1ID:       slots[0].ID,
		Player1Name:     slots[0].Name,
		Player2ID:       slots[1].ID,
		Player2Name:     slots[1].Name,
		Player3ID:       slots[2].ID,
		Player3Name:     slots[2].Name,
		Player4ID:       slots[3].ID,
		Player4Name:     slots[3].Name,
		Player5ID:       slots[4].ID,
		Player5Name:     slots[4].Name,
		Player6ID:       slots[5].ID,
		Player6Name:     slots[5].Name,
		Player7ID:       slots[6].ID,
		Player7Name:     slots[6].Name,
		Player8ID:       slots[7].ID,
		Player8Name:     slots[7].Name,
		Player9ID:       slots[8].ID,
		Player9Name:     slots[8].Name,
		Player10ID:      slots[9].ID,
		Player10Name:    slots[9].Name,
		Player11ID:      slots[10].ID,
		Player11Name:    slots[10].Name,
		CaptainID:       req.CaptainID,
		CaptainName:     req.CaptainName,
		ViceCaptainID:   req.ViceCaptainID,
		ViceCaptainName: req.ViceCaptainName,
		ContestTitle:    req.ContestTitle,
		TotalPoints:     req.TotalPoints,
	}
	if req.ContestEntryFee != nil {
		roster.ContestEntryFee = *req.ContestEntryFee
	}
	return roster
}

// SubmitRoster persists one lineup. The same user may submit several rosters
// for the same contest; only the captain/vice-captain distinction is enforced.
func (s *RosterService) SubmitRoster(req models.SubmitRosterRequest) (*models.SelectedTeam, error) {
	if req.CaptainID != 0 && req.CaptainID == req.ViceCaptainID {
		return nil, fmt.Errorf("%w: captain and vice-captain must be different players", ErrInvalidInput)
	}

	roster := rosterFromRequest(req)

	if err := s.db.Create(roster).Error; err != nil {
		return nil, err
	}

	return roster, nil
}

func (s *RosterService) GetAllRosters() ([]models.SelectedTeam, error) {
	rosters := []models.SelectedTeam{}

	if err := s.db.Find(&rosters).Error; err != nil {
		return nil, err
	}

	return rosters, nil
}

func (s *RosterService) GetRosterByID(id uint) (*models.SelectedTeam, error) {
	var roster models.SelectedTeam

	if err := s.db.First(&roster, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: roster %d", ErrNotFound, id)
		}
		return nil, err
	}

	return &roster, nil
}

func (s *RosterService) UpdateRoster(id uint, req models.SubmitRosterRequest) error {
	if req.CaptainID != 0 && req.CaptainID == req.ViceCaptainID {
		return fmt.Errorf("%w: captain and vice-captain must be different players", ErrInvalidInput)
	}

	replacement := rosterFromRequest(req)
	replacement.ID = id

	result := s.db.Model(&models.SelectedTeam{}).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(replacement)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: roster %d", ErrNotFound, id)
	}

	return nil
}

func (s *RosterService) DeleteRoster(id uint) error {
	result := s.db.Delete(&models.SelectedTeam{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: roster %d", ErrNotFound, id)
	}

	return nil
}
