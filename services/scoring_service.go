package services

import (
	"log"

	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

// Score multipliers for the leadership slots.
const (
	captainMultiplier     = 2.0
	viceCaptainMultiplier = 1.5
)

// ScoringService refreshes each roster's total_points snapshot from the
// current player points. Slots without a player id (name-only submissions
// from old clients) contribute nothing.
type ScoringService struct {
	db *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{
		db: db,
	}
}

// RecalculateAll rescores every roster. A failure on one roster is logged and
// skipped so a single bad row cannot stall the whole run.
func (s *ScoringService) RecalculateAll() error {
	var rosters []models.SelectedTeam
	if err := s.db.Find(&rosters).Error; err != nil {
		log.Printf("Error loading rosters for scoring: %v", err)
		return err
	}

	if len(rosters) == 0 {
		log.Println("No rosters to score")
		return nil
	}

	log.Printf("Rescoring %d rosters", len(rosters))

	for i := range rosters {
		roster := &rosters[i]

		total, err := s.ScoreRoster(roster)
		if err != nil {
			log.Printf("Error scoring roster ID %d: %v", roster.ID, err)
			continue
		}

		if total == roster.TotalPoints {
			continue
		}

		if err := s.db.Model(roster).UpdateColumn("total_points", total).Error; err != nil {
			log.Printf("Error saving score for roster ID %d: %v", roster.ID, err)
			continue
		}
	}

	return nil
}

// ScoreRoster computes a roster's total from the player table: captain counts
// double, vice-captain one and a half times, everyone else at face value.
func (s *ScoringService) ScoreRoster(roster *models.SelectedTeam) (float64, error) {
	slotIDs := roster.PlayerIDs()

	ids := make([]uint, 0, len(slotIDs))
	for _, id := range slotIDs {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	var players []models.Player
	if err := s.db.Where("id IN ?", ids).Find(&players).Error; err != nil {
		return 0, err
	}

	pointsByID := make(map[uint]float64, len(players))
	for _, p := range players {
		pointsByID[p.ID] = p.Points
	}

	var total float64
	for _, id := range slotIDs {
		if id == 0 {
			continue
		}
		points := pointsByID[id]
		switch id {
		case roster.CaptainID:
			total += points * captainMultiplier
		case roster.ViceCaptainID:
			total += points * viceCaptainMultiplier
		default:
			total += points
		}
	}

	return total, nil
}

// GetRosterCount returns how many rosters the next scoring run will touch.
func (s *ScoringService) GetRosterCount() (int64, error) {
	var count int64
	if err := s.db.Model(&models.SelectedTeam{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
