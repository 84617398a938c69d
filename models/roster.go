package models

import (
	"time"
)

// SelectedTeam is one user's 11-player lineup for a contest, with captain and
// vice-captain designation. Each slot stores the player id and a name snapshot;
// submissions that only carry names leave the ids zero.
type SelectedTeam struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:255;not null" json:"username"`
	Mobile   string `gorm:"size:20;not null" json:"mobile"`

	Player1ID    uint   `gorm:"column:player1_id" json:"player1_id"`
	Player1Name  string `gorm:"column:player1_name;size:255" json:"player1_name"`
	Player2ID    uint   `gorm:"column:player2_id" json:"player2_id"`
	Player2Name  string `gorm:"column:player2_name;size:255" json:"player2_name"`
	Player3ID    uint   `gorm:"column:player3_id" json:"player3_id"`
	Player3Name  string `gorm:"column:player3_name;size:255" json:"player3_name"`
	Player4ID    uint   `gorm:"column:player4_id" json:"player4_id"`
	Player4Name  string `gorm:"column:player4_name;size:255" json:"player4_name"`
	Player5ID    uint   `gorm:"column:player5_id" json:"player5_id"`
	Player5Name  string `gorm:"column:player5_name;size:255" json:"player5_name"`
	Player6ID    uint   `gorm:"column:player6_id" json:"player6_id"`
	Player6Name  string `gorm:"column:player6_name;size:255" json:"player6_name"`
	Player7ID    uint   `gorm:"column:player7_id" json:"player7_id"`
	Player7Name  string `gorm:"column:player7_name;size:255" json:"player7_name"`
	Player8ID    uint   `gorm:"column:player8_id" json:"player8_id"`
	Player8Name  string `gorm:"column:player8_name;size:255" json:"player8_name"`
	Player9ID    uint   `gorm:"column:player9_id" json:"player9_id"`
	Player9Name  string `gorm:"column:player9_name;size:255" json:"player9_name"`
	Player10ID   uint   `gorm:"column:player10_id" json:"player10_id"`
	Player10Name string `gorm:"column:player10_name;size:255" json:"player10_name"`
	Player11ID   uint   `gorm:"column:player11_id" json:"player11_id"`
	Player11Name string `gorm:"column:player11_name;size:255" json:"player11_name"`

	CaptainID       uint   `gorm:"column:captain_id" json:"captain_id"`
	CaptainName     string `gorm:"column:captain_name;size:255" json:"captain_name"`
	ViceCaptainID   uint   `gorm:"column:vice_captain_id" json:"vice_captain_id"`
	ViceCaptainName string `gorm:"column:vice_captain_name;size:255" json:"vice_captain_name"`

	ContestTitle    string    `gorm:"column:contest_title;size:255;not null" json:"contest_title"`
	ContestEntryFee float64   `gorm:"column:contest_entryfee" json:"contest_entryfee"`
	TotalPoints     float64   `gorm:"column:total_points;default:0" json:"total_points"`
	CreatedAt       time.Time `json:"created_at"`
}

func (SelectedTeam) TableName() string {
	return "user_selected_team"
}

// PlayerIDs returns the 11 slot ids in order.
func (t *SelectedTeam) PlayerIDs() [11]uint {
	return [11]uint{
		t.Player1ID, t.Player2ID, t.Player3ID, t.Player4ID, t.Player5ID,
		t.Player6ID, t.Player7ID, t.Player8ID, t.Player9ID, t.Player10ID,
		t.Player11ID,
	}
}

type RosterSlot struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SubmitRosterRequest struct {
	Username string `json:"username" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`

	Player1  RosterSlot `json:"player1"`
	Player2  RosterSlot `json:"player2"`
	Player3  RosterSlot `json:"player3"`
	Player4  RosterSlot `json:"player4"`
	Player5  RosterSlot `json:"player5"`
	Player6  RosterSlot `json:"player6"`
	Player7  RosterSlot `json:"player7"`
	Player8  RosterSlot `json:"player8"`
	Player9  RosterSlot `json:"player9"`
	Player10 RosterSlot `json:"player10"`
	Player11 RosterSlot `json:"player11"`

	CaptainID       uint   `json:"captain_id"`
	CaptainName     string `json:"captain_name"`
	ViceCaptainID   uint   `json:"vice_captain_id"`
	ViceCaptainName string `json:"vice_captain_name"`

	ContestTitle    string   `json:"contest_title" binding:"required"`
	ContestEntryFee *float64 `json:"contest_entryfee" binding:"required"`
	TotalPoints     float64  `json:"total_points"`
}

// Slots returns the request's 11 slots in order.
func (r *SubmitRosterRequest) Slots() [11]RosterSlot {
	return [11]RosterSlot{
		r.Player1, r.Player2, r.Player3, r.Player4, r.Player5,
		r.Player6, r.Player7, r.Player8, r.Player9, r.Player10,
		r.Player11,
	}
}
