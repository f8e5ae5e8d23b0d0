package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Parent types for the child games of a series.
const (
	ParentScrim = "scrim"
	ParentMatch = "match"
)

// Sides of the map.
const (
	SideBlue = "blue"
	SideRed  = "red"
)

// Participant is one entry of the participant list captured for a game.
// Summoner names keep whatever suffix/tagline the capture produced.
type Participant struct {
	SummonerName string `json:"summonerName"`
	TeamSlot     int    `json:"teamSlot"`
}

// ParticipantList is stored as a jsonb column.
type ParticipantList []Participant

// Value marshals the list for the jsonb column.
func (p ParticipantList) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan reads the jsonb column back into the list.
func (p *ParticipantList) Scan(value any) error {
	if value == nil {
		*p = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported participant list type %T", value)
	}
}

// Database model for one played game inside a scrim block or official match.
type GameInfo struct {
	ID         uint   `gorm:"primaryKey"`
	ParentType string `gorm:"type:varchar(10);not null;index:idx_game_parent"`
	ParentID   uint   `gorm:"not null;index:idx_game_parent"`
	GameNumber int    `gorm:"not null"`

	Duration string `gorm:"type:varchar(10)"` // mm:ss as entered by the staff.
	Side     string `gorm:"type:varchar(5)"`
	Won      *bool

	// Early/neutral objective flags. HasObjectives marks whether the staff
	// filled the objectives section at all for this game.
	HasObjectives bool
	FirstBlood    bool
	FirstTower    bool
	Baron         bool
	DragonSoul    bool

	Participants ParticipantList `gorm:"type:jsonb"`
}
