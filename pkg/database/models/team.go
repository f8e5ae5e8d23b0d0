package models

import "time"

// Database model for a team of the organization.
type TeamInfo struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Tag       string `gorm:"type:varchar(10)"`
	Region    string `gorm:"type:varchar(5)"`
	CreatedAt time.Time
}

// Database model for a player on a team roster.
type PlayerInfo struct {
	ID           uint   `gorm:"primaryKey"`
	TeamID       uint   `gorm:"not null;index"`
	SummonerName string `gorm:"type:varchar(100);not null"`
	Role         string `gorm:"type:varchar(20)"` // top, jungle, mid, adc, support.

	// Aggregate win rate pulled from the linked riot account, when one exists.
	RiotWinRate *float64

	Team TeamInfo `gorm:"foreignKey:TeamID"`
}
