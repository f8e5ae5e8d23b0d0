package models

import "time"

// Status values shared by scrims and official matches.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Result tags written by the stat entry workflow.
const (
	ResultWin  = "W"
	ResultLoss = "L"
)

// Database model for a scheduled scrim block against another team.
type ScrimInfo struct {
	ID          uint   `gorm:"primaryKey"`
	TeamID      uint   `gorm:"not null;index"`
	Opponent    string `gorm:"type:varchar(100)"`
	ScheduledAt time.Time
	Status      string `gorm:"type:varchar(20);not null;default:scheduled;index"`

	// Overall series result. Nil while the scrim hasn't been scored yet.
	Result *string `gorm:"type:char(1)"`

	Team TeamInfo `gorm:"foreignKey:TeamID"`
}

// Database model for an official (tournament) match.
type MatchInfo struct {
	ID          uint   `gorm:"primaryKey"`
	TeamID      uint   `gorm:"not null;index"`
	Opponent    string `gorm:"type:varchar(100)"`
	Tournament  string `gorm:"type:varchar(100)"`
	ScheduledAt time.Time
	Status      string `gorm:"type:varchar(20);not null;default:scheduled;index"`

	Result *string `gorm:"type:char(1)"`

	Team TeamInfo `gorm:"foreignKey:TeamID"`
}
