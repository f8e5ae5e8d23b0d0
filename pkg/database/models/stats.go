package models

import "time"

// Database model for one player's raw numbers in one game.
type PlayerGameStat struct {
	ID       uint `gorm:"primaryKey"`
	TeamID   uint `gorm:"not null;index"`
	PlayerID uint `gorm:"not null;index:idx_stat_player_game,unique"`
	GameID   uint `gorm:"not null;index:idx_stat_player_game,unique"`

	Kills       int
	Deaths      int
	Assists     int
	CreepScore  int
	DamageDealt int
	GoldEarned  int

	PlayedAt time.Time

	Player PlayerInfo `gorm:"foreignKey:PlayerID"`
	Game   GameInfo   `gorm:"foreignKey:GameID"`
}

// Database model for the weekly form rating of a player.
type PerformanceSnapshot struct {
	ID       uint   `gorm:"primaryKey"`
	PlayerID uint   `gorm:"not null;index:idx_snapshot_player_week,unique"`
	Week     string `gorm:"type:varchar(20);not null;index:idx_snapshot_player_week,unique"`
	Rating   float64

	Player PlayerInfo `gorm:"foreignKey:PlayerID"`
}
