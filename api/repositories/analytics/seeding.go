package repositories

import (
	"teamstats/pkg/database/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedTestData loads the fixture the repository tests run against.
// Team 2 exists purely as noise that every team scoped query must filter out.
func seedTestData(t *testing.T, db *gorm.DB) {
	t.Helper()

	teams := []*models.TeamInfo{
		{ID: 1, Name: "T1", Tag: "T1", Region: "kr", CreatedAt: fixedDate},
		{ID: 2, Name: "Gen.G", Tag: "GEN", Region: "kr", CreatedAt: fixedDate},
	}
	for _, team := range teams {
		require.NoError(t, db.Create(team).Error)
	}

	players := []*models.PlayerInfo{
		{ID: 1, TeamID: 1, SummonerName: "Faker", Role: "mid", RiotWinRate: floatPtr(54.3)},
		{ID: 2, TeamID: 1, SummonerName: "Zeus", Role: "top"},
		{ID: 3, TeamID: 1, SummonerName: "Oner", Role: "jungle"},
		{ID: 4, TeamID: 2, SummonerName: "Chovy", Role: "mid"},
	}
	for _, player := range players {
		require.NoError(t, db.Create(player).Error)
	}

	scrims := []*models.ScrimInfo{
		{ID: 1, TeamID: 1, Opponent: "Gen.G", ScheduledAt: fixedDate, Status: models.StatusCompleted, Result: strPtr(models.ResultWin)},
		{ID: 2, TeamID: 1, Opponent: "DK", ScheduledAt: fixedDate.AddDate(0, 0, 1), Status: models.StatusCompleted, Result: strPtr(models.ResultWin)},
		{ID: 3, TeamID: 1, Opponent: "KT", ScheduledAt: fixedDate.AddDate(0, 0, 2), Status: models.StatusCompleted, Result: strPtr(models.ResultLoss)},
		// Still scheduled, must never show up in the completed listing.
		{ID: 4, TeamID: 1, Opponent: "HLE", ScheduledAt: fixedDate.AddDate(0, 0, 3), Status: models.StatusScheduled},
		{ID: 5, TeamID: 2, Opponent: "T1", ScheduledAt: fixedDate, Status: models.StatusCompleted, Result: strPtr(models.ResultWin)},
	}
	for _, scrim := range scrims {
		require.NoError(t, db.Create(scrim).Error)
	}

	matches := []*models.MatchInfo{
		{ID: 1, TeamID: 1, Opponent: "Gen.G", Tournament: "LCK Spring", ScheduledAt: fixedDate, Status: models.StatusCompleted, Result: strPtr(models.ResultLoss)},
		{ID: 2, TeamID: 1, Opponent: "DK", Tournament: "LCK Spring", ScheduledAt: fixedDate.AddDate(0, 0, 7), Status: models.StatusCancelled},
	}
	for _, match := range matches {
		require.NoError(t, db.Create(match).Error)
	}

	games := []*models.GameInfo{
		{
			ID: 1, ParentType: models.ParentScrim, ParentID: 1, GameNumber: 1,
			Duration: "30:00", Side: models.SideBlue, Won: boolPtr(true),
			HasObjectives: true, FirstBlood: true, FirstTower: true,
			Participants: models.ParticipantList{
				{SummonerName: "T1 Faker", TeamSlot: 0},
				{SummonerName: "T1 Zeus", TeamSlot: 1},
			},
		},
		{
			ID: 2, ParentType: models.ParentScrim, ParentID: 2, GameNumber: 1,
			Duration: "20:00", Side: models.SideRed, Won: boolPtr(true),
			HasObjectives: true, FirstTower: true, Baron: true, DragonSoul: true,
			Participants: models.ParticipantList{
				{SummonerName: "T1 Faker", TeamSlot: 0},
			},
		},
		{
			ID: 3, ParentType: models.ParentScrim, ParentID: 3, GameNumber: 1,
			Duration: "40:00", Side: models.SideBlue, Won: boolPtr(false),
		},
		{
			ID: 4, ParentType: models.ParentMatch, ParentID: 1, GameNumber: 1,
			Duration: "30:00", Side: models.SideRed, Won: boolPtr(false),
			HasObjectives: true, FirstBlood: true,
		},
		{
			ID: 5, ParentType: models.ParentScrim, ParentID: 5, GameNumber: 1,
			Duration: "25:00", Side: models.SideBlue, Won: boolPtr(true),
		},
	}
	for _, game := range games {
		require.NoError(t, db.Create(game).Error)
	}

	gameStats := []*models.PlayerGameStat{
		{ID: 1, TeamID: 1, PlayerID: 1, GameID: 1, Kills: 10, Deaths: 2, Assists: 8, CreepScore: 200, DamageDealt: 20000, GoldEarned: 12000, PlayedAt: fixedDate},
		{ID: 2, TeamID: 1, PlayerID: 2, GameID: 1, Kills: 3, Deaths: 4, Assists: 12, CreepScore: 230, DamageDealt: 14000, GoldEarned: 10000, PlayedAt: fixedDate},
		{ID: 3, TeamID: 2, PlayerID: 4, GameID: 5, Kills: 7, Deaths: 1, Assists: 5, CreepScore: 250, DamageDealt: 18000, GoldEarned: 11000, PlayedAt: fixedDate},
	}
	for _, stat := range gameStats {
		require.NoError(t, db.Create(stat).Error)
	}

	snapshots := []*models.PerformanceSnapshot{
		{ID: 1, PlayerID: 1, Week: "2024-W01", Rating: 7.0},
		{ID: 2, PlayerID: 1, Week: "2024-W02", Rating: 9.0},
		{ID: 3, PlayerID: 2, Week: "2024-W01", Rating: 8.0},
		{ID: 4, PlayerID: 4, Week: "2024-W01", Rating: 9.9},
	}
	for _, snapshot := range snapshots {
		require.NoError(t, db.Create(snapshot).Error)
	}
}
