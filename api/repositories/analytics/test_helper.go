package repositories

import (
	"teamstats/pkg/database/models"
	"time"
)

var fixedDate = time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func floatPtr(f float64) *float64 {
	return &f
}

func normalizeTeamTimes(teams []models.TeamInfo) {
	for i := range teams {
		teams[i].CreatedAt = teams[i].CreatedAt.UTC()
	}
}

func normalizeStatTimes(rows []models.PlayerGameStat) {
	for i := range rows {
		rows[i].PlayedAt = rows[i].PlayedAt.UTC()
	}
}

func getExpectedTeams() []models.TeamInfo {
	return []models.TeamInfo{
		{ID: 1, Name: "T1", Tag: "T1", Region: "kr", CreatedAt: fixedDate},
		{ID: 2, Name: "Gen.G", Tag: "GEN", Region: "kr", CreatedAt: fixedDate},
	}
}

func getExpectedRoster() []*models.PlayerInfo {
	return []*models.PlayerInfo{
		{ID: 1, TeamID: 1, SummonerName: "Faker", Role: "mid", RiotWinRate: floatPtr(54.3)},
		{ID: 2, TeamID: 1, SummonerName: "Zeus", Role: "top"},
		{ID: 3, TeamID: 1, SummonerName: "Oner", Role: "jungle"},
	}
}

func getExpectedCompletedScrims() []GameRecord {
	return []GameRecord{
		{ID: 1, Source: models.ParentScrim, Result: strPtr(models.ResultWin)},
		{ID: 2, Source: models.ParentScrim, Result: strPtr(models.ResultWin)},
		{ID: 3, Source: models.ParentScrim, Result: strPtr(models.ResultLoss)},
	}
}

func getExpectedOfficialMatches() []GameRecord {
	return []GameRecord{
		{ID: 1, Source: models.ParentMatch, Result: strPtr(models.ResultLoss)},
	}
}

func getExpectedScrimGames() []GameRecord {
	return []GameRecord{
		{
			ID:       1,
			ParentID: 1,
			Source:   models.ParentScrim,
			Duration: "30:00",
			Side:     models.SideBlue,
			Won:      boolPtr(true),
			Objectives: &Objectives{
				FirstBlood: true,
				FirstTower: true,
			},
			Participants: []models.Participant{
				{SummonerName: "T1 Faker", TeamSlot: 0},
				{SummonerName: "T1 Zeus", TeamSlot: 1},
			},
		},
		{
			ID:       2,
			ParentID: 2,
			Source:   models.ParentScrim,
			Duration: "20:00",
			Side:     models.SideRed,
			Won:      boolPtr(true),
			Objectives: &Objectives{
				FirstTower: true,
				Baron:      true,
				DragonSoul: true,
			},
			Participants: []models.Participant{
				{SummonerName: "T1 Faker", TeamSlot: 0},
			},
		},
		{
			// No objectives record was filled for this game.
			ID:       3,
			ParentID: 3,
			Source:   models.ParentScrim,
			Duration: "40:00",
			Side:     models.SideBlue,
			Won:      boolPtr(false),
		},
	}
}

func getExpectedMatchGames() []GameRecord {
	return []GameRecord{
		{
			ID:       4,
			ParentID: 1,
			Source:   models.ParentMatch,
			Duration: "30:00",
			Side:     models.SideRed,
			Won:      boolPtr(false),
			Objectives: &Objectives{
				FirstBlood: true,
			},
		},
	}
}

func getExpectedPlayerStats() []models.PlayerGameStat {
	return []models.PlayerGameStat{
		{
			ID: 1, TeamID: 1, PlayerID: 1, GameID: 1,
			Kills: 10, Deaths: 2, Assists: 8, CreepScore: 200, DamageDealt: 20000, GoldEarned: 12000,
			PlayedAt: fixedDate,
		},
		{
			ID: 2, TeamID: 1, PlayerID: 2, GameID: 1,
			Kills: 3, Deaths: 4, Assists: 12, CreepScore: 230, DamageDealt: 14000, GoldEarned: 10000,
			PlayedAt: fixedDate,
		},
	}
}

func getExpectedSnapshots() []models.PerformanceSnapshot {
	return []models.PerformanceSnapshot{
		{ID: 1, PlayerID: 1, Week: "2024-W01", Rating: 7.0},
		{ID: 3, PlayerID: 2, Week: "2024-W01", Rating: 8.0},
		{ID: 2, PlayerID: 1, Week: "2024-W02", Rating: 9.0},
	}
}
