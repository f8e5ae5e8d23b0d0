package analyticsservice

import (
	"teamstats/api/dto"
	analyticsrepo "teamstats/api/repositories/analytics"
	"teamstats/pkg/database/models"
	"teamstats/pkg/stats"
	"time"
)

var statFixtureDate = time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

// seriesRecord builds a scrim/match level record carrying only the result tag.
func seriesRecord(id uint, source string, result *string) analyticsrepo.GameRecord {
	return analyticsrepo.GameRecord{
		ID:     id,
		Source: source,
		Result: result,
	}
}

// gameRecord builds a child game record.
func gameRecord(id, parentID uint, source, duration string, won *bool, objectives *analyticsrepo.Objectives, participants ...string) analyticsrepo.GameRecord {
	list := make([]models.Participant, 0, len(participants))
	for i, name := range participants {
		list = append(list, models.Participant{SummonerName: name, TeamSlot: i})
	}

	return analyticsrepo.GameRecord{
		ID:           id,
		ParentID:     parentID,
		Source:       source,
		Duration:     duration,
		Side:         models.SideBlue,
		Won:          won,
		Objectives:   objectives,
		Participants: list,
	}
}

func statRow(playerID, gameID uint, kills, deaths, assists, creepScore, damageDealt, goldEarned int) models.PlayerGameStat {
	return models.PlayerGameStat{
		TeamID:      1,
		PlayerID:    playerID,
		GameID:      gameID,
		Kills:       kills,
		Deaths:      deaths,
		Assists:     assists,
		CreepScore:  creepScore,
		DamageDealt: damageDealt,
		GoldEarned:  goldEarned,
		PlayedAt:    statFixtureDate,
	}
}

// createTestDataset builds the fixture both aggregators are exercised on:
// 3 completed scrims (2 wins), 1 official match (loss), 4 played games and a
// stat row pointing at a game id that no game has.
func createTestDataset() *teamDataset {
	return &teamDataset{
		Scrims: []analyticsrepo.GameRecord{
			seriesRecord(1, models.ParentScrim, strPtr(models.ResultWin)),
			seriesRecord(2, models.ParentScrim, strPtr(models.ResultWin)),
			seriesRecord(3, models.ParentScrim, strPtr(models.ResultLoss)),
		},
		Matches: []analyticsrepo.GameRecord{
			seriesRecord(10, models.ParentMatch, strPtr(models.ResultLoss)),
		},
		ScrimGames: []analyticsrepo.GameRecord{
			gameRecord(1, 1, models.ParentScrim, "30:00", boolPtr(true),
				&analyticsrepo.Objectives{FirstBlood: true, FirstTower: true},
				"T1 Faker", "T1 Zeus", "T1 Oner"),
			gameRecord(2, 2, models.ParentScrim, "20:00", boolPtr(true),
				&analyticsrepo.Objectives{FirstTower: true, Baron: true, DragonSoul: true},
				"T1 Faker", "T1 Zeus"),
			gameRecord(3, 3, models.ParentScrim, "40:00", boolPtr(false),
				nil,
				"T1 Zeus", "T1 Oner"),
		},
		MatchGames: []analyticsrepo.GameRecord{
			gameRecord(11, 10, models.ParentMatch, "30:00", boolPtr(false),
				&analyticsrepo.Objectives{FirstBlood: true}),
		},
		Stats: []models.PlayerGameStat{
			statRow(1, 1, 10, 2, 8, 200, 20000, 12000),
			statRow(1, 2, 8, 1, 10, 180, 16000, 9600),
			statRow(1, 3, 2, 5, 3, 150, 8000, 4800),
			// Game 999 doesn't exist: must attach as a loss.
			statRow(2, 999, 5, 5, 5, 170, 10000, 6000),
		},
		Players: []*models.PlayerInfo{
			{ID: 1, TeamID: 1, SummonerName: "Faker", Role: "mid"},
			{ID: 2, TeamID: 1, SummonerName: "Zeus", Role: "top"},
			{ID: 3, TeamID: 1, SummonerName: "Oner", Role: "jungle"},
		},
		Snapshots: []models.PerformanceSnapshot{
			{PlayerID: 1, Week: "2024-W01", Rating: 7.0},
			{PlayerID: 2, Week: "2024-W01", Rating: 8.0},
			{PlayerID: 1, Week: "2024-W02", Rating: 9.0},
		},
	}
}

// createExpectedPerformance is the reduction of createTestDataset.
func createExpectedPerformance() *dto.TeamPerformance {
	return &dto.TeamPerformance{
		TotalGames:      4,
		Wins:            2,
		WinRate:         50,
		AverageDuration: "30:00",
		PerformanceHistory: []dto.WeeklyRating{
			{Week: "2024-W01", Rating: 7.5},
			{Week: "2024-W02", Rating: 9.0},
		},
		// 3 of the 4 games carry an objectives record.
		Objectives: dto.ObjectiveRates{
			FirstBlood: 67,
			FirstTower: 67,
			Baron:      33,
			DragonSoul: 33,
		},
	}
}

func emptyBoxplots() map[string]dto.MetricBoxplots {
	boxplots := make(map[string]dto.MetricBoxplots, len(dto.MetricNames))
	for _, metric := range dto.MetricNames {
		boxplots[metric] = dto.MetricBoxplots{
			Wins:   stats.Summary{},
			Losses: stats.Summary{},
		}
	}
	return boxplots
}
