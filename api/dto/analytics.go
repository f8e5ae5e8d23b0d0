package dto

import "teamstats/pkg/stats"

// Metric names of the per game stat rows, in display order.
// The correlation maps and boxplots are keyed by these.
var MetricNames = []string{"kills", "deaths", "assists", "creepScore", "damageDealt", "goldEarned"}

// WeeklyRating is one point of the team performance history series.
type WeeklyRating struct {
	Week   string  `json:"week"`
	Rating float64 `json:"rating"` // 1 decimal.
}

// ObjectiveRates are whole percent rates over the games that have an objectives record.
type ObjectiveRates struct {
	FirstBlood int `json:"firstBlood"`
	FirstTower int `json:"firstTower"`
	Baron      int `json:"baron"`
	DragonSoul int `json:"dragonSoul"`
}

// TeamPerformance is the response of the team performance endpoint.
type TeamPerformance struct {
	TotalGames         int            `json:"totalGames"`
	Wins               int            `json:"wins"`
	WinRate            int            `json:"winRate"` // Whole percent.
	AverageDuration    string         `json:"averageDuration"`
	PerformanceHistory []WeeklyRating `json:"performanceHistory"`
	Objectives         ObjectiveRates `json:"objectives"`
}

// MetricBoxplots is the win/loss distribution split of one metric.
type MetricBoxplots struct {
	Wins   stats.Summary `json:"wins"`
	Losses stats.Summary `json:"losses"`
}

// Momentum is the win rate conditioned on taking an early objective, 1 decimal.
type Momentum struct {
	FirstBlood float64 `json:"firstBlood"`
	FirstTower float64 `json:"firstTower"`
}

// SynergyPair is the shared game win rate of a pair of players.
type SynergyPair struct {
	PlayerA string  `json:"playerA"`
	PlayerB string  `json:"playerB"`
	Games   int     `json:"games"`
	WinRate float64 `json:"winRate"` // 1 decimal.
}

// AdvancedStats is the response of the advanced stats endpoint.
// Correlation values carry 2 decimals.
type AdvancedStats struct {
	Correlations      map[string]float64            `json:"correlations"`
	CorrelationMatrix map[string]map[string]float64 `json:"correlationMatrix"`
	Boxplots          map[string]MetricBoxplots     `json:"boxplots"`
	Momentum          Momentum                      `json:"momentum"`
	Efficiency        float64                       `json:"efficiency"`
	Synergy           []SynergyPair                 `json:"synergy"`
}

// TeamPlayer is one roster entry of the players endpoint.
type TeamPlayer struct {
	Id           uint     `json:"id"`
	SummonerName string   `json:"summonerName"`
	Role         string   `json:"role"`
	RiotWinRate  *float64 `json:"riotWinRate,omitempty"`
}
