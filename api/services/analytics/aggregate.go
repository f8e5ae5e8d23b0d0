package analyticsservice

import (
	"math"
	"sort"
	"strings"
	"teamstats/api/dto"
	analyticsrepo "teamstats/api/repositories/analytics"
	"teamstats/pkg/database/models"
	"teamstats/pkg/stats"
)

// teamDataset is the snapshot of everything one aggregation call works on.
// The two compute functions below never touch the repository again, so a
// single dataset always produces the same output.
type teamDataset struct {
	Scrims     []analyticsrepo.GameRecord
	Matches    []analyticsrepo.GameRecord
	ScrimGames []analyticsrepo.GameRecord
	MatchGames []analyticsrepo.GameRecord
	Stats      []models.PlayerGameStat
	Players    []*models.PlayerInfo
	Snapshots  []models.PerformanceSnapshot
}

// allGames returns the child games of scrims and matches merged.
func (ds *teamDataset) allGames() []analyticsrepo.GameRecord {
	merged := make([]analyticsrepo.GameRecord, 0, len(ds.ScrimGames)+len(ds.MatchGames))
	merged = append(merged, ds.ScrimGames...)
	merged = append(merged, ds.MatchGames...)
	return merged
}

// computeTeamPerformance reduces the dataset into the team performance overview.
func computeTeamPerformance(ds *teamDataset) *dto.TeamPerformance {
	totalGames := len(ds.Scrims) + len(ds.Matches)

	// Unscored series count towards the total but never as wins.
	wins := 0
	for _, scrim := range ds.Scrims {
		if scrim.IsWin() {
			wins++
		}
	}
	for _, match := range ds.Matches {
		if match.IsWin() {
			wins++
		}
	}

	winRate := 0
	if totalGames > 0 {
		winRate = int(math.Round(float64(wins) / float64(totalGames) * 100))
	}

	games := ds.allGames()

	return &dto.TeamPerformance{
		TotalGames:         totalGames,
		Wins:               wins,
		WinRate:            winRate,
		AverageDuration:    computeAverageDuration(games),
		PerformanceHistory: computePerformanceHistory(ds.Snapshots),
		Objectives:         computeObjectiveRates(games),
	}
}

// computeAverageDuration averages the mm:ss durations of the played games.
// Malformed durations count as zero instead of failing the aggregation.
func computeAverageDuration(games []analyticsrepo.GameRecord) string {
	if len(games) == 0 {
		return stats.FormatDuration(0)
	}

	durations := make([]float64, 0, len(games))
	for _, game := range games {
		durations = append(durations, float64(stats.ParseDuration(game.Duration)))
	}

	return stats.FormatDuration(int(math.Round(stats.Mean(durations))))
}

// computeObjectiveRates returns the whole percent objective control rates.
// The denominator only counts games that have an objectives record at all,
// clamped to 1 so an empty set yields zeroes instead of a division by zero.
func computeObjectiveRates(games []analyticsrepo.GameRecord) dto.ObjectiveRates {
	tracked := 0
	var firstBlood, firstTower, baron, dragonSoul int

	for _, game := range games {
		if game.Objectives == nil {
			continue
		}
		tracked++
		if game.Objectives.FirstBlood {
			firstBlood++
		}
		if game.Objectives.FirstTower {
			firstTower++
		}
		if game.Objectives.Baron {
			baron++
		}
		if game.Objectives.DragonSoul {
			dragonSoul++
		}
	}

	denominator := tracked
	if denominator < 1 {
		denominator = 1
	}

	rate := func(count int) int {
		return int(math.Round(float64(count) / float64(denominator) * 100))
	}

	return dto.ObjectiveRates{
		FirstBlood: rate(firstBlood),
		FirstTower: rate(firstTower),
		Baron:      rate(baron),
		DragonSoul: rate(dragonSoul),
	}
}

// computePerformanceHistory groups the weekly snapshots of the whole roster by
// week label and averages the ratings. The two point placeholder keeps the
// dashboard chart rendering when no snapshot exists yet.
func computePerformanceHistory(snapshots []models.PerformanceSnapshot) []dto.WeeklyRating {
	if len(snapshots) == 0 {
		return []dto.WeeklyRating{
			{Week: "S-1", Rating: 0},
			{Week: "Atual", Rating: 0},
		}
	}

	byWeek := make(map[string][]float64)
	for _, snapshot := range snapshots {
		byWeek[snapshot.Week] = append(byWeek[snapshot.Week], snapshot.Rating)
	}

	weeks := make([]string, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)

	history := make([]dto.WeeklyRating, 0, len(weeks))
	for _, week := range weeks {
		history = append(history, dto.WeeklyRating{
			Week:   week,
			Rating: stats.Round1(stats.Mean(byWeek[week])),
		})
	}

	return history
}

// computeAdvancedStats reduces the dataset into the correlation, distribution,
// momentum and synergy analytics.
func computeAdvancedStats(ds *teamDataset) *dto.AdvancedStats {
	games := ds.allGames()
	outcomes := buildOutcomeLookup(games)

	// Attach each stat row its game outcome. A game id missing from the
	// lookup silently attaches as a loss; the dashboard has always worked
	// with that lossy default.
	attached := make([]float64, len(ds.Stats))
	for i, row := range ds.Stats {
		attached[i] = outcomes[row.GameID]
	}

	columns := make(map[string][]float64, len(dto.MetricNames))
	for _, metric := range dto.MetricNames {
		column := make([]float64, len(ds.Stats))
		for i, row := range ds.Stats {
			column[i] = metricValue(row, metric)
		}
		columns[metric] = column
	}

	correlations := make(map[string]float64, len(dto.MetricNames))
	for _, metric := range dto.MetricNames {
		correlations[metric] = stats.Round2(stats.PearsonCorrelation(columns[metric], attached))
	}

	matrix := make(map[string]map[string]float64, len(dto.MetricNames))
	for _, rowMetric := range dto.MetricNames {
		matrix[rowMetric] = make(map[string]float64, len(dto.MetricNames))
		for _, colMetric := range dto.MetricNames {
			matrix[rowMetric][colMetric] = stats.Round2(
				stats.PearsonCorrelation(columns[rowMetric], columns[colMetric]))
		}
	}

	return &dto.AdvancedStats{
		Correlations:      correlations,
		CorrelationMatrix: matrix,
		Boxplots:          computeBoxplots(ds.Stats, attached),
		Momentum:          computeMomentum(games),
		Efficiency:        stats.Round2(stats.PearsonCorrelation(columns["goldEarned"], columns["damageDealt"])),
		Synergy:           computeSynergy(ds.Players, ds.ScrimGames),
	}
}

// buildOutcomeLookup maps every scored game id to its 0/1 outcome.
// Games without a recorded result stay out of the lookup on purpose.
func buildOutcomeLookup(games []analyticsrepo.GameRecord) map[uint]float64 {
	outcomes := make(map[uint]float64, len(games))
	for _, game := range games {
		if game.Won == nil {
			continue
		}
		if *game.Won {
			outcomes[game.ID] = 1
		} else {
			outcomes[game.ID] = 0
		}
	}
	return outcomes
}

// metricValue reads a single metric off a stat row.
func metricValue(row models.PlayerGameStat, metric string) float64 {
	switch metric {
	case "kills":
		return float64(row.Kills)
	case "deaths":
		return float64(row.Deaths)
	case "assists":
		return float64(row.Assists)
	case "creepScore":
		return float64(row.CreepScore)
	case "damageDealt":
		return float64(row.DamageDealt)
	case "goldEarned":
		return float64(row.GoldEarned)
	}
	return 0
}

// computeBoxplots splits the stat rows by their attached outcome and summarizes
// each metric on both sides.
func computeBoxplots(rows []models.PlayerGameStat, attached []float64) map[string]dto.MetricBoxplots {
	boxplots := make(map[string]dto.MetricBoxplots, len(dto.MetricNames))

	for _, metric := range dto.MetricNames {
		var winValues, lossValues []float64
		for i, row := range rows {
			if attached[i] == 1 {
				winValues = append(winValues, metricValue(row, metric))
			} else {
				lossValues = append(lossValues, metricValue(row, metric))
			}
		}

		boxplots[metric] = dto.MetricBoxplots{
			Wins:   stats.FiveNumberSummary(winValues),
			Losses: stats.FiveNumberSummary(lossValues),
		}
	}

	return boxplots
}

// computeMomentum returns the win rate of the games that secured an early
// objective, 1 decimal. Games without an objectives record never count.
func computeMomentum(games []analyticsrepo.GameRecord) dto.Momentum {
	winRateWith := func(achieved func(*analyticsrepo.Objectives) bool) float64 {
		total, won := 0, 0
		for _, game := range games {
			if game.Objectives == nil || !achieved(game.Objectives) {
				continue
			}
			total++
			if game.Won != nil && *game.Won {
				won++
			}
		}

		if total == 0 {
			return 0
		}
		return stats.Round1(float64(won) / float64(total) * 100)
	}

	return dto.Momentum{
		FirstBlood: winRateWith(func(o *analyticsrepo.Objectives) bool { return o.FirstBlood }),
		FirstTower: winRateWith(func(o *analyticsrepo.Objectives) bool { return o.FirstTower }),
	}
}

// computeSynergy ranks every pair of roster players by their win rate in the
// scrim games both appear in, keeping the top 5.
//
// Matching is a substring check against the captured participant names, since
// those carry summoner name suffixes/tags. That tolerates tags but can false
// positive on nested names; product hasn't asked for exact id matching yet.
func computeSynergy(players []*models.PlayerInfo, scrimGames []analyticsrepo.GameRecord) []dto.SynergyPair {
	pairs := []dto.SynergyPair{}

	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			shared, won := 0, 0
			for _, game := range scrimGames {
				if !playerInGame(game, players[i].SummonerName) || !playerInGame(game, players[j].SummonerName) {
					continue
				}
				shared++
				if game.Won != nil && *game.Won {
					won++
				}
			}

			// Pairs that never played together are left out entirely.
			if shared == 0 {
				continue
			}

			pairs = append(pairs, dto.SynergyPair{
				PlayerA: players[i].SummonerName,
				PlayerB: players[j].SummonerName,
				Games:   shared,
				WinRate: stats.Round1(float64(won) / float64(shared) * 100),
			})
		}
	}

	// Ties break on game count so the ranking is stable between calls.
	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].WinRate != pairs[b].WinRate {
			return pairs[a].WinRate > pairs[b].WinRate
		}
		return pairs[a].Games > pairs[b].Games
	})

	if len(pairs) > 5 {
		pairs = pairs[:5]
	}

	return pairs
}

// playerInGame checks whether a player shows up on the participant list.
func playerInGame(game analyticsrepo.GameRecord, summonerName string) bool {
	if summonerName == "" {
		return false
	}

	for _, participant := range game.Participants {
		if strings.Contains(participant.SummonerName, summonerName) {
			return true
		}
	}

	return false
}
