package repositories

import (
	"context"
	"teamstats/pkg/database/models"

	"gorm.io/gorm"
)

// AnalyticsRepository is the public interface for everything the analytics
// engine reads. It never writes; the team management app owns all mutations.
type AnalyticsRepository interface {
	ListTeams(ctx context.Context) ([]models.TeamInfo, error)
	ListCompletedScrims(ctx context.Context, teamID uint) ([]GameRecord, error)
	ListOfficialMatches(ctx context.Context, teamID uint) ([]GameRecord, error)
	ListChildGames(ctx context.Context, parentType string, parentID uint) ([]GameRecord, error)
	ListChildGamesByParents(ctx context.Context, parentType string, parentIDs []uint) ([]GameRecord, error)
	ListPlayerGameStats(ctx context.Context, teamID uint) ([]models.PlayerGameStat, error)
	ListPlayersOnTeam(ctx context.Context, teamID uint) ([]*models.PlayerInfo, error)
	ListPerformanceSnapshots(ctx context.Context, playerIDs []uint) ([]models.PerformanceSnapshot, error)
}

// analyticsRepository repository structure.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates an analytics repository.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Objectives holds the objective flags of a game that has an objectives record.
type Objectives struct {
	FirstBlood bool
	FirstTower bool
	Baron      bool
	DragonSoul bool
}

// GameRecord is the read model the aggregations work on. Both series level
// rows (a scrim or match, carrying only Result) and their child games (carrying
// duration/side/objectives/participants) are returned in this shape.
type GameRecord struct {
	ID       uint
	ParentID uint
	Source   string // models.ParentScrim or models.ParentMatch.

	// Series outcome tag, only set on scrim/match rows. Nil means unscored.
	Result *string

	// Per game fields, only set on child game rows.
	Duration     string
	Side         string
	Won          *bool
	Objectives   *Objectives // Nil when the staff never filled the section.
	Participants []models.Participant
}

// IsWin reports whether the series result tag marks a win.
// Unscored rows are neither win nor loss.
func (g *GameRecord) IsWin() bool {
	return g.Result != nil && *g.Result == models.ResultWin
}

// ListTeams returns every registered team. Used by the cache warm job.
func (ar *analyticsRepository) ListTeams(ctx context.Context) ([]models.TeamInfo, error) {
	var teams []models.TeamInfo
	err := ar.db.WithContext(ctx).
		Order("id asc").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ListCompletedScrims returns the completed scrim blocks of a team as game records.
func (ar *analyticsRepository) ListCompletedScrims(ctx context.Context, teamID uint) ([]GameRecord, error) {
	var scrims []models.ScrimInfo
	err := ar.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, models.StatusCompleted).
		Order("scheduled_at asc, id asc").
		Find(&scrims).Error
	if err != nil {
		return nil, err
	}

	records := make([]GameRecord, 0, len(scrims))
	for _, scrim := range scrims {
		records = append(records, GameRecord{
			ID:     scrim.ID,
			Source: models.ParentScrim,
			Result: scrim.Result,
		})
	}

	return records, nil
}

// ListOfficialMatches returns the completed official matches of a team as game records.
func (ar *analyticsRepository) ListOfficialMatches(ctx context.Context, teamID uint) ([]GameRecord, error) {
	var matches []models.MatchInfo
	err := ar.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, models.StatusCompleted).
		Order("scheduled_at asc, id asc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	records := make([]GameRecord, 0, len(matches))
	for _, match := range matches {
		records = append(records, GameRecord{
			ID:     match.ID,
			Source: models.ParentMatch,
			Result: match.Result,
		})
	}

	return records, nil
}

// ListChildGames returns the games played inside one scrim block or match.
func (ar *analyticsRepository) ListChildGames(ctx context.Context, parentType string, parentID uint) ([]GameRecord, error) {
	return ar.ListChildGamesByParents(ctx, parentType, []uint{parentID})
}

// ListChildGamesByParents returns the games of all the given parents in one query.
func (ar *analyticsRepository) ListChildGamesByParents(ctx context.Context, parentType string, parentIDs []uint) ([]GameRecord, error) {
	if len(parentIDs) == 0 {
		return []GameRecord{}, nil
	}

	var games []models.GameInfo
	err := ar.db.WithContext(ctx).
		Where("parent_type = ? AND parent_id IN ?", parentType, parentIDs).
		Order("parent_id asc, game_number asc").
		Find(&games).Error
	if err != nil {
		return nil, err
	}

	records := make([]GameRecord, 0, len(games))
	for _, game := range games {
		record := GameRecord{
			ID:           game.ID,
			ParentID:     game.ParentID,
			Source:       game.ParentType,
			Duration:     game.Duration,
			Side:         game.Side,
			Won:          game.Won,
			Participants: game.Participants,
		}

		if game.HasObjectives {
			record.Objectives = &Objectives{
				FirstBlood: game.FirstBlood,
				FirstTower: game.FirstTower,
				Baron:      game.Baron,
				DragonSoul: game.DragonSoul,
			}
		}

		records = append(records, record)
	}

	return records, nil
}

// ListPlayerGameStats returns every per game stat row recorded for a team.
func (ar *analyticsRepository) ListPlayerGameStats(ctx context.Context, teamID uint) ([]models.PlayerGameStat, error) {
	var rows []models.PlayerGameStat
	err := ar.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("played_at asc, id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPlayersOnTeam returns the roster of a team.
func (ar *analyticsRepository) ListPlayersOnTeam(ctx context.Context, teamID uint) ([]*models.PlayerInfo, error) {
	var players []*models.PlayerInfo
	err := ar.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("id asc").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// ListPerformanceSnapshots returns the weekly ratings of all the given players
// in a single batched query.
func (ar *analyticsRepository) ListPerformanceSnapshots(ctx context.Context, playerIDs []uint) ([]models.PerformanceSnapshot, error) {
	if len(playerIDs) == 0 {
		return []models.PerformanceSnapshot{}, nil
	}

	var snapshots []models.PerformanceSnapshot
	err := ar.db.WithContext(ctx).
		Where("player_id IN ?", playerIDs).
		Order("week asc, player_id asc").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
