package analyticsservice

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"teamstats/api/cache"
	"teamstats/api/dto"
	"teamstats/api/filters"
	analyticsrepo "teamstats/api/repositories/analytics"
	"teamstats/pkg/database/models"
	"teamstats/pkg/messages"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	AnalyticsMemoryCacheDuration = 5 * time.Minute
	AnalyticsRedisCacheDuration  = 30 * time.Minute
)

// AnalyticsRedisClient is the slice of the redis client the service needs.
type AnalyticsRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// AnalyticsService computes the team analytics over the repository snapshot.
// Results are memoized per team on the two cache tiers; the computation itself
// is pure, so a cache entry is only ever stale, never wrong for its snapshot.
type AnalyticsService struct {
	db                  *gorm.DB
	memCache            cache.MemCache
	redis               AnalyticsRedisClient
	AnalyticsRepository analyticsrepo.AnalyticsRepository
}

// AnalyticsServiceDeps is the dependency list for the analytics service.
type AnalyticsServiceDeps struct {
	DB       *gorm.DB
	MemCache cache.MemCache
	Redis    AnalyticsRedisClient
}

// NewAnalyticsService creates an analytics service.
func NewAnalyticsService(deps *AnalyticsServiceDeps) *AnalyticsService {
	return &AnalyticsService{
		db:                  deps.DB,
		memCache:            deps.MemCache,
		redis:               deps.Redis,
		AnalyticsRepository: analyticsrepo.NewAnalyticsRepository(deps.DB),
	}
}

// GetTeamPerformance returns the performance overview for a team.
func (as *AnalyticsService) GetTeamPerformance(ctx context.Context, filter *filters.AnalyticsFilter) (*dto.TeamPerformance, error) {
	if filter == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	key := performanceKey(filter.TeamId)

	if mem := as.memCache.Get(key); mem != nil {
		return mem.(*dto.TeamPerformance), nil
	}

	if cached := getFromRedis[dto.TeamPerformance](as.redis, key); cached != nil {
		as.memCache.Set(key, cached, AnalyticsMemoryCacheDuration)
		return cached, nil
	}

	dataset, err := as.fetchTeamDataset(ctx, filter.TeamId)
	if err != nil {
		return nil, err
	}

	result := computeTeamPerformance(dataset)

	as.populateCaches(key, result)

	return result, nil
}

// GetAdvancedStats returns the correlation/distribution analytics for a team.
func (as *AnalyticsService) GetAdvancedStats(ctx context.Context, filter *filters.AnalyticsFilter) (*dto.AdvancedStats, error) {
	if filter == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	key := advancedKey(filter.TeamId)

	if mem := as.memCache.Get(key); mem != nil {
		return mem.(*dto.AdvancedStats), nil
	}

	if cached := getFromRedis[dto.AdvancedStats](as.redis, key); cached != nil {
		as.memCache.Set(key, cached, AnalyticsMemoryCacheDuration)
		return cached, nil
	}

	dataset, err := as.fetchTeamDataset(ctx, filter.TeamId)
	if err != nil {
		return nil, err
	}

	result := computeAdvancedStats(dataset)

	as.populateCaches(key, result)

	return result, nil
}

// RefreshTeamAnalytics recomputes both analytics results from a single fetch
// and overwrites the cache entries, ignoring whatever is currently cached.
// Used by the cache warm job.
func (as *AnalyticsService) RefreshTeamAnalytics(ctx context.Context, teamID uint) error {
	dataset, err := as.fetchTeamDataset(ctx, teamID)
	if err != nil {
		return err
	}

	as.populateCaches(performanceKey(teamID), computeTeamPerformance(dataset))
	as.populateCaches(advancedKey(teamID), computeAdvancedStats(dataset))

	return nil
}

// GetTeamPlayers returns the roster of a team. Small enough to never cache.
func (as *AnalyticsService) GetTeamPlayers(ctx context.Context, filter *filters.AnalyticsFilter) ([]*dto.TeamPlayer, error) {
	if filter == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	players, err := as.AnalyticsRepository.ListPlayersOnTeam(ctx, filter.TeamId)
	if err != nil {
		return nil, err
	}

	roster := make([]*dto.TeamPlayer, 0, len(players))
	for _, player := range players {
		roster = append(roster, &dto.TeamPlayer{
			Id:           player.ID,
			SummonerName: player.SummonerName,
			Role:         player.Role,
			RiotWinRate:  player.RiotWinRate,
		})
	}

	return roster, nil
}

// fetchTeamDataset loads every entity set one aggregation needs.
//
// The sets are independent, so the top level rows are fetched concurrently and
// the dependent sets (child games, snapshots) follow in a second concurrent
// stage with a single batched query each. Any fetch error aborts the whole
// call and is returned unmodified.
func (as *AnalyticsService) fetchTeamDataset(ctx context.Context, teamID uint) (*teamDataset, error) {
	dataset := &teamDataset{}
	repo := as.AnalyticsRepository

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		dataset.Scrims, err = repo.ListCompletedScrims(groupCtx, teamID)
		return err
	})
	group.Go(func() error {
		var err error
		dataset.Matches, err = repo.ListOfficialMatches(groupCtx, teamID)
		return err
	})
	group.Go(func() error {
		var err error
		dataset.Stats, err = repo.ListPlayerGameStats(groupCtx, teamID)
		return err
	})
	group.Go(func() error {
		var err error
		dataset.Players, err = repo.ListPlayersOnTeam(groupCtx, teamID)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	scrimIDs := recordIDs(dataset.Scrims)
	matchIDs := recordIDs(dataset.Matches)
	playerIDs := make([]uint, 0, len(dataset.Players))
	for _, player := range dataset.Players {
		playerIDs = append(playerIDs, player.ID)
	}

	group, groupCtx = errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		dataset.ScrimGames, err = repo.ListChildGamesByParents(groupCtx, models.ParentScrim, scrimIDs)
		return err
	})
	group.Go(func() error {
		var err error
		dataset.MatchGames, err = repo.ListChildGamesByParents(groupCtx, models.ParentMatch, matchIDs)
		return err
	})
	group.Go(func() error {
		var err error
		dataset.Snapshots, err = repo.ListPerformanceSnapshots(groupCtx, playerIDs)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return dataset, nil
}

// recordIDs collects the ids of the given records.
func recordIDs(records []analyticsrepo.GameRecord) []uint {
	ids := make([]uint, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids
}

// performanceKey generates the cache key of the performance result.
func performanceKey(teamID uint) string {
	return "analytics:performance:team_" + strconv.FormatUint(uint64(teamID), 10)
}

// advancedKey generates the cache key of the advanced stats result.
func advancedKey(teamID uint) string {
	return "analytics:advanced:team_" + strconv.FormatUint(uint64(teamID), 10)
}

// getFromRedis retrieves the data from the redis.
// Any redis hiccup just falls through to a recompute.
func getFromRedis[T any](redis AnalyticsRedisClient, key string) *T {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*200)
	defer cancel()

	cached, err := redis.Get(ctx, key)
	if err != nil || cached == "" {
		return nil
	}

	var result T
	if err := json.Unmarshal([]byte(cached), &result); err != nil {
		return nil
	}

	return &result
}

// populateCaches will set the mem cache and redis cache.
func (as *AnalyticsService) populateCaches(key string, data any) {
	as.memCache.Set(key, data, AnalyticsMemoryCacheDuration)

	if j, err := json.Marshal(data); err == nil {
		as.redis.Set(context.Background(), key, string(j), AnalyticsRedisCacheDuration)
	}
}
