package analyticsservice

import (
	"context"
	"encoding/json"
	"errors"
	"teamstats/api/dto"
	"teamstats/api/filters"
	servicetestutil "teamstats/api/services/testutil"
	"teamstats/internal/testutil"
	"teamstats/pkg/database/models"
	"teamstats/pkg/messages"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupTestService() (*AnalyticsService, *servicetestutil.MockAnalyticsRepository, *servicetestutil.MockMemCache, *servicetestutil.MockAnalyticsRedisClient) {
	mockRepo := new(servicetestutil.MockAnalyticsRepository)
	mockMemCache := new(servicetestutil.MockMemCache)
	mockRedis := new(servicetestutil.MockAnalyticsRedisClient)

	service := &AnalyticsService{
		memCache:            mockMemCache,
		redis:               mockRedis,
		AnalyticsRepository: mockRepo,
	}

	return service, mockRepo, mockMemCache, mockRedis
}

// setupDatasetMocks wires the repository mock to return the full test dataset.
func setupDatasetMocks(mockRepo *servicetestutil.MockAnalyticsRepository, teamID uint) {
	dataset := createTestDataset()

	mockRepo.On("ListCompletedScrims", mock.Anything, teamID).Return(dataset.Scrims, nil)
	mockRepo.On("ListOfficialMatches", mock.Anything, teamID).Return(dataset.Matches, nil)
	mockRepo.On("ListPlayerGameStats", mock.Anything, teamID).Return(dataset.Stats, nil)
	mockRepo.On("ListPlayersOnTeam", mock.Anything, teamID).Return(dataset.Players, nil)
	mockRepo.On("ListChildGamesByParents", mock.Anything, models.ParentScrim, []uint{1, 2, 3}).Return(dataset.ScrimGames, nil)
	mockRepo.On("ListChildGamesByParents", mock.Anything, models.ParentMatch, []uint{10}).Return(dataset.MatchGames, nil)
	mockRepo.On("ListPerformanceSnapshots", mock.Anything, []uint{1, 2, 3}).Return(dataset.Snapshots, nil)
}

// setupFetchErrorMocks makes one of the first stage fetches fail.
// The sets of the whole stage still get requested.
func setupFetchErrorMocks(mockRepo *servicetestutil.MockAnalyticsRepository, teamID uint) {
	dataset := createTestDataset()

	mockRepo.On("ListCompletedScrims", mock.Anything, teamID).Return(dataset.Scrims, nil)
	mockRepo.On("ListOfficialMatches", mock.Anything, teamID).Return(dataset.Matches, nil)
	mockRepo.On("ListPlayerGameStats", mock.Anything, teamID).
		Return([]models.PlayerGameStat{}, errors.New(testutil.DatabaseError))
	mockRepo.On("ListPlayersOnTeam", mock.Anything, teamID).Return(dataset.Players, nil)
}

// Simple test for asserting that everything is fine with the analytics service creation.
func TestNewAnalyticsService(t *testing.T) {
	_, _, mockMemCache, mockRedis := setupTestService()

	deps := &AnalyticsServiceDeps{
		DB:       new(gorm.DB),
		MemCache: mockMemCache,
		Redis:    mockRedis,
	}

	service := NewAnalyticsService(deps)
	assert.NotNil(t, service)
	assert.Equal(t, new(gorm.DB), service.db)
	assert.NotNil(t, service.AnalyticsRepository)
}

// Run tests on the possible outcomes of the GetTeamPerformance.
func TestGetTeamPerformance(t *testing.T) {
	teamID := uint(1)
	filter := &filters.AnalyticsFilter{TeamId: teamID}

	tests := []struct {
		name          string
		testStrategy  string
		expectedError error
	}{
		{
			name:         "fromMemCache",
			testStrategy: "memcache",
		},
		{
			name:         "fromRedis",
			testStrategy: "redis",
		},
		{
			name:         "fromRepo",
			testStrategy: "nocache",
		},
		{
			name:          "fromRepoErr",
			testStrategy:  "repoerror",
			expectedError: errors.New(testutil.DatabaseError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo, mockMemCache, mockRedis := setupTestService()

			key := performanceKey(teamID)
			expected := createExpectedPerformance()

			switch tt.testStrategy {
			case "memcache":
				mockMemCache.On("Get", key).Return(expected)
			case "redis":
				marshalled, err := json.Marshal(expected)
				assert.NoError(t, err)

				mockMemCache.On("Get", key).Return(nil)
				mockRedis.On("Get", mock.Anything, key).Return(string(marshalled), nil)
				mockMemCache.On("Set", key, mock.Anything, AnalyticsMemoryCacheDuration).Return()
			case "nocache":
				mockMemCache.On("Get", key).Return(nil)
				mockRedis.On("Get", mock.Anything, key).Return("", errors.New("redis: nil"))
				setupDatasetMocks(mockRepo, teamID)
				mockMemCache.On("Set", key, mock.Anything, AnalyticsMemoryCacheDuration).Return()
				mockRedis.On("Set", mock.Anything, key, mock.Anything, AnalyticsRedisCacheDuration).Return(nil)
			case "repoerror":
				mockMemCache.On("Get", key).Return(nil)
				mockRedis.On("Get", mock.Anything, key).Return("", errors.New("redis: nil"))
				setupFetchErrorMocks(mockRepo, teamID)
			}

			result, err := service.GetTeamPerformance(context.Background(), filter)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, expected, result)
			}

			servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockRedis)
		})
	}
}

func TestGetTeamPerformanceNilFilter(t *testing.T) {
	service, _, _, _ := setupTestService()

	result, err := service.GetTeamPerformance(context.Background(), nil)

	assert.Nil(t, result)
	assert.EqualError(t, err, messages.FiltersNotNil)
}

// Simple test to verify behavior when invalid json is returned from redis.
func TestGetTeamPerformanceInvalidRedisPayload(t *testing.T) {
	teamID := uint(1)
	service, mockRepo, mockMemCache, mockRedis := setupTestService()

	key := performanceKey(teamID)
	mockMemCache.On("Get", key).Return(nil)
	mockRedis.On("Get", mock.Anything, key).Return("invalid json", nil)
	setupDatasetMocks(mockRepo, teamID)
	mockMemCache.On("Set", key, mock.Anything, AnalyticsMemoryCacheDuration).Return()
	mockRedis.On("Set", mock.Anything, key, mock.Anything, AnalyticsRedisCacheDuration).Return(nil)

	result, err := service.GetTeamPerformance(context.Background(), &filters.AnalyticsFilter{TeamId: teamID})

	// A broken cache entry falls through to a recompute.
	assert.NoError(t, err)
	assert.Equal(t, createExpectedPerformance(), result)
}

// Run tests on the possible outcomes of the GetAdvancedStats.
func TestGetAdvancedStats(t *testing.T) {
	teamID := uint(1)
	filter := &filters.AnalyticsFilter{TeamId: teamID}

	t.Run("fromMemCache", func(t *testing.T) {
		service, _, mockMemCache, _ := setupTestService()

		cached := &dto.AdvancedStats{Efficiency: 1.0}
		mockMemCache.On("Get", advancedKey(teamID)).Return(cached)

		result, err := service.GetAdvancedStats(context.Background(), filter)

		assert.NoError(t, err)
		assert.Equal(t, cached, result)
	})

	t.Run("fromRepo", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockRedis := setupTestService()

		key := advancedKey(teamID)
		mockMemCache.On("Get", key).Return(nil)
		mockRedis.On("Get", mock.Anything, key).Return("", errors.New("redis: nil"))
		setupDatasetMocks(mockRepo, teamID)
		mockMemCache.On("Set", key, mock.Anything, AnalyticsMemoryCacheDuration).Return()
		mockRedis.On("Set", mock.Anything, key, mock.Anything, AnalyticsRedisCacheDuration).Return(nil)

		result, err := service.GetAdvancedStats(context.Background(), filter)

		assert.NoError(t, err)
		assert.Equal(t, computeAdvancedStats(createTestDataset()), result)

		servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockRedis)
	})

	t.Run("fromRepoErr", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockRedis := setupTestService()

		key := advancedKey(teamID)
		mockMemCache.On("Get", key).Return(nil)
		mockRedis.On("Get", mock.Anything, key).Return("", errors.New("redis: nil"))
		setupFetchErrorMocks(mockRepo, teamID)

		result, err := service.GetAdvancedStats(context.Background(), filter)

		assert.Nil(t, result)
		assert.EqualError(t, err, testutil.DatabaseError)
	})

	t.Run("nilFilter", func(t *testing.T) {
		service, _, _, _ := setupTestService()

		result, err := service.GetAdvancedStats(context.Background(), nil)

		assert.Nil(t, result)
		assert.EqualError(t, err, messages.FiltersNotNil)
	})
}

func TestRefreshTeamAnalytics(t *testing.T) {
	teamID := uint(1)

	t.Run("success", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockRedis := setupTestService()

		setupDatasetMocks(mockRepo, teamID)
		mockMemCache.On("Set", performanceKey(teamID), mock.Anything, AnalyticsMemoryCacheDuration).Return()
		mockMemCache.On("Set", advancedKey(teamID), mock.Anything, AnalyticsMemoryCacheDuration).Return()
		mockRedis.On("Set", mock.Anything, performanceKey(teamID), mock.Anything, AnalyticsRedisCacheDuration).Return(nil)
		mockRedis.On("Set", mock.Anything, advancedKey(teamID), mock.Anything, AnalyticsRedisCacheDuration).Return(nil)

		err := service.RefreshTeamAnalytics(context.Background(), teamID)

		assert.NoError(t, err)
		servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockRedis)
	})

	t.Run("fetcherror", func(t *testing.T) {
		service, mockRepo, _, _ := setupTestService()

		setupFetchErrorMocks(mockRepo, teamID)

		err := service.RefreshTeamAnalytics(context.Background(), teamID)

		assert.EqualError(t, err, testutil.DatabaseError)
	})
}

func TestGetTeamPlayers(t *testing.T) {
	teamID := uint(1)
	filter := &filters.AnalyticsFilter{TeamId: teamID}

	t.Run("success", func(t *testing.T) {
		service, mockRepo, _, _ := setupTestService()

		winRate := 54.3
		mockRepo.On("ListPlayersOnTeam", mock.Anything, teamID).Return([]*models.PlayerInfo{
			{ID: 1, TeamID: teamID, SummonerName: "Faker", Role: "mid", RiotWinRate: &winRate},
			{ID: 2, TeamID: teamID, SummonerName: "Zeus", Role: "top"},
		}, nil)

		result, err := service.GetTeamPlayers(context.Background(), filter)

		assert.NoError(t, err)
		assert.Equal(t, []*dto.TeamPlayer{
			{Id: 1, SummonerName: "Faker", Role: "mid", RiotWinRate: &winRate},
			{Id: 2, SummonerName: "Zeus", Role: "top"},
		}, result)
	})

	t.Run("repoerror", func(t *testing.T) {
		service, mockRepo, _, _ := setupTestService()

		mockRepo.On("ListPlayersOnTeam", mock.Anything, teamID).
			Return([]*models.PlayerInfo{}, errors.New(testutil.DatabaseError))

		result, err := service.GetTeamPlayers(context.Background(), filter)

		assert.Nil(t, result)
		assert.EqualError(t, err, testutil.DatabaseError)
	})
}
