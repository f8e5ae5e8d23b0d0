package testutil

import (
	"context"
	analyticsrepo "teamstats/api/repositories/analytics"
	"teamstats/pkg/database/models"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock implementations used on the analytics service tests.
// ============================================================================

// Analytics repository mock implementation.
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) ListTeams(ctx context.Context) ([]models.TeamInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.TeamInfo), args.Error(1)
}

func (m *MockAnalyticsRepository) ListCompletedScrims(ctx context.Context, teamID uint) ([]analyticsrepo.GameRecord, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]analyticsrepo.GameRecord), args.Error(1)
}

func (m *MockAnalyticsRepository) ListOfficialMatches(ctx context.Context, teamID uint) ([]analyticsrepo.GameRecord, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]analyticsrepo.GameRecord), args.Error(1)
}

func (m *MockAnalyticsRepository) ListChildGames(ctx context.Context, parentType string, parentID uint) ([]analyticsrepo.GameRecord, error) {
	args := m.Called(ctx, parentType, parentID)
	return args.Get(0).([]analyticsrepo.GameRecord), args.Error(1)
}

func (m *MockAnalyticsRepository) ListChildGamesByParents(ctx context.Context, parentType string, parentIDs []uint) ([]analyticsrepo.GameRecord, error) {
	args := m.Called(ctx, parentType, parentIDs)
	return args.Get(0).([]analyticsrepo.GameRecord), args.Error(1)
}

func (m *MockAnalyticsRepository) ListPlayerGameStats(ctx context.Context, teamID uint) ([]models.PlayerGameStat, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]models.PlayerGameStat), args.Error(1)
}

func (m *MockAnalyticsRepository) ListPlayersOnTeam(ctx context.Context, teamID uint) ([]*models.PlayerInfo, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]*models.PlayerInfo), args.Error(1)
}

func (m *MockAnalyticsRepository) ListPerformanceSnapshots(ctx context.Context, playerIDs []uint) ([]models.PerformanceSnapshot, error) {
	args := m.Called(ctx, playerIDs)
	return args.Get(0).([]models.PerformanceSnapshot), args.Error(1)
}

// MemCache mock implementation.
type MockMemCache struct {
	mock.Mock
}

func (m *MockMemCache) Get(key string) any {
	args := m.Called(key)
	return args.Get(0)
}

func (m *MockMemCache) Set(key string, value any, ttl time.Duration) {
	m.Called(key, value, ttl)
}

func (m *MockMemCache) Close() {
	m.Called()
}

// Redis client mock implementation.
type MockAnalyticsRedisClient struct {
	mock.Mock
}

func (m *MockAnalyticsRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockAnalyticsRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
