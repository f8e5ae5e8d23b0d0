package repositories

import (
	"context"
	"errors"
	"teamstats/api/repositories/testutil"
	"teamstats/pkg/database/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewAnalyticsRepository(t *testing.T) {
	repository := NewAnalyticsRepository(&gorm.DB{})
	assert.NotNil(t, repository)
}

func TestListTeams(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewAnalyticsRepository(db)

	seedTestData(t, db)

	tests := []struct {
		name          string
		returnData    []models.TeamInfo
		expectedError error
		setupFunc     func(db *gorm.DB)
	}{
		{
			name:       "allteams",
			returnData: getExpectedTeams(),
		},
		{
			name:          "dbconnectionerr",
			expectedError: errors.New("sql: database is closed"),
			setupFunc: func(db *gorm.DB) {
				sqlDB, _ := db.DB()
				sqlDB.Close()
			},
		},
	}

	for _, tt := range tests {
		if tt.setupFunc != nil {
			tt.setupFunc(db)
		}

		result, err := repository.ListTeams(context.Background())

		if tt.expectedError != nil {
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError.Error())
			assert.Nil(t, result)
			continue
		}

		assert.NoError(t, err)
		normalizeTeamTimes(result)
		assert.Equal(t, tt.returnData, result)
	}
}

func TestListCompletedScrims(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewAnalyticsRepository(db)

	seedTestData(t, db)

	tests := []struct {
		name          string
		teamID        uint
		returnData    []GameRecord
		expectedError error
		setupFunc     func(db *gorm.DB)
	}{
		{
			name:       "completedonly",
			teamID:     1,
			returnData: getExpectedCompletedScrims(),
		},
		{
			name:       "unknownteam",
			teamID:     99,
			returnData: []GameRecord{},
		},
		{
			name:          "dbconnectionerr",
			teamID:        1,
			expectedError: errors.New("sql: database is closed"),
			setupFunc: func(db *gorm.DB) {
				sqlDB, _ := db.DB()
				sqlDB.Close()
			},
		},
	}

	for _, tt := range tests {
		if tt.setupFunc != nil {
			tt.setupFunc(db)
		}

		result, err := repository.ListCompletedScrims(context.Background(), tt.teamID)

		if tt.expectedError != nil {
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError.Error())
			assert.Nil(t, result)
			continue
		}

		assert.NoError(t, err)
		assert.Equal(t, tt.returnData, result)
	}
}

func TestListOfficialMatches(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewAnalyticsRepository(db)

	seedTestData(t, db)

	tests := []struct {
		name          string
		teamID        uint
		returnData    []GameRecord
		expectedError error
		setupFunc     func(db *gorm.DB)
	}{
		{
			name:       "cancelledskipped",
			teamID:     1,
			returnData: getExpectedOfficialMatches(),
		},
		{
			name:       "unknownteam",
			teamID:     99,
			returnData: []GameRecord{},
		},
		{
			name:          "dbconnectionerr",
			teamID:        1,
			expectedError: errors.New("sql: database is closed"),
			setupFunc: func(db *gorm.DB) {
				sqlDB, _ := db.DB()
				sqlDB.Close()
			},
		},
	}

	for _, tt := range tests {
		if tt.setupFunc != nil {
			tt.setupFunc(db)
		}

		result, err := repository.ListOfficialMatches(context.Background(), tt.teamID)

		if tt.expectedError != nil {
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError.Error())
			assert.Nil(t, result)
			continue
		}

		assert.NoError(t, err)
		assert.Equal(t, tt.returnData, result)
	}
}

func TestListChildGames(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewAnalyticsRepository(db)

	seedTestData(t, db)

	result, err := repository.ListChildGames(context.Background(), models.ParentScrim, 1)

	assert.NoError(t, err)
	assert.Equal(t, getExpectedScrimGames()[:1], result)
}

func TestListChildGamesByParents(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewAnalyticsRepository(db)

	seedTestData(t, db)

	tests := []struct {
		name          string
		parentType    string
		parentIDs     []uint
		returnData    []GameRecord
		expectedError error
		setupFunc     func(db *gorm.DB)
	}{
		{
			name:       "scrimgames",
			parentType: models.ParentScrim,
			parentIDs:  []uint{1, 2, 3},
			returnData: getExpectedScrimGames(),
		},
		{
			name:       "matchgames",
			parentType: models.ParentMatch,
			parentIDs:  []uint{1},
			returnData: getExpectedMatchGames(),
		},
		{
			name:       "noparents",
			parentType: models.ParentScrim,
			parentIDs:  []uint{},
			returnData: []GameRecord{},
		},
		{
			name:          "dbconnectionerr",
			parentType:    models.ParentScrim,
			parentIDs:     []uint{1},
			expectedError: errors.New("sql: database is closed"),
			setupFunc: func(db *gorm.DB) {
				sqlDB, _ := db.DB()
				sqlDB.Close()
			},
		},
	}

	for _, tt := range tests {
		if tt.setupFunc != nil {
			tt.setupFunc(db)
		}

		result, err := repository.ListChildGamesByParents(context.Background(), tt.parentType, tt.parentIDs)

		if tt.expectedError != nil {
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError.Error())
			assert.Nil(t, result)
			continue
		}

		assert.NoError(t, err)
		assert.Equal(t, tt.returnData, result)
	}
}

func TestListPlayerGameStats(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewAnalyticsRepository(db)

	seedTestData(t, db)

	tests := []struct {
		name          string
		teamID        uint
		returnData    []models.PlayerGameStat
		expectedError error
		setupFunc     func(db *gorm.DB)
	}{
		{
			name:       "teamscoped",
			teamID:     1,
			returnData: getExpectedPlayerStats(),
		},
		{
			name:   "unknownteam",
			teamID: 99,
		},
		{
			name:          "dbconnectionerr",
			teamID:        1,
			expectedError: errors.New("sql: database is closed"),
			setupFunc: func(db *gorm.DB) {
				sqlDB, _ := db.DB()
				sqlDB.Close()
			},
		},
	}

	for _, tt := range tests {
		if tt.setupFunc != nil {
			tt.setupFunc(db)
		}

		result, err := repository.ListPlayerGameStats(context.Background(), tt.teamID)

		if tt.expectedError != nil {
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError.Error())
			assert.Nil(t, result)
			continue
		}

		assert.NoError(t, err)
		if tt.returnData == nil {
			assert.Empty(t, result)
			continue
		}

		normalizeStatTimes(result)
		assert.Equal(t, tt.returnData, result)
	}
}

func TestListPlayersOnTeam(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewAnalyticsRepository(db)

	seedTestData(t, db)

	tests := []struct {
		name          string
		teamID        uint
		returnData    []*models.PlayerInfo
		expectedError error
		setupFunc     func(db *gorm.DB)
	}{
		{
			name:       "fullroster",
			teamID:     1,
			returnData: getExpectedRoster(),
		},
		{
			name:   "unknownteam",
			teamID: 99,
		},
		{
			name:          "dbconnectionerr",
			teamID:        1,
			expectedError: errors.New("sql: database is closed"),
			setupFunc: func(db *gorm.DB) {
				sqlDB, _ := db.DB()
				sqlDB.Close()
			},
		},
	}

	for _, tt := range tests {
		if tt.setupFunc != nil {
			tt.setupFunc(db)
		}

		result, err := repository.ListPlayersOnTeam(context.Background(), tt.teamID)

		if tt.expectedError != nil {
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError.Error())
			assert.Nil(t, result)
			continue
		}

		assert.NoError(t, err)
		if tt.returnData == nil {
			assert.Empty(t, result)
			continue
		}

		assert.Equal(t, tt.returnData, result)
	}
}

func TestListPerformanceSnapshots(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewAnalyticsRepository(db)

	seedTestData(t, db)

	tests := []struct {
		name          string
		playerIDs     []uint
		returnData    []models.PerformanceSnapshot
		expectedError error
		setupFunc     func(db *gorm.DB)
	}{
		{
			name:       "batchedbyplayers",
			playerIDs:  []uint{1, 2, 3},
			returnData: getExpectedSnapshots(),
		},
		{
			name:       "noplayers",
			playerIDs:  []uint{},
			returnData: []models.PerformanceSnapshot{},
		},
		{
			name:          "dbconnectionerr",
			playerIDs:     []uint{1},
			expectedError: errors.New("sql: database is closed"),
			setupFunc: func(db *gorm.DB) {
				sqlDB, _ := db.DB()
				sqlDB.Close()
			},
		},
	}

	for _, tt := range tests {
		if tt.setupFunc != nil {
			tt.setupFunc(db)
		}

		result, err := repository.ListPerformanceSnapshots(context.Background(), tt.playerIDs)

		if tt.expectedError != nil {
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError.Error())
			assert.Nil(t, result)
			continue
		}

		assert.NoError(t, err)
		assert.Equal(t, tt.returnData, result)
	}
}
