package modules

import (
	"teamstats/api/cache"
	"teamstats/api/handlers"
	analyticsservice "teamstats/api/services/analytics"
	"teamstats/pkg/database"
	"teamstats/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Module containing the necessary handlers.
type Module struct {
	Router           *gin.Engine
	MemCache         cache.MemCache
	AnalyticsHandler *handlers.AnalyticsHandler
}

// Create a new module with all the necessary handlers initialized.
func NewModule() (*Module, error) {
	router := gin.Default()

	db, err := database.NewConnection()
	if err != nil {
		return nil, err
	}

	memCache := cache.NewMemCache()

	// Initialize the services.
	analyticsService := analyticsservice.NewAnalyticsService(&analyticsservice.AnalyticsServiceDeps{
		DB:       db,
		MemCache: memCache,
		Redis:    redis.GetClient(),
	})

	// Initialize the handlers.
	analyticsHandler := handlers.NewAnalyticsHandler(&handlers.AnalyticsHandlerDependencies{
		AnalyticsService: analyticsService,
	})

	// Return the module with all handlers.
	return &Module{
		Router:           router,
		MemCache:         memCache,
		AnalyticsHandler: analyticsHandler,
	}, nil
}
