package routes

import (
	"net/http"
	"teamstats/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	router := &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}

	// Probe endpoint for the container orchestration.
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.AnalyticsHandler:
			r.registerAnalyticsHandler(handler)
		}
	}
}

// Register the analytics handler.
func (r *Router) registerAnalyticsHandler(handler *handlers.AnalyticsHandler) {
	analytics := r.api.Group("/analytics")
	{
		analytics.GET("/:teamId/performance", handler.GetTeamPerformance)
		analytics.GET("/:teamId/advanced", handler.GetAdvancedStats)
		analytics.GET("/:teamId/players", handler.GetTeamPlayers)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
