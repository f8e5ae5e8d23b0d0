package handlers

import (
	"net/http"
	"teamstats/api/filters"
	analyticsservice "teamstats/api/services/analytics"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler is the handler for the analytics endpoints.
type AnalyticsHandler struct {
	AnalyticsService *analyticsservice.AnalyticsService
}

type AnalyticsHandlerDependencies struct {
	AnalyticsService *analyticsservice.AnalyticsService
}

// NewAnalyticsHandler creates a new instance of the analytics handler.
func NewAnalyticsHandler(deps *AnalyticsHandlerDependencies) *AnalyticsHandler {
	return &AnalyticsHandler{
		AnalyticsService: deps.AnalyticsService,
	}
}

// Helper to bind the default URI params for the analytics.
func (h *AnalyticsHandler) bindURIParams(c *gin.Context) (*filters.AnalyticsFilter, error) {
	var params filters.AnalyticsURIParams
	if err := c.ShouldBindUri(&params); err != nil {
		return nil, err
	}
	return filters.NewAnalyticsFilter(params), nil
}

// GetTeamPerformance handles the team performance overview endpoint.
func (h *AnalyticsHandler) GetTeamPerformance(c *gin.Context) {
	filter, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.AnalyticsService.GetTeamPerformance(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetAdvancedStats handles the advanced stats endpoint.
func (h *AnalyticsHandler) GetAdvancedStats(c *gin.Context) {
	filter, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.AnalyticsService.GetAdvancedStats(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetTeamPlayers handles the roster endpoint used by the scouting page.
func (h *AnalyticsHandler) GetTeamPlayers(c *gin.Context) {
	filter, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.AnalyticsService.GetTeamPlayers(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
