package filters

// URI parameters shared by all the analytics endpoints.
type AnalyticsURIParams struct {
	TeamId uint `uri:"teamId" binding:"required"`
}

// AnalyticsFilter is the validated filter passed into the analytics service.
type AnalyticsFilter struct {
	TeamId uint
}

// NewAnalyticsFilter creates the filter from the bound URI params.
func NewAnalyticsFilter(params AnalyticsURIParams) *AnalyticsFilter {
	return &AnalyticsFilter{
		TeamId: params.TeamId,
	}
}
