package entities

// EngagementTrend describes the direction the interaction cadence is moving
type EngagementTrend string

const (
	TrendIncreasing EngagementTrend = "increasing"
	TrendStable     EngagementTrend = "stable"
	TrendDecreasing EngagementTrend = "decreasing"
	TrendCritical   EngagementTrend = "critical"
)

// UnknownDaysSentinel stands in for "days since last interaction" when no
// timestamp is available. Its magnitude matters: it must clear every
// staleness tier, so it is kept well above the 30-day threshold.
const UnknownDaysSentinel = 999

// EngagementMetrics is the interaction-cadence picture of a deal.
// Computed fresh on every assessment, never persisted.
type EngagementMetrics struct {
	Score                    int             `json:"score"`
	Trend                    EngagementTrend `json:"trend"`
	InteractionCount         int             `json:"interaction_count"`
	FrequencyPerWeek         float64         `json:"frequency_per_week"`
	AvgParticipants          float64         `json:"avg_participants"`
	DaysSinceLastInteraction int             `json:"days_since_last_interaction"`

	// History holds the engagement scores of up to the five most recent
	// interactions, newest first, defaulting to 50 where the platform
	// supplied no score.
	History []float64 `json:"history"`
}
