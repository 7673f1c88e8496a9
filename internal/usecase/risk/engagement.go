package risk

import (
	"math"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

const (
	// engagementHistorySize bounds the per-interaction score history kept
	// on the metrics, newest first.
	engagementHistorySize = 5

	// defaultEngagementScore stands in when the meeting platform supplied
	// no derived engagement number for an interaction.
	defaultEngagementScore = 50.0
)

// EngagementTracker computes the interaction-cadence picture of a deal:
// how often the buying team meets, how many people attend, how recently
// contact happened and which way the trend is moving.
type EngagementTracker struct {
	clk clock.Clock
}

// NewEngagementTracker creates a new engagement tracker
func NewEngagementTracker(clk clock.Clock) *EngagementTracker {
	return &EngagementTracker{clk: clk}
}

// Track computes engagement metrics from a deal's interactions. Input
// order is irrelevant; the tracker sorts a copy and never mutates the
// shared history slice.
func (t *EngagementTracker) Track(interactions []*entities.Interaction) entities.EngagementMetrics {
	if len(interactions) == 0 {
		return entities.EngagementMetrics{
			Score:                    0,
			Trend:                    entities.TrendCritical,
			DaysSinceLastInteraction: entities.UnknownDaysSentinel,
		}
	}

	sorted := make([]*entities.Interaction, len(interactions))
	copy(sorted, interactions)
	entities.SortInteractionsByRecency(sorted)

	now := t.clk.Now()

	frequency := t.frequencyPerWeek(sorted, now)
	avgParticipants := averageParticipants(sorted)
	daysSince := daysSinceLast(sorted[0], now)
	history := engagementHistory(sorted)
	trend := engagementTrend(daysSince, history)

	return entities.EngagementMetrics{
		Score:                    engagementScore(frequency, avgParticipants, daysSince),
		Trend:                    trend,
		InteractionCount:         len(sorted),
		FrequencyPerWeek:         frequency,
		AvgParticipants:          avgParticipants,
		DaysSinceLastInteraction: daysSince,
		History:                  history,
	}
}

// frequencyPerWeek converts the trailing 30 days of activity into a
// meetings-per-week rate, rounded to one decimal
func (t *EngagementTracker) frequencyPerWeek(sorted []*entities.Interaction, now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -30)

	recent := 0
	for _, interaction := range sorted {
		if interaction.ScheduledAt != nil && interaction.ScheduledAt.After(cutoff) {
			recent++
		}
	}

	return math.Round(float64(recent)/30.0*7.0*10) / 10
}

func averageParticipants(sorted []*entities.Interaction) float64 {
	total := 0
	for _, interaction := range sorted {
		total += len(interaction.Participants)
	}
	return float64(total) / float64(len(sorted))
}

// daysSinceLast measures calendar days between now and the most recent
// interaction, with the sentinel when no timestamp was recorded
func daysSinceLast(latest *entities.Interaction, now time.Time) int {
	if latest.ScheduledAt == nil {
		return entities.UnknownDaysSentinel
	}

	days := int(now.Sub(*latest.ScheduledAt).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days
}

// engagementHistory collects the derived engagement numbers of up to the
// five most recent interactions, newest first
func engagementHistory(sorted []*entities.Interaction) []float64 {
	size := len(sorted)
	if size > engagementHistorySize {
		size = engagementHistorySize
	}

	history := make([]float64, 0, size)
	for _, interaction := range sorted[:size] {
		score := defaultEngagementScore
		if interaction.EngagementScore != nil {
			score = *interaction.EngagementScore
		}
		history = append(history, score)
	}
	return history
}

// engagementTrend derives the trend with recency taking precedence over
// history deltas: a deal untouched for more than two weeks is critical no
// matter what the scores say.
func engagementTrend(daysSince int, history []float64) entities.EngagementTrend {
	if daysSince > 14 {
		return entities.TrendCritical
	}

	if len(history) < 2 {
		if daysSince > 7 {
			return entities.TrendDecreasing
		}
		return entities.TrendStable
	}

	delta := history[0] - history[1]
	switch {
	case delta > 10:
		return entities.TrendIncreasing
	case delta < -10:
		return entities.TrendDecreasing
	default:
		return entities.TrendStable
	}
}

// engagementScore combines frequency, meeting size and recency into a
// 0-100 score: base 50, bonuses for cadence and attendance, penalties for
// silence, clamped.
func engagementScore(frequency, avgParticipants float64, daysSince int) int {
	score := 50

	switch {
	case frequency >= 2:
		score += 30
	case frequency >= 1:
		score += 20
	case frequency >= 0.5:
		score += 10
	}

	switch {
	case avgParticipants >= 5:
		score += 20
	case avgParticipants >= 3:
		score += 15
	case avgParticipants >= 2:
		score += 10
	}

	switch {
	case daysSince > 14:
		score -= 40
	case daysSince > 7:
		score -= 20
	case daysSince > 3:
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// lowEngagementFactor is the inverse view of the engagement score
func lowEngagementFactor(m entities.EngagementMetrics) entities.LowEngagementFactor {
	return entities.LowEngagementFactor{
		Risk:            100 - m.Score,
		EngagementScore: m.Score,
		Trend:           m.Trend,
	}
}

// engagementDropFactor scores a deteriorating trend, derived by the
// aggregator after the detector barrier from the tracker's output
func engagementDropFactor(m entities.EngagementMetrics) entities.EngagementDropFactor {
	riskScore := 0
	switch m.Trend {
	case entities.TrendCritical:
		riskScore = 80
	case entities.TrendDecreasing:
		riskScore = 50
	}

	dropPercent := 0.0
	if len(m.History) >= 2 && m.History[1] > 0 {
		dropPercent = (m.History[1] - m.History[0]) / m.History[1] * 100
	}

	return entities.EngagementDropFactor{
		Risk:        riskScore,
		Trend:       m.Trend,
		DropPercent: dropPercent,
	}
}
