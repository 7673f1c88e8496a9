package risk_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/usecase/risk"
)

var testNow = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

func newTestClock() *clock.Mock {
	clk := clock.NewMock()
	clk.Set(testNow)
	return clk
}

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }

// interactionAt builds an interaction scheduled daysAgo days before
// testNow with the given participant count and optional engagement score
func interactionAt(daysAgo int, participants int, score *float64) *entities.Interaction {
	interaction := &entities.Interaction{
		ScheduledAt:     timePtr(testNow.AddDate(0, 0, -daysAgo)),
		EngagementScore: score,
	}
	for i := 0; i < participants; i++ {
		interaction.Participants = append(interaction.Participants, entities.InteractionParticipant{
			Name: "Attendee",
		})
	}
	return interaction
}

func TestTrackZeroInteractions(t *testing.T) {
	tracker := risk.NewEngagementTracker(newTestClock())

	m := tracker.Track(nil)

	assert.Equal(t, 0, m.Score)
	assert.Equal(t, entities.TrendCritical, m.Trend)
	assert.Equal(t, entities.UnknownDaysSentinel, m.DaysSinceLastInteraction)
	assert.Equal(t, 0, m.InteractionCount)
	assert.Empty(t, m.History)
}

func TestTrackHealthyCadence(t *testing.T) {
	tracker := risk.NewEngagementTracker(newTestClock())

	// Three meetings in the trailing month, scores trending up
	interactions := []*entities.Interaction{
		{ScheduledAt: timePtr(testNow.AddDate(0, 0, -2)), EngagementScore: floatPtr(80)},
		{ScheduledAt: timePtr(testNow.AddDate(0, 0, -9)), EngagementScore: floatPtr(60)},
		{ScheduledAt: timePtr(testNow.AddDate(0, 0, -16)), EngagementScore: floatPtr(50)},
	}
	for _, interaction := range interactions {
		for i := 0; i < 3; i++ {
			interaction.Participants = append(interaction.Participants, entities.InteractionParticipant{Name: "Attendee"})
		}
	}

	m := tracker.Track(interactions)

	// Base 50, +10 for 0.7 meetings/week, +15 for 3 avg participants
	assert.Equal(t, 75, m.Score)
	assert.Equal(t, entities.TrendIncreasing, m.Trend)
	assert.Equal(t, 3, m.InteractionCount)
	assert.InDelta(t, 0.7, m.FrequencyPerWeek, 0.001)
	assert.InDelta(t, 3.0, m.AvgParticipants, 0.001)
	assert.Equal(t, 2, m.DaysSinceLastInteraction)
	assert.Equal(t, []float64{80, 60, 50}, m.History)
}

func TestTrackRecencyPenalty(t *testing.T) {
	tracker := risk.NewEngagementTracker(newTestClock())

	// A single meeting three weeks ago, nobody since
	m := tracker.Track([]*entities.Interaction{interactionAt(20, 1, nil)})

	// Base 50, no bonuses, -40 for three weeks of silence
	assert.Equal(t, 10, m.Score)
	assert.Equal(t, entities.TrendCritical, m.Trend)
	assert.Equal(t, 20, m.DaysSinceLastInteraction)

	// Absent platform scores default to 50 in the history
	assert.Equal(t, []float64{50}, m.History)
}

func TestTrackDecreasingWithSparseHistory(t *testing.T) {
	tracker := risk.NewEngagementTracker(newTestClock())

	// One meeting nine days ago: too little history for a delta, but the
	// silence already reads as decline
	m := tracker.Track([]*entities.Interaction{interactionAt(9, 2, nil)})

	assert.Equal(t, entities.TrendDecreasing, m.Trend)

	// Base 50, +10 for 2 participants, -20 for the nine-day gap
	assert.Equal(t, 40, m.Score)
}

func TestTrackStableDelta(t *testing.T) {
	tracker := risk.NewEngagementTracker(newTestClock())

	m := tracker.Track([]*entities.Interaction{
		interactionAt(1, 2, floatPtr(55)),
		interactionAt(4, 2, floatPtr(60)),
	})

	// Delta of -5 stays inside the +-10 stability band
	assert.Equal(t, entities.TrendStable, m.Trend)
	assert.Equal(t, []float64{55, 60}, m.History)
}

func TestTrackUnknownTimestamps(t *testing.T) {
	tracker := risk.NewEngagementTracker(newTestClock())

	m := tracker.Track([]*entities.Interaction{
		{EngagementScore: floatPtr(70)},
	})

	assert.Equal(t, entities.UnknownDaysSentinel, m.DaysSinceLastInteraction)
	assert.Equal(t, entities.TrendCritical, m.Trend)
}

func TestTrackHistoryCappedAtFive(t *testing.T) {
	tracker := risk.NewEngagementTracker(newTestClock())

	interactions := make([]*entities.Interaction, 0, 8)
	for i := 1; i <= 8; i++ {
		interactions = append(interactions, interactionAt(i, 1, floatPtr(float64(i*10))))
	}

	m := tracker.Track(interactions)

	require.Len(t, m.History, 5)
	assert.Equal(t, []float64{10, 20, 30, 40, 50}, m.History)
	assert.Equal(t, 8, m.InteractionCount)
}

func TestTrackDoesNotMutateInput(t *testing.T) {
	tracker := risk.NewEngagementTracker(newTestClock())

	oldest := interactionAt(20, 1, nil)
	newest := interactionAt(1, 1, nil)
	interactions := []*entities.Interaction{oldest, newest}

	tracker.Track(interactions)

	// The tracker sorts a copy; concurrent detectors share this slice
	assert.Same(t, oldest, interactions[0])
	assert.Same(t, newest, interactions[1])
}
