package risk

import (
	"github.com/benbjohnson/clock"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

// StalenessDetector converts time-without-contact into risk. A deal
// nobody has talked to assumes the worst.
type StalenessDetector struct {
	clk clock.Clock
}

// NewStalenessDetector creates a new staleness detector
func NewStalenessDetector(clk clock.Clock) *StalenessDetector {
	return &StalenessDetector{clk: clk}
}

// Detect computes the stale-deal factor. No interactions at all scores
// the full 100 with the unknown-days sentinel; a most-recent interaction
// without a timestamp keeps the sentinel but grades through the normal
// tiers.
func (d *StalenessDetector) Detect(interactions []*entities.Interaction) entities.StaleDealFactor {
	if len(interactions) == 0 {
		return entities.StaleDealFactor{
			Risk:                  100,
			DaysSinceLastActivity: entities.UnknownDaysSentinel,
		}
	}

	sorted := make([]*entities.Interaction, len(interactions))
	copy(sorted, interactions)
	entities.SortInteractionsByRecency(sorted)

	days := daysSinceLast(sorted[0], d.clk.Now())

	riskScore := 0
	switch {
	case days > 30:
		riskScore = 90
	case days > 14:
		riskScore = 60
	case days > 7:
		riskScore = 30
	}

	return entities.StaleDealFactor{
		Risk:                  riskScore,
		DaysSinceLastActivity: days,
	}
}
