package risk

import (
	"fmt"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

// maxRecommendations caps the advice attached to one assessment. Rules
// are evaluated in a fixed order so the highest-weighted factors win the
// slots.
const maxRecommendations = 5

// BuildRecommendations derives prioritized next actions from the computed
// factors. Each rule fires when its factor clears a threshold; the result
// is truncated to the first five in evaluation order.
func BuildRecommendations(factors entities.RiskFactors, stage entities.DealStage) []string {
	recommendations := make([]string, 0, maxRecommendations)

	if factors.MissingStakeholders.Risk > 30 {
		for i, missing := range factors.MissingStakeholders.MissingRoles {
			if i >= 2 {
				break
			}
			recommendations = append(recommendations,
				fmt.Sprintf("Identify and engage the %s for this deal", missing.Role))
		}
	}

	if factors.LowEngagement.Risk > 50 {
		recommendations = append(recommendations,
			"Engagement is low, re-engage the buying team within the next 3 days")
	}

	if factors.CompetitivePresence.Risk > 40 {
		recommendations = append(recommendations,
			"Competitors are in play, prepare differentiation materials and address the comparison head-on")
	}

	if factors.StaleDeal.Risk > 60 {
		recommendations = append(recommendations,
			"Deal is going stale, schedule an urgent re-engagement call this week")
	}

	if factors.MissingNextSteps.Risk > 50 {
		recommendations = append(recommendations,
			"Define clear next steps and owners with the customer before the week ends")
	}

	if factors.BudgetConcerns.Risk > 40 {
		recommendations = append(recommendations,
			"Budget concerns were raised, review the ROI case and pricing options with the buyer")
	}

	if stage == entities.DealStageProspecting && factors.MissingStakeholders.Risk > 50 {
		recommendations = append(recommendations,
			"Map the full buying committee before advancing the deal")
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
