package risk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/usecase/risk"
)

func TestBuildRecommendationsCappedAtFive(t *testing.T) {
	factors := entities.RiskFactors{
		MissingStakeholders: entities.MissingStakeholderFactor{
			Risk: 100,
			MissingRoles: []entities.MissingRole{
				{Role: entities.RoleEconomicBuyer, Importance: entities.RoleImportanceCritical},
				{Role: entities.RoleDecisionMaker, Importance: entities.RoleImportanceCritical},
				{Role: entities.RoleInfluencer, Importance: entities.RoleImportanceHigh},
			},
		},
		LowEngagement:       entities.LowEngagementFactor{Risk: 90},
		CompetitivePresence: entities.CompetitiveFactor{Risk: 60},
		StaleDeal:           entities.StaleDealFactor{Risk: 90},
		MissingNextSteps:    entities.MissingNextStepsFactor{Risk: 70},
		BudgetConcerns:      entities.BudgetConcernsFactor{Risk: 60},
	}

	recommendations := risk.BuildRecommendations(factors, entities.DealStageProspecting)

	require.Len(t, recommendations, 5)

	// Only the first two missing roles get a slot, then the remaining
	// rules fill up in evaluation order
	assert.Equal(t, "Identify and engage the Economic Buyer for this deal", recommendations[0])
	assert.Equal(t, "Identify and engage the Decision Maker for this deal", recommendations[1])
	assert.Contains(t, recommendations[2], "re-engage the buying team")
	assert.Contains(t, recommendations[3], "differentiation materials")
	assert.Contains(t, recommendations[4], "going stale")
}

func TestBuildRecommendationsHealthyDeal(t *testing.T) {
	recommendations := risk.BuildRecommendations(entities.RiskFactors{}, entities.DealStageNegotiation)

	assert.Empty(t, recommendations)
}

func TestBuildRecommendationsMissingRolesOnly(t *testing.T) {
	factors := entities.RiskFactors{
		MissingStakeholders: entities.MissingStakeholderFactor{
			Risk: 40,
			MissingRoles: []entities.MissingRole{
				{Role: entities.RoleEconomicBuyer, Importance: entities.RoleImportanceCritical},
				{Role: entities.RoleEndUser, Importance: entities.RoleImportanceHigh},
			},
		},
	}

	recommendations := risk.BuildRecommendations(factors, entities.DealStageProposal)

	require.Len(t, recommendations, 2)
	assert.Equal(t, "Identify and engage the Economic Buyer for this deal", recommendations[0])
	assert.Equal(t, "Identify and engage the End User for this deal", recommendations[1])
}

func TestBuildRecommendationsThresholdsAreStrict(t *testing.T) {
	// Every factor sits exactly on its threshold, so no rule fires
	factors := entities.RiskFactors{
		MissingStakeholders: entities.MissingStakeholderFactor{
			Risk:         30,
			MissingRoles: []entities.MissingRole{{Role: entities.RoleInfluencer}},
		},
		LowEngagement:       entities.LowEngagementFactor{Risk: 50},
		CompetitivePresence: entities.CompetitiveFactor{Risk: 40},
		StaleDeal:           entities.StaleDealFactor{Risk: 60},
		MissingNextSteps:    entities.MissingNextStepsFactor{Risk: 50},
		BudgetConcerns:      entities.BudgetConcernsFactor{Risk: 40},
	}

	recommendations := risk.BuildRecommendations(factors, entities.DealStageDiscovery)

	assert.Empty(t, recommendations)
}

func TestBuildRecommendationsProspectingCommitteeRule(t *testing.T) {
	factors := entities.RiskFactors{
		MissingStakeholders: entities.MissingStakeholderFactor{
			Risk: 60,
			MissingRoles: []entities.MissingRole{
				{Role: entities.RoleEconomicBuyer, Importance: entities.RoleImportanceCritical},
			},
		},
	}

	early := risk.BuildRecommendations(factors, entities.DealStageProspecting)
	late := risk.BuildRecommendations(factors, entities.DealStageNegotiation)

	assert.Contains(t, early, "Map the full buying committee before advancing the deal")
	assert.NotContains(t, late, "Map the full buying committee before advancing the deal")
}
