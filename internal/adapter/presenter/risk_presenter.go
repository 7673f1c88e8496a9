package presenter

import (
	"github.com/dealinsight-dev/deal-insight/internal/adapter/dto/risk"
	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

// ToAssessmentResponse converts a DealRiskAssessment entity to
// AssessmentResponse DTO
func ToAssessmentResponse(a *entities.DealRiskAssessment) *risk.AssessmentResponse {
	if a == nil {
		return nil
	}

	return &risk.AssessmentResponse{
		ID:              a.ID.String(),
		DealID:          a.DealID.String(),
		OverallRisk:     a.OverallRisk,
		RiskLevel:       string(a.RiskLevel),
		Factors:         toFactorsResponse(a.Factors),
		Recommendations: a.Recommendations,
		GeneratedAt:     a.GeneratedAt,
		NextReviewDate:  a.NextReviewDate,
	}
}

// ToHistoryResponse converts a slice of assessments to HistoryResponse
func ToHistoryResponse(assessments []*entities.DealRiskAssessment) *risk.HistoryResponse {
	responses := make([]*risk.AssessmentResponse, len(assessments))
	for i, a := range assessments {
		responses[i] = ToAssessmentResponse(a)
	}

	return &risk.HistoryResponse{
		Assessments: responses,
		Total:       len(responses),
	}
}

func toFactorsResponse(f entities.RiskFactors) risk.FactorsResponse {
	missingRoles := make([]risk.MissingRoleResponse, len(f.MissingStakeholders.MissingRoles))
	for i, role := range f.MissingStakeholders.MissingRoles {
		missingRoles[i] = risk.MissingRoleResponse{
			Role:       string(role.Role),
			Importance: string(role.Importance),
		}
	}

	return risk.FactorsResponse{
		MissingStakeholders: risk.MissingStakeholdersResponse{
			Risk:          f.MissingStakeholders.Risk,
			MissingRoles:  missingRoles,
			CoverageScore: f.MissingStakeholders.CoverageScore,
		},
		LowEngagement: risk.LowEngagementResponse{
			Risk:            f.LowEngagement.Risk,
			EngagementScore: f.LowEngagement.EngagementScore,
			Trend:           string(f.LowEngagement.Trend),
		},
		CompetitivePresence: risk.CompetitivePresenceResponse{
			Risk:         f.CompetitivePresence.Risk,
			Keywords:     f.CompetitivePresence.Keywords,
			MentionCount: f.CompetitivePresence.MentionCount,
		},
		EngagementDrop: risk.EngagementDropResponse{
			Risk:        f.EngagementDrop.Risk,
			Trend:       string(f.EngagementDrop.Trend),
			DropPercent: f.EngagementDrop.DropPercent,
		},
		StaleDeal: risk.StaleDealResponse{
			Risk:                  f.StaleDeal.Risk,
			DaysSinceLastActivity: f.StaleDeal.DaysSinceLastActivity,
		},
		MissingNextSteps: risk.MissingNextStepsResponse{
			Risk:                 f.MissingNextSteps.Risk,
			HasRecentActionItems: f.MissingNextSteps.HasRecentActionItems,
		},
		BudgetConcerns: risk.BudgetConcernsResponse{
			Risk:     f.BudgetConcerns.Risk,
			Keywords: f.BudgetConcerns.Keywords,
		},
	}
}
