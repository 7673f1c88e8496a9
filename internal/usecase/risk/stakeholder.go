package risk

import (
	"context"

	"go.uber.org/zap"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/usecase/classify"
)

// StakeholderAnalyzer turns a deal's interaction history into a coverage
// picture: which required sales roles are represented on the buying side
// and which are missing.
type StakeholderAnalyzer struct {
	classifier classify.RoleClassifier
	logger     *zap.Logger
}

// NewStakeholderAnalyzer creates a new stakeholder coverage analyzer
func NewStakeholderAnalyzer(classifier classify.RoleClassifier, logger *zap.Logger) *StakeholderAnalyzer {
	return &StakeholderAnalyzer{
		classifier: classifier,
		logger:     logger,
	}
}

// Analyze deduplicates the participant roster across all interactions,
// classifies each participant into a sales role, and reports coverage of
// the required role set. Classification failure degrades to the heuristic
// grading so an analysis is always produced.
func (a *StakeholderAnalyzer) Analyze(ctx context.Context, interactions []*entities.Interaction) entities.StakeholderAnalysis {
	roster := entities.BuildRoster(interactions)

	assignments, err := a.classifier.ClassifyRoles(ctx, roster)
	if err != nil {
		a.logger.Warn("⚠️ Role classification failed, grading roster heuristically",
			zap.Int("roster_size", len(roster)),
			zap.Error(err))
		assignments, _ = classify.NewHeuristicClassifier().ClassifyRoles(ctx, roster)
	}

	detected := make(map[entities.StakeholderRole]bool, len(assignments))
	for _, assignment := range assignments {
		detected[assignment.Role] = true
	}

	missing := make([]entities.MissingRole, 0)
	coveredCount := 0
	for _, required := range entities.RequiredRoles {
		if detected[required] {
			coveredCount++
			continue
		}
		missing = append(missing, entities.MissingRole{
			Role:       required,
			Importance: entities.ImportanceOf(required),
		})
	}

	coverage := int(float64(coveredCount)/float64(len(entities.RequiredRoles))*100 + 0.5)

	return entities.StakeholderAnalysis{
		Detected:      assignments,
		MissingRoles:  missing,
		CoverageScore: coverage,
	}
}

// missingStakeholdersFactor converts a coverage analysis into the
// missing-stakeholders risk factor: 40 points per missing critical role,
// 20 per missing high-importance role, capped at 100.
func missingStakeholdersFactor(analysis entities.StakeholderAnalysis) entities.MissingStakeholderFactor {
	criticalCount := 0
	highCount := 0
	for _, m := range analysis.MissingRoles {
		if m.Importance == entities.RoleImportanceCritical {
			criticalCount++
		} else {
			highCount++
		}
	}

	riskScore := 40*criticalCount + 20*highCount
	if riskScore > 100 {
		riskScore = 100
	}

	return entities.MissingStakeholderFactor{
		Risk:          riskScore,
		MissingRoles:  analysis.MissingRoles,
		CoverageScore: analysis.CoverageScore,
	}
}
