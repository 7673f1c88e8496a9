package classify

import (
	"context"

	"go.uber.org/zap"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/pkg/ai"
	"github.com/dealinsight-dev/deal-insight/pkg/config"
)

// RoleClassifier assigns stakeholder roles and engagement levels to a
// deal's deduplicated participant roster.
type RoleClassifier interface {
	ClassifyRoles(ctx context.Context, roster []entities.ParticipantProfile) ([]entities.RoleAssignment, error)
}

// New builds the classifier configured by CLASSIFIER_PROVIDER. The groq
// provider is wrapped in the heuristic fallback so a classifier outage
// never blocks an assessment.
func New(cfg *config.ClassifierConfig, logger *zap.Logger) RoleClassifier {
	switch cfg.Provider {
	case "heuristic":
		return NewHeuristicClassifier()
	default:
		llm := NewLLMClassifier(ai.NewGroqClient(cfg), logger)
		return NewFallbackClassifier(llm, NewHeuristicClassifier(), logger)
	}
}
