package classify

import (
	"context"

	"go.uber.org/zap"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/infrastructure/metrics"
)

// FallbackClassifier tries a primary classifier and degrades to a
// secondary one when the primary fails. Classification must never block
// an assessment, so the combined classifier only errors if both do.
type FallbackClassifier struct {
	primary  RoleClassifier
	fallback RoleClassifier
	logger   *zap.Logger
}

// NewFallbackClassifier creates a classifier that falls back from primary to secondary
func NewFallbackClassifier(primary, fallback RoleClassifier, logger *zap.Logger) *FallbackClassifier {
	return &FallbackClassifier{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// ClassifyRoles delegates to the primary classifier and switches to the
// fallback on any error
func (c *FallbackClassifier) ClassifyRoles(ctx context.Context, roster []entities.ParticipantProfile) ([]entities.RoleAssignment, error) {
	assignments, err := c.primary.ClassifyRoles(ctx, roster)
	if err == nil {
		return assignments, nil
	}

	c.logger.Warn("⚠️ Primary role classifier failed, using heuristic fallback",
		zap.Int("roster_size", len(roster)),
		zap.Error(err))
	metrics.ClassifierFallbacks.Inc()

	return c.fallback.ClassifyRoles(ctx, roster)
}
