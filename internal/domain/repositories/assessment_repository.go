package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

// AssessmentRepository defines the interface for risk assessment history.
// Assessments are insert-only; a new run supersedes the previous row.
type AssessmentRepository interface {
	// Create persists a completed assessment
	Create(ctx context.Context, assessment *entities.DealRiskAssessment) error

	// ListByDeal retrieves the assessment history for a deal, most recent first
	ListByDeal(ctx context.Context, dealID uuid.UUID, limit int) ([]*entities.DealRiskAssessment, error)
}
