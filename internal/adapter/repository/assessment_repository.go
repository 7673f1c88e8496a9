package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/domain/repositories"
)

// assessmentRepository implements the AssessmentRepository interface
type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) repositories.AssessmentRepository {
	return &assessmentRepository{db: db}
}

// Create persists a completed assessment
func (r *assessmentRepository) Create(ctx context.Context, assessment *entities.DealRiskAssessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

// ListByDeal retrieves the assessment history for a deal, most recent first
func (r *assessmentRepository) ListByDeal(ctx context.Context, dealID uuid.UUID, limit int) ([]*entities.DealRiskAssessment, error) {
	if limit == 0 {
		limit = 20
	}
	var assessments []*entities.DealRiskAssessment
	err := r.db.WithContext(ctx).
		Where("deal_id = ?", dealID).
		Order("generated_at DESC").
		Limit(limit).
		Find(&assessments).Error

	if err != nil {
		return nil, err
	}
	return assessments, nil
}
