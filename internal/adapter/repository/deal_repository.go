package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/domain/repositories"
)

// dealRepository implements the DealRepository interface
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) repositories.DealRepository {
	return &dealRepository{db: db}
}

// Create creates a new deal
func (r *dealRepository) Create(ctx context.Context, deal *entities.Deal) error {
	return r.db.WithContext(ctx).Create(deal).Error
}

// FindByID retrieves a deal by its ID, scoped to an organization
func (r *dealRepository) FindByID(ctx context.Context, organizationID, id uuid.UUID) (*entities.Deal, error) {
	var deal entities.Deal
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&deal).Error

	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// UpdateStage updates the pipeline stage of a deal
func (r *dealRepository) UpdateStage(ctx context.Context, organizationID, id uuid.UUID, stage entities.DealStage) error {
	return r.db.WithContext(ctx).
		Model(&entities.Deal{}).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Update("stage", stage).
		Error
}

// Delete soft deletes a deal
func (r *dealRepository) Delete(ctx context.Context, organizationID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Delete(&entities.Deal{}, id).Error
}

// List retrieves deals with filters and pagination
func (r *dealRepository) List(ctx context.Context, organizationID uuid.UUID, filters repositories.DealFilters) ([]*entities.Deal, int64, error) {
	var deals []*entities.Deal
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entities.Deal{}).
		Where("organization_id = ?", organizationID)

	// Apply filters
	if filters.Stage != nil {
		query = query.Where("stage = ?", *filters.Stage)
	}
	if filters.RiskLevel != nil {
		query = query.Where("last_risk_level = ?", *filters.RiskLevel)
	}
	if filters.OwnerID != nil {
		query = query.Where("owner_id = ?", *filters.OwnerID)
	}
	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ?", searchPattern)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply sorting
	sortBy := "created_at"
	if filters.SortBy != "" {
		sortBy = filters.SortBy
	}
	sortOrder := "DESC"
	if filters.SortOrder != "" {
		sortOrder = filters.SortOrder
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	// Apply pagination
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&deals).Error
	return deals, total, err
}

// UpdateRiskSnapshot writes the denormalized risk fields after an assessment
func (r *dealRepository) UpdateRiskSnapshot(ctx context.Context, id uuid.UUID, score int, level entities.RiskLevel, assessedAt, nextReviewAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.Deal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_risk_score":  score,
			"last_risk_level":  level,
			"last_assessed_at": assessedAt,
			"next_review_at":   nextReviewAt,
		}).
		Error
}

// FindDueForReview retrieves open deals whose next review date has passed
func (r *dealRepository) FindDueForReview(ctx context.Context, now time.Time, limit int) ([]*entities.Deal, error) {
	if limit == 0 {
		limit = 50
	}
	var deals []*entities.Deal
	err := r.db.WithContext(ctx).
		Where("stage NOT IN ?", []entities.DealStage{entities.DealStageClosedWon, entities.DealStageClosedLost}).
		Where("next_review_at IS NOT NULL AND next_review_at <= ?", now).
		Order("next_review_at ASC").
		Limit(limit).
		Find(&deals).Error
	return deals, err
}
