package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/domain/repositories"
)

// interactionRepository implements the InteractionRepository interface
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *gorm.DB) repositories.InteractionRepository {
	return &interactionRepository{db: db}
}

// Create persists a new interaction with its participants and summary.
// GORM cascades the associations in one transaction.
func (r *interactionRepository) Create(ctx context.Context, interaction *entities.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

// FindByExternalRef retrieves an interaction by its source system reference.
// Returns nil without error when no interaction matches.
func (r *interactionRepository) FindByExternalRef(ctx context.Context, externalRef string) (*entities.Interaction, error) {
	var interaction entities.Interaction
	err := r.db.WithContext(ctx).
		Where("external_ref = ?", externalRef).
		First(&interaction).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &interaction, nil
}

// FetchHistory retrieves the full interaction history for a deal with
// participants and summaries preloaded, most recent first
func (r *interactionRepository) FetchHistory(ctx context.Context, dealID uuid.UUID) ([]*entities.Interaction, error) {
	var interactions []*entities.Interaction
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Preload("Summaries").
		Where("deal_id = ?", dealID).
		Order("scheduled_at DESC NULLS LAST").
		Find(&interactions).Error

	if err != nil {
		return nil, err
	}
	return interactions, nil
}

// ListByDeal retrieves a page of interactions for a deal, most recent first
func (r *interactionRepository) ListByDeal(ctx context.Context, dealID uuid.UUID, limit, offset int) ([]*entities.Interaction, int64, error) {
	var interactions []*entities.Interaction
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entities.Interaction{}).
		Where("deal_id = ?", dealID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.
		Preload("Participants").
		Preload("Summaries").
		Order("scheduled_at DESC NULLS LAST")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&interactions).Error
	return interactions, total, err
}

// CountByDeal returns the number of interactions recorded for a deal
func (r *interactionRepository) CountByDeal(ctx context.Context, dealID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Interaction{}).
		Where("deal_id = ?", dealID).
		Count(&count).Error
	return count, err
}
