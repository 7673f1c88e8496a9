package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

// InteractionRepository defines the interface for interaction data access
type InteractionRepository interface {
	// Create persists a new interaction with its participants and summary
	Create(ctx context.Context, interaction *entities.Interaction) error

	// FindByExternalRef retrieves an interaction by its source system reference.
	// Returns nil without error when no interaction matches.
	FindByExternalRef(ctx context.Context, externalRef string) (*entities.Interaction, error)

	// FetchHistory retrieves the full interaction history for a deal with
	// participants and summaries preloaded, most recent first
	FetchHistory(ctx context.Context, dealID uuid.UUID) ([]*entities.Interaction, error)

	// ListByDeal retrieves a page of interactions for a deal, most recent first
	ListByDeal(ctx context.Context, dealID uuid.UUID, limit, offset int) ([]*entities.Interaction, int64, error)

	// CountByDeal returns the number of interactions recorded for a deal
	CountByDeal(ctx context.Context, dealID uuid.UUID) (int64, error)
}
