package deal

import (
	"context"

	"github.com/google/uuid"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/domain/repositories"
)

// Service defines the interface for deal use case
type Service interface {
	// CreateDeal creates a new deal
	CreateDeal(ctx context.Context, input CreateDealInput) (*entities.Deal, error)

	// GetDeal retrieves a deal by ID, scoped to an organization
	GetDeal(ctx context.Context, organizationID, dealID uuid.UUID) (*entities.Deal, error)

	// ListDeals retrieves deals with filters and pagination
	ListDeals(ctx context.Context, organizationID uuid.UUID, filters repositories.DealFilters) ([]*entities.Deal, int64, error)

	// UpdateStage moves a deal to a new pipeline stage
	UpdateStage(ctx context.Context, organizationID, dealID uuid.UUID, stage entities.DealStage) (*entities.Deal, error)

	// DeleteDeal soft deletes a deal
	DeleteDeal(ctx context.Context, organizationID, dealID uuid.UUID) error

	// RecordInteraction attaches a meeting to an open deal and schedules
	// a risk reassessment
	RecordInteraction(ctx context.Context, input RecordInteractionInput) (*entities.Interaction, error)

	// IngestWebhookInteraction records an interaction pushed by the
	// meeting platform, deduplicated by external reference
	IngestWebhookInteraction(ctx context.Context, input RecordInteractionInput) (*entities.Interaction, error)

	// ListInteractions retrieves a page of a deal's interactions
	ListInteractions(ctx context.Context, organizationID, dealID uuid.UUID, limit, offset int) ([]*entities.Interaction, int64, error)
}

// Assessor is the slice of the risk service the deal service drives when
// deal data changes
type Assessor interface {
	InvalidateAssessment(ctx context.Context, dealID uuid.UUID)
	EnqueueAssessment(ctx context.Context, dealID, organizationID uuid.UUID, trigger entities.AssessmentTrigger) error
}

// Ensure DealService implements Service interface
var _ Service = (*DealService)(nil)
