package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

// DealRepository defines the interface for deal data access
type DealRepository interface {
	// Create creates a new deal
	Create(ctx context.Context, deal *entities.Deal) error

	// FindByID retrieves a deal by its ID, scoped to an organization
	FindByID(ctx context.Context, organizationID, id uuid.UUID) (*entities.Deal, error)

	// UpdateStage updates the pipeline stage of a deal
	UpdateStage(ctx context.Context, organizationID, id uuid.UUID, stage entities.DealStage) error

	// Delete soft deletes a deal
	Delete(ctx context.Context, organizationID, id uuid.UUID) error

	// List retrieves deals with filters and pagination
	List(ctx context.Context, organizationID uuid.UUID, filters DealFilters) ([]*entities.Deal, int64, error)

	// UpdateRiskSnapshot writes the denormalized risk fields after an assessment
	UpdateRiskSnapshot(ctx context.Context, id uuid.UUID, score int, level entities.RiskLevel, assessedAt, nextReviewAt time.Time) error

	// FindDueForReview retrieves open deals whose next review date has passed
	FindDueForReview(ctx context.Context, now time.Time, limit int) ([]*entities.Deal, error)
}

// DealFilters represents filter options for listing deals
type DealFilters struct {
	Stage     *entities.DealStage
	RiskLevel *entities.RiskLevel
	OwnerID   *uuid.UUID
	Search    string // Search in deal name
	Limit     int
	Offset    int
	SortBy    string // "created_at", "amount", "last_risk_score", "name"
	SortOrder string // "asc", "desc"
}
