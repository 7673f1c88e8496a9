package deal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/domain/repositories"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
)

// DealService handles deal and interaction business logic
type DealService struct {
	dealRepo        repositories.DealRepository
	interactionRepo repositories.InteractionRepository
	assessor        Assessor
	logger          *zap.Logger
}

// NewDealService creates a new deal service
func NewDealService(
	dealRepo repositories.DealRepository,
	interactionRepo repositories.InteractionRepository,
	assessor Assessor,
	logger *zap.Logger,
) *DealService {
	return &DealService{
		dealRepo:        dealRepo,
		interactionRepo: interactionRepo,
		assessor:        assessor,
		logger:          logger,
	}
}

// CreateDealInput represents input for creating a deal
type CreateDealInput struct {
	OrganizationID uuid.UUID
	Name           string
	Stage          entities.DealStage
	OwnerID        *uuid.UUID
	Amount         *float64
	Currency       *string
}

// CreateDeal creates a new deal
func (s *DealService) CreateDeal(ctx context.Context, input CreateDealInput) (*entities.Deal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: deal name is required", usecaseErrors.ErrInvalidInput)
	}
	if input.Amount != nil && *input.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", usecaseErrors.ErrInvalidInput)
	}

	// New deals start at prospecting unless a valid stage was given
	stage := input.Stage
	if stage == "" {
		stage = entities.DealStageProspecting
	}
	if !stage.IsValid() {
		return nil, usecaseErrors.ErrInvalidDealStage
	}

	deal := &entities.Deal{
		OrganizationID: input.OrganizationID,
		Name:           name,
		Stage:          stage,
		OwnerID:        input.OwnerID,
		Amount:         input.Amount,
		Currency:       input.Currency,
	}

	if err := s.dealRepo.Create(ctx, deal); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	return deal, nil
}

// GetDeal retrieves a deal by ID, scoped to an organization
func (s *DealService) GetDeal(ctx context.Context, organizationID, dealID uuid.UUID) (*entities.Deal, error) {
	return s.getDeal(ctx, organizationID, dealID)
}

// ListDeals retrieves deals with filters and pagination
func (s *DealService) ListDeals(ctx context.Context, organizationID uuid.UUID, filters repositories.DealFilters) ([]*entities.Deal, int64, error) {
	deals, total, err := s.dealRepo.List(ctx, organizationID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deals: %w", err)
	}
	return deals, total, nil
}

// UpdateStage moves a deal to a new pipeline stage
func (s *DealService) UpdateStage(ctx context.Context, organizationID, dealID uuid.UUID, stage entities.DealStage) (*entities.Deal, error) {
	if !stage.IsValid() {
		return nil, usecaseErrors.ErrInvalidDealStage
	}

	deal, err := s.getDeal(ctx, organizationID, dealID)
	if err != nil {
		return nil, err
	}

	if deal.Stage == stage {
		return deal, nil
	}

	if err := s.dealRepo.UpdateStage(ctx, organizationID, dealID, stage); err != nil {
		return nil, fmt.Errorf("failed to update deal stage: %w", err)
	}
	deal.Stage = stage

	// Stage feeds the recommendation rules, so the cached assessment no
	// longer reflects the deal
	s.assessor.InvalidateAssessment(ctx, dealID)

	return deal, nil
}

// DeleteDeal soft deletes a deal
func (s *DealService) DeleteDeal(ctx context.Context, organizationID, dealID uuid.UUID) error {
	if _, err := s.getDeal(ctx, organizationID, dealID); err != nil {
		return err
	}

	if err := s.dealRepo.Delete(ctx, organizationID, dealID); err != nil {
		return fmt.Errorf("failed to delete deal: %w", err)
	}

	s.assessor.InvalidateAssessment(ctx, dealID)

	return nil
}

// RecordInteractionInput represents input for recording an interaction
type RecordInteractionInput struct {
	OrganizationID  uuid.UUID
	DealID          uuid.UUID
	Title           string
	ExternalRef     *string
	ScheduledAt     *time.Time
	DurationSeconds int
	EngagementScore *float64
	Participants    []ParticipantInput
	Summary         *SummaryInput
}

// ParticipantInput represents one attendee of a recorded interaction
type ParticipantInput struct {
	Name            string
	Email           *string
	Role            *string
	TalkTimeSeconds int
}

// SummaryInput represents the AI summary attached to an interaction
type SummaryInput struct {
	Overview    string
	KeyPoints   []string
	ActionItems []string
	Decisions   []string
}

// RecordInteraction attaches a meeting to an open deal and schedules a
// risk reassessment
func (s *DealService) RecordInteraction(ctx context.Context, input RecordInteractionInput) (*entities.Interaction, error) {
	deal, err := s.getDeal(ctx, input.OrganizationID, input.DealID)
	if err != nil {
		return nil, err
	}

	if !deal.IsOpen() {
		return nil, usecaseErrors.ErrDealClosed
	}

	interaction := buildInteraction(deal.ID, input)
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, fmt.Errorf("failed to record interaction: %w", err)
	}

	s.scheduleReassessment(ctx, deal)

	s.logger.Info("✅ Interaction recorded",
		zap.String("deal_id", deal.ID.String()),
		zap.String("interaction_id", interaction.ID.String()),
		zap.Int("participants", len(interaction.Participants)))

	return interaction, nil
}

// IngestWebhookInteraction records an interaction pushed by the meeting
// platform. The external reference deduplicates redelivered events: a
// known ref returns the existing interaction with the duplicate sentinel.
func (s *DealService) IngestWebhookInteraction(ctx context.Context, input RecordInteractionInput) (*entities.Interaction, error) {
	if input.ExternalRef == nil || strings.TrimSpace(*input.ExternalRef) == "" {
		return nil, fmt.Errorf("%w: external_ref is required", usecaseErrors.ErrInvalidInput)
	}

	existing, err := s.interactionRepo.FindByExternalRef(ctx, *input.ExternalRef)
	if err != nil {
		return nil, fmt.Errorf("failed to check external ref: %w", err)
	}
	if existing != nil {
		s.logger.Info("⏭️ Interaction already ingested, skipping",
			zap.String("external_ref", *input.ExternalRef),
			zap.String("interaction_id", existing.ID.String()))
		return existing, usecaseErrors.ErrDuplicateInteraction
	}

	return s.RecordInteraction(ctx, input)
}

// ListInteractions retrieves a page of a deal's interactions
func (s *DealService) ListInteractions(ctx context.Context, organizationID, dealID uuid.UUID, limit, offset int) ([]*entities.Interaction, int64, error) {
	if _, err := s.getDeal(ctx, organizationID, dealID); err != nil {
		return nil, 0, err
	}

	interactions, total, err := s.interactionRepo.ListByDeal(ctx, dealID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list interactions: %w", err)
	}
	return interactions, total, nil
}

// getDeal loads a deal scoped to its organization
func (s *DealService) getDeal(ctx context.Context, organizationID, dealID uuid.UUID) (*entities.Deal, error) {
	deal, err := s.dealRepo.FindByID(ctx, organizationID, dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	return deal, nil
}

// scheduleReassessment invalidates the cached assessment and enqueues a
// background recomputation. Enqueue failure is not fatal: the interaction
// is already committed and the review scheduler will catch the deal up.
func (s *DealService) scheduleReassessment(ctx context.Context, deal *entities.Deal) {
	s.assessor.InvalidateAssessment(ctx, deal.ID)

	if err := s.assessor.EnqueueAssessment(ctx, deal.ID, deal.OrganizationID, entities.AssessmentTriggerInteraction); err != nil {
		s.logger.Warn("⚠️ Failed to enqueue reassessment",
			zap.String("deal_id", deal.ID.String()),
			zap.Error(err))
	}
}

// buildInteraction assembles the interaction entity from the input,
// dropping nameless participants
func buildInteraction(dealID uuid.UUID, input RecordInteractionInput) *entities.Interaction {
	interaction := &entities.Interaction{
		DealID:          dealID,
		Title:           strings.TrimSpace(input.Title),
		ExternalRef:     input.ExternalRef,
		ScheduledAt:     input.ScheduledAt,
		DurationSeconds: input.DurationSeconds,
		EngagementScore: input.EngagementScore,
	}

	for _, p := range input.Participants {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		interaction.Participants = append(interaction.Participants, entities.InteractionParticipant{
			Name:            name,
			Email:           p.Email,
			Role:            p.Role,
			TalkTimeSeconds: p.TalkTimeSeconds,
		})
	}

	if input.Summary != nil {
		interaction.Summaries = append(interaction.Summaries, entities.InteractionSummary{
			Overview:    input.Summary.Overview,
			KeyPoints:   input.Summary.KeyPoints,
			ActionItems: input.Summary.ActionItems,
			Decisions:   input.Summary.Decisions,
		})
	}

	return interaction
}
