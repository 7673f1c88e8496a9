package deal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/domain/repositories"
	"github.com/dealinsight-dev/deal-insight/internal/usecase/deal"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
)

type stubDealRepo struct {
	deals        map[uuid.UUID]*entities.Deal
	stageUpdates []entities.DealStage
	deleted      []uuid.UUID
}

func (s *stubDealRepo) Create(_ context.Context, d *entities.Deal) error {
	d.ID = uuid.New()
	s.deals[d.ID] = d
	return nil
}

func (s *stubDealRepo) FindByID(_ context.Context, organizationID, id uuid.UUID) (*entities.Deal, error) {
	d, ok := s.deals[id]
	if !ok || d.OrganizationID != organizationID {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (s *stubDealRepo) UpdateStage(_ context.Context, _, id uuid.UUID, stage entities.DealStage) error {
	s.stageUpdates = append(s.stageUpdates, stage)
	if d, ok := s.deals[id]; ok {
		d.Stage = stage
	}
	return nil
}

func (s *stubDealRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.deals, id)
	return nil
}

func (s *stubDealRepo) List(_ context.Context, organizationID uuid.UUID, _ repositories.DealFilters) ([]*entities.Deal, int64, error) {
	deals := make([]*entities.Deal, 0)
	for _, d := range s.deals {
		if d.OrganizationID == organizationID {
			deals = append(deals, d)
		}
	}
	return deals, int64(len(deals)), nil
}

func (s *stubDealRepo) UpdateRiskSnapshot(_ context.Context, _ uuid.UUID, _ int, _ entities.RiskLevel, _, _ time.Time) error {
	return nil
}

func (s *stubDealRepo) FindDueForReview(_ context.Context, _ time.Time, _ int) ([]*entities.Deal, error) {
	return nil, nil
}

type stubInteractionRepo struct {
	created   []*entities.Interaction
	createErr error
}

func (s *stubInteractionRepo) Create(_ context.Context, interaction *entities.Interaction) error {
	if s.createErr != nil {
		return s.createErr
	}
	interaction.ID = uuid.New()
	s.created = append(s.created, interaction)
	return nil
}

func (s *stubInteractionRepo) FindByExternalRef(_ context.Context, ref string) (*entities.Interaction, error) {
	for _, interaction := range s.created {
		if interaction.ExternalRef != nil && *interaction.ExternalRef == ref {
			return interaction, nil
		}
	}
	return nil, nil
}

func (s *stubInteractionRepo) FetchHistory(_ context.Context, _ uuid.UUID) ([]*entities.Interaction, error) {
	return s.created, nil
}

func (s *stubInteractionRepo) ListByDeal(_ context.Context, _ uuid.UUID, _, _ int) ([]*entities.Interaction, int64, error) {
	return s.created, int64(len(s.created)), nil
}

func (s *stubInteractionRepo) CountByDeal(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(s.created)), nil
}

type stubAssessor struct {
	invalidated []uuid.UUID
	enqueued    []entities.AssessmentTrigger
	enqueueErr  error
}

func (s *stubAssessor) InvalidateAssessment(_ context.Context, dealID uuid.UUID) {
	s.invalidated = append(s.invalidated, dealID)
}

func (s *stubAssessor) EnqueueAssessment(_ context.Context, _, _ uuid.UUID, trigger entities.AssessmentTrigger) error {
	if s.enqueueErr != nil {
		return s.enqueueErr
	}
	s.enqueued = append(s.enqueued, trigger)
	return nil
}

type dealFixture struct {
	deal            *entities.Deal
	dealRepo        *stubDealRepo
	interactionRepo *stubInteractionRepo
	assessor        *stubAssessor
	service         *deal.DealService
}

func newDealFixture(t *testing.T, stage entities.DealStage) *dealFixture {
	t.Helper()

	d := &entities.Deal{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Acme expansion",
		Stage:          stage,
	}

	dealRepo := &stubDealRepo{deals: map[uuid.UUID]*entities.Deal{d.ID: d}}
	interactionRepo := &stubInteractionRepo{}
	assessor := &stubAssessor{}

	return &dealFixture{
		deal:            d,
		dealRepo:        dealRepo,
		interactionRepo: interactionRepo,
		assessor:        assessor,
		service:         deal.NewDealService(dealRepo, interactionRepo, assessor, zap.NewNop()),
	}
}

func strPtr(s string) *string { return &s }

func recordInput(f *dealFixture) deal.RecordInteractionInput {
	scheduledAt := time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)
	return deal.RecordInteractionInput{
		OrganizationID:  f.deal.OrganizationID,
		DealID:          f.deal.ID,
		Title:           "Discovery call",
		ScheduledAt:     &scheduledAt,
		DurationSeconds: 1800,
		Participants: []deal.ParticipantInput{
			{Name: "Dana Torres", Email: strPtr("dana@acme.com"), Role: strPtr("CFO"), TalkTimeSeconds: 900},
			{Name: "Sam Okafor", TalkTimeSeconds: 400},
		},
		Summary: &deal.SummaryInput{
			Overview:    "Walked through the integration plan.",
			KeyPoints:   []string{"Security review next"},
			ActionItems: []string{"Share SOC2 report"},
		},
	}
}

func TestCreateDealDefaultsToProspecting(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	created, err := f.service.CreateDeal(context.Background(), deal.CreateDealInput{
		OrganizationID: f.deal.OrganizationID,
		Name:           "  New logo  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "New logo", created.Name)
	assert.Equal(t, entities.DealStageProspecting, created.Stage)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateDealValidation(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)
	ctx := context.Background()

	_, err := f.service.CreateDeal(ctx, deal.CreateDealInput{OrganizationID: f.deal.OrganizationID})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	negative := -100.0
	_, err = f.service.CreateDeal(ctx, deal.CreateDealInput{
		OrganizationID: f.deal.OrganizationID,
		Name:           "Bad amount",
		Amount:         &negative,
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	_, err = f.service.CreateDeal(ctx, deal.CreateDealInput{
		OrganizationID: f.deal.OrganizationID,
		Name:           "Bad stage",
		Stage:          entities.DealStage("daydreaming"),
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidDealStage)
}

func TestGetDealNotFound(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	_, err := f.service.GetDeal(context.Background(), f.deal.OrganizationID, uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrDealNotFound)

	// A deal from another organization is invisible
	_, err = f.service.GetDeal(context.Background(), uuid.New(), f.deal.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrDealNotFound)
}

func TestUpdateStageInvalidatesAssessment(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	updated, err := f.service.UpdateStage(context.Background(), f.deal.OrganizationID, f.deal.ID, entities.DealStageNegotiation)

	require.NoError(t, err)
	assert.Equal(t, entities.DealStageNegotiation, updated.Stage)
	assert.Equal(t, []entities.DealStage{entities.DealStageNegotiation}, f.dealRepo.stageUpdates)
	assert.Equal(t, []uuid.UUID{f.deal.ID}, f.assessor.invalidated)
}

func TestUpdateStageNoOpOnSameStage(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	updated, err := f.service.UpdateStage(context.Background(), f.deal.OrganizationID, f.deal.ID, entities.DealStageDiscovery)

	require.NoError(t, err)
	assert.Equal(t, entities.DealStageDiscovery, updated.Stage)
	assert.Empty(t, f.dealRepo.stageUpdates)
	assert.Empty(t, f.assessor.invalidated)
}

func TestUpdateStageRejectsUnknownStage(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	_, err := f.service.UpdateStage(context.Background(), f.deal.OrganizationID, f.deal.ID, entities.DealStage("limbo"))

	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidDealStage)
}

func TestDeleteDealInvalidatesAssessment(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	require.NoError(t, f.service.DeleteDeal(context.Background(), f.deal.OrganizationID, f.deal.ID))

	assert.Equal(t, []uuid.UUID{f.deal.ID}, f.dealRepo.deleted)
	assert.Equal(t, []uuid.UUID{f.deal.ID}, f.assessor.invalidated)
}

func TestRecordInteraction(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	interaction, err := f.service.RecordInteraction(context.Background(), recordInput(f))
	require.NoError(t, err)

	assert.Equal(t, f.deal.ID, interaction.DealID)
	assert.Equal(t, "Discovery call", interaction.Title)
	require.Len(t, interaction.Participants, 2)
	assert.Equal(t, "Dana Torres", interaction.Participants[0].Name)
	require.Len(t, interaction.Summaries, 1)
	assert.Equal(t, []string{"Share SOC2 report"}, []string(interaction.Summaries[0].ActionItems))

	// Recording schedules a background reassessment
	assert.Equal(t, []uuid.UUID{f.deal.ID}, f.assessor.invalidated)
	assert.Equal(t, []entities.AssessmentTrigger{entities.AssessmentTriggerInteraction}, f.assessor.enqueued)
}

func TestRecordInteractionDropsNamelessParticipants(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	input := recordInput(f)
	input.Participants = append(input.Participants, deal.ParticipantInput{Name: "   "})

	interaction, err := f.service.RecordInteraction(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, interaction.Participants, 2)
}

func TestRecordInteractionClosedDeal(t *testing.T) {
	f := newDealFixture(t, entities.DealStageClosedWon)

	_, err := f.service.RecordInteraction(context.Background(), recordInput(f))

	assert.ErrorIs(t, err, usecaseErrors.ErrDealClosed)
	assert.Empty(t, f.interactionRepo.created)
	assert.Empty(t, f.assessor.invalidated)
}

func TestRecordInteractionToleratesEnqueueFailure(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)
	f.assessor.enqueueErr = errors.New("queue unavailable")

	interaction, err := f.service.RecordInteraction(context.Background(), recordInput(f))

	require.NoError(t, err)
	assert.NotNil(t, interaction)
	assert.Len(t, f.interactionRepo.created, 1)
}

func TestIngestWebhookInteraction(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	input := recordInput(f)
	input.ExternalRef = strPtr("meeting-platform:rec_123")

	first, err := f.service.IngestWebhookInteraction(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, f.interactionRepo.created, 1)

	// A redelivered event returns the original row, untouched
	duplicate, err := f.service.IngestWebhookInteraction(context.Background(), input)
	assert.ErrorIs(t, err, usecaseErrors.ErrDuplicateInteraction)
	assert.Equal(t, first.ID, duplicate.ID)
	assert.Len(t, f.interactionRepo.created, 1)
}

func TestIngestWebhookInteractionRequiresExternalRef(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	_, err := f.service.IngestWebhookInteraction(context.Background(), recordInput(f))

	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
	assert.Empty(t, f.interactionRepo.created)
}

func TestListInteractionsScopedToOrganization(t *testing.T) {
	f := newDealFixture(t, entities.DealStageDiscovery)

	_, err := f.service.RecordInteraction(context.Background(), recordInput(f))
	require.NoError(t, err)

	interactions, total, err := f.service.ListInteractions(context.Background(), f.deal.OrganizationID, f.deal.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, interactions, 1)

	_, _, err = f.service.ListInteractions(context.Background(), uuid.New(), f.deal.ID, 20, 0)
	assert.ErrorIs(t, err, usecaseErrors.ErrDealNotFound)
}
