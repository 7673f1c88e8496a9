package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dealdto "github.com/dealinsight-dev/deal-insight/internal/adapter/dto/deal"
	"github.com/dealinsight-dev/deal-insight/internal/adapter/handler"
	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/domain/repositories"
	httpmw "github.com/dealinsight-dev/deal-insight/internal/infrastructure/http/middleware"
	dealUsecase "github.com/dealinsight-dev/deal-insight/internal/usecase/deal"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
	pkgvalidator "github.com/dealinsight-dev/deal-insight/pkg/validator"
)

var handlerTestNow = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

// newEchoContext builds an echo context backed by a recorder, with the
// request validator registered the way main.go does
func newEchoContext(method, target string, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = pkgvalidator.New()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate mimics the service auth middleware by putting the
// organization into the echo context
func authenticate(c echo.Context, organizationID uuid.UUID) {
	c.Set(httpmw.OrganizationIDKey, organizationID)
}

// stubDealService is a configurable deal usecase for handler tests
type stubDealService struct {
	deal         *entities.Deal
	deals        []*entities.Deal
	total        int64
	interaction  *entities.Interaction
	interactions []*entities.Interaction
	err          error

	createInput  *dealUsecase.CreateDealInput
	listOrg      uuid.UUID
	listFilters  *repositories.DealFilters
	stageUpdates []entities.DealStage
	deleted      []uuid.UUID
	recordInput  *dealUsecase.RecordInteractionInput
	ingestInput  *dealUsecase.RecordInteractionInput
	listLimit    int
	listOffset   int
}

var _ dealUsecase.Service = (*stubDealService)(nil)

func (s *stubDealService) CreateDeal(_ context.Context, input dealUsecase.CreateDealInput) (*entities.Deal, error) {
	s.createInput = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.deal, nil
}

func (s *stubDealService) GetDeal(_ context.Context, _ uuid.UUID, _ uuid.UUID) (*entities.Deal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.deal, nil
}

func (s *stubDealService) ListDeals(_ context.Context, organizationID uuid.UUID, filters repositories.DealFilters) ([]*entities.Deal, int64, error) {
	s.listOrg = organizationID
	s.listFilters = &filters
	if s.err != nil {
		return nil, 0, s.err
	}
	return s.deals, s.total, nil
}

func (s *stubDealService) UpdateStage(_ context.Context, _ uuid.UUID, _ uuid.UUID, stage entities.DealStage) (*entities.Deal, error) {
	s.stageUpdates = append(s.stageUpdates, stage)
	if s.err != nil {
		return nil, s.err
	}
	return s.deal, nil
}

func (s *stubDealService) DeleteDeal(_ context.Context, _ uuid.UUID, dealID uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, dealID)
	return nil
}

func (s *stubDealService) RecordInteraction(_ context.Context, input dealUsecase.RecordInteractionInput) (*entities.Interaction, error) {
	s.recordInput = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.interaction, nil
}

func (s *stubDealService) IngestWebhookInteraction(_ context.Context, input dealUsecase.RecordInteractionInput) (*entities.Interaction, error) {
	s.ingestInput = &input
	if s.err != nil {
		return s.interaction, s.err
	}
	return s.interaction, nil
}

func (s *stubDealService) ListInteractions(_ context.Context, _ uuid.UUID, _ uuid.UUID, limit, offset int) ([]*entities.Interaction, int64, error) {
	s.listLimit = limit
	s.listOffset = offset
	if s.err != nil {
		return nil, 0, s.err
	}
	return s.interactions, s.total, nil
}

func dealEntity(organizationID uuid.UUID) *entities.Deal {
	amount := 125000.0
	currency := "USD"
	return &entities.Deal{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		Name:           "Acme renewal",
		Stage:          entities.DealStageDiscovery,
		Amount:         &amount,
		Currency:       &currency,
		CreatedAt:      handlerTestNow,
		UpdatedAt:      handlerTestNow,
	}
}

func interactionEntity(dealID uuid.UUID) *entities.Interaction {
	scheduledAt := handlerTestNow.Add(-24 * time.Hour)
	return &entities.Interaction{
		ID:          uuid.New(),
		DealID:      dealID,
		Title:       "Discovery call",
		ScheduledAt: &scheduledAt,
		Participants: []entities.InteractionParticipant{
			{ID: uuid.New(), Name: "Dana Torres"},
		},
		Summaries: []entities.InteractionSummary{
			{ID: uuid.New(), Overview: "Walked through the platform.", ActionItems: []string{"Share SOC2 report"}},
		},
		CreatedAt: handlerTestNow,
	}
}

func TestDealHandler_CreateDeal(t *testing.T) {
	organizationID := uuid.New()
	svc := &stubDealService{deal: dealEntity(organizationID)}
	h := handler.NewDealHandler(svc, zap.NewNop())

	body, err := json.Marshal(map[string]interface{}{
		"name":     "Acme renewal",
		"stage":    "discovery",
		"amount":   125000.0,
		"currency": "USD",
	})
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodPost, "/v1/deals", body)
	authenticate(c, organizationID)

	require.NoError(t, h.CreateDeal(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dealdto.DealResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, svc.deal.ID.String(), resp.ID)
	assert.Equal(t, "Acme renewal", resp.Name)
	assert.Equal(t, "discovery", resp.Stage)

	require.NotNil(t, svc.createInput)
	assert.Equal(t, organizationID, svc.createInput.OrganizationID)
	assert.Equal(t, entities.DealStageDiscovery, svc.createInput.Stage)
	require.NotNil(t, svc.createInput.Amount)
	assert.Equal(t, 125000.0, *svc.createInput.Amount)
}

func TestDealHandler_CreateDealRejectsUnknownStage(t *testing.T) {
	svc := &stubDealService{}
	h := handler.NewDealHandler(svc, zap.NewNop())

	body, err := json.Marshal(map[string]interface{}{
		"name":  "Acme renewal",
		"stage": "daydreaming",
	})
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodPost, "/v1/deals", body)
	authenticate(c, uuid.New())

	require.NoError(t, h.CreateDeal(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
	assert.Nil(t, svc.createInput)
}

func TestDealHandler_CreateDealRequiresAuthentication(t *testing.T) {
	svc := &stubDealService{}
	h := handler.NewDealHandler(svc, zap.NewNop())

	body, err := json.Marshal(map[string]interface{}{"name": "Acme renewal"})
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodPost, "/v1/deals", body)

	require.NoError(t, h.CreateDeal(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.createInput)
}

func TestDealHandler_CreateDealMapsInvalidInput(t *testing.T) {
	svc := &stubDealService{err: usecaseErrors.ErrInvalidInput}
	h := handler.NewDealHandler(svc, zap.NewNop())

	body, err := json.Marshal(map[string]interface{}{"name": "   "})
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodPost, "/v1/deals", body)
	authenticate(c, uuid.New())

	require.NoError(t, h.CreateDeal(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_input")
}

func TestDealHandler_GetDeal(t *testing.T) {
	organizationID := uuid.New()
	svc := &stubDealService{deal: dealEntity(organizationID)}
	h := handler.NewDealHandler(svc, zap.NewNop())

	c, rec := newEchoContext(http.MethodGet, "/v1/deals/"+svc.deal.ID.String(), nil)
	c.SetPath("/v1/deals/:id")
	c.SetParamNames("id")
	c.SetParamValues(svc.deal.ID.String())
	authenticate(c, organizationID)

	require.NoError(t, h.GetDeal(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dealdto.DealResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, svc.deal.ID.String(), resp.ID)
	require.NotNil(t, resp.Currency)
	assert.Equal(t, "USD", *resp.Currency)
}

func TestDealHandler_GetDealNotFound(t *testing.T) {
	svc := &stubDealService{err: usecaseErrors.ErrDealNotFound}
	h := handler.NewDealHandler(svc, zap.NewNop())

	dealID := uuid.New()
	c, rec := newEchoContext(http.MethodGet, "/v1/deals/"+dealID.String(), nil)
	c.SetPath("/v1/deals/:id")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, uuid.New())

	require.NoError(t, h.GetDeal(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "deal_not_found")
}

func TestDealHandler_GetDealRejectsMalformedID(t *testing.T) {
	svc := &stubDealService{}
	h := handler.NewDealHandler(svc, zap.NewNop())

	c, rec := newEchoContext(http.MethodGet, "/v1/deals/not-a-uuid", nil)
	c.SetPath("/v1/deals/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	authenticate(c, uuid.New())

	require.NoError(t, h.GetDeal(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_deal_id")
}

func TestDealHandler_ListDealsAppliesFiltersAndPagination(t *testing.T) {
	organizationID := uuid.New()
	svc := &stubDealService{
		deals: []*entities.Deal{dealEntity(organizationID), dealEntity(organizationID)},
		total: 42,
	}
	h := handler.NewDealHandler(svc, zap.NewNop())

	c, rec := newEchoContext(http.MethodGet, "/v1/deals?page=3&page_size=10&stage=discovery&risk_level=high&search=acme", nil)
	authenticate(c, organizationID)

	require.NoError(t, h.ListDeals(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.listFilters)
	assert.Equal(t, organizationID, svc.listOrg)
	require.NotNil(t, svc.listFilters.Stage)
	assert.Equal(t, entities.DealStageDiscovery, *svc.listFilters.Stage)
	require.NotNil(t, svc.listFilters.RiskLevel)
	assert.Equal(t, entities.RiskLevelHigh, *svc.listFilters.RiskLevel)
	assert.Equal(t, "acme", svc.listFilters.Search)
	assert.Equal(t, 10, svc.listFilters.Limit)
	assert.Equal(t, 20, svc.listFilters.Offset)

	var resp dealdto.DealListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Deals, 2)
	assert.Equal(t, int64(42), resp.Total)
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Equal(t, 5, resp.TotalPages)
}

func TestDealHandler_ListDealsDefaultsPagination(t *testing.T) {
	organizationID := uuid.New()
	svc := &stubDealService{deals: nil, total: 0}
	h := handler.NewDealHandler(svc, zap.NewNop())

	c, rec := newEchoContext(http.MethodGet, "/v1/deals", nil)
	authenticate(c, organizationID)

	require.NoError(t, h.ListDeals(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.listFilters)
	assert.Equal(t, 20, svc.listFilters.Limit)
	assert.Equal(t, 0, svc.listFilters.Offset)
}

func TestDealHandler_UpdateStage(t *testing.T) {
	organizationID := uuid.New()
	updated := dealEntity(organizationID)
	updated.Stage = entities.DealStageNegotiation
	svc := &stubDealService{deal: updated}
	h := handler.NewDealHandler(svc, zap.NewNop())

	body, err := json.Marshal(map[string]interface{}{"stage": "negotiation"})
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodPatch, "/v1/deals/"+updated.ID.String()+"/stage", body)
	c.SetPath("/v1/deals/:id/stage")
	c.SetParamNames("id")
	c.SetParamValues(updated.ID.String())
	authenticate(c, organizationID)

	require.NoError(t, h.UpdateStage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.stageUpdates, 1)
	assert.Equal(t, entities.DealStageNegotiation, svc.stageUpdates[0])

	var resp dealdto.DealResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "negotiation", resp.Stage)
}

func TestDealHandler_UpdateStageRejectsUnknownStage(t *testing.T) {
	svc := &stubDealService{}
	h := handler.NewDealHandler(svc, zap.NewNop())

	dealID := uuid.New()
	body, err := json.Marshal(map[string]interface{}{"stage": "daydreaming"})
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodPatch, "/v1/deals/"+dealID.String()+"/stage", body)
	c.SetPath("/v1/deals/:id/stage")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, uuid.New())

	require.NoError(t, h.UpdateStage(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
	assert.Empty(t, svc.stageUpdates)
}

func TestDealHandler_DeleteDeal(t *testing.T) {
	organizationID := uuid.New()
	svc := &stubDealService{}
	h := handler.NewDealHandler(svc, zap.NewNop())

	dealID := uuid.New()
	c, rec := newEchoContext(http.MethodDelete, "/v1/deals/"+dealID.String(), nil)
	c.SetPath("/v1/deals/:id")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, organizationID)

	require.NoError(t, h.DeleteDeal(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uuid.UUID{dealID}, svc.deleted)
}

func TestDealHandler_RecordInteraction(t *testing.T) {
	organizationID := uuid.New()
	dealID := uuid.New()
	svc := &stubDealService{interaction: interactionEntity(dealID)}
	h := handler.NewDealHandler(svc, zap.NewNop())

	body, err := json.Marshal(map[string]interface{}{
		"title":            "Discovery call",
		"duration_seconds": 1800,
		"engagement_score": 72.5,
		"participants": []map[string]interface{}{
			{"name": "Dana Torres", "email": "dana@acme.test"},
			{"name": "Sam Okafor"},
		},
		"summary": map[string]interface{}{
			"overview":     "Walked through the platform.",
			"action_items": []string{"Share SOC2 report"},
		},
	})
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodPost, "/v1/deals/"+dealID.String()+"/interactions", body)
	c.SetPath("/v1/deals/:id/interactions")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, organizationID)

	require.NoError(t, h.RecordInteraction(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, svc.recordInput)
	assert.Equal(t, organizationID, svc.recordInput.OrganizationID)
	assert.Equal(t, dealID, svc.recordInput.DealID)
	assert.Equal(t, "Discovery call", svc.recordInput.Title)
	require.Len(t, svc.recordInput.Participants, 2)
	require.NotNil(t, svc.recordInput.Participants[0].Email)
	assert.Equal(t, "dana@acme.test", *svc.recordInput.Participants[0].Email)
	require.NotNil(t, svc.recordInput.Summary)
	assert.Equal(t, []string{"Share SOC2 report"}, svc.recordInput.Summary.ActionItems)

	var resp dealdto.InteractionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, svc.interaction.ID.String(), resp.ID)
	require.Len(t, resp.Summaries, 1)
	assert.Equal(t, []string{"Share SOC2 report"}, resp.Summaries[0].ActionItems)
}

func TestDealHandler_RecordInteractionOnClosedDeal(t *testing.T) {
	svc := &stubDealService{err: usecaseErrors.ErrDealClosed}
	h := handler.NewDealHandler(svc, zap.NewNop())

	dealID := uuid.New()
	body, err := json.Marshal(map[string]interface{}{"title": "Late follow-up"})
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodPost, "/v1/deals/"+dealID.String()+"/interactions", body)
	c.SetPath("/v1/deals/:id/interactions")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, uuid.New())

	require.NoError(t, h.RecordInteraction(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "deal_closed")
}

func TestDealHandler_RecordInteractionRequiresTitle(t *testing.T) {
	svc := &stubDealService{}
	h := handler.NewDealHandler(svc, zap.NewNop())

	dealID := uuid.New()
	body, err := json.Marshal(map[string]interface{}{"duration_seconds": 600})
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodPost, "/v1/deals/"+dealID.String()+"/interactions", body)
	c.SetPath("/v1/deals/:id/interactions")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, uuid.New())

	require.NoError(t, h.RecordInteraction(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
	assert.Nil(t, svc.recordInput)
}

func TestDealHandler_ListInteractions(t *testing.T) {
	organizationID := uuid.New()
	dealID := uuid.New()
	svc := &stubDealService{
		interactions: []*entities.Interaction{interactionEntity(dealID)},
		total:        7,
	}
	h := handler.NewDealHandler(svc, zap.NewNop())

	c, rec := newEchoContext(http.MethodGet, "/v1/deals/"+dealID.String()+"/interactions?page=2&page_size=3", nil)
	c.SetPath("/v1/deals/:id/interactions")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, organizationID)

	require.NoError(t, h.ListInteractions(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.listLimit)
	assert.Equal(t, 3, svc.listOffset)

	var resp dealdto.InteractionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Interactions, 1)
	assert.Equal(t, int64(7), resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
}
