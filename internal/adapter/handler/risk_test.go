package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	riskdto "github.com/dealinsight-dev/deal-insight/internal/adapter/dto/risk"
	"github.com/dealinsight-dev/deal-insight/internal/adapter/handler"
	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
	riskUsecase "github.com/dealinsight-dev/deal-insight/internal/usecase/risk"
)

// stubRiskService is a configurable risk usecase for handler tests
type stubRiskService struct {
	assessment *entities.DealRiskAssessment
	history    []*entities.DealRiskAssessment
	exportURL  string
	err        error

	assessed     []uuid.UUID
	refreshed    []uuid.UUID
	invalidated  []uuid.UUID
	historyLimit int
	exported     []uuid.UUID
}

var _ riskUsecase.Service = (*stubRiskService)(nil)

func (s *stubRiskService) AssessDealRisk(_ context.Context, dealID, _ uuid.UUID) (*entities.DealRiskAssessment, error) {
	s.assessed = append(s.assessed, dealID)
	if s.err != nil {
		return nil, s.err
	}
	return s.assessment, nil
}

func (s *stubRiskService) RefreshAssessment(_ context.Context, dealID, _ uuid.UUID) (*entities.DealRiskAssessment, error) {
	s.refreshed = append(s.refreshed, dealID)
	if s.err != nil {
		return nil, s.err
	}
	return s.assessment, nil
}

func (s *stubRiskService) InvalidateAssessment(_ context.Context, dealID uuid.UUID) {
	s.invalidated = append(s.invalidated, dealID)
}

func (s *stubRiskService) GetAssessmentHistory(_ context.Context, _, _ uuid.UUID, limit int) ([]*entities.DealRiskAssessment, error) {
	s.historyLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.history, nil
}

func (s *stubRiskService) ExportAssessment(_ context.Context, dealID, _ uuid.UUID) (string, error) {
	s.exported = append(s.exported, dealID)
	if s.err != nil {
		return "", s.err
	}
	return s.exportURL, nil
}

func (s *stubRiskService) EnqueueAssessment(_ context.Context, _, _ uuid.UUID, _ entities.AssessmentTrigger) error {
	return nil
}

func (s *stubRiskService) StartWorkerPool(_ context.Context, _ int) error { return nil }

func (s *stubRiskService) StopWorkerPool() error { return nil }

func assessmentEntity(dealID, organizationID uuid.UUID) *entities.DealRiskAssessment {
	return &entities.DealRiskAssessment{
		ID:             uuid.New(),
		DealID:         dealID,
		OrganizationID: organizationID,
		OverallRisk:    62,
		RiskLevel:      entities.RiskLevelHigh,
		Factors: entities.RiskFactors{
			MissingStakeholders: entities.MissingStakeholderFactor{
				Risk: 80,
				MissingRoles: []entities.MissingRole{
					{Role: entities.RoleEconomicBuyer, Importance: entities.RoleImportanceCritical},
				},
				CoverageScore: 20,
			},
			LowEngagement: entities.LowEngagementFactor{
				Risk:            55,
				EngagementScore: 45,
				Trend:           entities.TrendDecreasing,
			},
			CompetitivePresence: entities.CompetitiveFactor{
				Risk:         40,
				Keywords:     []string{"competitor"},
				MentionCount: 2,
			},
			EngagementDrop: entities.EngagementDropFactor{
				Risk:        60,
				Trend:       entities.TrendDecreasing,
				DropPercent: 35.0,
			},
			StaleDeal: entities.StaleDealFactor{
				Risk:                  30,
				DaysSinceLastActivity: 9,
			},
			MissingNextSteps: entities.MissingNextStepsFactor{
				Risk:                 100,
				HasRecentActionItems: false,
			},
			BudgetConcerns: entities.BudgetConcernsFactor{
				Risk:     50,
				Keywords: []string{"budget"},
			},
		},
		Recommendations: datatypes.JSONSlice[string]{
			"Identify and engage the economic buyer",
			"Schedule a follow-up to re-establish momentum",
		},
		GeneratedAt:    handlerTestNow,
		NextReviewDate: handlerTestNow.Add(3 * 24 * time.Hour),
	}
}

func TestRiskHandler_GetRisk(t *testing.T) {
	organizationID := uuid.New()
	dealID := uuid.New()
	svc := &stubRiskService{assessment: assessmentEntity(dealID, organizationID)}
	h := handler.NewRiskHandler(svc, zap.NewNop())

	c, rec := newEchoContext(http.MethodGet, "/v1/deals/"+dealID.String()+"/risk", nil)
	c.SetPath("/v1/deals/:id/risk")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, organizationID)

	require.NoError(t, h.GetRisk(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uuid.UUID{dealID}, svc.assessed)

	var resp riskdto.AssessmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dealID.String(), resp.DealID)
	assert.Equal(t, 62, resp.OverallRisk)
	assert.Equal(t, "high", resp.RiskLevel)
	assert.Equal(t, 80, resp.Factors.MissingStakeholders.Risk)
	require.Len(t, resp.Factors.MissingStakeholders.MissingRoles, 1)
	assert.Equal(t, "Economic Buyer", resp.Factors.MissingStakeholders.MissingRoles[0].Role)
	assert.Equal(t, "critical", resp.Factors.MissingStakeholders.MissingRoles[0].Importance)
	assert.Equal(t, "decreasing", resp.Factors.LowEngagement.Trend)
	assert.Equal(t, 35.0, resp.Factors.EngagementDrop.DropPercent)
	assert.Equal(t, 9, resp.Factors.StaleDeal.DaysSinceLastActivity)
	assert.False(t, resp.Factors.MissingNextSteps.HasRecentActionItems)
	assert.Len(t, resp.Recommendations, 2)
}

func TestRiskHandler_GetRiskDealNotFound(t *testing.T) {
	svc := &stubRiskService{err: usecaseErrors.ErrDealNotFound}
	h := handler.NewRiskHandler(svc, zap.NewNop())

	dealID := uuid.New()
	c, rec := newEchoContext(http.MethodGet, "/v1/deals/"+dealID.String()+"/risk", nil)
	c.SetPath("/v1/deals/:id/risk")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, uuid.New())

	require.NoError(t, h.GetRisk(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "deal_not_found")
}

func TestRiskHandler_GetRiskHistoryUnavailable(t *testing.T) {
	svc := &stubRiskService{err: usecaseErrors.ErrInteractionFetchFailed}
	h := handler.NewRiskHandler(svc, zap.NewNop())

	dealID := uuid.New()
	c, rec := newEchoContext(http.MethodGet, "/v1/deals/"+dealID.String()+"/risk", nil)
	c.SetPath("/v1/deals/:id/risk")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, uuid.New())

	require.NoError(t, h.GetRisk(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "history_unavailable")
}

func TestRiskHandler_GetRiskRejectsMalformedID(t *testing.T) {
	svc := &stubRiskService{}
	h := handler.NewRiskHandler(svc, zap.NewNop())

	c, rec := newEchoContext(http.MethodGet, "/v1/deals/not-a-uuid/risk", nil)
	c.SetPath("/v1/deals/:id/risk")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	authenticate(c, uuid.New())

	require.NoError(t, h.GetRisk(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.assessed)
}

func TestRiskHandler_RefreshRisk(t *testing.T) {
	organizationID := uuid.New()
	dealID := uuid.New()
	svc := &stubRiskService{assessment: assessmentEntity(dealID, organizationID)}
	h := handler.NewRiskHandler(svc, zap.NewNop())

	c, rec := newEchoContext(http.MethodPost, "/v1/deals/"+dealID.String()+"/risk/refresh", nil)
	c.SetPath("/v1/deals/:id/risk/refresh")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, organizationID)

	require.NoError(t, h.RefreshRisk(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uuid.UUID{dealID}, svc.refreshed)
	assert.Empty(t, svc.assessed)

	var resp riskdto.AssessmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 62, resp.OverallRisk)
}

func TestRiskHandler_GetRiskHistoryDefaultsLimit(t *testing.T) {
	organizationID := uuid.New()
	dealID := uuid.New()
	svc := &stubRiskService{
		history: []*entities.DealRiskAssessment{
			assessmentEntity(dealID, organizationID),
			assessmentEntity(dealID, organizationID),
		},
	}
	h := handler.NewRiskHandler(svc, zap.NewNop())

	c, rec := newEchoContext(http.MethodGet, "/v1/deals/"+dealID.String()+"/risk/history", nil)
	c.SetPath("/v1/deals/:id/risk/history")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, organizationID)

	require.NoError(t, h.GetRiskHistory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, svc.historyLimit)

	var resp riskdto.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Assessments, 2)
	assert.Equal(t, 2, resp.Total)
}

func TestRiskHandler_GetRiskHistoryCapsLimit(t *testing.T) {
	svc := &stubRiskService{}
	h := handler.NewRiskHandler(svc, zap.NewNop())

	dealID := uuid.New()
	c, rec := newEchoContext(http.MethodGet, "/v1/deals/"+dealID.String()+"/risk/history?limit=500", nil)
	c.SetPath("/v1/deals/:id/risk/history")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, uuid.New())

	require.NoError(t, h.GetRiskHistory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50, svc.historyLimit)
}

func TestRiskHandler_GetRiskHistoryRejectsBadLimit(t *testing.T) {
	svc := &stubRiskService{}
	h := handler.NewRiskHandler(svc, zap.NewNop())

	dealID := uuid.New()
	for _, limit := range []string{"abc", "0", "-3"} {
		c, rec := newEchoContext(http.MethodGet, "/v1/deals/"+dealID.String()+"/risk/history?limit="+limit, nil)
		c.SetPath("/v1/deals/:id/risk/history")
		c.SetParamNames("id")
		c.SetParamValues(dealID.String())
		authenticate(c, uuid.New())

		require.NoError(t, h.GetRiskHistory(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
		assert.Contains(t, rec.Body.String(), "invalid_limit")
	}
	assert.Equal(t, 0, svc.historyLimit)
}

func TestRiskHandler_ExportRisk(t *testing.T) {
	organizationID := uuid.New()
	dealID := uuid.New()
	svc := &stubRiskService{exportURL: "https://minio.local/exports/assessment.json?signed=1"}
	h := handler.NewRiskHandler(svc, zap.NewNop())

	c, rec := newEchoContext(http.MethodPost, "/v1/deals/"+dealID.String()+"/risk/export", nil)
	c.SetPath("/v1/deals/:id/risk/export")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, organizationID)

	require.NoError(t, h.ExportRisk(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uuid.UUID{dealID}, svc.exported)

	var resp riskdto.ExportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dealID.String(), resp.DealID)
	assert.Equal(t, svc.exportURL, resp.URL)
}

func TestRiskHandler_ExportRiskStorageUnavailable(t *testing.T) {
	svc := &stubRiskService{err: usecaseErrors.ErrStorageUnavailable}
	h := handler.NewRiskHandler(svc, zap.NewNop())

	dealID := uuid.New()
	c, rec := newEchoContext(http.MethodPost, "/v1/deals/"+dealID.String()+"/risk/export", nil)
	c.SetPath("/v1/deals/:id/risk/export")
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	authenticate(c, uuid.New())

	require.NoError(t, h.ExportRisk(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "storage_unavailable")
}
