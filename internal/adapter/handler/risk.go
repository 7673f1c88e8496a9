package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dealinsight-dev/deal-insight/internal/adapter/dto/risk"
	"github.com/dealinsight-dev/deal-insight/internal/adapter/presenter"
	httpmw "github.com/dealinsight-dev/deal-insight/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
	riskUsecase "github.com/dealinsight-dev/deal-insight/internal/usecase/risk"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

// Risk handles risk assessment HTTP requests
type Risk struct {
	riskService riskUsecase.Service
	logger      *zap.Logger
}

// NewRiskHandler creates a new risk handler
func NewRiskHandler(riskService riskUsecase.Service, logger *zap.Logger) *Risk {
	return &Risk{
		riskService: riskService,
		logger:      logger,
	}
}

// GetRisk handles GET /deals/:id/risk
// @Summary      Get deal risk assessment
// @Description  Returns the current risk assessment, serving from cache when fresh and computing otherwise
// @Tags         Risk
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Deal ID (UUID)"
// @Success      200  {object}  risk.AssessmentResponse  "Risk assessment"
// @Failure      400  {object}  map[string]interface{}  "Invalid deal ID"
// @Failure      404  {object}  map[string]interface{}  "Deal not found"
// @Failure      502  {object}  map[string]interface{}  "Interaction history unavailable"
// @Router       /deals/{id}/risk [get]
func (h *Risk) GetRisk(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_deal_id",
			"message": "deal ID must be a valid UUID",
		})
	}

	organizationID, ok := httpmw.GetOrganizationID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "unauthorized",
			"message": "organization not authenticated",
		})
	}

	assessment, err := h.riskService.AssessDealRisk(c.Request().Context(), dealID, organizationID)
	if err != nil {
		return h.assessmentError(c, err, "failed_to_assess_risk")
	}

	return c.JSON(http.StatusOK, presenter.ToAssessmentResponse(assessment))
}

// RefreshRisk handles POST /deals/:id/risk/refresh
// @Summary      Refresh deal risk assessment
// @Description  Discards any cached assessment and recomputes from the latest interaction history
// @Tags         Risk
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Deal ID (UUID)"
// @Success      200  {object}  risk.AssessmentResponse  "Recomputed risk assessment"
// @Failure      400  {object}  map[string]interface{}  "Invalid deal ID"
// @Failure      404  {object}  map[string]interface{}  "Deal not found"
// @Failure      502  {object}  map[string]interface{}  "Interaction history unavailable"
// @Router       /deals/{id}/risk/refresh [post]
func (h *Risk) RefreshRisk(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_deal_id",
			"message": "deal ID must be a valid UUID",
		})
	}

	organizationID, ok := httpmw.GetOrganizationID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "unauthorized",
			"message": "organization not authenticated",
		})
	}

	assessment, err := h.riskService.RefreshAssessment(c.Request().Context(), dealID, organizationID)
	if err != nil {
		return h.assessmentError(c, err, "failed_to_refresh_risk")
	}

	return c.JSON(http.StatusOK, presenter.ToAssessmentResponse(assessment))
}

// GetRiskHistory handles GET /deals/:id/risk/history
// @Summary      Get assessment history
// @Description  Lists past risk assessments of a deal, most recent first
// @Tags         Risk
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Deal ID (UUID)"
// @Param        limit  query     int     false  "Max assessments to return (default: 10, max: 50)"
// @Success      200    {object}  risk.HistoryResponse  "Assessment history"
// @Failure      400    {object}  map[string]interface{}  "Invalid deal ID"
// @Failure      404    {object}  map[string]interface{}  "Deal not found"
// @Router       /deals/{id}/risk/history [get]
func (h *Risk) GetRiskHistory(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_deal_id",
			"message": "deal ID must be a valid UUID",
		})
	}

	organizationID, ok := httpmw.GetOrganizationID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "unauthorized",
			"message": "organization not authenticated",
		})
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "invalid_limit",
				"message": "limit must be a positive integer",
			})
		}
		limit = parsed
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	assessments, err := h.riskService.GetAssessmentHistory(c.Request().Context(), dealID, organizationID, limit)
	if err != nil {
		if errors.Is(err, usecaseErrors.ErrDealNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "deal_not_found",
				"message": err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_get_history",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToHistoryResponse(assessments))
}

// ExportRisk handles POST /deals/:id/risk/export
// @Summary      Export deal risk assessment
// @Description  Archives the current assessment to object storage and returns a presigned URL
// @Tags         Risk
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Deal ID (UUID)"
// @Success      200  {object}  risk.ExportResponse  "Export location"
// @Failure      400  {object}  map[string]interface{}  "Invalid deal ID"
// @Failure      404  {object}  map[string]interface{}  "Deal not found"
// @Failure      503  {object}  map[string]interface{}  "Object storage unavailable"
// @Router       /deals/{id}/risk/export [post]
func (h *Risk) ExportRisk(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_deal_id",
			"message": "deal ID must be a valid UUID",
		})
	}

	organizationID, ok := httpmw.GetOrganizationID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "unauthorized",
			"message": "organization not authenticated",
		})
	}

	url, err := h.riskService.ExportAssessment(c.Request().Context(), dealID, organizationID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_export_assessment"

		switch {
		case errors.Is(err, usecaseErrors.ErrStorageUnavailable):
			statusCode = http.StatusServiceUnavailable
			errorCode = "storage_unavailable"
		case errors.Is(err, usecaseErrors.ErrDealNotFound):
			statusCode = http.StatusNotFound
			errorCode = "deal_not_found"
		case errors.Is(err, usecaseErrors.ErrInteractionFetchFailed):
			statusCode = http.StatusBadGateway
			errorCode = "history_unavailable"
		case errors.Is(err, usecaseErrors.ErrAssessmentExportFailed):
			errorCode = "export_failed"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, &risk.ExportResponse{
		DealID: dealID.String(),
		URL:    url,
	})
}

// assessmentError maps assessment pipeline failures to HTTP responses
func (h *Risk) assessmentError(c echo.Context, err error, fallbackCode string) error {
	statusCode := http.StatusInternalServerError
	errorCode := fallbackCode

	switch {
	case errors.Is(err, usecaseErrors.ErrDealNotFound):
		statusCode = http.StatusNotFound
		errorCode = "deal_not_found"
	case errors.Is(err, usecaseErrors.ErrInteractionFetchFailed):
		statusCode = http.StatusBadGateway
		errorCode = "history_unavailable"
	}

	return c.JSON(statusCode, map[string]interface{}{
		"error":   errorCode,
		"message": err.Error(),
	})
}
