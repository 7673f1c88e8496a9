package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dealdto "github.com/dealinsight-dev/deal-insight/internal/adapter/dto/deal"
	"github.com/dealinsight-dev/deal-insight/internal/adapter/presenter"
	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	httpmw "github.com/dealinsight-dev/deal-insight/internal/infrastructure/http/middleware"
	dealUsecase "github.com/dealinsight-dev/deal-insight/internal/usecase/deal"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
)

// Deal handles deal-related HTTP requests
type Deal struct {
	dealService dealUsecase.Service
	logger      *zap.Logger
}

// NewDealHandler creates a new deal handler
func NewDealHandler(dealService dealUsecase.Service, logger *zap.Logger) *Deal {
	return &Deal{
		dealService: dealService,
		logger:      logger,
	}
}

// CreateDeal handles POST /deals
// @Summary      Create a new deal
// @Description  Creates a new sales opportunity for the caller's organization
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      deal.CreateDealRequest  true  "Deal creation request"
// @Success      201      {object}  deal.DealResponse  "Deal created successfully"
// @Failure      400      {object}  map[string]interface{}  "Invalid request or validation failed"
// @Failure      401      {object}  map[string]interface{}  "Caller not authenticated"
// @Failure      500      {object}  map[string]interface{}  "Failed to create deal"
// @Router       /deals [post]
func (h *Deal) CreateDeal(c echo.Context) error {
	var req dealdto.CreateDealRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	organizationID, ok := httpmw.GetOrganizationID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "unauthorized",
			"message": "organization not authenticated",
		})
	}

	input := dealUsecase.CreateDealInput{
		OrganizationID: organizationID,
		Name:           req.Name,
		Stage:          entities.DealStage(req.Stage),
		Amount:         req.Amount,
		Currency:       req.Currency,
	}

	if req.OwnerID != nil {
		ownerID, err := uuid.Parse(*req.OwnerID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "invalid_owner_id",
				"message": "owner ID must be a valid UUID",
			})
		}
		input.OwnerID = &ownerID
	}

	created, err := h.dealService.CreateDeal(c.Request().Context(), input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_create_deal"

		switch {
		case errors.Is(err, usecaseErrors.ErrInvalidInput):
			statusCode = http.StatusBadRequest
			errorCode = "invalid_input"
		case errors.Is(err, usecaseErrors.ErrInvalidDealStage):
			statusCode = http.StatusBadRequest
			errorCode = "invalid_stage"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, presenter.ToDealResponse(created))
}

// GetDeal handles GET /deals/:id
// @Summary      Get deal details
// @Description  Gets a deal with its latest risk snapshot
// @Tags         Deals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Deal ID (UUID)"
// @Success      200  {object}  deal.DealResponse  "Deal details"
// @Failure      400  {object}  map[string]interface{}  "Invalid deal ID"
// @Failure      404  {object}  map[string]interface{}  "Deal not found"
// @Router       /deals/{id} [get]
func (h *Deal) GetDeal(c echo.Context) error {
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

	d, err := h.dealService.GetDeal(c.Request().Context(), organizationID, dealID)
	if err != nil {
		if errors.Is(err, usecaseErrors.ErrDealNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "deal_not_found",
				"message": err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_get_deal",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToDealResponse(d))
}

// ListDeals handles GET /deals
// @Summary      List deals
// @Description  Gets a paginated list of the organization's deals with optional filters
// @Tags         Deals
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "Page number (default: 1)"
// @Param        page_size  query     int     false  "Items per page (default: 20)"
// @Param        stage      query     string  false  "Stage filter (prospecting/qualification/discovery/proposal/negotiation/closed_won/closed_lost)"
// @Param        risk_level query     string  false  "Risk level filter (low/medium/high/critical)"
// @Param        owner_id   query     string  false  "Owner filter (UUID)"
// @Param        search     query     string  false  "Search by deal name"
// @Param        sort_by    query     string  false  "Sort field (created_at/amount/last_risk_score/name)"
// @Param        sort_order query     string  false  "Sort order (asc/desc)"
// @Success      200        {object}  deal.DealListResponse  "List of deals"
// @Failure      400        {object}  map[string]interface{}  "Invalid request"
// @Failure      500        {object}  map[string]interface{}  "Failed to list deals"
// @Router       /deals [get]
func (h *Deal) ListDeals(c echo.Context) error {
	var req dealdto.ListDealsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	// Set defaults
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	organizationID, ok := httpmw.GetOrganizationID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "unauthorized",
			"message": "organization not authenticated",
		})
	}

	filters := buildFilters(&req)

	deals, total, err := h.dealService.ListDeals(c.Request().Context(), organizationID, filters)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_list_deals",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToDealListResponse(deals, total, req.Page, req.PageSize))
}

// UpdateStage handles PATCH /deals/:id/stage
// @Summary      Move a deal to a new stage
// @Description  Updates the pipeline stage and invalidates the cached risk assessment
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Deal ID (UUID)"
// @Param        request  body      deal.UpdateStageRequest  true  "Stage update request"
// @Success      200      {object}  deal.DealResponse  "Updated deal"
// @Failure      400      {object}  map[string]interface{}  "Invalid deal ID or stage"
// @Failure      404      {object}  map[string]interface{}  "Deal not found"
// @Failure      500      {object}  map[string]interface{}  "Failed to update stage"
// @Router       /deals/{id}/stage [patch]
func (h *Deal) UpdateStage(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_deal_id",
			"message": "deal ID must be a valid UUID",
		})
	}

	var req dealdto.UpdateStageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	organizationID, ok := httpmw.GetOrganizationID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "unauthorized",
			"message": "organization not authenticated",
		})
	}

	updated, err := h.dealService.UpdateStage(c.Request().Context(), organizationID, dealID, entities.DealStage(req.Stage))
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_update_stage"

		switch {
		case errors.Is(err, usecaseErrors.ErrDealNotFound):
			statusCode = http.StatusNotFound
			errorCode = "deal_not_found"
		case errors.Is(err, usecaseErrors.ErrInvalidDealStage):
			statusCode = http.StatusBadRequest
			errorCode = "invalid_stage"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToDealResponse(updated))
}

// DeleteDeal handles DELETE /deals/:id
// @Summary      Delete a deal
// @Description  Soft deletes a deal and drops its cached risk assessment
// @Tags         Deals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Deal ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Deal deleted"
// @Failure      400  {object}  map[string]interface{}  "Invalid deal ID"
// @Failure      404  {object}  map[string]interface{}  "Deal not found"
// @Failure      500  {object}  map[string]interface{}  "Failed to delete deal"
// @Router       /deals/{id} [delete]
func (h *Deal) DeleteDeal(c echo.Context) error {
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

	if err := h.dealService.DeleteDeal(c.Request().Context(), organizationID, dealID); err != nil {
		if errors.Is(err, usecaseErrors.ErrDealNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "deal_not_found",
				"message": err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_delete_deal",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "deal deleted successfully",
	})
}

// RecordInteraction handles POST /deals/:id/interactions
// @Summary      Record an interaction
// @Description  Attaches a meeting with participants and summaries to an open deal and schedules a risk reassessment
// @Tags         Interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Deal ID (UUID)"
// @Param        request  body      deal.RecordInteractionRequest  true  "Interaction payload"
// @Success      201      {object}  deal.InteractionResponse  "Interaction recorded"
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Failure      404      {object}  map[string]interface{}  "Deal not found"
// @Failure      409      {object}  map[string]interface{}  "Deal is closed"
// @Router       /deals/{id}/interactions [post]
func (h *Deal) RecordInteraction(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_deal_id",
			"message": "deal ID must be a valid UUID",
		})
	}

	var req dealdto.RecordInteractionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	organizationID, ok := httpmw.GetOrganizationID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "unauthorized",
			"message": "organization not authenticated",
		})
	}

	input := toRecordInteractionInput(organizationID, dealID, &req)

	interaction, err := h.dealService.RecordInteraction(c.Request().Context(), input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_record_interaction"

		switch {
		case errors.Is(err, usecaseErrors.ErrDealNotFound):
			statusCode = http.StatusNotFound
			errorCode = "deal_not_found"
		case errors.Is(err, usecaseErrors.ErrDealClosed):
			statusCode = http.StatusConflict
			errorCode = "deal_closed"
		case errors.Is(err, usecaseErrors.ErrInvalidInput):
			statusCode = http.StatusBadRequest
			errorCode = "invalid_input"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, presenter.ToInteractionResponse(interaction))
}

// ListInteractions handles GET /deals/:id/interactions
// @Summary      List a deal's interactions
// @Description  Gets a paginated list of interactions recorded on a deal, most recent first
// @Tags         Interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true   "Deal ID (UUID)"
// @Param        page       query     int     false  "Page number (default: 1)"
// @Param        page_size  query     int     false  "Items per page (default: 20)"
// @Success      200        {object}  deal.InteractionListResponse  "List of interactions"
// @Failure      400        {object}  map[string]interface{}  "Invalid deal ID"
// @Failure      404        {object}  map[string]interface{}  "Deal not found"
// @Router       /deals/{id}/interactions [get]
func (h *Deal) ListInteractions(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_deal_id",
			"message": "deal ID must be a valid UUID",
		})
	}

	var req dealdto.ListInteractionsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	// Set defaults
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	organizationID, ok := httpmw.GetOrganizationID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "unauthorized",
			"message": "organization not authenticated",
		})
	}

	limit := req.PageSize
	offset := (req.Page - 1) * req.PageSize

	interactions, total, err := h.dealService.ListInteractions(c.Request().Context(), organizationID, dealID, limit, offset)
	if err != nil {
		if errors.Is(err, usecaseErrors.ErrDealNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "deal_not_found",
				"message": err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_list_interactions",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToInteractionListResponse(interactions, total, req.Page, req.PageSize))
}

// toRecordInteractionInput maps the request DTO to the usecase input
func toRecordInteractionInput(organizationID, dealID uuid.UUID, req *dealdto.RecordInteractionRequest) dealUsecase.RecordInteractionInput {
	input := dealUsecase.RecordInteractionInput{
		OrganizationID:  organizationID,
		DealID:          dealID,
		Title:           req.Title,
		ExternalRef:     req.ExternalRef,
		ScheduledAt:     req.ScheduledAt,
		DurationSeconds: req.DurationSeconds,
		EngagementScore: req.EngagementScore,
	}

	for _, p := range req.Participants {
		input.Participants = append(input.Participants, dealUsecase.ParticipantInput{
			Name:            p.Name,
			Email:           p.Email,
			Role:            p.Role,
			TalkTimeSeconds: p.TalkTimeSeconds,
		})
	}

	if req.Summary != nil {
		input.Summary = &dealUsecase.SummaryInput{
			Overview:    req.Summary.Overview,
			KeyPoints:   req.Summary.KeyPoints,
			ActionItems: req.Summary.ActionItems,
			Decisions:   req.Summary.Decisions,
		}
	}

	return input
}
