package handler

import (
	"encoding/json"
	stdErrors "errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dealinsight-dev/deal-insight/errors"
	webhookdto "github.com/dealinsight-dev/deal-insight/internal/adapter/dto/webhook"
	"github.com/dealinsight-dev/deal-insight/internal/infrastructure/metrics"
	dealUsecase "github.com/dealinsight-dev/deal-insight/internal/usecase/deal"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
	"github.com/dealinsight-dev/deal-insight/pkg/webhook"
)

// Webhook handles interaction events pushed by the meeting platform
type Webhook struct {
	dealService dealUsecase.Service
	secret      string
	logger      *zap.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(dealService dealUsecase.Service, secret string, logger *zap.Logger) *Webhook {
	return &Webhook{
		dealService: dealService,
		secret:      secret,
		logger:      logger,
	}
}

// HandleInteractionEvent handles POST /webhooks/interactions
// @Summary      Ingest an interaction event
// @Description  Receives a finished-meeting event from the meeting platform, verifies its HMAC signature, and records the interaction. Redeliveries of the same external_ref are acknowledged without creating a duplicate.
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Param        X-Signature-256  header    string  true  "HMAC-SHA256 signature of the payload (sha256=<hex>)"
// @Param        request          body      webhook.InteractionEventRequest  true  "Interaction event"
// @Success      200  {object}  map[string]interface{}  "Event accepted (or already ingested)"
// @Failure      400  {object}  map[string]interface{}  "Invalid payload"
// @Failure      401  {object}  map[string]interface{}  "Invalid signature"
// @Failure      404  {object}  map[string]interface{}  "Deal not found"
// @Failure      409  {object}  map[string]interface{}  "Deal is closed"
// @Router       /webhooks/interactions [post]
func (h *Webhook) HandleInteractionEvent(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		metrics.WebhookRequests.WithLabelValues("invalid").Inc()
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	// The signature covers the raw body, so verify before parsing
	signature := c.Request().Header.Get(webhook.SignatureHeader)
	if !webhook.Verify(h.secret, body, signature) {
		metrics.WebhookRequests.WithLabelValues("rejected").Inc()
		h.logger.Warn("🛑 Webhook signature rejected",
			zap.String("request_id", getRequestID(c)),
			zap.Int("body_bytes", len(body)))
		return HandleError(h.logger, c, errors.ErrInvalidWebhookSignature())
	}

	var req webhookdto.InteractionEventRequest
	if err := json.Unmarshal(body, &req); err != nil {
		metrics.WebhookRequests.WithLabelValues("invalid").Inc()
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	if err := c.Validate(&req); err != nil {
		metrics.WebhookRequests.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	organizationID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		metrics.WebhookRequests.WithLabelValues("invalid").Inc()
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	dealID, err := uuid.Parse(req.DealID)
	if err != nil {
		metrics.WebhookRequests.WithLabelValues("invalid").Inc()
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	input := toWebhookInteractionInput(organizationID, dealID, &req)

	interaction, err := h.dealService.IngestWebhookInteraction(c.Request().Context(), input)
	if err != nil {
		// A redelivered event is not a failure: acknowledge it so the
		// platform stops retrying.
		if stdErrors.Is(err, usecaseErrors.ErrDuplicateInteraction) {
			metrics.WebhookRequests.WithLabelValues("duplicate").Inc()
			return HandleSuccess(h.logger, c, map[string]interface{}{
				"status":         "duplicate",
				"interaction_id": interaction.ID.String(),
			})
		}

		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_ingest_interaction"

		switch {
		case stdErrors.Is(err, usecaseErrors.ErrDealNotFound):
			statusCode = http.StatusNotFound
			errorCode = "deal_not_found"
		case stdErrors.Is(err, usecaseErrors.ErrDealClosed):
			statusCode = http.StatusConflict
			errorCode = "deal_closed"
		case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
			statusCode = http.StatusBadRequest
			errorCode = "invalid_input"
		}

		metrics.WebhookRequests.WithLabelValues("failed").Inc()
		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	metrics.WebhookRequests.WithLabelValues("accepted").Inc()
	h.logger.Info("📥 Webhook interaction ingested",
		zap.String("external_ref", req.ExternalRef),
		zap.String("deal_id", dealID.String()),
		zap.String("interaction_id", interaction.ID.String()))

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"status":         "accepted",
		"interaction_id": interaction.ID.String(),
	})
}

// toWebhookInteractionInput maps the event payload to the usecase input
func toWebhookInteractionInput(organizationID, dealID uuid.UUID, req *webhookdto.InteractionEventRequest) dealUsecase.RecordInteractionInput {
	externalRef := req.ExternalRef
	input := dealUsecase.RecordInteractionInput{
		OrganizationID:  organizationID,
		DealID:          dealID,
		Title:           req.Title,
		ExternalRef:     &externalRef,
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
