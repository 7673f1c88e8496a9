package webhook

import (
	"time"

	"github.com/dealinsight-dev/deal-insight/internal/adapter/dto/deal"
)

// InteractionEventRequest is the payload the meeting platform pushes when
// a recorded meeting finishes processing. ExternalRef is the platform's
// meeting id and doubles as the idempotency key, so redelivered events
// are acknowledged without creating a second interaction.
type InteractionEventRequest struct {
	Event           string                    `json:"event" validate:"required,oneof=interaction.completed interaction.summarized"`
	OrganizationID  string                    `json:"organization_id" validate:"required,uuid"`
	DealID          string                    `json:"deal_id" validate:"required,uuid"`
	ExternalRef     string                    `json:"external_ref" validate:"required,min=1,max=255"`
	Title           string                    `json:"title" validate:"required,min=1,max=255"`
	ScheduledAt     *time.Time                `json:"scheduled_at,omitempty"`
	DurationSeconds int                       `json:"duration_seconds,omitempty" validate:"omitempty,min=0"`
	EngagementScore *float64                  `json:"engagement_score,omitempty" validate:"omitempty,min=0,max=100"`
	Participants    []deal.ParticipantRequest `json:"participants,omitempty" validate:"omitempty,dive"`
	Summary         *deal.SummaryRequest      `json:"summary,omitempty"`
}
