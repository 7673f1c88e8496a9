package deal

import (
	"time"
)

// CreateDealRequest represents the request to create a deal
type CreateDealRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=255"`
	Stage    string   `json:"stage,omitempty" validate:"omitempty,dealstage"`
	OwnerID  *string  `json:"owner_id,omitempty" validate:"omitempty,uuid"`
	Amount   *float64 `json:"amount,omitempty" validate:"omitempty,min=0"`
	Currency *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// UpdateStageRequest represents the request to move a deal to a new stage
type UpdateStageRequest struct {
	Stage string `json:"stage" validate:"required,dealstage"`
}

// ListDealsRequest represents query parameters for listing deals
type ListDealsRequest struct {
	Stage     *string `query:"stage" validate:"omitempty,dealstage"`
	RiskLevel *string `query:"risk_level" validate:"omitempty,oneof=low medium high critical"`
	OwnerID   *string `query:"owner_id" validate:"omitempty,uuid"`
	Search    string  `query:"search"`
	Page      int     `query:"page" validate:"min=1"`
	PageSize  int     `query:"page_size" validate:"min=1,max=100"`
	SortBy    string  `query:"sort_by" validate:"omitempty,oneof=created_at amount last_risk_score name"`
	SortOrder string  `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// RecordInteractionRequest represents the request to record a meeting on a deal
type RecordInteractionRequest struct {
	Title           string               `json:"title" validate:"required,min=1,max=255"`
	ExternalRef     *string              `json:"external_ref,omitempty" validate:"omitempty,max=255"`
	ScheduledAt     *time.Time           `json:"scheduled_at,omitempty"`
	DurationSeconds int                  `json:"duration_seconds,omitempty" validate:"omitempty,min=0"`
	EngagementScore *float64             `json:"engagement_score,omitempty" validate:"omitempty,min=0,max=100"`
	Participants    []ParticipantRequest `json:"participants,omitempty" validate:"omitempty,dive"`
	Summary         *SummaryRequest      `json:"summary,omitempty"`
}

// ParticipantRequest represents one attendee of a recorded interaction
type ParticipantRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=255"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Role            *string `json:"role,omitempty" validate:"omitempty,max=100"`
	TalkTimeSeconds int     `json:"talk_time_seconds,omitempty" validate:"omitempty,min=0"`
}

// SummaryRequest represents the AI summary attached to an interaction
type SummaryRequest struct {
	Overview    string   `json:"overview,omitempty"`
	KeyPoints   []string `json:"key_points,omitempty"`
	ActionItems []string `json:"action_items,omitempty"`
	Decisions   []string `json:"decisions,omitempty"`
}

// ListInteractionsRequest represents query parameters for listing a deal's
// interactions
type ListInteractionsRequest struct {
	Page     int `query:"page" validate:"min=1"`
	PageSize int `query:"page_size" validate:"min=1,max=100"`
}
