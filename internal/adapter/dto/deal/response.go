package deal

import (
	"time"
)

// DealResponse represents a deal in responses
type DealResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	Stage          string     `json:"stage"`
	OwnerID        *string    `json:"owner_id,omitempty"`
	Amount         *float64   `json:"amount,omitempty"`
	Currency       *string    `json:"currency,omitempty"`
	LastRiskScore  *int       `json:"last_risk_score,omitempty"`
	LastRiskLevel  *string    `json:"last_risk_level,omitempty"`
	LastAssessedAt *time.Time `json:"last_assessed_at,omitempty"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// DealListResponse represents a paginated list of deals
type DealListResponse struct {
	Deals      []*DealResponse `json:"deals"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// InteractionResponse represents a recorded interaction in responses
type InteractionResponse struct {
	ID              string                            `json:"id"`
	DealID          string                            `json:"deal_id"`
	Title           string                            `json:"title"`
	ExternalRef     *string                           `json:"external_ref,omitempty"`
	ScheduledAt     *time.Time                        `json:"scheduled_at,omitempty"`
	DurationSeconds int                               `json:"duration_seconds"`
	EngagementScore *float64                          `json:"engagement_score,omitempty"`
	Participants    []*InteractionParticipantResponse `json:"participants,omitempty"`
	Summaries       []*InteractionSummaryResponse     `json:"summaries,omitempty"`
	CreatedAt       time.Time                         `json:"created_at"`
}

// InteractionParticipantResponse represents one attendee in responses
type InteractionParticipantResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           *string `json:"email,omitempty"`
	Role            *string `json:"role,omitempty"`
	TalkTimeSeconds int     `json:"talk_time_seconds"`
}

// InteractionSummaryResponse represents one AI summary in responses
type InteractionSummaryResponse struct {
	ID          string   `json:"id"`
	Overview    string   `json:"overview"`
	KeyPoints   []string `json:"key_points,omitempty"`
	ActionItems []string `json:"action_items,omitempty"`
	Decisions   []string `json:"decisions,omitempty"`
}

// InteractionListResponse represents a paginated list of interactions
type InteractionListResponse struct {
	Interactions []*InteractionResponse `json:"interactions"`
	Total        int64                  `json:"total"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
	TotalPages   int                    `json:"total_pages"`
}
