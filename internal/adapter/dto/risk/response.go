package risk

import (
	"time"
)

// AssessmentResponse represents a risk assessment in responses
type AssessmentResponse struct {
	ID              string          `json:"id"`
	DealID          string          `json:"deal_id"`
	OverallRisk     int             `json:"overall_risk"`
	RiskLevel       string          `json:"risk_level"`
	Factors         FactorsResponse `json:"factors"`
	Recommendations []string        `json:"recommendations"`
	GeneratedAt     time.Time       `json:"generated_at"`
	NextReviewDate  time.Time       `json:"next_review_date"`
}

// FactorsResponse carries the seven named risk factors
type FactorsResponse struct {
	MissingStakeholders MissingStakeholdersResponse `json:"missing_stakeholders"`
	LowEngagement       LowEngagementResponse       `json:"low_engagement"`
	CompetitivePresence CompetitivePresenceResponse `json:"competitive_presence"`
	EngagementDrop      EngagementDropResponse      `json:"engagement_drop"`
	StaleDeal           StaleDealResponse           `json:"stale_deal"`
	MissingNextSteps    MissingNextStepsResponse    `json:"missing_next_steps"`
	BudgetConcerns      BudgetConcernsResponse      `json:"budget_concerns"`
}

// MissingStakeholdersResponse reports required roles absent from the roster
type MissingStakeholdersResponse struct {
	Risk          int                   `json:"risk"`
	MissingRoles  []MissingRoleResponse `json:"missing_roles"`
	CoverageScore int                   `json:"coverage_score"`
}

// MissingRoleResponse is one required role absent from the detected set
type MissingRoleResponse struct {
	Role       string `json:"role"`
	Importance string `json:"importance"`
}

// LowEngagementResponse reports the inverse of the engagement score
type LowEngagementResponse struct {
	Risk            int    `json:"risk"`
	EngagementScore int    `json:"engagement_score"`
	Trend           string `json:"trend"`
}

// CompetitivePresenceResponse reports competitor mentions in summaries
type CompetitivePresenceResponse struct {
	Risk         int      `json:"risk"`
	Keywords     []string `json:"keywords"`
	MentionCount int      `json:"mention_count"`
}

// EngagementDropResponse reports a deteriorating engagement trend
type EngagementDropResponse struct {
	Risk        int     `json:"risk"`
	Trend       string  `json:"trend"`
	DropPercent float64 `json:"drop_percent"`
}

// StaleDealResponse reports how long the deal sat without activity
type StaleDealResponse struct {
	Risk                  int `json:"risk"`
	DaysSinceLastActivity int `json:"days_since_last_activity"`
}

// MissingNextStepsResponse flags missing action items on the latest interaction
type MissingNextStepsResponse struct {
	Risk                 int  `json:"risk"`
	HasRecentActionItems bool `json:"has_recent_action_items"`
}

// BudgetConcernsResponse reports budget and pricing concern language
type BudgetConcernsResponse struct {
	Risk     int      `json:"risk"`
	Keywords []string `json:"keywords"`
}

// HistoryResponse represents past assessments of a deal, most recent first
type HistoryResponse struct {
	Assessments []*AssessmentResponse `json:"assessments"`
	Total       int                   `json:"total"`
}

// ExportResponse represents the result of exporting an assessment to
// object storage
type ExportResponse struct {
	DealID string `json:"deal_id"`
	URL    string `json:"url"`
}
