package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RiskLevel represents the low/medium/high/critical tier of a deal
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// RiskLevelFromScore maps an overall risk score (0-100) to a RiskLevel.
// Thresholds: critical >= 75, high >= 50, medium >= 25, low < 25.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= 75:
		return RiskLevelCritical
	case score >= 50:
		return RiskLevelHigh
	case score >= 25:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Factor weights. They sum to 1.0 so the overall score stays in [0,100].
const (
	WeightMissingStakeholders = 0.25
	WeightLowEngagement       = 0.25
	WeightCompetitivePresence = 0.15
	WeightEngagementDrop      = 0.15
	WeightStaleDeal           = 0.10
	WeightMissingNextSteps    = 0.05
	WeightBudgetConcerns      = 0.05
)

// MissingStakeholderFactor flags required roles absent from the roster
type MissingStakeholderFactor struct {
	Risk          int           `json:"risk"`
	MissingRoles  []MissingRole `json:"missing_roles"`
	CoverageScore int           `json:"coverage_score"`
}

// LowEngagementFactor is the inverse of the engagement score
type LowEngagementFactor struct {
	Risk            int             `json:"risk"`
	EngagementScore int             `json:"engagement_score"`
	Trend           EngagementTrend `json:"trend"`
}

// CompetitiveFactor reports competitor mentions found in summaries
type CompetitiveFactor struct {
	Risk         int      `json:"risk"`
	Keywords     []string `json:"keywords"`
	MentionCount int      `json:"mention_count"`
}

// EngagementDropFactor reports a deteriorating engagement trend
type EngagementDropFactor struct {
	Risk        int             `json:"risk"`
	Trend       EngagementTrend `json:"trend"`
	DropPercent float64         `json:"drop_percent"`
}

// StaleDealFactor reports how long the deal has sat without activity
type StaleDealFactor struct {
	Risk                  int `json:"risk"`
	DaysSinceLastActivity int `json:"days_since_last_activity"`
}

// MissingNextStepsFactor flags the absence of action items on the most
// recent interaction
type MissingNextStepsFactor struct {
	Risk                 int  `json:"risk"`
	HasRecentActionItems bool `json:"has_recent_action_items"`
}

// BudgetConcernsFactor reports budget/pricing concern language
type BudgetConcernsFactor struct {
	Risk     int      `json:"risk"`
	Keywords []string `json:"keywords"`
}

// RiskFactors holds the seven named factors of an assessment. Every factor
// is always present; a factor whose underlying condition is absent carries
// a risk of 0.
type RiskFactors struct {
	MissingStakeholders MissingStakeholderFactor `json:"missing_stakeholders"`
	LowEngagement       LowEngagementFactor      `json:"low_engagement"`
	CompetitivePresence CompetitiveFactor        `json:"competitive_presence"`
	EngagementDrop      EngagementDropFactor     `json:"engagement_drop"`
	StaleDeal           StaleDealFactor          `json:"stale_deal"`
	MissingNextSteps    MissingNextStepsFactor   `json:"missing_next_steps"`
	BudgetConcerns      BudgetConcernsFactor     `json:"budget_concerns"`
}

// WeightedScore computes the rounded weighted sum of all seven factors
func (f *RiskFactors) WeightedScore() int {
	sum := WeightMissingStakeholders*float64(f.MissingStakeholders.Risk) +
		WeightLowEngagement*float64(f.LowEngagement.Risk) +
		WeightCompetitivePresence*float64(f.CompetitivePresence.Risk) +
		WeightEngagementDrop*float64(f.EngagementDrop.Risk) +
		WeightStaleDeal*float64(f.StaleDeal.Risk) +
		WeightMissingNextSteps*float64(f.MissingNextSteps.Risk) +
		WeightBudgetConcerns*float64(f.BudgetConcerns.Risk)

	score := int(sum + 0.5)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// DealRiskAssessment is the immutable result of one assessment run. It is
// created fresh by the aggregator on every cache miss and superseded, never
// mutated, by the next computation. Rows are insert-only; history queries
// order by generated_at.
type DealRiskAssessment struct {
	ID              uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DealID          uuid.UUID                   `json:"deal_id" gorm:"type:uuid;not null;index"`
	OrganizationID  uuid.UUID                   `json:"organization_id" gorm:"type:uuid;not null;index"`
	OverallRisk     int                         `json:"overall_risk" gorm:"type:integer;not null"`
	RiskLevel       RiskLevel                   `json:"risk_level" gorm:"type:varchar(20);not null;index"`
	Factors         RiskFactors                 `json:"factors" gorm:"type:jsonb;serializer:json"`
	Recommendations datatypes.JSONSlice[string] `json:"recommendations" gorm:"type:jsonb"`
	GeneratedAt     time.Time                   `json:"generated_at" gorm:"type:timestamp;not null;index"`
	NextReviewDate  time.Time                   `json:"next_review_date" gorm:"type:timestamp;not null;index"`
}

// TableName specifies the table name for GORM
func (DealRiskAssessment) TableName() string {
	return "deal_risk_assessments"
}

// ReviewInterval returns the re-evaluation delay for a risk level:
// 1 day for critical, 3 for high, 7 for medium, 14 for low.
func ReviewInterval(level RiskLevel) time.Duration {
	switch level {
	case RiskLevelCritical:
		return 24 * time.Hour
	case RiskLevelHigh:
		return 3 * 24 * time.Hour
	case RiskLevelMedium:
		return 7 * 24 * time.Hour
	default:
		return 14 * 24 * time.Hour
	}
}
