package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DealStage represents the pipeline stage of a deal
type DealStage string

const (
	DealStageProspecting   DealStage = "prospecting"
	DealStageQualification DealStage = "qualification"
	DealStageDiscovery     DealStage = "discovery"
	DealStageProposal      DealStage = "proposal"
	DealStageNegotiation   DealStage = "negotiation"
	DealStageClosedWon     DealStage = "closed_won"
	DealStageClosedLost    DealStage = "closed_lost"
)

// ValidDealStages lists every accepted pipeline stage
var ValidDealStages = []DealStage{
	DealStageProspecting,
	DealStageQualification,
	DealStageDiscovery,
	DealStageProposal,
	DealStageNegotiation,
	DealStageClosedWon,
	DealStageClosedLost,
}

// IsValid reports whether the stage is a known pipeline stage
func (s DealStage) IsValid() bool {
	for _, stage := range ValidDealStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Deal represents a tracked sales opportunity under assessment
type Deal struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string     `gorm:"type:varchar(255);not null" json:"name"`
	Stage          DealStage  `gorm:"type:varchar(20);not null;default:'prospecting';index" json:"stage"`
	OwnerID        *uuid.UUID `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Amount         *float64   `json:"amount,omitempty"`
	Currency       *string    `gorm:"type:varchar(3)" json:"currency,omitempty"`

	// Risk snapshot, denormalized from the last computed assessment so the
	// review scheduler can query deals by next_review_at without touching
	// the cache. The cached assessment itself is never mutated.
	LastRiskScore  *int       `json:"last_risk_score,omitempty"`
	LastRiskLevel  *RiskLevel `gorm:"type:varchar(10)" json:"last_risk_level,omitempty"`
	LastAssessedAt *time.Time `json:"last_assessed_at,omitempty"`
	NextReviewAt   *time.Time `gorm:"index" json:"next_review_at,omitempty"`

	CreatedAt time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Deal
func (Deal) TableName() string {
	return "deals"
}

// IsOpen checks if the deal is still in flight
func (d *Deal) IsOpen() bool {
	return d.Stage != DealStageClosedWon && d.Stage != DealStageClosedLost
}

// ApplyRiskSnapshot records the outcome of an assessment on the deal row
func (d *Deal) ApplyRiskSnapshot(a *DealRiskAssessment) {
	score := a.OverallRisk
	level := a.RiskLevel
	assessedAt := a.GeneratedAt
	nextReview := a.NextReviewDate

	d.LastRiskScore = &score
	d.LastRiskLevel = &level
	d.LastAssessedAt = &assessedAt
	d.NextReviewAt = &nextReview
}
