package entities

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AssessmentJobStatus represents the status of a background assessment job
type AssessmentJobStatus string

const (
	AssessmentJobStatusPending   AssessmentJobStatus = "pending"   // Waiting to be claimed by a worker
	AssessmentJobStatusRunning   AssessmentJobStatus = "running"   // Assessment pipeline in progress
	AssessmentJobStatusCompleted AssessmentJobStatus = "completed" // Assessment persisted
	AssessmentJobStatusFailed    AssessmentJobStatus = "failed"    // Pipeline failed
	AssessmentJobStatusRetrying  AssessmentJobStatus = "retrying"  // Retrying after failure
	AssessmentJobStatusCancelled AssessmentJobStatus = "cancelled" // Job was cancelled
)

// AssessmentTrigger represents what scheduled the assessment
type AssessmentTrigger string

const (
	AssessmentTriggerInteraction AssessmentTrigger = "interaction_recorded" // New interaction arrived
	AssessmentTriggerReviewDue   AssessmentTrigger = "review_due"           // Review date passed
	AssessmentTriggerManual      AssessmentTrigger = "manual"               // Explicit refresh request
)

// AssessmentJob represents a background risk assessment job for a deal
type AssessmentJob struct {
	ID             uuid.UUID           `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DealID         uuid.UUID           `json:"deal_id" gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID           `json:"organization_id" gorm:"type:uuid;not null;index"`
	Trigger        AssessmentTrigger   `json:"trigger" gorm:"type:varchar(50);not null;index"`
	Status         AssessmentJobStatus `json:"status" gorm:"type:varchar(50);not null;index;default:'pending'"`
	AssessmentID   *uuid.UUID          `json:"assessment_id,omitempty" gorm:"type:uuid;index"`

	// Processing details
	StartedAt   *time.Time `json:"started_at,omitempty" gorm:"type:timestamp"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"type:timestamp"`
	RetryCount  int        `json:"retry_count" gorm:"type:integer;default:0"`
	MaxRetries  int        `json:"max_retries" gorm:"type:integer;default:3"`
	LastError   *string    `json:"last_error,omitempty" gorm:"type:text"`

	// Metadata
	Metadata AssessmentJobMetadata `json:"metadata,omitempty" gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// AssessmentJobMetadata stores additional metadata for assessment jobs
type AssessmentJobMetadata struct {
	InteractionCount int                    `json:"interaction_count,omitempty"`
	RiskScore        int                    `json:"risk_score,omitempty"`
	RiskLevel        string                 `json:"risk_level,omitempty"`
	ProcessingTimeMs int64                  `json:"processing_time_ms,omitempty"`
	ErrorDetails     map[string]interface{} `json:"error_details,omitempty"`
}

// Scan implements sql.Scanner interface for GORM
func (m *AssessmentJobMetadata) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, &m)
}

// Value implements driver.Valuer interface for GORM
func (m AssessmentJobMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// NewAssessmentJob creates a new assessment job
func NewAssessmentJob(dealID, organizationID uuid.UUID, trigger AssessmentTrigger) *AssessmentJob {
	return &AssessmentJob{
		ID:             uuid.New(),
		DealID:         dealID,
		OrganizationID: organizationID,
		Trigger:        trigger,
		Status:         AssessmentJobStatusPending,
		RetryCount:     0,
		MaxRetries:     3,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

// IsRetryable checks if job can be retried
func (j *AssessmentJob) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries && j.Status == AssessmentJobStatusFailed
}

// CanBeClaimed checks if job is ready to be picked up by a worker
func (j *AssessmentJob) CanBeClaimed() bool {
	return j.Status == AssessmentJobStatusPending || (j.Status == AssessmentJobStatusFailed && j.IsRetryable())
}

// MarkAsRunning marks job as claimed by a worker
func (j *AssessmentJob) MarkAsRunning() {
	j.Status = AssessmentJobStatusRunning
	now := time.Now()
	j.StartedAt = &now
	j.UpdatedAt = now
}

// MarkAsCompleted marks job as completed successfully
func (j *AssessmentJob) MarkAsCompleted(assessmentID *uuid.UUID) {
	j.Status = AssessmentJobStatusCompleted
	j.AssessmentID = assessmentID
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed marks job as failed with error message
func (j *AssessmentJob) MarkAsFailed(errMsg string) {
	j.Status = AssessmentJobStatusFailed
	j.LastError = &errMsg
	j.UpdatedAt = time.Now()
}

// IncrementRetry increments retry count and marks for retry
func (j *AssessmentJob) IncrementRetry(errMsg string) {
	j.RetryCount++
	j.Status = AssessmentJobStatusRetrying
	j.LastError = &errMsg
	j.UpdatedAt = time.Now()
}

// MarkAsCancelled marks job as cancelled
func (j *AssessmentJob) MarkAsCancelled() {
	j.Status = AssessmentJobStatusCancelled
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// TableName specifies the table name for GORM
func (AssessmentJob) TableName() string {
	return "assessment_jobs"
}
