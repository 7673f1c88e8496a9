package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

// AssessmentJobRepository handles assessment job data operations
type AssessmentJobRepository struct {
	db *gorm.DB
}

// NewAssessmentJobRepository creates a new assessment job repository
func NewAssessmentJobRepository(db *gorm.DB) *AssessmentJobRepository {
	return &AssessmentJobRepository{db: db}
}

// CreateJob creates a new assessment job
func (r *AssessmentJobRepository) CreateJob(ctx context.Context, job *entities.AssessmentJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// GetJobsForProcessing retrieves jobs that are ready for processing
func (r *AssessmentJobRepository) GetJobsForProcessing(ctx context.Context, limit int) ([]entities.AssessmentJob, error) {
	var jobs []entities.AssessmentJob
	if limit == 0 {
		limit = 10
	}
	if err := r.db.WithContext(ctx).
		Where("status IN ?", []entities.AssessmentJobStatus{entities.AssessmentJobStatusPending, entities.AssessmentJobStatusRetrying}).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ClaimJob atomically transitions a job to running so only one worker
// picks it up. Returns false when another worker already claimed it.
func (r *AssessmentJobRepository) ClaimJob(ctx context.Context, jobID uuid.UUID, fromStatus entities.AssessmentJobStatus) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entities.AssessmentJob{}).
		Where("id = ? AND status = ?", jobID, fromStatus).
		Updates(map[string]interface{}{
			"status":     entities.AssessmentJobStatusRunning,
			"started_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkJobAsCompleted marks a job as completed with the produced assessment ID
func (r *AssessmentJobRepository) MarkJobAsCompleted(ctx context.Context, jobID uuid.UUID, assessmentID *uuid.UUID, metadata entities.AssessmentJobMetadata) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AssessmentJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":        entities.AssessmentJobStatusCompleted,
			"assessment_id": assessmentID,
			"metadata":      metadata,
			"completed_at":  now,
			"updated_at":    now,
		}).Error
}

// MarkJobAsFailed marks a job as failed with error message
func (r *AssessmentJobRepository) MarkJobAsFailed(ctx context.Context, jobID uuid.UUID, errMsg string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AssessmentJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":     entities.AssessmentJobStatusFailed,
			"last_error": errMsg,
			"updated_at": now,
		}).Error
}

// IncrementRetryCount increments the retry count and marks for retry
func (r *AssessmentJobRepository) IncrementRetryCount(ctx context.Context, jobID uuid.UUID, errMsg string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AssessmentJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"retry_count": gorm.Expr("retry_count + 1"),
			"status":      entities.AssessmentJobStatusRetrying,
			"last_error":  errMsg,
			"updated_at":  now,
		}).Error
}

// CountActiveJobsByDeal returns how many pending/running/retrying jobs
// exist for a deal. The review scheduler uses this to avoid stacking
// duplicate jobs.
func (r *AssessmentJobRepository) CountActiveJobsByDeal(ctx context.Context, dealID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.AssessmentJob{}).
		Where("deal_id = ? AND status IN ?", dealID, []entities.AssessmentJobStatus{
			entities.AssessmentJobStatusPending,
			entities.AssessmentJobStatusRunning,
			entities.AssessmentJobStatusRetrying,
		}).
		Count(&count).Error
	return count, err
}

// RequeueZombieJobs moves jobs stuck in running longer than the cutoff
// back to retrying. Happens when a worker dies mid-job.
func (r *AssessmentJobRepository) RequeueZombieJobs(ctx context.Context, stuckSince time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.AssessmentJob{}).
		Where("status = ? AND started_at < ?", entities.AssessmentJobStatusRunning, stuckSince).
		Updates(map[string]interface{}{
			"status":      entities.AssessmentJobStatusRetrying,
			"retry_count": gorm.Expr("retry_count + 1"),
			"last_error":  "job exceeded processing deadline",
			"updated_at":  time.Now(),
		})
	return result.RowsAffected, result.Error
}
