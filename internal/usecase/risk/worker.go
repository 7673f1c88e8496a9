package risk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/infrastructure/metrics"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
	"github.com/dealinsight-dev/deal-insight/pkg/jobcontext"
)

// StartWorkerPool starts background workers that process assessment jobs,
// plus the review scheduler and the zombie-job sweeper
func (s *riskService) StartWorkerPool(ctx context.Context, workerCount int) error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool already running")
	}

	s.isWorkerPoolRunning = true
	s.workerStopChan = make(chan struct{})

	s.logger.Info("🚀 Starting assessment worker pool",
		zap.Int("worker_count", workerCount),
		zap.Duration("poll_interval", s.cfg.Worker.PollInterval))

	for i := 0; i < workerCount; i++ {
		s.workerWg.Add(1)
		go s.assessmentWorker(ctx, i)
	}

	s.workerWg.Add(1)
	go s.reviewScheduler(ctx)

	s.workerWg.Add(1)
	go s.zombieSweeper(ctx)

	return nil
}

// StopWorkerPool gracefully stops all worker goroutines
func (s *riskService) StopWorkerPool() error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if !s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool not running")
	}

	s.logger.Info("🛑 Stopping assessment worker pool...")

	close(s.workerStopChan)
	s.workerWg.Wait()
	s.isWorkerPoolRunning = false

	s.logger.Info("✅ Assessment worker pool stopped")

	return nil
}

// assessmentWorker polls for claimable jobs and runs one per tick. The
// atomic claim makes it safe for several workers to see the same job.
func (s *riskService) assessmentWorker(parentCtx context.Context, workerID int) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(s.cfg.Worker.PollInterval)
	defer ticker.Stop()

	s.logger.Info("👷 Assessment worker started", zap.Int("worker_id", workerID))

	for {
		select {
		case <-s.workerStopChan:
			s.logger.Info("👷 Assessment worker stopping", zap.Int("worker_id", workerID))
			return

		case <-ticker.C:
			jobs, err := s.jobRepo.GetJobsForProcessing(parentCtx, 5)
			if err != nil {
				s.logger.Error("❌ Failed to poll assessment jobs",
					zap.Int("worker_id", workerID),
					zap.Error(err))
				continue
			}

			for i := range jobs {
				job := jobs[i]

				claimed, err := s.jobRepo.ClaimJob(parentCtx, job.ID, job.Status)
				if err != nil {
					s.logger.Error("❌ Failed to claim job",
						zap.String("job_id", job.ID.String()),
						zap.Error(err))
					continue
				}
				if !claimed {
					s.logger.Info("⏭️ Job already claimed by another worker",
						zap.String("job_id", job.ID.String()))
					continue
				}

				s.processJob(parentCtx, workerID, &job)
				break
			}
		}
	}
}

// processJob runs one claimed assessment job under the job context's
// timeout and retry wrapper, then records the outcome on the job row
func (s *riskService) processJob(parentCtx context.Context, workerID int, job *entities.AssessmentJob) {
	s.logger.Info("👷 Worker claimed job",
		zap.Int("worker_id", workerID),
		zap.String("job_id", job.ID.String()),
		zap.String("deal_id", job.DealID.String()),
		zap.String("trigger", string(job.Trigger)))

	start := time.Now()

	jobCtx, cancel := jobcontext.JobBegin(parentCtx, job.ID, job.DealID, string(job.Trigger), workerID, s.cfg.Worker.JobTimeout)

	var assessment *entities.DealRiskAssessment
	err := jobcontext.JobEnd(jobCtx, func(ctx context.Context) error {
		var runErr error
		assessment, runErr = s.runAssessmentJob(ctx, job)
		return runErr
	})

	cancel()

	if err != nil {
		s.failJob(parentCtx, job, err)
		return
	}

	metadata := entities.AssessmentJobMetadata{
		RiskScore:        assessment.OverallRisk,
		RiskLevel:        string(assessment.RiskLevel),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
	if count, countErr := s.interactionRepo.CountByDeal(parentCtx, job.DealID); countErr == nil {
		metadata.InteractionCount = int(count)
	}

	if err := s.jobRepo.MarkJobAsCompleted(parentCtx, job.ID, &assessment.ID, metadata); err != nil {
		s.logger.Error("❌ Failed to mark job as completed",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
		return
	}

	metrics.JobsProcessed.WithLabelValues("completed").Inc()

	s.logger.Info("✅ Assessment job completed",
		zap.String("job_id", job.ID.String()),
		zap.String("deal_id", job.DealID.String()),
		zap.Int("overall_risk", assessment.OverallRisk),
		zap.String("risk_level", string(assessment.RiskLevel)))
}

// runAssessmentJob executes the assessment pipeline for a job's deal and
// archives the result
func (s *riskService) runAssessmentJob(ctx context.Context, job *entities.AssessmentJob) (*entities.DealRiskAssessment, error) {
	deal, err := s.getDeal(ctx, job.OrganizationID, job.DealID)
	if err != nil {
		return nil, err
	}

	assessment, err := s.computeAndStore(ctx, deal)
	if err != nil {
		return nil, err
	}

	s.archiveAssessment(ctx, assessment)

	return assessment, nil
}

// failJob requeues a failed job for retry when attempts remain, or marks
// it failed for good. A vanished deal is never retried.
func (s *riskService) failJob(ctx context.Context, job *entities.AssessmentJob, jobErr error) {
	permanent := errors.Is(jobErr, usecaseErrors.ErrDealNotFound) || jobcontext.IsNonRetryableError(jobErr)

	if !permanent && job.RetryCount+1 < job.MaxRetries {
		if err := s.jobRepo.IncrementRetryCount(ctx, job.ID, jobErr.Error()); err != nil {
			s.logger.Error("❌ Failed to requeue job for retry",
				zap.String("job_id", job.ID.String()),
				zap.Error(err))
			return
		}

		metrics.JobsProcessed.WithLabelValues("retrying").Inc()

		s.logger.Warn("⚠️ Assessment job failed, will retry",
			zap.String("job_id", job.ID.String()),
			zap.String("deal_id", job.DealID.String()),
			zap.Int("retry_count", job.RetryCount+1),
			zap.Int("max_retries", job.MaxRetries),
			zap.Error(jobErr))
		return
	}

	if err := s.jobRepo.MarkJobAsFailed(ctx, job.ID, jobErr.Error()); err != nil {
		s.logger.Error("❌ Failed to mark job as failed",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
		return
	}

	metrics.JobsProcessed.WithLabelValues("failed").Inc()

	s.logger.Error("❌ Assessment job failed permanently",
		zap.String("job_id", job.ID.String()),
		zap.String("deal_id", job.DealID.String()),
		zap.Error(jobErr))
}

// reviewScheduler enqueues review_due jobs for deals whose next review
// date has passed
func (s *riskService) reviewScheduler(parentCtx context.Context) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(s.cfg.Worker.ReviewInterval)
	defer ticker.Stop()

	s.logger.Info("📅 Review scheduler started",
		zap.Duration("scan_interval", s.cfg.Worker.ReviewInterval))

	for {
		select {
		case <-s.workerStopChan:
			s.logger.Info("📅 Review scheduler stopping")
			return

		case <-ticker.C:
			s.scheduleDueReviews(parentCtx)
		}
	}
}

// scheduleDueReviews scans for due deals and enqueues a review job for
// each, skipping deals that already have an assessment in flight
func (s *riskService) scheduleDueReviews(ctx context.Context) {
	deals, err := s.dealRepo.FindDueForReview(ctx, s.clk.Now().UTC(), 50)
	if err != nil {
		s.logger.Error("❌ Failed to find deals due for review", zap.Error(err))
		return
	}

	for _, deal := range deals {
		active, err := s.jobRepo.CountActiveJobsByDeal(ctx, deal.ID)
		if err != nil {
			s.logger.Error("❌ Failed to count active jobs",
				zap.String("deal_id", deal.ID.String()),
				zap.Error(err))
			continue
		}
		if active > 0 {
			continue
		}

		if err := s.EnqueueAssessment(ctx, deal.ID, deal.OrganizationID, entities.AssessmentTriggerReviewDue); err != nil {
			s.logger.Error("❌ Failed to enqueue review assessment",
				zap.String("deal_id", deal.ID.String()),
				zap.Error(err))
			continue
		}

		s.logger.Info("🔄 Review assessment scheduled",
			zap.String("deal_id", deal.ID.String()),
			zap.Timep("next_review_at", deal.NextReviewAt))
	}
}

// zombieSweeper requeues jobs stuck in running, usually left behind by a
// crashed worker
func (s *riskService) zombieSweeper(parentCtx context.Context) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(s.cfg.Worker.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.workerStopChan:
			return

		case <-ticker.C:
			stuckSince := s.clk.Now().Add(-s.cfg.Worker.ZombieAge)
			requeued, err := s.jobRepo.RequeueZombieJobs(parentCtx, stuckSince)
			if err != nil {
				s.logger.Error("❌ Failed to requeue zombie jobs", zap.Error(err))
				continue
			}

			if requeued > 0 {
				s.logger.Warn("🧹 Requeued zombie assessment jobs",
					zap.Int64("count", requeued))
			}
		}
	}
}
