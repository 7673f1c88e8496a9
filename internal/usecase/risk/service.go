package risk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dealinsight-dev/deal-insight/internal/adapter/repository"
	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	domainrepo "github.com/dealinsight-dev/deal-insight/internal/domain/repositories"
	"github.com/dealinsight-dev/deal-insight/internal/infrastructure/cache"
	"github.com/dealinsight-dev/deal-insight/internal/infrastructure/metrics"
	"github.com/dealinsight-dev/deal-insight/internal/infrastructure/storage"
	"github.com/dealinsight-dev/deal-insight/internal/usecase/classify"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
	"github.com/dealinsight-dev/deal-insight/pkg/config"
)

// Service defines risk assessment orchestration methods
type Service interface {
	// AssessDealRisk returns the current assessment for a deal, serving
	// from cache when fresh and computing otherwise
	AssessDealRisk(ctx context.Context, dealID, organizationID uuid.UUID) (*entities.DealRiskAssessment, error)

	// RefreshAssessment discards any cached assessment and recomputes
	RefreshAssessment(ctx context.Context, dealID, organizationID uuid.UUID) (*entities.DealRiskAssessment, error)

	// InvalidateAssessment drops the cached assessment for a deal
	InvalidateAssessment(ctx context.Context, dealID uuid.UUID)

	// GetAssessmentHistory lists past assessments, most recent first
	GetAssessmentHistory(ctx context.Context, dealID, organizationID uuid.UUID, limit int) ([]*entities.DealRiskAssessment, error)

	// ExportAssessment archives the current assessment to object storage
	// and returns a presigned URL for the archived object
	ExportAssessment(ctx context.Context, dealID, organizationID uuid.UUID) (string, error)

	// EnqueueAssessment schedules a background recomputation for a deal
	EnqueueAssessment(ctx context.Context, dealID, organizationID uuid.UUID, trigger entities.AssessmentTrigger) error

	// StartWorkerPool starts the background assessment workers
	StartWorkerPool(ctx context.Context, workerCount int) error

	// StopWorkerPool gracefully stops all worker goroutines
	StopWorkerPool() error
}

type riskService struct {
	dealRepo        domainrepo.DealRepository
	interactionRepo domainrepo.InteractionRepository
	assessmentRepo  domainrepo.AssessmentRepository
	jobRepo         *repository.AssessmentJobRepository
	cacheStore      cache.Cache
	storageClient   *storage.MinIOClient
	stakeholders    *StakeholderAnalyzer
	engagement      *EngagementTracker
	staleness       *StalenessDetector
	clk             clock.Clock
	cfg             *config.Config
	logger          *zap.Logger

	workerStopChan      chan struct{}
	workerWg            sync.WaitGroup
	isWorkerPoolRunning bool
	workerMutex         sync.Mutex
}

// NewRiskService constructs the risk assessment service
func NewRiskService(
	dealRepo domainrepo.DealRepository,
	interactionRepo domainrepo.InteractionRepository,
	assessmentRepo domainrepo.AssessmentRepository,
	jobRepo *repository.AssessmentJobRepository,
	classifier classify.RoleClassifier,
	cacheStore cache.Cache,
	storageClient *storage.MinIOClient,
	clk clock.Clock,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &riskService{
		dealRepo:        dealRepo,
		interactionRepo: interactionRepo,
		assessmentRepo:  assessmentRepo,
		jobRepo:         jobRepo,
		cacheStore:      cacheStore,
		storageClient:   storageClient,
		stakeholders:    NewStakeholderAnalyzer(classifier, logger),
		engagement:      NewEngagementTracker(clk),
		staleness:       NewStalenessDetector(clk),
		clk:             clk,
		cfg:             cfg,
		logger:          logger,
		workerStopChan:  make(chan struct{}),
	}
}

// AssessDealRisk returns the current assessment for a deal. The cache is
// consulted first; a miss triggers a full recomputation which is then
// persisted, cached, and returned.
func (s *riskService) AssessDealRisk(ctx context.Context, dealID, organizationID uuid.UUID) (*entities.DealRiskAssessment, error) {
	deal, err := s.getDeal(ctx, organizationID, dealID)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cachedAssessment(ctx, dealID); ok {
		metrics.CacheHits.Inc()
		return cached, nil
	}
	metrics.CacheMisses.Inc()

	return s.computeAndStore(ctx, deal)
}

// RefreshAssessment drops the cached assessment and computes a new one
func (s *riskService) RefreshAssessment(ctx context.Context, dealID, organizationID uuid.UUID) (*entities.DealRiskAssessment, error) {
	deal, err := s.getDeal(ctx, organizationID, dealID)
	if err != nil {
		return nil, err
	}

	s.InvalidateAssessment(ctx, dealID)

	return s.computeAndStore(ctx, deal)
}

// InvalidateAssessment drops the cached assessment for a deal. The cache
// is non-authoritative, so a failed delete is logged and swallowed.
func (s *riskService) InvalidateAssessment(ctx context.Context, dealID uuid.UUID) {
	if err := s.cacheStore.Delete(ctx, cache.AssessmentKey(dealID)); err != nil {
		s.logger.Warn("⚠️ Failed to invalidate cached assessment",
			zap.String("deal_id", dealID.String()),
			zap.Error(err))
	}
}

// GetAssessmentHistory lists persisted assessments for a deal
func (s *riskService) GetAssessmentHistory(ctx context.Context, dealID, organizationID uuid.UUID, limit int) ([]*entities.DealRiskAssessment, error) {
	if _, err := s.getDeal(ctx, organizationID, dealID); err != nil {
		return nil, err
	}

	assessments, err := s.assessmentRepo.ListByDeal(ctx, dealID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}

// ExportAssessment archives the current assessment as a JSON object and
// returns a presigned URL to it
func (s *riskService) ExportAssessment(ctx context.Context, dealID, organizationID uuid.UUID) (string, error) {
	if s.storageClient == nil {
		return "", usecaseErrors.ErrStorageUnavailable
	}

	assessment, err := s.AssessDealRisk(ctx, dealID, organizationID)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(assessment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecaseErrors.ErrAssessmentExportFailed, err)
	}

	objectName := storage.AssessmentObjectName(organizationID, dealID, assessment.GeneratedAt)
	if err := s.storageClient.UploadJSON(ctx, objectName, payload); err != nil {
		return "", fmt.Errorf("%w: %v", usecaseErrors.ErrAssessmentExportFailed, err)
	}

	url, err := s.storageClient.GetFileURL(ctx, objectName, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecaseErrors.ErrAssessmentExportFailed, err)
	}

	s.logger.Info("✅ Assessment exported",
		zap.String("deal_id", dealID.String()),
		zap.String("object", objectName))

	return url, nil
}

// EnqueueAssessment schedules a background recomputation for a deal
func (s *riskService) EnqueueAssessment(ctx context.Context, dealID, organizationID uuid.UUID, trigger entities.AssessmentTrigger) error {
	job := entities.NewAssessmentJob(dealID, organizationID, trigger)
	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue assessment job: %w", err)
	}

	s.logger.Info("📋 Assessment job enqueued",
		zap.String("job_id", job.ID.String()),
		zap.String("deal_id", dealID.String()),
		zap.String("trigger", string(trigger)))

	return nil
}

// getDeal loads a deal scoped to its organization, mapping a missing row
// to the not-found sentinel
func (s *riskService) getDeal(ctx context.Context, organizationID, dealID uuid.UUID) (*entities.Deal, error) {
	deal, err := s.dealRepo.FindByID(ctx, organizationID, dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	return deal, nil
}

// cachedAssessment reads the cache, treating any failure as a miss
func (s *riskService) cachedAssessment(ctx context.Context, dealID uuid.UUID) (*entities.DealRiskAssessment, bool) {
	data, hit, err := s.cacheStore.Get(ctx, cache.AssessmentKey(dealID))
	if err != nil {
		s.logger.Warn("⚠️ Assessment cache read failed, computing fresh",
			zap.String("deal_id", dealID.String()),
			zap.Error(err))
		return nil, false
	}
	if !hit {
		return nil, false
	}

	var assessment entities.DealRiskAssessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		s.logger.Warn("⚠️ Cached assessment is unreadable, recomputing",
			zap.String("deal_id", dealID.String()),
			zap.Error(err))
		return nil, false
	}
	return &assessment, true
}

// computeAndStore fetches the interaction history, runs the full
// assessment pipeline, and persists the result everywhere it lives: the
// assessments table, the deal's risk snapshot, and the cache. Persistence
// failures degrade to logs; only an unreadable history fails the call.
func (s *riskService) computeAndStore(ctx context.Context, deal *entities.Deal) (*entities.DealRiskAssessment, error) {
	metrics.AssessmentRequests.Inc()
	start := time.Now()

	history, err := s.interactionRepo.FetchHistory(ctx, deal.ID)
	if err != nil {
		metrics.AssessmentErrors.Inc()
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInteractionFetchFailed, err)
	}

	assessment := s.computeAssessment(ctx, deal, history)

	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		s.logger.Error("❌ Failed to persist assessment",
			zap.String("deal_id", deal.ID.String()),
			zap.Error(err))
	}

	if err := s.dealRepo.UpdateRiskSnapshot(ctx, deal.ID, assessment.OverallRisk, assessment.RiskLevel,
		assessment.GeneratedAt, assessment.NextReviewDate); err != nil {
		s.logger.Error("❌ Failed to update deal risk snapshot",
			zap.String("deal_id", deal.ID.String()),
			zap.Error(err))
	}

	s.writeCache(ctx, assessment)

	metrics.AssessmentDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("✅ Risk assessment computed",
		zap.String("deal_id", deal.ID.String()),
		zap.Int("overall_risk", assessment.OverallRisk),
		zap.String("risk_level", string(assessment.RiskLevel)),
		zap.Int("interaction_count", len(history)))

	return assessment, nil
}

// computeAssessment fans the detectors out over the same history snapshot
// and joins their results. Every detector goroutine recovers its own
// panic and leaves its zero-risk default in place, so no single detector
// can abort the assessment. The engagement-drop factor is derived after
// the barrier from the tracker's output.
func (s *riskService) computeAssessment(ctx context.Context, deal *entities.Deal, history []*entities.Interaction) *entities.DealRiskAssessment {
	var (
		missing         entities.MissingStakeholderFactor
		low             entities.LowEngagementFactor
		competitive     entities.CompetitiveFactor
		budget          entities.BudgetConcernsFactor
		nextSteps       entities.MissingNextStepsFactor
		stale           entities.StaleDealFactor
		engagementState entities.EngagementMetrics
	)

	var wg sync.WaitGroup
	runDetector := func(name string, fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("❌ Risk detector panicked, using zero-risk default",
						zap.String("detector", name),
						zap.String("deal_id", deal.ID.String()),
						zap.Any("panic", r))
				}
			}()
			fn()
		}()
	}

	runDetector("stakeholders", func() {
		analysis := s.stakeholders.Analyze(ctx, history)
		missing = missingStakeholdersFactor(analysis)
	})
	runDetector("engagement", func() {
		engagementState = s.engagement.Track(history)
		low = lowEngagementFactor(engagementState)
	})
	runDetector("competitive", func() {
		competitive = DetectCompetitiveMentions(history)
	})
	runDetector("budget", func() {
		budget = DetectBudgetConcerns(history)
	})
	runDetector("next_steps", func() {
		nextSteps = DetectMissingNextSteps(history)
	})
	runDetector("staleness", func() {
		stale = s.staleness.Detect(history)
	})

	wg.Wait()

	factors := entities.RiskFactors{
		MissingStakeholders: missing,
		LowEngagement:       low,
		CompetitivePresence: competitive,
		EngagementDrop:      engagementDropFactor(engagementState),
		StaleDeal:           stale,
		MissingNextSteps:    nextSteps,
		BudgetConcerns:      budget,
	}

	overall := factors.WeightedScore()
	level := entities.RiskLevelFromScore(overall)
	now := s.clk.Now().UTC()

	return &entities.DealRiskAssessment{
		ID:              uuid.New(),
		DealID:          deal.ID,
		OrganizationID:  deal.OrganizationID,
		OverallRisk:     overall,
		RiskLevel:       level,
		Factors:         factors,
		Recommendations: BuildRecommendations(factors, deal.Stage),
		GeneratedAt:     now,
		NextReviewDate:  now.Add(entities.ReviewInterval(level)),
	}
}

// writeCache stores the assessment under the deal's cache key. Cache
// failures are logged and skipped.
func (s *riskService) writeCache(ctx context.Context, assessment *entities.DealRiskAssessment) {
	payload, err := json.Marshal(assessment)
	if err != nil {
		s.logger.Warn("⚠️ Failed to marshal assessment for cache",
			zap.String("deal_id", assessment.DealID.String()),
			zap.Error(err))
		return
	}

	if err := s.cacheStore.Set(ctx, cache.AssessmentKey(assessment.DealID), payload, s.cfg.Cache.TTL); err != nil {
		s.logger.Warn("⚠️ Assessment cache write failed, skipping",
			zap.String("deal_id", assessment.DealID.String()),
			zap.Error(err))
	}
}

// archiveAssessment uploads the assessment JSON to the archive bucket.
// Archiving is best-effort and never fails a job.
func (s *riskService) archiveAssessment(ctx context.Context, assessment *entities.DealRiskAssessment) {
	if s.storageClient == nil {
		return
	}

	payload, err := json.Marshal(assessment)
	if err != nil {
		s.logger.Warn("⚠️ Failed to marshal assessment for archive",
			zap.String("deal_id", assessment.DealID.String()),
			zap.Error(err))
		return
	}

	objectName := storage.AssessmentObjectName(assessment.OrganizationID, assessment.DealID, assessment.GeneratedAt)
	if err := s.storageClient.UploadJSON(ctx, objectName, payload); err != nil {
		s.logger.Warn("⚠️ Failed to archive assessment",
			zap.String("deal_id", assessment.DealID.String()),
			zap.String("object", objectName),
			zap.Error(err))
		return
	}

	s.logger.Info("📦 Assessment archived",
		zap.String("deal_id", assessment.DealID.String()),
		zap.String("object", objectName))
}
