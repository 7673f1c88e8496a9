package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/dealinsight-dev/deal-insight/pkg/validator"

	_ "github.com/dealinsight-dev/deal-insight/docs"
	"github.com/dealinsight-dev/deal-insight/internal/adapter/handler"
	"github.com/dealinsight-dev/deal-insight/internal/adapter/repository"
	"github.com/dealinsight-dev/deal-insight/internal/infrastructure/cache"
	"github.com/dealinsight-dev/deal-insight/internal/infrastructure/database"
	httpmw "github.com/dealinsight-dev/deal-insight/internal/infrastructure/http/middleware"
	"github.com/dealinsight-dev/deal-insight/internal/infrastructure/storage"
	"github.com/dealinsight-dev/deal-insight/internal/usecase/classify"
	"github.com/dealinsight-dev/deal-insight/internal/usecase/deal"
	"github.com/dealinsight-dev/deal-insight/internal/usecase/risk"
	"github.com/dealinsight-dev/deal-insight/pkg/config"
	"github.com/dealinsight-dev/deal-insight/pkg/jwt"
)

// @title           Deal Insight API
// @version         1.0
// @description     Deal risk assessment service for sales opportunities. Ingests meeting interactions, scores seven risk factors per deal, and exposes assessments over REST.

// @contact.name   API Support
// @contact.email  support@dealinsight.dev

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a service JWT.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize assessment cache
	var cacheStore cache.Cache
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisCache, err := cache.NewRedisCache(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		cacheStore = redisCache
	} else {
		log.Println("📦 Redis disabled, using in-process assessment cache")
		cacheStore = cache.NewMemoryCache()
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	dealRepo := repository.NewDealRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	jobRepo := repository.NewAssessmentJobRepository(db)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize stakeholder role classifier
	log.Println("🤖 Initializing role classifier...")
	classifier := classify.New(&cfg.Classifier, logger)
	log.Printf("✅ Classifier provider: %s", cfg.Classifier.Provider)

	// Initialize object storage for assessment exports
	var storageClient *storage.MinIOClient
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		storageClient, err = storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
	} else {
		log.Println("⚠️  Object storage disabled, assessment export unavailable")
	}

	// Initialize JWT manager for service tokens
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize risk service
	log.Println("📊 Initializing risk service...")
	riskService := risk.NewRiskService(
		dealRepo,
		interactionRepo,
		assessmentRepo,
		jobRepo,
		classifier,
		cacheStore,
		storageClient,
		clock.New(),
		cfg,
		logger,
	)

	// Start background assessment workers
	log.Printf("👷 Starting %d assessment worker(s)...", cfg.Worker.Count)
	if err := riskService.StartWorkerPool(context.Background(), cfg.Worker.Count); err != nil {
		log.Fatalf("Failed to start worker pool: %v", err)
	}

	// Initialize deal service
	log.Println("💼 Initializing deal service...")
	dealService := deal.NewDealService(dealRepo, interactionRepo, riskService, logger)

	// Initialize handlers
	dealHandler := handler.NewDealHandler(dealService, logger)
	riskHandler := handler.NewRiskHandler(riskService, logger)
	webhookHandler := handler.NewWebhookHandler(dealService, cfg.Webhook.Secret, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	serviceAuth := httpmw.ServiceAuth(jwtManager)
	router := handler.NewRouter(cfg, dealHandler, riskHandler, webhookHandler, serviceAuth)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if err := riskService.StopWorkerPool(); err != nil {
		log.Printf("⚠️  Worker pool shutdown: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
