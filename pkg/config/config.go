package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Webhook    WebhookConfig
	Classifier ClassifierConfig
	Storage    StorageConfig
	Worker     WorkerConfig
	Cache      CacheConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"deal_insight"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration. When disabled the service
// falls back to the in-process cache.
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// JWTConfig holds service token configuration
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	Expiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
}

// WebhookConfig holds inbound webhook verification configuration
type WebhookConfig struct {
	Secret string `envconfig:"WEBHOOK_SECRET" default:""`
}

// ClassifierConfig holds stakeholder role classifier configuration
type ClassifierConfig struct {
	Provider string        `envconfig:"CLASSIFIER_PROVIDER" default:"groq"`
	APIKey   string        `envconfig:"GROQ_API_KEY" default:""`
	Model    string        `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
	Timeout  time.Duration `envconfig:"CLASSIFIER_TIMEOUT" default:"30s"`
}

// StorageConfig holds object storage configuration for assessment archives
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"deal-insight"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// WorkerConfig holds background assessment worker configuration
type WorkerConfig struct {
	Count          int           `envconfig:"WORKER_COUNT" default:"3"`
	PollInterval   time.Duration `envconfig:"WORKER_POLL_INTERVAL" default:"5s"`
	ReviewInterval time.Duration `envconfig:"REVIEW_SCAN_INTERVAL" default:"10m"`
	SweepInterval  time.Duration `envconfig:"ZOMBIE_SWEEP_INTERVAL" default:"5m"`
	ZombieAge      time.Duration `envconfig:"ZOMBIE_JOB_AGE" default:"15m"`
	JobTimeout     time.Duration `envconfig:"JOB_TIMEOUT" default:"2m"`
}

// CacheConfig holds assessment cache configuration
type CacheConfig struct {
	TTL time.Duration `envconfig:"CACHE_TTL" default:"1h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.IsProduction() && c.JWT.Secret == "change-me-in-production" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if c.IsProduction() && c.Webhook.Secret == "" {
		return fmt.Errorf("WEBHOOK_SECRET is required in production")
	}
	if c.Classifier.Provider == "groq" && c.Classifier.APIKey == "" && c.IsProduction() {
		return fmt.Errorf("GROQ_API_KEY is required when CLASSIFIER_PROVIDER=groq")
	}
	if c.Worker.Count < 1 {
		return fmt.Errorf("WORKER_COUNT must be at least 1")
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
