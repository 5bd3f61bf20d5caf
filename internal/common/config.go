package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Broker   BrokerConfig
	Database DatabaseConfig
	OCR      OCRConfig
	Analysis AnalysisConfig
	Worker   WorkerConfig
}

// BrokerConfig holds queue-broker configuration
type BrokerConfig struct {
	RedisURL       string
	DequeueTimeout time.Duration // BRPOP timeout so workers can poll for shutdown
	AckMode        bool          // move-to-processing-list + explicit ack instead of destructive pop
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// OCRConfig holds recognition-engine configuration
type OCRConfig struct {
	TessdataDir string
	CallTimeout time.Duration // per engine invocation; an overrun is a failed candidate
	Parallelism int           // concurrent strategy attempts per job (1 = sequential)
}

// AnalysisConfig holds the external analysis collaborator configuration
type AnalysisConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
	Placeholder string // analysis_text substituted when the collaborator is unavailable
}

// WorkerConfig holds per-process worker loop configuration
type WorkerConfig struct {
	JobTimeout   time.Duration // whole-pipeline budget for one job
	GRPCAddr     string        // health endpoint
	StoreTries   int           // bounded storage insert attempts
	StoreBackoff time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Broker: BrokerConfig{
			RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
			DequeueTimeout: getEnvAsDuration("BROKER_DEQUEUE_TIMEOUT", 30*time.Second),
			AckMode:        getEnvAsBool("BROKER_ACK_MODE", false),
		},
		Database: DatabaseConfig{
			DSN:              getEnv("DATABASE_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		OCR: OCRConfig{
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			CallTimeout: getEnvAsDuration("OCR_CALL_TIMEOUT", 30*time.Second),
			Parallelism: getEnvAsInt("OCR_PARALLELISM", 1),
		},
		Analysis: AnalysisConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.5),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			Placeholder: getEnv("ANALYSIS_PLACEHOLDER", "Analysis unavailable."),
		},
		Worker: WorkerConfig{
			JobTimeout:   getEnvAsDuration("JOB_TIMEOUT", 3*time.Minute),
			GRPCAddr:     getEnv("GRPC_ADDR", ":8090"),
			StoreTries:   getEnvAsInt("STORE_RETRIES", 3),
			StoreBackoff: getEnvAsDuration("STORE_BACKOFF", 2*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration for a worker that needs both
// the broker and the analysis collaborator. The storage sink additionally
// requires the database DSN.
func (c *Config) Validate() error {
	if c.Broker.RedisURL == "" {
		return NewAppError("CONFIG_ERROR", "REDIS_URL is required", ErrInvalidPayload)
	}
	if c.Analysis.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidPayload)
	}
	return nil
}

// ValidateStorage validates the configuration for the storage sink role.
func (c *Config) ValidateStorage() error {
	if c.Broker.RedisURL == "" {
		return NewAppError("CONFIG_ERROR", "REDIS_URL is required", ErrInvalidPayload)
	}
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DATABASE_URL is required", ErrInvalidPayload)
	}
	return nil
}
