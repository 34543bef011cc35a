package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress     string `yaml:"server_address"`
	Environment       string `yaml:"environment"`
	TrustProxyHeaders bool   `yaml:"trust_proxy_headers"` // local server behind a reverse proxy

	// AWS configuration
	AWSRegion       string `yaml:"aws_region"`
	DynamoDBTable   string `yaml:"table_name"`
	EntityIndexName string `yaml:"entity_index_name"`
	EventBusName    string `yaml:"event_bus_name"`
	StorageBackend  string `yaml:"storage_backend"`

	// Game data ingestion
	GameDataURL     string        `yaml:"game_data_url"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout"`
	WriteMaxRetries int           `yaml:"write_max_retries"`
	SyncOnStart     bool          `yaml:"sync_on_start"` // local server: load the export into storage at startup

	// Authentication
	AdminSecret    string `yaml:"admin_secret"`
	PriceRateLimit int    `yaml:"price_rate_limit"` // POST /prices per IP per minute

	// Query cache
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Feature flags
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableTracing bool `yaml:"enable_tracing"`
	Debug         bool `yaml:"debug"`

	// File the YAML overlay was read from, if any
	ConfigFile string `yaml:"-"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		ServerAddress:   ":8080",
		Environment:     "development",
		AWSRegion:       "us-east-1",
		DynamoDBTable:   "GorgonZola",
		EntityIndexName: "entityIndex",
		StorageBackend:  StorageDynamoDB,
		GameDataURL:     "https://cdn.projectgorgon.com/v456/data",
		FetchTimeout:    30 * time.Second,
		WriteMaxRetries: 3,
		PriceRateLimit:  30,
		CacheTTLSeconds: 300,
		LogLevel:        "info",
	}
}

// LoadConfig loads defaults, then the YAML file named by CONFIG_FILE (if
// any), then environment variables, which win.
func LoadConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays the YAML file at path onto cfg
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.ConfigFile = path
	return nil
}

func (c *Config) applyEnv() {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.TrustProxyHeaders = getEnvBool("TRUST_PROXY_HEADERS", c.TrustProxyHeaders)
	c.AWSRegion = getEnv("AWS_REGION", c.AWSRegion)
	c.DynamoDBTable = getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE_NAME", c.DynamoDBTable))
	c.EntityIndexName = getEnv("ENTITY_INDEX_NAME", c.EntityIndexName)
	c.EventBusName = getEnv("EVENT_BUS_NAME", c.EventBusName)
	c.StorageBackend = strings.ToLower(getEnv("STORAGE_BACKEND", c.StorageBackend))

	c.GameDataURL = strings.TrimRight(getEnv("GAME_DATA_URL", getEnv("GORGON_CDN_BASE_URL", c.GameDataURL)), "/")
	c.FetchTimeout = getEnvDuration("FETCH_TIMEOUT", c.FetchTimeout)
	c.WriteMaxRetries = getEnvInt("WRITE_MAX_RETRIES", c.WriteMaxRetries)
	c.SyncOnStart = getEnvBool("SYNC_ON_START", c.SyncOnStart)

	c.AdminSecret = getEnv("ADMIN_SECRET", c.AdminSecret)
	c.PriceRateLimit = getEnvInt("PRICE_RATE_LIMIT", c.PriceRateLimit)
	c.CacheTTLSeconds = getEnvInt("CACHE_TTL_SECONDS", c.CacheTTLSeconds)

	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.EnableTracing = getEnvBool("ENABLE_TRACING", c.EnableTracing)
	c.Debug = getEnvBool("DEBUG", c.Debug)
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DynamoDBTable == "" {
		return fmt.Errorf("TABLE_NAME is required")
	}
	if c.EntityIndexName == "" {
		return fmt.Errorf("ENTITY_INDEX_NAME is required")
	}
	switch c.StorageBackend {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageDynamoDB, StorageMemory, c.StorageBackend)
	}
	if c.WriteMaxRetries < 1 {
		return fmt.Errorf("WRITE_MAX_RETRIES must be at least 1")
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS cannot be negative")
	}

	if c.IsProduction() {
		if c.AdminSecret == "" {
			return fmt.Errorf("ADMIN_SECRET is required in production")
		}
		if c.StorageBackend == StorageMemory {
			return fmt.Errorf("memory storage is not allowed in production")
		}
	}

	return nil
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CacheTTL returns the query cache lifetime
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
