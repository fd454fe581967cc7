package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Port           string `yaml:"port"`
	UploadDir      string `yaml:"upload_dir"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`

	// Store: PostgreSQL when DatabaseURL is set, SQLite file otherwise.
	DatabaseURL string `yaml:"database_url"`
	SQLitePath  string `yaml:"sqlite_path"`

	LLMProvider       string `yaml:"llm_provider"`
	LLMTimeoutSeconds int    `yaml:"llm_timeout_seconds"`
	LLMCacheTTLMin    int    `yaml:"llm_cache_ttl_minutes"`

	GoogleAPIKey  string  `yaml:"google_api_key"`
	GeminiModel   string  `yaml:"gemini_model"`
	GeminiBackend string  `yaml:"gemini_backend"`
	GCPProject    string  `yaml:"google_cloud_project"`
	GCPLocation   string  `yaml:"google_cloud_location"`
	Temperature   float64 `yaml:"temperature"`

	OpenRouterAPIKey   string `yaml:"openrouter_api_key"`
	OpenRouterBase     string `yaml:"openrouter_base_url"`
	OpenRouterModel    string `yaml:"openrouter_model"`
	OpenRouterAppTitle string `yaml:"openrouter_app_title"`
	OpenRouterReferer  string `yaml:"openrouter_referer"`

	RedisURL         string `yaml:"redis_url"`
	RabbitMQURL      string `yaml:"rabbitmq_url"`
	RabbitMQExchange string `yaml:"rabbitmq_exchange"`

	S3Bucket    string `yaml:"s3_bucket"`
	S3Region    string `yaml:"s3_region"`
	S3Endpoint  string `yaml:"s3_endpoint"`
	S3AccessKey string `yaml:"s3_access_key"`
	S3SecretKey string `yaml:"s3_secret_key"`

	UnidocLicenseKey string `yaml:"unidoc_license_key"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:              "5000",
		UploadDir:         "uploads",
		MaxUploadBytes:    15 << 20, // 15MB
		SQLitePath:        "ats.db",
		LLMProvider:       "gemini",
		LLMTimeoutSeconds: 60,
		LLMCacheTTLMin:    24 * 60,
		GeminiModel:       "gemini-1.5-flash",
		GeminiBackend:     "gemini",
		Temperature:       0.2,
		RabbitMQExchange:  "ats.events",
		S3Region:          "us-east-1",
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

// Load reads environment variables, optionally from a .env file if present.
// When CONFIG_FILE names a YAML file its values sit between the defaults and
// the environment.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.UploadDir = getEnv("UPLOAD_DIR", cfg.UploadDir)
	cfg.MaxUploadBytes = int64(getEnvInt("MAX_UPLOAD_BYTES", int(cfg.MaxUploadBytes)))
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)

	cfg.LLMProvider = getEnv("LLM_PROVIDER", cfg.LLMProvider)
	cfg.LLMTimeoutSeconds = getEnvInt("LLM_TIMEOUT_SECONDS", cfg.LLMTimeoutSeconds)
	cfg.LLMCacheTTLMin = getEnvInt("LLM_CACHE_TTL_MINUTES", cfg.LLMCacheTTLMin)
	cfg.GoogleAPIKey = getEnv("GOOGLE_API_KEY", cfg.GoogleAPIKey)
	cfg.GeminiModel = getEnv("GEMINI_MODEL", cfg.GeminiModel)
	cfg.GeminiBackend = getEnv("GEMINI_BACKEND", cfg.GeminiBackend)
	cfg.GCPProject = getEnv("GOOGLE_CLOUD_PROJECT", cfg.GCPProject)
	cfg.GCPLocation = getEnv("GOOGLE_CLOUD_LOCATION", cfg.GCPLocation)
	cfg.Temperature = getEnvFloat("LLM_TEMPERATURE", cfg.Temperature)

	cfg.OpenRouterAPIKey = getEnv("OPENROUTER_API_KEY", cfg.OpenRouterAPIKey)
	cfg.OpenRouterBase = getEnv("OPENROUTER_BASE_URL", cfg.OpenRouterBase)
	cfg.OpenRouterModel = getEnv("OPENROUTER_MODEL", cfg.OpenRouterModel)
	cfg.OpenRouterAppTitle = getEnv("OPENROUTER_APP_TITLE", cfg.OpenRouterAppTitle)
	cfg.OpenRouterReferer = getEnv("OPENROUTER_REFERER", cfg.OpenRouterReferer)

	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.RabbitMQURL = getEnv("RABBITMQ_URL", cfg.RabbitMQURL)
	cfg.RabbitMQExchange = getEnv("RABBITMQ_EXCHANGE", cfg.RabbitMQExchange)

	cfg.S3Bucket = getEnv("S3_BUCKET", cfg.S3Bucket)
	cfg.S3Region = getEnv("S3_REGION", cfg.S3Region)
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", cfg.S3SecretKey)

	cfg.UnidocLicenseKey = getEnv("UNIDOC_LICENSE_KEY", cfg.UnidocLicenseKey)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
}

// LLMTimeout is the per-call deadline for model requests.
func (c Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

func (c Config) LLMCacheTTL() time.Duration {
	return time.Duration(c.LLMCacheTTLMin) * time.Minute
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
