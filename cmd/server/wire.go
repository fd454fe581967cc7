package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Vijaybattula26/gemini-ats/pkg/config"
	"github.com/Vijaybattula26/gemini-ats/pkg/events"
	"github.com/Vijaybattula26/gemini-ats/pkg/filestore"
	"github.com/Vijaybattula26/gemini-ats/pkg/health"
	"github.com/Vijaybattula26/gemini-ats/pkg/health/checkers"
	"github.com/Vijaybattula26/gemini-ats/pkg/llm"
	"github.com/Vijaybattula26/gemini-ats/pkg/llm/cache"
	"github.com/Vijaybattula26/gemini-ats/pkg/llm/gemini"
	"github.com/Vijaybattula26/gemini-ats/pkg/llm/openrouter"
	pgrepo "github.com/Vijaybattula26/gemini-ats/pkg/repository/postgres"
	sqliterepo "github.com/Vijaybattula26/gemini-ats/pkg/repository/sqlite"
	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
	"github.com/Vijaybattula26/gemini-ats/pkg/storage/postgres"
	"github.com/Vijaybattula26/gemini-ats/pkg/storage/sqlite"
)

type store struct {
	kind    string
	repo    resume.Repository
	checker health.Checker
	close   func() error
}

// openStore connects to PostgreSQL when DATABASE_URL is set and falls back
// to a local SQLite file otherwise. Both paths apply migrations.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*store, error) {
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		repo, err := pgrepo.NewResumeRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("init resume repo: %w", err)
		}
		return &store{
			kind:    "postgres",
			repo:    repo,
			checker: checkers.NewPingChecker("postgres", pool),
			close:   func() error { pool.Close(); return nil },
		}, nil
	}

	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	repo, err := sqliterepo.NewResumeRepository(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init resume repo: %w", err)
	}
	logger.Info("using sqlite store", "path", cfg.SQLitePath)
	return &store{
		kind:    "sqlite",
		repo:    repo,
		checker: checkers.NewPingChecker("sqlite", repo),
		close:   db.Close,
	}, nil
}

// buildChatModel picks the provider, bounds every call with the configured
// timeout and, when REDIS_URL is set, caches completions in Redis.
func buildChatModel(ctx context.Context, cfg config.Config, logger *slog.Logger) (llm.ChatModel, health.Checker, func() error, error) {
	var (
		base      llm.ChatModel
		namespace string
	)
	switch strings.ToLower(cfg.LLMProvider) {
	case "openrouter":
		client := openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		)
		base, namespace = client, "openrouter:"+client.Model
	case "gemini", "":
		client := gemini.New(gemini.Config{
			APIKey:      cfg.GoogleAPIKey,
			Model:       cfg.GeminiModel,
			Backend:     cfg.GeminiBackend,
			Project:     cfg.GCPProject,
			Location:    cfg.GCPLocation,
			Temperature: float32(cfg.Temperature),
		})
		if cfg.GoogleAPIKey == "" && !strings.EqualFold(cfg.GeminiBackend, "vertex") {
			logger.Warn("GOOGLE_API_KEY is not set; processing requests will fail until it is configured")
		}
		base, namespace = client, "gemini:"+client.Model()
	default:
		return nil, nil, nil, fmt.Errorf("unknown LLM_PROVIDER %q: use gemini or openrouter", cfg.LLMProvider)
	}
	model := llm.WithTimeout(base, cfg.LLMTimeout())

	if cfg.RedisURL == "" {
		return model, nil, nil, nil
	}
	rs, err := cache.NewRedisStore(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("llm response cache enabled", "ttl", cfg.LLMCacheTTL())
	return cache.Wrap(model, rs, namespace, cfg.LLMCacheTTL(), logger), checkers.NewPingChecker("redis", rs), rs.Close, nil
}

func buildFileStore(ctx context.Context, cfg config.Config) (filestore.Store, error) {
	if cfg.S3Bucket != "" {
		return filestore.NewS3(ctx, filestore.S3Config{
			Bucket:      cfg.S3Bucket,
			Region:      cfg.S3Region,
			EndpointURL: cfg.S3Endpoint,
			AccessKey:   cfg.S3AccessKey,
			SecretKey:   cfg.S3SecretKey,
			Prefix:      "resumes/",
		})
	}
	return filestore.NewLocal(cfg.UploadDir)
}

func buildPublisher(cfg config.Config, logger *slog.Logger) (events.Publisher, health.Checker, error) {
	if cfg.RabbitMQURL == "" {
		return events.Nop{}, nil, nil
	}
	pub, err := events.NewRabbitMQ(cfg.RabbitMQURL, cfg.RabbitMQExchange)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("publishing events", "exchange", cfg.RabbitMQExchange)
	return pub, checkers.NewPingChecker("rabbitmq", pub), nil
}

// optionalCheckers drops the checkers of components that are not configured.
func optionalCheckers(cs ...health.Checker) []health.Checker {
	out := make([]health.Checker, 0, len(cs))
	for _, c := range cs {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
