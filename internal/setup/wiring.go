package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/farhanashraf/domain-assistants/internal/agent"
	"github.com/farhanashraf/domain-assistants/internal/assistant"
	"github.com/farhanashraf/domain-assistants/internal/config"
	"github.com/farhanashraf/domain-assistants/internal/llm"
	"github.com/farhanashraf/domain-assistants/internal/llm/bedrock"
	"github.com/farhanashraf/domain-assistants/internal/llm/gemini"
	"github.com/farhanashraf/domain-assistants/internal/store"
	"github.com/rs/zerolog"
)

type Config struct {
	DefaultProvider string
	GeminiAPIKey    string
	GeminiBaseURL   string
	GeminiModelID   string
	AWSRegion       string
	ClaudeModelID   string
	DatabaseURL     string
	MaxToolRounds   int
}

type Dependencies struct {
	Registry    *assistant.Registry
	Pipeline    *agent.Pipeline
	Transcripts store.TranscriptStore
	Logger      *zerolog.Logger

	closeStore func()
}

// Close releases pooled resources. Safe to call when no database is wired.
func (d *Dependencies) Close() {
	if d.closeStore != nil {
		d.closeStore()
	}
}

func LoadConfig() *Config {
	return &Config{
		DefaultProvider: getEnv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL:   getEnv("GEMINI_BASE_URL", gemini.DefaultBaseURL),
		GeminiModelID:   getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:   getEnv("CLAUDE_MODEL_ID", ""),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		MaxToolRounds:   getEnvInt("MAX_TOOL_ROUNDS", 8),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	chatClient, err := createChatClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat client: %w", err)
	}

	// Assistant policies: built-in defaults plus optional YAML overrides
	assistantsConfig, err := config.LoadAssistantsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load assistants config: %w", err)
	}

	registry, err := assistant.Build(assistantsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build assistant registry: %w", err)
	}

	// Transcripts are optional: without a database the store is a no-op.
	var transcripts store.TranscriptStore = store.NopStore{}
	var closeStore func()
	if cfg.DatabaseURL != "" {
		pgStore, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create transcript store: %w", err)
		}
		// pgxpool.New does not dial; fail fast on an unreachable database.
		if err := pgStore.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to ping transcript database: %w", err)
		}
		transcripts = pgStore
		closeStore = pgStore.Close
	}

	pipeline := agent.NewPipeline(chatClient, transcripts, cfg.MaxToolRounds, logger)

	for _, a := range registry.List() {
		logger.Info().
			Str("assistant", a.Name()).
			Int("tools", len(a.Tools().Tools())).
			Msg("assistant registered")
	}

	return &Dependencies{
		Registry:    registry,
		Pipeline:    pipeline,
		Transcripts: transcripts,
		Logger:      logger,
		closeStore:  closeStore,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func createChatClient(ctx context.Context, provider string, cfg *Config) (llm.ChatClient, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "gemini":
		return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModelID)
	default:
		return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModelID)
	}
}
