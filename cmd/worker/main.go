package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	internalredis "github.com/farhanashraf/domain-assistants/internal/redis"
	"github.com/farhanashraf/domain-assistants/internal/setup"
	setuplogger "github.com/farhanashraf/domain-assistants/internal/setup/logger"
	streamredis "github.com/farhanashraf/domain-assistants/internal/stream/redis"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	log.Logger = setuplogger.New(os.Stderr, os.Getenv("LOG_LEVEL"))
	logger := log.Logger

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to wire dependencies")
	}
	defer deps.Close()

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisClient, err := internalredis.ConnectRedis(ctx, redisAddr, os.Getenv("REDIS_PASSWORD"), 5, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	streamCfg := streamredis.Config{
		Addr:         redisAddr,
		InStream:     getEnv("CHAT_IN_STREAM", "chat:requests"),
		OutStream:    getEnv("CHAT_OUT_STREAM", "chat:replies"),
		GroupID:      getEnv("CHAT_GROUP_ID", "assistants"),
		ConsumerName: getEnv("CHAT_CONSUMER_NAME", "worker-1"),
	}

	consumer := streamredis.NewConsumer(redisClient, streamCfg, deps.Registry, deps.Pipeline, &logger)
	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up consumer group")
	}

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Consumer failed")
	}

	log.Info().Msg("Worker stopped")
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
