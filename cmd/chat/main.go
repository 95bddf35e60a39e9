package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/farhanashraf/domain-assistants/internal/setup"
	setuplogger "github.com/farhanashraf/domain-assistants/internal/setup/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	domain := flag.String("domain", "finance", "assistant domain (finance, health, travel)")
	flag.Parse()

	// Setup logging; keep the console writer on stderr so replies stay clean on stdout
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	log.Logger = setuplogger.New(os.Stderr, level)
	logger := log.Logger

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to wire dependencies")
	}
	defer deps.Close()

	asst, ok := deps.Registry.Get(*domain)
	if !ok {
		log.Fatal().Str("domain", *domain).Msg("Unknown assistant domain")
	}

	fmt.Println(asst.Welcome())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimRight(scanner.Text(), "\n")
		if message == "" {
			continue
		}

		result, err := deps.Pipeline.HandleMessage(ctx, asst, message)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(result.Reply)
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("Failed to read input")
	}
}
