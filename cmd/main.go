package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"chat-rooms/broadcast"
	httpserver "chat-rooms/infrastructure/http/server"
	"chat-rooms/moderation"
	"chat-rooms/names"
	"chat-rooms/registry"
	"chat-rooms/runtime/workers"
	"chat-rooms/services"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer executes before the process
// exits and the entry point stays testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	replacement, err := characterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Moderation dictionaries
	wordList, err := moderation.LoadWordList()
	if err != nil {
		return fmt.Errorf("loading censored words: %w", err)
	}
	log.Info(fmt.Sprintf("%d censored words loaded [%s]",
		len(wordList.Words), strings.Join(wordList.Languages, ",")))

	moderator, err := moderation.NewModerator(wordList.Words, replacement)
	if err != nil {
		return fmt.Errorf("building moderator: %w", err)
	}

	// 3. Core wiring
	rooms := registry.NewRoomRegistry()
	channels := broadcast.NewChannelRegistry(log, config.ConnectionBufferSize)
	allocator := names.NewAllocator(rooms.IsUsernameTaken)
	chat := services.NewChatService(log, rooms, channels, allocator, moderator, clockwork.NewRealClock())

	// 4. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewHealthWorker(log, config.MetricInterval),
		workers.NewReporterWorker(log, rooms, config.MetricInterval),
	)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 6. HTTP server
	srv := httpserver.NewServer(log, chat)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address)
		if err := srv.Start(address); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

func characterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("CHARACTER_REPLACEMENT must be a single character, got %q", str)
	}
	return r[0], nil
}
