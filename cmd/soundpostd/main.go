// Soundpostd is the soundpost daemon: an HTTP text-to-speech gateway that
// turns text into spoken audio through Deepgram's Aura voices.
//
// Usage:
//
//	soundpostd [flags]
//	soundpostd --config /path/to/soundpost.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/nadzzz/soundpost/internal/config"
	"github.com/nadzzz/soundpost/internal/engine"
	"github.com/nadzzz/soundpost/internal/health"
	"github.com/nadzzz/soundpost/internal/playback"
	"github.com/nadzzz/soundpost/internal/server"
	"github.com/nadzzz/soundpost/internal/tts"
	"github.com/nadzzz/soundpost/internal/tts/deepgram"
	"github.com/nadzzz/soundpost/internal/voices"
)

// version is set at build time via ldflags.
var version = "dev"

// @title        Soundpost API
// @version      1.0
// @description  Text-to-speech gateway over Deepgram Aura voices.
// @BasePath     /
func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/soundpost.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("soundpostd %s\n", version)
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("soundpost starting", "version", version)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize the synthesis provider.
	var synth tts.Synthesizer
	switch cfg.TTS.Provider {
	case "deepgram":
		synth = deepgram.New(cfg.TTS.Deepgram)
		slog.Info("using Deepgram synthesizer",
			"base_url", cfg.TTS.Deepgram.BaseURL,
			"sample_rate", cfg.TTS.Deepgram.SampleRate)
	case "stub":
		synth = tts.NewStub()
		slog.Info("using stub synthesizer")
	default:
		slog.Error("unknown tts provider", "provider", cfg.TTS.Provider)
		os.Exit(1)
	}
	defer synth.Close()

	// Initialize local playback. Builds without the portaudio tag answer
	// playback requests with 503 instead of failing here.
	player := playback.New()
	defer player.Close()

	// Create the engine.
	eng := engine.New(voices.NewRegistry(), synth, player)

	// Start health check server.
	healthServer := health.New(cfg.Health.Port)
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	// Start the public HTTP API.
	srv := server.New(cfg.Server.Port, eng)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting server", "name", srv.Name())
		if err := srv.Listen(ctx); err != nil {
			slog.Error("server failed", "name", srv.Name(), "error", err)
			cancel()
		}
	}()

	// Mark as ready once the server is started.
	healthServer.SetReady(true)
	slog.Info("soundpost ready",
		"port", cfg.Server.Port,
		"health_port", cfg.Health.Port,
		"provider", synth.Name(),
		"player", player.Name())

	// Block until shutdown signal.
	<-ctx.Done()
	slog.Info("shutdown signal received, draining...")
	healthServer.SetReady(false)

	// Close the server gracefully.
	if err := srv.Close(); err != nil {
		slog.Error("server close error", "error", err)
	}

	wg.Wait()
	slog.Info("soundpost stopped")
}
