// Soundpost is the command-line companion to soundpostd. It synthesizes
// speech with Deepgram's Aura voices and either plays it on the local audio
// device or writes a WAV file, without needing a running daemon.
//
// Usage:
//
//	soundpost --text "Hello there!"
//	soundpost --file story.txt --voice Zeus --output story.wav
//	soundpost --list-voices
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nadzzz/soundpost/internal/config"
	"github.com/nadzzz/soundpost/internal/engine"
	"github.com/nadzzz/soundpost/internal/playback"
	"github.com/nadzzz/soundpost/internal/speech"
	"github.com/nadzzz/soundpost/internal/tts/deepgram"
	"github.com/nadzzz/soundpost/internal/voices"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagText       string
	flagFile       string
	flagVoice      string
	flagOutput     string
	flagListVoices bool
)

var rootCmd = &cobra.Command{
	Use:           "soundpost",
	Short:         "Turn text into speech with Deepgram Aura voices",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	Long: `Soundpost converts text to speech using Deepgram's Aura voices.

By default the audio plays on the local audio device; pass --output to
write a WAV file instead. The Deepgram credential is read from
DEEPGRAM_API_KEY, or from a .env file in the working directory.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagText, "text", "t", "", "text to synthesize")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "read the text from a file")
	rootCmd.Flags().StringVarP(&flagVoice, "voice", "v", "", "voice name (default "+voices.DefaultName+")")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write WAV to this path instead of playing")
	rootCmd.Flags().BoolVarP(&flagListVoices, "list-voices", "l", false, "list available voices and exit")

	rootCmd.MarkFlagsMutuallyExclusive("text", "file")
}

func run(cmd *cobra.Command, args []string) error {
	registry := voices.NewRegistry()

	if flagListVoices {
		listVoices(registry)
		return nil
	}

	text, err := resolveText()
	if err != nil {
		return err
	}

	// .env is a convenience for local use; absence is fine.
	_ = godotenv.Load()

	key := os.Getenv("DEEPGRAM_API_KEY")
	if key == "" {
		return errors.New("DEEPGRAM_API_KEY must be set")
	}

	synth := deepgram.New(config.DeepgramConfig{APIKey: key})
	defer synth.Close()

	player := playback.New()
	defer player.Close()

	eng := engine.New(registry, synth, player)

	sel := speech.Default()
	if flagVoice != "" {
		sel = speech.Requested(flagVoice)
	}

	ctx := cmd.Context()

	if flagOutput != "" {
		payload, voice, err := eng.Synthesize(ctx, text, sel)
		if err != nil {
			return err
		}
		if err := eng.WriteFile(payload, flagOutput); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d bytes, voice %s)\n", flagOutput, len(payload.Audio), voice.Name)
		return nil
	}

	voice, err := eng.Speak(ctx, text, sel)
	if errors.Is(err, playback.ErrUnsupported) {
		return errors.New("this build has no audio output: rebuild with -tags portaudio or use --output")
	}
	if err != nil {
		return err
	}
	fmt.Printf("Spoken by %s.\n", voice.Name)
	return nil
}

// resolveText picks the input text from --text or --file.
func resolveText() (string, error) {
	switch {
	case flagText != "":
		return flagText, nil
	case flagFile != "":
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return "", fmt.Errorf("reading text file: %w", err)
		}
		return string(data), nil
	default:
		return "", errors.New("either --text or --file must be provided")
	}
}

func listVoices(registry *voices.Registry) {
	fmt.Printf("Available voices (default: %s):\n", registry.Default().Name)
	for _, v := range registry.All() {
		fmt.Printf("  %-8s %s\n", v.Name, v.Model)
	}
}

func main() {
	// Keep engine logs off stdout and quiet unless something is wrong.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	// Ctrl-C interrupts synthesis and playback mid-stream.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
