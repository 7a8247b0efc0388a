// main is the entry point of the lessons CLI.
//
// STARTUP SEQUENCE:
//  1. Parse the command line (cobra)
//  2. Load configuration (defaults, optional YAML file, env overrides)
//  3. Initialise the logger
//  4. Build the lesson catalogue, injecting config values into the
//     practice lessons
//  5. Run the requested lessons, printing to stdout
//
// RUNNING:
//
//	go run ./cmd/lessons                      # every lesson
//	go run ./cmd/lessons list                 # what is available
//	go run ./cmd/lessons run fizzbuzz         # just one
//	go run ./cmd/lessons --config=config/local.yaml run password
package main

import (
	"io"
	"log/slog"
	"os"
)

func main() {
	// Logs go to stderr so stdout carries nothing but lesson output.
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		// cobra has already printed the error; a non-zero exit code tells
		// the shell (or CI) that something went wrong.
		os.Exit(1)
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
