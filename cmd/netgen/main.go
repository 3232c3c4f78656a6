// Package main prints reproducible samples of the netgen generators.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/authcorp/netgen/internal/config"
	"github.com/authcorp/netgen/sample"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("netgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML or JSON profile")
	kind := fs.String("kind", "", "generator kind, one of: "+strings.Join(config.Kinds, ", "))
	count := fs.Int("n", 0, "number of values to print")
	seed := fs.Int("seed", 0, "seed of the first value")
	printConfig := fs.Bool("print-config", false, "print the effective profile as YAML and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	profile, err := config.Read(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "kind":
			profile.Kind = *kind
		case "n":
			profile.Count = *count
		case "seed":
			profile.Seed = *seed
		}
	})
	if err := profile.Validate(); err != nil {
		return err
	}
	if *printConfig {
		return profile.WriteYAML(stdout)
	}

	logger := NewLogger(profile, stderr)
	logger.Debug("profile loaded", "config", *configPath, "kind", profile.Kind)

	gen, err := profile.Generator()
	if err != nil {
		logger.Error("invalid constraints", "kind", profile.Kind, "error", err)
		return err
	}
	values, err := sample.Sample(gen, profile.Count, profile.Seed)
	for _, v := range values {
		fmt.Fprintln(stdout, v)
	}
	if err != nil {
		logger.Error("sampling stopped", "kind", profile.Kind, "produced", len(values), "error", err)
		return err
	}
	logger.Info("sampling complete", "kind", profile.Kind, "count", len(values), "seed", profile.Seed)
	return nil
}

// NewLogger creates a structured logger based on the profile.
func NewLogger(profile *config.Profile, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(profile.LogLevel),
	}

	switch profile.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("component", "netgen")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
