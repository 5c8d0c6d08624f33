// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/specialistvlad/domdist/internal/app"
)

// Environment variables that provide flag defaults. A .env file in the working
// directory is loaded first; variables already set in the process win.
const (
	EnvWorkers   = "DOMDIST_WORKERS"
	EnvLogLevel  = "DOMDIST_LOG_LEVEL"
	EnvLogFormat = "DOMDIST_LOG_FORMAT"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded environment defaults from .env file.")
	}

	defaultWorkers, err := envInt(EnvWorkers, 4)
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	var (
		casesPath        string
		workers          int
		logFormat        string
		logLevel         string
		healthPort       int
		script           bool
		check            bool
		failFast         bool
		timeout          time.Duration
		deleteWeight     int
		insertWeight     int
		substituteWeight int
		ran              bool
		positional       []string
	)

	cmd := &cobra.Command{
		Use:   "domdist [flags] [CASES_PATH|-]",
		Short: "Compute edit distances between selector sequences.",
		Long: `domdist - minimum edit cost between sequences of CSS-selector-like elements.

CASES_PATH is a case file (.txt, .hcl, .yaml), a directory of case files, or
"-" to read the three-line text format from standard input. One distance is
printed per case, in input order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			positional = args
			return nil
		},
	}
	cmd.SetOut(output)
	cmd.SetErr(output)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	flags := cmd.Flags()
	flags.StringVarP(&casesPath, "cases", "c", "", "Path to the case file or directory.")
	flags.IntVarP(&workers, "workers", "w", defaultWorkers, "Number of cases evaluated concurrently (env "+EnvWorkers+").")
	flags.StringVar(&logFormat, "log-format", envString(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json' (env "+EnvLogFormat+").")
	flags.StringVar(&logLevel, "log-level", envString(EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error' (env "+EnvLogLevel+").")
	flags.IntVar(&healthPort, "healthcheck-port", 0, "Port for the /health and /metrics server. 0 is disabled.")
	flags.BoolVar(&script, "script", false, "Print the edit script under each distance.")
	flags.BoolVar(&check, "check", false, "Fail when a distance differs from the expected value in the case file.")
	flags.BoolVar(&failFast, "fail-fast", false, "Stop at the first case with an invalid selector.")
	flags.DurationVar(&timeout, "timeout", 0, "Wall-clock limit for the whole run. 0 is unlimited.")
	flags.IntVar(&deleteWeight, "delete-weight", 1, "Multiplier applied to every delete cost.")
	flags.IntVar(&insertWeight, "insert-weight", 1, "Multiplier applied to every insert cost.")
	flags.IntVar(&substituteWeight, "substitute-weight", 1, "Multiplier applied to every substitute cost.")

	if err := cmd.Execute(); err != nil {
		return nil, false, usageError("%v", err)
	}
	if !ran {
		// Help was requested and has already been printed.
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.")

	path := casesPath
	if path == "" && len(positional) > 0 {
		path = positional[0]
	}
	slog.Debug("Cases path determined.", "path", path)

	if path == "" {
		slog.Debug("No cases path provided, printing usage and exiting.")
		_ = cmd.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		CasesPath:        path,
		Workers:          workers,
		Script:           script,
		Check:            check,
		FailFast:         failFast,
		Timeout:          timeout,
		DeleteWeight:     deleteWeight,
		InsertWeight:     insertWeight,
		SubstituteWeight: substituteWeight,
		LogFormat:        strings.ToLower(logFormat),
		LogLevel:         strings.ToLower(logLevel),
		HealthcheckPort:  healthPort,
	})
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", key, v)
	}
	return n, nil
}
