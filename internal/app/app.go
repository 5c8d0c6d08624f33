// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/domdist/internal/metrics"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	config  *Config
	in      io.Reader
	outW    io.Writer
	logger  *slog.Logger
	metrics *metrics.Metrics

	httpServer *http.Server
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW; in is only read when the case path is StdinPath.
func NewApp(cfg *Config, in io.Reader, outW, logW io.Writer) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		config:  cfg,
		in:      in,
		outW:    outW,
		logger:  logger,
		metrics: metrics.New(),
	}
}

// Metrics returns the application's collectors. This is primarily for testing.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}
