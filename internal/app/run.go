// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/domdist/internal/ctxlog"
	"github.com/specialistvlad/domdist/internal/runner"
	"github.com/specialistvlad/domdist/internal/testcase"
)

// errorLine is printed in place of a distance for cases that failed, so that
// output line N always belongs to case N.
const errorLine = "error"

// Run loads the configured cases, evaluates them and prints one distance per
// case to the output writer.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger.With("run_id", uuid.NewString()))
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "config", *a.config)
	started := time.Now()

	if a.config.HealthcheckPort > 0 {
		if _, err := a.startHealthcheckServer(ctx, fmt.Sprintf(":%d", a.config.HealthcheckPort)); err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, a.closeHealthcheckServer(ctx))
		}()
	}

	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	cases, err := a.loadCases(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cases: %w", err)
	}
	if len(cases) == 0 {
		logger.Warn("No cases found, execution not required.", "path", a.config.CasesPath)
		return nil
	}

	model, err := a.config.costModel()
	if err != nil {
		return err
	}
	r, err := runner.New(runner.Config{
		Model:    model,
		Workers:  a.config.Workers,
		Script:   a.config.Script,
		FailFast: a.config.FailFast,
		Metrics:  a.metrics,
	})
	if err != nil {
		return err
	}

	logger.Info("🚀 Evaluating cases...", "cases", len(cases), "workers", a.config.Workers)
	results, runErr := r.Run(ctx, cases)

	if err := a.writeResults(results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	var mismatches []error
	if a.config.Check {
		for _, res := range results {
			if err := res.Check(); err != nil {
				logger.Warn("Distance does not match expectation.", "case", res.Case.Name, "source", res.Case.Source, "error", err)
				mismatches = append(mismatches, err)
			}
		}
	}

	logger.Info("🏁 Execution finished.",
		"cases", len(results),
		"mismatches", len(mismatches),
		"elapsed", time.Since(started),
	)

	if runErr != nil {
		return fmt.Errorf("execution failed: %w", runErr)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d of %d cases did not match their expected distance: %w", len(mismatches), len(results), errors.Join(mismatches...))
	}
	return nil
}

func (a *App) loadCases(ctx context.Context) ([]testcase.Case, error) {
	if a.config.CasesPath == StdinPath {
		return testcase.ReadText(a.in, "stdin")
	}
	return testcase.Load(ctx, a.config.CasesPath)
}

func (a *App) writeResults(results []runner.Result) error {
	var b strings.Builder
	for _, res := range results {
		if res.Err != nil {
			b.WriteString(errorLine)
			b.WriteByte('\n')
			continue
		}
		fmt.Fprintf(&b, "%d\n", res.Distance)
		if a.config.Script {
			for _, op := range res.Script {
				fmt.Fprintf(&b, "  %s\n", op)
			}
		}
	}
	_, err := io.WriteString(a.outW, b.String())
	return err
}
