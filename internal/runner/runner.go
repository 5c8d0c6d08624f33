// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package runner evaluates test cases concurrently and collects their results
// in input order.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/domdist/internal/align"
	"github.com/specialistvlad/domdist/internal/cost"
	"github.com/specialistvlad/domdist/internal/ctxlog"
	"github.com/specialistvlad/domdist/internal/metrics"
	"github.com/specialistvlad/domdist/internal/selector"
	"github.com/specialistvlad/domdist/internal/testcase"
)

// Config controls a Runner.
type Config struct {
	// Workers is the number of cases evaluated at the same time.
	Workers int
	// Script asks for the edit script of every case, not just its cost.
	Script bool
	// FailFast stops scheduling cases after the first case error.
	FailFast bool
	// Model prices the edit operations. Nil selects cost.Default.
	Model cost.Model
	// Metrics receives per-case observations. Nil disables them.
	Metrics *metrics.Metrics
	// CacheSize bounds the selector cache. Zero selects the default size.
	CacheSize int
}

// Runner evaluates cases. It holds no per-run state and may be reused,
// including by concurrent Run calls; they share the selector cache.
type Runner struct {
	cfg   Config
	cache *selector.Cache
}

// Result is the outcome of one case.
type Result struct {
	Case     testcase.Case
	Distance int
	Script   align.Script
	Elapsed  time.Duration
	// Err is a *CaseError for unparseable selectors, or the context error for
	// cases that never ran.
	Err error
}

// Check returns a *MismatchError when the case records an expected distance
// that differs from the computed one.
func (r Result) Check() error {
	if r.Err != nil || r.Case.Expected == nil || *r.Case.Expected == r.Distance {
		return nil
	}
	return &MismatchError{Case: r.Case, Got: r.Distance, Want: *r.Case.Expected}
}

// New validates cfg and returns a Runner.
func New(cfg Config) (*Runner, error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("runner needs at least one worker, got %d", cfg.Workers)
	}
	if cfg.Model == nil {
		cfg.Model = cost.Default
	}
	cache, err := selector.NewCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, cache: cache}, nil
}

// Run evaluates every case and returns one result per case, in input order.
//
// Case errors are recorded on their results and joined into the returned
// error. With FailFast, the first case error is returned and cases that had
// not started yet carry the cancellation error instead.
func (r *Runner) Run(ctx context.Context, cases []testcase.Case) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Runner starting.", "cases", len(cases), "workers", r.cfg.Workers)

	tracker := r.cache.Track()
	results := make([]Result, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Case: c, Err: err}
				return nil
			}
			results[i] = r.evaluate(gctx, tracker, c)
			if r.cfg.FailFast && results[i].Err != nil {
				return results[i].Err
			}
			return nil
		})
	}
	firstErr := g.Wait()

	lookups := tracker.Stats()
	r.cfg.Metrics.AddCacheLookups(lookups.Hits, lookups.Misses)
	logger.Debug("Runner finished.", "cache_hits", lookups.Hits, "cache_misses", lookups.Misses)

	if firstErr != nil {
		return results, firstErr
	}

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return results, errors.Join(errs...)
}

func (r *Runner) evaluate(ctx context.Context, tracker *selector.Tracker, c testcase.Case) Result {
	logger := ctxlog.FromContext(ctxlog.With(ctx, "case", c.Name, "source", c.Source))
	start := time.Now()
	res := Result{Case: c}

	original, err := tracker.ParseDOM(c.Original)
	if err != nil {
		res.Err = &CaseError{Case: c, Side: SideOriginal, Err: err}
	}
	target, err := tracker.ParseDOM(c.Target)
	if err != nil && res.Err == nil {
		res.Err = &CaseError{Case: c, Side: SideTarget, Err: err}
	}
	if res.Err != nil {
		res.Elapsed = time.Since(start)
		logger.Warn("Case has an invalid selector.", "error", res.Err)
		r.cfg.Metrics.ObserveCase(metrics.ResultError, 0, res.Elapsed)
		return res
	}

	if r.cfg.Script {
		a := align.AlignWith(r.cfg.Model, original, target)
		res.Distance, res.Script = a.Cost, a.Script
	} else {
		res.Distance = align.DistanceWith(r.cfg.Model, original, target)
	}
	res.Elapsed = time.Since(start)

	result := metrics.ResultOK
	if res.Check() != nil {
		result = metrics.ResultMismatch
	}
	r.cfg.Metrics.ObserveCase(result, (len(original)+1)*(len(target)+1), res.Elapsed)
	logger.Debug("Case evaluated.", "distance", res.Distance, "result", result, "elapsed", res.Elapsed)
	return res
}
