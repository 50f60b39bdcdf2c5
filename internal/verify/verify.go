// Copyright 2025 go-fpcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package verify sweeps large input sets through the fpc packages and checks
// the properties they promise: rounding idempotence and agreement with the
// standard library, NextUp/NextDown ordering, correctly rounded Half
// conversion, and interval enclosure of exact results.
//
// Checks run concurrently, each one spreading its sweep over a shared
// workerpool.Pool.
package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-fpcore/fpc"
	"github.com/ajroetker/go-fpcore/fpc/contrib/workerpool"
)

var (
	// ErrUnknownCheck is returned by Run for a check name it does not know.
	ErrUnknownCheck = errors.New("verify: unknown check")

	// ErrInvalidConfig is returned by Run for an unusable Config.
	ErrInvalidConfig = errors.New("verify: invalid config")
)

// Config controls the size of the sweeps.
type Config struct {
	// Width selects float32 (32) or float64 (64) inputs. float32 inputs are
	// swept by bit pattern; float64 inputs are sampled at random.
	Width int

	// Stride is the step between swept float32 bit patterns. 1 is
	// exhaustive.
	Stride uint32

	// Samples is the number of random inputs for float64 sweeps and for the
	// interval check.
	Samples int

	// Seed makes random sampling reproducible.
	Seed int64

	// Workers is the size of the worker pool; <= 0 means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns a Config that finishes in a few seconds.
func DefaultConfig() Config {
	return Config{
		Width:   32,
		Stride:  4099,
		Samples: 100_000,
		Seed:    1,
	}
}

func (c Config) validate() error {
	switch {
	case c.Width != 32 && c.Width != 64:
		return fmt.Errorf("%w: width %d, want 32 or 64", ErrInvalidConfig, c.Width)
	case c.Stride == 0:
		return fmt.Errorf("%w: stride must be positive", ErrInvalidConfig)
	case c.Samples < 0:
		return fmt.Errorf("%w: negative sample count %d", ErrInvalidConfig, c.Samples)
	}
	return nil
}

// Report is the outcome of one check.
type Report struct {
	Check        string `json:"check"`
	Path         string `json:"path"`
	Tested       int64  `json:"tested"`
	Failures     int64  `json:"failures"`
	FirstFailure string `json:"first_failure,omitempty"`
}

// OK reports whether the check found no failures.
func (r Report) OK() bool {
	return r.Failures == 0
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("check", r.Check),
		slog.String("path", r.Path),
		slog.Int64("tested", r.Tested),
		slog.Int64("failures", r.Failures),
	}
	if r.FirstFailure != "" {
		attrs = append(attrs, slog.String("first_failure", r.FirstFailure))
	}
	return slog.GroupValue(attrs...)
}

type checkFunc func(ctx context.Context, pool *workerpool.Pool, cfg Config, rec *recorder) error

var checks = map[string]checkFunc{
	"rounding": checkRounding,
	"next":     checkNext,
	"half":     checkHalf,
	"interval": checkInterval,
}

// Checks returns the names of all checks in sorted order.
func Checks() []string {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run executes the named checks, or all of them if names is empty, and
// returns one Report per check in the order requested.
//
// Failures of the checked properties are reported, not returned as errors.
// The error is non-nil only for bad arguments or when ctx is cancelled, in
// which case the reports cover the inputs tested so far.
func Run(ctx context.Context, cfg Config, names ...string) ([]Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		names = Checks()
	}
	fns := make([]checkFunc, len(names))
	for i, name := range names {
		fn, ok := checks[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCheck, name)
		}
		fns[i] = fn
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	path := fpc.CurrentPath().String()
	recs := make([]*recorder, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, fn := range fns {
		recs[i] = &recorder{}
		g.Go(func() error {
			return fn(gctx, pool, cfg, recs[i])
		})
	}
	err := g.Wait()

	reports := make([]Report, len(names))
	for i, name := range names {
		reports[i] = recs[i].report(name, path)
	}
	return reports, err
}
