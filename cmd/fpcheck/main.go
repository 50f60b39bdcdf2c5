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

// Command fpcheck sweeps the fpc packages over large input sets and reports
// any value that breaks a promised property.
//
// Usage:
//
//	fpcheck                                   # all checks, default sweep
//	fpcheck -checks rounding,half -stride 1   # exhaustive float32 sweep
//	fpcheck -width 64 -samples 1000000 -soft  # float64 on the software path
//	fpcheck -json -v                          # JSON logs with debug output
//
// The exit status is 1 for invalid flags and when any check fails.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strings"
	"time"

	"fortio.org/safecast"

	"github.com/ajroetker/go-fpcore/fpc"
	"github.com/ajroetker/go-fpcore/internal/verify"
)

// errChecksFailed reports that the sweep ran but found failures.
var errChecksFailed = errors.New("checks failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// run parses args, runs the requested checks and logs one record per check
// to logOut.
func run(ctx context.Context, args []string, logOut io.Writer) error {
	def := verify.DefaultConfig()
	fs := flag.NewFlagSet("fpcheck", flag.ContinueOnError)
	fs.SetOutput(logOut)
	var (
		checks  = fs.String("checks", "all", "Comma-separated checks ("+strings.Join(verify.Checks(), ",")+") or 'all'")
		width   = fs.Int("width", def.Width, "Float width to check: 32 (bit-pattern sweep) or 64 (random samples)")
		stride  = fs.Uint64("stride", uint64(def.Stride), "Step between swept float32 bit patterns (1 = exhaustive)")
		samples = fs.Int("samples", def.Samples, "Random samples for float64 sweeps and the interval check")
		seed    = fs.Int64("seed", def.Seed, "Seed for random sampling")
		workers = fs.Int("workers", 0, "Worker goroutines (default: GOMAXPROCS)")
		soft    = fs.Bool("soft", fpc.SoftFloatEnv(), "Force the software evaluation path (also FPC_SOFT_FLOAT)")
		asJSON  = fs.Bool("json", false, "Log JSON records instead of text")
		verbose = fs.Bool("v", false, "Log debug records")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	stride32, err := safecast.Conv[uint32](*stride)
	if err != nil || stride32 == 0 {
		return fmt.Errorf("-stride must be in [1, %d]", uint64(math.MaxUint32))
	}

	logger := newLogger(logOut, *asJSON, *verbose)
	if *soft {
		prev := fpc.SetPath(fpc.PathSoftware)
		defer fpc.SetPath(prev)
	}

	cfg := verify.Config{
		Width:   *width,
		Stride:  stride32,
		Samples: *samples,
		Seed:    *seed,
		Workers: *workers,
	}
	names := parseChecks(*checks)
	logger.Debug("starting",
		"checks", names,
		"path", fpc.CurrentPath().String(),
		"fma", fpc.HasFMA(),
		"round_instructions", fpc.HasRoundInstructions(),
		"width", cfg.Width,
		"stride", cfg.Stride,
		"samples", cfg.Samples)

	start := time.Now()
	reports, err := verify.Run(ctx, cfg, names...)
	for _, r := range reports {
		if r.OK() {
			logger.Info("check passed", "report", r)
		} else {
			logger.Error("check failed", "report", r)
		}
	}
	if err != nil {
		return err
	}
	logger.Debug("done", "elapsed", time.Since(start))

	for _, r := range reports {
		if !r.OK() {
			return errChecksFailed
		}
	}
	return nil
}

func newLogger(w io.Writer, asJSON, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseChecks splits a comma-separated list. The empty list, or any list
// naming "all", selects every check.
func parseChecks(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		switch p {
		case "":
		case "all":
			return nil
		default:
			result = append(result, p)
		}
	}
	return result
}
