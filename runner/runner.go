// SPDX-License-Identifier: MIT

package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/trackswitch/annotate"
	"github.com/katalvlaran/trackswitch/input"
	"github.com/katalvlaran/trackswitch/search"
	"github.com/katalvlaran/trackswitch/track"
)

// ErrTooManySwitches indicates a system larger than the configured limit.
// Run reports it while decoding, before the system's declarations are read.
var ErrTooManySwitches = input.ErrTooManySwitches

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMaxSwitches rejects systems with more than n switches; 0 disables it.
func WithMaxSwitches(n int) Option {
	return func(r *Runner) { r.maxSwitches = n }
}

// WithValidation toggles structural checks before each search.
func WithValidation(on bool) Option {
	return func(r *Runner) { r.validate = on }
}

// Runner drives the per-system pipeline.
type Runner struct {
	log         *zap.Logger
	maxSwitches int
	validate    bool
}

// New returns a Runner with a no-op logger, no size limit and validation on.
func New(opts ...Option) *Runner {
	r := &Runner{log: zap.NewNop(), validate: true}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Solution is the outcome for one system.
type Solution struct {
	Entry  int
	Path   []int
	Throws int
	Tokens []annotate.Token
	Stats  search.Stats
}

// Line returns the annotated route as printed in the report.
func (s Solution) Line() string { return annotate.Format(s.Tokens) }

// Summary aggregates a Run.
type Summary struct {
	Systems     int
	TotalThrows int
}

// SolveSystem builds, checks and solves one system.
func (r *Runner) SolveSystem(ctx context.Context, sys track.System) (Solution, error) {
	if r.maxSwitches > 0 && sys.Size() > r.maxSwitches {
		return Solution{}, fmt.Errorf("%w: %d > %d", ErrTooManySwitches, sys.Size(), r.maxSwitches)
	}

	nw, err := track.Build(sys)
	if err != nil {
		return Solution{}, err
	}
	if r.validate {
		if err = nw.Validate(); err != nil {
			return Solution{}, err
		}
	}

	entry := nw.Entry()
	res, err := search.Solve(nw, entry, search.WithContext(ctx))
	if err != nil {
		return Solution{}, err
	}
	tokens, err := annotate.Annotate(nw, res.Path)
	if err != nil {
		return Solution{}, err
	}
	if marked := annotate.Throws(tokens); marked != res.Throws {
		return Solution{}, fmt.Errorf("runner: %d marked switches for %d throws", marked, res.Throws)
	}

	return Solution{
		Entry:  entry,
		Path:   res.Path,
		Throws: res.Throws,
		Tokens: tokens,
		Stats:  res.Stats,
	}, nil
}

// Run solves every system read from in and writes the report to out,
// flushing after each system. It stops at the first failing system.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	var sum Summary
	dec := input.NewDecoder(in, input.WithMaxSwitches(r.maxSwitches))
	total, err := dec.Count()
	if err != nil {
		return sum, err
	}
	r.log.Info("Solving track systems", zap.Int("systems", total))

	w := bufio.NewWriter(out)
	for n := 1; ; n++ {
		sys, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("track system %d: %w", n, err)
		}

		sol, err := r.SolveSystem(ctx, sys)
		if err != nil {
			r.log.Error("Track system failed", zap.Int("system", n), zap.Error(err))
			return sum, fmt.Errorf("track system %d: %w", n, err)
		}
		r.log.Debug("Track system solved",
			zap.Int("system", n),
			zap.Int("switches", sys.Size()),
			zap.Int("entry", sol.Entry),
			zap.Int("throws", sol.Throws),
			zap.Int("visited", sol.Stats.Visited),
			zap.Int("pruned", sol.Stats.Pruned))

		if _, err = fmt.Fprintf(w, "Track System %d:\n%s\n\n", n, sol.Line()); err != nil {
			return sum, err
		}
		if err = w.Flush(); err != nil {
			return sum, err
		}
		sum.Systems++
		sum.TotalThrows += sol.Throws
	}

	r.log.Info("Done", zap.Int("systems", sum.Systems), zap.Int("throws", sum.TotalThrows))

	return sum, nil
}
