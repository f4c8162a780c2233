package slither

import (
	"context"
	"fmt"
	"time"
)

// Subscriber is notified with a snapshot of the board's current
// partial decode and stats between pulling a model and validating it.
// Subscribers must not mutate the board.
type Subscriber func(b *Board, stats Stats)

// DriverConfig controls the parts of the CEGAR loop that aren't fixed
// by the puzzle itself: whether the C7 acceleration clauses are taught
// up front, and where CEGAR rejections get traced to.
type DriverConfig struct {
	Heuristics bool
	Tracer     Tracer
}

// defaultDriverConfig matches Solve's behavior: heuristics on, no tracer.
func defaultDriverConfig() DriverConfig {
	return DriverConfig{Heuristics: true, Tracer: DefaultTracer{}}
}

// Solve runs the CEGAR loop against b with the default configuration
// (heuristics enabled, no tracer). It matches the language-neutral
// solver entry point from spec.md §6 exactly, modulo ctx standing in
// for the cancel flag.
func Solve(ctx context.Context, b *Board, subs ...Subscriber) (*Board, error) {
	return SolveWith(ctx, b, defaultDriverConfig(), subs...)
}

// SolveWith runs the CEGAR loop against b with an explicit
// DriverConfig, for callers (the CLI's --no-heuristics/--verbose
// flags) that need to deviate from Solve's defaults.
func SolveWith(ctx context.Context, b *Board, cfg DriverConfig, subs ...Subscriber) (*Board, error) {
	if cfg.Tracer == nil {
		cfg.Tracer = DefaultTracer{}
	}

	b.AssignEdges()
	backend := NewBackend(b.NumEdges())
	backend.AddClauses(BuildClauses(b))
	if cfg.Heuristics {
		backend.AddClauses(HeuristicClauses(b))
	}

	var stats Stats
	defer func() { b.Stats = stats }()

	for {
		stats.Clauses = backend.NofClauses()
		stats.Vars = backend.NofVars()

		if err := ctx.Err(); err != nil {
			stats.Cancelled = true
			b.Solved = false
			return b, nil
		}

		start := time.Now()
		model, ok, err := backend.NextModel()
		stats.Elapsed += time.Since(start)
		if err != nil {
			return b, fmt.Errorf("slither: sat backend: %w", err)
		}
		if !ok {
			b.Solved = false
			return b, nil
		}
		stats.Models++

		g := Decode(b, model)
		if len(subs) > 0 {
			b.Graph = g
			for _, sub := range subs {
				sub(b, stats)
			}
		}

		result, err := Validate(ctx, b, g)
		if err != nil {
			if ctx.Err() != nil {
				stats.Cancelled = true
				b.Solved = false
				return b, nil
			}
			return b, fmt.Errorf("slither: validation failed: %w", err)
		}

		if result.Accepted {
			b.Graph = g
			b.Solved = true
			stats.Clauses = backend.NofClauses()
			return b, nil
		}

		stats.Retried++
		backend.AddClauses(result.Blocking)
		cfg.Tracer.Trace(Rejection{Attempt: stats.Models, Blocking: result.Blocking})
	}
}
