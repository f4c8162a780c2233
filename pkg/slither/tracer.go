package slither

import (
	"fmt"
	"io"
)

// Rejection describes one CEGAR loop iteration that failed validation:
// the model that was tried and the components the validator found in
// it, reported as the blocking clauses that will be taught back to the
// backend before the next attempt.
type Rejection struct {
	Attempt  int
	Blocking []Clause
}

// Tracer observes CEGAR rejections. It exists purely for diagnostics;
// a Driver's correctness never depends on whether one is attached.
type Tracer interface {
	Trace(r Rejection)
}

// DefaultTracer discards every rejection.
type DefaultTracer struct{}

func (DefaultTracer) Trace(Rejection) {}

// LoggingTracer writes a short line per rejection to Writer.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(r Rejection) {
	fmt.Fprintf(t.Writer, "attempt %d: rejected, %d blocking clause(s) added\n", r.Attempt, len(r.Blocking))
}
