package slither

import "time"

// Stats are the running counters a Driver accumulates over one Solve
// call. It is populated on every return path, including error returns,
// so a caller never loses visibility into work already performed.
type Stats struct {
	Models    int           // candidate models pulled from the SAT backend
	Retried   int           // CEGAR rejections (blocking clauses added)
	Clauses   int           // clauses currently taught to the backend
	Vars      int           // SAT variables in play (one per edge)
	Elapsed   time.Duration // wall-clock time spent inside the backend
	Cancelled bool          // true if the loop exited due to ctx.Err()
}
