package slither

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Backend adapts an incremental CDCL SAT solver to this package's
// EdgeID/Lit/Clause vocabulary. Clauses arrive from the CNF encoder and
// the heuristic rules already fully formed as DIMACS-style integer
// literals, so there is no circuit to compile: each Lit converts
// straight to a gini z.Lit via z.Dimacs2Lit and is taught to the
// solver directly.
type Backend struct {
	g        inter.S
	numEdges int
	nClauses int
}

// NewBackend returns a Backend with one pre-allocated gini variable per
// EdgeID in [1, numEdges].
func NewBackend(numEdges int) *Backend {
	g := gini.New()
	for i := 0; i < numEdges; i++ {
		g.Lit()
	}
	return &Backend{g: g, numEdges: numEdges}
}

// AddClause teaches the backend one clause.
func (bk *Backend) AddClause(c Clause) {
	for _, lit := range c {
		bk.g.Add(z.Dimacs2Lit(int(lit)))
	}
	bk.g.Add(0)
	bk.nClauses++
}

// AddClauses teaches the backend every clause in cs.
func (bk *Backend) AddClauses(cs []Clause) {
	for _, c := range cs {
		bk.AddClause(c)
	}
}

// Assume registers unit assumptions that hold for the next Solve call
// only, per gini's incremental Assumable contract.
func (bk *Backend) Assume(lits ...Lit) {
	ms := make([]z.Lit, len(lits))
	for i, l := range lits {
		ms[i] = z.Dimacs2Lit(int(l))
	}
	bk.g.Assume(ms...)
}

// NextModel runs the solver. On success it returns a model indexed by
// EdgeID (index 0 is unused padding), with model[e] true meaning edge e
// is part of the loop. ok is false and err is nil if the current
// formula, together with any pending assumptions, is unsatisfiable
// (the Unsat error kind, non-exceptional). err is non-nil only if gini
// returns neither satisfiable nor unsatisfiable, which a purely
// synchronous Solve() call should never do; that case is the
// Backend-internal error kind and is propagated verbatim.
func (bk *Backend) NextModel() (model []bool, ok bool, err error) {
	switch bk.g.Solve() {
	case satisfiable:
	case unsatisfiable:
		return nil, false, nil
	default:
		return nil, false, &backendError{detail: "solve returned neither satisfiable nor unsatisfiable"}
	}

	model = make([]bool, bk.numEdges+1)
	for e := 1; e <= bk.numEdges; e++ {
		model[e] = bk.g.Value(z.Dimacs2Lit(e))
	}
	return model, true, nil
}

// NofClauses and NofVars report the current formula size, surfaced via
// Stats for diagnostics.
func (bk *Backend) NofClauses() int { return bk.nClauses }
func (bk *Backend) NofVars() int    { return bk.numEdges }

// backendError wraps an unexpected internal solver failure: anything
// other than satisfiable/unsatisfiable should never occur for a
// formula built entirely from unit, binary, and short clauses with no
// assumptions beyond unit literals.
type backendError struct {
	detail string
}

func (e *backendError) Error() string {
	return fmt.Sprintf("sat backend: %s", e.detail)
}
