// Package slither implements a SAT-based Slitherlink solving engine.
//
// A puzzle is encoded as a propositional formula over one Boolean
// variable per grid edge (BuildClauses, HeuristicClauses), handed to an
// incremental CDCL backend (gini, via backend.go), and solved by a
// counterexample-guided refinement loop (Solve, in search.go): every
// candidate model is decoded into a graph and validated as a single
// simple cycle; if it isn't, the offending sub-cycles are excluded with
// a blocking clause and the search resumes.
package slither
