package slither

// Lit is a signed DIMACS-style literal over an EdgeID: positive means
// the edge is asserted TRUE, negative means asserted FALSE. Lit(0) never
// appears in a well-formed clause.
type Lit int32

// Pos returns the positive literal for e ("edge e is part of the loop").
func Pos(e EdgeID) Lit { return Lit(e) }

// Neg returns the negative literal for e ("edge e is not part of the loop").
func Neg(e EdgeID) Lit { return -Lit(e) }

// Clause is a disjunction of literals.
type Clause []Lit
