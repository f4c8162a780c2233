package slither

// BuildClauses returns the full initial clause set for b: cell-hint
// clauses, vertex-degree clauses, and corner clauses. b.AssignEdges must
// have been called already.
func BuildClauses(b *Board) []Clause {
	var clauses []Clause
	clauses = append(clauses, BuildCellClauses(b)...)
	clauses = append(clauses, BuildVertexClauses(b)...)
	clauses = append(clauses, BuildCornerClauses(b)...)
	return clauses
}

// BuildCellClauses encodes, for every cell, the exact-hint-of-4
// constraint over its four incident edges, per the pattern table in
// spec.md 4.2(a). A cell with NoHint gets the single pruning clause
// that forbids being fully surrounded by loop edges: sound (a fully
// surrounded cell's perimeter would be a 4-cycle disconnected from the
// rest of the loop, which the Loop Validator also independently
// rejects) but a heuristic strengthening, not a definitional rule.
func BuildCellClauses(b *Board) []Clause {
	var clauses []Clause
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			cell := b.Cell(i, j)
			e := cell.Edges()
			switch cell.Hint {
			case NoHint:
				clauses = append(clauses, Clause{Neg(e[0]), Neg(e[1]), Neg(e[2]), Neg(e[3])})
			case 0:
				clauses = append(clauses, exactlyZero(e)...)
			case 1:
				clauses = append(clauses, exactlyOne(e)...)
			case 2:
				clauses = append(clauses, exactlyTwo(e)...)
			case 3:
				clauses = append(clauses, exactlyThree(e)...)
			}
		}
	}
	return clauses
}

func exactlyZero(e [4]EdgeID) []Clause {
	return []Clause{
		{Neg(e[0])}, {Neg(e[1])}, {Neg(e[2])}, {Neg(e[3])},
	}
}

func exactlyOne(e [4]EdgeID) []Clause {
	clauses := make([]Clause, 0, 7)
	for a := 0; a < 4; a++ {
		for bb := a + 1; bb < 4; bb++ {
			clauses = append(clauses, Clause{Neg(e[a]), Neg(e[bb])})
		}
	}
	clauses = append(clauses, Clause{Pos(e[0]), Pos(e[1]), Pos(e[2]), Pos(e[3])})
	return clauses
}

func exactlyTwo(e [4]EdgeID) []Clause {
	clauses := make([]Clause, 0, 8)
	for _, triple := range threeOf4(e) {
		clauses = append(clauses, Clause{Pos(triple[0]), Pos(triple[1]), Pos(triple[2])})
	}
	for _, triple := range threeOf4(e) {
		clauses = append(clauses, Clause{Neg(triple[0]), Neg(triple[1]), Neg(triple[2])})
	}
	return clauses
}

func exactlyThree(e [4]EdgeID) []Clause {
	clauses := make([]Clause, 0, 7)
	for a := 0; a < 4; a++ {
		for bb := a + 1; bb < 4; bb++ {
			clauses = append(clauses, Clause{Pos(e[a]), Pos(e[bb])})
		}
	}
	clauses = append(clauses, Clause{Neg(e[0]), Neg(e[1]), Neg(e[2]), Neg(e[3])})
	return clauses
}

// threeOf4 returns the four 3-subsets of a 4-element array, each
// omitting one element in turn.
func threeOf4(e [4]EdgeID) [][3]EdgeID {
	return [][3]EdgeID{
		{e[1], e[2], e[3]},
		{e[0], e[2], e[3]},
		{e[0], e[1], e[3]},
		{e[0], e[1], e[2]},
	}
}

// BuildVertexClauses encodes, for every vertex (boundary included), the
// generic 0-or-2-of-4 pattern from spec.md 4.2(b). Sentinel (NoEdge)
// literals are replaced by the constant false: clauses that become
// trivially satisfied are dropped, and false literals are dropped from
// the remaining clauses.
func BuildVertexClauses(b *Board) []Clause {
	var clauses []Clause
	for i := 0; i <= b.Rows; i++ {
		for j := 0; j <= b.Cols; j++ {
			v := b.Vertex(i, j)
			clauses = append(clauses, zeroOrTwoOf4(v.Edges())...)
		}
	}
	return clauses
}

// zeroOrTwoOf4 builds the 8-clause 0-or-2-of-4 pattern, treating any
// NoEdge entry in e as a constant false.
func zeroOrTwoOf4(e [4]EdgeID) []Clause {
	pattern := [][4]int{
		{-1, -2, -3, 0},
		{-1, -2, 0, -4},
		{-1, 0, -3, -4},
		{0, -2, -3, -4},
		{-1, 2, 3, 4},
		{1, -2, 3, 4},
		{1, 2, -3, 4},
		{1, 2, 3, -4},
	}

	var clauses []Clause
	for _, row := range pattern {
		clause, trivial := instantiateSigns(row, e)
		if trivial {
			continue
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// instantiateSigns turns a pattern row of signed 1-based slots (e.g. -2
// meaning "not edge index 2") into a clause over e. A boundary vertex's
// missing edges are NoEdge, a constant false: a negative slot over
// NoEdge is then always true, making the whole disjunction a tautology
// (trivial=true, clause discarded), while a positive slot over NoEdge
// is always false and simply drops out of the disjunction.
func instantiateSigns(row [4]int, e [4]EdgeID) (clause Clause, trivial bool) {
	for _, slot := range row {
		if slot == 0 {
			continue
		}
		idx := slot
		neg := idx < 0
		if neg {
			idx = -idx
		}
		edge := e[idx-1]
		if edge == NoEdge {
			if neg {
				return nil, true
			}
			continue
		}
		if neg {
			clause = append(clause, Neg(edge))
		} else {
			clause = append(clause, Pos(edge))
		}
	}
	return clause, false
}

// BuildCornerClauses encodes the four grid-corner rules from spec.md
// 4.2(c): a corner cell hinted 1 forces its two corner-adjacent edges
// false, hinted 3 forces them true, and hinted 2 forces the two
// "away-lines" true (an optional convergence heuristic). The away-line
// rule needs a neighbor on each axis, so it's skipped on boards with
// only one row or one column.
func BuildCornerClauses(b *Board) []Clause {
	type corner struct {
		cell        *Cell
		cornerEdges [2]EdgeID
		awayEdges   [2]EdgeID
		hasAway     bool
	}

	corners := make([]corner, 0, 4)
	corners = append(corners, corner{
		cell:        b.Cell(0, 0),
		cornerEdges: [2]EdgeID{b.Cell(0, 0).Top, b.Cell(0, 0).Left},
	})
	corners = append(corners, corner{
		cell:        b.Cell(0, b.Cols-1),
		cornerEdges: [2]EdgeID{b.Cell(0, b.Cols-1).Top, b.Cell(0, b.Cols-1).Right},
	})
	corners = append(corners, corner{
		cell:        b.Cell(b.Rows-1, 0),
		cornerEdges: [2]EdgeID{b.Cell(b.Rows-1, 0).Bottom, b.Cell(b.Rows-1, 0).Left},
	})
	corners = append(corners, corner{
		cell:        b.Cell(b.Rows-1, b.Cols-1),
		cornerEdges: [2]EdgeID{b.Cell(b.Rows-1, b.Cols-1).Bottom, b.Cell(b.Rows-1, b.Cols-1).Right},
	})

	if b.Rows >= 2 && b.Cols >= 2 {
		corners[0].awayEdges, corners[0].hasAway = cornerAwayEdges(b, 0, 1, 1, 0, true, true), true
		corners[1].awayEdges, corners[1].hasAway = cornerAwayEdges(b, 0, b.Cols-2, 1, b.Cols-1, true, false), true
		corners[2].awayEdges, corners[2].hasAway = cornerAwayEdges(b, b.Rows-1, 1, b.Rows-2, 0, false, true), true
		corners[3].awayEdges, corners[3].hasAway = cornerAwayEdges(b, b.Rows-1, b.Cols-2, b.Rows-2, b.Cols-1, false, false), true
	}

	var clauses []Clause
	for _, c := range corners {
		switch c.cell.Hint {
		case 1:
			clauses = append(clauses, Clause{Neg(c.cornerEdges[0])}, Clause{Neg(c.cornerEdges[1])})
		case 3:
			clauses = append(clauses, Clause{Pos(c.cornerEdges[0])}, Clause{Pos(c.cornerEdges[1])})
		case 2:
			if c.hasAway {
				clauses = append(clauses, Clause{Pos(c.awayEdges[0])}, Clause{Pos(c.awayEdges[1])})
			}
		}
	}
	return clauses
}

// cornerAwayEdges returns the two "away-line" edges for a corner: the
// far-side top/bottom edge of the horizontally-adjacent cell at
// (rowH, colH), and the far-side left/right edge of the
// vertically-adjacent cell at (rowV, colV). top selects Top (true) vs
// Bottom (false) on the horizontal neighbor; left selects Left (true)
// vs Right (false) on the vertical neighbor.
func cornerAwayEdges(b *Board, rowH, colH, rowV, colV int, top, left bool) [2]EdgeID {
	var a, c EdgeID
	hCell := b.Cell(rowH, colH)
	if top {
		a = hCell.Top
	} else {
		a = hCell.Bottom
	}
	vCell := b.Cell(rowV, colV)
	if left {
		c = vCell.Left
	} else {
		c = vCell.Right
	}
	return [2]EdgeID{a, c}
}
