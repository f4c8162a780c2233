package slither

// HeuristicClauses returns the diagonal and adjacent 3/0 acceleration
// rules from spec.md 4.2(c)'s "additional heuristics" (Open Question 2:
// emitted as ordinary clauses rather than solver assumptions, since
// these facts never need retraction). Only interior cells are
// considered — each rule looks one cell further in some direction, so
// the loop bounds themselves keep every neighbor lookup in range.
func HeuristicClauses(b *Board) []Clause {
	var clauses []Clause
	for i := 1; i < b.Rows-1; i++ {
		for j := 1; j < b.Cols-1; j++ {
			cell := b.Cell(i, j)
			if cell.Hint == NoHint {
				continue
			}
			clauses = append(clauses, diagonalAdjacent(b, i, j)...)
			clauses = append(clauses, cellNextTo(b, i, j)...)
		}
	}
	return clauses
}

// diagonalAdjacent forces the four outer-corner edges of cell (i,j) and
// a diagonally-adjacent cell when both are hinted 3: the only
// way to satisfy two diagonal 3s without a loop splitting between them
// is for both cells' far corners to carry the loop.
func diagonalAdjacent(b *Board, i, j int) []Clause {
	cell := b.Cell(i, j)
	if cell.Hint != 3 {
		return nil
	}

	rb := b.Cell(i+1, j+1)
	lb := b.Cell(i+1, j-1)

	switch {
	case rb.Hint == 3:
		return []Clause{{Pos(cell.Top)}, {Pos(cell.Left)}, {Pos(rb.Right)}, {Pos(rb.Bottom)}}
	case lb.Hint == 3:
		return []Clause{{Pos(cell.Top)}, {Pos(cell.Right)}, {Pos(lb.Left)}, {Pos(lb.Bottom)}}
	}
	return nil
}

// cellNextTo handles the remaining adjacent-cell rules: a 3 next to a
// 3 (horizontally or vertically) forces their shared edge and the two
// edges parallel to it on the far sides of both cells, and a 3 next to
// a 0 forces the 3's three
// free edges plus the two edges diagonally behind it that would
// otherwise leave its corners dangling.
func cellNextTo(b *Board, i, j int) []Clause {
	cell := b.Cell(i, j)
	hozNext := b.Cell(i, j+1)
	vertNext := b.Cell(i+1, j)

	switch {
	case cell.Hint == 3 && vertNext.Hint == 3:
		return []Clause{{Pos(cell.Top)}, {Pos(cell.Bottom)}, {Pos(vertNext.Bottom)}}
	case cell.Hint == 3 && hozNext.Hint == 3:
		return []Clause{{Pos(cell.Left)}, {Pos(cell.Right)}, {Pos(hozNext.Right)}}
	case cell.Hint == 3 && vertNext.Hint == 0:
		l, r := b.Cell(i, j-1), hozNext
		return []Clause{{Pos(cell.Top)}, {Pos(cell.Left)}, {Pos(cell.Right)}, {Pos(l.Bottom)}, {Pos(r.Bottom)}}
	case cell.Hint == 0 && vertNext.Hint == 3:
		l, r := b.Cell(i, j-1), hozNext
		return []Clause{{Pos(vertNext.Bottom)}, {Pos(vertNext.Left)}, {Pos(vertNext.Right)}, {Pos(l.Bottom)}, {Pos(r.Bottom)}}
	case cell.Hint == 3 && hozNext.Hint == 0:
		t, bot := b.Cell(i-1, j), vertNext
		return []Clause{{Pos(cell.Top)}, {Pos(cell.Left)}, {Pos(cell.Bottom)}, {Pos(t.Right)}, {Pos(bot.Right)}}
	case cell.Hint == 0 && hozNext.Hint == 3:
		t, bot := b.Cell(i-1, j), vertNext
		return []Clause{{Pos(hozNext.Top)}, {Pos(hozNext.Right)}, {Pos(hozNext.Bottom)}, {Pos(t.Right)}, {Pos(bot.Right)}}
	}
	return nil
}
