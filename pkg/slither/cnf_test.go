package slither

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allModels enumerates every boolean assignment over n variables
// (1..n), as a map from EdgeID to its truth value, for brute-force
// clause-pattern checking on small n.
func allModels(n int) []map[EdgeID]bool {
	var models []map[EdgeID]bool
	for mask := 0; mask < 1<<uint(n); mask++ {
		m := make(map[EdgeID]bool, n)
		for i := 0; i < n; i++ {
			m[EdgeID(i+1)] = mask&(1<<uint(i)) != 0
		}
		models = append(models, m)
	}
	return models
}

func satisfies(clauses []Clause, m map[EdgeID]bool) bool {
	for _, c := range clauses {
		ok := false
		for _, lit := range c {
			e := EdgeID(lit)
			if e < 0 {
				e = -e
			}
			val := m[e]
			if lit < 0 {
				val = !val
			}
			if val {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func countTrue(m map[EdgeID]bool, e [4]EdgeID) int {
	n := 0
	for _, id := range e {
		if m[id] {
			n++
		}
	}
	return n
}

func TestExactlyKClausesMatchTruthTable(t *testing.T) {
	e := [4]EdgeID{1, 2, 3, 4}

	for k, build := range map[int8]func([4]EdgeID) []Clause{
		0: exactlyZero,
		1: exactlyOne,
		2: exactlyTwo,
		3: exactlyThree,
	} {
		clauses := build(e)
		for _, m := range allModels(4) {
			want := countTrue(m, e) == int(k)
			got := satisfies(clauses, m)
			assert.Equalf(t, want, got, "k=%d model=%v", k, m)
		}
	}
}

func TestZeroOrTwoOf4MatchesTruthTable(t *testing.T) {
	e := [4]EdgeID{1, 2, 3, 4}
	clauses := zeroOrTwoOf4(e)

	for _, m := range allModels(4) {
		n := countTrue(m, e)
		want := n == 0 || n == 2
		got := satisfies(clauses, m)
		assert.Equalf(t, want, got, "model=%v", m)
	}
}

func TestZeroOrTwoOf4DropsNoEdgeSlots(t *testing.T) {
	// a corner vertex has two real edges and two NoEdge sentinels.
	e := [4]EdgeID{0, 0, 1, 2}
	clauses := zeroOrTwoOf4(e)

	for _, lits := range clauses {
		for _, lit := range lits {
			id := EdgeID(lit)
			if id < 0 {
				id = -id
			}
			assert.NotEqual(t, NoEdge, id, "clause must not reference the sentinel edge")
		}
	}

	// both real edges true, both sentinels false: degree 2, must satisfy.
	m := map[EdgeID]bool{1: true, 2: true}
	assert.True(t, satisfies(clauses, m))

	// only one real edge true: degree 1, must violate.
	m2 := map[EdgeID]bool{1: true, 2: false}
	assert.False(t, satisfies(clauses, m2))
}

func TestBuildCellClausesNoHintPrunesSurroundedCell(t *testing.T) {
	b, err := NewBoard(1, 1, []int8{NoHint})
	require.NoError(t, err)
	b.AssignEdges()

	clauses := BuildCellClauses(b)
	require.Len(t, clauses, 1)
	assert.Len(t, clauses[0], 4)
	for _, lit := range clauses[0] {
		assert.Less(t, lit, Lit(0))
	}
}

func TestBuildCornerClausesSmallBoardsDoNotPanic(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 3}, {3, 1}} {
		rows, cols := dims[0], dims[1]
		hints := make([]int8, rows*cols)
		for i := range hints {
			hints[i] = 2
		}
		b, err := NewBoard(rows, cols, hints)
		require.NoError(t, err)
		b.AssignEdges()

		assert.NotPanics(t, func() {
			BuildCornerClauses(b)
		})
	}
}

func TestBuildCornerClausesHint1And3(t *testing.T) {
	b, err := NewBoard(2, 2, []int8{1, 0, 0, 3})
	require.NoError(t, err)
	b.AssignEdges()

	clauses := BuildCornerClauses(b)

	tl := b.Cell(0, 0)
	br := b.Cell(1, 1)

	assert.Contains(t, clauses, Clause{Neg(tl.Top)})
	assert.Contains(t, clauses, Clause{Neg(tl.Left)})
	assert.Contains(t, clauses, Clause{Pos(br.Bottom)})
	assert.Contains(t, clauses, Clause{Pos(br.Right)})
}

func TestBuildClausesComposesAllFamilies(t *testing.T) {
	b, err := NewBoard(2, 2, []int8{1, 2, 2, 3})
	require.NoError(t, err)
	b.AssignEdges()

	clauses := BuildClauses(b)
	assert.NotEmpty(t, clauses)
	assert.Equal(t, len(BuildCellClauses(b))+len(BuildVertexClauses(b))+len(BuildCornerClauses(b)), len(clauses))
}
