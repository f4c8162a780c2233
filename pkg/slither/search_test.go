package slither

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveUnsatisfiable1x1 exercises a board with no valid solution: a
// single NoHint cell's only parity-valid assignments are "all 4 edges
// true" and "no edges true". The first is excluded up front by the
// NoHint no-surround clause, so the empty model is the only candidate;
// it is rejected (0 components) once, after which the backend reports
// Unsat.
func TestSolveUnsatisfiable1x1(t *testing.T) {
	b, err := NewBoard(1, 1, []int8{NoHint})
	require.NoError(t, err)

	var calls int
	sub := func(*Board, Stats) { calls++ }

	solved, err := Solve(context.Background(), b, sub)
	require.NoError(t, err)
	assert.False(t, solved.Solved)
	assert.Equal(t, 1, solved.Stats.Retried)
	assert.Equal(t, solved.Stats.Models, calls)
}

func TestSolveCancellation(t *testing.T) {
	b, err := NewBoard(1, 1, []int8{NoHint})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	solved, err := Solve(ctx, b)
	require.NoError(t, err)
	assert.False(t, solved.Solved)
	assert.True(t, solved.Stats.Cancelled)
	assert.Equal(t, 0, solved.Stats.Models)
}

func TestSolveCancellationWithTimeout(t *testing.T) {
	b, err := NewBoard(1, 1, []int8{NoHint})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	solved, err := Solve(ctx, b)
	require.NoError(t, err)
	assert.False(t, solved.Solved)
	assert.True(t, solved.Stats.Cancelled)
}

// TestSolveSquareFrameSatisfiesInvariants solves a 2x2 board where
// every cell is hinted 2 (the classic single-loop "frame" puzzle: the
// outer perimeter satisfies every cell's count) and checks the
// end-to-end property (P6): every hinted cell's true-edge count
// matches its hint, every vertex has degree 0 or 2, and the true edges
// form exactly one component.
func TestSolveSquareFrameSatisfiesInvariants(t *testing.T) {
	b, err := NewBoard(2, 2, []int8{2, 2, 2, 2})
	require.NoError(t, err)

	solved, err := Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, solved.Solved)
	require.NotNil(t, solved.Graph)

	for i := 0; i < solved.Rows; i++ {
		for j := 0; j < solved.Cols; j++ {
			cell := solved.Cell(i, j)
			if cell.Hint == NoHint {
				continue
			}
			got := trueEdgeCount(solved, cell)
			assert.EqualValues(t, cell.Hint, got, "cell (%d,%d)", i, j)
		}
	}

	for i := 0; i <= solved.Rows; i++ {
		for j := 0; j <= solved.Cols; j++ {
			deg := len(solved.Graph.Neighbors(solved.Vertex(i, j).ID()))
			assert.Contains(t, []int{0, 2}, deg, "vertex (%d,%d)", i, j)
		}
	}

	components, err := extractComponents(context.Background(), solved, solved.Graph)
	require.NoError(t, err)
	assert.Len(t, components, 1)
}

func trueEdgeCount(b *Board, cell *Cell) int {
	n := 0
	for _, e := range cell.Edges() {
		if edgeTrueInGraph(b, e) {
			n++
		}
	}
	return n
}

// edgeTrueInGraph reports whether e appears in the decoded graph by
// checking the two vertices it connects.
func edgeTrueInGraph(b *Board, e EdgeID) bool {
	if e == NoEdge || b.Graph == nil {
		return false
	}
	for i := 0; i <= b.Rows; i++ {
		for j := 0; j <= b.Cols; j++ {
			v := b.Vertex(i, j)
			if v.Right == e {
				return b.Graph.HasEdge(v.ID(), b.Vertex(i, j+1).ID())
			}
			if v.Bottom == e {
				return b.Graph.HasEdge(v.ID(), b.Vertex(i+1, j).ID())
			}
		}
	}
	return false
}
