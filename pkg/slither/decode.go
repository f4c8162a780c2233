package slither

import "github.com/katalvlaran/lvlath/graph"

// DecodedGraph is the loop graph implied by one SAT model: one vertex
// per grid point, one undirected edge per model-true EdgeID, weighted
// by the EdgeID it came from so a validator can map a graph edge back
// to the literal that must be blocked.
type DecodedGraph struct {
	*graph.Graph
}

// Decode builds the DecodedGraph for model, a boolean assignment
// indexed by EdgeID as returned by Backend.NextModel. Every vertex in
// b is added even if it ends up isolated, so component extraction sees
// the whole grid, not just the edges the model turned on.
func Decode(b *Board, model []bool) *DecodedGraph {
	g := graph.NewGraph(false, true)

	for i := 0; i <= b.Rows; i++ {
		for j := 0; j <= b.Cols; j++ {
			g.AddVertex(&graph.Vertex{ID: b.Vertex(i, j).ID(), Metadata: map[string]interface{}{}})
		}
	}

	for i := 0; i <= b.Rows; i++ {
		for j := 0; j <= b.Cols; j++ {
			v := b.Vertex(i, j)
			if v.Right != NoEdge && model[v.Right] {
				g.AddEdge(v.ID(), b.Vertex(i, j+1).ID(), int64(v.Right))
			}
			if v.Bottom != NoEdge && model[v.Bottom] {
				g.AddEdge(v.ID(), b.Vertex(i+1, j).ID(), int64(v.Bottom))
			}
		}
	}

	return &DecodedGraph{Graph: g}
}
