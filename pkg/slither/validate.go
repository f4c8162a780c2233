package slither

import (
	"context"
	"sort"

	"github.com/katalvlaran/lvlath/graph"
)

// ValidationResult is the Loop Validator's verdict on one decoded
// model: either accepted (the model is a single simple cycle), or
// rejected with one blocking clause per connected component found (or,
// when no edge is true at all, a single clause requiring at least one
// edge), ready to hand to a Backend.
type ValidationResult struct {
	Accepted bool
	Blocking []Clause
}

// component is one maximal connected subgraph of TRUE edges,
// identified by DFS.
type component struct {
	vertices map[string]bool
	edges    []EdgeID
}

// Validate implements the loop validator: reject any fully-surrounded
// cell outright, partition the decoded graph into connected
// components, and accept iff there is exactly one. On rejection it
// returns a blocking clause for every component found (not just one),
// since each discovered component is, on its own, a cycle disconnected
// from the rest of any eventual solution.
func Validate(ctx context.Context, b *Board, g *DecodedGraph) (*ValidationResult, error) {
	components, err := extractComponents(ctx, b, g)
	if err != nil {
		return nil, err
	}

	surrounded := false
	for i := 0; i < b.Rows && !surrounded; i++ {
		for j := 0; j < b.Cols; j++ {
			if cellFullySurrounded(b, g, i, j) {
				surrounded = true
				break
			}
		}
	}

	if !surrounded && len(components) == 1 {
		return &ValidationResult{Accepted: true}, nil
	}

	if len(components) == 0 {
		// The empty assignment (no TRUE edges at all) satisfies every
		// cell/vertex clause vacuously but is never a loop. It has no
		// component to block, so block the one thing that's actually
		// wrong with it directly: require at least one edge true.
		atLeastOne := make(Clause, b.NumEdges())
		for e := 1; e <= b.NumEdges(); e++ {
			atLeastOne[e-1] = Pos(EdgeID(e))
		}
		return &ValidationResult{Accepted: false, Blocking: []Clause{atLeastOne}}, nil
	}

	blocking := make([]Clause, 0, len(components))
	for _, c := range components {
		clause := make(Clause, len(c.edges))
		for i, e := range c.edges {
			clause[i] = Neg(e)
		}
		blocking = append(blocking, clause)
	}
	return &ValidationResult{Accepted: false, Blocking: blocking}, nil
}

// cellFullySurrounded reports whether all four edges of cell (i,j) are
// present in the decoded graph.
func cellFullySurrounded(b *Board, g *DecodedGraph, i, j int) bool {
	tl := b.Vertex(i, j).ID()
	tr := b.Vertex(i, j+1).ID()
	bl := b.Vertex(i+1, j).ID()
	br := b.Vertex(i+1, j+1).ID()
	return g.HasEdge(tl, tr) && g.HasEdge(bl, br) && g.HasEdge(tl, bl) && g.HasEdge(tr, br)
}

// extractComponents partitions g's TRUE edges into connected
// components by repeatedly running DFS from any unvisited vertex with
// at least one neighbor. Isolated vertices (degree 0) never start or
// join a component.
func extractComponents(ctx context.Context, b *Board, g *DecodedGraph) ([]component, error) {
	visited := make(map[string]bool)
	var components []component

	for i := 0; i <= b.Rows; i++ {
		for j := 0; j <= b.Cols; j++ {
			id := b.Vertex(i, j).ID()
			if visited[id] || len(g.Neighbors(id)) == 0 {
				continue
			}

			res, err := g.DFS(id, &graph.DFSOptions{Ctx: ctx})
			if err != nil {
				return nil, err
			}

			c := component{vertices: make(map[string]bool, len(res.Order))}
			for _, v := range res.Order {
				c.vertices[v.ID] = true
				visited[v.ID] = true
			}
			c.edges = componentEdges(g, c.vertices)
			components = append(components, c)
		}
	}
	return components, nil
}

// componentEdges returns the sorted, deduplicated EdgeIDs of every
// edge with both endpoints in vertices. lvlath stores an undirected
// edge as a mirrored pair, so a seen-set collapses each back to one.
func componentEdges(g *DecodedGraph, vertices map[string]bool) []EdgeID {
	seen := make(map[EdgeID]bool)
	var edges []EdgeID
	for _, e := range g.Edges() {
		if !vertices[e.From.ID] || !vertices[e.To.ID] {
			continue
		}
		id := EdgeID(e.Weight)
		if seen[id] {
			continue
		}
		seen[id] = true
		edges = append(edges, id)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	return edges
}
