package planner

import (
	"sort"

	"delivery-game-service/internal/domain"
)

// Graph is a read-only view of the road network for one planning call: the
// static base distance table plus the closure snapshot taken at call time.
// Closures are never mutated during a call.
type Graph struct {
	base   map[domain.Edge]float64
	closed map[domain.Edge]bool
	nodes  []domain.Location
}

// NewGraph builds a graph over the base distance table with the given edges
// marked closed. Distances are symmetric; edge keys are normalized pairs.
func NewGraph(base map[domain.Edge]float64, closedEdges []domain.Edge) *Graph {
	g := &Graph{
		base:   base,
		closed: make(map[domain.Edge]bool, len(closedEdges)),
	}
	for _, e := range closedEdges {
		g.closed[domain.NewEdge(e.A, e.B)] = true
	}

	seen := make(map[domain.Location]bool, len(base)*2)
	for e := range base {
		seen[e.A] = true
		seen[e.B] = true
	}
	g.nodes = make([]domain.Location, 0, len(seen))
	for loc := range seen {
		g.nodes = append(g.nodes, loc)
	}
	sort.Slice(g.nodes, func(i, j int) bool { return g.nodes[i] < g.nodes[j] })

	return g
}

// Distance returns the base distance between two locations, or ok=false when
// the edge does not exist or is currently closed.
func (g *Graph) Distance(a, b domain.Location) (float64, bool) {
	if a == b {
		return 0, true
	}
	e := domain.NewEdge(a, b)
	if g.closed[e] {
		return 0, false
	}
	d, ok := g.base[e]
	return d, ok
}

// IsClosed reports whether the road between two locations is closed.
func (g *Graph) IsClosed(a, b domain.Location) bool {
	return g.closed[domain.NewEdge(a, b)]
}

// HasEdge reports whether the network has a road between two locations,
// regardless of closures.
func (g *Graph) HasEdge(a, b domain.Location) bool {
	_, ok := g.base[domain.NewEdge(a, b)]
	return ok
}

// Locations returns all locations in the network, sorted for determinism.
func (g *Graph) Locations() []domain.Location {
	out := make([]domain.Location, len(g.nodes))
	copy(out, g.nodes)
	return out
}
