package planner

import (
	"testing"

	"delivery-game-service/internal/domain"
)

func newTestResolver(base map[domain.Edge]float64, closed ...domain.Edge) *Resolver {
	return NewResolver(NewGraph(base, closed))
}

func TestResolveDirectEdge(t *testing.T) {
	r := newTestResolver(testBase())

	path, dist, ok := r.Resolve("A", "B")
	if !ok {
		t.Fatal("A-B not resolved")
	}
	if dist != 3.0 {
		t.Fatalf("dist = %v, want 3.0", dist)
	}
	if len(path) != 2 || path[0] != "A" || path[1] != "B" {
		t.Fatalf("path = %v, want [A B]", path)
	}
}

func TestResolveSameLocation(t *testing.T) {
	r := newTestResolver(testBase())

	path, dist, ok := r.Resolve("A", "A")
	if !ok || dist != 0 {
		t.Fatalf("Resolve(A, A) = %v, %v, %v", path, dist, ok)
	}
	if len(path) != 1 || path[0] != "A" {
		t.Fatalf("path = %v, want [A]", path)
	}
}

func TestResolvePicksCheapestSingleHop(t *testing.T) {
	r := newTestResolver(testBase(), domain.NewEdge("B", "C"))

	path, dist, ok := r.Resolve("B", "C")
	if !ok {
		t.Fatal("B-C detour not resolved")
	}
	// Via A: 3 + 4.5; via D: 4.5 + 3. Tie on distance, but both price at 7.5.
	if dist != 7.5 {
		t.Fatalf("dist = %v, want 7.5", dist)
	}
	if len(path) != 3 || path[0] != "B" || path[2] != "C" {
		t.Fatalf("path = %v, want a single-hop detour from B to C", path)
	}
}

func TestResolveFallsBackToShortestPath(t *testing.T) {
	// Line network: no single intermediate location touches both ends.
	base := map[domain.Edge]float64{
		domain.NewEdge("A", "B"): 1.0,
		domain.NewEdge("B", "C"): 2.0,
		domain.NewEdge("C", "D"): 3.0,
	}
	r := newTestResolver(base)

	path, dist, ok := r.Resolve("A", "D")
	if !ok {
		t.Fatal("A-D not resolved")
	}
	if dist != 6.0 {
		t.Fatalf("dist = %v, want 6.0", dist)
	}
	want := []domain.Location{"A", "B", "C", "D"}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestResolveReportsDisconnection(t *testing.T) {
	r := newTestResolver(testBase(),
		domain.NewEdge("A", "D"),
		domain.NewEdge("B", "D"),
		domain.NewEdge("C", "D"),
	)

	if _, _, ok := r.Resolve("A", "D"); ok {
		t.Fatal("Resolve found a path to an isolated location")
	}
	if _, ok := r.Distance("A", "D"); ok {
		t.Fatal("Distance priced a leg to an isolated location")
	}
}
