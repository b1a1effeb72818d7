package planner

import (
	"testing"

	"delivery-game-service/internal/domain"
)

func newTestOptimizer(constraints []Constraint, closed ...domain.Edge) *optimizer {
	graph := NewGraph(testBase(), closed)
	return &optimizer{
		resolver:    NewResolver(graph),
		constraints: NewConstraintSet(constraints),
		opts:        DefaultOptions(),
	}
}

func TestTwoOptImprovesOrdering(t *testing.T) {
	o := newTestOptimizer(nil)

	// A-C-B-D walks 4.5 + 2 + 4.5 = 11; plenty of room to improve.
	start := []domain.Location{"A", "C", "B", "D"}
	startDist, _ := o.pathDistance(start)

	improved := o.improve(start)
	improvedDist, ok := o.pathDistance(improved)
	if !ok {
		t.Fatalf("improved order %v not walkable", improved)
	}
	if improvedDist > startDist {
		t.Fatalf("improve made the route worse: %v -> %v", startDist, improvedDist)
	}
	if improved[0] != "A" {
		t.Fatalf("improve moved the start location: %v", improved)
	}
	// The optimum for this network from A is 7.0 (A-D-C-B).
	if improvedDist != 7.0 {
		t.Fatalf("improved distance = %v, want 7.0", improvedDist)
	}
}

func TestTwoOptNeverViolatesConstraints(t *testing.T) {
	// B-before-D blocks the reversal that would otherwise shorten the path.
	o := newTestOptimizer([]Constraint{{Before: "B", After: "D"}})

	start := []domain.Location{"A", "B", "C", "D"}
	improved := o.improve(start)
	if !o.constraints.Respects(improved) {
		t.Fatalf("improve produced %v, violating B-before-D", improved)
	}
}

func TestImproveKeepsUnimprovableOrdering(t *testing.T) {
	o := newTestOptimizer(nil)

	start := []domain.Location{"A", "D", "C", "B"}
	improved := o.improve(start)
	for i := range start {
		if improved[i] != start[i] {
			t.Fatalf("optimal ordering changed: %v -> %v", start, improved)
		}
	}
}

func TestThreeOptSkipsShortOrderings(t *testing.T) {
	o := newTestOptimizer(nil)

	start := []domain.Location{"A", "C", "B", "D"}
	out := o.threeOpt(start)
	for i := range start {
		if out[i] != start[i] {
			t.Fatalf("threeOpt rewrote a short ordering: %v -> %v", start, out)
		}
	}
}

func TestReverseSegmentCopies(t *testing.T) {
	in := []domain.Location{"A", "B", "C", "D"}
	out := reverseSegment(in, 1, 3)

	want := []domain.Location{"A", "D", "C", "B"}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("reverseSegment = %v, want %v", out, want)
		}
	}
	if in[1] != "B" {
		t.Fatal("reverseSegment mutated its input")
	}
}
