package domain

import "testing"

func TestProjectLocationsCollapsesStationaryActions(t *testing.T) {
	actions := []Action{
		Visit("A"),
		Pickup("A", 1),
		Visit("B"),
		Deliver("B", 1),
		Visit("B"),
		Visit("C"),
	}

	path := ProjectLocations(actions)
	want := []Location{"A", "B", "C"}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestNewEdgeNormalizesEndpoints(t *testing.T) {
	if NewEdge("B", "A") != NewEdge("A", "B") {
		t.Fatal("edge endpoints not normalized")
	}

	e := NewEdge("Shop", "Factory")
	if !e.Touches("Shop", "Factory") || !e.Touches("Factory", "Shop") {
		t.Fatalf("edge %v does not touch its own endpoints", e)
	}
}
