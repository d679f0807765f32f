package export

import "testing"

func TestStartingLocationEmpty(t *testing.T) {
	if got := StartingLocation(nil); got != nil {
		t.Fatalf("StartingLocation(nil) = %+v, want nil", got)
	}
}

func TestStartingLocationCentroidNearest(t *testing.T) {
	nodes := []Node{
		{ID: "node_1", Lat: 0, Lon: 0},
		{ID: "node_2", Lat: 0, Lon: 2},
		{ID: "node_3", Lat: 2, Lon: 0},
	}

	got := StartingLocation(nodes)
	if got == nil || got.ID != "node_1" {
		t.Fatalf("StartingLocation() = %+v, want node_1 (nearest the centroid)", got)
	}
}

func TestStartingLocationFirstMinWins(t *testing.T) {
	// Both nodes sit at the same distance from the centroid.
	nodes := []Node{
		{ID: "node_1", Lat: 0, Lon: 0},
		{ID: "node_2", Lat: 0, Lon: 2},
	}

	got := StartingLocation(nodes)
	if got == nil || got.ID != "node_1" {
		t.Fatalf("StartingLocation() = %+v, want the earlier node on a tie", got)
	}
}

func TestStartingLocationDeterministic(t *testing.T) {
	nodes := []Node{
		{ID: "node_10", Lat: 56.95, Lon: 24.10},
		{ID: "node_20", Lat: 56.96, Lon: 24.12},
		{ID: "node_30", Lat: 56.94, Lon: 24.08},
		{ID: "node_40", Lat: 57.00, Lon: 24.25},
	}

	a := StartingLocation(nodes)
	b := StartingLocation(nodes)
	if a == nil || b == nil || a.ID != b.ID {
		t.Fatalf("selection not stable: %+v vs %+v", a, b)
	}
}
