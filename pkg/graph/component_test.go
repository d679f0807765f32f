package graph

import (
	"slices"
	"testing"

	"github.com/paulmach/osm"
)

func TestUnionFind(t *testing.T) {
	uf := NewUnionFind(5)

	// Initially all separate.
	for i := uint32(0); i < 5; i++ {
		if uf.Find(i) != i {
			t.Errorf("Find(%d) = %d, want %d", i, uf.Find(i), i)
		}
	}

	// Union 0 and 1.
	uf.Union(0, 1)
	if uf.Find(0) != uf.Find(1) {
		t.Error("0 and 1 should be in same set")
	}

	// Union 2 and 3.
	uf.Union(2, 3)
	if uf.Find(2) != uf.Find(3) {
		t.Error("2 and 3 should be in same set")
	}

	// 0 and 2 should be different.
	if uf.Find(0) == uf.Find(2) {
		t.Error("0 and 2 should be in different sets")
	}

	// Union the two groups.
	uf.Union(1, 3)
	if uf.Find(0) != uf.Find(3) {
		t.Error("0 and 3 should now be in same set")
	}
}

func TestLargestComponent(t *testing.T) {
	// Two components: 10 <-> 20 <-> 30 and 40 <-> 50.
	g := NewMultigraph()
	g.AddEdge(10, 20, EdgeAttrs{})
	g.AddEdge(20, 10, EdgeAttrs{})
	g.AddEdge(20, 30, EdgeAttrs{})
	g.AddEdge(30, 20, EdgeAttrs{})
	g.AddEdge(40, 50, EdgeAttrs{})
	g.AddEdge(50, 40, EdgeAttrs{})

	ids := LargestComponent(g)
	if want := []osm.NodeID{10, 20, 30}; !slices.Equal(ids, want) {
		t.Fatalf("LargestComponent() = %v, want %v", ids, want)
	}
}

func TestLargestComponentDirectionIgnored(t *testing.T) {
	// A one-directional chain still counts as connected.
	g := NewMultigraph()
	g.AddEdge(10, 20, EdgeAttrs{})
	g.AddEdge(20, 30, EdgeAttrs{})
	g.AddEdge(40, 50, EdgeAttrs{})

	ids := LargestComponent(g)
	if len(ids) != 3 {
		t.Fatalf("LargestComponent() has %d nodes, want 3", len(ids))
	}
}

func TestLargestComponentEmptyGraph(t *testing.T) {
	ids := LargestComponent(NewMultigraph())
	if ids != nil {
		t.Errorf("LargestComponent() = %v, want nil for empty graph", ids)
	}
}

func TestSubgraph(t *testing.T) {
	// Component 1: triangle 10-20-30. Component 2: isolated pair 40-50.
	g := NewMultigraph()
	g.AddNode(10, 1.0, 103.0)
	g.AddNode(20, 1.1, 103.1)
	g.AddNode(30, 1.2, 103.2)
	g.AddNode(40, 2.0, 104.0)
	g.AddNode(50, 2.1, 104.1)
	g.AddEdge(10, 20, EdgeAttrs{Length: 100})
	g.AddEdge(20, 30, EdgeAttrs{Length: 200})
	g.AddEdge(30, 10, EdgeAttrs{Length: 300})
	g.AddEdge(40, 50, EdgeAttrs{Length: 400})

	sub := Subgraph(g, LargestComponent(g))

	if got := sub.NumNodes(); got != 3 {
		t.Fatalf("NumNodes() = %d, want 3", got)
	}
	if got := sub.NumEdges(); got != 3 {
		t.Fatalf("NumEdges() = %d, want 3", got)
	}

	// Only the triangle's lengths survive (100+200+300).
	var total float64
	for _, e := range sub.Edges {
		total += e.Attrs.Length
	}
	if total != 600 {
		t.Errorf("total length = %v, want 600", total)
	}

	// Coordinates come across with the nodes.
	if n := sub.Node(20); n.Lat != 1.1 || n.Lon != 103.1 {
		t.Errorf("Node(20) = %+v, want (1.1, 103.1)", n)
	}
}

func TestSubgraphKeepsParallelKeys(t *testing.T) {
	g := NewMultigraph()
	g.AddEdge(10, 20, EdgeAttrs{Length: 1})
	g.AddEdge(10, 20, EdgeAttrs{Length: 2})

	sub := Subgraph(g, []osm.NodeID{10, 20})

	if got := sub.NumEdges(); got != 2 {
		t.Fatalf("NumEdges() = %d, want both parallels", got)
	}
	for i, e := range sub.Edges {
		if e.Key != i {
			t.Errorf("edge %d key = %d, want %d", i, e.Key, i)
		}
	}
}
