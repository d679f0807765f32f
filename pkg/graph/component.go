package graph

import "github.com/paulmach/osm"

// UnionFind implements a disjoint-set data structure with path compression
// and union by rank.
type UnionFind struct {
	parent []uint32
	rank   []byte // byte is sufficient, max rank ~30 for realistic graphs
	size   []uint32
}

// NewUnionFind creates a UnionFind for n elements.
func NewUnionFind(n uint32) *UnionFind {
	parent := make([]uint32, n)
	size := make([]uint32, n)
	for i := uint32(0); i < n; i++ {
		parent[i] = i
		size[i] = 1
	}
	return &UnionFind{
		parent: parent,
		rank:   make([]byte, n),
		size:   size,
	}
}

// Find returns the representative of the set containing x, with path halving.
func (uf *UnionFind) Find(x uint32) uint32 {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets containing x and y. Returns false if already same set.
func (uf *UnionFind) Union(x, y uint32) bool {
	rx := uf.Find(x)
	ry := uf.Find(y)
	if rx == ry {
		return false
	}

	// Union by rank.
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	return true
}

// LargestComponent returns the ids of the nodes in the largest weakly
// connected component (treating the directed graph as undirected), in
// the graph's node order. Ties go to the component encountered first.
func LargestComponent(g *Multigraph) []osm.NodeID {
	if len(g.NodeIDs) == 0 {
		return nil
	}

	index := make(map[osm.NodeID]uint32, len(g.NodeIDs))
	for i, id := range g.NodeIDs {
		index[id] = uint32(i)
	}

	uf := NewUnionFind(uint32(len(g.NodeIDs)))
	for _, e := range g.Edges {
		uf.Union(index[e.U], index[e.V])
	}

	// Find the representative with the largest size.
	bestRoot := uint32(0)
	bestSize := uint32(0)
	for i := uint32(0); i < uint32(len(g.NodeIDs)); i++ {
		root := uf.Find(i)
		if uf.size[root] > bestSize {
			bestRoot = root
			bestSize = uf.size[root]
		}
	}

	ids := make([]osm.NodeID, 0, bestSize)
	for i, id := range g.NodeIDs {
		if uf.Find(uint32(i)) == bestRoot {
			ids = append(ids, id)
		}
	}
	return ids
}

// Subgraph returns a copy of g induced on the given nodes: the nodes
// themselves plus every edge with both ends among them. Node and edge
// order follow g, so parallel edges keep their keys.
func Subgraph(g *Multigraph, ids []osm.NodeID) *Multigraph {
	keep := make(map[osm.NodeID]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	out := NewMultigraph()
	for _, id := range g.NodeIDs {
		if !keep[id] {
			continue
		}
		n := g.Node(id)
		out.AddNode(id, n.Lat, n.Lon)
	}
	for _, e := range g.Edges {
		if keep[e.U] && keep[e.V] {
			out.AddEdge(e.U, e.V, e.Attrs)
		}
	}
	return out
}
