package graph

import (
	"fmt"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Simplify returns a new graph in which chains of interstitial nodes
// are folded into single merged edges, leaving only intersections,
// dead-ends and other topology breaks as nodes. Rings that contain no
// endpoint are left untouched. The input graph is not modified.
func Simplify(g *Multigraph) (*Multigraph, error) {
	endpoints := make(map[osm.NodeID]bool, len(g.NodeIDs))
	for _, id := range g.NodeIDs {
		if isEndpoint(g, id) {
			endpoints[id] = true
		}
	}

	type mergedEdge struct {
		u, v  osm.NodeID
		attrs EdgeAttrs
	}
	var merged []mergedEdge
	interior := make(map[osm.NodeID]bool)

	// Walk every chain leaving an endpoint through a non-endpoint
	// successor. Bidirectional chains are walked once from each end,
	// yielding a forward and a reverse merged edge.
	for _, id := range g.NodeIDs {
		if !endpoints[id] {
			continue
		}
		for _, s := range g.Successors(id) {
			if endpoints[s] {
				continue
			}
			path, err := buildPath(g, id, s, endpoints)
			if err != nil {
				return nil, err
			}
			for _, n := range path[1 : len(path)-1] {
				interior[n] = true
			}
			merged = append(merged, mergedEdge{
				u:     path[0],
				v:     path[len(path)-1],
				attrs: mergePath(g, path),
			})
		}
	}

	out := NewMultigraph()
	for _, id := range g.NodeIDs {
		if interior[id] {
			continue
		}
		n := g.Node(id)
		out.AddNode(id, n.Lat, n.Lon)
	}
	for _, e := range g.Edges {
		if interior[e.U] || interior[e.V] {
			continue
		}
		out.AddEdge(e.U, e.V, e.Attrs)
	}
	for _, m := range merged {
		out.AddEdge(m.u, m.v, m.attrs)
	}

	return out, nil
}

// isEndpoint reports whether v must survive simplification. Self-loops,
// chain ends and true intersections all qualify; only nodes that sit
// strictly between two neighbors with matched edge counts are folded.
func isEndpoint(g *Multigraph, v osm.NodeID) bool {
	if g.HasEdge(v, v) {
		return true
	}
	if g.OutDegree(v) == 0 || g.InDegree(v) == 0 {
		return true
	}
	n := uniqueNeighborCount(g, v)
	d := g.Degree(v)
	return n != 2 || (d != 2 && d != 4)
}

func uniqueNeighborCount(g *Multigraph, v osm.NodeID) int {
	seen := make(map[osm.NodeID]struct{}, 4)
	for _, s := range g.Successors(v) {
		seen[s] = struct{}{}
	}
	for _, p := range g.Predecessors(v) {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// buildPath walks successor to successor from an endpoint through
// interstitial nodes until the next endpoint is reached. A walk that
// dead-ends back onto its own start closes as a ring.
func buildPath(g *Multigraph, endpoint, successor osm.NodeID, endpoints map[osm.NodeID]bool) ([]osm.NodeID, error) {
	path := []osm.NodeID{endpoint, successor}
	onPath := map[osm.NodeID]bool{endpoint: true, successor: true}

	current := successor
	for !endpoints[current] {
		var next []osm.NodeID
		for _, s := range g.Successors(current) {
			if !onPath[s] {
				next = append(next, s)
			}
		}
		switch len(next) {
		case 1:
			current = next[0]
			path = append(path, current)
			onPath[current] = true
		case 0:
			if g.HasEdge(current, endpoint) {
				return append(path, endpoint), nil
			}
			return nil, fmt.Errorf("unexpected simplification pattern at node %d", current)
		default:
			return nil, fmt.Errorf("unexpected simplification pattern at node %d", current)
		}
	}

	return path, nil
}

// mergePath folds the chain's per-hop attributes into one edge:
// lengths sum, list attributes accumulate (names, highway values and
// way ids deduplicated in first-seen order, one-way flags concatenated)
// and the geometry is rebuilt from the chain's node coordinates.
// Where a hop has parallel edges, the key-0 edge contributes.
func mergePath(g *Multigraph, path []osm.NodeID) EdgeAttrs {
	var attrs EdgeAttrs
	for i := 0; i < len(path)-1; i++ {
		e := g.FirstEdge(path[i], path[i+1])
		attrs.Length += e.Attrs.Length
		attrs.Names = appendUnique(attrs.Names, e.Attrs.Names...)
		attrs.Highways = appendUnique(attrs.Highways, e.Attrs.Highways...)
		attrs.WayIDs = appendUnique(attrs.WayIDs, e.Attrs.WayIDs...)
		attrs.Oneway = append(attrs.Oneway, e.Attrs.Oneway...)
	}

	line := make(orb.LineString, 0, len(path))
	for _, id := range path {
		n := g.Node(id)
		line = append(line, orb.Point{n.Lon, n.Lat})
	}
	attrs.Geometry = line

	return attrs
}

func appendUnique[T comparable](dst []T, vals ...T) []T {
	for _, v := range vals {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
