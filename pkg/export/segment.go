package export

import (
	"fmt"

	"github.com/paulmach/osm"

	"github.com/askolds11/pko-lielais/pkg/graph"
)

// Segment is one deduplicated road link between two intersections.
type Segment struct {
	ID           string       `json:"id"`
	StartNodeID  string       `json:"startNodeId"`
	EndNodeID    string       `json:"endNodeId"`
	LengthMeters float64      `json:"lengthMeters"`
	Name         *string      `json:"name"`
	OSMWayIDs    []int64      `json:"osmWayIds"`
	Geometry     [][2]float64 `json:"geometry"`
	Oneway       bool         `json:"oneway"`
}

// pairKey identifies an edge ignoring direction: the endpoint pair in
// sorted order plus the parallel-edge key.
type pairKey struct {
	lo, hi osm.NodeID
	key    int
}

// Segments deduplicates the graph's directed edges into road segments.
// The graph stores every link twice, once per direction; only the
// first direction seen survives, and the travel restriction is carried
// by the one-way flag instead.
func Segments(g *graph.Multigraph) []Segment {
	seen := make(map[pairKey]bool, len(g.Edges))
	out := make([]Segment, 0, len(g.Edges)/2+1)
	for _, e := range g.Edges {
		k := pairKey{lo: e.U, hi: e.V, key: e.Key}
		if k.lo > k.hi {
			k.lo, k.hi = k.hi, k.lo
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, toSegment(g, e))
	}
	return out
}

// toSegment flattens one directed edge into its exported record.
// Geometry points flip from the internal lon/lat order to [lat, lon];
// edges without explicit geometry synthesize a two-point line from
// their endpoint coordinates.
func toSegment(g *graph.Multigraph, e *graph.Edge) Segment {
	var name *string
	if len(e.Attrs.Names) > 0 {
		n := e.Attrs.Names[0]
		name = &n
	}

	var geom [][2]float64
	if len(e.Attrs.Geometry) > 0 {
		geom = make([][2]float64, 0, len(e.Attrs.Geometry))
		for _, p := range e.Attrs.Geometry {
			geom = append(geom, [2]float64{p.Lat(), p.Lon()})
		}
	} else {
		u, v := g.Node(e.U), g.Node(e.V)
		geom = [][2]float64{{u.Lat, u.Lon}, {v.Lat, v.Lon}}
	}

	wayIDs := e.Attrs.WayIDs
	if wayIDs == nil {
		wayIDs = []int64{}
	}

	return Segment{
		ID:           fmt.Sprintf("seg_%d_%d_%d", e.U, e.V, e.Key),
		StartNodeID:  nodeID(e.U),
		EndNodeID:    nodeID(e.V),
		LengthMeters: e.Attrs.Length,
		Name:         name,
		OSMWayIDs:    wayIDs,
		Geometry:     geom,
		Oneway:       anyOneway(e.Attrs.Oneway),
	}
}

// anyOneway reports whether any constituent way carries a one-way
// restriction. An empty list is not one-way.
func anyOneway(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}
