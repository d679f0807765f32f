package osm

import (
	"log"

	"github.com/paulmach/osm"

	"github.com/askolds11/pko-lielais/pkg/geo"
	"github.com/askolds11/pko-lielais/pkg/graph"
)

// parsedWay holds the per-way data both backends collect while
// scanning, before node coordinates are known.
type parsedWay struct {
	ID      int64
	NodeIDs []osm.NodeID
	Name    string // empty when unnamed
	Highway string
	Oneway  bool
}

func newParsedWay(w *osm.Way) parsedWay {
	ids := make([]osm.NodeID, len(w.Nodes))
	for i, wn := range w.Nodes {
		ids[i] = wn.ID
	}
	return parsedWay{
		ID:      int64(w.ID),
		NodeIDs: ids,
		Name:    w.Tags.Find("name"),
		Highway: w.Tags.Find("highway"),
		Oneway:  isOneway(w.Tags),
	}
}

// buildGraph assembles the full street graph from parsed ways. Every
// consecutive node pair contributes a forward and a reverse edge; the
// one-way restriction travels as an attribute instead of pruning the
// reverse direction. Hops with unknown node coordinates are skipped
// and counted. When bbox is non-zero, hops with either endpoint
// outside the box are dropped.
func buildGraph(ways []parsedWay, coords map[osm.NodeID]graph.Node, bbox geo.BBox) *graph.Multigraph {
	useBBox := !bbox.IsZero()
	g := graph.NewMultigraph()

	var skipped, filtered int
	for _, w := range ways {
		var names []string
		if w.Name != "" {
			names = []string{w.Name}
		}
		highways := []string{w.Highway}
		wayIDs := []int64{w.ID}
		oneway := []bool{w.Oneway}

		for i := 0; i < len(w.NodeIDs)-1; i++ {
			a, b := w.NodeIDs[i], w.NodeIDs[i+1]
			from, fromOk := coords[a]
			to, toOk := coords[b]
			if !fromOk || !toOk {
				skipped++
				continue
			}
			if useBBox && (!bbox.Contains(from.Lat, from.Lon) || !bbox.Contains(to.Lat, to.Lon)) {
				filtered++
				continue
			}

			g.AddNode(a, from.Lat, from.Lon)
			g.AddNode(b, to.Lat, to.Lon)

			attrs := graph.EdgeAttrs{
				Length:   geo.Haversine(from.Lat, from.Lon, to.Lat, to.Lon),
				Names:    names,
				Highways: highways,
				WayIDs:   wayIDs,
				Oneway:   oneway,
			}
			g.AddEdge(a, b, attrs)
			g.AddEdge(b, a, attrs)
		}
	}

	if skipped > 0 {
		log.Printf("Warning: skipped %d edges due to missing node coordinates", skipped)
	}
	if filtered > 0 {
		log.Printf("Filtered %d edges outside bounding box", filtered)
	}

	return g
}
