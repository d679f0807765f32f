// Package export flattens street graphs into the JSON document
// consumed by downstream routing and distance-matrix tools.
package export

import (
	"fmt"

	"github.com/paulmach/osm"

	"github.com/askolds11/pko-lielais/pkg/graph"
)

// Node is one exported graph node.
type Node struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// nodeID renders the stable exported id for an OSM node. The prefix
// keeps node ids distinguishable from segment ids across collections.
func nodeID(id osm.NodeID) string {
	return fmt.Sprintf("node_%d", id)
}

// Nodes projects a graph's node set in insertion order. Coordinates
// come through as stored; auto-created endpoints keep their (0, 0).
func Nodes(g *graph.Multigraph) []Node {
	out := make([]Node, 0, len(g.NodeIDs))
	for _, id := range g.NodeIDs {
		n := g.Node(id)
		out = append(out, Node{ID: nodeID(id), Lat: n.Lat, Lon: n.Lon})
	}
	return out
}
