package graph

import (
	"errors"

	"github.com/paulmach/osm"
	"github.com/tidwall/rtree"

	"github.com/askolds11/pko-lielais/pkg/geo"
)

// ErrNoNodesInBBox is returned by Truncate when no graph node lies
// inside the requested bounding box.
var ErrNoNodesInBBox = errors.New("no graph nodes within the requested bounding box")

// Truncate restricts g to the nodes inside bbox (boundary inclusive)
// and then to the largest weakly connected component of what remains.
// Edges crossing the box boundary are dropped with their outside
// endpoints. The input graph is not modified.
func Truncate(g *Multigraph, bbox geo.BBox) (*Multigraph, error) {
	var tr rtree.RTree
	for _, id := range g.NodeIDs {
		n := g.Node(id)
		p := [2]float64{n.Lon, n.Lat}
		tr.Insert(p, p, id)
	}

	lo := [2]float64{bbox.MinLng, bbox.MinLat}
	hi := [2]float64{bbox.MaxLng, bbox.MaxLat}
	var inside []osm.NodeID
	tr.Search(lo, hi, func(_, _ [2]float64, data interface{}) bool {
		inside = append(inside, data.(osm.NodeID))
		return true
	})
	if len(inside) == 0 {
		return nil, ErrNoNodesInBBox
	}

	clipped := Subgraph(g, inside)
	return Subgraph(clipped, LargestComponent(clipped)), nil
}
