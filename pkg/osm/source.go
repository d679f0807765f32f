// Package osm loads OpenStreetMap extracts into street graphs.
package osm

import (
	"context"
	"strings"

	"github.com/askolds11/pko-lielais/pkg/geo"
	"github.com/askolds11/pko-lielais/pkg/graph"
)

// DefaultBBox bounds the Riga street network.
var DefaultBBox = geo.BBox{MinLat: 56.88, MaxLat: 57.05, MinLng: 23.95, MaxLng: 24.30}

// A Source loads an OSM extract into a simplified intersection graph
// plus the full unsimplified graph it was derived from.
type Source interface {
	Load(ctx context.Context, path string, bbox geo.BBox) (simplified, full *graph.Multigraph, err error)
}

// ForFile selects the source for a file: .pbf extracts use the
// protobuf reader, anything else is parsed as OSM XML.
func ForFile(path string) Source {
	if strings.HasSuffix(path, ".pbf") {
		return PBFSource{}
	}
	return XMLSource{}
}
