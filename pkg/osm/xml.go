package osm

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/askolds11/pko-lielais/pkg/geo"
	"github.com/askolds11/pko-lielais/pkg/graph"
)

// XMLSource loads plain .osm XML extracts. Any way carrying a highway
// tag is kept; extracts are assumed pre-filtered (the fetch tool only
// downloads highway ways).
type XMLSource struct{}

// Load scans the XML once, builds the full bidirectional graph,
// simplifies it and truncates both views to the bounding box. A
// simplification failure is fatal on this path.
func (XMLSource) Load(ctx context.Context, path string, bbox geo.BBox) (*graph.Multigraph, *graph.Multigraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open osm file: %w", err)
	}
	defer f.Close()

	coords := make(map[osm.NodeID]graph.Node)
	var ways []parsedWay

	scanner := osmxml.New(ctx, f)
	defer scanner.Close()
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			coords[o.ID] = graph.Node{Lat: o.Lat, Lon: o.Lon}
		case *osm.Way:
			if len(o.Nodes) < 2 || o.Tags.Find("highway") == "" {
				continue
			}
			ways = append(ways, newParsedWay(o))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan osm xml: %w", err)
	}
	log.Printf("Scanned %d nodes and %d highway ways", len(coords), len(ways))

	full := buildGraph(ways, coords, geo.BBox{})
	log.Printf("Built full graph: %d nodes, %d edges", full.NumNodes(), full.NumEdges())

	simplified, err := graph.Simplify(full)
	if err != nil {
		return nil, nil, fmt.Errorf("simplify graph: %w", err)
	}
	log.Printf("Simplified graph: %d nodes, %d edges", simplified.NumNodes(), simplified.NumEdges())

	if !bbox.IsZero() {
		simplified, err = graph.Truncate(simplified, bbox)
		if err != nil {
			return nil, nil, fmt.Errorf("truncate simplified graph: %w", err)
		}
		full, err = graph.Truncate(full, bbox)
		if err != nil {
			return nil, nil, fmt.Errorf("truncate full graph: %w", err)
		}
		log.Printf("Truncated to bounding box: %d simplified nodes, %d full nodes",
			simplified.NumNodes(), full.NumNodes())
	}

	return simplified, full, nil
}
