package osm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/askolds11/pko-lielais/pkg/geo"
	"github.com/askolds11/pko-lielais/pkg/graph"
)

// ErrNoEdges is returned when the driving filter plus bounding box
// leave nothing of the extract.
var ErrNoEdges = errors.New("no edges found in the PBF file for the given area")

// PBFSource loads .osm.pbf extracts. Unlike the XML path it applies a
// car-accessibility filter, because planet extracts carry footpaths
// and everything else.
type PBFSource struct{}

// Load scans the file twice (ways first to learn which node ids
// matter, then nodes), builds the full graph with the bounding box
// applied inline, and simplifies. A simplification failure here
// degrades to the unsimplified graph instead of failing the load.
func (PBFSource) Load(ctx context.Context, path string, bbox geo.BBox) (*graph.Multigraph, *graph.Multigraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open pbf file: %w", err)
	}
	defer f.Close()

	// Pass 1: scan ways, collecting referenced node ids.
	referenced := make(map[osm.NodeID]struct{})
	var ways []parsedWay

	scanner := osmpbf.New(ctx, f, 1)
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		w, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if !isCarAccessible(w.Tags) || len(w.Nodes) < 2 {
			continue
		}
		pw := newParsedWay(w)
		for _, id := range pw.NodeIDs {
			referenced[id] = struct{}{}
		}
		ways = append(ways, pw)
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, fmt.Errorf("pass 1 (ways): %w", err)
	}
	scanner.Close()

	log.Printf("Pass 1 complete: %d ways, %d referenced nodes", len(ways), len(referenced))

	// Pass 2: scan nodes, keeping coordinates for referenced ids only.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("seek for pass 2: %w", err)
	}

	coords := make(map[osm.NodeID]graph.Node, len(referenced))

	scanner = osmpbf.New(ctx, f, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, needed := referenced[n.ID]; !needed {
			continue
		}
		coords[n.ID] = graph.Node{Lat: n.Lat, Lon: n.Lon}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, fmt.Errorf("pass 2 (nodes): %w", err)
	}
	scanner.Close()

	log.Printf("Pass 2 complete: %d node coordinates collected", len(coords))

	full := buildGraph(ways, coords, bbox)
	if full.NumEdges() == 0 {
		return nil, nil, ErrNoEdges
	}
	log.Printf("Built full graph: %d nodes, %d edges", full.NumNodes(), full.NumEdges())

	simplified, err := graph.Simplify(full)
	if err != nil {
		log.Printf("Warning: simplification failed (%v), using the unsimplified graph", err)
		simplified = full
	} else {
		log.Printf("Simplified graph: %d nodes, %d edges", simplified.NumNodes(), simplified.NumEdges())
	}

	return simplified, full, nil
}
