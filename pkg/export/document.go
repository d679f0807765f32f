package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/askolds11/pko-lielais/pkg/graph"
)

// FullEdge is one directed edge of the full graph, retained for
// external distance-matrix computation. No deduplication: the consumer
// treats this as the routing substrate, not a display list.
type FullEdge struct {
	U      string  `json:"u"`
	V      string  `json:"v"`
	Length float64 `json:"length"`
}

// Document is the complete export payload. Field order is the output
// key order.
type Document struct {
	Nodes            []Node     `json:"nodes"`
	Segments         []Segment  `json:"segments"`
	StartingLocation *Node      `json:"startingLocation"`
	FullGraphNodes   []Node     `json:"fullGraphNodes"`
	FullGraphEdges   []FullEdge `json:"fullGraphEdges"`
}

// Build assembles the document from the two graph views. Collections
// are always non-nil so empty graphs serialize as [] rather than null.
func Build(simplified, full *graph.Multigraph) *Document {
	nodes := Nodes(simplified)
	return &Document{
		Nodes:            nodes,
		Segments:         Segments(simplified),
		StartingLocation: StartingLocation(nodes),
		FullGraphNodes:   Nodes(full),
		FullGraphEdges:   FullEdges(full),
	}
}

// FullEdges lists every directed edge of the full graph in insertion
// order, parallels included.
func FullEdges(g *graph.Multigraph) []FullEdge {
	out := make([]FullEdge, 0, len(g.Edges))
	for _, e := range g.Edges {
		out = append(out, FullEdge{U: nodeID(e.U), V: nodeID(e.V), Length: e.Attrs.Length})
	}
	return out
}

// WriteFile serializes the document as pretty-printed JSON. The write
// goes to a temp file in the destination directory and is renamed into
// place after a successful close, so a failed run never leaves partial
// output behind.
func (d *Document) WriteFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		tmp.Close()
		return fmt.Errorf("encode json: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
