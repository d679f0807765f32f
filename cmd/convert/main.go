// Command convert turns an OSM extract (.osm XML or .osm.pbf) into the
// JSON street-network document used for routing and distance-matrix
// work downstream.
//
// Usage:
//
//	convert <osm_file> <output_json> [--bbox=minLat,minLon,maxLat,maxLon]
//
// The bounding box defaults to Riga when omitted. All diagnostics go
// to stderr; the output file is the only artifact.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/askolds11/pko-lielais/pkg/export"
	"github.com/askolds11/pko-lielais/pkg/geo"
	"github.com/askolds11/pko-lielais/pkg/osm"
)

type options struct {
	inputPath  string
	outputPath string
	bbox       geo.BBox
	bboxSet    bool
}

// parseArgs handles the argv contract by hand: exactly two positionals
// with --bbox allowed before, between or after them, in both
// "--bbox=v" and "--bbox v" forms. The flag package stops parsing at
// the first positional, which would silently ignore a trailing --bbox.
func parseArgs(args []string) (options, error) {
	var opts options
	var positionals []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--bbox":
			i++
			if i >= len(args) {
				return opts, errors.New("--bbox requires a value")
			}
			b, err := geo.ParseBBox(args[i])
			if err != nil {
				return opts, fmt.Errorf("invalid bounding box: %w", err)
			}
			opts.bbox = b
			opts.bboxSet = true
		case strings.HasPrefix(arg, "--bbox="):
			b, err := geo.ParseBBox(strings.TrimPrefix(arg, "--bbox="))
			if err != nil {
				return opts, fmt.Errorf("invalid bounding box: %w", err)
			}
			opts.bbox = b
			opts.bboxSet = true
		case strings.HasPrefix(arg, "-") && arg != "-":
			return opts, fmt.Errorf("unknown flag: %s", arg)
		default:
			positionals = append(positionals, arg)
		}
	}

	if len(positionals) != 2 {
		return opts, fmt.Errorf("expected 2 arguments, got %d", len(positionals))
	}
	opts.inputPath = positionals[0]
	opts.outputPath = positionals[1]
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Usage: %s <osm_file> <output_json> [--bbox=minLat,minLon,maxLat,maxLon]\n",
			filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	if !opts.bboxSet {
		opts.bbox = osm.DefaultBBox
		log.Printf("No bounding box given, using default %g,%g,%g,%g",
			opts.bbox.MinLat, opts.bbox.MinLng, opts.bbox.MaxLat, opts.bbox.MaxLng)
	}

	if _, err := os.Stat(opts.inputPath); err != nil {
		log.Fatalf("Input file does not exist: %s", opts.inputPath)
	}

	start := time.Now()

	simplified, full, err := osm.ForFile(opts.inputPath).Load(context.Background(), opts.inputPath, opts.bbox)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", opts.inputPath, err)
	}

	doc := export.Build(simplified, full)
	log.Printf("Export: %d nodes, %d segments, %d full graph nodes, %d full graph edges",
		len(doc.Nodes), len(doc.Segments), len(doc.FullGraphNodes), len(doc.FullGraphEdges))

	if err := doc.WriteFile(opts.outputPath); err != nil {
		log.Fatalf("Failed to write %s: %v", opts.outputPath, err)
	}

	log.Printf("Wrote %s in %v", opts.outputPath, time.Since(start).Round(time.Millisecond))
}
