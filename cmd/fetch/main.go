// Command fetch downloads an OSM XML extract for a bounding box from
// an Overpass API endpoint, producing input for the convert command.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/askolds11/pko-lielais/pkg/geo"
	"github.com/askolds11/pko-lielais/pkg/osm"
)

func main() {
	bboxStr := flag.String("bbox", "", "bounding box as minLat,minLon,maxLat,maxLon (default: Riga)")
	output := flag.String("output", "network.osm", "output file path")
	rawURL := flag.String("url", osm.DefaultOverpassURL, "Overpass API interpreter URL")
	timeout := flag.Int("timeout", 180, "request timeout in seconds")
	flag.Parse()

	bbox := osm.DefaultBBox
	if *bboxStr != "" {
		var err error
		bbox, err = geo.ParseBBox(*bboxStr)
		if err != nil {
			log.Fatalf("Invalid bounding box: %v", err)
		}
	}

	client := osm.NewOverpassClient(*rawURL, time.Duration(*timeout)*time.Second)

	start := time.Now()
	n, err := fetchToFile(context.Background(), client, bbox, *output)
	if err != nil {
		log.Fatalf("Failed to fetch extract: %v", err)
	}
	log.Printf("Wrote %d bytes to %s in %v", n, *output, time.Since(start).Round(time.Millisecond))
}

// fetchToFile streams the download into a temp file and renames it
// into place after a successful close, so an interrupted download
// never leaves a half-written extract.
func fetchToFile(ctx context.Context, client *osm.OverpassClient, bbox geo.BBox, path string) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	n, err := client.FetchBBox(ctx, bbox, tmp)
	if err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, fmt.Errorf("rename into place: %w", err)
	}
	return n, nil
}
