package osm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/askolds11/pko-lielais/pkg/geo"
)

// DefaultOverpassURL is the public Overpass API interpreter endpoint.
const DefaultOverpassURL = "https://overpass-api.de/api/interpreter"

// OverpassClient downloads OSM XML extracts from an Overpass API
// endpoint.
type OverpassClient struct {
	URL    string
	Client *http.Client
}

// NewOverpassClient returns a client for the given interpreter URL
// (empty selects DefaultOverpassURL) with the given request timeout.
func NewOverpassClient(rawURL string, timeout time.Duration) *OverpassClient {
	if rawURL == "" {
		rawURL = DefaultOverpassURL
	}
	return &OverpassClient{
		URL:    rawURL,
		Client: &http.Client{Timeout: timeout},
	}
}

// FetchBBox posts an Overpass QL query for every highway way inside
// the bounding box, plus the nodes those ways reference, and streams
// the XML response to w. Returns the number of bytes written.
func (c *OverpassClient) FetchBBox(ctx context.Context, bbox geo.BBox, w io.Writer) (int64, error) {
	// Overpass bbox order is south,west,north,east.
	query := fmt.Sprintf(`[out:xml];(way["highway"](%g,%g,%g,%g);>;);out body;`,
		bbox.MinLat, bbox.MinLng, bbox.MaxLat, bbox.MaxLng)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, fmt.Errorf("build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("overpass request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("overpass returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("read overpass response: %w", err)
	}
	return n, nil
}
