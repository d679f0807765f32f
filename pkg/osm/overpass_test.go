package osm

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/askolds11/pko-lielais/pkg/geo"
)

func TestOverpassFetchBBox(t *testing.T) {
	const response = `<osm version="0.6"></osm>`
	var query string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		query = r.FormValue("data")
		io.WriteString(w, response)
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL, 5*time.Second)
	bbox := geo.BBox{MinLat: 56.88, MaxLat: 57.05, MinLng: 23.95, MaxLng: 24.30}

	var buf bytes.Buffer
	n, err := client.FetchBBox(context.Background(), bbox, &buf)
	if err != nil {
		t.Fatalf("FetchBBox() error = %v", err)
	}
	if n != int64(len(response)) || buf.String() != response {
		t.Errorf("FetchBBox() wrote %q (%d bytes), want the raw server response", buf.String(), n)
	}

	if !strings.Contains(query, "[out:xml]") {
		t.Errorf("query %q missing [out:xml]", query)
	}
	// Overpass wants south,west,north,east.
	if !strings.Contains(query, `way["highway"](56.88,23.95,57.05,24.3)`) {
		t.Errorf("query %q missing the bbox clause", query)
	}
}

func TestOverpassFetchBBoxServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL, 5*time.Second)

	var buf bytes.Buffer
	_, err := client.FetchBBox(context.Background(), DefaultBBox, &buf)
	if err == nil {
		t.Fatal("FetchBBox() error = nil, want status error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error %q should carry the HTTP status", err)
	}
	if buf.Len() != 0 {
		t.Errorf("error response leaked %d bytes into the writer", buf.Len())
	}
}

func TestNewOverpassClientDefaultURL(t *testing.T) {
	c := NewOverpassClient("", time.Second)
	if c.URL != DefaultOverpassURL {
		t.Errorf("URL = %q, want %q", c.URL, DefaultOverpassURL)
	}
}
