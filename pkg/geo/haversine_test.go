package geo

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name             string
		lat1, lon1       float64
		lat2, lon2       float64
		wantMeters       float64
		tolerancePercent float64
	}{
		{
			name: "One degree of latitude",
			lat1: 56.0, lon1: 24.0,
			lat2: 57.0, lon2: 24.0,
			wantMeters:       111_195, // 2*pi*R/360
			tolerancePercent: 0.1,
		},
		{
			name: "One degree of longitude at the equator",
			lat1: 0.0, lon1: 0.0,
			lat2: 0.0, lon2: 1.0,
			wantMeters:       111_195,
			tolerancePercent: 0.1,
		},
		{
			name: "Same point",
			lat1: 56.9496, lon1: 24.1052,
			lat2: 56.9496, lon2: 24.1052,
			wantMeters:       0,
			tolerancePercent: 0,
		},
		{
			name: "Riga to London",
			lat1: 56.9496, lon1: 24.1052,
			lat2: 51.5074, lon2: -0.1278,
			wantMeters:       1_676_000, // ~1676 km great-circle
			tolerancePercent: 1,
		},
		{
			name: "Short distance (~100m)",
			lat1: 56.9496, lon1: 24.1052,
			lat2: 56.9505, lon2: 24.1052,
			wantMeters:       100,
			tolerancePercent: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if tt.wantMeters == 0 {
				if got != 0 {
					t.Errorf("expected 0, got %f", got)
				}
				return
			}
			diff := math.Abs(got-tt.wantMeters) / tt.wantMeters * 100
			if diff > tt.tolerancePercent {
				t.Errorf("Haversine = %f m, want ~%f m (diff %.1f%%)", got, tt.wantMeters, diff)
			}
		})
	}
}

func TestHaversineSymmetric(t *testing.T) {
	d1 := Haversine(56.88, 23.95, 57.05, 24.30)
	d2 := Haversine(57.05, 24.30, 56.88, 23.95)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Haversine not symmetric: %f vs %f", d1, d2)
	}
}

func BenchmarkHaversine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Haversine(56.9496, 24.1052, 56.9730, 23.8400)
	}
}
