package osm

import (
	"strings"

	"github.com/paulmach/osm"
)

// carHighways lists highway tag values accessible by car.
var carHighways = map[string]bool{
	"motorway":       true,
	"motorway_link":  true,
	"trunk":          true,
	"trunk_link":     true,
	"primary":        true,
	"primary_link":   true,
	"secondary":      true,
	"secondary_link": true,
	"tertiary":       true,
	"tertiary_link":  true,
	"unclassified":   true,
	"residential":    true,
	"living_street":  true,
	"service":        true,
}

// isCarAccessible returns true if the way is drivable by car.
func isCarAccessible(tags osm.Tags) bool {
	hw := tags.Find("highway")
	if !carHighways[hw] {
		return false
	}

	// Skip area highways (pedestrian plazas).
	if tags.Find("area") == "yes" {
		return false
	}

	// Skip restricted access.
	access := tags.Find("access")
	if access == "no" || access == "private" {
		return false
	}
	if tags.Find("motor_vehicle") == "no" {
		return false
	}

	return true
}

// isOneway reports whether the way restricts travel to a single
// direction. Roundabouts are implicitly one-way; otherwise the oneway
// tag decides, with "-1" (reversed) counting the same as the forward
// forms. The reverse orientation itself is not tracked.
func isOneway(tags osm.Tags) bool {
	if tags.Find("junction") == "roundabout" {
		return true
	}
	switch strings.ToLower(tags.Find("oneway")) {
	case "yes", "true", "1", "-1":
		return true
	}
	return false
}
