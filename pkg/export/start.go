package export

import "math"

// StartingLocation picks the node nearest the arithmetic centroid of
// the list, by squared distance in (lat, lon) space. The first minimal
// node wins ties; an empty list yields nil.
func StartingLocation(nodes []Node) *Node {
	if len(nodes) == 0 {
		return nil
	}

	var sumLat, sumLon float64
	for _, n := range nodes {
		sumLat += n.Lat
		sumLon += n.Lon
	}
	cLat := sumLat / float64(len(nodes))
	cLon := sumLon / float64(len(nodes))

	best := 0
	bestDist := math.Inf(1)
	for i, n := range nodes {
		dLat := n.Lat - cLat
		dLon := n.Lon - cLon
		if d := dLat*dLat + dLon*dLon; d < bestDist {
			best = i
			bestDist = d
		}
	}

	chosen := nodes[best]
	return &chosen
}
