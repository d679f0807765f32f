package graph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Node holds the geographic position of a graph node in degrees.
type Node struct {
	Lat float64
	Lon float64
}

// EdgeAttrs carries the road attributes of one directed edge.
// Single-hop edges hold one entry per slice; edges merged during
// simplification accumulate the values of every constituent way.
// Slices may be shared between derived graphs and are never mutated
// after the edge is added.
type EdgeAttrs struct {
	Length   float64        // meters
	Names    []string       // street names; empty when unnamed
	Highways []string       // highway tag values
	WayIDs   []int64        // contributing OSM way ids
	Oneway   []bool         // one flag per constituent way
	Geometry orb.LineString // full path in lon/lat order; nil for direct edges
}

// Edge is one directed edge of a multigraph. Key disambiguates parallel
// edges between the same ordered node pair, counting up from 0.
type Edge struct {
	U     osm.NodeID
	V     osm.NodeID
	Key   int
	Attrs EdgeAttrs
}

type nodePair struct {
	u, v osm.NodeID
}

// Multigraph is a directed multigraph over OSM node ids. Nodes and
// edges iterate in insertion order, which downstream deduplication and
// tie-breaking rules depend on. Adding an edge auto-creates missing
// endpoints with (0, 0) coordinates.
type Multigraph struct {
	NodeIDs []osm.NodeID // insertion order
	Edges   []*Edge      // insertion order, parallels included

	nodes  map[osm.NodeID]Node
	adj    map[nodePair][]*Edge        // parallel edges indexed by key
	succ   map[osm.NodeID][]osm.NodeID // unique successors, first-seen order
	pred   map[osm.NodeID][]osm.NodeID // unique predecessors, first-seen order
	outDeg map[osm.NodeID]int          // directed out-degree, parallels counted
	inDeg  map[osm.NodeID]int
}

// NewMultigraph creates an empty multigraph.
func NewMultigraph() *Multigraph {
	return &Multigraph{
		nodes:  make(map[osm.NodeID]Node),
		adj:    make(map[nodePair][]*Edge),
		succ:   make(map[osm.NodeID][]osm.NodeID),
		pred:   make(map[osm.NodeID][]osm.NodeID),
		outDeg: make(map[osm.NodeID]int),
		inDeg:  make(map[osm.NodeID]int),
	}
}

// AddNode inserts a node or updates the coordinates of an existing one.
func (g *Multigraph) AddNode(id osm.NodeID, lat, lon float64) {
	if _, ok := g.nodes[id]; !ok {
		g.NodeIDs = append(g.NodeIDs, id)
	}
	g.nodes[id] = Node{Lat: lat, Lon: lon}
}

func (g *Multigraph) ensureNode(id osm.NodeID) {
	if _, ok := g.nodes[id]; !ok {
		g.NodeIDs = append(g.NodeIDs, id)
		g.nodes[id] = Node{}
	}
}

// AddEdge appends a directed edge u→v and returns its assigned key.
func (g *Multigraph) AddEdge(u, v osm.NodeID, attrs EdgeAttrs) int {
	g.ensureNode(u)
	g.ensureNode(v)

	pair := nodePair{u, v}
	key := len(g.adj[pair])
	e := &Edge{U: u, V: v, Key: key, Attrs: attrs}

	g.adj[pair] = append(g.adj[pair], e)
	g.Edges = append(g.Edges, e)

	if key == 0 {
		g.succ[u] = append(g.succ[u], v)
		g.pred[v] = append(g.pred[v], u)
	}
	g.outDeg[u]++
	g.inDeg[v]++

	return key
}

// Node returns the coordinates of id, or a zero Node when unknown.
func (g *Multigraph) Node(id osm.NodeID) Node {
	return g.nodes[id]
}

// HasNode reports whether id is part of the graph.
func (g *Multigraph) HasNode(id osm.NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether at least one directed edge u→v exists.
func (g *Multigraph) HasEdge(u, v osm.NodeID) bool {
	return len(g.adj[nodePair{u, v}]) > 0
}

// FirstEdge returns the key-0 edge u→v, or nil when none exists.
func (g *Multigraph) FirstEdge(u, v osm.NodeID) *Edge {
	edges := g.adj[nodePair{u, v}]
	if len(edges) == 0 {
		return nil
	}
	return edges[0]
}

// Successors returns the distinct downstream neighbors of v in
// first-seen order. The returned slice is internal; do not modify.
func (g *Multigraph) Successors(v osm.NodeID) []osm.NodeID {
	return g.succ[v]
}

// Predecessors returns the distinct upstream neighbors of v in
// first-seen order. The returned slice is internal; do not modify.
func (g *Multigraph) Predecessors(v osm.NodeID) []osm.NodeID {
	return g.pred[v]
}

// OutDegree returns the number of directed edges leaving v,
// parallels counted.
func (g *Multigraph) OutDegree(v osm.NodeID) int {
	return g.outDeg[v]
}

// InDegree returns the number of directed edges entering v,
// parallels counted.
func (g *Multigraph) InDegree(v osm.NodeID) int {
	return g.inDeg[v]
}

// Degree returns the total directed degree of v (in + out).
func (g *Multigraph) Degree(v osm.NodeID) int {
	return g.outDeg[v] + g.inDeg[v]
}

// NumNodes returns the node count.
func (g *Multigraph) NumNodes() int {
	return len(g.NodeIDs)
}

// NumEdges returns the directed edge count, parallels included.
func (g *Multigraph) NumEdges() int {
	return len(g.Edges)
}
