package lpg

import (
	"fmt"
	"sort"
)

// Graph is the in-memory property-graph snapshot. Populate it with AddNode
// and AddEdge, then hand it to algorithms as a View.
//
// A Graph is not safe for concurrent mutation; the surrounding storage or
// transaction layer must finish populating a snapshot before sharing it.
// All View methods are read-only and safe to call from multiple goroutines
// once population is complete.
type Graph struct {
	nodes map[string]*Node
	edges map[string]*Edge

	// edgeOrder preserves insertion order for deterministic Edges().
	edgeOrder []string

	// out/in map a node ID to the IDs of its outgoing/incoming edges,
	// in insertion order. This fixes the call-stable iteration order
	// Neighbors promises.
	out map[string][]string
	in  map[string][]string

	nextEdge uint64
}

// New creates an empty snapshot.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
		out:   make(map[string][]string),
		in:    make(map[string][]string),
	}
}

// AddNode inserts a node with the given ID, labels, and properties.
// Returns ErrEmptyNodeID for an empty ID and ErrDuplicateNode when the ID
// is already present.
func (g *Graph) AddNode(id string, labels []string, props map[string]Value) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.nodes[id] = &Node{ID: id, Labels: labels, Props: props}

	return nil
}

// AddEdge inserts a directed edge from→to with the given type and
// properties, and returns the generated edge ID. Both endpoints must
// already exist (ErrNodeNotFound otherwise). Parallel edges and self-loops
// are permitted.
func (g *Graph) AddEdge(from, to, edgeType string, props map[string]Value) (string, error) {
	if _, ok := g.nodes[from]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	g.nextEdge++
	id := fmt.Sprintf("e%d", g.nextEdge)
	g.edges[id] = &Edge{ID: id, From: from, To: to, Type: edgeType, Props: props}
	g.edgeOrder = append(g.edgeOrder, id)
	g.out[from] = append(g.out[from], id)
	g.in[to] = append(g.in[to], id)

	return id, nil
}

// Node returns the node with the given ID.
// The property map is shared with the snapshot and must not be mutated.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// HasNode reports whether id exists in the snapshot. O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// NodeIDs returns every node ID in ascending order.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Neighbors returns the arcs incident to id in the given direction, in a
// call-stable order (edge insertion order; DirBoth lists outgoing before
// incoming). Returns ErrNodeNotFound for unknown ids.
func (g *Graph) Neighbors(id string, dir Direction) ([]Arc, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	var arcs []Arc
	if dir == DirOut || dir == DirBoth {
		for _, eid := range g.out[id] {
			e := g.edges[eid]
			arcs = append(arcs, Arc{Neighbor: e.To, EdgeID: e.ID, Type: e.Type, Props: e.Props})
		}
	}
	if dir == DirIn || dir == DirBoth {
		for _, eid := range g.in[id] {
			e := g.edges[eid]
			arcs = append(arcs, Arc{Neighbor: e.From, EdgeID: e.ID, Type: e.Type, Props: e.Props})
		}
	}

	return arcs, nil
}

// Edges returns every edge in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		edges = append(edges, *g.edges[id])
	}

	return edges
}
