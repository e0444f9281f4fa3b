package lpg

import (
	"errors"
	"fmt"
)

// Sentinel errors for snapshot construction and weight decoding.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("lpg: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("lpg: node already exists")

	// ErrNodeNotFound indicates a caller-supplied node ID is absent from the
	// snapshot. Algorithms surface this for unknown start/source/target IDs.
	ErrNodeNotFound = errors.New("lpg: node not found")

	// ErrMissingWeight indicates a weighted algorithm was invoked with a
	// property name absent on a traversed edge.
	ErrMissingWeight = errors.New("lpg: weight property missing on edge")

	// ErrNonNumericWeight indicates the weight property holds a value that
	// is neither an integer nor a float.
	ErrNonNumericWeight = errors.New("lpg: weight property is not numeric")
)

// Direction selects which incident edges Neighbors iterates.
type Direction int

const (
	// DirOut iterates outgoing edges (node is the source).
	DirOut Direction = iota
	// DirIn iterates incoming edges (node is the target).
	DirIn
	// DirBoth iterates outgoing then incoming edges. A self-loop appears
	// once per direction: one logical edge counts as two directed hops.
	DirBoth
)

// Node is one vertex of the snapshot: a unique ID, a set of string labels,
// and a property map. Nodes are immutable for the duration of a call.
type Node struct {
	ID     string
	Labels []string
	Props  map[string]Value
}

// Edge is one directed edge of the snapshot. Multiple edges may connect the
// same ordered pair with different types; self-loops are permitted.
type Edge struct {
	ID    string
	From  string
	To    string
	Type  string
	Props map[string]Value
}

// Weight decodes the named property of e as a float64.
// Returns ErrMissingWeight when the key is absent and ErrNonNumericWeight
// when the value is not an integer or float.
func (e Edge) Weight(prop string) (float64, error) {
	return decodeWeight(e.Props, prop, e.ID)
}

// Arc is one hop of neighbor iteration: the node on the far side of an
// incident edge, plus the edge's identity, type, and properties.
type Arc struct {
	Neighbor string
	EdgeID   string
	Type     string
	Props    map[string]Value
}

// Weight decodes the named property of the arc's edge as a float64,
// with the same error policy as Edge.Weight.
func (a Arc) Weight(prop string) (float64, error) {
	return decodeWeight(a.Props, prop, a.EdgeID)
}

func decodeWeight(props map[string]Value, prop, edgeID string) (float64, error) {
	v, ok := props[prop]
	if !ok {
		return 0, fmt.Errorf("%w: property %q on edge %s", ErrMissingWeight, prop, edgeID)
	}
	f, ok := v.AsFloat()
	if !ok {
		return 0, fmt.Errorf("%w: property %q on edge %s", ErrNonNumericWeight, prop, edgeID)
	}

	return f, nil
}

// View is the read-only contract every algorithm consumes. A populated
// *Graph satisfies it; the surrounding storage layer may substitute its own
// snapshot as long as iteration order stays call-stable.
type View interface {
	// HasNode reports whether id exists in the snapshot. O(1).
	HasNode(id string) bool

	// NodeIDs returns every node ID in ascending order. The slice is a
	// fresh copy owned by the caller.
	NodeIDs() []string

	// NodeCount returns the number of nodes in the snapshot.
	NodeCount() int

	// EdgeCount returns the number of edges in the snapshot.
	EdgeCount() int

	// Neighbors iterates the arcs incident to id in the given direction,
	// in a call-stable order. Returns ErrNodeNotFound for unknown ids.
	Neighbors(id string, dir Direction) ([]Arc, error)

	// Edges returns every edge in insertion order. The slice is a fresh
	// copy; the property maps are shared and must not be mutated.
	Edges() []Edge
}
