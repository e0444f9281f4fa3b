// Package lpg provides the labeled property graph snapshot that every
// algorithm in this module reads, and the read-only View contract they
// read it through.
//
// A Graph holds nodes (string ID, string labels, typed properties) and
// directed edges (type string, typed properties); multiple edges between
// the same ordered pair and self-loops are permitted. Once populated, a
// Graph is handed to algorithms as a View: membership checks, node/edge
// counts, per-node neighbor iteration by direction, and a full edge
// listing. Algorithms never mutate the snapshot.
//
// Neighbor iteration order is call-stable: repeated iteration within one
// algorithm call yields the same order (edge insertion order).
//
// Weighted algorithms decode weights from a named edge property at
// invocation time via Arc.Weight / Edge.Weight. A missing property or a
// non-numeric value is an error (ErrMissingWeight, ErrNonNumericWeight);
// there is no silent default.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrDuplicateNode    - node ID already present in the snapshot.
//	ErrNodeNotFound     - a caller-supplied node ID does not exist.
//	ErrMissingWeight    - weight property absent on a traversed edge.
//	ErrNonNumericWeight - weight property present but not numeric.
package lpg
