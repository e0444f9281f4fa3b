// Package flow computes maximum flow over a graph snapshot.
//
// MaxFlow implements the Edmonds–Karp algorithm: BFS repeatedly finds the
// shortest augmenting path in the residual network until none remains.
// Capacities are read from a named edge property at call time (default
// "capacity"); parallel edges between the same ordered pair sum their
// capacities, self-loops carry no flow and are ignored, and a negative
// capacity fails the call. Edges are directed; a reverse residual arc exists
// only through augmentation or where the snapshot stores one.
//
// The result carries the total flow value and the residual capacities after
// augmentation, from which a minimum cut can be recovered by the caller.
package flow
