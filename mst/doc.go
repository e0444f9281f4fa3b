// Package mst builds minimum spanning trees over a graph snapshot.
//
// Edge direction is ignored: the snapshot is treated as an undirected
// weighted graph, with weights read from a named edge property at call time
// (default "weight"). A missing or non-numeric weight fails the call.
// Self-loops can never join two components and are skipped.
//
// Two constructions are provided:
//
//   - Kruskal: edges sorted by ascending weight, joined through a union-find
//     structure.
//   - Prim: trees grown from a priority queue of frontier edges, restarting
//     from every still-unvisited node in ascending ID order.
//
// On a disconnected snapshot both return a minimum spanning forest, one tree
// per connected component; disconnection is not an error. Both report the
// same TotalWeight for the same input. With ties among edge weights the edge
// sets may differ between the two, but any minimum-weight forest is a valid
// result.
package mst
