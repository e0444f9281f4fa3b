// Package structure analyzes the connectivity and shape of an lpg.View:
// connected components, strongly connected components, DAG detection,
// topological ordering, articulation points, bridges, and k-core
// decomposition.
//
// Connectivity definitions:
//
//   - ConnectedComponents uses undirected reachability: an edge in either
//     direction merges two components. Component IDs are dense integers,
//     assigned in ascending order of each component's smallest member, so
//     they are stable within one call.
//   - StronglyConnectedComponents uses directed mutual reachability
//     (Tarjan's algorithm); every node lands in exactly one group,
//     singletons included.
//   - TopologicalSort returns (order, true) for acyclic graphs and
//     (nil, false) when a cycle exists — a cycle is a normal domain
//     outcome, not an error.
//   - ArticulationPoints and Bridges run one DFS with discovery/low-link
//     tracking over the undirected view; parallel edges between a pair
//     mean neither is a bridge and self-loops are ignored.
//   - KCore iteratively peels nodes by undirected degree (self-loops
//     excluded), reporting per-node core numbers and the maximum k with a
//     non-empty core.
//
// The exported UnionFind (path compression + union by rank) backs
// ConnectedComponents and the MST algorithms.
package structure
