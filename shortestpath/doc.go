// Package shortestpath computes weighted distances over the directed edges
// of an lpg.View.
//
// Entry points:
//
//   - Dijkstra: single-source distances over all reachable nodes; requires
//     non-negative weights and fails with ErrNegativeWeight the moment a
//     negative weight is touched during relaxation.
//   - DijkstraPath: source→target with early termination once the target is
//     finalized; returns the distance and one shortest path, or no result
//     when the target is unreachable.
//   - AStar: source→target guided by a caller-supplied admissible heuristic;
//     with a zero heuristic it degenerates to DijkstraPath.
//   - BellmanFord: tolerates negative weights; |V|-1 relaxation rounds plus
//     one verification round. A relaxable edge after the last round flags a
//     negative cycle, and every node downstream of it keeps a -Inf sentinel
//     distance instead of a meaningless number.
//   - FloydWarshall: all-pairs distances, negative weights tolerated, with
//     negative-cycle detection via the diagonal.
//
// Edge weights are decoded from a named edge property (default "weight",
// override with WithWeightProperty). A missing or non-numeric weight aborts
// the call with lpg.ErrMissingWeight / lpg.ErrNonNumericWeight: there is no
// silent default.
//
// A DistanceMap contains reachable nodes only; absence of a key means
// unreachable. The source's distance is exactly 0.
//
// Tie-break policy: when multiple shortest paths exist, any one of them is
// a valid return value as long as its length equals the minimum distance.
package shortestpath
