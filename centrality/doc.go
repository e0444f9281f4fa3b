// Package centrality computes per-node importance scores over an lpg.View.
//
// Every entry point returns a ScoreMap covering EVERY node in the snapshot,
// isolated nodes included:
//
//   - Degree: out-degree + in-degree (a self-loop contributes one to each).
//     WithNormalized divides by (node_count - 1), clamped into [0,1]; a
//     single-node graph normalizes to 0.
//   - PageRank: power iteration with uniform teleportation (1-damping)/N.
//     Dangling nodes (zero out-degree) distribute their mass uniformly over
//     all nodes each iteration, keeping the score total at 1.0 within 0.01.
//     Hitting the iteration cap is not an error: the last iterate is
//     returned as-is.
//   - Betweenness: Brandes' dependency accumulation over unweighted
//     directed shortest paths; path endpoints do not count as "passing
//     through" themselves. WithNormalized divides by (n-1)(n-2).
//   - Closeness: for a node reaching k nodes (excluding itself) at total
//     hop distance s, the score is k/s; nodes with no outgoing reachability
//     score 0 by policy, never an error.
//
// All computations are read-only and deterministic.
package centrality
