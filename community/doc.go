// Package community detects node communities in a graph snapshot.
//
// Two detectors are provided:
//
//   - LabelPropagation: every node starts with its own label and repeatedly
//     adopts the most frequent label among its neighbors (ties broken by the
//     smallest label), sweeping nodes in ascending ID order until labels
//     stabilize or the sweep cap is reached.
//   - Louvain: greedy modularity optimization. Each pass moves nodes between
//     communities while the gain exceeds a small threshold, then aggregates
//     communities into super-nodes and repeats on the condensed graph.
//
// Both treat the graph as undirected and unweighted: every edge contributes
// weight 1 regardless of direction, parallel edges accumulate, and self-loops
// are ignored. Both return a CommunityResult with a dense community
// assignment, the community count, and the modularity of the final partition.
// Hitting an iteration cap is not an error; the best partition found so far
// is returned.
//
// The empty graph yields an empty assignment with zero communities; any
// non-empty graph yields at least one community.
package community
