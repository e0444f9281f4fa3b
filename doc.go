// Package graphos is a deterministic graph-algorithms engine over labeled
// property graphs: given an in-memory read-only snapshot, every entry point
// computes an exact, reproducible result with defined tie-breaking and
// edge-case policy.
//
// The engine is split into focused subpackages, all consuming the same
// lpg.View interface:
//
//	lpg/          — snapshot model: nodes, typed property values, directed
//	                edges, neighbor iteration by direction
//	builder/      — deterministic snapshot fixtures for tests and examples
//	traversal/    — BFS, layered BFS, DFS, full-graph DFS
//	shortestpath/ — Dijkstra (single-source and point-to-point), A*,
//	                Bellman–Ford with negative-cycle detection,
//	                Floyd–Warshall
//	centrality/   — degree, PageRank, betweenness (Brandes), closeness
//	structure/    — connected and strongly connected components, DAG check,
//	                topological sort, articulation points, bridges, k-core
//	community/    — label propagation, Louvain modularity optimization
//	mst/          — Kruskal and Prim minimum spanning forests
//	flow/         — Edmonds–Karp maximum flow
//
// Algorithms never mutate the snapshot, fail loudly on unknown node IDs and
// bad weight properties, and represent "no path", "no topological order",
// and similar outcomes as values rather than errors. Long-running entry
// points accept a context through a WithContext option.
package graphos
