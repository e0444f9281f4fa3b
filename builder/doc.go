// Package builder assembles deterministic lpg snapshots for tests,
// examples, and benchmarks.
//
// BuildGraph creates a fresh graph, resolves the functional options into an
// immutable configuration, and applies the given constructors in order.
// Constructors tolerate nodes that already exist, so topologies compose:
//
//	g, err := builder.BuildGraph(
//		[]builder.Option{builder.WithSeed(42), builder.WithWeights("weight", 1, 10)},
//		builder.Cycle(6),
//		builder.Star(0, 4),
//	)
//
// Same options, seed, and constructor order always produce an identical
// snapshot: node IDs come from a deterministic scheme, edges are emitted in
// a fixed order, and random weights and topologies draw from the seeded
// generator.
package builder
