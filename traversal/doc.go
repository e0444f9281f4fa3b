// Package traversal provides breadth-first and depth-first reachability
// over an lpg.View: BFS, BFSLayers, DFS from a start node, and DFSAll over
// the whole snapshot.
//
// All four walk outgoing edges only, are fully synchronous, and run in
// O(V+E). BFS visits level by level and always includes the start node,
// even with zero outgoing edges. BFSLayers additionally groups nodes by the
// hop distance at which they were first reached (layer 0 is the start node).
// DFS guarantees completeness of the reachable set but not a particular
// visiting order. DFSAll restarts DFS from every unvisited node in
// ascending ID order, so its result covers the entire snapshot.
//
// Options:
//
//   - WithContext(ctx)           cancellation via context.Context.
//   - WithOnVisit(fn)            hook on each visited node; an error aborts.
//   - WithMaxDepth(d)            stop exploring beyond hop depth d (0 = no limit).
//   - WithFilterNeighbor(fn)     skip arcs for which fn returns false.
//
// Errors:
//
//   - ErrNilView                 a nil View was supplied.
//   - lpg.ErrNodeNotFound        the start node does not exist.
//   - ErrOptionViolation         an invalid option value (negative depth).
//   - context.Canceled           the supplied context was cancelled.
//   - any error returned by an OnVisit hook.
package traversal
