// Package dfs implements depth-first search on core.Graph.
//
// DFS(g, startID, opts...) visits every vertex reachable from startID along
// the graph's edges (outgoing edges only on a directed graph), recording
// discovery depth, parent links and post-order.
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithOnVisit(fn)         pre-order hook; a returned error aborts the walk.
//   - WithOnExit(fn)          post-order hook; a returned error aborts the walk.
//   - WithMaxDepth(limit)     stop descending below limit (>= 0).
//   - WithFilterNeighbor(fn)  skip neighbors for which fn returns false.
//
// An aborting hook is the intended way to stop early: graphgen's chain
// check returns a sentinel from OnVisit as soon as the target is reached
// and tests for it with errors.Is.
//
// Complexity: O(V + E) time, O(V) memory for the recursion and result maps.
package dfs
