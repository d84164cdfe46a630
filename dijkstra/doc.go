// Package dijkstra implements Dijkstra's shortest-path algorithm on
// core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights. It
// processes vertices in order of increasing distance using a min-heap with
// lazy decrease-key.
//
// Within pmapbench it is the third, independent shortest-path oracle:
// oracle.Verify builds a core.Graph from the generated graph and checks that
// Bellman-Ford, delta-stepping and Dijkstra agree on every vertex.
//
// Options:
//
//   - Source(id)               starting vertex ID (required).
//   - WithReturnPath()         return the predecessor map.
//   - WithMaxDistance(x)       do not explore past distance x (x >= 0).
//   - WithInfEdgeThreshold(t)  treat edges with weight >= t as walls (t > 0).
//
// Unreachable vertices report math.MaxInt64.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
