// SPDX-License-Identifier: MIT

// Package emit renders edge collections as named list literals for the
// external evaluator while bounding how many elements any single literal
// holds.
//
// Rule:
//
//   - |items| <= threshold: one literal "@name = [ ... ]".
//   - otherwise: chunks of chunkSize items named "@name_0", "@name_1", ...
//     followed by the binding
//     "@name = @append(@name_0, @append(@name_1, ... @name_k))",
//     i.e. a right-associated, order-preserving concatenation.
//
// chunkSize must be strictly below threshold, so a split always produces at
// least two chunks and no literal ever exceeds threshold. The chunk counter
// is local to each call.
//
// Edges renders "#E3{u,v,w}" items (8 per line by default). Adjacency renders
// one "#N{u, [#E2{v,w}, ...]}" item per source node, ascending by source,
// with the inner list wrapped at 10 arcs per line.
//
// Example:
//
//	em, err := emit.Edges("edges", g.Edges)
//	if err != nil {
//		return err
//	}
//	if em.NeedsAppend() {
//		out.WriteString(emit.AppendDefinition)
//	}
//	out.WriteString(em.Text())
package emit
