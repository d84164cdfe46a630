// SPDX-License-Identifier: MIT
// Package: pmapbench/variant
//
// schedule.go - evaluator text of the relaxation step, round and drivers.

package variant

import "github.com/katalvlaran/pmapbench/relax"

var foldDefs = [][2]string{
	{"foldl", `@foldl = λf. λacc. λlist. @foldl_go(list, f, acc)`},
	{"foldl_go", `@foldl_go = λ{
  []: λf. λacc. acc;
  <>: λh. λt. λ&f. λacc. @foldl_go(t, f, f(acc, h))
}`},
}

// repeatDefs is the fixed driver: exactly n rounds.
var repeatDefs = [][2]string{
	{"repeat", `@repeat = λf. λx. λn. @repeat_go(n, f, x)`},
	{"repeat_go", `@repeat_go = λ{
  0: λf. λx. x;
  λn. λ&f. λx. @repeat_go(n - 1, f, f(x))
}`},
}

// untilDefs is the early driver: at most n rounds, stopping after the first
// round whose #S changed count is 0.
var untilDefs = [][2]string{
	{"repeat_until", `@repeat_until = λf. λx. λn. @repeat_until_go(n, f, x)`},
	{"repeat_until_go", `@repeat_until_go = λ{
  0: λf. λx. x;
  λn. λ&f. λstate.
    @check_continue(n, f, f(state))
}`},
	{"check_continue", `@check_continue = λ&n. λ&f. λ{
  #S: λdist. λchanged.
    @check_go(changed, n, f, dist)
}`},
	{"check_go", `@check_go = λ{
  0: λn. λf. λdist. #S{dist, 0};
  λm. λn. λf. λdist. @repeat_until_go(n - 1, f, #S{dist, 1})
}`},
}

// kinds lists the map operations v's program calls.
func (v Variant) kinds() []opKind {
	if v.plainStep() {
		return []opKind{opGet, opSet}
	}
	upd := opMinUpdate
	if v.Early {
		upd = opMinUpdateFlagged
	}
	return []opKind{opGet, opGetLin, opSet, upd}
}

// relaxDefs renders the per-edge (or per-node) step. Early programs thread
// #S{dist, changed}; fixed programs thread the bare map.
func relaxDefs(v Variant, ops mapOps) [][2]string {
	if v.Adjacency {
		return relaxNodeDefs(v.Early, ops)
	}
	if v.plainStep() {
		return [][2]string{{"relax_edge", `@relax_edge = λ&dist. λ{
  #E3: λ&u. λ&v. λw.
    ! &du = ` + ops.get("u", "dist") + `;
    ! &new_d = du + w;
    ! &dv = ` + ops.get("v", "dist") + `;
    λ{0: dist; λn. ` + ops.set("v", "new_d", "dist") + `}(new_d < dv)
}`}}
	}
	get := ops.getLin("u", "dist")
	if !v.Early {
		return [][2]string{
			{"relax_edge", `@relax_edge = λdist. λ{
  #E3: λu. λv. λw.
    λ{#P: λ&du. λdist2.
      @relax_cond(du < @INF, v, du + w, dist2)
    }(` + get + `)
}`},
			{"relax_cond", `@relax_cond = λ{
  0: λv. λnew_d. λdist. dist;
  λn. λv. λnew_d. λdist. ` + ops.update("v", "new_d", "dist") + `
}`},
		}
	}
	return [][2]string{
		{"relax_edge", `@relax_edge = λ{
  #S: λdist. λ&changed. λ{
    #E3: λu. λv. λw.
      λ{#P: λ&du. λdist2.
        @relax_cond(du < @INF, v, du + w, dist2, changed)
      }(` + get + `)
  }
}`},
		{"relax_cond", `@relax_cond = λ{
  0: λv. λnew_d. λdist. λchanged. #S{dist, changed};
  λn. λv. λnew_d. λdist. λ&changed.
    λ{#P: λnew_dist. λc. #S{new_dist, changed + c}}(` + ops.update("v", "new_d", "dist") + `)
}`},
	}
}

// relaxNodeDefs reads dist[u] once per source node, then folds the node's
// outgoing arcs.
func relaxNodeDefs(early bool, ops mapOps) [][2]string {
	get := ops.getLin("u", "dist")
	if !early {
		return [][2]string{
			{"relax_node", `@relax_node = λdist. λ{
  #N: λu. λout.
    λ{#P: λ&du. λdist2.
      @relax_node_go(du < @INF, du, out, dist2)
    }(` + get + `)
}`},
			{"relax_node_go", `@relax_node_go = λ{
  0: λdu. λout. λdist. dist;
  λn. λ&du. λout. λdist. @foldl(@relax_out(du), dist, out)
}`},
			{"relax_out", `@relax_out = λ&du. λdist. λ{
  #E2: λv. λw. ` + ops.update("v", "du + w", "dist") + `
}`},
		}
	}
	return [][2]string{
		{"relax_node", `@relax_node = λ{
  #S: λdist. λ&changed. λ{
    #N: λu. λout.
      λ{#P: λ&du. λdist2.
        @relax_node_go(du < @INF, du, out, dist2, changed)
      }(` + get + `)
  }
}`},
		{"relax_node_go", `@relax_node_go = λ{
  0: λdu. λout. λdist. λchanged. #S{dist, changed};
  λn. λ&du. λout. λdist. λchanged. @foldl(@relax_out(du), #S{dist, changed}, out)
}`},
		{"relax_out", `@relax_out = λ&du. λ{
  #S: λdist. λ&changed. λ{
    #E2: λv. λw.
      λ{#P: λnew_dist. λc. #S{new_dist, changed + c}}(` + ops.update("v", "du + w", "dist") + `)
  }
}`},
	}
}

// roundDef folds the step over the round's lists. Delta-stepping chains
// light, light, heavy; in early mode the three folds share one #S so their
// changed counts add up.
func roundDef(v Variant) string {
	seed := "dist"
	if v.Early {
		seed = "#S{dist, 0}"
	}

	var body string
	switch {
	case v.Adjacency:
		body = "@foldl(@relax_node, " + seed + ", @adj)"
	case v.Algorithm == relax.DeltaStepping:
		body = "@foldl(@relax_edge, @foldl(@relax_edge, @foldl(@relax_edge, " + seed +
			", @light_edges), @light_edges), @heavy_edges)"
	default:
		body = "@foldl(@relax_edge, " + seed + ", @edges)"
	}

	if v.Early {
		return "@relax_round = λ{\n  #S: λdist. λold_changed.\n    " + body + "\n}"
	}
	return "@relax_round = λdist. " + body
}
