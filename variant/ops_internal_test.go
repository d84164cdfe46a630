package variant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pmapbench/graphgen"
	"github.com/katalvlaran/pmapbench/oracle"
	"github.com/katalvlaran/pmapbench/pmap"
)

func TestTrieSyntax_BinarySetDispatch(t *testing.T) {
	s, ok := syntaxFor(pmap.Binary)
	require.True(t, ok)

	want := "@btrie_set_B = λ{\n" +
		"  0: λnext. λval. λnd. λc0. λc1.\n" +
		"    #B{@btrie_set(next, val, nd, c0), c1};\n" +
		"  λn. λnext. λval. λnd. λc0. λc1.\n" +
		"    #B{c0, @btrie_set(next, val, nd, c1)}\n" +
		"}"
	assert.Equal(t, want, s.dispatchDef(opSet, 0, false))

	wantEmpty := "@btrie_muf_BE = λ{\n" +
		"  0: λnext. λval. λnd.\n" +
		"    λ{#P: λnew. λc. #P{#B{new, #BE{}}, c}}(@btrie_min_update_f(next, val, nd, #BE{}));\n" +
		"  λn. λnext. λval. λnd.\n" +
		"    λ{#P: λnew. λc. #P{#B{#BE{}, new}, c}}(@btrie_min_update_f(next, val, nd, #BE{}))\n" +
		"}"
	assert.Equal(t, wantEmpty, s.dispatchDef(opMinUpdateFlagged, 0, true))
}

func TestTrieSyntax_GetEntry(t *testing.T) {
	s, _ := syntaxFor(pmap.Radix4)
	want := "@q4_get = λ&key. λ&depth. λ{\n" +
		"  #QE: @INF;\n" +
		"  #QL: λval. val;\n" +
		"  #Q: λc0. λc1. λc2. λc3.\n" +
		"    ! slot = key % 4;\n" +
		"    ! next = key / 4;\n" +
		"    ! nd = depth - 1;\n" +
		"    @q4_get_Q(slot, next, nd, c0, c1, c2, c3)\n" +
		"}"
	assert.Equal(t, want, s.entryDef(opGet))
}

func TestTrieSyntax_Radix32Layers(t *testing.T) {
	s, _ := syntaxFor(pmap.Radix32)
	assert.Equal(t, []string{"slot / 16", "slot % 16"}, s.digits())

	var names []string
	for _, d := range s.definitions(opSet) {
		names = append(names, d[0])
	}
	assert.Equal(t, []string{
		"trie32_set", "trie32_set_H32", "trie32_set_H32E",
		"trie32_set_h", "trie32_set_H", "trie32_set_HE",
	}, names)

	// The first layer descends into a half with the remaining digit.
	assert.Equal(t, "@trie32_get_h(s1, next, nd, c1)", s.descend(opGet, 0, "c1"))
	assert.Equal(t, "@trie32_get(next, nd, c1)", s.descend(opGet, 1, "c1"))
}

func defNames(ops mapOps) []string {
	var names []string
	for _, d := range ops.defs {
		names = append(names, d[0])
	}
	return names
}

func TestOpsFor_AssocList(t *testing.T) {
	ops := opsFor(pmap.AssocList, opGet, opGetLin, opSet, opMinUpdateFlagged)
	assert.Equal(t, []string{"assoc_get", "assoc_get_lin", "assoc_has", "assoc_put", "assoc_set", "assoc_min_update_f"}, defNames(ops))
	assert.Equal(t, "@assoc_min_update_f(v, d, m)", ops.update("v", "d", "m"))
	assert.Equal(t, "[]", ops.empty)

	// Set alone still pulls in its has/put helpers.
	ops = opsFor(pmap.AssocList, opGet, opSet)
	assert.Equal(t, []string{"assoc_get", "assoc_has", "assoc_put", "assoc_set"}, defNames(ops))

	ops = opsFor(pmap.AssocList, opMinUpdate)
	assert.Equal(t, []string{"assoc_get", "assoc_has", "assoc_put", "assoc_set", "assoc_min_update"}, defNames(ops))
}

func TestVariant_Kinds(t *testing.T) {
	for _, tc := range []struct {
		v    Variant
		want []opKind
	}{
		{Variant{Representation: pmap.Radix16}, []opKind{opGet, opSet}},
		{Variant{Representation: pmap.Radix32}, []opKind{opGet, opSet}},
		{Variant{Representation: pmap.AssocList}, []opKind{opGet, opSet}},
		{Variant{Representation: pmap.Binary}, []opKind{opGet, opGetLin, opSet, opMinUpdate}},
		{Variant{Representation: pmap.Radix16, Early: true}, []opKind{opGet, opGetLin, opSet, opMinUpdateFlagged}},
		{Variant{Representation: pmap.Radix16, Adjacency: true}, []opKind{opGet, opGetLin, opSet, opMinUpdate}},
	} {
		assert.Equal(t, tc.want, tc.v.kinds(), "%+v", tc.v)
		assert.Equal(t, len(tc.want) == 2, tc.v.Schedule().GetSet, "%+v", tc.v)
	}
}

func TestReplay_Mismatch(t *testing.T) {
	g, err := graphgen.Generate(5, 4, 47)
	require.NoError(t, err)
	wrong := &oracle.Result{Dist: []int64{0, 9, 9, 8, 11}}

	err = replay(g, Variant{Representation: pmap.Radix16}, wrong)
	assert.True(t, errors.Is(err, ErrOracleMismatch))
}

func TestProgram_DuplicateAndUnbound(t *testing.T) {
	p := &Program{N: 5}
	p.bindings = newBindings()
	require.NoError(t, p.add("main", "@main = @result"))
	assert.True(t, errors.Is(p.add("main", "@main = 0"), ErrDuplicateBinding))
	assert.True(t, errors.Is(p.checkReferences(), ErrUnboundReference))

	require.NoError(t, p.add("result", "@result = 1"))
	assert.NoError(t, p.checkReferences())
}
