package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/bufsafe/internal/model"
)

const propertySeeds = 500

func assembleSeed(t *testing.T, seed int64, opts Options) assembly {
	t.Helper()

	g, ok := NewGenerator(NewRand(seed), opts).(*generator)
	require.True(t, ok)

	a, err := g.assemble()
	require.NoError(t, err, "seed %d", seed)

	return a
}

func TestGenerator_RegionIsExactlyTheGuard(t *testing.T) {
	for _, includeWrite := range []bool{true, false} {
		opts := DefaultOptions()
		opts.IncludeCondWrite = includeWrite

		want := CondGuardLines()
		if includeWrite {
			want = append(want, condBufwriteLine)
		}

		for seed := range int64(propertySeeds) {
			a := assembleSeed(t, seed, opts)
			lines := a.draft.Lines()

			require.Equal(t, want, lines[a.region.Start:a.region.End], "seed %d include=%v", seed, includeWrite)

			for i, line := range lines {
				if !a.region.Contains(i) {
					assert.NotContains(t, want, line, "seed %d: guard line %d outside region", seed, i)
				}
			}
		}
	}
}

func TestGenerator_SetupPrecedesUse(t *testing.T) {
	for seed := range int64(propertySeeds) {
		a := assembleSeed(t, seed, DefaultOptions())
		lines := a.draft.Lines()

		for _, pair := range condDeclInitPairs {
			decl := indexOf(lines, pair.Decl)
			require.GreaterOrEqual(t, decl, 0)
			assert.Less(t, decl, a.region.Start, "seed %d: %q after guard", seed, pair.Decl)

			if pair.HasInit() {
				init := indexOf(lines, pair.Init)
				assert.Less(t, decl, init, "seed %d", seed)
				assert.Less(t, init, a.region.Start, "seed %d", seed)
			}
		}

		for _, decoy := range a.decoys {
			bufDecl := indexOf(lines, decoy.bufDecl().Text)
			idxDecl := indexOf(lines, decoy.idxDecl().Text)
			idxInit := indexOf(lines, decoy.idxInit().Text)
			write := indexOf(lines, decoy.write().Text)

			require.True(t, bufDecl >= 0 && idxDecl >= 0 && idxInit >= 0 && write >= 0, "seed %d: decoy %s incomplete", seed, decoy.BufVar)
			assert.Less(t, idxDecl, idxInit, "seed %d", seed)
			assert.Less(t, bufDecl, write, "seed %d", seed)
			assert.Less(t, idxInit, write, "seed %d", seed)
		}
	}
}

func TestGenerator_TagsMatchSemantics(t *testing.T) {
	for seed := range int64(propertySeeds) {
		a := assembleSeed(t, seed, DefaultOptions())
		lines := a.draft.Lines()
		tags := a.draft.Tags()

		require.Len(t, tags, len(lines))
		assert.Equal(t, m.CondTag(a.sample.Safe()), tags[a.region.End-1], "seed %d", seed)

		writes := 0

		for _, decoy := range a.decoys {
			i := indexOf(lines, decoy.write().Text)
			assert.Equal(t, m.TautTag(decoy.Idx < decoy.Len), tags[i], "seed %d: %s", seed, lines[i])
		}

		for _, tag := range tags {
			if tag.IsBufwrite() {
				writes++
			}
		}

		assert.Equal(t, 1+len(a.decoys), writes, "seed %d", seed)
		assert.LessOrEqual(t, len(a.decoys), DefaultOptions().MaxDecoys)
	}
}

func TestGenerator_TautOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeCondWrite = false

	for seed := range int64(propertySeeds) {
		a := assembleSeed(t, seed, opts)

		assert.GreaterOrEqual(t, len(a.decoys), 1, "seed %d", seed)
		assert.Equal(t, len(condGuardLines), a.region.Len())

		for _, tag := range a.draft.Tags() {
			assert.NotEqual(t, m.TagBufwriteCondSafe, tag)
			assert.NotEqual(t, m.TagBufwriteCondUnsafe, tag)
		}
	}
}

func TestGenerator_Generate_RenderedShape(t *testing.T) {
	gen := NewGenerator(NewRand(42), DefaultOptions())

	for range 50 {
		inst, err := gen.Generate()
		require.NoError(t, err)

		lines := strings.Split(inst.Text, "\n")
		require.Len(t, lines, len(inst.Tags))
		assert.Empty(t, inst.Name)
		assert.NotContains(t, inst.Text, "$")

		assert.Equal(t, []m.Tag{m.TagOther, m.TagOther, m.TagOther}, inst.Tags[:3])
		assert.Equal(t, []m.Tag{m.TagBody, m.TagOther}, inst.Tags[len(inst.Tags)-2:])
		assert.True(t, strings.HasPrefix(lines[0], "#include <stdlib.h>"))
		assert.True(t, strings.HasPrefix(lines[len(lines)-2], "    return 0;"))

		for i, line := range lines {
			assert.True(t, strings.HasSuffix(line, "// "+inst.Tags[i].String()), "line %d: %q", i, line)
		}
	}
}

func TestGenerator_Generate_NoComments(t *testing.T) {
	opts := DefaultOptions()
	opts.Annotate = false

	inst, err := NewGenerator(NewRand(3), opts).Generate()
	require.NoError(t, err)

	assert.NotContains(t, inst.Text, "//")
	assert.Len(t, strings.Split(inst.Text, "\n"), len(inst.Tags))
}

func TestGenerator_Deterministic(t *testing.T) {
	draw := func(seed int64) []m.Instance {
		gen := NewGenerator(NewRand(seed), DefaultOptions())
		out := make([]m.Instance, 10)

		for i := range out {
			inst, err := gen.Generate()
			require.NoError(t, err)

			out[i] = inst
		}

		return out
	}

	if diff := cmp.Diff(draw(7), draw(7)); diff != "" {
		t.Errorf("same seed produced different instances (-first +second):\n%s", diff)
	}

	assert.NotEqual(t, draw(7), draw(8))
}

func TestGenerator_PoolExhausted(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeCondWrite = false
	opts.PoolSize = reservedNames + 1

	_, err := NewGenerator(NewRand(1), opts).Generate()

	require.ErrorIs(t, err, ErrPoolExhausted)
}
