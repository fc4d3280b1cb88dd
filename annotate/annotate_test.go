package annotate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trackswitch/annotate"
	"github.com/katalvlaran/trackswitch/builder"
	"github.com/katalvlaran/trackswitch/search"
	"github.com/katalvlaran/trackswitch/track"
)

func mustBuild(t *testing.T, sys track.System) *track.Network {
	t.Helper()
	nw, err := track.Build(sys)
	require.NoError(t, err)

	return nw
}

// diamond is 1 → {2,3} → 4 → 5 where 1 rests on 2 and 4 rests toward 3.
func diamond(t *testing.T) *track.Network {
	return mustBuild(t, track.System{Switches: []track.Declaration{
		{Default: 2, Targets: []int{2, 3}},
		{Default: 4, Targets: []int{4}},
		{Default: 4, Targets: []int{4}},
		{Default: 3, Targets: []int{5}},
		{Default: 4},
	}})
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "7", annotate.Token{Switch: 7}.String())
	assert.Equal(t, "(3)7", annotate.Token{Switch: 7, Before: 3}.String())
	assert.Equal(t, "7(12)", annotate.Token{Switch: 7, After: 12}.String())
	assert.False(t, annotate.Token{Switch: 7}.Thrown())
	assert.True(t, annotate.Token{Switch: 7, After: 1}.Thrown())
}

func TestAnnotate_SingleSwitch(t *testing.T) {
	nw := mustBuild(t, track.System{Switches: []track.Declaration{{}}})
	tokens, err := annotate.Annotate(nw, []int{1})
	require.NoError(t, err)
	assert.Equal(t, "1", annotate.Format(tokens))
	assert.Zero(t, annotate.Throws(tokens))
}

func TestAnnotate_ForkOnRestPosition(t *testing.T) {
	nw := mustBuild(t, track.System{Switches: []track.Declaration{
		{Default: 2, Targets: []int{2, 3}},
		{},
		{},
	}})

	tokens, err := annotate.Annotate(nw, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "1 2", annotate.Format(tokens))

	tokens, err = annotate.Annotate(nw, []int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, "1(3) 3", annotate.Format(tokens))
	assert.Equal(t, 1, annotate.Throws(tokens))
}

func TestAnnotate_ForkWithoutRestPosition(t *testing.T) {
	nw := mustBuild(t, track.System{Switches: []track.Declaration{
		{Targets: []int{2, 3}},
		{},
		{},
	}})

	tokens, err := annotate.Annotate(nw, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "1(2) 2", annotate.Format(tokens))
	assert.Equal(t, 1, annotate.Throws(tokens))
}

func TestAnnotate_Diamond(t *testing.T) {
	nw := diamond(t)

	tokens, err := annotate.Annotate(nw, []int{1, 2, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []annotate.Token{
		{Switch: 1},
		{Switch: 2},
		{Switch: 4, Before: 2},
		{Switch: 5},
	}, tokens)
	assert.Equal(t, "1 2 (2)4 5", annotate.Format(tokens))

	tokens, err = annotate.Annotate(nw, []int{1, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, "1(3) 3 4 5", annotate.Format(tokens))
}

func TestAnnotate_Errors(t *testing.T) {
	nw := diamond(t)

	_, err := annotate.Annotate(nil, []int{1})
	assert.ErrorIs(t, err, annotate.ErrNilNetwork)

	_, err = annotate.Annotate(nw, nil)
	assert.ErrorIs(t, err, annotate.ErrEmptyPath)

	_, err = annotate.Annotate(nw, []int{1, 4, 5})
	assert.ErrorIs(t, err, annotate.ErrBrokenPath)

	_, err = annotate.Annotate(nw, []int{1, 2, 4})
	assert.ErrorIs(t, err, annotate.ErrNotExit)
}

func TestAnnotate_MarksMatchSearch(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		sys, err := builder.RandomSystem(3+int(seed%15), builder.WithSeed(seed))
		require.NoError(t, err)
		nw := mustBuild(t, sys)

		res, err := search.Solve(nw, nw.Entry())
		require.NoError(t, err, "seed %d", seed)

		tokens, err := annotate.Annotate(nw, res.Path)
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, tokens, len(res.Path), "every switch printed once (seed %d)", seed)
		for i, tok := range tokens {
			require.Equal(t, res.Path[i], tok.Switch)
			require.False(t, tok.Before != 0 && tok.After != 0, "seed %d token %v", seed, tok)
		}
		require.Equal(t, res.Throws, annotate.Throws(tokens), "seed %d", seed)
	}
}
