package core_test

import (
	"testing"
	"time"

	"github.com/korsvik/tidemark/core"
	"github.com/korsvik/tidemark/geometry"
	"github.com/korsvik/tidemark/nd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGet_SingleTimePosition verifies that arr.Get(2) collapses the time
// axis when one step remains.
func TestGet_SingleTimePosition(t *testing.T) {
	da := waterLevel(t)

	out, err := da.Get(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, out.Dims())
	assert.Equal(t, 1, out.NTimesteps())
	assert.Equal(t, []float64{6, 7, 8}, out.Values().Ravel())
}

// TestGet_PerAxisTuple verifies mixed per-axis keys.
func TestGet_PerAxisTuple(t *testing.T) {
	da := waterLevel(t)

	out, err := da.Get(core.Span{Start: 1, Stop: 4}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"time"}, out.Dims())
	assert.Equal(t, []float64{3, 6, 9}, out.Values().Ravel())

	out, err = da.Get(nil, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2}, out.Shape(), "nil keeps the whole axis")

	_, err = da.Get(0, "2018-01-01")
	assert.Error(t, err, "time labels on a spatial axis are rejected")
}

// TestGet_FancyTimeTuple verifies the long-increasing-int heuristic.
func TestGet_FancyTimeTuple(t *testing.T) {
	da := waterLevel(t)

	out, err := da.Get(0, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, out.Shape())
	assert.Equal(t, []float64{0, 1, 2, 6, 7, 8, 9, 10, 11}, out.Values().Ravel())
}

// TestGet_TimeLabels verifies label keys on the time axis.
func TestGet_TimeLabels(t *testing.T) {
	da := waterLevel(t)

	out, err := da.Get("2018-01-01 03")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, out.Dims())
	assert.Equal(t, []float64{9, 10, 11}, out.Values().Ravel())

	out, err = da.Get(t0, t0.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out.Shape())
}

// TestWhere_MaskSelection is the arr[arr > 5] scenario: a flat 1-D result
// holding exactly the matching values in row-major order.
func TestWhere_MaskSelection(t *testing.T) {
	da := waterLevel(t)

	mask, err := da.Greater(5)
	require.NoError(t, err)
	out, err := da.Get(mask)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, out.Dims())
	assert.Equal(t, geometry.KindUndefined, out.Geometry().Kind())
	assert.Equal(t, []float64{6, 7, 8, 9, 10, 11, 12, 13, 14}, out.Values().Ravel())

	none, err := da.Greater(100.0)
	require.NoError(t, err)
	empty, err := da.Where(none)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

// TestWhere_NilMask verifies that a nil mask is rejected like any other
// invalid mask instead of panicking.
func TestWhere_NilMask(t *testing.T) {
	da := waterLevel(t)

	_, err := da.Where(nil)
	assert.ErrorIs(t, err, nd.ErrMask)
	assert.ErrorIs(t, da.SetWhere(nil, 0), nd.ErrMask)
	assert.ErrorIs(t, da.SetWhereValues(nil, []float64{1}), nd.ErrMask)
}

// TestSetWhere verifies in-place mask assignment.
func TestSetWhere(t *testing.T) {
	da := waterLevel(t)
	mask, err := da.Less(3)
	require.NoError(t, err)

	require.NoError(t, da.SetWhere(mask, -1))
	assert.Equal(t, []float64{-1, -1, -1, 3, 4}, da.Values().Ravel()[:5])

	mask2, err := da.Eq(-1)
	require.NoError(t, err)
	require.NoError(t, da.SetWhereValues(mask2, []float64{10, 11, 12}))
	assert.Equal(t, []float64{10, 11, 12, 3, 4}, da.Values().Ravel()[:5])
}

// TestReplaceDeleteValues verifies the delete-sentinel swap.
func TestReplaceDeleteValues(t *testing.T) {
	da, err := core.New(
		mustArray(t, []int{3}, []float64{1, core.DeleteValue, 2}),
		nil,
	)
	require.NoError(t, err)
	da.ReplaceDeleteValues()

	v := da.Values().Ravel()
	assert.Equal(t, 1.0, v[0])
	assert.True(t, v[1] != v[1], "delete value becomes NaN")
	assert.Equal(t, 2.0, v[2])
}
