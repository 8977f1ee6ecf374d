package core_test

import (
	"math"
	"testing"

	"github.com/korsvik/tidemark/core"
	"github.com/korsvik/tidemark/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAggregate_ShapeLaw verifies the rank bookkeeping for every axis
// choice.
func TestAggregate_ShapeLaw(t *testing.T) {
	da := grid2DArray(t) // dims (time, y, x)

	for _, ax := range []core.Axis{core.AxisTime, core.AxisNamed("y"), core.AxisNamed("x"), core.AxisAt(-1)} {
		out, err := da.Mean(ax)
		require.NoError(t, err)
		assert.Len(t, out.Dims(), da.NDim()-1)
	}

	out, err := da.Mean(core.AxisSpace)
	require.NoError(t, err)
	assert.Equal(t, []string{"time"}, out.Dims())
	assert.Equal(t, []int{2}, out.Shape())
}

// TestAggregate_GeometryRetention verifies that reducing time keeps the
// geometry while reducing space drops it.
func TestAggregate_GeometryRetention(t *testing.T) {
	da := waterLevel(t)

	overTime, err := da.Mean(core.AxisTime)
	require.NoError(t, err)
	assert.Equal(t, geometry.KindGrid1D, overTime.Geometry().Kind())
	assert.Equal(t, 1, overTime.NTimesteps())
	assert.Equal(t, []float64{6, 7, 8}, overTime.Values().Ravel(), "column means")

	overSpace, err := da.Mean(core.AxisSpace)
	require.NoError(t, err)
	assert.Equal(t, geometry.KindUndefined, overSpace.Geometry().Kind())
	assert.Equal(t, 5, overSpace.NTimesteps())
	assert.Equal(t, []float64{1, 4, 7, 10, 13}, overSpace.Values().Ravel(), "row means")
}

// TestAggregate_NamedReductions spot-checks the stat bindings.
func TestAggregate_NamedReductions(t *testing.T) {
	da := waterLevel(t)

	mx, err := da.Max(core.AxisTime)
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 13, 14}, mx.Values().Ravel())

	mn, err := da.Min(core.AxisTime)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, mn.Values().Ravel())

	pt, err := da.Ptp(core.AxisTime)
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 12, 12}, pt.Values().Ravel())

	sd, err := da.Std(core.AxisNamed("x"))
	require.NoError(t, err)
	for _, v := range sd.Values().Ravel() {
		assert.InDelta(t, 0.8164965809, v, 1e-9)
	}
}

// TestAggregate_NanVariants verifies NaN-ignoring reductions.
func TestAggregate_NanVariants(t *testing.T) {
	da := waterLevel(t)
	require.NoError(t, da.Values().SetAt(math.NaN(), 0, 0))

	plain, err := da.Mean(core.AxisTime)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(plain.Values().Ravel()[0]))

	nan, err := da.NanMean(core.AxisTime)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, nan.Values().Ravel()[0], 1e-12, "mean of 3,6,9,12")

	nmax, err := da.NanMax(core.AxisTime)
	require.NoError(t, err)
	assert.Equal(t, 12.0, nmax.Values().Ravel()[0])
}

// TestAggregate_Average verifies the weighted mean and its weight checks.
func TestAggregate_Average(t *testing.T) {
	da := waterLevel(t)

	out, err := da.Average([]float64{1, 0, 0}, core.AxisNamed("x"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6, 9, 12}, out.Values().Ravel(), "all weight on x=0")

	_, err = da.Average([]float64{1, 2}, core.AxisNamed("x"))
	assert.ErrorIs(t, err, core.ErrWeights)

	_, err = da.Average([]float64{0, 0, 0}, core.AxisNamed("x"))
	assert.ErrorIs(t, err, core.ErrWeights)
}

// TestAggregate_ResultName verifies the item-name override.
func TestAggregate_ResultName(t *testing.T) {
	da := waterLevel(t)
	out, err := da.Aggregate(core.AxisTime, func(v []float64) float64 { return v[0] },
		core.WithResultName("First"))
	require.NoError(t, err)
	assert.Equal(t, "First", out.Name())
}

// TestQuantile_EdgeLevels pins the q=0/q=1 equal min/max law.
func TestQuantile_EdgeLevels(t *testing.T) {
	da := waterLevel(t)

	q0, err := da.Quantile(0, core.AxisTime)
	require.NoError(t, err)
	mn, err := da.Min(core.AxisTime)
	require.NoError(t, err)
	assert.True(t, q0.ValueEquals(mn, 1e-12))

	q1, err := da.Quantile(1, core.AxisTime)
	require.NoError(t, err)
	mx, err := da.Max(core.AxisTime)
	require.NoError(t, err)
	assert.True(t, q1.ValueEquals(mx, 1e-12))

	med, err := da.Quantile(0.5, core.AxisTime)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 7, 8}, med.Values().Ravel())

	_, err = da.Quantile(1.5, core.AxisTime)
	assert.Error(t, err)
}

// TestQuantiles_Dataset verifies the multi-level form and its renaming.
func TestQuantiles_Dataset(t *testing.T) {
	da := waterLevel(t)

	ds, err := da.Quantiles([]float64{0.25, 0.75}, core.AxisTime)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"Quantile 0.25, Water Level", "Quantile 0.75, Water Level"}, ds.Names())
	assert.Equal(t, []float64{3, 4, 5}, ds.At(0).Values().Ravel())
	assert.Equal(t, []float64{9, 10, 11}, ds.At(1).Values().Ravel())
}
