package nd_test

import (
	"math"
	"testing"

	"github.com/korsvik/tidemark/nd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(values []float64) float64 {
	s := 0.0
	for _, v := range values {
		s += v
	}
	return s
}

// TestReduce_SingleAxis verifies aggregation along each axis of a 2-D array.
func TestReduce_SingleAxis(t *testing.T) {
	a, err := nd.New([]int{2, 3}, []float64{0, 1, 2, 10, 11, 12})
	require.NoError(t, err)

	rows, err := a.Reduce([]int{0}, sum)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, rows.Shape())
	assert.Equal(t, []float64{10, 12, 14}, rows.Ravel())

	cols, err := a.Reduce([]int{1}, sum)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, cols.Shape())
	assert.Equal(t, []float64{3, 33}, cols.Ravel())
}

// TestReduce_MultiAxis verifies the axis-tuple form and the shape law
// len(result shape) == len(shape) - len(axes).
func TestReduce_MultiAxis(t *testing.T) {
	a, err := nd.New([]int{2, 2, 2}, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	r, err := a.Reduce([]int{1, 2}, sum)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, r.Shape())
	assert.Equal(t, []float64{10, 26}, r.Ravel())

	all, err := a.Reduce([]int{0, 1, 2}, sum)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, all.Shape(), "reducing every axis keeps a length-1 vector")
	assert.Equal(t, []float64{36}, all.Ravel())
}

// TestReduce_BadAxes checks axis validation.
func TestReduce_BadAxes(t *testing.T) {
	a, _ := nd.New([]int{2, 2}, []float64{1, 2, 3, 4})

	_, err := a.Reduce(nil, sum)
	assert.ErrorIs(t, err, nd.ErrAxis)

	_, err = a.Reduce([]int{0, 0}, sum)
	assert.ErrorIs(t, err, nd.ErrAxis, "duplicate axes must error")

	_, err = a.Reduce([]int{3}, sum)
	assert.ErrorIs(t, err, nd.ErrAxis)
}

// TestQuantile_BoundsEqualMinMax verifies the q=0 / q=1 law and the
// median of an even-length input.
func TestQuantile_BoundsEqualMinMax(t *testing.T) {
	values := []float64{7, 1, 3, 9, 5}

	lo, err := nd.Quantile(values, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, lo)

	hi, err := nd.Quantile(values, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, hi)

	med, err := nd.Quantile([]float64{1, 2, 3, 4}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, med, 1e-12, "linear interpolation between ranks")

	_, err = nd.Quantile(values, 1.5)
	assert.ErrorIs(t, err, nd.ErrQuantile)
}

// TestQuantile_NaNPropagation checks that NaN inputs poison the result
// and that DropNaN restores the NaN-ignoring behaviour.
func TestQuantile_NaNPropagation(t *testing.T) {
	values := []float64{1, math.NaN(), 3}

	q, err := nd.Quantile(values, 0.5)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(q))

	q, err = nd.Quantile(nd.DropNaN(values), 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2.0, q)
}
