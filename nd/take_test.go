package nd_test

import (
	"testing"

	"github.com/korsvik/tidemark/nd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTake_PreservesAxis checks subsetting, reordering and repetition.
func TestTake_PreservesAxis(t *testing.T) {
	a, err := nd.New([]int{2, 3}, []float64{0, 1, 2, 10, 11, 12})
	require.NoError(t, err)

	sub, err := a.Take(1, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, sub.Shape())
	assert.Equal(t, []float64{2, 0, 12, 10}, sub.Ravel())

	rep, err := a.Take(0, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 11, 12, 10, 11, 12}, rep.Ravel())
}

// TestTake_RoundTripPermutation verifies that applying a permutation and
// then its inverse restores the original ordering.
func TestTake_RoundTripPermutation(t *testing.T) {
	a, err := nd.New([]int{4}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	perm := []int{2, 0, 3, 1}
	inv := []int{1, 3, 0, 2}

	shuffled, err := a.Take(0, perm)
	require.NoError(t, err)
	restored, err := shuffled.Take(0, inv)
	require.NoError(t, err)
	assert.Equal(t, a.Ravel(), restored.Ravel())
}

// TestTakeAt_CollapsesAxis checks the axis-collapsing single-index form.
func TestTakeAt_CollapsesAxis(t *testing.T) {
	a, err := nd.New([]int{2, 3}, []float64{0, 1, 2, 10, 11, 12})
	require.NoError(t, err)

	row, err := a.TakeAt(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, row.Shape())
	assert.Equal(t, []float64{10, 11, 12}, row.Ravel())

	col, err := a.TakeAt(1, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, col.Shape())
	assert.Equal(t, []float64{2, 12}, col.Ravel())

	// collapsing the only axis keeps a length-1 vector
	scalar, err := row.TakeAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, scalar.Shape())
}

// TestSqueeze_DropsSingletons verifies singleton removal.
func TestSqueeze_DropsSingletons(t *testing.T) {
	a, err := nd.New([]int{1, 3, 1}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, a.Squeeze().Shape())

	s, err := nd.New([]int{1, 1}, []float64{7})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, s.Squeeze().Shape(), "fully singleton array keeps one axis")
}

// TestFlip_ReversesAxis checks axis reversal and double-flip identity.
func TestFlip_ReversesAxis(t *testing.T) {
	a, err := nd.New([]int{2, 3}, []float64{0, 1, 2, 10, 11, 12})
	require.NoError(t, err)

	f, err := a.Flip(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 0, 12, 11, 10}, f.Ravel())

	ff, err := f.Flip(1)
	require.NoError(t, err)
	assert.Equal(t, a.Ravel(), ff.Ravel())

	_, err = a.Flip(5)
	assert.ErrorIs(t, err, nd.ErrAxis)
}
