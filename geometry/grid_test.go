package geometry_test

import (
	"testing"

	"github.com/korsvik/tidemark/geometry"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrid1D_IselAndCollapse verifies subsetting and singleton collapse.
func TestGrid1D_IselAndCollapse(t *testing.T) {
	g := geometry.NewGrid1D(0, 100, 5)
	assert.Equal(t, 5, g.NX())
	assert.Equal(t, 100.0, g.DX())

	sub, err := g.Isel([]int{1, 2, 3}, 0)
	require.NoError(t, err)
	g1, ok := sub.(*geometry.Grid1D)
	require.True(t, ok)
	assert.Equal(t, []float64{100, 200, 300}, g1.X())

	point, err := g.Isel([]int{2}, 0)
	require.NoError(t, err)
	assert.Equal(t, geometry.KindUndefined, point.Kind(), "single grid point has no geometry")

	_, err = g.Isel([]int{9}, 0)
	assert.ErrorIs(t, err, geometry.ErrIndex)
}

// TestGrid1D_FindIndexNearest verifies nearest-point and area lookup.
func TestGrid1D_FindIndexNearest(t *testing.T) {
	g := geometry.NewGrid1D(0, 100, 5)

	x := 130.0
	res, err := g.FindIndex(geometry.Query{X: &x})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Indices)

	bound := orb.Bound{Min: orb.Point{150, 0}, Max: orb.Point{420, 0}}
	res, err = g.FindIndex(geometry.Query{Area: &bound})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, res.Indices)

	_, err = g.FindIndex(geometry.Query{})
	assert.ErrorIs(t, err, geometry.ErrQuery)
}

// TestGrid1D_Interpolant verifies the linear stencil including clamping.
func TestGrid1D_Interpolant(t *testing.T) {
	g := geometry.NewGrid1D(0, 100, 3)

	idx, w, err := g.Interpolant(150, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, idx)
	assert.InDelta(t, 0.5, w[1], 1e-12)

	idx, w, err = g.Interpolant(-50, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []float64{1, 0}, w, "out-of-grid positions clamp to the edge")
}

// TestGrid2D_IselCollapsesToGrid1D verifies axis handling and collapse.
func TestGrid2D_IselCollapsesToGrid1D(t *testing.T) {
	g := geometry.NewGrid2D(0, 1, 4, 0, 10, 3) // nx=4, ny=3

	sub, err := g.Isel([]int{0, 1}, 0) // subset y
	require.NoError(t, err)
	g2 := sub.(*geometry.Grid2D)
	assert.Equal(t, 2, g2.NY())
	assert.Equal(t, 4, g2.NX())

	row, err := g.Isel([]int{1}, 0) // collapse y
	require.NoError(t, err)
	g1 := row.(*geometry.Grid1D)
	assert.Equal(t, "x", g1.AxisName())
	assert.Equal(t, 4, g1.NX())

	col, err := g.Isel([]int{2}, 1) // collapse x
	require.NoError(t, err)
	gy := col.(*geometry.Grid1D)
	assert.Equal(t, "y", gy.AxisName())
	assert.Equal(t, 3, gy.NX())

	_, err = g.Isel([]int{0}, 2)
	assert.ErrorIs(t, err, geometry.ErrAxis)
}

// TestGrid2D_FindIndexPair verifies the paired row/column result.
func TestGrid2D_FindIndexPair(t *testing.T) {
	g := geometry.NewGrid2D(0, 1, 4, 0, 10, 3)

	x, y := 2.2, 11.0
	res, err := g.FindIndex(geometry.Query{X: &x, Y: &y})
	require.NoError(t, err)
	require.True(t, res.Paired)
	assert.Equal(t, []int{1}, res.Rows)
	assert.Equal(t, []int{2}, res.Cols)

	bound := orb.Bound{Min: orb.Point{0.5, -1}, Max: orb.Point{3.5, 15}}
	res, err = g.FindIndex(geometry.Query{Area: &bound})
	require.NoError(t, err)
	require.True(t, res.Paired)
	assert.Equal(t, []int{0, 1}, res.Rows)
	assert.Equal(t, []int{1, 2, 3}, res.Cols)
	assert.True(t, res.RowsConstrained)
	assert.True(t, res.ColsConstrained)

	// an area query constrains both sides even when one has no hits
	empty := orb.Bound{Min: orb.Point{0.5, 100}, Max: orb.Point{3.5, 200}}
	res, err = g.FindIndex(geometry.Query{Area: &empty})
	require.NoError(t, err)
	assert.True(t, res.RowsConstrained)
	assert.Empty(t, res.Rows)

	// a single-coordinate query leaves the other axis unconstrained
	res, err = g.FindIndex(geometry.Query{X: &x})
	require.NoError(t, err)
	assert.True(t, res.ColsConstrained)
	assert.False(t, res.RowsConstrained)
	assert.Equal(t, []int{2}, res.Cols)
}

// TestGrid3D_IselAndNoLabels verifies 3-D subsetting and the label
// selection gap.
func TestGrid3D_IselAndNoLabels(t *testing.T) {
	g := geometry.NewGrid3DFromCoords(
		[]float64{0, 1, 2},   // x
		[]float64{10, 20},    // y
		[]float64{-5, -1, 0}, // z
	)
	assert.Equal(t, 3, g.NZ())

	layer, err := g.Isel([]int{2}, 0) // collapse z
	require.NoError(t, err)
	g2 := layer.(*geometry.Grid2D)
	assert.Equal(t, 2, g2.NY())
	assert.Equal(t, 3, g2.NX())
	yn, xn := g2.AxisNames()
	assert.Equal(t, "y", yn)
	assert.Equal(t, "x", xn)

	sub, err := g.Isel([]int{0, 1}, 2) // subset x
	require.NoError(t, err)
	assert.Equal(t, geometry.KindGrid3D, sub.Kind())

	// collapsing y or x keeps the z axis named z in the result
	slice, err := g.Isel([]int{0}, 1)
	require.NoError(t, err)
	zx := slice.(*geometry.Grid2D)
	yn, xn = zx.AxisNames()
	assert.Equal(t, "z", yn)
	assert.Equal(t, "x", xn)
	assert.Equal(t, []float64{-5, -1, 0}, zx.Y())
	assert.Equal(t, []string{"z", "x"}, geometry.TrailingDims(zx, 2))

	slice, err = g.Isel([]int{1}, 2)
	require.NoError(t, err)
	zy := slice.(*geometry.Grid2D)
	yn, xn = zy.AxisNames()
	assert.Equal(t, "z", yn)
	assert.Equal(t, "y", xn)
	assert.Equal(t, []float64{10, 20}, zy.X())

	// a further collapse names the surviving 1-D axis correctly
	line, err := zy.Isel([]int{0}, 0)
	require.NoError(t, err)
	assert.Equal(t, "y", line.(*geometry.Grid1D).AxisName())

	_, err = g.FindIndex(geometry.Query{})
	assert.ErrorIs(t, err, geometry.ErrNotImplemented)
}

// TestTrailingDims covers the canonical dimension names per variant.
func TestTrailingDims(t *testing.T) {
	mesh := newTestMesh(t)

	cases := []struct {
		name string
		g    geometry.Geometry
		rank int
		want []string
	}{
		{"grid1d", geometry.NewGrid1D(0, 1, 3), 1, []string{"x"}},
		{"grid2d", geometry.NewGrid2D(0, 1, 3, 0, 1, 2), 2, []string{"y", "x"}},
		{"grid3d", geometry.NewGrid3DFromCoords([]float64{0}, []float64{0}, []float64{0}), 3, []string{"z", "y", "x"}},
		{"mesh", mesh, 1, []string{"element"}},
		{"spectrum rank1", geometry.NewPointSpectrum([]float64{0.1}, nil, nil, nil), 1, []string{"frequency"}},
		{"spectrum rank2", geometry.NewPointSpectrum([]float64{0.1}, []float64{0}, nil, nil), 2, []string{"frequency", "direction"}},
		{"undefined rank2", geometry.Undefined{}, 2, []string{"y", "x"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, geometry.TrailingDims(tc.g, tc.rank), tc.name)
	}
}

// TestCheckShape verifies geometry/shape cross-checking with time offset.
func TestCheckShape(t *testing.T) {
	g := geometry.NewGrid2D(0, 1, 4, 0, 1, 3)

	assert.NoError(t, geometry.CheckShape(g, []int{3, 4}, 0))
	assert.NoError(t, geometry.CheckShape(g, []int{10, 3, 4}, 1), "offset 1 skips the time axis")
	assert.ErrorIs(t, geometry.CheckShape(g, []int{4, 3}, 0), geometry.ErrShapeMismatch)

	mesh := newTestMesh(t)
	assert.NoError(t, geometry.CheckShape(mesh, []int{2, mesh.NElements()}, 1))
	assert.ErrorIs(t, geometry.CheckShape(mesh, []int{2, 99}, 1), geometry.ErrShapeMismatch)
}
