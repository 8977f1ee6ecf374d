package core_test

import (
	"testing"
	"time"

	"github.com/korsvik/tidemark/core"
	"github.com/korsvik/tidemark/geometry"
	"github.com/korsvik/tidemark/item"
	"github.com/korsvik/tidemark/nd"
	"github.com/korsvik/tidemark/timeidx"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func mustArray(t *testing.T, shape []int, data []float64) *nd.Array {
	t.Helper()
	a, err := nd.New(shape, data)
	require.NoError(t, err)
	return a
}

// waterLevel builds the canonical fixture: dims (time:5, x:3), hourly
// steps, values 0..14 over a 1-D grid.
func waterLevel(t *testing.T) *core.DataArray {
	t.Helper()
	da, err := core.New(
		mustArray(t, []int{5, 3}, seq(15)),
		timeidx.Equidistant(t0, time.Hour, 5),
		core.WithGeometry(geometry.NewGrid1D(0, 100, 3)),
		core.WithItem(item.NewTyped("Water Level", item.WaterLevel)),
	)
	require.NoError(t, err)
	return da
}

// meshArray builds a (time:2, element:3) fixture over three unit quads.
func meshArray(t *testing.T) *core.DataArray {
	t.Helper()
	mesh, err := geometry.NewMesh(
		[]float64{0, 1, 2, 3, 0, 1, 2, 3},
		[]float64{0, 0, 0, 0, 1, 1, 1, 1},
		nil,
		[][]int{{0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}},
		"UTM-33",
	)
	require.NoError(t, err)
	da, err := core.New(
		mustArray(t, []int{2, 3}, seq(6)),
		timeidx.Equidistant(t0, time.Hour, 2),
		core.WithGeometry(mesh),
		core.WithItem(item.NewTyped("", item.Salinity)),
	)
	require.NoError(t, err)
	return da
}

// layeredMesh builds a two-column, two-layer mesh where every element
// has its own four nodes (16 nodes total).
func layeredMesh(t *testing.T) *geometry.MeshLayered {
	t.Helper()
	m, err := geometry.NewMeshLayered(
		[]float64{0, 1, 1, 0, 0, 1, 1, 0, 1, 2, 2, 1, 1, 2, 2, 1},
		[]float64{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1},
		[]float64{-2, -2, -2, -2, 0, 0, 0, 0, -2, -2, -2, -2, 0, 0, 0, 0},
		[][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}, {12, 13, 14, 15}},
		"UTM-33",
		[]int{0, 1, 0, 1},
		[]int{0, 0, 1, 1},
	)
	require.NoError(t, err)
	return m
}

// layeredArray builds a (time:2, element:4) fixture with a matching
// (2, 16) elevation array.
func layeredArray(t *testing.T) *core.DataArray {
	t.Helper()
	zn := make([]float64, 2*16)
	for i := range zn {
		zn[i] = float64(i % 16)
	}
	da, err := core.New(
		mustArray(t, []int{2, 4}, seq(8)),
		timeidx.Equidistant(t0, time.Hour, 2),
		core.WithGeometry(layeredMesh(t)),
		core.WithElevation(mustArray(t, []int{2, 16}, zn)),
		core.WithItem(item.NewTyped("Temp", item.Temperature)),
	)
	require.NoError(t, err)
	return da
}

// grid2DArray builds a (time:2, y:3, x:4) fixture.
func grid2DArray(t *testing.T) *core.DataArray {
	t.Helper()
	da, err := core.New(
		mustArray(t, []int{2, 3, 4}, seq(24)),
		timeidx.Equidistant(t0, time.Hour, 2),
		core.WithGeometry(geometry.NewGrid2D(0, 1, 4, 0, 10, 3)),
	)
	require.NoError(t, err)
	return da
}
