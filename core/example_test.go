// Package core_test provides runnable examples for the DataArray API.
// Each example runs via "go test -run Example", showing both code and
// expected output.
package core_test

import (
	"fmt"
	"time"

	"github.com/korsvik/tidemark/core"
	"github.com/korsvik/tidemark/geometry"
	"github.com/korsvik/tidemark/item"
	"github.com/korsvik/tidemark/nd"
	"github.com/korsvik/tidemark/timeidx"
)

// exampleArray builds a (time:3, x:2) water-level field on a 1-D grid.
func exampleArray() *core.DataArray {
	values, _ := nd.New([]int{3, 2}, []float64{0, 1, 2, 3, 4, 5})
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	da, _ := core.New(values, timeidx.Equidistant(start, time.Hour, 3),
		core.WithGeometry(geometry.NewGrid1D(0, 100, 2)),
		core.WithItem(item.NewTyped("", item.WaterLevel)),
	)
	return da
}

// ExampleNew demonstrates wrapping a buffer with a time axis and a grid.
func ExampleNew() {
	// 1) A (time:3, x:2) buffer: six hourly water-level readings.
	values, _ := nd.New([]int{3, 2}, []float64{0, 1, 2, 3, 4, 5})

	// 2) Three hourly steps starting at midnight.
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	idx := timeidx.Equidistant(start, time.Hour, 3)

	// 3) Construct; dims are guessed as (time, x) from the grid.
	da, _ := core.New(values, idx,
		core.WithGeometry(geometry.NewGrid1D(0, 100, 2)),
		core.WithItem(item.NewTyped("", item.WaterLevel)),
	)

	fmt.Println(da.Dims())
	fmt.Println(da.Name())
	// Output:
	// [time x]
	// Water Level
}

// ExampleDataArray_Isel demonstrates positional selection and the
// collapse rule: At removes the axis, List keeps it.
func ExampleDataArray_Isel() {
	da := exampleArray()

	// A single timestep, axis collapsed.
	step, _ := da.Isel(core.AxisTime, core.At(1))
	fmt.Println(step.Dims(), step.Values().Ravel())

	// The same timestep kept as a length-one axis.
	kept, _ := da.Isel(core.AxisTime, core.List(1))
	fmt.Println(kept.Dims(), kept.Shape())
	// Output:
	// [x] [2 3]
	// [time x] [1 2]
}

// ExampleDataArray_Mean demonstrates an axis-aware reduction: reducing
// time keeps the geometry, so the result is still a field on the grid.
func ExampleDataArray_Mean() {
	da := exampleArray()

	mean, _ := da.Mean(core.AxisTime)
	fmt.Println(mean.Dims(), mean.Values().Ravel())
	fmt.Println(mean.Geometry().Kind())
	// Output:
	// [x] [2 3]
	// Grid1D
}

// ExampleDataArray_Sel demonstrates label-based selection: the nearest
// grid column to a coordinate, then one timestep by partial date label.
func ExampleDataArray_Sel() {
	da := exampleArray()

	x := 90.0
	out, _ := da.Sel(core.Query{
		X:    &x,
		Time: &core.TimeSel{Label: "2018-01-01 02"},
	})
	fmt.Println(out.Dims(), out.Values().Ravel())
	// Output:
	// [time] [5]
}
