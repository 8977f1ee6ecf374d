// Export adapters: the generic coordinate-labeled structure consumed by
// external array libraries, the writer hand-off, and the repr.

package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/korsvik/tidemark/geometry"
)

// Labeled is the geometry-free export form of a DataArray: dimension
// names, per-dimension coordinate vectors and flat metadata attributes.
// Coordinate vectors are []time.Time for the time axis, []float64 for
// coordinate axes and []int for entity-id axes (mesh elements, nodes).
type Labeled struct {
	Name   string
	Dims   []string
	Coords map[string]any
	Attrs  map[string]string
	Values []float64
	Shape  []int
}

// ItemWriter consumes datasets; file-format writers implement it.
type ItemWriter interface {
	WriteDataset(ds *Dataset) error
}

// ToLabeled converts the array to the generic labeled structure.
func (da *DataArray) ToLabeled() Labeled {
	coords := make(map[string]any, len(da.dims))
	if da.HasTimeAxis() {
		coords[timeDim] = []time.Time(da.time.Clone())
	}
	for name, vec := range geometryCoords(da.geom) {
		coords[name] = vec
	}

	return Labeled{
		Name:   da.item.Name,
		Dims:   da.Dims(),
		Coords: coords,
		Attrs: map[string]string{
			"name": da.item.Name,
			"type": da.item.Type.String(),
			"unit": da.item.Unit.String(),
		},
		Values: da.values.Ravel(),
		Shape:  da.Shape(),
	}
}

// geometryCoords assembles the per-variant coordinate vectors.
func geometryCoords(g geometry.Geometry) map[string]any {
	out := map[string]any{}
	ids := func(n int) []int {
		v := make([]int, n)
		for i := range v {
			v[i] = i
		}
		return v
	}
	switch gg := g.(type) {
	case *geometry.Grid1D:
		out[gg.AxisName()] = gg.X()
	case *geometry.Grid2D:
		yn, xn := gg.AxisNames()
		out[xn] = gg.X()
		out[yn] = gg.Y()
	case *geometry.Grid3D:
		out["x"] = gg.X()
		out["y"] = gg.Y()
		out["z"] = gg.Z()
	case *geometry.Mesh:
		out["element"] = ids(gg.NElements())
	case *geometry.MeshLayered:
		out["element"] = ids(gg.NElements())
	case *geometry.PointSpectrum:
		out["frequency"] = gg.Frequencies()
		if gg.NDirections() > 0 {
			out["direction"] = gg.Directions()
		}
	case *geometry.LineSpectrum:
		out["node"] = ids(gg.NNodes())
		out["frequency"] = gg.Frequencies()
		if gg.NDirections() > 0 {
			out["direction"] = gg.Directions()
		}
	case *geometry.AreaSpectrum:
		out["element"] = ids(gg.NElements())
		out["frequency"] = gg.Frequencies()
		if gg.NDirections() > 0 {
			out["direction"] = gg.Directions()
		}
	}
	return out
}

// Write hands the array to a writer wrapped in a single-item Dataset.
func (da *DataArray) Write(w ItemWriter) error {
	ds, err := NewDataset(da)
	if err != nil {
		return err
	}
	return w.WriteDataset(ds)
}

const reprTimeLayout = "2006-01-02 15:04:05"

// String renders the multi-line repr.
func (da *DataArray) String() string {
	var b strings.Builder
	b.WriteString("<tidemark.DataArray>\n")
	fmt.Fprintf(&b, "name: %s\n", da.item)

	parts := make([]string, len(da.dims))
	shape := da.Shape()
	for i, d := range da.dims {
		parts[i] = fmt.Sprintf("%s:%d", d, shape[i])
	}
	fmt.Fprintf(&b, "dims: (%s)\n", strings.Join(parts, ", "))

	if da.NTimesteps() == 1 {
		fmt.Fprintf(&b, "time: %s (time-invariant)\n", da.StartTime().Format(reprTimeLayout))
	} else {
		fmt.Fprintf(&b, "time: %s - %s (%d records)\n",
			da.StartTime().Format(reprTimeLayout), da.EndTime().Format(reprTimeLayout), da.NTimesteps())
	}
	if da.geom.Kind() != geometry.KindUndefined {
		fmt.Fprintf(&b, "geometry: %v\n", da.geom)
	}
	fmt.Fprintf(&b, "values: %s", previewValues(da.values.Ravel()))
	return b.String()
}

// previewValues renders at most the first three and the last value.
func previewValues(data []float64) string {
	format := func(vs []float64) []string {
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = fmt.Sprintf("%g", v)
		}
		return out
	}
	if len(data) <= 4 {
		return "[" + strings.Join(format(data), ", ") + "]"
	}
	head := format(data[:3])
	return fmt.Sprintf("[%s, ..., %g]", strings.Join(head, ", "), data[len(data)-1])
}
