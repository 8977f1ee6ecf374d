// Structural helpers: copying, squeezing, flipping, NaN-dropping,
// concatenation, compatibility and summary statistics.

package core

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/korsvik/tidemark/nd"
	"github.com/korsvik/tidemark/timeidx"
	"github.com/montanaflynn/stats"
)

// Copy returns a deep copy: fresh buffers, cloned time and dims. The
// geometry is shared since it is immutable.
func (da *DataArray) Copy() *DataArray {
	zn := da.elevation
	if zn != nil {
		zn = zn.Clone()
	}
	return da.derive(da.values.Clone(), da.time, da.dims, da.geom, zn)
}

// Squeeze removes singleton axes from the buffer and dims. The geometry
// is kept: squeezing only ever removes axes the geometry does not span
// (a collapsed spatial axis is produced by Isel, which already reduces
// the geometry). A fully singleton array keeps its first axis.
func (da *DataArray) Squeeze() *DataArray {
	shape := da.Shape()
	dims := make([]string, 0, len(da.dims))
	for i, d := range da.dims {
		if shape[i] != 1 {
			dims = append(dims, d)
		}
	}
	if len(dims) == 0 {
		dims = da.dims[:1]
	}
	t := da.time
	if dims[0] != timeDim {
		t = da.time[:1]
	}
	return da.derive(da.values.Squeeze(), t, dims, da.geom, da.elevation)
}

// Flip reverses the element order along the first non-time axis, in
// place. This is one of the three sanctioned mutators.
func (da *DataArray) Flip() error {
	axis := da.spatialOffset()
	if axis >= da.NDim() {
		return fmt.Errorf("%w: no spatial axis to flip", ErrAxis)
	}
	flipped, err := da.values.Flip(axis)
	if err != nil {
		return err
	}
	return da.values.CopyFrom(flipped)
}

// DropNA drops every timestep whose values are all NaN. Returns (nil,
// nil) when nothing survives.
func (da *DataArray) DropNA() (*DataArray, error) {
	if !da.HasTimeAxis() {
		return nil, fmt.Errorf("%w: %q not in %v", ErrAxis, timeDim, da.dims)
	}
	shape := da.Shape()
	rest := da.values.Len() / shape[0]
	src := da.values.Ravel()

	var keep []int
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < rest; j++ {
			if !math.IsNaN(src[i*rest+j]) {
				keep = append(keep, i)
				break
			}
		}
	}
	if len(keep) == 0 {
		return nil, nil
	}
	return da.iselPos(0, keep, false)
}

// Concat merges other along the time axis. Both arrays must have a time
// axis, identical dims and non-time shape. The result covers the union of
// timesteps in ascending order; on instants present in both arrays the
// values of other win.
func (da *DataArray) Concat(other *DataArray) (*DataArray, error) {
	if !da.HasTimeAxis() || !other.HasTimeAxis() {
		return nil, fmt.Errorf("%w: concat needs a %q axis on both arrays", ErrIncompatible, timeDim)
	}
	if !slices.Equal(da.dims, other.dims) ||
		!slices.Equal(da.Shape()[1:], other.Shape()[1:]) {
		return nil, fmt.Errorf("%w: dims %v/%v shapes %v/%v",
			ErrIncompatible, da.dims, other.dims, da.Shape(), other.Shape())
	}

	mergeZ := da.elevation != nil && other.elevation != nil &&
		da.elevation.NDim() == 2 && other.elevation.NDim() == 2 &&
		da.elevation.Shape()[1] == other.elevation.Shape()[1]

	type row struct {
		t    time.Time
		v, z []float64
	}
	rest := da.values.Len() / da.Shape()[0]
	merged := make(map[int64]row, da.NTimesteps()+other.NTimesteps())
	collect := func(src *DataArray) {
		vals := src.values.Ravel()
		var zvals []float64
		if mergeZ {
			zvals = src.elevation.Ravel()
		}
		nodes := 0
		if mergeZ {
			nodes = src.elevation.Shape()[1]
		}
		for i, ts := range src.time {
			r := row{t: ts, v: vals[i*rest : (i+1)*rest]}
			if mergeZ {
				r.z = zvals[i*nodes : (i+1)*nodes]
			}
			merged[ts.UnixNano()] = r
		}
	}
	collect(da)
	collect(other) // keep-last: the later array overwrites shared instants

	keys := make([]int64, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	data := make([]float64, 0, len(keys)*rest)
	t := make(timeidx.Index, 0, len(keys))
	var zdata []float64
	for _, k := range keys {
		r := merged[k]
		t = append(t, r.t)
		data = append(data, r.v...)
		if mergeZ {
			zdata = append(zdata, r.z...)
		}
	}

	shape := da.Shape()
	shape[0] = len(keys)
	values, err := nd.New(shape, data)
	if err != nil {
		return nil, err
	}
	var zn *nd.Array
	if mergeZ {
		if zn, err = nd.New([]int{len(keys), da.elevation.Shape()[1]}, zdata); err != nil {
			return nil, err
		}
	}
	return da.derive(values, t, da.dims, da.geom, zn), nil
}

// IsCompatible reports whether two arrays can be combined item-wise: same
// dims, same shape, same number of timesteps and the same start and end
// instants.
func (da *DataArray) IsCompatible(other *DataArray) bool {
	if other == nil {
		return false
	}
	if !slices.Equal(da.dims, other.dims) || !slices.Equal(da.Shape(), other.Shape()) {
		return false
	}
	if da.NTimesteps() != other.NTimesteps() {
		return false
	}
	return da.StartTime().Equal(other.StartTime()) && da.EndTime().Equal(other.EndTime())
}

// Summary holds the describe() statistics of the flattened buffer.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe computes summary statistics over the flattened buffer.
func (da *DataArray) Describe() (Summary, error) {
	data := da.values.Ravel()
	s := Summary{Count: len(data)}
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("%w: describe", ErrMath)
	}
	s.Std, _ = stats.StandardDeviationPopulation(data)
	s.Min, _ = stats.Min(data)
	s.Max, _ = stats.Max(data)
	if s.Q25, err = nd.Quantile(data, 0.25); err != nil {
		return Summary{}, err
	}
	s.Median, _ = nd.Quantile(data, 0.5)
	s.Q75, _ = nd.Quantile(data, 0.75)
	return s, nil
}
