// Axis-aware reduction. Aggregate is the single entry point; the named
// reductions (Max, Mean, Std, ...) are thin bindings over it with fixed
// reduction functions from montanaflynn/stats.

package core

import (
	"fmt"
	"math"
	"slices"

	"github.com/korsvik/tidemark/geometry"
	"github.com/korsvik/tidemark/nd"
	"github.com/montanaflynn/stats"
)

// AggOption tweaks an aggregation.
type AggOption func(*aggConfig)

type aggConfig struct {
	name string
}

// WithResultName overrides the item name of the aggregated array.
func WithResultName(name string) AggOption {
	return func(c *aggConfig) { c.name = name }
}

// Aggregate reduces the given axis (or, for AxisSpace, every non-time
// axis) with fn. Reducing time keeps the geometry and pins the time index
// to its first instant; reducing space drops geometry and elevation since
// a scalar-over-space no longer maps onto them.
func (da *DataArray) Aggregate(ax Axis, fn nd.ReduceFunc, opts ...AggOption) (*DataArray, error) {
	var cfg aggConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	axes, err := ax.resolve(da)
	if err != nil {
		return nil, err
	}

	values, err := da.values.Reduce(axes, fn)
	if err != nil {
		return nil, err
	}

	timeReduced := slices.Contains(axes, da.timeAxisPos()) && da.HasTimeAxis()
	spaceReduced := false
	dims := make([]string, 0, len(da.dims))
	for i, d := range da.dims {
		if slices.Contains(axes, i) {
			if i != da.timeAxisPos() {
				spaceReduced = true
			}
			continue
		}
		dims = append(dims, d)
	}
	if len(dims) == 0 {
		// everything reduced away; the buffer keeps one representative axis
		dims = []string{da.dims[0]}
	}

	t := da.time
	if timeReduced {
		t = da.time[:1]
	}
	geom := da.geom
	zn := da.elevation
	if spaceReduced {
		geom = geometry.Undefined{}
		zn = nil
	} else if timeReduced && zn != nil && zn.NDim() == 2 {
		if zn, err = zn.Take(0, []int{0}); err != nil {
			return nil, err
		}
	}

	out := da.derive(values, t, dims, geom, zn)
	if cfg.name != "" {
		out.item = out.item.WithName(cfg.name)
	}
	return out, nil
}

// statFn adapts a montanaflynn/stats reduction to nd.ReduceFunc; failures
// (e.g. empty input) surface as NaN.
func statFn(fn func(stats.Float64Data) (float64, error)) nd.ReduceFunc {
	return func(values []float64) float64 {
		v, err := fn(values)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

// nanStatFn is statFn over the non-NaN subset of each group.
func nanStatFn(fn func(stats.Float64Data) (float64, error)) nd.ReduceFunc {
	inner := statFn(fn)
	return func(values []float64) float64 {
		return inner(nd.DropNaN(values))
	}
}

// ptp is the peak-to-peak range (max - min) of a group.
func ptp(values []float64) float64 {
	lo, errLo := stats.Min(values)
	hi, errHi := stats.Max(values)
	if errLo != nil || errHi != nil {
		return math.NaN()
	}
	return hi - lo
}

// Max reduces with the maximum.
func (da *DataArray) Max(ax Axis) (*DataArray, error) { return da.Aggregate(ax, statFn(stats.Max)) }

// Min reduces with the minimum.
func (da *DataArray) Min(ax Axis) (*DataArray, error) { return da.Aggregate(ax, statFn(stats.Min)) }

// Mean reduces with the arithmetic mean.
func (da *DataArray) Mean(ax Axis) (*DataArray, error) { return da.Aggregate(ax, statFn(stats.Mean)) }

// Std reduces with the population standard deviation.
func (da *DataArray) Std(ax Axis) (*DataArray, error) {
	return da.Aggregate(ax, statFn(stats.StandardDeviationPopulation))
}

// Ptp reduces with the peak-to-peak range (max minus min).
func (da *DataArray) Ptp(ax Axis) (*DataArray, error) { return da.Aggregate(ax, ptp) }

// NanMax is Max ignoring NaN entries.
func (da *DataArray) NanMax(ax Axis) (*DataArray, error) {
	return da.Aggregate(ax, nanStatFn(stats.Max))
}

// NanMin is Min ignoring NaN entries.
func (da *DataArray) NanMin(ax Axis) (*DataArray, error) {
	return da.Aggregate(ax, nanStatFn(stats.Min))
}

// NanMean is Mean ignoring NaN entries.
func (da *DataArray) NanMean(ax Axis) (*DataArray, error) {
	return da.Aggregate(ax, nanStatFn(stats.Mean))
}

// NanStd is Std ignoring NaN entries.
func (da *DataArray) NanStd(ax Axis) (*DataArray, error) {
	return da.Aggregate(ax, nanStatFn(stats.StandardDeviationPopulation))
}

// Average reduces one axis with a weighted mean. The weights must match
// the axis length; AxisSpace is rejected since weights are per-entry along
// a single axis.
func (da *DataArray) Average(weights []float64, ax Axis) (*DataArray, error) {
	pos, err := ax.resolveOne(da)
	if err != nil {
		return nil, err
	}
	n, err := da.values.DimLen(pos)
	if err != nil {
		return nil, err
	}
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d weights for axis length %d", ErrWeights, len(weights), n)
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrWeights)
	}
	wmean := func(values []float64) float64 {
		s := 0.0
		for i, v := range values {
			s += v * weights[i]
		}
		return s / total
	}
	return da.Aggregate(AxisAt(pos), wmean)
}
