// Temporal and spatial interpolation.

package core

import (
	"fmt"
	"math"
	"time"

	"github.com/korsvik/tidemark/geometry"
	"github.com/korsvik/tidemark/nd"
	"github.com/korsvik/tidemark/timeidx"
)

// TimeInterpOptions configures InterpTime. Exactly one of Target and Dt
// picks the new time axis: an explicit index, or an equidistant one from
// the array's start to its end with step Dt. Out-of-span targets are
// extrapolated from the edge pair when Extrapolate is set, otherwise they
// take Fill (NaN when nil).
type TimeInterpOptions struct {
	Target      timeidx.Index
	Dt          time.Duration
	Extrapolate bool
	Fill        *float64
}

// InterpTime linearly interpolates the array onto a new time axis. The
// elevation array, when present and time-varying, is interpolated the
// same way.
func (da *DataArray) InterpTime(opts TimeInterpOptions) (*DataArray, error) {
	if !da.HasTimeAxis() {
		return nil, fmt.Errorf("%w: %q not in %v", ErrAxis, timeDim, da.dims)
	}
	target := opts.Target
	if target == nil {
		if opts.Dt <= 0 {
			return nil, fmt.Errorf("%w: InterpTime needs a target index or a positive dt", ErrKey)
		}
		n := int(da.EndTime().Sub(da.StartTime())/opts.Dt) + 1
		target = timeidx.Equidistant(da.StartTime(), opts.Dt, n)
	}
	weights, err := da.time.LinearWeights(target, opts.Extrapolate)
	if err != nil {
		return nil, err
	}
	fill := math.NaN()
	if opts.Fill != nil {
		fill = *opts.Fill
	}

	values, err := interpLeadingAxis(da.values, weights, fill)
	if err != nil {
		return nil, err
	}
	zn := da.elevation
	if zn != nil && zn.NDim() == 2 {
		if zn, err = interpLeadingAxis(zn, weights, fill); err != nil {
			return nil, err
		}
	}
	return da.derive(values, target, da.dims, da.geom, zn), nil
}

// interpLeadingAxis rebuilds an array along axis 0 from a linear stencil.
func interpLeadingAxis(a *nd.Array, weights []timeidx.Weight, fill float64) (*nd.Array, error) {
	shape := a.Shape()
	rest := a.Len() / shape[0]
	src := a.Ravel()
	out := make([]float64, len(weights)*rest)
	for i, w := range weights {
		for j := 0; j < rest; j++ {
			if !w.Valid {
				out[i*rest+j] = fill
				continue
			}
			l := src[w.Left*rest+j]
			r := src[w.Right*rest+j]
			out[i*rest+j] = l*(1-w.Frac) + r*w.Frac
		}
	}
	shape[0] = len(weights)
	return nd.New(shape, out)
}

// Interp interpolates the array to a single horizontal position through
// the geometry's interpolant: inverse-distance over the nNearest element
// centroids for meshes, the linear stencil for 1-D grids. nNearest <= 0
// defaults to 3. The result has a point geometry and no spatial axis.
func (da *DataArray) Interp(x, y float64, nNearest int) (*DataArray, error) {
	ip, ok := da.geom.(geometry.Interpolator)
	if !ok {
		return nil, fmt.Errorf("%w: interpolation on %s", ErrNotImplemented, da.geom.Kind())
	}
	if nNearest <= 0 {
		nNearest = 3
	}
	idx, w, err := ip.Interpolant(x, y, nNearest)
	if err != nil {
		return nil, err
	}

	s := da.spatialOffset()
	mul := func(a, b float64) float64 { return a * b }
	add := func(a, b float64) float64 { return a + b }
	var acc *nd.Array
	for k := range idx {
		sub, err := da.values.TakeAt(s, idx[k])
		if err != nil {
			return nil, err
		}
		term := sub.ApplyScalar(w[k], mul)
		if acc == nil {
			acc = term
			continue
		}
		if acc, err = acc.Apply2(term, add); err != nil {
			return nil, err
		}
	}

	dims := da.Dims()
	if len(dims) > 1 {
		dims = append(dims[:s], dims[s+1:]...)
	}
	return da.derive(acc, da.time, dims, geometry.Point2D{X: x, Y: y}, nil), nil
}
