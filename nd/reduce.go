package nd

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// ReduceFunc collapses a gathered slice of values to a single value.
// The slice is scratch storage owned by the caller of the function and
// must not be retained.
type ReduceFunc func(values []float64) float64

// Reduce aggregates the given axes away with fn. The result shape is the
// input shape with all reduced axes removed; reducing every axis yields a
// length-1 vector. Axes may be given in any order but must be unique.
func (a *Array) Reduce(axes []int, fn ReduceFunc) (*Array, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: no axes to reduce", ErrAxis)
	}
	reduced := make([]bool, len(a.shape))
	for _, ax := range axes {
		if ax < 0 || ax >= len(a.shape) {
			return nil, fmt.Errorf("%w: axis %d of %d-dim array", ErrAxis, ax, len(a.shape))
		}
		if reduced[ax] {
			return nil, fmt.Errorf("%w: duplicate axis %d", ErrAxis, ax)
		}
		reduced[ax] = true
	}

	outShape := make([]int, 0, len(a.shape))
	groupLen := 1
	for d, s := range a.shape {
		if reduced[d] {
			groupLen *= s
		} else {
			outShape = append(outShape, s)
		}
	}
	if len(outShape) == 0 {
		outShape = []int{1}
	}

	// Out strides in terms of the kept axes of the input.
	outStrides := make([]int, len(a.shape))
	stride := 1
	for d := len(a.shape) - 1; d >= 0; d-- {
		if reduced[d] {
			outStrides[d] = 0
			continue
		}
		outStrides[d] = stride
		stride *= a.shape[d]
	}

	outLen := stride
	groups := make([][]float64, outLen)
	for i := range groups {
		groups[i] = make([]float64, 0, groupLen)
	}

	// Gather every element into its output group via an odometer walk.
	index := make([]int, len(a.shape))
	for _, v := range a.data {
		outPos := 0
		for d := range index {
			outPos += index[d] * outStrides[d]
		}
		groups[outPos] = append(groups[outPos], v)
		for d := len(index) - 1; d >= 0; d-- {
			index[d]++
			if index[d] < a.shape[d] {
				break
			}
			index[d] = 0
		}
	}

	out := make([]float64, outLen)
	for i, g := range groups {
		out[i] = fn(g)
	}
	return &Array{data: out, shape: outShape, strides: rowMajorStrides(outShape), dtype: DTypeFloat64}, nil
}

// Quantile computes the q-th quantile of values by linear interpolation
// between closest ranks, so Quantile(v, 0) == min(v) and
// Quantile(v, 1) == max(v). NaN is returned for an empty input; inputs
// containing NaN yield NaN (use DropNaN first to ignore them).
func Quantile(values []float64, q float64) (float64, error) {
	if q < 0 || q > 1 {
		return math.NaN(), fmt.Errorf("%w: %v", ErrQuantile, q)
	}
	if len(values) == 0 {
		return math.NaN(), nil
	}
	for _, v := range values {
		if math.IsNaN(v) {
			return math.NaN(), nil
		}
	}
	sorted := slices.Clone(values)
	sort.Float64s(sorted)
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac, nil
}

// DropNaN returns values with all NaN elements removed.
func DropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
