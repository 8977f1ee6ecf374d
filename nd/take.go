package nd

import (
	"fmt"
	"slices"
)

// Take returns a new Array selecting the given indices along axis. The axis
// is preserved with its new (possibly reordered or repeated) length.
// Negative indices count from the end of the axis.
func (a *Array) Take(axis int, indices []int) (*Array, error) {
	if axis < 0 || axis >= len(a.shape) {
		return nil, fmt.Errorf("%w: axis %d of %d-dim array", ErrAxis, axis, len(a.shape))
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: empty index list", ErrIndex)
	}
	norm := make([]int, len(indices))
	for i, ix := range indices {
		if ix < 0 {
			ix += a.shape[axis]
		}
		if ix < 0 || ix >= a.shape[axis] {
			return nil, fmt.Errorf("%w: index %d on axis %d (size %d)", ErrIndex, indices[i], axis, a.shape[axis])
		}
		norm[i] = ix
	}

	outShape := slices.Clone(a.shape)
	outShape[axis] = len(norm)

	outer := 1
	for _, s := range a.shape[:axis] {
		outer *= s
	}
	inner := 1
	for _, s := range a.shape[axis+1:] {
		inner *= s
	}

	out := make([]float64, outer*len(norm)*inner)
	pos := 0
	for o := 0; o < outer; o++ {
		base := o * a.shape[axis] * inner
		for _, ix := range norm {
			copy(out[pos:pos+inner], a.data[base+ix*inner:base+(ix+1)*inner])
			pos += inner
		}
	}

	return &Array{data: out, shape: outShape, strides: rowMajorStrides(outShape), dtype: a.dtype}, nil
}

// TakeAt selects a single index along axis and collapses that axis out of
// the shape. Taking the only axis of a 1-D array yields a length-1 vector.
func (a *Array) TakeAt(axis, index int) (*Array, error) {
	sub, err := a.Take(axis, []int{index})
	if err != nil {
		return nil, err
	}
	if len(sub.shape) == 1 {
		return sub, nil
	}
	sub.shape = slices.Delete(sub.shape, axis, axis+1)
	sub.strides = rowMajorStrides(sub.shape)
	return sub, nil
}

// Squeeze returns a copy with all length-1 axes removed. A fully singleton
// array keeps a single length-1 axis.
func (a *Array) Squeeze() *Array {
	shape := make([]int, 0, len(a.shape))
	for _, s := range a.shape {
		if s != 1 {
			shape = append(shape, s)
		}
	}
	if len(shape) == 0 {
		shape = []int{1}
	}
	return &Array{data: slices.Clone(a.data), shape: shape, strides: rowMajorStrides(shape), dtype: a.dtype}
}

// Flip returns a copy with the element order reversed along axis.
func (a *Array) Flip(axis int) (*Array, error) {
	if axis < 0 || axis >= len(a.shape) {
		return nil, fmt.Errorf("%w: axis %d of %d-dim array", ErrAxis, axis, len(a.shape))
	}
	indices := make([]int, a.shape[axis])
	for i := range indices {
		indices[i] = a.shape[axis] - 1 - i
	}
	return a.Take(axis, indices)
}
