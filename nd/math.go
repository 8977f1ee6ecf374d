package nd

import (
	"fmt"
	"slices"
)

// BinaryFunc combines two elements.
type BinaryFunc func(a, b float64) float64

// UnaryFunc maps a single element.
type UnaryFunc func(v float64) float64

// PredicateFunc compares two elements.
type PredicateFunc func(a, b float64) bool

// Apply1 returns a copy with fn applied to every element.
func (a *Array) Apply1(fn UnaryFunc) *Array {
	out := a.Clone()
	for i, v := range out.data {
		out.data[i] = fn(v)
	}
	out.dtype = DTypeFloat64
	return out
}

// Apply2 combines a and b elementwise with fn, broadcasting shapes by the
// right-aligned rule: trailing axes must be equal or one of them 1.
// Returns ErrBroadcast when the shapes are incompatible.
func (a *Array) Apply2(b *Array, fn BinaryFunc) (*Array, error) {
	shape, err := broadcastShape(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	sa := broadcastStrides(a.shape, a.strides, shape)
	sb := broadcastStrides(b.shape, b.strides, shape)

	out := make([]float64, shapeLen(shape))
	index := make([]int, len(shape))
	for i := range out {
		offA, offB := 0, 0
		for d := range index {
			offA += index[d] * sa[d]
			offB += index[d] * sb[d]
		}
		out[i] = fn(a.data[offA], b.data[offB])
		for d := len(index) - 1; d >= 0; d-- {
			index[d]++
			if index[d] < shape[d] {
				break
			}
			index[d] = 0
		}
	}
	return &Array{data: out, shape: shape, strides: rowMajorStrides(shape), dtype: DTypeFloat64}, nil
}

// ApplyScalar combines every element with the scalar v, element op v.
func (a *Array) ApplyScalar(v float64, fn BinaryFunc) *Array {
	out := a.Clone()
	for i, e := range out.data {
		out.data[i] = fn(e, v)
	}
	out.dtype = DTypeFloat64
	return out
}

// Compare evaluates pred elementwise against b (with broadcasting) and
// returns a Bool array of the broadcast shape.
func (a *Array) Compare(b *Array, pred PredicateFunc) (*Array, error) {
	out, err := a.Apply2(b, func(x, y float64) float64 {
		if pred(x, y) {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, err
	}
	out.dtype = DTypeBool
	return out, nil
}

// CompareScalar evaluates pred elementwise against the scalar v.
func (a *Array) CompareScalar(v float64, pred PredicateFunc) *Array {
	out := a.ApplyScalar(v, func(x, y float64) float64 {
		if pred(x, y) {
			return 1
		}
		return 0
	})
	out.dtype = DTypeBool
	return out
}

// broadcastShape merges two shapes by NumPy's right-aligned rule.
func broadcastShape(a, b []int) ([]int, error) {
	n := max(len(a), len(b))
	out := make([]int, n)
	for i := 1; i <= n; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db:
			out[n-i] = da
		case da == 1:
			out[n-i] = db
		case db == 1:
			out[n-i] = da
		default:
			return nil, fmt.Errorf("%w: %v vs %v", ErrBroadcast, a, b)
		}
	}
	return out, nil
}

// broadcastStrides maps an operand's strides onto the broadcast shape,
// zeroing the stride of every broadcast (stretched) axis.
func broadcastStrides(shape, strides, target []int) []int {
	out := make([]int, len(target))
	offset := len(target) - len(shape)
	for d := range target {
		if d < offset {
			continue
		}
		if shape[d-offset] == target[d] {
			out[d] = strides[d-offset]
		}
	}
	return out
}

func shapeLen(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// BroadcastableTo reports whether the array can broadcast to the target shape.
func (a *Array) BroadcastableTo(target []int) bool {
	merged, err := broadcastShape(a.shape, target)
	return err == nil && slices.Equal(merged, target)
}
