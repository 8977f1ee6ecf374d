package nd

import (
	"fmt"
	"math"
	"slices"
)

// DType tags the logical element type of an Array. Storage is always
// float64; Bool arrays hold 0 and 1 and exist so that comparison results
// are distinguishable from numeric data.
type DType int

const (
	// DTypeFloat64 marks ordinary numeric data.
	DTypeFloat64 DType = iota

	// DTypeBool marks the result of a comparison; values are 0 or 1.
	DTypeBool
)

// Array is a dense, row-major N-dimensional buffer.
// The zero value is not usable; construct with New, Zeros, Full or
// FromVector.
type Array struct {
	data    []float64
	shape   []int
	strides []int
	dtype   DType
}

// New wraps data in an Array of the given shape. The data slice is copied.
// Returns ErrNoData for an empty buffer and ErrShape when the shape product
// does not equal len(data) or any dimension is < 1.
func New(shape []int, data []float64) (*Array, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	n := 1
	for _, s := range shape {
		if s < 1 {
			return nil, fmt.Errorf("%w: dimension size %d", ErrShape, s)
		}
		n *= s
	}
	if len(shape) == 0 || n != len(data) {
		return nil, fmt.Errorf("%w: shape %v vs %d values", ErrShape, shape, len(data))
	}
	return &Array{
		data:    slices.Clone(data),
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
		dtype:   DTypeFloat64,
	}, nil
}

// FromVector wraps a 1-D slice. The slice is copied.
func FromVector(data []float64) (*Array, error) {
	return New([]int{len(data)}, data)
}

// Zeros returns a zero-filled Array of the given shape.
func Zeros(shape ...int) (*Array, error) {
	return Full(0, shape...)
}

// Full returns an Array of the given shape with every element set to v.
func Full(v float64, shape ...int) (*Array, error) {
	n := 1
	for _, s := range shape {
		if s < 1 {
			return nil, fmt.Errorf("%w: dimension size %d", ErrShape, s)
		}
		n *= s
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: empty shape", ErrShape)
	}
	data := make([]float64, n)
	if v != 0 {
		for i := range data {
			data[i] = v
		}
	}
	return &Array{data: data, shape: slices.Clone(shape), strides: rowMajorStrides(shape), dtype: DTypeFloat64}, nil
}

// Scalar returns a rank-1, length-1 Array holding v.
func Scalar(v float64) *Array {
	a, _ := New([]int{1}, []float64{v})
	return a
}

// Shape returns a copy of the dimension sizes.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Len returns the total element count.
func (a *Array) Len() int { return len(a.data) }

// DimLen returns the size of the given axis.
// Returns ErrAxis for an axis outside [0, ndim).
func (a *Array) DimLen(axis int) (int, error) {
	if axis < 0 || axis >= len(a.shape) {
		return 0, fmt.Errorf("%w: axis %d of %d-dim array", ErrAxis, axis, len(a.shape))
	}
	return a.shape[axis], nil
}

// DType reports whether the array holds numeric or boolean values.
func (a *Array) DType() DType { return a.dtype }

// At returns the element at the given multi-index.
func (a *Array) At(index ...int) (float64, error) {
	off, err := a.offset(index)
	if err != nil {
		return 0, err
	}
	return a.data[off], nil
}

// SetAt stores v at the given multi-index.
func (a *Array) SetAt(v float64, index ...int) error {
	off, err := a.offset(index)
	if err != nil {
		return err
	}
	a.data[off] = v
	return nil
}

// Ravel returns a copy of the flattened buffer in row-major order.
func (a *Array) Ravel() []float64 { return slices.Clone(a.data) }

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	return &Array{
		data:    slices.Clone(a.data),
		shape:   slices.Clone(a.shape),
		strides: slices.Clone(a.strides),
		dtype:   a.dtype,
	}
}

// CopyFrom overwrites the buffer with the values of src.
// Shapes must match exactly; the dtype of src is adopted.
func (a *Array) CopyFrom(src *Array) error {
	if !slices.Equal(a.shape, src.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShape, a.shape, src.shape)
	}
	copy(a.data, src.data)
	a.dtype = src.dtype
	return nil
}

// SameShape reports whether both arrays have identical shapes.
func (a *Array) SameShape(b *Array) bool { return slices.Equal(a.shape, b.shape) }

// EqualValues reports whether both arrays have identical shape and all
// elements are within tol of each other. NaNs compare equal to NaNs.
func (a *Array) EqualValues(b *Array, tol float64) bool {
	if !slices.Equal(a.shape, b.shape) {
		return false
	}
	for i, v := range a.data {
		w := b.data[i]
		if math.IsNaN(v) && math.IsNaN(w) {
			continue
		}
		if math.Abs(v-w) > tol {
			return false
		}
	}
	return true
}

// offset translates a multi-index into a flat buffer offset.
func (a *Array) offset(index []int) (int, error) {
	if len(index) != len(a.shape) {
		return 0, fmt.Errorf("%w: %d indices for %d-dim array", ErrIndex, len(index), len(a.shape))
	}
	off := 0
	for d, ix := range index {
		if ix < 0 {
			ix += a.shape[d]
		}
		if ix < 0 || ix >= a.shape[d] {
			return 0, fmt.Errorf("%w: index %d on axis %d (size %d)", ErrIndex, index[d], d, a.shape[d])
		}
		off += ix * a.strides[d]
	}
	return off, nil
}

// rowMajorStrides computes row-major strides for a shape.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= shape[d]
	}
	return strides
}
