// Elementwise comparisons. Every operator yields a Bool-dtype DataArray of
// identical shape, dims, geometry and elevation, renamed to the generic
// "Boolean" item; that array is the currency for mask selection.
//
// Equality of two DataArrays as values is the separate ValueEquals
// predicate; Go's == on pointers stays identity, so arrays remain usable
// as map keys.

package core

import (
	"fmt"
	"slices"

	"github.com/korsvik/tidemark/item"
	"github.com/korsvik/tidemark/nd"
)

// Less returns da < other elementwise.
func (da *DataArray) Less(other any) (*DataArray, error) {
	return da.compare(other, func(a, b float64) bool { return a < b })
}

// Greater returns da > other elementwise.
func (da *DataArray) Greater(other any) (*DataArray, error) {
	return da.compare(other, func(a, b float64) bool { return a > b })
}

// LessEq returns da <= other elementwise.
func (da *DataArray) LessEq(other any) (*DataArray, error) {
	return da.compare(other, func(a, b float64) bool { return a <= b })
}

// GreaterEq returns da >= other elementwise.
func (da *DataArray) GreaterEq(other any) (*DataArray, error) {
	return da.compare(other, func(a, b float64) bool { return a >= b })
}

// Eq returns da == other elementwise.
func (da *DataArray) Eq(other any) (*DataArray, error) {
	return da.compare(other, func(a, b float64) bool { return a == b })
}

// Ne returns da != other elementwise.
func (da *DataArray) Ne(other any) (*DataArray, error) {
	return da.compare(other, func(a, b float64) bool { return a != b })
}

func (da *DataArray) compare(other any, pred nd.PredicateFunc) (*DataArray, error) {
	var values *nd.Array
	var err error
	switch o := other.(type) {
	case float64:
		values = da.values.CompareScalar(o, pred)
	case int:
		values = da.values.CompareScalar(float64(o), pred)
	case *nd.Array:
		values, err = da.values.Compare(o, pred)
	case *DataArray:
		values, err = da.values.Compare(o.values, pred)
	default:
		return nil, fmt.Errorf("%w: operand %T", ErrMath, other)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: comparison", ErrMath)
	}
	if !values.SameShape(da.values) {
		return nil, fmt.Errorf("%w: comparison changes shape %v to %v", ErrMath, da.Shape(), values.Shape())
	}
	out := da.derive(values, da.time, da.dims, da.geom, da.elevation)
	out.item = item.Item{Name: "Boolean", Type: item.Undefined, Unit: item.UnitUndefined}
	return out, nil
}

// ValueEquals reports whether two arrays carry the same dims and the same
// buffer values within tol (NaN compares equal to NaN).
func (da *DataArray) ValueEquals(other *DataArray, tol float64) bool {
	if other == nil {
		return false
	}
	return slices.Equal(da.dims, other.dims) && da.values.EqualValues(other.values, tol)
}
