// Elementwise arithmetic. Operands may be a scalar, a raw nd.Array or
// another DataArray; the result is a value-mutated copy of the left
// operand with dims, time and geometry preserved verbatim.
//
// The physical unit survives only when it still means something:
// subtracting two arrays of identical quantity and unit, or operating
// against a bare numeric operand. Every other combination downgrades the
// item to an untyped "<left> <op> <right>" label so derived quantities are
// never silently mislabeled.

package core

import (
	"fmt"
	"math"

	"github.com/korsvik/tidemark/item"
	"github.com/korsvik/tidemark/nd"
)

// Add returns da + other.
func (da *DataArray) Add(other any) (*DataArray, error) {
	return da.applyBinary(other, "+", func(a, b float64) float64 { return a + b })
}

// Sub returns da - other.
func (da *DataArray) Sub(other any) (*DataArray, error) {
	return da.applyBinary(other, "-", func(a, b float64) float64 { return a - b })
}

// Mul returns da * other.
func (da *DataArray) Mul(other any) (*DataArray, error) {
	return da.applyBinary(other, "*", func(a, b float64) float64 { return a * b })
}

// Div returns da / other.
func (da *DataArray) Div(other any) (*DataArray, error) {
	return da.applyBinary(other, "/", func(a, b float64) float64 { return a / b })
}

// FloorDiv returns the floored quotient da // other.
func (da *DataArray) FloorDiv(other any) (*DataArray, error) {
	return da.applyBinary(other, "//", func(a, b float64) float64 { return math.Floor(a / b) })
}

// Mod returns the remainder da % other; the sign follows the dividend,
// as in math.Mod.
func (da *DataArray) Mod(other any) (*DataArray, error) {
	return da.applyBinary(other, "%", math.Mod)
}

// Pow returns da ** other.
func (da *DataArray) Pow(other any) (*DataArray, error) {
	return da.applyBinary(other, "**", math.Pow)
}

// Neg returns -da; the item is preserved.
func (da *DataArray) Neg() *DataArray {
	return da.derive(da.values.Apply1(func(v float64) float64 { return -v }),
		da.time, da.dims, da.geom, da.elevation)
}

// Abs returns |da|; the item is preserved.
func (da *DataArray) Abs() *DataArray {
	return da.derive(da.values.Apply1(math.Abs), da.time, da.dims, da.geom, da.elevation)
}

// applyBinary dispatches on the operand kind and applies the unit
// preservation rule. Failures are reported as ErrMath without the
// underlying numeric detail.
func (da *DataArray) applyBinary(other any, op string, fn nd.BinaryFunc) (*DataArray, error) {
	var values *nd.Array
	var err error
	rhs := item.Item{}
	isArray := false

	switch o := other.(type) {
	case float64:
		values = da.values.ApplyScalar(o, fn)
	case int:
		values = da.values.ApplyScalar(float64(o), fn)
	case *nd.Array:
		values, err = da.values.Apply2(o, fn)
	case *DataArray:
		values, err = da.values.Apply2(o.values, fn)
		rhs, isArray = o.item, true
	default:
		return nil, fmt.Errorf("%w: operand %T", ErrMath, other)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMath, op)
	}
	if !values.SameShape(da.values) {
		// broadcasting widened the left operand; dims would no longer match
		return nil, fmt.Errorf("%w: %s changes shape %v to %v", ErrMath, op, da.Shape(), values.Shape())
	}

	out := da.derive(values, da.time, da.dims, da.geom, da.elevation)
	if isArray {
		out.item = combineItems(da.item, rhs, op)
	}
	return out, nil
}

// combineItems decides the result metadata of an array-array operation:
// same-quantity same-unit subtraction keeps the left item, everything else
// degrades to an untyped composite label.
func combineItems(left, right item.Item, op string) item.Item {
	if op == "-" && left.SameQuantity(right) {
		return left
	}
	return item.Item{
		Name: fmt.Sprintf("%s %s %s", left.Name, op, right.Name),
		Type: item.Undefined,
		Unit: item.UnitUndefined,
	}
}
