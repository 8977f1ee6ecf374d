// Package nd implements the N-dimensional numeric buffer underlying
// tidemark data arrays.
//
// An Array is a dense, row-major float64 buffer with an explicit shape.
// The package owns all raw index math so that higher layers can reason
// purely in terms of named dimensions:
//
//   - Take / TakeAt — positional subsetting along one axis, in the
//     length-preserving and the axis-collapsing form.
//   - Squeeze / Flip — singleton removal and axis reversal.
//   - Reduce — aggregation of one or several axes with a caller-supplied
//     reduction function over the gathered values.
//   - Apply2 / ApplyScalar / Apply1 — elementwise arithmetic with
//     right-aligned shape broadcasting (NumPy rules).
//   - Compare / CompareScalar — elementwise predicates producing a
//     Bool-dtype Array, the currency for mask-based selection.
//   - MaskSelect / MaskAssign — boolean-mask read and in-place write.
//
// Arrays are compact copies, never views: every operation that returns an
// Array allocates a fresh buffer, so results never alias their inputs.
// Boolean results share the float64 storage (0/1) and are tagged with
// DTypeBool.
package nd
