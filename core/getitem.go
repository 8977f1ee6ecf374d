// Mixed-key subscripting and boolean-mask selection. The tuple-vs-fancy
// disambiguation is isolated in normalizeGetKeys so its precedence rules
// can be tested exhaustively.

package core

import (
	"fmt"
	"math"
	"time"

	"github.com/korsvik/tidemark/geometry"
	"github.com/korsvik/tidemark/nd"
	"github.com/korsvik/tidemark/timeidx"
)

type getMode int

const (
	// one key per axis, leading axis first
	getPerAxis getMode = iota
	// the whole tuple is a fancy index list for the first axis
	getFancyFirst
	// the whole tuple is a list of time labels
	getTimeLabels
)

type getPlan struct {
	mode    getMode
	fancy   []int
	labels  []any // string or time.Time
	perAxis []any
}

// normalizeGetKeys decides how a key tuple addresses the array. Precedence,
// best-effort by design:
//
//  1. All-integer tuples longer than the rank whose values strictly
//     increase are one fancy index list for the first axis.
//  2. If any key after the first is a time label (string or time.Time) and
//     the array has a time axis, the whole tuple is a list of time labels.
//  3. Otherwise keys map one-to-one onto axes; more keys than axes is an
//     error.
func normalizeGetKeys(keys []any, rank int, hasTime bool) (getPlan, error) {
	if len(keys) == 0 {
		return getPlan{}, fmt.Errorf("%w: no keys", ErrKey)
	}

	if ints, ok := allInts(keys); ok && len(ints) > rank && strictlyIncreasing(ints) {
		return getPlan{mode: getFancyFirst, fancy: ints}, nil
	}

	if hasTime && len(keys) > 1 {
		for _, k := range keys[1:] {
			if isTimeLabel(k) {
				labels := make([]any, len(keys))
				for i, kk := range keys {
					if !isTimeLabel(kk) {
						return getPlan{}, fmt.Errorf("%w: mixed time labels and %T", ErrKey, kk)
					}
					labels[i] = kk
				}
				return getPlan{mode: getTimeLabels, labels: labels}, nil
			}
		}
	}

	if len(keys) > rank {
		return getPlan{}, fmt.Errorf("%w: %d keys for %d axes", ErrKey, len(keys), rank)
	}
	return getPlan{mode: getPerAxis, perAxis: keys}, nil
}

func allInts(keys []any) ([]int, bool) {
	out := make([]int, len(keys))
	for i, k := range keys {
		v, ok := k.(int)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func strictlyIncreasing(ints []int) bool {
	for i := 1; i < len(ints); i++ {
		if ints[i] <= ints[i-1] {
			return false
		}
	}
	return true
}

func isTimeLabel(k any) bool {
	switch k.(type) {
	case string, time.Time:
		return true
	}
	return false
}

// Get selects by a tuple of per-axis keys: int (collapses the axis),
// Indexer, []int, nil (whole axis), and, on the time axis, a label string
// or time.Time. A single Bool-array key is a mask selection (see Where).
// Returns (nil, nil) for an empty selection.
func (da *DataArray) Get(keys ...any) (*DataArray, error) {
	if len(keys) == 1 {
		if mask, ok := keys[0].(*DataArray); ok {
			return da.Where(mask)
		}
	}
	plan, err := normalizeGetKeys(keys, da.NDim(), da.HasTimeAxis())
	if err != nil {
		return nil, err
	}
	switch plan.mode {
	case getFancyFirst:
		return da.Isel(AxisAt(0), List(plan.fancy...))
	case getTimeLabels:
		ix, err := da.timeLabelIndices(plan.labels)
		if err != nil {
			return nil, err
		}
		return da.iselPos(0, ix, true)
	default:
		return da.getPerAxis(plan.perAxis)
	}
}

// getPerAxis applies per-axis keys from the last axis to the first so an
// axis collapse never shifts the positions still to be applied.
func (da *DataArray) getPerAxis(keys []any) (*DataArray, error) {
	out := da
	for pos := len(keys) - 1; pos >= 0; pos-- {
		ix, collapse, err := out.resolveAxisKey(pos, keys[pos])
		if err != nil {
			return nil, err
		}
		if ix == nil { // nil key: whole axis
			continue
		}
		if len(ix) == 0 {
			return nil, nil
		}
		if out, err = out.iselPos(pos, ix, collapse); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// resolveAxisKey expands one per-axis key to concrete indices. Labels are
// only legal on the time axis.
func (da *DataArray) resolveAxisKey(pos int, key any) ([]int, bool, error) {
	n, err := da.values.DimLen(pos)
	if err != nil {
		return nil, false, err
	}
	switch k := key.(type) {
	case nil:
		return nil, false, nil
	case int:
		return At(k).indices(n)
	case []int:
		return List(k...).indices(n)
	case Indexer:
		return k.indices(n)
	case string, time.Time:
		if pos != da.timeAxisPos() {
			return nil, false, fmt.Errorf("%w: label %v on non-time axis %q", ErrKey, k, da.dims[pos])
		}
		ix, err := da.timeLabelIndices([]any{k})
		return ix, true, err
	default:
		return nil, false, fmt.Errorf("%w: %T", ErrKey, key)
	}
}

// timeLabelIndices resolves a list of time labels to the union of their
// matching positions, in index order.
func (da *DataArray) timeLabelIndices(labels []any) ([]int, error) {
	seen := make(map[int]struct{})
	var out []int
	add := func(ix []int) {
		for _, i := range ix {
			if _, ok := seen[i]; !ok {
				seen[i] = struct{}{}
				out = append(out, i)
			}
		}
	}
	for _, l := range labels {
		var ix []int
		var err error
		switch v := l.(type) {
		case string:
			ix, err = da.time.FindLabel(v)
		case time.Time:
			ix, err = da.time.FindExact(v)
		default:
			err = fmt.Errorf("%w: time label %T", ErrKey, l)
		}
		if err != nil {
			return nil, err
		}
		add(ix)
	}
	if len(out) == 0 {
		return nil, timeidx.ErrNoTimesteps
	}
	return out, nil
}

// Where returns the values selected by a boolean mask as a flat 1-D array
// with undefined geometry. The mask must be a comparison result (Bool
// dtype) of identical shape. Returns (nil, nil) when nothing matches.
func (da *DataArray) Where(mask *DataArray) (*DataArray, error) {
	if mask == nil {
		return nil, nd.ErrMask
	}
	vals, err := da.values.MaskSelect(mask.values)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}
	buf, err := nd.FromVector(vals)
	if err != nil {
		return nil, err
	}
	return &DataArray{
		values: buf,
		time:   timeidx.Single(da.time.Start()),
		dims:   []string{"x"},
		geom:   geometry.Undefined{},
		item:   da.item,
	}, nil
}

// SetWhere assigns v in place at every position where mask is true.
func (da *DataArray) SetWhere(mask *DataArray, v float64) error {
	if mask == nil {
		return nd.ErrMask
	}
	return da.values.MaskAssign(mask.values, v)
}

// SetWhereValues assigns values in place, in row-major order, at the
// positions where mask is true.
func (da *DataArray) SetWhereValues(mask *DataArray, values []float64) error {
	if mask == nil {
		return nd.ErrMask
	}
	return da.values.MaskAssignValues(mask.values, values)
}

// ReplaceDeleteValues swaps the file-format delete sentinel for NaN in
// place.
func (da *DataArray) ReplaceDeleteValues() {
	mask := da.values.CompareScalar(DeleteValue, func(a, b float64) bool { return a == b })
	_ = da.values.MaskAssign(mask, math.NaN())
}
