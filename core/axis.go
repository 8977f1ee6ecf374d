// Axis and Indexer: the two halves of a positional selection. An Axis
// picks which dimension, an Indexer picks which entries along it.

package core

import (
	"fmt"
	"slices"
)

type axisMode int

const (
	axisByPos axisMode = iota
	axisByName
	axisAllSpace
)

// Axis identifies one dimension of a DataArray, by position, by name, or
// by the synthetic selectors AxisTime and AxisSpace.
type Axis struct {
	mode axisMode
	pos  int
	name string
}

// AxisAt addresses a dimension by position. Negative positions count from
// the end.
func AxisAt(i int) Axis { return Axis{mode: axisByPos, pos: i} }

// AxisNamed addresses a dimension by its name in dims.
func AxisNamed(name string) Axis { return Axis{mode: axisByName, name: name} }

// AxisTime addresses the temporal axis.
var AxisTime = AxisNamed(timeDim)

// AxisSpace addresses every non-time axis at once. Only aggregation
// accepts it.
var AxisSpace = Axis{mode: axisAllSpace}

// resolve maps the axis to concrete buffer positions.
func (ax Axis) resolve(da *DataArray) ([]int, error) {
	switch ax.mode {
	case axisAllSpace:
		var out []int
		for i, d := range da.dims {
			if d != timeDim {
				out = append(out, i)
			}
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("%w: no spatial axes in %v", ErrAxis, da.dims)
		}
		return out, nil
	case axisByName:
		i := slices.Index(da.dims, ax.name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q not in %v", ErrAxis, ax.name, da.dims)
		}
		return []int{i}, nil
	default:
		p := ax.pos
		if p < 0 {
			p += len(da.dims)
		}
		if p < 0 || p >= len(da.dims) {
			return nil, fmt.Errorf("%w: position %d of %d dims", ErrAxis, ax.pos, len(da.dims))
		}
		return []int{p}, nil
	}
}

// resolveOne is resolve for contexts where exactly one axis is legal.
func (ax Axis) resolveOne(da *DataArray) (int, error) {
	pos, err := ax.resolve(da)
	if err != nil {
		return 0, err
	}
	if len(pos) != 1 {
		return 0, fmt.Errorf("%w: selection needs a single axis", ErrAxis)
	}
	return pos[0], nil
}

// Indexer selects entries along one axis. Implementations are At (single
// position, collapses the axis), List (keeps the axis) and Span (half-open
// slice, keeps the axis).
type Indexer interface {
	// indices expands the indexer against an axis of length n. collapse
	// reports whether a resulting single entry removes the axis.
	indices(n int) (ix []int, collapse bool, err error)
}

type atIndexer int

// At selects a single position; the axis collapses out of dims. Negative
// positions count from the end.
func At(i int) Indexer { return atIndexer(i) }

func (a atIndexer) indices(n int) ([]int, bool, error) {
	i := int(a)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, false, fmt.Errorf("%w: index %d of %d", ErrKey, int(a), n)
	}
	return []int{i}, true, nil
}

type listIndexer []int

// List selects the given positions; the axis is kept even for a single
// entry. An empty list yields an empty selection.
func List(ix ...int) Indexer { return listIndexer(ix) }

func (l listIndexer) indices(n int) ([]int, bool, error) {
	out := make([]int, len(l))
	for k, i := range l {
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return nil, false, fmt.Errorf("%w: index %d of %d", ErrKey, l[k], n)
		}
		out[k] = i
	}
	return out, false, nil
}

// Span is a half-open slice [Start, Stop) with an optional step. A zero
// Stop means "through the end"; negative bounds count from the end; a
// zero Step means 1.
type Span struct {
	Start, Stop, Step int
}

func (s Span) indices(n int) ([]int, bool, error) {
	start, stop, step := s.Start, s.Stop, s.Step
	if step == 0 {
		step = 1
	}
	if step < 0 {
		return nil, false, fmt.Errorf("%w: span step %d", ErrKey, step)
	}
	if start < 0 {
		start += n
	}
	if stop <= 0 {
		stop += n
	}
	if start < 0 || stop > n || start > stop {
		return nil, false, fmt.Errorf("%w: span [%d:%d] of %d", ErrKey, s.Start, s.Stop, n)
	}
	var out []int
	for i := start; i < stop; i += step {
		out = append(out, i)
	}
	return out, false, nil
}
