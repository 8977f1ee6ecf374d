package geometry

import "github.com/paulmach/orb"

// Query is a label-based spatial selection request. Exactly the criteria
// the target geometry understands may be set; others report ErrQuery.
type Query struct {
	// X, Y, Z select the location nearest to a coordinate.
	X, Y, Z *float64

	// Coords is the (x, y) or (x, y, z) alternative to X/Y/Z.
	Coords []float64

	// Area selects everything inside a bounding box.
	Area *orb.Bound

	// Layers selects by vertical layer (layered meshes only).
	Layers *LayerSel
}

// LayerSel selects elements of a layered mesh by vertical layer.
type LayerSel struct {
	// Top selects, per water column, the uppermost element.
	Top bool

	// Bottom selects, per water column, the lowest element.
	Bottom bool

	// Layers selects explicit layer numbers counted from the bottom;
	// negative numbers count from the top (-1 is the top layer).
	Layers []int
}

// IndexResult is the outcome of a label lookup: either a flat index list,
// or — for geometries with two independent spatial axes — a pair of
// per-axis lists to be applied as two successive positional selections
// (rows on the leading spatial axis, then columns). The constrained flags
// distinguish a side the query bound (an empty list then means no hits)
// from a side it left alone (whose axis must be kept untouched).
type IndexResult struct {
	Indices []int

	Paired bool
	Rows   []int // leading spatial axis (y for grids)
	Cols   []int // following spatial axis (x for grids)

	RowsConstrained bool
	ColsConstrained bool
}

// Flat wraps a flat index list.
func Flat(indices []int) IndexResult { return IndexResult{Indices: indices} }

// Pair wraps a row/column index pair with both sides constrained.
func Pair(rows, cols []int) IndexResult {
	return IndexResult{Paired: true, Rows: rows, Cols: cols, RowsConstrained: true, ColsConstrained: true}
}

// PairRows wraps a row-only selection; the column axis is unconstrained.
func PairRows(rows []int) IndexResult {
	return IndexResult{Paired: true, Rows: rows, RowsConstrained: true}
}

// PairCols wraps a column-only selection; the row axis is unconstrained.
func PairCols(cols []int) IndexResult {
	return IndexResult{Paired: true, Cols: cols, ColsConstrained: true}
}

// normXY extracts an (x, y) target from a query, honoring Coords.
func (q Query) normXY() (x, y float64, ok bool) {
	if len(q.Coords) >= 2 {
		return q.Coords[0], q.Coords[1], true
	}
	if q.X != nil && q.Y != nil {
		return *q.X, *q.Y, true
	}
	return 0, 0, false
}

// normZ extracts the vertical target, honoring Coords.
func (q Query) normZ() (float64, bool) {
	if len(q.Coords) >= 3 {
		return q.Coords[2], true
	}
	if q.Z != nil {
		return *q.Z, true
	}
	return 0, false
}
