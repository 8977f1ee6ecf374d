package geometry

import (
	"fmt"
	"math"
	"slices"
)

// Grid1D is a regular (or explicitly-coordinated) one-dimensional grid.
type Grid1D struct {
	x    []float64
	axis string
}

// NewGrid1D builds an equidistant 1-D grid of nx points starting at x0.
func NewGrid1D(x0, dx float64, nx int) *Grid1D {
	x := make([]float64, nx)
	for i := range x {
		x[i] = x0 + float64(i)*dx
	}
	return &Grid1D{x: x, axis: "x"}
}

// NewGrid1DFromCoords builds a 1-D grid from explicit coordinates.
// axisName defaults to "x" when empty (line spectra use "node").
func NewGrid1DFromCoords(coords []float64, axisName string) *Grid1D {
	if axisName == "" {
		axisName = "x"
	}
	return &Grid1D{x: slices.Clone(coords), axis: axisName}
}

// Kind returns KindGrid1D.
func (g *Grid1D) Kind() Kind       { return KindGrid1D }
func (g *Grid1D) IsLayered() bool  { return false }
func (g *Grid1D) IsSpectral() bool { return false }
func (g *Grid1D) sealed()          {}

// NX returns the number of grid points.
func (g *Grid1D) NX() int { return len(g.x) }

// X returns a copy of the point coordinates.
func (g *Grid1D) X() []float64 { return slices.Clone(g.x) }

// AxisName returns the name of the spatial axis ("x" by default).
func (g *Grid1D) AxisName() string { return g.axis }

// DX returns the grid spacing (0 for grids with fewer than two points).
func (g *Grid1D) DX() float64 {
	if len(g.x) < 2 {
		return 0
	}
	return g.x[1] - g.x[0]
}

// String describes the grid.
func (g *Grid1D) String() string { return fmt.Sprintf("Grid1D (n=%d, dx=%g)", g.NX(), g.DX()) }

// Isel subsets the grid. A single index collapses it to Undefined
// (a lone grid point carries no usable geometry).
func (g *Grid1D) Isel(indices []int, axis int) (Geometry, error) {
	if axis != 0 {
		return nil, fmt.Errorf("%w: axis %d of Grid1D", ErrAxis, axis)
	}
	x, err := pick(g.x, indices)
	if err != nil {
		return nil, err
	}
	if len(x) == 1 {
		return Undefined{}, nil
	}
	return &Grid1D{x: x, axis: g.axis}, nil
}

// FindIndex resolves an x coordinate to the nearest grid point, or an
// area to the covered index range.
func (g *Grid1D) FindIndex(q Query) (IndexResult, error) {
	if q.Area != nil {
		var out []int
		for i, xv := range g.x {
			if xv >= q.Area.Min[0] && xv <= q.Area.Max[0] {
				out = append(out, i)
			}
		}
		return Flat(out), nil
	}
	if q.X != nil || len(q.Coords) >= 1 {
		target := 0.0
		if q.X != nil {
			target = *q.X
		} else {
			target = q.Coords[0]
		}
		return Flat([]int{nearest1D(g.x, target)}), nil
	}
	return IndexResult{}, fmt.Errorf("%w: Grid1D supports x and area", ErrQuery)
}

// Interpolant returns the linear interpolation stencil for position x.
// Positions outside the grid clamp to the edge point.
func (g *Grid1D) Interpolant(x, _ float64, _ int) ([]int, []float64, error) {
	if len(g.x) == 1 {
		return []int{0}, []float64{1}, nil
	}
	l := 0
	for l < len(g.x)-2 && g.x[l+1] <= x {
		l++
	}
	span := g.x[l+1] - g.x[l]
	frac := 0.0
	if span != 0 {
		frac = (x - g.x[l]) / span
	}
	frac = math.Max(0, math.Min(1, frac))
	return []int{l, l + 1}, []float64{1 - frac, frac}, nil
}

// Grid2D is a regular two-dimensional grid; the leading spatial axis is y.
// Grids collapsed out of a Grid3D carry their original axis names.
type Grid2D struct {
	x, y         []float64
	xName, yName string
	projection   string
}

// NewGrid2D builds an equidistant 2-D grid.
func NewGrid2D(x0, dx float64, nx int, y0, dy float64, ny int) *Grid2D {
	g := &Grid2D{x: make([]float64, nx), y: make([]float64, ny)}
	for i := range g.x {
		g.x[i] = x0 + float64(i)*dx
	}
	for i := range g.y {
		g.y[i] = y0 + float64(i)*dy
	}
	return g
}

// NewGrid2DFromCoords builds a 2-D grid from explicit axis coordinates.
func NewGrid2DFromCoords(x, y []float64, projection string) *Grid2D {
	return &Grid2D{x: slices.Clone(x), y: slices.Clone(y), projection: projection}
}

// Kind returns KindGrid2D.
func (g *Grid2D) Kind() Kind       { return KindGrid2D }
func (g *Grid2D) IsLayered() bool  { return false }
func (g *Grid2D) IsSpectral() bool { return false }
func (g *Grid2D) sealed()          {}

// NX returns the number of columns.
func (g *Grid2D) NX() int { return len(g.x) }

// NY returns the number of rows.
func (g *Grid2D) NY() int { return len(g.y) }

// X returns a copy of the column coordinates.
func (g *Grid2D) X() []float64 { return slices.Clone(g.x) }

// Y returns a copy of the row coordinates.
func (g *Grid2D) Y() []float64 { return slices.Clone(g.y) }

// Projection returns the projection string ("LONG/LAT" marks geographic).
func (g *Grid2D) Projection() string { return g.projection }

// AxisNames returns the names of the leading and trailing spatial axes,
// ("y", "x") unless the grid came out of a Grid3D collapse.
func (g *Grid2D) AxisNames() (string, string) {
	yn, xn := g.yName, g.xName
	if yn == "" {
		yn = "y"
	}
	if xn == "" {
		xn = "x"
	}
	return yn, xn
}

// String describes the grid.
func (g *Grid2D) String() string { return fmt.Sprintf("Grid2D (ny=%d, nx=%d)", g.NY(), g.NX()) }

// Isel subsets the grid along axis 0 (y) or 1 (x). Collapsing an axis to a
// single row or column yields a Grid1D over the surviving axis.
func (g *Grid2D) Isel(indices []int, axis int) (Geometry, error) {
	yn, xn := g.AxisNames()
	switch axis {
	case 0:
		y, err := pick(g.y, indices)
		if err != nil {
			return nil, err
		}
		if len(y) == 1 {
			return &Grid1D{x: slices.Clone(g.x), axis: xn}, nil
		}
		return &Grid2D{x: slices.Clone(g.x), y: y, xName: g.xName, yName: g.yName, projection: g.projection}, nil
	case 1:
		x, err := pick(g.x, indices)
		if err != nil {
			return nil, err
		}
		if len(x) == 1 {
			return &Grid1D{x: slices.Clone(g.y), axis: yn}, nil
		}
		return &Grid2D{x: x, y: slices.Clone(g.y), xName: g.xName, yName: g.yName, projection: g.projection}, nil
	default:
		return nil, fmt.Errorf("%w: axis %d of Grid2D", ErrAxis, axis)
	}
}

// FindIndex resolves coordinates or an area to a row/column index pair.
// Rows address the leading (y) axis, Cols the x axis; a side the query
// does not constrain is left unset, while a constrained side with no
// hits comes back empty.
func (g *Grid2D) FindIndex(q Query) (IndexResult, error) {
	if q.Area != nil {
		var rows, cols []int
		for i, yv := range g.y {
			if yv >= q.Area.Min[1] && yv <= q.Area.Max[1] {
				rows = append(rows, i)
			}
		}
		for i, xv := range g.x {
			if xv >= q.Area.Min[0] && xv <= q.Area.Max[0] {
				cols = append(cols, i)
			}
		}
		return Pair(rows, cols), nil
	}
	x, y, haveXY := q.normXY()
	if haveXY {
		return Pair([]int{nearest1D(g.y, y)}, []int{nearest1D(g.x, x)}), nil
	}
	if q.X != nil {
		return PairCols([]int{nearest1D(g.x, *q.X)}), nil
	}
	if q.Y != nil {
		return PairRows([]int{nearest1D(g.y, *q.Y)}), nil
	}
	return IndexResult{}, fmt.Errorf("%w: Grid2D supports x, y, coords and area", ErrQuery)
}

// Grid3D is a regular three-dimensional grid; spatial axes are z, y, x.
type Grid3D struct {
	x, y, z []float64
}

// NewGrid3DFromCoords builds a 3-D grid from explicit axis coordinates.
func NewGrid3DFromCoords(x, y, z []float64) *Grid3D {
	return &Grid3D{x: slices.Clone(x), y: slices.Clone(y), z: slices.Clone(z)}
}

// Kind returns KindGrid3D.
func (g *Grid3D) Kind() Kind       { return KindGrid3D }
func (g *Grid3D) IsLayered() bool  { return false }
func (g *Grid3D) IsSpectral() bool { return false }
func (g *Grid3D) sealed()          {}

// NX returns the number of x points.
func (g *Grid3D) NX() int { return len(g.x) }

// NY returns the number of y points.
func (g *Grid3D) NY() int { return len(g.y) }

// NZ returns the number of z levels.
func (g *Grid3D) NZ() int { return len(g.z) }

// X returns a copy of the x coordinates.
func (g *Grid3D) X() []float64 { return slices.Clone(g.x) }

// Y returns a copy of the y coordinates.
func (g *Grid3D) Y() []float64 { return slices.Clone(g.y) }

// Z returns a copy of the z coordinates.
func (g *Grid3D) Z() []float64 { return slices.Clone(g.z) }

// String describes the grid.
func (g *Grid3D) String() string {
	return fmt.Sprintf("Grid3D (nz=%d, ny=%d, nx=%d)", g.NZ(), g.NY(), g.NX())
}

// Isel subsets the grid along axis 0 (z), 1 (y) or 2 (x). Collapsing an
// axis yields a Grid2D over the surviving axes.
func (g *Grid3D) Isel(indices []int, axis int) (Geometry, error) {
	var target *[]float64
	switch axis {
	case 0:
		target = &g.z
	case 1:
		target = &g.y
	case 2:
		target = &g.x
	default:
		return nil, fmt.Errorf("%w: axis %d of Grid3D", ErrAxis, axis)
	}
	sub, err := pick(*target, indices)
	if err != nil {
		return nil, err
	}
	nz, ny, nx := slices.Clone(g.z), slices.Clone(g.y), slices.Clone(g.x)
	switch axis {
	case 0:
		nz = sub
	case 1:
		ny = sub
	case 2:
		nx = sub
	}
	if len(sub) == 1 {
		switch axis {
		case 0:
			return &Grid2D{x: nx, y: ny}, nil
		case 1:
			return &Grid2D{x: nx, y: nz, yName: "z"}, nil
		default:
			return &Grid2D{x: ny, y: nz, yName: "z", xName: "y"}, nil
		}
	}
	return &Grid3D{x: nx, y: ny, z: nz}, nil
}

// FindIndex is not supported for 3-D grids; select by position instead.
func (g *Grid3D) FindIndex(Query) (IndexResult, error) {
	return IndexResult{}, fmt.Errorf("%w: label selection on Grid3D", ErrNotImplemented)
}

// pick subsets a coordinate slice, normalizing negative indices.
func pick(coords []float64, indices []int) ([]float64, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: empty index list", ErrIndex)
	}
	out := make([]float64, len(indices))
	for i, ix := range indices {
		if ix < 0 {
			ix += len(coords)
		}
		if ix < 0 || ix >= len(coords) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndex, indices[i], len(coords))
		}
		out[i] = coords[ix]
	}
	return out, nil
}

// nearest1D returns the index of the coordinate closest to target.
func nearest1D(coords []float64, target float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, v := range coords {
		if d := math.Abs(v - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
