// Positional selection. iselPos is the single workhorse: every selection
// path (Isel, IselDims, Sel, Get) funnels into it so the dims/geometry/
// elevation bookkeeping lives in one place.

package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/korsvik/tidemark/geometry"
	"github.com/korsvik/tidemark/nd"
)

// Isel selects entries along one axis by position. A single-position
// selection (At) collapses the axis; an empty selection returns (nil, nil)
// as a signal, not an error.
func (da *DataArray) Isel(ax Axis, idx Indexer) (*DataArray, error) {
	pos, err := ax.resolveOne(da)
	if err != nil {
		return nil, err
	}
	n, err := da.values.DimLen(pos)
	if err != nil {
		return nil, err
	}
	ix, collapse, err := idx.indices(n)
	if err != nil {
		return nil, err
	}
	if len(ix) == 0 {
		return nil, nil
	}
	return da.iselPos(pos, ix, collapse)
}

// IselDims selects by named axes. A single entry is plain Isel; the one
// supported multi-entry form is the x+y pair on a 2-D grid, which runs as
// two sequential single-axis selections.
func (da *DataArray) IselDims(sel map[string]Indexer) (*DataArray, error) {
	switch len(sel) {
	case 0:
		return nil, fmt.Errorf("%w: empty selection", ErrKey)
	case 1:
		for name, idx := range sel {
			return da.Isel(AxisNamed(name), idx)
		}
	case 2:
		_, hasX := sel["x"]
		_, hasY := sel["y"]
		if hasX && hasY && da.geom.Kind() == geometry.KindGrid2D {
			out, err := da.Isel(AxisNamed("y"), sel["y"])
			if err != nil || out == nil {
				return out, err
			}
			return out.Isel(AxisNamed("x"), sel["x"])
		}
	}
	return nil, fmt.Errorf("%w: selection along multiple axes", ErrNotImplemented)
}

// iselPos applies an already-resolved index set to one buffer axis.
// Indices must be in range; collapse removes the axis from dims when the
// set has exactly one entry.
func (da *DataArray) iselPos(pos int, ix []int, collapse bool) (*DataArray, error) {
	collapse = collapse && len(ix) == 1 && len(da.dims) > 1

	var values *nd.Array
	var err error
	if collapse {
		values, err = da.values.TakeAt(pos, ix[0])
	} else {
		values, err = da.values.Take(pos, ix)
	}
	if err != nil {
		return nil, err
	}

	dims := slices.Clone(da.dims)
	if collapse {
		dims = slices.Delete(dims, pos, pos+1)
	}

	if pos == da.timeAxisPos() {
		t, err := da.time.Subset(ix)
		if err != nil {
			return nil, err
		}
		zn := da.elevation
		if zn != nil && zn.NDim() == 2 {
			if zn, err = zn.Take(0, ix); err != nil {
				return nil, err
			}
		}
		return da.derive(values, t, dims, da.geom, zn), nil
	}
	return da.iselSpatial(values, dims, pos-da.spatialOffset(), ix)
}

// iselSpatial subsets the geometry along its own axis and re-keys the
// elevation array. Subsetting a layered mesh by element changes which
// nodes are referenced, so the elevation's node axis is reduced to exactly
// the surviving node set rather than sliced in place.
func (da *DataArray) iselSpatial(values *nd.Array, dims []string, saxis int, ix []int) (*DataArray, error) {
	newGeom := geometry.Geometry(geometry.Undefined{})
	if sub, ok := da.geom.(geometry.Subsetter); ok {
		g, err := sub.Isel(ix, saxis)
		switch {
		case errors.Is(err, geometry.ErrAxis):
			// the geometry cannot represent a subset along this axis
		case err != nil:
			return nil, err
		default:
			newGeom = g
		}
	}

	zn := da.elevation
	if zn != nil {
		layered, wasLayered := da.geom.(*geometry.MeshLayered)
		if wasLayered && saxis == 0 && newGeom.IsLayered() {
			nodes, err := layered.NodesForElements(ix)
			if err != nil {
				return nil, err
			}
			if zn, err = zn.Take(zn.NDim()-1, nodes); err != nil {
				return nil, err
			}
		} else {
			zn = nil
		}
	}
	return da.derive(values, da.time, dims, newGeom, zn), nil
}
