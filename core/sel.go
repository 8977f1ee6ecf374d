// Label-based selection. Spatial criteria resolve through the geometry's
// Finder capability; time criteria route through Isel (integer positions)
// or through the time index's label lookup.

package core

import (
	"fmt"
	"time"

	"github.com/korsvik/tidemark/geometry"
	"github.com/korsvik/tidemark/timeidx"
	"github.com/paulmach/orb"
)

// TimeSel is a temporal selection criterion. Exactly one field group
// applies: integer positions (Step/Steps), an exact instant (At), the
// closest step to an instant (Nearest), another array's time axis
// (Times), a partial-date label (Label) or a label range (From/To, end
// inclusive).
type TimeSel struct {
	Step    *int
	Steps   []int
	At      *time.Time
	Nearest *time.Time
	Times   timeidx.Index
	Label   string
	From    string
	To      string
}

// Query combines a temporal criterion with spatial ones. Spatial fields
// mirror geometry.Query; coordinates resolve to the nearest entity, Area
// to every covered entity, Layers to the matching mesh layers.
type Query struct {
	Time   *TimeSel
	X, Y   *float64
	Z      *float64
	Coords []float64
	Area   *orb.Bound
	Layers *geometry.LayerSel
}

func (q Query) hasSpatial() bool {
	return q.X != nil || q.Y != nil || q.Z != nil ||
		len(q.Coords) > 0 || q.Area != nil || q.Layers != nil
}

// Sel selects by labels and coordinates. Spatial criteria are applied
// first, then the time criterion. Like Isel it returns (nil, nil) for an
// empty selection.
func (da *DataArray) Sel(q Query) (*DataArray, error) {
	out := da
	var err error
	if q.hasSpatial() {
		if out, err = out.selSpatial(q); err != nil || out == nil {
			return out, err
		}
	}
	if q.Time != nil {
		out, err = out.selTime(*q.Time)
	}
	return out, err
}

// selSpatial resolves the spatial criteria to index sets and applies them
// positionally. Coordinate queries collapse singleton hits (the nearest
// entity is a point answer); area and layer queries keep the axis.
func (da *DataArray) selSpatial(q Query) (*DataArray, error) {
	finder, ok := da.geom.(geometry.Finder)
	if !ok {
		return nil, fmt.Errorf("%w: geometry %s has no label lookup", ErrKey, da.geom.Kind())
	}
	res, err := finder.FindIndex(geometry.Query{
		X: q.X, Y: q.Y, Z: q.Z,
		Coords: q.Coords,
		Area:   q.Area,
		Layers: q.Layers,
	})
	if err != nil {
		return nil, err
	}
	collapse := q.Area == nil && q.Layers == nil

	if !res.Paired {
		if len(res.Indices) == 0 {
			return nil, nil
		}
		return da.iselPos(da.spatialOffset(), res.Indices, collapse)
	}

	// Paired result: rows address the leading spatial axis, cols the next
	// one. Rows go first; a collapsed row axis shifts the column axis down.
	// A constrained side with no hits empties the whole selection; an
	// unconstrained side keeps its axis untouched.
	out := da
	base := da.spatialOffset()
	colAxis := base + 1
	if res.RowsConstrained {
		if len(res.Rows) == 0 {
			return nil, nil
		}
		if out, err = out.iselPos(base, res.Rows, collapse); err != nil || out == nil {
			return out, err
		}
		if collapse && len(res.Rows) == 1 {
			colAxis--
		}
	}
	if res.ColsConstrained {
		if len(res.Cols) == 0 {
			return nil, nil
		}
		if out, err = out.iselPos(colAxis, res.Cols, collapse); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// selTime resolves the temporal criterion. Integer positions route to the
// positional engine; labels and instants go through the index lookup and
// collapse when exactly one step matches.
func (da *DataArray) selTime(ts TimeSel) (*DataArray, error) {
	if !da.HasTimeAxis() {
		return nil, fmt.Errorf("%w: %q not in %v", ErrAxis, timeDim, da.dims)
	}
	switch {
	case ts.Step != nil:
		return da.Isel(AxisTime, At(*ts.Step))
	case len(ts.Steps) > 0:
		return da.Isel(AxisTime, List(ts.Steps...))
	case ts.At != nil:
		ix, err := da.time.FindExact(*ts.At)
		if err != nil {
			return nil, err
		}
		return da.iselPos(0, ix, true)
	case ts.Nearest != nil:
		i, err := da.time.FindNearest(*ts.Nearest)
		if err != nil {
			return nil, err
		}
		return da.iselPos(0, []int{i}, true)
	case len(ts.Times) > 0:
		var ix []int
		for _, v := range ts.Times {
			hits, err := da.time.FindExact(v)
			if err != nil {
				return nil, err
			}
			ix = append(ix, hits...)
		}
		return da.iselPos(0, ix, false)
	case ts.Label != "":
		ix, err := da.time.FindLabel(ts.Label)
		if err != nil {
			return nil, err
		}
		return da.iselPos(0, ix, true)
	case ts.From != "" || ts.To != "":
		ix, err := da.time.FindLabelRange(ts.From, ts.To)
		if err != nil {
			return nil, err
		}
		if len(ix) == 0 {
			return nil, nil
		}
		return da.iselPos(0, ix, false)
	default:
		return nil, fmt.Errorf("%w: empty time criterion", ErrKey)
	}
}
