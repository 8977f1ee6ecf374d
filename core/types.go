// This file declares DataArray, its construction options and the plain
// accessors. Construction and validation live in construct.go.

package core

import (
	"log/slog"
	"slices"
	"time"

	"github.com/korsvik/tidemark/geometry"
	"github.com/korsvik/tidemark/item"
	"github.com/korsvik/tidemark/nd"
	"github.com/korsvik/tidemark/timeidx"
)

// DeleteValue is the sentinel marking missing readings in model output
// files. Callers typically replace it with NaN before computing.
const DeleteValue = 1.0e-35

// timeDim is the reserved name of the leading temporal axis.
const timeDim = "time"

// DataArray is a labeled, geometry-aware N-dimensional array. The zero
// value is not usable; construct with New.
type DataArray struct {
	values    *nd.Array
	time      timeidx.Index
	dims      []string
	geom      geometry.Geometry
	elevation *nd.Array // nil unless the geometry is layered
	item      item.Item
}

// Option configures construction of a DataArray.
type Option func(*config)

type config struct {
	item      *item.Item
	geom      geometry.Geometry
	elevation *nd.Array
	dims      []string
	logger    *slog.Logger
}

// WithItem attaches item metadata (name, quantity, unit).
func WithItem(it item.Item) Option {
	return func(c *config) { c.item = &it }
}

// WithGeometry attaches a spatial geometry; its extent is validated
// against the buffer shape.
func WithGeometry(g geometry.Geometry) Option {
	return func(c *config) { c.geom = g }
}

// WithElevation attaches per-node vertical positions, shape (nNodes) or
// (nTimesteps, nNodes). Only valid for layered mesh geometries.
func WithElevation(zn *nd.Array) Option {
	return func(c *config) { c.elevation = zn }
}

// WithDims fixes the axis names explicitly instead of inferring them.
// The rank must match the buffer; "time", if present, must come first.
func WithDims(dims ...string) Option {
	return func(c *config) { c.dims = slices.Clone(dims) }
}

// WithLogger routes construction advisories (e.g. missing geometry on
// multi-dimensional data) to the given logger instead of slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Values returns the owned buffer. Mutating it through SetAt bypasses the
// consistency checks; prefer SetValues, SetWhere and the operators.
func (da *DataArray) Values() *nd.Array { return da.values }

// SetValues replaces the buffer contents in place. The source must have
// the exact shape of the existing buffer.
func (da *DataArray) SetValues(src *nd.Array) error {
	return da.values.CopyFrom(src)
}

// Time returns a copy of the time index.
func (da *DataArray) Time() timeidx.Index { return da.time.Clone() }

// Dims returns a copy of the ordered axis names.
func (da *DataArray) Dims() []string { return slices.Clone(da.dims) }

// Geometry returns the spatial geometry (never nil; Undefined when absent).
func (da *DataArray) Geometry() geometry.Geometry { return da.geom }

// Elevation returns the per-node elevation buffer, or nil.
func (da *DataArray) Elevation() *nd.Array { return da.elevation }

// Item returns the attached metadata.
func (da *DataArray) Item() item.Item { return da.item }

// Name returns the item name.
func (da *DataArray) Name() string { return da.item.Name }

// Shape returns the buffer shape.
func (da *DataArray) Shape() []int { return da.values.Shape() }

// NDim returns the buffer rank.
func (da *DataArray) NDim() int { return da.values.NDim() }

// HasTimeAxis reports whether "time" is a dimension.
func (da *DataArray) HasTimeAxis() bool {
	return len(da.dims) > 0 && da.dims[0] == timeDim
}

// NTimesteps returns the time index length.
func (da *DataArray) NTimesteps() int { return da.time.Len() }

// StartTime returns the first timestamp.
func (da *DataArray) StartTime() time.Time { return da.time.Start() }

// EndTime returns the last timestamp.
func (da *DataArray) EndTime() time.Time { return da.time.End() }

// Timestep returns the step in seconds for equidistant time axes.
func (da *DataArray) Timestep() (float64, bool) { return da.time.Timestep() }

// timeAxisPos returns the buffer axis of "time", or -1.
func (da *DataArray) timeAxisPos() int {
	if da.HasTimeAxis() {
		return 0
	}
	return -1
}

// spatialOffset returns the buffer axis where spatial dims begin.
func (da *DataArray) spatialOffset() int {
	if da.HasTimeAxis() {
		return 1
	}
	return 0
}

// derive assembles a new DataArray around already-validated parts,
// copying the metadata so derived arrays never alias it.
func (da *DataArray) derive(values *nd.Array, t timeidx.Index, dims []string,
	g geometry.Geometry, zn *nd.Array) *DataArray {
	if g == nil {
		g = geometry.Undefined{}
	}
	return &DataArray{
		values:    values,
		time:      t.Clone(),
		dims:      slices.Clone(dims),
		geom:      g,
		elevation: zn,
		item:      da.item,
	}
}
