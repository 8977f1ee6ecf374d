// Package core provides DataArray, a labeled, geometry-aware N-dimensional
// array for time-oriented scientific data.
//
// A DataArray D = (values, time, dims, geometry, elevation, item) couples a
// raw numeric buffer with everything needed to interpret it:
//
//   - values    - a dense row-major nd.Array, the single source of truth
//     for size-per-axis
//   - time      - an ordered timeidx.Index; length 1 for static data, else
//     equal to the leading axis length
//   - dims      - the ordered axis names; "time" is always first if present
//   - geometry  - the spatial layout the trailing axes map onto (regular
//     grids, flexible meshes, spectra), see package geometry
//   - elevation - optional per-(time, node) vertical positions, layered
//     meshes only
//   - item      - name, physical quantity and unit metadata, see package item
//
// Why use core.DataArray?
//
//   - One construction check - dims, geometry extent, time length and
//     elevation shape are cross-validated up front, so every derived array
//     is consistent by construction.
//   - Positional and label selection - Isel/IselDims for index-based
//     subsetting, Sel for coordinate, area, layer and time-label queries,
//     Get for mixed per-axis keys.
//   - Axis-aware reduction - Aggregate and the named reductions keep the
//     (dims, geometry, time) bookkeeping straight so a mean over time keeps
//     its mesh while a mean over space drops it.
//   - Metadata-safe arithmetic - elementwise operators propagate or
//     invalidate the physical unit according to fixed rules instead of
//     silently mislabeling derived quantities.
//
// Every selection, aggregation and arithmetic operation returns a new
// DataArray. The only sanctioned in-place mutators are SetValues, SetWhere,
// SetWhereValues and Flip; everything else treats the receiver as
// read-only, so concurrent reads are safe as long as no mutator runs.
package core
