// Package tidemark is your in-memory toolkit for labeled, geometry-aware
// scientific arrays — time series, gridded fields, flexible meshes and
// wave spectra, with selection, math and statistics that keep the
// metadata in sync with the numbers.
//
// 🚀 What is tidemark?
//
//	A modern library for time-oriented model results that brings together:
//		• DataArray: values + time axis + named dims + spatial geometry + item metadata
//		• Selection: positional (Isel, Get) and label/coordinate based (Sel)
//		• Geometries: 1/2/3-D grids, flexible meshes (layered too) and spectra
//		• Statistics: axis-aware Max/Min/Mean/Std, NaN variants, quantiles, weighted averages
//		• Arithmetic: element-wise operators with unit-preservation rules
//		• Interpolation: in time (linear, with extrapolation control) and in space
//		• Export: a generic coordinate-labeled form for external array libraries
//
// ✨ Why choose tidemark?
//
//   - Metadata that never drifts – every subset, reduction and operator
//     rebuilds dims, time, geometry and item together
//   - Predictable selection – one collapse rule everywhere, explicit
//     indexer types instead of overloaded syntax
//   - Pure Go core – float64 buffers, explicit errors, no hidden state
//
// Everything is organized under five subpackages:
//
//	nd/       — dense row-major float64 arrays: take, reduce, broadcast, mask
//	timeidx/  — monotonic time axes: exact, partial-label and range lookup
//	item/     — name, physical quantity and unit metadata
//	geometry/ — grid, mesh and spectral geometries with capability interfaces
//	core/     — the DataArray and Dataset types tying it all together
//
// Quick picture:
//
//	    time ──▶  t0   t1   t2
//	    x=0      1.0  1.2  1.1
//	    x=100    0.8  0.9  1.0
//
//	a (time, x) water-level field on a 1-D grid.
//
// Dive into README.md for full examples and the selection-rule reference.
//
//	go get github.com/korsvik/tidemark
package tidemark
