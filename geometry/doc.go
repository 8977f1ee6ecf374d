// Package geometry defines the closed set of spatial descriptors a
// tidemark data array can carry, and the narrow capability surface the
// array consumes:
//
//   - counts (points, elements, nodes, frequencies, directions),
//   - IsLayered / IsSpectral flags,
//   - positional subsetting (the Subsetter capability),
//   - label lookup (the Finder capability) returning either a flat index
//     list or a pair of per-axis index lists,
//   - node lookup for element subsets of layered meshes,
//   - point interpolants (the Interpolator capability).
//
// The variant set is sealed: Undefined, Point2D, Point3D, Grid1D, Grid2D,
// Grid3D, Mesh, MeshLayered, PointSpectrum, LineSpectrum and AreaSpectrum.
// Dispatch over variants happens through the capability interfaces and a
// single type switch per concern — never through scattered type tests.
//
// Coordinate math is built on github.com/paulmach/orb: bounding boxes are
// orb.Bound, nearest lookups use planar distance for projected geometries
// and geodesic distance (orb/geo) for geographic ones, and collapsed
// elements become centroid points.
package geometry
