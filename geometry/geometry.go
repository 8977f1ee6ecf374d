package geometry

import (
	"errors"
	"fmt"
)

// Sentinel errors for geometry operations.
var (
	// ErrIndex indicates a spatial index outside the geometry.
	ErrIndex = errors.New("geometry: index out of range")

	// ErrAxis indicates an axis the geometry does not have.
	ErrAxis = errors.New("geometry: no such spatial axis")

	// ErrQuery indicates a label query the geometry cannot resolve.
	ErrQuery = errors.New("geometry: unsupported spatial query")

	// ErrShapeMismatch indicates data whose spatial extent does not match
	// the geometry.
	ErrShapeMismatch = errors.New("geometry: data shape does not match geometry")

	// ErrNotImplemented indicates a selection combination that is not
	// supported yet.
	ErrNotImplemented = errors.New("geometry: not yet implemented")
)

// Kind identifies a geometry variant.
type Kind int

// Geometry variants.
const (
	KindUndefined Kind = iota
	KindPoint2D
	KindPoint3D
	KindGrid1D
	KindGrid2D
	KindGrid3D
	KindMesh
	KindMeshLayered
	KindPointSpectrum
	KindLineSpectrum
	KindAreaSpectrum
)

var kindNames = map[Kind]string{
	KindUndefined:     "Undefined",
	KindPoint2D:       "Point2D",
	KindPoint3D:       "Point3D",
	KindGrid1D:        "Grid1D",
	KindGrid2D:        "Grid2D",
	KindGrid3D:        "Grid3D",
	KindMesh:          "Mesh",
	KindMeshLayered:   "MeshLayered",
	KindPointSpectrum: "PointSpectrum",
	KindLineSpectrum:  "LineSpectrum",
	KindAreaSpectrum:  "AreaSpectrum",
}

// String returns the variant name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Undefined"
}

// Geometry is the sealed spatial descriptor. All implementations live in
// this package.
type Geometry interface {
	Kind() Kind

	// IsLayered reports whether the geometry has a vertical node structure
	// (and may therefore carry a per-node elevation array).
	IsLayered() bool

	// IsSpectral reports whether the geometry carries frequency/direction axes.
	IsSpectral() bool

	sealed()
}

// Subsetter is the positional-subsetting capability. Geometries without it
// degrade to Undefined when spatially subset.
type Subsetter interface {
	Geometry

	// Isel subsets the geometry by position along one of its spatial axes
	// (axis 0 is the leading spatial axis). A single index collapses the
	// geometry to a lower-rank variant (a point, or a lower-rank grid).
	Isel(indices []int, axis int) (Geometry, error)
}

// Finder is the label-lookup capability.
type Finder interface {
	Geometry

	// FindIndex resolves a spatial query to positional indices: either a
	// flat list for single-axis geometries, or a row/column pair for
	// geometries with two independent spatial axes.
	FindIndex(q Query) (IndexResult, error)
}

// Interpolator is the point-interpolant capability.
type Interpolator interface {
	Geometry

	// Interpolant returns source indices and normalized weights for
	// estimating a value at (x, y).
	Interpolant(x, y float64, nNearest int) (indices []int, weights []float64, err error)
}

// Undefined is the absent geometry. It supports no spatial operations.
type Undefined struct{}

// Kind returns KindUndefined.
func (Undefined) Kind() Kind       { return KindUndefined }
func (Undefined) IsLayered() bool  { return false }
func (Undefined) IsSpectral() bool { return false }
func (Undefined) sealed()          {}

// String describes the variant.
func (Undefined) String() string { return "Undefined" }

// Point2D is a single horizontal location, typically the result of
// collapsing a spatial axis to one element.
type Point2D struct {
	X, Y float64
}

// Kind returns KindPoint2D.
func (Point2D) Kind() Kind       { return KindPoint2D }
func (Point2D) IsLayered() bool  { return false }
func (Point2D) IsSpectral() bool { return false }
func (Point2D) sealed()          {}

// String describes the point.
func (p Point2D) String() string { return fmt.Sprintf("Point2D(x=%g, y=%g)", p.X, p.Y) }

// Point3D is a single location with a vertical coordinate.
type Point3D struct {
	X, Y, Z float64
}

// Kind returns KindPoint3D.
func (Point3D) Kind() Kind       { return KindPoint3D }
func (Point3D) IsLayered() bool  { return false }
func (Point3D) IsSpectral() bool { return false }
func (Point3D) sealed()          {}

// String describes the point.
func (p Point3D) String() string {
	return fmt.Sprintf("Point3D(x=%g, y=%g, z=%g)", p.X, p.Y, p.Z)
}

// TrailingDims returns the canonical spatial axis names of g for a given
// remaining (non-time) rank, leading axis first. It is the single dispatch
// point for dimension guessing. Unknown ranks fall back to generic axis
// naming handled by the caller.
func TrailingDims(g Geometry, rank int) []string {
	if rank <= 0 {
		return nil
	}
	switch gg := g.(type) {
	case *PointSpectrum:
		if rank == 1 {
			return []string{"frequency"}
		}
		return []string{"frequency", "direction"}
	case *LineSpectrum:
		switch rank {
		case 1:
			return []string{"node"}
		case 2:
			return []string{"node", "frequency"}
		default:
			return []string{"node", "frequency", "direction"}
		}
	case *AreaSpectrum:
		switch rank {
		case 1:
			return []string{"element"}
		case 2:
			return []string{"element", "frequency"}
		default:
			return []string{"element", "frequency", "direction"}
		}
	case *Mesh, *MeshLayered:
		return []string{"element"}
	case *Grid1D:
		return []string{gg.AxisName()}
	case *Grid2D:
		yn, xn := gg.AxisNames()
		return []string{yn, xn}
	case *Grid3D:
		return []string{"z", "y", "x"}
	default:
		// undefined and point geometries: generic z,y,x by remaining rank
		all := []string{"z", "y", "x"}
		if rank >= len(all) {
			return all
		}
		return all[len(all)-rank:]
	}
}

// CheckShape validates that the spatial extent of shape, starting at
// offset, matches the geometry. Variants without a fixed spatial extent
// (points, point spectra, Undefined) accept any shape.
func CheckShape(g Geometry, shape []int, offset int) error {
	at := func(i int) int {
		if offset+i < len(shape) {
			return shape[offset+i]
		}
		return -1
	}
	switch gg := g.(type) {
	case *Grid1D:
		if at(0) != gg.NX() {
			return fmt.Errorf("%w: shape %v vs %d grid points", ErrShapeMismatch, shape, gg.NX())
		}
	case *Grid2D:
		if at(0) != gg.NY() || at(1) != gg.NX() {
			return fmt.Errorf("%w: shape %v vs (ny=%d, nx=%d)", ErrShapeMismatch, shape, gg.NY(), gg.NX())
		}
	case *Grid3D:
		if at(0) != gg.NZ() || at(1) != gg.NY() || at(2) != gg.NX() {
			return fmt.Errorf("%w: shape %v vs (nz=%d, ny=%d, nx=%d)",
				ErrShapeMismatch, shape, gg.NZ(), gg.NY(), gg.NX())
		}
	case *Mesh:
		if at(0) != gg.NElements() {
			return fmt.Errorf("%w: shape %v vs %d elements", ErrShapeMismatch, shape, gg.NElements())
		}
	case *MeshLayered:
		if at(0) != gg.NElements() {
			return fmt.Errorf("%w: shape %v vs %d elements", ErrShapeMismatch, shape, gg.NElements())
		}
	case *LineSpectrum:
		if at(0) != gg.NNodes() {
			return fmt.Errorf("%w: shape %v vs %d nodes", ErrShapeMismatch, shape, gg.NNodes())
		}
	case *AreaSpectrum:
		if at(0) != gg.NElements() {
			return fmt.Errorf("%w: shape %v vs %d elements", ErrShapeMismatch, shape, gg.NElements())
		}
	}
	return nil
}
