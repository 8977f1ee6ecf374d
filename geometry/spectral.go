package geometry

import (
	"fmt"
	"slices"
)

// PointSpectrum is a wave spectrum at a single location: frequency and
// (optionally) direction axes, no spatial extent.
type PointSpectrum struct {
	X, Y                    *float64
	frequencies, directions []float64
}

// NewPointSpectrum builds a point spectrum geometry. directions may be
// nil for frequency-only spectra; x/y may be nil for unanchored spectra.
func NewPointSpectrum(frequencies, directions []float64, x, y *float64) *PointSpectrum {
	return &PointSpectrum{
		X: x, Y: y,
		frequencies: slices.Clone(frequencies),
		directions:  slices.Clone(directions),
	}
}

// Kind returns KindPointSpectrum.
func (s *PointSpectrum) Kind() Kind       { return KindPointSpectrum }
func (s *PointSpectrum) IsLayered() bool  { return false }
func (s *PointSpectrum) IsSpectral() bool { return true }
func (s *PointSpectrum) sealed()          {}

// NFrequencies returns the frequency axis length.
func (s *PointSpectrum) NFrequencies() int { return len(s.frequencies) }

// NDirections returns the direction axis length.
func (s *PointSpectrum) NDirections() int { return len(s.directions) }

// Frequencies returns a copy of the frequency axis.
func (s *PointSpectrum) Frequencies() []float64 { return slices.Clone(s.frequencies) }

// Directions returns a copy of the direction axis.
func (s *PointSpectrum) Directions() []float64 { return slices.Clone(s.directions) }

// String describes the spectrum.
func (s *PointSpectrum) String() string {
	return fmt.Sprintf("PointSpectrum (nf=%d, nd=%d)", s.NFrequencies(), s.NDirections())
}

// LineSpectrum is a wave spectrum along a line of nodes.
type LineSpectrum struct {
	nodeX, nodeY            []float64
	frequencies, directions []float64
}

// NewLineSpectrum builds a line spectrum geometry over the given nodes.
func NewLineSpectrum(nodeX, nodeY, frequencies, directions []float64) (*LineSpectrum, error) {
	if len(nodeX) == 0 || len(nodeX) != len(nodeY) {
		return nil, fmt.Errorf("%w: %d x vs %d y node coordinates", ErrShapeMismatch, len(nodeX), len(nodeY))
	}
	return &LineSpectrum{
		nodeX: slices.Clone(nodeX), nodeY: slices.Clone(nodeY),
		frequencies: slices.Clone(frequencies),
		directions:  slices.Clone(directions),
	}, nil
}

// Kind returns KindLineSpectrum.
func (s *LineSpectrum) Kind() Kind       { return KindLineSpectrum }
func (s *LineSpectrum) IsLayered() bool  { return false }
func (s *LineSpectrum) IsSpectral() bool { return true }
func (s *LineSpectrum) sealed()          {}

// NNodes returns the node count.
func (s *LineSpectrum) NNodes() int { return len(s.nodeX) }

// NFrequencies returns the frequency axis length.
func (s *LineSpectrum) NFrequencies() int { return len(s.frequencies) }

// NDirections returns the direction axis length.
func (s *LineSpectrum) NDirections() int { return len(s.directions) }

// Frequencies returns a copy of the frequency axis.
func (s *LineSpectrum) Frequencies() []float64 { return slices.Clone(s.frequencies) }

// Directions returns a copy of the direction axis.
func (s *LineSpectrum) Directions() []float64 { return slices.Clone(s.directions) }

// String describes the spectrum.
func (s *LineSpectrum) String() string {
	return fmt.Sprintf("LineSpectrum (%d nodes, nf=%d, nd=%d)",
		s.NNodes(), s.NFrequencies(), s.NDirections())
}

// Isel subsets the node axis. A single node collapses to a PointSpectrum
// anchored at that node.
func (s *LineSpectrum) Isel(indices []int, axis int) (Geometry, error) {
	if axis != 0 {
		return nil, fmt.Errorf("%w: axis %d of LineSpectrum (only the node axis is spatial)", ErrAxis, axis)
	}
	x, err := pick(s.nodeX, indices)
	if err != nil {
		return nil, err
	}
	y, err := pick(s.nodeY, indices)
	if err != nil {
		return nil, err
	}
	if len(x) == 1 {
		return NewPointSpectrum(s.frequencies, s.directions, &x[0], &y[0]), nil
	}
	return &LineSpectrum{
		nodeX: x, nodeY: y,
		frequencies: slices.Clone(s.frequencies),
		directions:  slices.Clone(s.directions),
	}, nil
}

// AreaSpectrum is a wave spectrum over a flexible mesh.
type AreaSpectrum struct {
	Mesh
	frequencies, directions []float64
}

// NewAreaSpectrum builds an area spectrum geometry over a mesh.
func NewAreaSpectrum(mesh *Mesh, frequencies, directions []float64) *AreaSpectrum {
	return &AreaSpectrum{
		Mesh:        *mesh,
		frequencies: slices.Clone(frequencies),
		directions:  slices.Clone(directions),
	}
}

// Kind returns KindAreaSpectrum.
func (s *AreaSpectrum) Kind() Kind       { return KindAreaSpectrum }
func (s *AreaSpectrum) IsSpectral() bool { return true }

// NFrequencies returns the frequency axis length.
func (s *AreaSpectrum) NFrequencies() int { return len(s.frequencies) }

// NDirections returns the direction axis length.
func (s *AreaSpectrum) NDirections() int { return len(s.directions) }

// Frequencies returns a copy of the frequency axis.
func (s *AreaSpectrum) Frequencies() []float64 { return slices.Clone(s.frequencies) }

// Directions returns a copy of the direction axis.
func (s *AreaSpectrum) Directions() []float64 { return slices.Clone(s.directions) }

// String describes the spectrum.
func (s *AreaSpectrum) String() string {
	return fmt.Sprintf("AreaSpectrum (%d elements, nf=%d, nd=%d)",
		s.NElements(), s.NFrequencies(), s.NDirections())
}

// Isel subsets the element axis. A single element collapses to a
// PointSpectrum at the element centroid.
func (s *AreaSpectrum) Isel(indices []int, axis int) (Geometry, error) {
	if axis != 0 {
		return nil, fmt.Errorf("%w: axis %d of AreaSpectrum (only the element axis is spatial)", ErrAxis, axis)
	}
	norm, err := s.normElements(indices)
	if err != nil {
		return nil, err
	}
	if len(norm) == 1 {
		c := s.ElementCentroid(norm[0])
		return NewPointSpectrum(s.frequencies, s.directions, &c[0], &c[1]), nil
	}
	sub, _, err := s.Mesh.subset(norm)
	if err != nil {
		return nil, err
	}
	return &AreaSpectrum{
		Mesh:        *sub,
		frequencies: slices.Clone(s.frequencies),
		directions:  slices.Clone(s.directions),
	}, nil
}
