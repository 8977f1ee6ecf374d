// Construction and validation: dimension guessing, explicit-dims checks,
// geometry extent cross-check and elevation validation.

package core

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/korsvik/tidemark/geometry"
	"github.com/korsvik/tidemark/item"
	"github.com/korsvik/tidemark/nd"
	"github.com/korsvik/tidemark/timeidx"
)

// New builds a DataArray from a buffer and a time index.
//
// When WithDims is absent the axis names are guessed: time leads if the
// index has more than one step, or if the leading axis has length 1 and
// the index exactly one step; the remaining axes take the geometry's
// canonical trailing names. The guess is best-effort since rank alone
// cannot always disambiguate; pass WithDims when in doubt.
//
// An empty time index defaults to a single nominal instant so static data
// can be wrapped without inventing timestamps at every call site.
func New(values *nd.Array, t timeidx.Index, opts ...Option) (*DataArray, error) {
	if values == nil {
		return nil, ErrNoValues
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(t) == 0 {
		t = timeidx.Single(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC))
	}
	geom := cfg.geom
	if geom == nil {
		geom = geometry.Undefined{}
	}
	shape := values.Shape()

	dims := cfg.dims
	if dims == nil {
		dims = guessDims(shape, t.Len(), geom)
	}
	if err := validateDims(dims, shape, t.Len()); err != nil {
		return nil, err
	}

	offset := 0
	if len(dims) > 0 && dims[0] == timeDim {
		offset = 1
		if shape[0] != t.Len() {
			return nil, fmt.Errorf("%w: %d timesteps vs leading axis %d", ErrTime, t.Len(), shape[0])
		}
	}
	if err := geometry.CheckShape(geom, shape, offset); err != nil {
		return nil, err
	}
	if geom.Kind() == geometry.KindUndefined && len(shape) > 1 {
		logger := cfg.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("data is multi-dimensional but no geometry is attached; axis names are ambiguous",
			"shape", shape)
	}

	if err := validateElevation(cfg.elevation, geom, t.Len()); err != nil {
		return nil, err
	}

	it := item.NoName()
	if cfg.item != nil {
		it = *cfg.item
	}
	return &DataArray{
		values:    values,
		time:      t.Clone(),
		dims:      dims,
		geom:      geom,
		elevation: cfg.elevation,
		item:      it,
	}, nil
}

// guessDims infers axis names for a shape given the step count and the
// geometry's canonical trailing names. Extra leading axes that neither
// time nor the geometry accounts for get generic "dim_N" names.
func guessDims(shape []int, nSteps int, geom geometry.Geometry) []string {
	timeFirst := nSteps > 1 || (len(shape) > 0 && shape[0] == 1 && nSteps == 1)

	rank := len(shape)
	spatial := rank
	if timeFirst {
		spatial = rank - 1
	}
	trailing := geometry.TrailingDims(geom, spatial)

	dims := make([]string, 0, rank)
	if timeFirst {
		dims = append(dims, timeDim)
	}
	for i := 0; i < spatial-len(trailing); i++ {
		dims = append(dims, fmt.Sprintf("dim_%d", i))
	}
	return append(dims, trailing...)
}

// validateDims enforces the dimension invariants: rank match, time first
// if present, time mandatory when the index has more than one step, and
// no duplicate names.
func validateDims(dims []string, shape []int, nSteps int) error {
	if len(dims) != len(shape) {
		return fmt.Errorf("%w: %d names for %d axes", ErrDims, len(dims), len(shape))
	}
	if i := slices.Index(dims, timeDim); i > 0 {
		return fmt.Errorf("%w: %q must be the first dimension", ErrDims, timeDim)
	} else if i < 0 && nSteps > 1 {
		return fmt.Errorf("%w: %d timesteps require a %q dimension", ErrDims, nSteps, timeDim)
	}
	seen := make(map[string]struct{}, len(dims))
	for _, d := range dims {
		if _, dup := seen[d]; dup {
			return fmt.Errorf("%w: duplicate dimension %q", ErrDims, d)
		}
		seen[d] = struct{}{}
	}
	return nil
}

// validateElevation checks the per-node elevation array against the
// geometry and step count. Shape is (nNodes) or (nTimesteps, nNodes).
func validateElevation(zn *nd.Array, geom geometry.Geometry, nSteps int) error {
	if zn == nil {
		return nil
	}
	if !geom.IsLayered() {
		return fmt.Errorf("%w: geometry is %s", ErrElevation, geom.Kind())
	}
	nodes := geom.(*geometry.MeshLayered).NNodes()
	shape := zn.Shape()
	switch len(shape) {
	case 1:
		if shape[0] != nodes {
			return fmt.Errorf("%w: %d elevation values for %d nodes", ErrElevation, shape[0], nodes)
		}
	case 2:
		if shape[1] != nodes {
			return fmt.Errorf("%w: %d elevation values for %d nodes", ErrElevation, shape[1], nodes)
		}
		if shape[0] != nSteps && shape[0] > 1 {
			return fmt.Errorf("%w: %d elevation steps for %d timesteps", ErrElevation, shape[0], nSteps)
		}
	default:
		return fmt.Errorf("%w: elevation rank %d", ErrElevation, len(shape))
	}
	return nil
}
