// Quantile reductions. A scalar level behaves like Aggregate; a sequence
// of levels yields a Dataset with one renamed item per level.

package core

import (
	"fmt"

	"github.com/korsvik/tidemark/nd"
)

// Quantile reduces the axis to the q-th quantile (linear interpolation
// between closest ranks, so q=0 is the minimum and q=1 the maximum).
// Groups containing NaN yield NaN; use NanQuantile to ignore them.
func (da *DataArray) Quantile(q float64, ax Axis) (*DataArray, error) {
	if _, err := nd.Quantile([]float64{0}, q); err != nil {
		return nil, err
	}
	return da.Aggregate(ax, func(values []float64) float64 {
		v, _ := nd.Quantile(values, q)
		return v
	})
}

// NanQuantile is Quantile over the non-NaN subset of each group.
func (da *DataArray) NanQuantile(q float64, ax Axis) (*DataArray, error) {
	if _, err := nd.Quantile([]float64{0}, q); err != nil {
		return nil, err
	}
	return da.Aggregate(ax, func(values []float64) float64 {
		v, _ := nd.Quantile(nd.DropNaN(values), q)
		return v
	})
}

// Quantiles computes several quantile levels at once, returning a Dataset
// with one item per level named "Quantile <q>, <name>".
func (da *DataArray) Quantiles(qs []float64, ax Axis) (*Dataset, error) {
	return da.quantiles(qs, ax, (*DataArray).Quantile)
}

// NanQuantiles is Quantiles ignoring NaN entries.
func (da *DataArray) NanQuantiles(qs []float64, ax Axis) (*Dataset, error) {
	return da.quantiles(qs, ax, (*DataArray).NanQuantile)
}

func (da *DataArray) quantiles(qs []float64, ax Axis,
	one func(*DataArray, float64, Axis) (*DataArray, error)) (*Dataset, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w: no quantile levels", ErrKey)
	}
	arrays := make([]*DataArray, len(qs))
	for i, q := range qs {
		out, err := one(da, q, ax)
		if err != nil {
			return nil, err
		}
		out.item = out.item.WithName(fmt.Sprintf("Quantile %v, %s", q, da.item.Name))
		arrays[i] = out
	}
	return NewDataset(arrays...)
}
