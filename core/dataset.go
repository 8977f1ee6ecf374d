// Dataset is a thin ordered collection of DataArrays sharing a time axis.
// It exists so multi-result operations (Quantiles) and the writer
// interface have a container; the file-level operations of a full dataset
// live with the I/O collaborators.

package core

import (
	"fmt"
	"strings"
)

// Dataset is an ordered list of DataArrays over a common time index.
type Dataset struct {
	arrays []*DataArray
}

// NewDataset bundles arrays into a Dataset. All arrays must share the
// same number of timesteps and the same start time.
func NewDataset(arrays ...*DataArray) (*Dataset, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("%w: empty dataset", ErrKey)
	}
	first := arrays[0]
	for _, da := range arrays[1:] {
		if da.NTimesteps() != first.NTimesteps() || !da.StartTime().Equal(first.StartTime()) {
			return nil, fmt.Errorf("%w: %q has a different time axis than %q",
				ErrIncompatible, da.Name(), first.Name())
		}
	}
	return &Dataset{arrays: arrays}, nil
}

// Len returns the number of items.
func (ds *Dataset) Len() int { return len(ds.arrays) }

// At returns the i-th item.
func (ds *Dataset) At(i int) *DataArray { return ds.arrays[i] }

// Names returns the item names in order.
func (ds *Dataset) Names() []string {
	out := make([]string, len(ds.arrays))
	for i, da := range ds.arrays {
		out[i] = da.Name()
	}
	return out
}

// ByName returns the item with the given name, or nil.
func (ds *Dataset) ByName(name string) *DataArray {
	for _, da := range ds.arrays {
		if da.Name() == name {
			return da
		}
	}
	return nil
}

// String lists the items one per line.
func (ds *Dataset) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<tidemark.Dataset> %d items\n", len(ds.arrays))
	for i, da := range ds.arrays {
		fmt.Fprintf(&b, "  %d: %s\n", i, da.item)
	}
	return b.String()
}
