// Package timeidx provides the ordered timestamp index attached to
// tidemark data arrays.
//
// An Index is an ordered sequence of time.Time values. Besides plain
// positional subsetting it supports label-based lookup in the style of
// time-series tooling: a partial timestamp string such as "2018",
// "2018-01" or "2018-01-02 15:04" selects every step inside the period
// it denotes, and FindRange selects a closed interval between two labels
// or instants. Lookup that matches nothing reports ErrNoTimesteps.
//
// LinearWeights precomputes the interpolation stencil (left index, right
// index, fraction) used for temporal interpolation of arrays and of the
// auxiliary per-node elevation buffer.
package timeidx
