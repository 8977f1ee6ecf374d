package timeidx

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Sentinel errors for time index lookups.
var (
	// ErrNoTimesteps indicates a label or range that matches no timestep.
	ErrNoTimesteps = errors.New("timeidx: no timesteps found")

	// ErrBadLabel indicates a time label that cannot be parsed.
	ErrBadLabel = errors.New("timeidx: cannot parse time label")

	// ErrIndex indicates a position outside the index.
	ErrIndex = errors.New("timeidx: index out of range")

	// ErrEmpty indicates an operation that requires a non-empty index.
	ErrEmpty = errors.New("timeidx: index must be non-empty")
)

// Index is an ordered sequence of timestamps. Order is the caller's
// responsibility; label lookup assumes non-decreasing times.
type Index []time.Time

// Single returns an index holding one instant.
func Single(t time.Time) Index { return Index{t} }

// Equidistant returns n steps starting at start, dt apart.
func Equidistant(start time.Time, dt time.Duration, n int) Index {
	idx := make(Index, n)
	for i := range idx {
		idx[i] = start.Add(time.Duration(i) * dt)
	}
	return idx
}

// Len returns the number of timesteps.
func (ix Index) Len() int { return len(ix) }

// Start returns the first instant.
func (ix Index) Start() time.Time { return ix[0] }

// End returns the last instant.
func (ix Index) End() time.Time { return ix[len(ix)-1] }

// Clone returns a copy of the index.
func (ix Index) Clone() Index { return slices.Clone(ix) }

// IsEquidistant reports whether all steps are the same length.
// Indexes with fewer than three steps count as equidistant.
func (ix Index) IsEquidistant() bool {
	if len(ix) < 3 {
		return true
	}
	dt := ix[1].Sub(ix[0])
	for i := 2; i < len(ix); i++ {
		if ix[i].Sub(ix[i-1]) != dt {
			return false
		}
	}
	return true
}

// Timestep returns the step length in seconds when the index is
// equidistant with at least two steps; ok is false otherwise.
func (ix Index) Timestep() (seconds float64, ok bool) {
	if len(ix) < 2 || !ix.IsEquidistant() {
		return 0, false
	}
	return ix[1].Sub(ix[0]).Seconds(), true
}

// Subset returns the timestamps at the given positions.
// Negative positions count from the end.
func (ix Index) Subset(positions []int) (Index, error) {
	out := make(Index, len(positions))
	for i, p := range positions {
		if p < 0 {
			p += len(ix)
		}
		if p < 0 || p >= len(ix) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndex, positions[i], len(ix))
		}
		out[i] = ix[p]
	}
	return out, nil
}

// FindExact returns the positions equal to t.
func (ix Index) FindExact(t time.Time) ([]int, error) {
	var out []int
	for i, v := range ix {
		if v.Equal(t) {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoTimesteps, t)
	}
	return out, nil
}

// FindNearest returns the position of the step closest to t; ties go to
// the earlier step.
func (ix Index) FindNearest(t time.Time) (int, error) {
	if len(ix) == 0 {
		return 0, ErrEmpty
	}
	best, bestDist := 0, time.Duration(0)
	for i, v := range ix {
		d := v.Sub(t)
		if d < 0 {
			d = -d
		}
		if i == 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

// FindLabel returns the positions covered by a partial timestamp label:
// "2018" selects the whole year, "2018-01" the month, "2018-01-02" the
// day, down to exact seconds. Reports ErrBadLabel for unparseable input
// and ErrNoTimesteps when the period contains no step.
func (ix Index) FindLabel(label string) ([]int, error) {
	from, to, err := parseLabel(label)
	if err != nil {
		return nil, err
	}
	var out []int
	for i, v := range ix {
		if !v.Before(from) && v.Before(to) {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: label %q", ErrNoTimesteps, label)
	}
	return out, nil
}

// FindRange returns the positions inside [from, to]. A zero from means
// open at the start; a zero to means open at the end.
func (ix Index) FindRange(from, to time.Time) ([]int, error) {
	var out []int
	for i, v := range ix {
		if !from.IsZero() && v.Before(from) {
			continue
		}
		if !to.IsZero() && v.After(to) {
			continue
		}
		out = append(out, i)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: range %v - %v", ErrNoTimesteps, from, to)
	}
	return out, nil
}

// FindLabelRange resolves two labels to a closed range of positions; the
// end label is inclusive of the period it denotes ("2018-02" ends at the
// last step inside February). Empty labels leave that side open.
func (ix Index) FindLabelRange(fromLabel, toLabel string) ([]int, error) {
	var from, to time.Time
	if fromLabel != "" {
		f, _, err := parseLabel(fromLabel)
		if err != nil {
			return nil, err
		}
		from = f
	}
	if toLabel != "" {
		_, t, err := parseLabel(toLabel)
		if err != nil {
			return nil, err
		}
		// half-open period end; back off one nanosecond to stay inclusive
		to = t.Add(-time.Nanosecond)
	}
	return ix.FindRange(from, to)
}

// labelLayouts are the accepted partial timestamp layouts, most specific
// first, paired with the period each one denotes.
var labelLayouts = []struct {
	layout string
	period func(t time.Time) time.Time
}{
	{"2006-01-02 15:04:05", func(t time.Time) time.Time { return t.Add(time.Second) }},
	{"2006-01-02T15:04:05", func(t time.Time) time.Time { return t.Add(time.Second) }},
	{"2006-01-02 15:04", func(t time.Time) time.Time { return t.Add(time.Minute) }},
	{"2006-01-02 15", func(t time.Time) time.Time { return t.Add(time.Hour) }},
	{"2006-01-02", func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }},
	{"2006-01", func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }},
	{"2006", func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }},
}

// parseLabel resolves a partial timestamp into the half-open period
// [from, to) it denotes.
func parseLabel(label string) (from, to time.Time, err error) {
	for _, l := range labelLayouts {
		t, perr := time.Parse(l.layout, label)
		if perr == nil {
			return t, l.period(t), nil
		}
	}
	return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrBadLabel, label)
}

// Weight is one linear-interpolation stencil entry: the value at a target
// instant is v[Left]*(1-Frac) + v[Right]*Frac. Valid is false for targets
// outside the source span when extrapolation is off.
type Weight struct {
	Left, Right int
	Frac        float64
	Valid       bool
}

// LinearWeights computes the interpolation stencil mapping this index onto
// target. With extrapolate true, out-of-span targets clamp to the nearest
// source step pair (Frac may leave [0,1]); otherwise they are marked
// invalid so callers can substitute a fill value.
func (ix Index) LinearWeights(target Index, extrapolate bool) ([]Weight, error) {
	if len(ix) == 0 {
		return nil, ErrEmpty
	}
	out := make([]Weight, len(target))
	for i, t := range target {
		if len(ix) == 1 {
			out[i] = Weight{Left: 0, Right: 0, Frac: 0, Valid: extrapolate || t.Equal(ix[0])}
			continue
		}
		// rightmost pair with ix[l] <= t, clamped to the span edges
		l := 0
		for l < len(ix)-2 && !t.Before(ix[l+1]) {
			l++
		}
		r := l + 1
		span := ix[r].Sub(ix[l]).Seconds()
		frac := 0.0
		if span > 0 {
			frac = t.Sub(ix[l]).Seconds() / span
		}
		valid := true
		if frac < 0 || frac > 1 {
			valid = extrapolate
		}
		out[i] = Weight{Left: l, Right: r, Frac: frac, Valid: valid}
	}
	return out, nil
}
