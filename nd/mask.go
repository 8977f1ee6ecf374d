package nd

import "fmt"

// MaskSelect returns the elements where mask is true, flattened in
// row-major order. The mask must be a Bool array of identical shape.
func (a *Array) MaskSelect(mask *Array) ([]float64, error) {
	if err := a.checkMask(mask); err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(a.data))
	for i, m := range mask.data {
		if m != 0 {
			out = append(out, a.data[i])
		}
	}
	return out, nil
}

// MaskAssign stores v in place at every position where mask is true.
func (a *Array) MaskAssign(mask *Array, v float64) error {
	if err := a.checkMask(mask); err != nil {
		return err
	}
	for i, m := range mask.data {
		if m != 0 {
			a.data[i] = v
		}
	}
	return nil
}

// MaskAssignValues stores values in place in row-major order at the
// positions where mask is true; len(values) must equal the true count.
func (a *Array) MaskAssignValues(mask *Array, values []float64) error {
	if err := a.checkMask(mask); err != nil {
		return err
	}
	j := 0
	for i, m := range mask.data {
		if m == 0 {
			continue
		}
		if j >= len(values) {
			return fmt.Errorf("%w: %d replacement values for more mask hits", ErrMask, len(values))
		}
		a.data[i] = values[j]
		j++
	}
	if j != len(values) {
		return fmt.Errorf("%w: %d replacement values for %d mask hits", ErrMask, len(values), j)
	}
	return nil
}

// CountTrue returns the number of true elements of a Bool array.
func (a *Array) CountTrue() int {
	n := 0
	for _, v := range a.data {
		if v != 0 {
			n++
		}
	}
	return n
}

func (a *Array) checkMask(mask *Array) error {
	if mask == nil || mask.dtype != DTypeBool || !a.SameShape(mask) {
		return ErrMask
	}
	return nil
}
