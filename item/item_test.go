package item_test

import (
	"testing"

	"github.com/korsvik/tidemark/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_FromBareName verifies construction from a name only.
func TestNew_FromBareName(t *testing.T) {
	it, err := item.New("Surface elevation")
	require.NoError(t, err)
	assert.Equal(t, "Surface elevation", it.Name)
	assert.Equal(t, item.Undefined, it.Type)
	assert.Equal(t, item.UnitUndefined, it.Unit)
}

// TestNew_RejectsEmptyName verifies constructor validation.
func TestNew_RejectsEmptyName(t *testing.T) {
	_, err := item.New("")
	assert.ErrorIs(t, err, item.ErrBadItem)

	_, err = item.New("   ")
	assert.ErrorIs(t, err, item.ErrBadItem)
}

// TestNewTyped_DefaultUnit checks quantity-to-unit defaulting and the
// quantity-name fallback.
func TestNewTyped_DefaultUnit(t *testing.T) {
	it := item.NewTyped("WL west", item.WaterLevel)
	assert.Equal(t, item.Meter, it.Unit)

	anon := item.NewTyped("", item.Temperature)
	assert.Equal(t, "Temperature", anon.Name)
	assert.Equal(t, item.DegreeCelsius, anon.Unit)
}

// TestSameQuantity verifies the arithmetic preservation predicate.
func TestSameQuantity(t *testing.T) {
	a := item.NewTyped("a", item.WaterLevel)
	b := item.NewTyped("b", item.WaterLevel)
	c := item.NewTyped("c", item.Temperature)

	assert.True(t, a.SameQuantity(b), "same type and unit")
	assert.False(t, a.SameQuantity(c))
}

// TestWithName_ValueSemantics ensures renaming never mutates the source.
func TestWithName_ValueSemantics(t *testing.T) {
	a := item.NewTyped("original", item.WaterLevel)
	b := a.WithName("renamed")

	assert.Equal(t, "original", a.Name)
	assert.Equal(t, "renamed", b.Name)
	assert.Equal(t, a.Unit, b.Unit)
}
