// Package item defines the metadata attached to a tidemark data array:
// a name, a physical quantity and a unit.
//
// Item is an immutable value type; derived arrays copy it by value, so a
// rename on one array can never leak into another. The quantity/unit
// catalog is deliberately compact — enough to express the preservation
// rules of arithmetic (same quantity + same unit survives subtraction,
// everything else downgrades to Undefined).
package item

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadItem indicates invalid constructor input (for example an empty name).
var ErrBadItem = errors.New("item: invalid item specification")

// Quantity is a physical-quantity tag.
type Quantity int

// Physical quantities.
const (
	Undefined Quantity = iota
	WaterLevel
	WaterDepth
	CurrentSpeed
	Discharge
	Temperature
	Salinity
	WindSpeed
	AirPressure
	WaveHeight
	WaveEnergyDensity
	Concentration
	Elevation
)

var quantityNames = map[Quantity]string{
	Undefined:         "Undefined",
	WaterLevel:        "Water Level",
	WaterDepth:        "Water Depth",
	CurrentSpeed:      "Current Speed",
	Discharge:         "Discharge",
	Temperature:       "Temperature",
	Salinity:          "Salinity",
	WindSpeed:         "Wind Speed",
	AirPressure:       "Air Pressure",
	WaveHeight:        "Significant Wave Height",
	WaveEnergyDensity: "Wave Energy Density",
	Concentration:     "Concentration",
	Elevation:         "Elevation",
}

// String returns the display name of the quantity.
func (q Quantity) String() string {
	if s, ok := quantityNames[q]; ok {
		return s
	}
	return "Undefined"
}

// Unit is a measurement-unit tag.
type Unit int

// Units.
const (
	UnitUndefined Unit = iota
	Meter
	MeterPerSecond
	CubicMeterPerSecond
	DegreeCelsius
	PSU
	Pascal
	SquareMeterSecond
	GramPerCubicMeter
)

var unitNames = map[Unit]string{
	UnitUndefined:       "undefined",
	Meter:               "m",
	MeterPerSecond:      "m/s",
	CubicMeterPerSecond: "m^3/s",
	DegreeCelsius:       "degC",
	PSU:                 "PSU",
	Pascal:              "Pa",
	SquareMeterSecond:   "m^2 s",
	GramPerCubicMeter:   "g/m^3",
}

// String returns the display symbol of the unit.
func (u Unit) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}
	return "undefined"
}

// defaultUnits maps each quantity to its canonical unit.
var defaultUnits = map[Quantity]Unit{
	WaterLevel:        Meter,
	WaterDepth:        Meter,
	CurrentSpeed:      MeterPerSecond,
	Discharge:         CubicMeterPerSecond,
	Temperature:       DegreeCelsius,
	Salinity:          PSU,
	WindSpeed:         MeterPerSecond,
	AirPressure:       Pascal,
	WaveHeight:        Meter,
	WaveEnergyDensity: SquareMeterSecond,
	Concentration:     GramPerCubicMeter,
	Elevation:         Meter,
}

// DefaultUnit returns the canonical unit of a quantity.
func DefaultUnit(q Quantity) Unit {
	if u, ok := defaultUnits[q]; ok {
		return u
	}
	return UnitUndefined
}

// Item is the metadata triple attached to a data array.
type Item struct {
	Name string
	Type Quantity
	Unit Unit
}

// NoName returns the default item for arrays constructed without metadata.
func NoName() Item { return Item{Name: "NoName", Type: Undefined, Unit: UnitUndefined} }

// New builds an item from a bare name with an undefined quantity.
// The name must contain at least one non-space character.
func New(name string) (Item, error) {
	if strings.TrimSpace(name) == "" {
		return Item{}, fmt.Errorf("%w: empty name", ErrBadItem)
	}
	return Item{Name: name, Type: Undefined, Unit: UnitUndefined}, nil
}

// NewTyped builds an item with an explicit quantity and its default unit.
// The name may be empty, in which case the quantity name is used.
func NewTyped(name string, q Quantity) Item {
	if strings.TrimSpace(name) == "" {
		name = q.String()
	}
	return Item{Name: name, Type: q, Unit: DefaultUnit(q)}
}

// WithName returns a copy of the item under a new name.
func (it Item) WithName(name string) Item {
	it.Name = name
	return it
}

// SameQuantity reports whether both items carry the same type and unit.
func (it Item) SameQuantity(other Item) bool {
	return it.Type == other.Type && it.Unit == other.Unit
}

// String renders "Name <Quantity> (unit)".
func (it Item) String() string {
	return fmt.Sprintf("%s <%s> (%s)", it.Name, it.Type, it.Unit)
}
