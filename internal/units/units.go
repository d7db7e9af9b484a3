package units

import (
	"errors"
	"fmt"
	"math/bits"
)

// MillimetersPerMeter is the exact conversion factor from Meters to Millimeters.
const MillimetersPerMeter = 1000

// ErrOverflow reports a result that does not fit in 32 unsigned bits.
var ErrOverflow = errors.New("length overflows uint32")

// Millimeters is a length in millimeters.
type Millimeters uint32

// String returns the debug form, e.g. "Millimeters(5)".
func (m Millimeters) String() string { return fmt.Sprintf("Millimeters(%d)", uint32(m)) }

// Add returns m + other.
func (m Millimeters) Add(other Millimeters) (Millimeters, error) {
	sum, carry := bits.Add32(uint32(m), uint32(other), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%s + %s: %w", m, other, ErrOverflow)
	}
	return Millimeters(sum), nil
}

// AddMeters returns m + other converted to millimeters.
func (m Millimeters) AddMeters(other Meters) (Millimeters, error) {
	mm, err := other.Millimeters()
	if err != nil {
		return 0, fmt.Errorf("%s + %s: %w", m, other, err)
	}
	sum, err := m.Add(mm)
	if err != nil {
		return 0, fmt.Errorf("%s + %s: %w", m, other, err)
	}
	return sum, nil
}

// Meters is a length in meters.
type Meters uint32

// String returns the debug form, e.g. "Meters(2)".
func (n Meters) String() string { return fmt.Sprintf("Meters(%d)", uint32(n)) }

// Millimeters converts n to millimeters.
func (n Meters) Millimeters() (Millimeters, error) {
	hi, lo := bits.Mul32(uint32(n), MillimetersPerMeter)
	if hi != 0 {
		return 0, fmt.Errorf("convert %s: %w", n, ErrOverflow)
	}
	return Millimeters(lo), nil
}
