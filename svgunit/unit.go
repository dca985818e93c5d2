// Package svgunit converts physical length measurements to the units
// used by laser-cutting layouts: millimeters for geometry, CSS pixels
// (96 per inch) for SVG coordinates.
package svgunit

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MmPerInch is the exact definition of the international inch.
	MmPerInch = 25.4
	// PxPerInch is the CSS reference pixel density used by SVG.
	PxPerInch = 96.
)

// InvalidUnitError is returned for a measurement whose suffix is not
// a supported unit.
type InvalidUnitError struct {
	Value string
}

func (e InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid unit in length %q (supported: mm, in)", e.Value)
}

// MalformedNumberError is returned when the numeric part of a
// measurement does not parse.
type MalformedNumberError struct {
	Value string
	Err   error
}

func (e MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number in length %q: %s", e.Value, e.Err)
}

func (e MalformedNumberError) Unwrap() error { return e.Err }

// ParseLength converts a measurement string to millimeters.
// Supported suffixes are "mm" (taken literally) and "in"
// (converted at 25.4 mm per inch).
func ParseLength(s string) (float64, error) {
	var factor float64
	switch {
	case strings.HasSuffix(s, "mm"):
		factor = 1
	case strings.HasSuffix(s, "in"):
		factor = MmPerInch
	default:
		return 0, InvalidUnitError{Value: s}
	}
	v, err := strconv.ParseFloat(s[:len(s)-2], 64)
	if err != nil {
		return 0, MalformedNumberError{Value: s, Err: err}
	}
	return v * factor, nil
}

// MmToPx converts millimeters to CSS pixels.
func MmToPx(mm float64) float64 {
	return mm / MmPerInch * PxPerInch
}
