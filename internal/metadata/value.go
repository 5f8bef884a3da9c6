package metadata

import (
	"fmt"
	"strconv"
)

type valueKind int

const (
	kindString valueKind = iota
	kindNumber
	kindResolution
)

// Value is the result of resolving a logical property. String values pass
// through from the source mapping unchanged; numeric values keep their
// float64 payload for programmatic comparison and carry an optional display
// unit that is applied only when rendering.
type Value struct {
	kind   valueKind
	str    string
	num    float64
	unit   string
	width  int
	height int
}

func stringValue(raw string) Value {
	return Value{kind: kindString, str: raw}
}

func numberValue(num float64, unit string) Value {
	return Value{kind: kindNumber, num: num, unit: unit}
}

func resolutionValue(width, height int) Value {
	return Value{kind: kindResolution, width: width, height: height}
}

// String renders the value for display, appending the unit to numeric values.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		formatted := strconv.FormatFloat(v.num, 'f', -1, 64)
		if v.unit != "" {
			return formatted + " " + v.unit
		}
		return formatted
	case kindResolution:
		return fmt.Sprintf("%dx%d", v.width, v.height)
	default:
		return v.str
	}
}

// Float returns the numeric payload. The second return is false for string
// and resolution values.
func (v Value) Float() (float64, bool) {
	if v.kind != kindNumber {
		return 0, false
	}
	return v.num, true
}

// Resolution returns the width and height of a resolution value. The third
// return is false for any other kind.
func (v Value) Resolution() (width, height int, ok bool) {
	if v.kind != kindResolution {
		return 0, 0, false
	}
	return v.width, v.height, true
}

// Unit returns the display unit attached to a numeric value, if any.
func (v Value) Unit() string {
	return v.unit
}
