package statics

import (
	"fmt"
	"math"
)

// Validate checks the beam length and load geometry before solving.
// Returned errors wrap ErrInvalidSpan or ErrInvalidLoadGeometry.
func Validate(span float64, load Load) error {
	if !finite(span) || span <= 0 {
		return spanError(fmt.Sprintf("must be a positive number, got %g", span))
	}

	switch l := load.(type) {
	case PointLoad:
		if err := positive("load", l.Magnitude); err != nil {
			return err
		}
		if !finite(l.Position) {
			return geometryError("position", "must be a number")
		}
		if l.Position < 0 || l.Position > span {
			return geometryError("position", fmt.Sprintf("must be within 0 and %g m, got %g", span, l.Position))
		}

	case UniformLoad:
		return positive("intensity", l.Intensity)

	case TriangularLoad:
		if err := positive("peak intensity", l.PeakIntensity); err != nil {
			return err
		}
		if !finite(l.Start) || !finite(l.End) {
			return geometryError("start/end", "must be numbers")
		}
		if l.Start < 0 {
			return geometryError("start", fmt.Sprintf("must not be negative, got %g", l.Start))
		}
		if l.End <= l.Start {
			return geometryError("end", fmt.Sprintf("must be greater than start (%g), got %g", l.Start, l.End))
		}
		if l.End > span {
			return geometryError("end", fmt.Sprintf("must not exceed the span (%g m), got %g", span, l.End))
		}

	case nil:
		return geometryError("type", "no load given")

	default:
		return geometryError("type", fmt.Sprintf("unsupported load %T", load))
	}

	return nil
}

func positive(field string, v float64) error {
	if !finite(v) || v <= 0 {
		return geometryError(field, fmt.Sprintf("must be positive, got %g", v))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
