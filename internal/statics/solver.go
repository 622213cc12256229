package statics

import (
	"fmt"
	"math"
)

// ReactionPair holds the vertical support reactions (kN)
type ReactionPair struct {
	ReactionA float64 `json:"reaction_a" yaml:"reaction_a"`
	ReactionB float64 `json:"reaction_b" yaml:"reaction_b"`
}

// Sum returns RA + RB
func (r ReactionPair) Sum() float64 {
	return r.ReactionA + r.ReactionB
}

// Solve computes the support reactions of a simply-supported beam from
// ΣM_A = 0 and ΣF = 0. Support A is at x = 0 and support B at x = span.
//
// The load itself is not validated; call Validate first. Only a
// non-positive span is rejected since it would divide by zero.
func Solve(span float64, load Load) (ReactionPair, error) {
	if !(span > 0) {
		return ReactionPair{}, spanError(fmt.Sprintf("must be positive, got %g", span))
	}

	switch l := load.(type) {
	case PointLoad:
		// RB * L = P * a
		rb := l.Magnitude * l.Position / span
		return ReactionPair{ReactionA: l.Magnitude - rb, ReactionB: rb}, nil

	case UniformLoad:
		total := l.Intensity * span
		return ReactionPair{ReactionA: total / 2, ReactionB: total / 2}, nil

	case TriangularLoad:
		total := l.Total(span)
		// RB * L = W * x̄
		rb := total * l.Centroid() / span
		return ReactionPair{ReactionA: total - rb, ReactionB: rb}, nil
	}

	return ReactionPair{}, geometryError("type", fmt.Sprintf("unsupported load %T", load))
}

// Calculate validates the inputs and solves for the reactions
func Calculate(span float64, load Load) (ReactionPair, error) {
	if err := Validate(span, load); err != nil {
		return ReactionPair{}, err
	}
	return Solve(span, load)
}

// InEquilibrium reports whether RA + RB matches the applied load within tol
func InEquilibrium(span float64, load Load, r ReactionPair, tol float64) bool {
	return math.Abs(r.Sum()-load.Total(span)) <= tol
}
