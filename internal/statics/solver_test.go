package statics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestSolve_PointLoadExample(t *testing.T) {
	r, err := Solve(10, PointLoad{Magnitude: 100, Position: 4})
	require.NoError(t, err)
	assert.InDelta(t, 60.0, r.ReactionA, tol)
	assert.InDelta(t, 40.0, r.ReactionB, tol)
}

func TestSolve_UniformLoadExample(t *testing.T) {
	r, err := Solve(6, UniformLoad{Intensity: 10})
	require.NoError(t, err)
	assert.InDelta(t, 30.0, r.ReactionA, tol)
	assert.InDelta(t, 30.0, r.ReactionB, tol)
}

func TestSolve_TriangularLoadExample(t *testing.T) {
	load := TriangularLoad{PeakIntensity: 20, Start: 0, End: 8}
	r, err := Solve(8, load)
	require.NoError(t, err)

	assert.InDelta(t, 80.0, load.Total(8), tol)
	assert.InDelta(t, 16.0/3.0, load.Centroid(), tol)
	assert.InDelta(t, 160.0/3.0, r.ReactionB, tol)
	assert.InDelta(t, 80.0/3.0, r.ReactionA, tol)
	assert.Equal(t, "53.33", format2(r.ReactionB))
	assert.Equal(t, "26.67", format2(r.ReactionA))
}

func TestSolve_PointLoadEquilibrium(t *testing.T) {
	for _, span := range []float64{0.5, 1, 3.7, 10, 42} {
		for _, p := range []float64{0.1, 1, 25, 1000} {
			for i := 0; i <= 10; i++ {
				a := span * float64(i) / 10
				r, err := Solve(span, PointLoad{Magnitude: p, Position: a})
				require.NoError(t, err)
				assert.InDelta(t, p, r.Sum(), tol, "L=%g P=%g a=%g", span, p, a)
			}
		}
	}
}

func TestSolve_PointLoadAtSupports(t *testing.T) {
	r, err := Solve(5, PointLoad{Magnitude: 12, Position: 0})
	require.NoError(t, err)
	assert.Equal(t, 12.0, r.ReactionA)
	assert.Equal(t, 0.0, r.ReactionB)

	r, err = Solve(5, PointLoad{Magnitude: 12, Position: 5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.ReactionA)
	assert.Equal(t, 12.0, r.ReactionB)
}

func TestSolve_UniformLoadSymmetric(t *testing.T) {
	for _, span := range []float64{0.25, 2, 7.5, 30} {
		for _, w := range []float64{0.5, 3, 18} {
			r, err := Solve(span, UniformLoad{Intensity: w})
			require.NoError(t, err)
			assert.InDelta(t, w*span/2, r.ReactionA, tol)
			assert.Equal(t, r.ReactionA, r.ReactionB)
		}
	}
}

func TestSolve_TriangularFullSpan(t *testing.T) {
	for _, span := range []float64{1, 4, 9.5} {
		for _, w := range []float64{2, 15} {
			r, err := Solve(span, TriangularLoad{PeakIntensity: w, Start: 0, End: span})
			require.NoError(t, err)
			assert.InDelta(t, w*span/2, r.Sum(), tol)
			assert.Greater(t, r.ReactionB, r.ReactionA)
		}
	}
}

func TestSolve_TriangularPartialSpan(t *testing.T) {
	// 12 kN/m peak over 2..5 on a 10 m span: W = 18 kN at x̄ = 4 m
	load := TriangularLoad{PeakIntensity: 12, Start: 2, End: 5}
	r, err := Solve(10, load)
	require.NoError(t, err)
	assert.InDelta(t, 18*4/10.0, r.ReactionB, tol)
	assert.InDelta(t, 18-7.2, r.ReactionA, tol)
	assert.True(t, InEquilibrium(10, load, r, tol))
}

func TestSolve_Idempotent(t *testing.T) {
	loads := []Load{
		PointLoad{Magnitude: 37.3, Position: 2.9},
		UniformLoad{Intensity: 4.1},
		TriangularLoad{PeakIntensity: 7.7, Start: 0.3, End: 6.1},
	}
	for _, l := range loads {
		a, err := Solve(6.3, l)
		require.NoError(t, err)
		b, err := Solve(6.3, l)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(a.ReactionA), math.Float64bits(b.ReactionA))
		assert.Equal(t, math.Float64bits(a.ReactionB), math.Float64bits(b.ReactionB))
	}
}

func TestSolve_InvalidSpan(t *testing.T) {
	for _, span := range []float64{0, -3, math.NaN()} {
		_, err := Solve(span, UniformLoad{Intensity: 5})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSpan), "span %g", span)
	}
}

func TestSolve_UnvalidatedLoadIsConsistent(t *testing.T) {
	// outside the beam: no fault, just a negative reaction
	r, err := Solve(4, PointLoad{Magnitude: 10, Position: 6})
	require.NoError(t, err)
	assert.InDelta(t, -5.0, r.ReactionA, tol)
	assert.InDelta(t, 15.0, r.ReactionB, tol)
}

func TestSolve_NilLoad(t *testing.T) {
	_, err := Solve(4, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLoadGeometry)
}

func TestCalculate_RejectsBeforeSolving(t *testing.T) {
	_, err := Calculate(4, PointLoad{Magnitude: 10, Position: 6})
	assert.ErrorIs(t, err, ErrInvalidLoadGeometry)

	r, err := Calculate(10, PointLoad{Magnitude: 100, Position: 4})
	require.NoError(t, err)
	assert.InDelta(t, 60.0, r.ReactionA, tol)
}

func TestScale(t *testing.T) {
	l := Scale(TriangularLoad{PeakIntensity: 1, Start: 1, End: 3}, 9)
	assert.Equal(t, TriangularLoad{PeakIntensity: 9, Start: 1, End: 3}, l)
	assert.Equal(t, 9.0, Magnitude(l))
	assert.Equal(t, PointLoad{Magnitude: 4, Position: 2}, Scale(PointLoad{Magnitude: 1, Position: 2}, 4))
	assert.Equal(t, UniformLoad{Intensity: 3}, Scale(UniformLoad{Intensity: 1}, 3))
}
