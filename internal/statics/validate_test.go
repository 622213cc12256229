package statics

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func format2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		span  float64
		load  Load
		kind  error
		field string
	}{
		{"point ok", 10, PointLoad{Magnitude: 100, Position: 4}, nil, ""},
		{"point at A", 10, PointLoad{Magnitude: 1, Position: 0}, nil, ""},
		{"point at B", 10, PointLoad{Magnitude: 1, Position: 10}, nil, ""},
		{"uniform ok", 6, UniformLoad{Intensity: 10}, nil, ""},
		{"triangular ok", 8, TriangularLoad{PeakIntensity: 20, Start: 0, End: 8}, nil, ""},
		{"triangular partial", 8, TriangularLoad{PeakIntensity: 20, Start: 1, End: 3}, nil, ""},

		{"zero span", 0, UniformLoad{Intensity: 10}, ErrInvalidSpan, "length"},
		{"negative span", -1, UniformLoad{Intensity: 10}, ErrInvalidSpan, "length"},
		{"NaN span", math.NaN(), UniformLoad{Intensity: 10}, ErrInvalidSpan, "length"},
		{"infinite span", math.Inf(1), UniformLoad{Intensity: 10}, ErrInvalidSpan, "length"},

		{"point zero load", 10, PointLoad{Magnitude: 0, Position: 4}, ErrInvalidLoadGeometry, "load"},
		{"point negative load", 10, PointLoad{Magnitude: -5, Position: 4}, ErrInvalidLoadGeometry, "load"},
		{"point before A", 10, PointLoad{Magnitude: 5, Position: -0.1}, ErrInvalidLoadGeometry, "position"},
		{"point beyond B", 10, PointLoad{Magnitude: 5, Position: 10.1}, ErrInvalidLoadGeometry, "position"},
		{"point NaN position", 10, PointLoad{Magnitude: 5, Position: math.NaN()}, ErrInvalidLoadGeometry, "position"},

		{"uniform zero", 6, UniformLoad{Intensity: 0}, ErrInvalidLoadGeometry, "intensity"},
		{"uniform NaN", 6, UniformLoad{Intensity: math.NaN()}, ErrInvalidLoadGeometry, "intensity"},

		{"triangular zero peak", 8, TriangularLoad{PeakIntensity: 0, Start: 0, End: 8}, ErrInvalidLoadGeometry, "peak intensity"},
		{"triangular negative start", 8, TriangularLoad{PeakIntensity: 1, Start: -1, End: 8}, ErrInvalidLoadGeometry, "start"},
		{"triangular start equals end", 8, TriangularLoad{PeakIntensity: 1, Start: 3, End: 3}, ErrInvalidLoadGeometry, "end"},
		{"triangular reversed", 8, TriangularLoad{PeakIntensity: 1, Start: 5, End: 3}, ErrInvalidLoadGeometry, "end"},
		{"triangular beyond B", 8, TriangularLoad{PeakIntensity: 1, Start: 0, End: 8.5}, ErrInvalidLoadGeometry, "end"},

		{"no load", 8, nil, ErrInvalidLoadGeometry, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.span, tt.load)
			if tt.kind == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(10, PointLoad{Magnitude: 5, Position: 12})
	require.Error(t, err)
	assert.Equal(t, "invalid load geometry: position must be within 0 and 10 m, got 12", err.Error())
}
