// Package loadcase reads batches of beam load cases from files and
// writes their solved reactions back out.
package loadcase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/statics"
)

// File is the JSON/YAML document holding a list of cases
type File struct {
	Cases []Case `json:"cases" yaml:"cases"`
}

// Case is one beam with its single load
type Case struct {
	Name   string   `json:"name" yaml:"name"`
	Length float64  `json:"length" yaml:"length"` // m
	Load   LoadSpec `json:"load" yaml:"load"`
}

// LoadSpec describes a load shape in file form. Magnitude is P (kN) for a
// point load, w (kN/m) for a uniform load and wMax (kN/m) for a triangular
// load. When Components is given the governing NSCP factored value is used
// instead of Magnitude.
//
// Geometry fields are nil when absent from the file. A point load needs
// Position and a triangular load needs End; a missing Start means 0.
type LoadSpec struct {
	Type       string               `json:"type" yaml:"type"`
	Magnitude  float64              `json:"magnitude,omitempty" yaml:"magnitude,omitempty"`
	Position   *float64             `json:"position,omitempty" yaml:"position,omitempty"`
	Start      *float64             `json:"start,omitempty" yaml:"start,omitempty"`
	End        *float64             `json:"end,omitempty" yaml:"end,omitempty"`
	Components *nscp.LoadComponents `json:"components,omitempty" yaml:"components,omitempty"`
	Simplified bool                 `json:"simplified,omitempty" yaml:"simplified,omitempty"`
}

// ToLoad converts the spec to a solver load, applying load factors when
// components are present
func (s LoadSpec) ToLoad() (statics.Load, error) {
	magnitude := s.Magnitude
	if s.Components != nil && !s.Components.IsZero() {
		combos := nscp.LoadCombinations
		if s.Simplified {
			combos = nscp.SimplifiedCombinations
		}
		magnitude, _ = nscp.Governing(*s.Components, combos)
	}

	switch statics.LoadKind(strings.ToLower(strings.TrimSpace(s.Type))) {
	case statics.KindPoint:
		if s.Position == nil {
			return nil, missingField("position")
		}
		return statics.PointLoad{Magnitude: magnitude, Position: *s.Position}, nil
	case statics.KindUniform:
		return statics.UniformLoad{Intensity: magnitude}, nil
	case statics.KindTriangular:
		if s.End == nil {
			return nil, missingField("end")
		}
		return statics.TriangularLoad{PeakIntensity: magnitude, Start: valueOr(s.Start, 0), End: *s.End}, nil
	}
	return nil, &statics.ValidationError{
		Kind:  statics.ErrInvalidLoadGeometry,
		Field: "type",
		Msg:   fmt.Sprintf("must be point, uniform or triangular, got %q", s.Type),
	}
}

func missingField(field string) error {
	return &statics.ValidationError{Kind: statics.ErrInvalidLoadGeometry, Field: field, Msg: "is required"}
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// LoadFile reads cases from a .json, .yaml/.yml or .xlsx file
func LoadFile(path string) ([]Case, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return LoadXLSX(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported case file %q (use .json, .yaml or .xlsx)", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("%s contains no cases", path)
	}

	return f.Cases, nil
}
