package statics

import (
	"fmt"
	"math"
)

// DefaultStations is the number of segments used when sampling a profile
const DefaultStations = 50

// Station is a sampled point along the span
type Station struct {
	X      float64 // distance from support A (m)
	Shear  float64 // V (kN)
	Moment float64 // M (kN-m), sagging positive
}

// ForceProfile holds shear and moment sampled along the span
type ForceProfile struct {
	Span     float64
	Stations []Station

	MaxMoment   float64 // largest |M| (kN-m), signed
	MaxMomentAt float64 // location of MaxMoment (m)
}

// Profile samples the internal shear and moment for a solved beam.
// stations <= 0 uses DefaultStations. Point loads also get stations just
// either side of the load so the shear jump is captured.
func Profile(span float64, load Load, r ReactionPair, stations int) (*ForceProfile, error) {
	if !(span > 0) {
		return nil, spanError(fmt.Sprintf("must be positive, got %g", span))
	}
	if stations <= 0 {
		stations = DefaultStations
	}

	xs := make([]float64, 0, stations+3)
	for i := 0; i <= stations; i++ {
		xs = append(xs, span*float64(i)/float64(stations))
	}
	if p, ok := load.(PointLoad); ok {
		xs = insertStation(xs, p.Position)
	}

	prof := &ForceProfile{Span: span, Stations: make([]Station, 0, len(xs))}
	for _, x := range xs {
		f, arm := resultantLeftOf(load, span, x)
		st := Station{
			X:      x,
			Shear:  r.ReactionA - f,
			Moment: r.ReactionA*x - f*arm,
		}
		prof.Stations = append(prof.Stations, st)

		if math.Abs(st.Moment) > math.Abs(prof.MaxMoment) {
			prof.MaxMoment = st.Moment
			prof.MaxMomentAt = x
		}
	}

	return prof, nil
}

// resultantLeftOf returns the load resultant acting on [0, x) and its
// lever arm measured back from x.
func resultantLeftOf(load Load, span, x float64) (float64, float64) {
	switch l := load.(type) {
	case PointLoad:
		// the load belongs to the left segment once x reaches it, so a
		// load on support A already cancels RA at x = 0
		if x >= l.Position {
			return l.Magnitude, x - l.Position
		}
		return 0, 0

	case UniformLoad:
		return l.Intensity * x, x / 2

	case TriangularLoad:
		switch {
		case x <= l.Start:
			return 0, 0
		case x <= l.End:
			d := x - l.Start
			return l.PeakIntensity * d * d / (2 * l.Length()), d / 3
		default:
			return l.Total(span), x - l.Centroid()
		}
	}
	return 0, 0
}

// insertStation adds stations just before and at x, keeping xs sorted
func insertStation(xs []float64, x float64) []float64 {
	if x <= 0 || x >= xs[len(xs)-1] {
		return xs
	}
	eps := xs[len(xs)-1] * 1e-9
	out := make([]float64, 0, len(xs)+2)
	added := false
	for _, v := range xs {
		if !added && v >= x {
			out = append(out, x-eps)
			if v != x {
				out = append(out, x)
			}
			added = true
		}
		out = append(out, v)
	}
	return out
}

// Shears returns the sampled shear values in station order
func (p *ForceProfile) Shears() []float64 {
	out := make([]float64, len(p.Stations))
	for i, s := range p.Stations {
		out[i] = s.Shear
	}
	return out
}

// Moments returns the sampled moment values in station order
func (p *ForceProfile) Moments() []float64 {
	out := make([]float64, len(p.Stations))
	for i, s := range p.Stations {
		out[i] = s.Moment
	}
	return out
}
