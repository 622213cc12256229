package statics

// LoadKind identifies one of the supported load shapes
type LoadKind string

const (
	KindPoint      LoadKind = "point"
	KindUniform    LoadKind = "uniform"
	KindTriangular LoadKind = "triangular"
)

// Load is a single load acting on a simply-supported beam.
// It is implemented only by PointLoad, UniformLoad and TriangularLoad.
type Load interface {
	// Kind returns the load shape
	Kind() LoadKind

	// Total returns the resultant force (kN) for a beam of the given span (m)
	Total(span float64) float64

	load()
}

// PointLoad is a concentrated force at a distance from support A
type PointLoad struct {
	Magnitude float64 // P (kN)
	Position  float64 // a - distance from support A (m)
}

// UniformLoad is a constant intensity applied over the full span
type UniformLoad struct {
	Intensity float64 // w (kN/m)
}

// TriangularLoad rises linearly from zero at Start to PeakIntensity at End
type TriangularLoad struct {
	PeakIntensity float64 // wMax (kN/m)
	Start         float64 // s - zero-intensity end, from support A (m)
	End           float64 // e - peak end, from support A (m)
}

func (PointLoad) Kind() LoadKind      { return KindPoint }
func (UniformLoad) Kind() LoadKind    { return KindUniform }
func (TriangularLoad) Kind() LoadKind { return KindTriangular }

func (p PointLoad) Total(float64) float64 { return p.Magnitude }

func (u UniformLoad) Total(span float64) float64 { return u.Intensity * span }

func (t TriangularLoad) Total(float64) float64 {
	return t.PeakIntensity * t.Length() / 2
}

// Length is the loaded length e - s
func (t TriangularLoad) Length() float64 {
	return t.End - t.Start
}

// Centroid is the resultant's distance from support A. It lies at two
// thirds of the loaded length measured from the zero-intensity end.
func (t TriangularLoad) Centroid() float64 {
	return t.Start + t.Length()*(2.0/3.0)
}

func (PointLoad) load()      {}
func (UniformLoad) load()    {}
func (TriangularLoad) load() {}

// Scale returns a copy of the load with its magnitude replaced. Geometry is kept.
func Scale(l Load, magnitude float64) Load {
	switch v := l.(type) {
	case PointLoad:
		v.Magnitude = magnitude
		return v
	case UniformLoad:
		v.Intensity = magnitude
		return v
	case TriangularLoad:
		v.PeakIntensity = magnitude
		return v
	}
	return l
}

// Magnitude returns P, w or wMax depending on the load shape
func Magnitude(l Load) float64 {
	switch v := l.(type) {
	case PointLoad:
		return v.Magnitude
	case UniformLoad:
		return v.Intensity
	case TriangularLoad:
		return v.PeakIntensity
	}
	return 0
}
