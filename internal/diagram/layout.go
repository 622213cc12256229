package diagram

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

// Fixed drawing geometry (px). The beam is drawn left to right starting at
// OriginX with its top edge on BeamY.
const (
	OriginX        = 50.0
	BeamY          = 200.0
	BeamThickness  = 10.0
	DimensionY     = 250.0
	ArrowSpacing   = 50.0
	TriangleArrows = 5

	fallbackWidth = 500.0
	canvasHeight  = 300.0
	canvasMargin  = 100.0
)

// Options controls the horizontal scaling of the schematic
type Options struct {
	MaxWidth   float64 // px
	PxPerMeter float64
}

// DefaultOptions returns the standard 100 px/m scale capped at 700 px
func DefaultOptions() Options {
	return Options{MaxWidth: 700, PxPerMeter: 100}
}

// Point is a canvas coordinate (px)
type Point struct {
	X float64
	Y float64
}

// Arrow is a vertical arrow from Tail to Head
type Arrow struct {
	X    float64
	Tail float64 // y of the tail
	Head float64 // y of the arrow head
}

// Down reports whether the arrow points down the canvas
func (a Arrow) Down() bool {
	return a.Head > a.Tail
}

// Label is an annotation anchored at its middle
type Label struct {
	X    float64
	Y    float64
	Text string
}

// Layout is the resolved geometry of a beam schematic. It holds no
// references to the renderer and can be drawn as SVG or inspected directly.
type Layout struct {
	CanvasWidth  float64
	CanvasHeight float64

	BeamWidth float64 // scaled span (px)
	SupportA  float64 // x of support A
	SupportB  float64 // x of support B

	Kind       statics.LoadKind // empty when no load is drawn
	LoadArrows []Arrow
	LoadShape  []Point // triangular load outline
	LoadLabel  *Label

	Dimension      Label
	DimensionStart float64
	DimensionEnd   float64

	ReactionArrows []Arrow // A then B
	ReactionLabels []Label // A then B
}

// NewLayout scales the span into at most opts.MaxWidth pixels and places the
// load glyphs proportionally along it. A nil load yields a bare beam with
// its dimension and no reactions.
func NewLayout(span float64, load statics.Load, r statics.ReactionPair, opts Options) *Layout {
	if opts.MaxWidth <= 0 || opts.PxPerMeter <= 0 {
		opts = DefaultOptions()
	}

	width := fallbackWidth
	if span > 0 {
		width = math.Min(opts.MaxWidth, span*opts.PxPerMeter)
	}

	l := &Layout{
		CanvasWidth:  OriginX + width + canvasMargin,
		CanvasHeight: canvasHeight,
		BeamWidth:    width,
		SupportA:     OriginX,
		SupportB:     OriginX + width,
	}

	if span > 0 {
		l.DimensionStart = OriginX
		l.DimensionEnd = OriginX + width
		l.Dimension = Label{X: OriginX + width/2, Y: DimensionY - 5, Text: formatValue(span) + " m"}
	}

	if load == nil || !(span > 0) {
		return l
	}

	toX := func(x float64) float64 {
		return OriginX + x/span*width
	}

	l.Kind = load.Kind()
	switch ld := load.(type) {
	case statics.PointLoad:
		x := toX(ld.Position)
		l.LoadArrows = []Arrow{{X: x, Tail: BeamY - 50, Head: BeamY}}
		l.LoadLabel = &Label{X: x, Y: BeamY - 60, Text: formatValue(ld.Magnitude) + " kN"}

	case statics.UniformLoad:
		n := int(math.Floor(width / ArrowSpacing))
		for i := 0; i < n; i++ {
			x := OriginX + float64(i)*ArrowSpacing
			l.LoadArrows = append(l.LoadArrows, Arrow{X: x, Tail: BeamY - 40, Head: BeamY})
		}
		l.LoadLabel = &Label{X: OriginX + width/2, Y: BeamY - 50, Text: formatValue(ld.Intensity) + " kN/m"}

	case statics.TriangularLoad:
		startX, endX := toX(ld.Start), toX(ld.End)
		l.LoadShape = []Point{{startX, BeamY}, {endX, BeamY}, {endX, BeamY - 40}}
		// arrow length follows the intensity; the zero end has none
		for i := 1; i <= TriangleArrows; i++ {
			f := float64(i) / TriangleArrows
			l.LoadArrows = append(l.LoadArrows, Arrow{
				X:    startX + f*(endX-startX),
				Tail: BeamY - f*40,
				Head: BeamY,
			})
		}
		l.LoadLabel = &Label{X: (startX + endX) / 2, Y: BeamY - 50, Text: formatValue(ld.PeakIntensity) + " kN/m (max)"}
	}

	l.ReactionArrows = []Arrow{
		{X: OriginX + 10, Tail: BeamY, Head: BeamY - 20},
		{X: OriginX + width + 10, Tail: BeamY, Head: BeamY - 20},
	}
	l.ReactionLabels = []Label{
		{X: OriginX + 10, Y: BeamY - 30, Text: fmt.Sprintf("RA = %.2f kN", r.ReactionA)},
		{X: OriginX + width + 10, Y: BeamY - 30, Text: fmt.Sprintf("RB = %.2f kN", r.ReactionB)},
	}

	return l
}

// formatValue prints an input value the way it was typed: 4, 2.5, 0.125
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
