package diagram

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

const (
	colorBeam      = "#374151"
	colorSupport   = "#4b5563"
	colorPoint     = "#ef4444"
	colorUniform   = "#f59e0b"
	colorTriangle  = "#10b981"
	colorDimension = "#6b7280"
	colorReaction  = "#6366f1"
)

// WriteSVG draws the layout as an SVG document
func WriteSVG(w io.Writer, l *Layout) {
	canvas := svg.New(w)
	canvas.Start(px(l.CanvasWidth), px(l.CanvasHeight))
	canvas.Title("Simply supported beam")
	canvas.Rect(0, 0, px(l.CanvasWidth), px(l.CanvasHeight), "fill:#ffffff")

	// beam and supports
	canvas.Gid("beam")
	canvas.Rect(px(OriginX), px(BeamY), px(l.BeamWidth), px(BeamThickness), "fill:"+colorBeam)
	canvas.Gend()

	canvas.Gid("supports")
	for i, x := range []float64{l.SupportA, l.SupportB} {
		top := BeamY + BeamThickness
		canvas.Polygon(
			[]int{px(x), px(x - 10), px(x + 10)},
			[]int{px(top), px(top + 18), px(top + 18)},
			"fill:"+colorSupport,
		)
		canvas.Text(px(x-18), px(top+14), []string{"A", "B"}[i], "font-size:12px;fill:"+colorSupport)
	}
	canvas.Gend()

	canvas.Gid("loads")
	color := loadColor(l)
	if len(l.LoadShape) > 0 {
		xs := make([]int, len(l.LoadShape))
		ys := make([]int, len(l.LoadShape))
		for i, p := range l.LoadShape {
			xs[i], ys[i] = px(p.X), px(p.Y)
		}
		canvas.Polygon(xs, ys, "fill:none;stroke-width:2;stroke:"+color)
	}
	for _, a := range l.LoadArrows {
		drawArrow(canvas, a, color, 2)
	}
	if l.LoadLabel != nil {
		drawLabel(canvas, *l.LoadLabel, color, 12, true)
	}
	canvas.Gend()

	canvas.Gid("dimensions")
	if l.DimensionEnd > l.DimensionStart {
		y := px(DimensionY)
		canvas.Line(px(l.DimensionStart), y, px(l.DimensionEnd), y, "stroke-width:1;stroke:"+colorDimension)
		canvas.Polygon(
			[]int{px(l.DimensionStart + 5), px(l.DimensionStart + 5), px(l.DimensionStart)},
			[]int{y - 5, y + 5, y},
			"fill:"+colorDimension,
		)
		canvas.Polygon(
			[]int{px(l.DimensionEnd - 5), px(l.DimensionEnd - 5), px(l.DimensionEnd)},
			[]int{y - 5, y + 5, y},
			"fill:"+colorDimension,
		)
		drawLabel(canvas, l.Dimension, colorDimension, 12, false)
	}
	for _, a := range l.ReactionArrows {
		drawArrow(canvas, a, colorReaction, 3)
	}
	for _, lbl := range l.ReactionLabels {
		drawLabel(canvas, lbl, colorReaction, 11, true)
	}
	canvas.Gend()

	canvas.End()
}

// ExportSVG writes the layout to an .svg file, creating its directory
func ExportSVG(l *Layout, filename string) error {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	WriteSVG(f, l)
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

func drawArrow(canvas *svg.SVG, a Arrow, color string, stroke int) {
	x := px(a.X)
	canvas.Line(x, px(a.Tail), x, px(a.Head), fmt.Sprintf("stroke-width:%d;stroke:%s", stroke, color))

	// head is a small triangle whose tip sits on Head
	back := a.Head - 5
	if !a.Down() {
		back = a.Head + 5
	}
	canvas.Polygon(
		[]int{px(a.X - 4), px(a.X + 4), x},
		[]int{px(back), px(back), px(a.Head)},
		"fill:"+color,
	)
}

func drawLabel(canvas *svg.SVG, l Label, color string, size int, bold bool) {
	style := fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:%s", size, color)
	if bold {
		style += ";font-weight:bold"
	}
	canvas.Text(px(l.X), px(l.Y), l.Text, style)
}

func loadColor(l *Layout) string {
	switch l.Kind {
	case statics.KindPoint:
		return colorPoint
	case statics.KindUniform:
		return colorUniform
	case statics.KindTriangular:
		return colorTriangle
	}
	return colorDimension
}

func px(v float64) int {
	return int(math.Round(v))
}
