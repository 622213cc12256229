package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

// ExportForceDiagram exports the shear and moment diagrams of a solved beam
// to an image file. The format follows the extension (png, svg, pdf);
// anything else is saved as png with the extension appended.
func ExportForceDiagram(p *statics.ForceProfile, filename string) error {
	if p == nil || len(p.Stations) == 0 {
		return fmt.Errorf("no force profile to export")
	}

	plt := plot.New()
	plt.Title.Text = "Shear and Bending Moment"
	plt.X.Label.Text = "Distance from support A (m)"
	plt.Y.Label.Text = "V (kN), M (kN-m)"
	plt.Add(plotter.NewGrid())

	shear := make(plotter.XYs, len(p.Stations))
	moment := make(plotter.XYs, len(p.Stations))
	for i, s := range p.Stations {
		shear[i] = plotter.XY{X: s.X, Y: s.Shear}
		moment[i] = plotter.XY{X: s.X, Y: s.Moment}
	}

	// Beam axis
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: p.Span, Y: 0}})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(2)
	axis.LineStyle.Color = color.Black
	plt.Add(axis)

	shearLine, err := plotter.NewLine(shear)
	if err != nil {
		return err
	}
	shearLine.LineStyle.Width = vg.Points(1.5)
	shearLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	plt.Add(shearLine)
	plt.Legend.Add("Shear V (kN)", shearLine)

	momentLine, err := plotter.NewLine(moment)
	if err != nil {
		return err
	}
	momentLine.LineStyle.Width = vg.Points(1.5)
	momentLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	momentLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	plt.Add(momentLine)
	plt.Legend.Add("Moment M (kN-m)", momentLine)
	plt.Legend.Top = true

	// Mark the peak moment
	peak, err := plotter.NewScatter(plotter.XYs{{X: p.MaxMomentAt, Y: p.MaxMoment}})
	if err != nil {
		return err
	}
	peak.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	peak.GlyphStyle.Radius = vg.Points(4)
	peak.GlyphStyle.Shape = draw.CircleGlyph{}
	plt.Add(peak)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: p.MaxMomentAt, Y: p.MaxMoment}},
		Labels: []string{fmt.Sprintf("Mmax=%.2f kN-m", p.MaxMoment)},
	})
	if err != nil {
		return err
	}
	plt.Add(lbl)

	width := 8 * vg.Inch
	height := 5 * vg.Inch

	// Create directory if needed
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return plt.Save(width, height, filename)
	default:
		return plt.Save(width, height, filename+".png")
	}
}
