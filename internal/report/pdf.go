// Package report renders a one-page PDF calculation sheet for a solved beam.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

// Report holds everything printed on the calculation sheet
type Report struct {
	Title   string
	Project string
	Author  string
	Date    time.Time

	Span      float64
	Load      statics.Load
	Reactions statics.ReactionPair
	Profile   *statics.ForceProfile // optional

	// FactoredNote explains how the load magnitude was factored, if it was
	FactoredNote string
}

// WritePDF writes the report to path, creating its directory
func WritePDF(path string, r Report) error {
	if r.Load == nil {
		return fmt.Errorf("report has no load")
	}
	if r.Title == "" {
		r.Title = "Beam Reaction Calculation"
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, true)
	if r.Author != "" {
		pdf.SetAuthor(r.Author, true)
	}
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if r.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", r.Project))
		pdf.Ln(6)
	}
	if r.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", r.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", r.Date.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Input data")
	for _, row := range InputRows(r.Span, r.Load) {
		keyValue(pdf, row[0], row[1])
	}
	if r.FactoredNote != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, r.FactoredNote, "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
	}
	pdf.Ln(4)

	section(pdf, "Support reactions")
	keyValue(pdf, "Reaction at A (RA)", fmt.Sprintf("%.2f kN", r.Reactions.ReactionA))
	keyValue(pdf, "Reaction at B (RB)", fmt.Sprintf("%.2f kN", r.Reactions.ReactionB))
	total := r.Load.Total(r.Span)
	keyValue(pdf, "Total applied load", fmt.Sprintf("%.2f kN", total))
	check := "OK"
	if !statics.InEquilibrium(r.Span, r.Load, r.Reactions, 1e-6*max(1, total)) {
		check = "NOT SATISFIED"
	}
	keyValue(pdf, "Equilibrium RA + RB = W", check)
	pdf.Ln(4)

	if r.Profile != nil {
		section(pdf, "Internal forces")
		keyValue(pdf, "Maximum moment", fmt.Sprintf("%.2f kN-m at x = %.2f m", r.Profile.MaxMoment, r.Profile.MaxMomentAt))
		pdf.Ln(4)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// InputRows lists the beam and load inputs as label/value pairs
func InputRows(span float64, load statics.Load) [][2]string {
	rows := [][2]string{{"Beam length (L)", fmt.Sprintf("%.2f m", span)}}

	switch l := load.(type) {
	case statics.PointLoad:
		rows = append(rows,
			[2]string{"Load type", "Point load"},
			[2]string{"Load (P)", fmt.Sprintf("%.2f kN", l.Magnitude)},
			[2]string{"Distance from A (a)", fmt.Sprintf("%.2f m", l.Position)},
		)
	case statics.UniformLoad:
		rows = append(rows,
			[2]string{"Load type", "Uniform distributed load"},
			[2]string{"Intensity (w)", fmt.Sprintf("%.2f kN/m", l.Intensity)},
		)
	case statics.TriangularLoad:
		rows = append(rows,
			[2]string{"Load type", "Triangular distributed load"},
			[2]string{"Peak intensity (wmax)", fmt.Sprintf("%.2f kN/m", l.PeakIntensity)},
			[2]string{"Start (zero intensity)", fmt.Sprintf("%.2f m", l.Start)},
			[2]string{"End (peak)", fmt.Sprintf("%.2f m", l.End)},
			[2]string{"Resultant location from A", fmt.Sprintf("%.3f m", l.Centroid())},
		)
	}

	return rows
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func keyValue(pdf *gofpdf.Fpdf, key, value string) {
	pdf.CellFormat(70, 6, key, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
