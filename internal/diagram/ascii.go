package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

// BeamDiagramData holds data for drawing a beam schematic in the terminal
type BeamDiagramData struct {
	Span      float64      // m
	Load      statics.Load // nil draws a bare beam
	Reactions statics.ReactionPair
}

// Terminal drawing size (characters)
const (
	asciiBeamChars = 51
	triangleRows   = 4
	graphHeight    = 10
	graphWidth     = 60
)

// DrawASCIIBeam creates an ASCII representation of the loaded beam with
// supports, span dimension and reactions
func DrawASCIIBeam(data BeamDiagramData) string {
	var sb strings.Builder
	n := asciiBeamChars

	col := func(x float64) int {
		if data.Span <= 0 {
			return 0
		}
		c := int(math.Round(x / data.Span * float64(n-1)))
		return clamp(c, 0, n-1)
	}

	sb.WriteString("\n")
	sb.WriteString("  LOADED BEAM\n")
	sb.WriteString("  ───────────\n\n")

	switch l := data.Load.(type) {
	case statics.PointLoad:
		c := col(l.Position)
		sb.WriteString(indent(centerAt(fmt.Sprintf("P = %s kN", formatValue(l.Magnitude)), c, n)))
		sb.WriteString(indent(mark(n, map[int]rune{c: '│'})))
		sb.WriteString(indent(mark(n, map[int]rune{c: '▼'})))

	case statics.UniformLoad:
		sb.WriteString(indent(centerAt(fmt.Sprintf("w = %s kN/m", formatValue(l.Intensity)), n/2, n)))
		arrows := map[int]rune{}
		for c := 0; c < n; c += 5 {
			arrows[c] = '▼'
		}
		arrows[n-1] = '▼'
		sb.WriteString(indent(strings.Repeat("─", n)))
		sb.WriteString(indent(mark(n, arrows)))

	case statics.TriangularLoad:
		s, e := col(l.Start), col(l.End)
		sb.WriteString(indent(centerAt(fmt.Sprintf("wmax = %s kN/m", formatValue(l.PeakIntensity)), e, n)))
		for row := 0; row < triangleRows; row++ {
			// fraction of the peak this row stands for, top row = peak
			level := float64(triangleRows-row) / triangleRows
			cells := map[int]rune{}
			for c := s; c <= e; c++ {
				frac := 1.0
				if e > s {
					frac = float64(c-s) / float64(e-s)
				}
				if frac >= level-1e-9 {
					cells[c] = '▒'
				}
			}
			sb.WriteString(indent(mark(n, cells)))
		}

	default:
		sb.WriteString("\n")
	}

	// beam, supports and labels
	sb.WriteString(indent(strings.Repeat("═", n)))
	sb.WriteString(indent(mark(n, map[int]rune{0: '△', n - 1: '○'})))
	sb.WriteString(indent(mark(n, map[int]rune{0: 'A', n - 1: 'B'})))

	if data.Span > 0 {
		sb.WriteString(indent(dimensionLine(fmt.Sprintf(" %.2f m ", data.Span), n)))
	}

	if data.Load != nil {
		ra := fmt.Sprintf("RA = %.2f kN", data.Reactions.ReactionA)
		rb := fmt.Sprintf("RB = %.2f kN", data.Reactions.ReactionB)
		gap := n - utf8.RuneCountInString(ra) - utf8.RuneCountInString(rb)
		if gap < 2 {
			gap = 2
		}
		sb.WriteString(indent(ra + strings.Repeat(" ", gap) + rb))
	}

	return sb.String()
}

// DrawForceGraphs plots shear and moment along the span as terminal graphs
func DrawForceGraphs(p *statics.ForceProfile) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  SHEAR FORCE DIAGRAM\n")
	sb.WriteString("  ───────────────────\n\n")
	sb.WriteString(asciigraph.Plot(p.Shears(),
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Offset(4),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("V (kN) from x = 0 to %.2f m", p.Span)),
	))
	sb.WriteString("\n\n")

	sb.WriteString("  BENDING MOMENT DIAGRAM\n")
	sb.WriteString("  ──────────────────────\n\n")
	sb.WriteString(asciigraph.Plot(p.Moments(),
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Offset(4),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("M (kN-m), max %.2f at x = %.2f m", p.MaxMoment, p.MaxMomentAt)),
	))
	sb.WriteString("\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if l := utf8.RuneCountInString(line); l > maxLen {
			maxLen = l
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// mark returns a line of n spaces with the given columns replaced
func mark(n int, cells map[int]rune) string {
	line := []rune(strings.Repeat(" ", n))
	for c, r := range cells {
		if c >= 0 && c < n {
			line[c] = r
		}
	}
	return strings.TrimRight(string(line), " ")
}

// centerAt places text centred on column c without leaving the line
func centerAt(text string, c, n int) string {
	w := utf8.RuneCountInString(text)
	start := clamp(c-w/2, 0, max(n-w, 0))
	return strings.Repeat(" ", start) + text
}

func dimensionLine(text string, n int) string {
	w := utf8.RuneCountInString(text)
	fill := n - w - 4
	if fill < 0 {
		fill = 0
	}
	left := fill / 2
	return "|<" + strings.Repeat("─", left) + text + strings.Repeat("─", fill-left) + ">|"
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func indent(s string) string {
	return "  " + s + "\n"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
