package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/alexiusacademia/gobeam/internal/statics"
	"github.com/spf13/cobra"
)

var (
	// Beam span (m)
	reactionLength float64

	// Unfactored components of the load magnitude
	reactionComponents nscp.LoadComponents
	reactionSimplified bool

	// Output options
	reactionShowDiagram bool
	reactionSVGFile     string
	reactionPlotFile    string
	reactionReportFile  string
	reactionProject     string
)

var reactionCmd = &cobra.Command{
	Use:   "reaction",
	Short: "Support reactions of a simply supported beam",
	Long: `Calculate the support reactions of a simply supported beam
carrying a single load. Support A is at x = 0, support B at x = L.

Subcommands:
  point       - Concentrated load P at distance a from A
  uniform     - Uniform load w over the full span
  triangular  - Load rising linearly from 0 at start to wmax at end

The load magnitude can be given directly or as unfactored components
(--dead, --live, ...), in which case the governing NSCP 2015 load
combination is used.`,
}

func init() {
	rootCmd.AddCommand(reactionCmd)

	flags := reactionCmd.PersistentFlags()
	flags.Float64VarP(&reactionLength, "length", "L", 0, "Beam span L (m) [required]")
	reactionCmd.MarkPersistentFlagRequired("length")

	// Load components
	flags.Float64Var(&reactionComponents.Dead, "dead", 0, "Dead load component D")
	flags.Float64Var(&reactionComponents.Live, "live", 0, "Live load component L")
	flags.Float64Var(&reactionComponents.Roof, "roof", 0, "Roof live load component Lr")
	flags.Float64Var(&reactionComponents.Wind, "wind", 0, "Wind load component W")
	flags.Float64Var(&reactionComponents.Earthquake, "earthquake", 0, "Earthquake load component E")
	flags.Float64Var(&reactionComponents.Rain, "rain", 0, "Rain load component R")
	flags.BoolVar(&reactionSimplified, "simplified", false, "Use simplified combinations (1.4D and 1.2D+1.6L)")

	// Output
	flags.BoolVar(&reactionShowDiagram, "diagram", false, "Show ASCII beam, shear and moment diagrams")
	flags.StringVar(&reactionSVGFile, "svg", "", "Export the beam schematic to an SVG file")
	flags.StringVar(&reactionPlotFile, "plot", "", "Export shear/moment diagrams (png, svg, pdf)")
	flags.StringVar(&reactionReportFile, "report", "", "Write a PDF calculation report")
	flags.StringVar(&reactionProject, "project", "", "Project name printed on the report")
}

// factorLoad replaces the load magnitude with the governing factored value
// when components were given. The note is empty when nothing was factored
// or no combination gives a positive value.
func factorLoad(load statics.Load) (statics.Load, string) {
	if reactionComponents.IsZero() {
		return load, ""
	}

	combos := nscp.LoadCombinations
	if reactionSimplified {
		combos = nscp.SimplifiedCombinations
	}
	value, combo := nscp.Governing(reactionComponents, combos)
	if combo.ID == "" {
		return statics.Scale(load, 0), ""
	}
	note := fmt.Sprintf("Factored by NSCP 2015 combination %s (%s): %.2f", combo.ID, combo.Description, value)
	return statics.Scale(load, value), note
}

// runReaction validates, solves and reports one beam. Input errors are
// printed for the user to correct rather than returned. magnitudeFlag names
// the flag that sets the load magnitude directly.
func runReaction(cmd *cobra.Command, load statics.Load, magnitudeFlag string) {
	out := cmd.OutOrStdout()

	if !reactionComponents.IsZero() && cmd.Flags().Changed(magnitudeFlag) {
		fmt.Fprintf(out, "Note: --%s is ignored; the magnitude is factored from the load components.\n", magnitudeFlag)
	}

	load, note := factorLoad(load)
	logger.Debug("solving", "kind", load.Kind(), "length", reactionLength, "magnitude", statics.Magnitude(load))

	if err := statics.Validate(reactionLength, load); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		fmt.Fprintln(out, "Please correct your input and try again.")
		return
	}

	reactions, err := statics.Solve(reactionLength, load)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	profile, err := statics.Profile(reactionLength, load, reactions, cfg.Stations)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	printReactionReport(out, reactionLength, load, reactions, profile, note)

	if reactionShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIIBeam(diagram.BeamDiagramData{
			Span:      reactionLength,
			Load:      load,
			Reactions: reactions,
		}))
		fmt.Fprintln(out, diagram.DrawForceGraphs(profile))
	}

	if reactionSVGFile != "" {
		layout := diagram.NewLayout(reactionLength, load, reactions, layoutOptions(cfg))
		if err := diagram.ExportSVG(layout, reactionSVGFile); err != nil {
			fmt.Fprintf(out, "Error exporting schematic: %v\n", err)
		} else {
			fmt.Fprintf(out, "Schematic exported to: %s\n", reactionSVGFile)
		}
	}

	if reactionPlotFile != "" {
		if err := diagram.ExportForceDiagram(profile, reactionPlotFile); err != nil {
			fmt.Fprintf(out, "Error exporting diagram: %v\n", err)
		} else {
			fmt.Fprintf(out, "Diagram exported to: %s\n", reactionPlotFile)
		}
	}

	if reactionReportFile != "" {
		err := report.WritePDF(reactionReportFile, report.Report{
			Project:      reactionProject,
			Author:       cfg.Author,
			Span:         reactionLength,
			Load:         load,
			Reactions:    reactions,
			Profile:      profile,
			FactoredNote: note,
		})
		if err != nil {
			fmt.Fprintf(out, "Error writing report: %v\n", err)
		} else {
			fmt.Fprintf(out, "Report written to: %s\n", reactionReportFile)
		}
	}
}

func printReactionReport(out io.Writer, span float64, load statics.Load, r statics.ReactionPair, p *statics.ForceProfile, note string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          SIMPLY SUPPORTED BEAM - SUPPORT REACTIONS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, row := range report.InputRows(span, load) {
		fmt.Fprintf(w, "  %s:\t%s\n", row[0], row[1])
	}
	w.Flush()
	if note != "" {
		fmt.Fprintf(out, "  %s\n", note)
	}
	fmt.Fprintln(out)

	// Equilibrium
	total := load.Total(span)
	fmt.Fprintln(out, "EQUILIBRIUM:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total applied load (W):\t%.2f kN\n", total)
	fmt.Fprintf(w, "  ΣM about A:\tRB·L = %.2f kN-m\n", r.ReactionB*span)
	check := "✓"
	if !statics.InEquilibrium(span, load, r, 1e-6*max(1, total)) {
		check = "⚠"
	}
	fmt.Fprintf(w, "  ΣF (RA + RB = W):\t%.2f kN %s\n", r.Sum(), check)
	fmt.Fprintf(w, "  Maximum moment:\t%.2f kN-m at x = %.2f m\n", p.MaxMoment, p.MaxMomentAt)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("SUPPORT REACTIONS", []string{
		fmt.Sprintf("RA = %.2f kN", r.ReactionA),
		fmt.Sprintf("RB = %.2f kN", r.ReactionB),
	}))
	fmt.Fprintln(out)
}

func layoutOptions(c config.Config) diagram.Options {
	return diagram.Options{MaxWidth: c.MaxWidth, PxPerMeter: c.PxPerMeter}
}
