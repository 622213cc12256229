package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	// Unfactored load components
	factorComponents nscp.LoadComponents

	// Options
	factorShowAll    bool
	factorSimplified bool
)

var factorCmd = &cobra.Command{
	Use:   "factor",
	Short: "Calculate a factored load using NSCP load combinations",
	Long: `Calculate the factored load magnitude based on NSCP 2015 load
combinations (Section 203.3).

Provide the unfactored components of a load (kN for point loads,
kN/m for distributed loads). The governing value is what the
reaction commands use when the same components are passed to them.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  gobeam factor --dead 5 --live 2.5
  gobeam factor --dead 5 --live 2.5 --wind 3 --all`,
	Run: runFactor,
}

func init() {
	rootCmd.AddCommand(factorCmd)

	factorCmd.Flags().Float64VarP(&factorComponents.Dead, "dead", "d", 0, "Dead load D")
	factorCmd.Flags().Float64VarP(&factorComponents.Live, "live", "l", 0, "Live load L")
	factorCmd.Flags().Float64VarP(&factorComponents.Roof, "roof", "r", 0, "Roof live load Lr")
	factorCmd.Flags().Float64VarP(&factorComponents.Wind, "wind", "w", 0, "Wind load W")
	factorCmd.Flags().Float64VarP(&factorComponents.Earthquake, "earthquake", "e", 0, "Earthquake load E")
	factorCmd.Flags().Float64VarP(&factorComponents.Rain, "rain", "R", 0, "Rain load R")

	factorCmd.Flags().BoolVarP(&factorShowAll, "all", "a", false, "Show all load combination results")
	factorCmd.Flags().BoolVarP(&factorSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runFactor(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	c := factorComponents

	if c.IsZero() {
		fmt.Fprintln(out, "Error: Please provide at least one unfactored load component.")
		fmt.Fprintln(out, "Use 'gobeam factor --help' for usage information.")
		return
	}

	combinations := nscp.LoadCombinations
	if factorSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          NSCP 2015 FACTORED LOAD CALCULATION")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "UNFACTORED LOADS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value float64
	}{
		{"Dead Load (D)", c.Dead},
		{"Live Load (L)", c.Live},
		{"Roof Live Load (Lr)", c.Roof},
		{"Wind Load (W)", c.Wind},
		{"Earthquake Load (E)", c.Earthquake},
		{"Rain Load (R)", c.Rain},
	}
	for _, row := range rows {
		if row.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", row.label, row.value)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	maxValue, governingCombo := nscp.Governing(c, combinations)

	if factorShowAll {
		fmt.Fprintln(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tFactored\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\n")
		for _, combo := range combinations {
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factored(c), marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	if governingCombo.ID == "" {
		fmt.Fprintln(out, "  No combination gives a positive factored load.")
		fmt.Fprintln(out)
		return
	}
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Fprintln(out)
	fmt.Fprint(out, drawFactoredBox(maxValue))
	fmt.Fprintln(out)
}

func drawFactoredBox(v float64) string {
	return fmt.Sprintf("  ╔═══════════════════════════════════╗\n"+
		"  ║  FACTORED LOAD = %-17.2f║\n"+
		"  ╚═══════════════════════════════════╝\n", v)
}
