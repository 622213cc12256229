package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/loadcase"
	"github.com/spf13/cobra"
)

var (
	batchFile   string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate reactions for many beams from a file",
	Long: `Calculate support reactions for every case in a JSON, YAML or
Excel (.xlsx) file. Each case is validated on its own; invalid cases
are reported and skipped without stopping the batch.

Example YAML file:
cases:
  - name: B-1
    length: 10
    load: {type: point, magnitude: 100, position: 4}
  - name: B-2
    length: 6
    load:
      type: uniform
      components: {dead: 5, live: 2.5}

Excel files use the first sheet with the header row
  name | type | length | magnitude | position | start | end

Examples:
  gobeam batch --file beams.yaml
  gobeam batch -f beams.xlsx -o results.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to case file (.json, .yaml, .xlsx) [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write results to .json or .xlsx")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cases, err := loadcase.LoadFile(batchFile)
	if err != nil {
		return fmt.Errorf("loading cases: %w", err)
	}
	logger.Info("cases loaded", "file", batchFile, "count", len(cases))

	results := loadcase.Run(cases, logger)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          BATCH SUPPORT REACTIONS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tName\tType\tL (m)\tRA (kN)\tRB (kN)\tStatus\n")
	fmt.Fprintf(w, "  ─\t────\t────\t─────\t───────\t───────\t──────\n")
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "  %d\t%s\t%s\t%.2f\t-\t-\t⚠ %v\n", i+1, r.Case.Name, r.Case.Load.Type, r.Case.Length, r.Err)
			continue
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%.2f\t%.2f\t%.2f\t✓\n", i+1, r.Case.Name, r.Case.Load.Type,
			r.Case.Length, r.Reactions.ReactionA, r.Reactions.ReactionB)
	}
	w.Flush()
	fmt.Fprintln(out)

	failed := loadcase.Failed(results)
	fmt.Fprintf(out, "  %d case(s) solved, %d rejected\n", len(results)-failed, failed)
	if failed > 0 {
		fmt.Fprintln(out, "  Correct the rejected cases and run again.")
	}
	fmt.Fprintln(out)

	if batchOutput == "" {
		return nil
	}
	if err := writeBatchOutput(batchOutput, results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	fmt.Fprintf(out, "Results written to: %s\n", batchOutput)
	return nil
}

func writeBatchOutput(path string, results []loadcase.Result) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadcase.WriteXLSX(path, results)
	case ".json":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := loadcase.WriteJSON(f, results); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return fmt.Errorf("unsupported output %q (use .json or .xlsx)", path)
}
