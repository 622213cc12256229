package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag values and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestReactionPoint(t *testing.T) {
	out, err := execute(t, "reaction", "point", "--length", "10", "--load", "100", "--position", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "RA = 60.00 kN")
	assert.Contains(t, out, "RB = 40.00 kN")
	assert.Contains(t, out, "100.00 kN ✓")
}

func TestReactionUniform(t *testing.T) {
	out, err := execute(t, "reaction", "uniform", "-L", "6", "-w", "10", "--diagram")
	require.NoError(t, err)
	assert.Contains(t, out, "RA = 30.00 kN")
	assert.Contains(t, out, "RB = 30.00 kN")
	assert.Contains(t, out, "LOADED BEAM")
	assert.Contains(t, out, "BENDING MOMENT DIAGRAM")
}

func TestReactionTriangular(t *testing.T) {
	out, err := execute(t, "reaction", "triangular", "-L", "8", "--peak", "20", "--start", "0", "--end", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "RA = 26.67 kN")
	assert.Contains(t, out, "RB = 53.33 kN")
	assert.Contains(t, out, "5.333 m")
}

func TestReactionRejectsInvalidInput(t *testing.T) {
	out, err := execute(t, "reaction", "triangular", "-L", "8", "--peak", "20", "--start", "3", "--end", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: invalid load geometry")
	assert.Contains(t, out, "correct your input")
	assert.NotContains(t, out, "SUPPORT REACTIONS")

	out, err = execute(t, "reaction", "point", "-L", "10", "-P", "5", "-a", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "position must be within")
}

func TestReactionRequiresLength(t *testing.T) {
	_, err := execute(t, "reaction", "uniform", "-w", "10")
	assert.Error(t, err)
}

func TestReactionFactored(t *testing.T) {
	out, err := execute(t, "reaction", "uniform", "-L", "6", "--dead", "5", "--live", "2.5", "--simplified")
	require.NoError(t, err)
	assert.Contains(t, out, "combination 2 (1.2D + 1.6L): 10.00")
	assert.Contains(t, out, "RA = 30.00 kN")
}

func TestReactionFactoredOverridesMagnitude(t *testing.T) {
	out, err := execute(t, "reaction", "point", "-L", "10", "-P", "100", "-a", "4", "--dead", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Note: --load is ignored")
	assert.Contains(t, out, "combination 1 (1.4D): 14.00")
	assert.Contains(t, out, "RA = 8.40 kN")

	out, err = execute(t, "reaction", "point", "-L", "10", "-a", "4", "--dead", "10")
	require.NoError(t, err)
	assert.NotContains(t, out, "Note:")
}

func TestReactionFactoredNonPositive(t *testing.T) {
	out, err := execute(t, "reaction", "uniform", "-L", "6", "--dead=-5", "--live=-2")
	require.NoError(t, err)
	assert.NotContains(t, out, "combination  ()")
	assert.Contains(t, out, "intensity must be positive")
	assert.NotContains(t, out, "SUPPORT REACTIONS")
}

func TestReactionExports(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "beam.svg")
	plotPath := filepath.Join(dir, "forces.png")
	pdfPath := filepath.Join(dir, "report.pdf")

	out, err := execute(t, "reaction", "point", "-L", "5", "-P", "12", "-a", "2",
		"--svg", svgPath, "--plot", plotPath, "--report", pdfPath, "--project", "Test")
	require.NoError(t, err)
	assert.Contains(t, out, "Schematic exported to")
	assert.Contains(t, out, "Diagram exported to")
	assert.Contains(t, out, "Report written to")

	for _, p := range []string{svgPath, plotPath, pdfPath} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestFactor(t *testing.T) {
	out, err := execute(t, "factor", "--dead", "50", "--live", "30", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "← GOVERNS")
	assert.Contains(t, out, "Governing Combination: 2")

	out, err = execute(t, "factor")
	require.NoError(t, err)
	assert.Contains(t, out, "at least one unfactored load component")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	cases := filepath.Join(dir, "cases.yaml")
	require.NoError(t, os.WriteFile(cases, []byte(`cases:
  - name: B-1
    length: 10
    load: {type: point, magnitude: 100, position: 4}
  - name: B-2
    length: 6
    load: {type: uniform, magnitude: 0}
`), 0o644))
	results := filepath.Join(dir, "out", "results.json")

	out, err := execute(t, "batch", "-f", cases, "-o", results)
	require.NoError(t, err)
	assert.Contains(t, out, "60.00")
	assert.Contains(t, out, "1 case(s) solved, 1 rejected")
	assert.Contains(t, out, "intensity must be positive")

	data, err := os.ReadFile(results)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "B-1"`)
}

func TestBatchMissingFile(t *testing.T) {
	_, err := execute(t, "batch", "-f", filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gobeam v")
}
