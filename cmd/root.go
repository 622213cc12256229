package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var (
	envFile string
	verbose bool

	// Populated before any subcommand runs
	cfg    = config.Default()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Simply Supported Beam Reaction Calculator",
	Long: `gobeam - Go Simply Supported Beam Calculator

A CLI tool for computing the support reactions of a simply supported
beam from static equilibrium (ΣM = 0, ΣF = 0).

Supported loads (one per beam):
  - Point load at any position on the span
  - Uniform distributed load over the full span
  - Triangular distributed load rising from zero to a peak

Results can be shown as ASCII diagrams, exported as SVG/PNG/PDF
diagrams, written as PDF reports, or computed in batch from
JSON, YAML and Excel files.`,
	PersistentPreRunE: loadConfig,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gobeam v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Simply Supported Beam Calculator                     ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Support reactions for point, uniform and triangular loads")
		fmt.Fprintln(out, "    • Shear force and bending moment diagrams")
		fmt.Fprintln(out, "    • NSCP 2015 factored loads")
		fmt.Fprintln(out, "    • Batch calculation from JSON, YAML and Excel files")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gobeam --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Path to a .env file with GOBEAM_* settings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log calculation details to stderr")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(envFile)
	if err != nil {
		return err
	}
	cfg = c

	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded",
		"max_width", cfg.MaxWidth,
		"px_per_meter", cfg.PxPerMeter,
		"stations", cfg.Stations)
	return nil
}
