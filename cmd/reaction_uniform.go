package cmd

import (
	"github.com/alexiusacademia/gobeam/internal/statics"
	"github.com/spf13/cobra"
)

var uniformIntensity float64

var reactionUniformCmd = &cobra.Command{
	Use:   "uniform",
	Short: "Reactions for a uniform load over the full span",
	Long: `Calculate the reactions for a uniform distributed load w acting
over the full span. By symmetry each support carries half.

  RA = RB = w·L / 2

Examples:
  gobeam reaction uniform --length 6 --intensity 10
  gobeam reaction uniform -L 6 -w 10 --diagram`,
	Run: func(cmd *cobra.Command, args []string) {
		runReaction(cmd, statics.UniformLoad{Intensity: uniformIntensity}, "intensity")
	},
}

func init() {
	reactionCmd.AddCommand(reactionUniformCmd)

	reactionUniformCmd.Flags().Float64VarP(&uniformIntensity, "intensity", "w", 0, "Load intensity w (kN/m)")
}
