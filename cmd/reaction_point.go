package cmd

import (
	"github.com/alexiusacademia/gobeam/internal/statics"
	"github.com/spf13/cobra"
)

var (
	pointLoad     float64
	pointPosition float64
)

var reactionPointCmd = &cobra.Command{
	Use:   "point",
	Short: "Reactions for a concentrated load",
	Long: `Calculate the reactions for a point load P acting at distance a
from support A.

  RB = P·a / L
  RA = P - RB

Examples:
  # 100 kN at 4 m on a 10 m beam
  gobeam reaction point --length 10 --load 100 --position 4

  # Factored load from dead and live components
  gobeam reaction point -L 10 -a 4 --dead 50 --live 30`,
	Run: func(cmd *cobra.Command, args []string) {
		runReaction(cmd, statics.PointLoad{Magnitude: pointLoad, Position: pointPosition}, "load")
	},
}

func init() {
	reactionCmd.AddCommand(reactionPointCmd)

	reactionPointCmd.Flags().Float64VarP(&pointLoad, "load", "P", 0, "Point load P (kN)")
	reactionPointCmd.Flags().Float64VarP(&pointPosition, "position", "a", 0, "Distance from support A (m) [required]")
	reactionPointCmd.MarkFlagRequired("position")
}
