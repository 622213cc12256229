package cmd

import (
	"github.com/alexiusacademia/gobeam/internal/statics"
	"github.com/spf13/cobra"
)

var (
	triangularPeak  float64
	triangularStart float64
	triangularEnd   float64
)

var reactionTriangularCmd = &cobra.Command{
	Use:   "triangular",
	Short: "Reactions for a triangular distributed load",
	Long: `Calculate the reactions for a load rising linearly from zero at
start to wmax at end. The resultant acts at two thirds of the loaded
length from the zero end.

  W  = wmax·(e - s) / 2
  x̄  = s + 2/3·(e - s)
  RB = W·x̄ / L
  RA = W - RB

Examples:
  gobeam reaction triangular --length 8 --peak 20 --start 0 --end 8
  gobeam reaction triangular -L 10 --peak 12 -s 2 -e 5 --svg beam.svg`,
	Run: func(cmd *cobra.Command, args []string) {
		runReaction(cmd, statics.TriangularLoad{
			PeakIntensity: triangularPeak,
			Start:         triangularStart,
			End:           triangularEnd,
		}, "peak")
	},
}

func init() {
	reactionCmd.AddCommand(reactionTriangularCmd)

	reactionTriangularCmd.Flags().Float64Var(&triangularPeak, "peak", 0, "Peak intensity wmax (kN/m)")
	reactionTriangularCmd.Flags().Float64VarP(&triangularStart, "start", "s", 0, "Zero-intensity end, from support A (m)")
	reactionTriangularCmd.Flags().Float64VarP(&triangularEnd, "end", "e", 0, "Peak end, from support A (m) [required]")
	reactionTriangularCmd.MarkFlagRequired("end")
}
