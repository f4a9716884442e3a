package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/neoncube"
)

var (
	scrambleSize   int
	scrambleLength int
	scrambleSeed   int64
	scrambleTheme  string
	scrambleSolve  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a scramble",
	Long: `Generate a random scramble for a cube of any size and print its notation
and the resulting net.

Examples:
  neoncube scramble
  neoncube scramble --size 4 --length 30 --seed 7
  neoncube scramble --solution`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleSize, "size", 3, "Cube size")
	scrambleCmd.Flags().IntVar(&scrambleLength, "length", neoncube.ScrambleMoves, "Number of moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 picks one)")
	scrambleCmd.Flags().StringVar(&scrambleTheme, "theme", "neon", "Theme used for the net")
	scrambleCmd.Flags().BoolVar(&scrambleSolve, "solution", false, "Also print the inverse sequence")
}

func runScramble(cmd *cobra.Command, args []string) error {
	theme, err := neoncube.ThemeByName(scrambleTheme)
	if err != nil {
		return err
	}
	cube, err := neoncube.NewCube(scrambleSize, theme)
	if err != nil {
		return err
	}

	r := neoncube.NewRand()
	if scrambleSeed != 0 {
		r = rand.New(rand.NewSource(scrambleSeed))
	}
	moves := cube.Scramble(r, scrambleLength)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%dx%dx%d scramble", scrambleSize, scrambleSize, scrambleSize)))
	fmt.Fprintln(out, moveStyle.Render(neoncube.FormatMoves(moves)))
	if scrambleSolve {
		fmt.Fprintln(out, statusStyle.Render("Solution: "+neoncube.FormatMoves(neoncube.InvertMoves(moves))))
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, cube.String())
	return nil
}
