package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubik/internal/cube"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence. The cube state it produces is
printed unless --headless is set.

Examples:
  cubik scramble -n 15
  cubik scramble -n 20 --seed 42`,
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("moves")
		seed, _ := cmd.Flags().GetInt64("seed")
		headless, _ := cmd.Flags().GetBool("headless")
		useColor, _ := cmd.Flags().GetBool("color")

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		moves := cube.RandomScramble(n, rand.New(rand.NewSource(seed)))

		if headless {
			fmt.Print(cube.FormatMoves(moves))
			return
		}

		c := cube.NewCube()
		c.Apply(moves)
		fmt.Printf("Scramble: %s\n\n%s", cube.FormatMoves(moves), c.StringWithColor(useColor))
	},
}

func init() {
	scrambleCmd.Flags().IntP("moves", "n", 15, "Number of random moves")
	scrambleCmd.Flags().Int64("seed", 0, "Random seed (0 uses the clock)")
	scrambleCmd.Flags().BoolP("color", "c", false, "Use colored output")
	scrambleCmd.Flags().Bool("headless", false, "Output only the scramble moves")
}
