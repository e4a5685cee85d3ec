package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubik/internal/cube"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [scramble] [solution]",
	Short: "Verify that a solution solves a scramble",
	Long: `Apply a scramble followed by a candidate solution and report whether
the cube comes back to the solved state.

Examples:
  cubik verify "R U R' U'" "U R U' R'"
  cubik verify "F B U2 D2" "D2 U2 B' F'"`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		scramble, err := cube.ParseScramble(args[0])
		if err != nil {
			fmt.Printf("Error parsing scramble: %v\n", err)
			os.Exit(1)
		}
		solution, err := cube.ParseScramble(args[1])
		if err != nil {
			fmt.Printf("Error parsing solution: %v\n", err)
			os.Exit(1)
		}

		c := cube.NewCube()
		c.Apply(scramble)
		c.Apply(solution)

		if !c.IsSolved() {
			fmt.Println("FAIL: the cube is not solved")
			os.Exit(1)
		}
		fmt.Printf("OK: solved in %d moves\n", len(cube.Simplify(solution)))
	},
}
