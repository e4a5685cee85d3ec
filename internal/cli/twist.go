package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubik/internal/cube"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a solved cube and display the resulting
state. This command does not solve the cube - it just applies the moves
and shows the result.

Examples:
  cubik twist "R U R' U'"
  cubik twist "F B U2 D2" --color`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		useColor, _ := cmd.Flags().GetBool("color")

		moves, err := cube.ParseScramble(args[0])
		if err != nil {
			fmt.Printf("Error parsing moves: %v\n", err)
			os.Exit(1)
		}

		c := cube.NewCube()
		c.Apply(moves)

		fmt.Printf("Applying moves: %s\n\n%s", cube.FormatMoves(moves), c.StringWithColor(useColor))
		if c.IsSolved() {
			fmt.Println("The cube is solved.")
		}
	},
}

func init() {
	twistCmd.Flags().BoolP("color", "c", false, "Use colored output")
}
