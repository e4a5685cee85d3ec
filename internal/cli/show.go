package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubik/internal/cube"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show the cube state after a scramble",
	Long: `Show the sticker layout of a cube after applying a scramble, along
with the cubie-level permutation and orientation arrays the solvers
work on.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		useColor, _ := cmd.Flags().GetBool("color")

		c := cube.NewCube()
		if len(args) == 1 {
			moves, err := cube.ParseScramble(args[0])
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				os.Exit(1)
			}
			c.Apply(moves)
		}

		fmt.Print(c.StringWithColor(useColor))

		cp, co := c.Corners()
		ep, eo := c.Edges()
		fmt.Printf("cp: %v\nco: %v\nep: %v\neo: %v\n", cp, co, ep, eo)
	},
}

func init() {
	showCmd.Flags().BoolP("color", "c", false, "Use colored output")
}
