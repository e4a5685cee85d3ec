package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubik/internal/cube"
	"github.com/ehrlich-b/cubik/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube using the specified algorithm.
The scramble is a string of moves in standard notation.

Korf returns an optimal solution but needs its 173MB pattern tables;
they are loaded from --table when the file exists and otherwise built
and saved there. Kociemba returns a near-optimal solution and builds
its tables in a few seconds.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		algorithm, _ := cmd.Flags().GetString("algorithm")
		workers, _ := cmd.Flags().GetInt("threads")
		tablePath, _ := cmd.Flags().GetString("table")
		headless, _ := cmd.Flags().GetBool("headless")
		useColor, _ := cmd.Flags().GetBool("color")

		moves, err := cube.ParseScramble(scramble)
		if err != nil {
			fail(headless, "Error parsing scramble: %v\n", err)
		}

		c := cube.NewCube()
		c.Apply(moves)

		if !headless {
			fmt.Printf("Solving scramble: %s\n", scramble)
			fmt.Printf("Using algorithm: %s\n", algorithm)
			fmt.Printf("\nCube state after scramble:\n%s", c.StringWithColor(useColor))
		}

		s, err := solver.New(algorithm, workers)
		if err != nil {
			fail(headless, "Error creating solver: %v\n", err)
		}

		if err := initSolver(s, algorithm, tablePath, headless); err != nil {
			fail(headless, "Error initializing solver: %v\n", err)
		}

		start := time.Now()
		solution, err := s.Solve(c)
		if err != nil {
			fail(headless, "Error solving cube: %v\n", err)
		}

		if headless {
			fmt.Print(cube.FormatMoves(solution))
			return
		}
		fmt.Printf("Solution: %s\n", cube.FormatMoves(solution))
		fmt.Printf("Steps: %d\n", len(solution))
		fmt.Printf("Time: %v\n", time.Since(start))
	},
}

// initSolver loads Korf tables when the data file exists and builds
// and saves them otherwise. Kociemba always rebuilds.
func initSolver(s solver.Solver, algorithm, tablePath string, headless bool) error {
	if algorithm != "korf" {
		return s.Init("")
	}
	if _, err := os.Stat(tablePath); err == nil {
		if !headless {
			fmt.Printf("Reading table file %s...\n", tablePath)
		}
		return s.Init(tablePath)
	}
	if !headless {
		fmt.Println("Building heuristic tables (this takes a few minutes)...")
	}
	if err := s.Init(""); err != nil {
		return err
	}
	return s.Save(tablePath)
}

func fail(headless bool, format string, args ...interface{}) {
	if !headless {
		fmt.Printf(format, args...)
	}
	os.Exit(1)
}

func init() {
	solveCmd.Flags().StringP("algorithm", "a", "kociemba", "Solving algorithm to use (korf, kociemba)")
	solveCmd.Flags().IntP("threads", "t", 4, "Worker budget for the parallel root search")
	solveCmd.Flags().String("table", "krof.dat", "Korf pattern table file")
	solveCmd.Flags().BoolP("color", "c", false, "Use colored output")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
}
