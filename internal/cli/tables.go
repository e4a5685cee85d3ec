package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubik/internal/solver"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build, save, and fingerprint the Korf pattern tables",
	Long: `Build the three Korf pattern databases and save them to the table
file (edges-A, edges-B, corners concatenated; 173,335,680 bytes raw).
A path ending in .snappy is written through a snappy compressor.

With --verify, an existing table file is loaded and its BLAKE2b-256
digest printed instead of rebuilding.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("output")
		verify, _ := cmd.Flags().GetBool("verify")

		if verify {
			k, err := solver.NewKorf(1)
			if err == nil {
				err = k.Init(path)
			}
			if err != nil {
				fmt.Printf("Error loading tables: %v\n", err)
				os.Exit(1)
			}
			digest, err := solver.TableDigest(path)
			if err != nil {
				fmt.Printf("Error hashing %s: %v\n", path, err)
				os.Exit(1)
			}
			fmt.Printf("OK: %s\nBLAKE2b-256: %s\n", path, digest)
			return
		}

		k, err := solver.NewKorf(1)
		if err != nil {
			fmt.Printf("Error creating solver: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Building heuristic tables (this takes a few minutes)...")
		start := time.Now()
		if err := k.Init(""); err != nil {
			fmt.Printf("Error building tables: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Built in %v, saving to %s...\n", time.Since(start), path)

		if err := k.Save(path); err != nil {
			fmt.Printf("Error saving tables: %v\n", err)
			os.Exit(1)
		}
		digest, err := solver.TableDigest(path)
		if err != nil {
			fmt.Printf("Error hashing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Saved.\nBLAKE2b-256: %s\n", digest)
	},
}

func init() {
	tablesCmd.Flags().StringP("output", "o", "krof.dat", "Table file path (.snappy compresses)")
	tablesCmd.Flags().Bool("verify", false, "Load an existing file and print its digest")
}
