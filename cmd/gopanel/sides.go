package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gopanel/pkg/analysis"
	"github.com/philipparndt/gopanel/pkg/obj"
	"github.com/spf13/cobra"
)

var sidesCmd = &cobra.Command{
	Use:   "sides [file]",
	Short: "Dump the parsed surface groups",
	Long:  "Print every parsed side with its name, converted points and raw face index lists.",
	Args:  cobra.ExactArgs(1),
	Run:   runSides,
}

func init() {
	rootCmd.AddCommand(sidesCmd)
}

func runSides(cmd *cobra.Command, args []string) {
	filename := args[0]

	sides, err := obj.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OBJ file: %v\n", err)
		os.Exit(1)
	}

	for _, side := range sides {
		fmt.Printf("Side: %s\n", side.Name)
		fmt.Print("  Points:")
		for _, point := range side.Points {
			fmt.Printf(" %s", analysis.FormatVector(point))
		}
		fmt.Println()
		fmt.Print("  Faces:")
		for _, face := range side.Faces {
			fmt.Printf(" %v", face)
		}
		fmt.Println()
		fmt.Println()
	}
}
