package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gopanel/pkg/analysis"
	"github.com/philipparndt/gopanel/pkg/obj"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an OBJ export",
	Long:  "Show side, point and face counts, the overall bounding box and the number of detected panels.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	sides, err := obj.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OBJ file: %v\n", err)
		os.Exit(1)
	}

	pointCount := 0
	faceCount := 0
	for _, side := range sides {
		pointCount += len(side.Points)
		faceCount += len(side.Faces)
	}
	panels := analysis.FindPanels(sides)

	fmt.Println("OBJ Export Information")
	fmt.Println("======================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Sides: %d\n", len(sides))
	fmt.Printf("  Points: %d\n", pointCount)
	fmt.Printf("  Faces: %d\n", faceCount)
	fmt.Printf("  Panels: %d\n\n", len(panels))

	if len(sides) > 0 {
		bbox := obj.BoundingBox(sides)
		fmt.Println("Bounding Box (cm):")
		fmt.Printf("  Min: %s\n", analysis.FormatVector(bbox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(bbox.Max))
		fmt.Printf("  Center: %s\n", analysis.FormatVector(bbox.Center()))
		fmt.Printf("  Volume: %.1f cubic cm\n", bbox.Volume())
	}
}
