package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gopanel/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gopanel",
	Short: "A CLI tool for finding box panels in OBJ mesh exports",
	Long: `gopanel analyzes Wavefront OBJ exports of flat-panel constructions.
It detects groups of six sides that together form a rectangular box (a panel),
computes panel dimensions in centimeters and aggregates equal-sized panels
into a cut-list style report.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
