package main

import (
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/gopanel/pkg/analysis"
	"github.com/philipparndt/gopanel/pkg/obj"
	"github.com/philipparndt/gopanel/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	exclusive bool
	watch     bool
)

var panelsCmd = &cobra.Command{
	Use:   "panels [file]",
	Short: "Detect box panels and report counts by size",
	Long: `Parse an OBJ export, detect every group of six consecutive sides that
forms a rectangular box and print one block per distinct panel size with
the panel count and the origin of each panel.`,
	Args: cobra.ExactArgs(1),
	Run:  runPanels,
}

func init() {
	rootCmd.AddCommand(panelsCmd)

	panelsCmd.Flags().BoolVar(&exclusive, "exclusive", false, "consume matched sides so no side is counted in two panels")
	panelsCmd.Flags().BoolVar(&watch, "watch", false, "re-run whenever the file changes")
}

func runPanels(cmd *cobra.Command, args []string) {
	filename := args[0]

	if err := reportPanels(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !watch {
		return
	}

	fw, err := watcher.New(filename, 200*time.Millisecond, func() {
		if err := reportPanels(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	fw.Start()
	select {}
}

func reportPanels(filename string) error {
	sides, err := obj.ParseFile(filename)
	if err != nil {
		return err
	}

	var panels []analysis.Panel
	if exclusive {
		panels = analysis.FindPanelsExclusive(sides)
	} else {
		panels = analysis.FindPanels(sides)
	}

	analysis.WriteReport(os.Stdout, analysis.GroupPanels(panels))
	return nil
}
