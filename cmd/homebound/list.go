package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homebound/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available maps",
	Long:  `Shows a list of all maps bundled with homebound, plus any given with --maps.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Register every map file under this directory")
}

func runList(cmd *cobra.Command, _ []string) error {
	if _, err := registerExtraMaps(); err != nil {
		return err
	}

	maps := registry.List()
	out := cmd.OutOrStdout()

	if len(maps) == 0 {
		fmt.Fprintln(out, "No maps available.")
		return nil
	}

	fmt.Fprintln(out, "Available maps:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range maps {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print maps
	for _, m := range maps {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'homebound play <id>' to play a map.")
	return nil
}
