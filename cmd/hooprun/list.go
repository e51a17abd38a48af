package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hoop-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	for _, g := range registry.List() {
		marker := " "
		if g.ID == gameID {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-8s %s\n", marker, g.ID, g.Title)
	}
}
