package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/recordflow/pkg/types"
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "List the lifecycle phases in firing order",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range types.Phases() {
			timing := "after"
			if p.IsBefore() {
				timing = "before"
			}
			fmt.Printf("%-16s (%s change)\n", p, timing)
		}
	},
}
