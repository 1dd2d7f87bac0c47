package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/recordflow/pkg/deactivation"
)

var (
	entityStyle = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})
	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"})
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect deactivation configuration",
}

var configCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a deactivation config file",
	Long: `Strictly load a deactivation config file and report parse or shape
problems. The library itself is fail-open and would silently treat a broken
file as "all handlers active"; this command is how you find out before it
does.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath()
		if len(args) == 1 {
			path = args[0]
		}

		store, err := deactivation.Load(path)
		if err != nil {
			return err
		}

		fmt.Printf("%s: ok, %d entities configured\n", path, len(store.Entities()))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List configured entities and their deactivation state",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath()
		if len(args) == 1 {
			path = args[0]
		}

		store, err := deactivation.Load(path)
		if err != nil {
			return err
		}

		entities := store.Entities()
		if len(entities) == 0 {
			fmt.Println("No entities configured; all handlers active.")
			return nil
		}

		for _, entity := range entities {
			state := activeStyle.Render("active")
			if store.IsDeactivated(entity) {
				state = disabledStyle.Render("disabled")
			}
			fmt.Printf("%s  %s\n", entityStyle.Render(entity), state)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configCheckCmd)
	configCmd.AddCommand(configListCmd)
}
