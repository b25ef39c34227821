package main

import (
	"fmt"

	"github.com/mfairley/credswap/internal/slot"
	"github.com/spf13/cobra"
)

var personalCmd = &cobra.Command{
	Use:     "personal",
	Aliases: []string{"p"},
	Short:   "Activate the personal credential",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSwitch("cli", slot.Personal); err != nil {
			return err
		}
		fmt.Println("Switched to personal")
		return nil
	},
}

var apiCmd = &cobra.Command{
	Use:     "api",
	Aliases: []string{"a"},
	Short:   "Activate the API billing credential",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSwitch("cli", slot.ApiBilling); err != nil {
			return err
		}
		fmt.Println("Switched to api")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(personalCmd)
	rootCmd.AddCommand(apiCmd)
}

func runSwitch(actor string, id slot.Identity) error {
	mgr, closeLog, err := newManager(actor)
	if err != nil {
		return err
	}
	defer closeLog()

	return mgr.Activate(id)
}
