package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/mfairley/credswap/internal/credential"
	"github.com/mfairley/credswap/internal/slot"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var setupCmd = &cobra.Command{
	Use:   "setup [personal|api]",
	Short: "Capture identity credentials into backup files",
	Long: "Walks through signing the client in as each identity and captures the live " +
		"credential from the OS store after each sign-in. Pass an identity to re-capture " +
		"just that one.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := slot.Identities
		if len(args) == 1 {
			id, err := parseIdentity(args[0])
			if err != nil {
				return err
			}
			ids = []slot.Identity{id}
		}
		return runSetup("cli", ids)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func parseIdentity(s string) (slot.Identity, error) {
	switch s {
	case "personal", "p":
		return slot.Personal, nil
	case "api", "a":
		return slot.ApiBilling, nil
	}
	return "", fmt.Errorf("unknown identity %q (want personal or api)", s)
}

func setupPrompt(id slot.Identity) string {
	if id == slot.ApiBilling {
		return "Sign the client in with your API billing account, then press enter"
	}
	return "Sign the client in with your personal account, then press enter"
}

func runSetup(actor string, ids []slot.Identity) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("setup is interactive and requires a terminal")
	}

	mgr, closeLog, err := newManager(actor)
	if err != nil {
		return err
	}
	defer closeLog()

	reader := bufio.NewReader(os.Stdin)
	for _, id := range ids {
		fmt.Printf("%s: ", setupPrompt(id))
		if _, err := reader.ReadString('\n'); err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}

		blob, err := mgr.Capture(id)
		if err != nil {
			return err
		}
		fmt.Printf("Captured %s credential: %s\n", id, credential.Summary(blob))
	}

	fmt.Println("Setup complete. Switch with `credswap personal` or `credswap api`.")
	return nil
}
