package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mfairley/credswap/internal/keychain"
	"github.com/mfairley/credswap/internal/slot"
	"github.com/spf13/cobra"
)

// scratchService is a throwaway entry name used to exercise the store's
// set/get/delete contract without touching real credentials.
const scratchService = "credswap-doctor"

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Aliases: []string{"test"},
	Short:   "Check store access, backup files, and permissions",
	Args:    cobra.NoArgs,
	RunE:    runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	mgr, closeLog, err := newManager("cli")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := mgr.Config()
	fmt.Printf("account:           %s\n", cfg.Account)
	fmt.Printf("probe order:       %s\n", strings.Join(cfg.ClientServiceNames, ", "))
	fmt.Printf("personal service:  %s\n", cfg.PersonalServiceName)
	fmt.Printf("api service:       %s\n", cfg.APIServiceName)
	fmt.Printf("backup dir:        %s\n", mgr.BackupDir())
	fmt.Println()

	checks := []struct {
		name string
		run  func() error
	}{
		{"store round-trip", func() error { return checkStoreRoundTrip(mgr.Store()) }},
		{"backup directory permissions", func() error { return checkDirMode(mgr.BackupDir()) }},
		{"personal backup", func() error { return checkBackupFile(mgr.BackupPath(slot.Personal)) }},
		{"api backup", func() error { return checkBackupFile(mgr.BackupPath(slot.ApiBilling)) }},
	}

	failed := 0
	for _, c := range checks {
		if err := c.run(); err != nil {
			failed++
			fmt.Printf("fail  %s: %v\n", c.name, err)
			continue
		}
		fmt.Printf("ok    %s\n", c.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

// checkStoreRoundTrip writes, reads back, and deletes a scratch entry to
// prove the OS store honors the three-operation contract.
func checkStoreRoundTrip(store keychain.Store) error {
	const probe = "doctor-probe-value"
	if err := store.Set(scratchService, probe); err != nil {
		return err
	}
	defer store.Delete(scratchService)

	val, err := store.Get(scratchService)
	if err != nil {
		return err
	}
	if val != probe {
		return fmt.Errorf("read back %q, wrote %q", val, probe)
	}
	return nil
}

func checkDirMode(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if mode := info.Mode().Perm(); mode != 0700 {
		return fmt.Errorf("mode %04o, want 0700", mode)
	}
	return nil
}

func checkBackupFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.New("not captured yet (run setup)")
		}
		return err
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		return fmt.Errorf("mode %04o, want 0600", mode)
	}
	return nil
}
