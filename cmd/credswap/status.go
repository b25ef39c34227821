package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mfairley/credswap/internal/slot"
	"github.com/spf13/cobra"
)

const watchDebounce = 500 * time.Millisecond

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show slot states and the live store entry",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().Bool("json", false, "output as JSON")
	statusCmd.Flags().Bool("watch", false, "re-print whenever the backup files change")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	watch, _ := cmd.Flags().GetBool("watch")

	mgr, closeLog, err := newManager("cli")
	if err != nil {
		return err
	}
	defer closeLog()

	if err := printStatus(mgr, jsonOut); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchStatus(ctx, mgr, jsonOut)
}

func printStatus(mgr *slot.Manager, jsonOut bool) error {
	rep, err := mgr.Status()
	if err != nil {
		return err
	}

	if jsonOut {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IDENTITY\tSTATE\tCREDENTIAL\tCAPTURED")
	for _, s := range rep.Slots {
		display := s.Display
		if display == "" {
			display = "-"
		}
		captured := "-"
		if !s.CapturedAt.IsZero() {
			captured = s.CapturedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Identity, s.State, display, captured)
	}
	w.Flush()

	if rep.LiveService != "" {
		fmt.Printf("\nLive entry: %s under %q\n", rep.LiveDisplay, rep.LiveService)
	} else {
		fmt.Println("\nNo live entry in the store")
	}
	return nil
}

// watchStatus re-prints the summary whenever a backup file changes. It
// blocks until the context is cancelled.
func watchStatus(ctx context.Context, mgr *slot.Manager, jsonOut bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(mgr.BackupDir()); err != nil {
		return err
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			// Debounce: reset timer on each event
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				fmt.Println()
				if err := printStatus(mgr, jsonOut); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		}
	}
}
