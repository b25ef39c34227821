package main

import (
	"os"
	"path/filepath"

	"github.com/mfairley/credswap/internal/audit"
	"github.com/mfairley/credswap/internal/config"
	"github.com/mfairley/credswap/internal/keychain"
	"github.com/mfairley/credswap/internal/slot"
)

// credswapHome returns the path to the credswap home directory (~/.credswap).
func credswapHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".credswap"), nil
}

// newManager wires up the slot manager for one command invocation. The
// returned close func flushes the audit log.
func newManager(actor string) (*slot.Manager, func() error, error) {
	home, err := credswapHome()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(home, 0700); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, nil, err
	}

	auditLog, err := audit.NewLogger(filepath.Join(home, "audit.log"))
	if err != nil {
		return nil, nil, err
	}

	meta, err := slot.NewMetadataStore(filepath.Join(home, "slots.json"))
	if err != nil {
		auditLog.Close()
		return nil, nil, err
	}

	store := keychain.NewAuditedStore(keychain.NewSystemStore(cfg.Account), auditLog, actor)
	mgr := slot.NewManager(store, cfg, meta, auditLog, actor)
	return mgr, auditLog.Close, nil
}
