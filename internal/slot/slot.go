// Package slot implements the two credential slots: capturing the live
// credential from the OS store into a per-identity backup file, and
// activating a backed-up credential back into the store.
package slot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mfairley/credswap/internal/audit"
	"github.com/mfairley/credswap/internal/config"
	"github.com/mfairley/credswap/internal/credential"
	"github.com/mfairley/credswap/internal/keychain"
)

// Identity names one of the two credential slots.
type Identity string

const (
	Personal   Identity = "personal"
	ApiBilling Identity = "api"
)

// Identities lists the fixed slot set in display order.
var Identities = []Identity{Personal, ApiBilling}

// State describes where a slot is in its lifecycle.
type State string

const (
	StateUnconfigured State = "unconfigured"
	StateBackedUp     State = "backed up"
	StateActive       State = "active"
)

var (
	// ErrNotConfigured means an identity has no backup file yet.
	ErrNotConfigured = errors.New("identity not configured")

	// ErrExtractionFailed means no live credential was found under any
	// candidate service name.
	ErrExtractionFailed = errors.New("no live credential found")

	// ErrWriteFailed and ErrReadFailed wrap filesystem errors on the
	// backup files.
	ErrWriteFailed = errors.New("backup write failed")
	ErrReadFailed  = errors.New("backup read failed")
)

// Manager owns the two slots. All operations are synchronous and local
// to one invocation; concurrent invocations are not coordinated.
type Manager struct {
	store keychain.Store
	cfg   *config.Config
	meta  *MetadataStore
	audit *audit.Logger
	actor string
}

// NewManager creates a slot manager over store using cfg's paths and
// service names.
func NewManager(store keychain.Store, cfg *config.Config, meta *MetadataStore, auditLog *audit.Logger, actor string) *Manager {
	return &Manager{
		store: store,
		cfg:   cfg,
		meta:  meta,
		audit: auditLog,
		actor: actor,
	}
}

// Store returns the underlying credential store.
func (m *Manager) Store() keychain.Store {
	return m.store
}

// Config returns the effective switcher configuration.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// BackupDir returns the directory holding the backup files.
func (m *Manager) BackupDir() string {
	return m.cfg.BackupDir
}

// BackupPath returns the backup file path for an identity.
func (m *Manager) BackupPath(id Identity) string {
	return filepath.Join(m.cfg.BackupDir, string(id)+".txt")
}

// ServiceName returns the service name an identity is activated under.
func (m *Manager) ServiceName(id Identity) string {
	if id == ApiBilling {
		return m.cfg.APIServiceName
	}
	return m.cfg.PersonalServiceName
}

// logAudit records a slot transition, successful or not. Audit logging
// is best-effort — a failure to log should not block the operation.
func (m *Manager) logAudit(action audit.Action, id Identity, service string, err error) {
	entry := audit.Entry{
		Action:   action,
		Identity: string(id),
		Service:  service,
		Actor:    m.actor,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	m.audit.Log(entry)
}

// Capture extracts the live credential from the client's store entry and
// persists it verbatim to the identity's backup file. The caller must
// have signed the client in as this identity first — that step is manual
// and cannot be verified here.
func (m *Manager) Capture(id Identity) (credential.Blob, error) {
	value, service, err := keychain.Probe(m.store, m.cfg.ClientServiceNames)
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			err = fmt.Errorf("%w: sign in to the client, then retry (%v)", ErrExtractionFailed, err)
		}
		m.logAudit(audit.ActionCapture, id, "", err)
		return credential.Blob{}, err
	}

	blob := credential.Classify([]byte(value))

	if err := writeBackup(m.BackupPath(id), []byte(value)); err != nil {
		err = fmt.Errorf("%w: %v", ErrWriteFailed, err)
		m.logAudit(audit.ActionCapture, id, service, err)
		return blob, err
	}

	if m.cfg.PinDedicatedEntries {
		if err := m.store.Set(m.ServiceName(id), value); err != nil {
			m.logAudit(audit.ActionCapture, id, service, err)
			return blob, err
		}
	}

	if err := m.meta.RecordCapture(id, service); err != nil {
		return blob, fmt.Errorf("saving slot metadata: %w", err)
	}

	m.logAudit(audit.ActionCapture, id, service, nil)

	return blob, nil
}

// Activate writes an identity's backed-up credential into the store
// under its activation service name. Repeating it re-writes the same
// entry.
func (m *Manager) Activate(id Identity) error {
	service := m.ServiceName(id)

	raw, err := os.ReadFile(m.BackupPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s (run setup first)", ErrNotConfigured, id)
		} else {
			err = fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
		m.logAudit(audit.ActionActivate, id, service, err)
		return err
	}

	if err := m.store.Set(service, string(raw)); err != nil {
		m.logAudit(audit.ActionActivate, id, service, err)
		return err
	}

	if err := m.meta.RecordActivate(id); err != nil {
		return fmt.Errorf("saving slot metadata: %w", err)
	}

	m.logAudit(audit.ActionActivate, id, service, nil)

	return nil
}

// SlotStatus is the read-only summary for one identity.
type SlotStatus struct {
	Identity      Identity  `json:"identity"`
	State         State     `json:"state"`
	BackupPath    string    `json:"backup_path"`
	Display       string    `json:"display,omitempty"`
	CapturedAt    time.Time `json:"captured_at,omitzero"`
	LastActivated time.Time `json:"last_activated,omitzero"`
}

// Report summarizes both slots and the live store entry.
type Report struct {
	Slots       []SlotStatus `json:"slots"`
	LiveService string       `json:"live_service,omitempty"`
	LiveDisplay string       `json:"live_display,omitempty"`
}

// Status reports both slots plus which candidate service name currently
// holds a live entry. Which entry the client actually reads is the
// client's decision; Status reports what exists, not what is in use.
// No state transition occurs.
func (m *Manager) Status() (*Report, error) {
	rep := &Report{}

	live, service, err := keychain.Probe(m.store, m.cfg.ClientServiceNames)
	switch {
	case err == nil:
		rep.LiveService = service
		rep.LiveDisplay = credential.Summary(credential.Classify([]byte(live)))
	case errors.Is(err, keychain.ErrNotFound):
		// no live entry is a valid state
	default:
		return nil, err
	}

	for _, id := range Identities {
		st := SlotStatus{Identity: id, State: StateUnconfigured, BackupPath: m.BackupPath(id)}

		raw, err := os.ReadFile(st.BackupPath)
		switch {
		case err == nil:
			st.State = StateBackedUp
			st.Display = credential.Summary(credential.Classify(raw))
			if rep.LiveService != "" && string(raw) == live {
				st.State = StateActive
			}
			if meta := m.meta.Get(id); meta != nil {
				st.CapturedAt = meta.CapturedAt
				st.LastActivated = meta.LastActivated
			}
		case errors.Is(err, fs.ErrNotExist):
			// unconfigured
		default:
			return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}

		rep.Slots = append(rep.Slots, st)
	}

	return rep, nil
}
