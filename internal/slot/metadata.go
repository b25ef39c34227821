package slot

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"
)

// SlotMetadata tracks capture and activation times for one identity.
type SlotMetadata struct {
	CapturedAt    time.Time `json:"captured_at"`
	SourceService string    `json:"source_service,omitempty"`
	LastActivated time.Time `json:"last_activated,omitzero"`
}

// MetadataStore persists slot metadata to a JSON file.
type MetadataStore struct {
	mu       sync.RWMutex
	path     string
	metadata map[Identity]*SlotMetadata
}

// NewMetadataStore loads or creates a metadata file.
func NewMetadataStore(path string) (*MetadataStore, error) {
	ms := &MetadataStore{
		path:     path,
		metadata: make(map[Identity]*SlotMetadata),
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if jsonErr := json.Unmarshal(data, &ms.metadata); jsonErr != nil {
			slog.Warn("corrupt metadata file, starting fresh", "path", path, "error", jsonErr)
			ms.metadata = make(map[Identity]*SlotMetadata)
		}
	}
	// File not existing is fine — start fresh.

	return ms, nil
}

// Get returns a copy of the metadata for an identity, or nil if not
// tracked. Returning a copy prevents callers from mutating the store's
// internal state without holding the lock (data race).
func (ms *MetadataStore) Get(id Identity) *SlotMetadata {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	m, ok := ms.metadata[id]
	if !ok {
		return nil
	}
	cp := *m
	return &cp
}

// RecordCapture notes a successful capture for an identity and persists.
func (ms *MetadataStore) RecordCapture(id Identity, sourceService string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	m, ok := ms.metadata[id]
	if !ok {
		m = &SlotMetadata{}
		ms.metadata[id] = m
	}
	m.CapturedAt = time.Now().UTC()
	m.SourceService = sourceService
	return ms.save()
}

// RecordActivate notes a successful activation for an identity and persists.
func (ms *MetadataStore) RecordActivate(id Identity) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	m, ok := ms.metadata[id]
	if !ok {
		m = &SlotMetadata{}
		ms.metadata[id] = m
	}
	m.LastActivated = time.Now().UTC()
	return ms.save()
}

func (ms *MetadataStore) save() error {
	data, err := json.MarshalIndent(ms.metadata, "", "  ")
	if err != nil {
		return err
	}
	tmpPath := ms.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, ms.path)
}
