//go:build integration

package keychain

import (
	"testing"
)

// Integration tests use the real OS credential store.
// Run with: go test -tags integration ./internal/keychain/
//
// On macOS this requires an unlocked login Keychain and an interactive
// session (first run may prompt for Keychain access approval).

func integrationStore() *SystemStore {
	return NewSystemStore("credswap-test")
}

func cleanupIntegration(t *testing.T, s *SystemStore, services ...string) {
	t.Helper()
	for _, svc := range services {
		s.Delete(svc)
	}
}

func TestStoreSetAndGet(t *testing.T) {
	s := integrationStore()
	service := "credswap-test-set-get"
	defer cleanupIntegration(t, s, service)

	if err := s.Set(service, "hello-store"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, err := s.Get(service)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "hello-store" {
		t.Errorf("expected 'hello-store', got %q", val)
	}
}

func TestStoreOverwrite(t *testing.T) {
	s := integrationStore()
	service := "credswap-test-overwrite"
	defer cleanupIntegration(t, s, service)

	s.Set(service, "first")
	s.Set(service, "second")

	val, err := s.Get(service)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "second" {
		t.Errorf("expected 'second', got %q", val)
	}
}

func TestStoreDelete(t *testing.T) {
	s := integrationStore()
	service := "credswap-test-delete"

	s.Set(service, "to-delete")
	s.Delete(service)

	_, err := s.Get(service)
	if err == nil {
		t.Error("expected error after delete")
	}
}

func TestStoreProbe(t *testing.T) {
	s := integrationStore()
	services := []string{"credswap-test-probe-a", "credswap-test-probe-b"}
	defer cleanupIntegration(t, s, services...)

	s.Set(services[1], "under-b")

	val, service, err := Probe(s, services)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if val != "under-b" || service != services[1] {
		t.Errorf("expected 'under-b' under %q, got %q under %q", services[1], val, service)
	}
}
