//go:build !darwin

package keychain

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// SystemStore provides CRUD operations for credentials via the platform
// keyring (Secret Service on Linux, Credential Manager on Windows).
type SystemStore struct {
	account string
}

// NewSystemStore creates a keyring-backed store bound to account.
func NewSystemStore(account string) *SystemStore {
	return &SystemStore{account: account}
}

// Set stores a credential under service. Overwrites if it already exists.
func (s *SystemStore) Set(service, value string) error {
	// update = delete + add, same contract as the darwin backend
	_ = s.Delete(service)

	if err := keyring.Set(service, s.account, value); err != nil {
		return fmt.Errorf("%w: set %q: %v", ErrUnavailable, service, err)
	}
	return nil
}

// Get retrieves the credential stored under service.
func (s *SystemStore) Get(service string) (string, error) {
	val, err := keyring.Get(service, s.account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, service)
		}
		return "", fmt.Errorf("%w: get %q: %v", ErrUnavailable, service, err)
	}
	return val, nil
}

// Delete removes the entry under service. A missing entry is not an error.
func (s *SystemStore) Delete(service string) error {
	err := keyring.Delete(service, s.account)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%w: delete %q: %v", ErrUnavailable, service, err)
	}
	return nil
}
