//go:build darwin

package keychain

import (
	"errors"
	"fmt"

	gokeychain "github.com/keybase/go-keychain"
)

// SystemStore provides CRUD operations for credentials in macOS Keychain.
type SystemStore struct {
	account string
}

// NewSystemStore creates a Keychain-backed store bound to account.
func NewSystemStore(account string) *SystemStore {
	return &SystemStore{account: account}
}

// Set stores a credential under service. Overwrites if it already exists.
func (s *SystemStore) Set(service, value string) error {
	// Try to delete existing item first (update = delete + add)
	_ = s.Delete(service)

	item := gokeychain.NewGenericPassword(
		service,
		s.account,
		fmt.Sprintf("credswap: %s", service),
		[]byte(value),
		"",
	)
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(gokeychain.AccessibleWhenUnlockedThisDeviceOnly)

	if err := gokeychain.AddItem(item); err != nil {
		return fmt.Errorf("%w: add %q: %v", ErrUnavailable, service, err)
	}
	return nil
}

// Get retrieves the credential stored under service.
func (s *SystemStore) Get(service string) (string, error) {
	data, err := gokeychain.GetGenericPassword(service, s.account, "", "")
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, service)
		}
		return "", fmt.Errorf("%w: get %q: %v", ErrUnavailable, service, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, service)
	}
	return string(data), nil
}

// Delete removes the entry under service. A missing entry is not an error.
func (s *SystemStore) Delete(service string) error {
	err := gokeychain.DeleteGenericPasswordItem(service, s.account)
	if err != nil && !errors.Is(err, gokeychain.ErrorItemNotFound) {
		return fmt.Errorf("%w: delete %q: %v", ErrUnavailable, service, err)
	}
	return nil
}
