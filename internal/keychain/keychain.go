// Package keychain provides credential storage backed by the OS-native
// secure store.
//
// Entries are stored as generic passwords with:
//   - Account: the OS user the switcher runs as
//   - Service: a caller-supplied service name (the client application and
//     credswap each own their own names)
//
// On macOS entries are scoped with kSecAttrAccessibleWhenUnlockedThisDeviceOnly:
// never synced to iCloud, never available when the machine is locked.
package keychain

import "errors"

// ErrNotFound is returned when no entry exists under a service name.
var ErrNotFound = errors.New("credential not found")

// ErrUnavailable is returned when the OS store itself cannot be reached
// (locked keychain, missing keyring backend, permission denial). The raw
// OS error text is preserved in the wrapped message.
var ErrUnavailable = errors.New("credential store unavailable")

// Store is the interface for credential storage operations. A Store is
// bound to one account at construction; service names select entries.
type Store interface {
	Get(service string) (string, error)
	Set(service, value string) error
	Delete(service string) error
}
