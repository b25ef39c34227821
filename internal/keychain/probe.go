package keychain

import (
	"errors"
	"fmt"
	"strings"
)

// Probe tries candidate service names in order and returns the first
// credential found, along with the service name that held it. The client
// application has renamed its keychain entry across versions; probing
// keeps extraction working without knowing which version is installed.
//
// A store failure aborts the probe; only ErrNotFound falls through to
// the next candidate.
func Probe(s Store, candidates []string) (value, service string, err error) {
	for _, svc := range candidates {
		val, err := s.Get(svc)
		if err == nil {
			return val, svc, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", "", err
		}
	}
	return "", "", fmt.Errorf("%w: no entry under %s", ErrNotFound, strings.Join(candidates, ", "))
}
