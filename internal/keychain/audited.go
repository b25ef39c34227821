package keychain

import (
	"github.com/mfairley/credswap/internal/audit"
)

// AuditedStore wraps a Store and records every operation, including
// failures, to the audit log.
type AuditedStore struct {
	inner Store
	audit *audit.Logger
	actor string // "cli" or "menu"
}

// NewAuditedStore wraps an existing store with audit logging.
func NewAuditedStore(inner Store, auditLog *audit.Logger, actor string) *AuditedStore {
	return &AuditedStore{
		inner: inner,
		audit: auditLog,
		actor: actor,
	}
}

// log writes an entry for one operation. Audit logging is best-effort —
// a failure to log should not block the operation.
func (s *AuditedStore) log(action audit.Action, service string, err error) {
	entry := audit.Entry{
		Action:  action,
		Service: service,
		Actor:   s.actor,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	s.audit.Log(entry)
}

func (s *AuditedStore) Get(service string) (string, error) {
	val, err := s.inner.Get(service)
	s.log(audit.ActionStoreRead, service, err)
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *AuditedStore) Set(service, value string) error {
	err := s.inner.Set(service, value)
	s.log(audit.ActionStoreWrite, service, err)
	return err
}

func (s *AuditedStore) Delete(service string) error {
	err := s.inner.Delete(service)
	s.log(audit.ActionStoreDelete, service, err)
	return err
}
