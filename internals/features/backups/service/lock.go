// file: internals/features/backups/service/lock.go
package service

import (
	"errors"
	"sync"
)

// ErrTenantBusy: sudah ada backup/restore berjalan untuk madrasah tsb
var ErrTenantBusy = errors.New("operasi backup/restore lain sedang berjalan untuk madrasah ini")

// TenantLocks membuat backup/restore per madrasah saling eksklusif.
// TryLock (bukan Lock) supaya admin kedua langsung dapat jawaban sibuk,
// bukan antre diam-diam di belakang operasi destruktif.
type TenantLocks struct {
	mu     sync.Mutex
	locked map[string]struct{}
}

func NewTenantLocks() *TenantLocks {
	return &TenantLocks{locked: make(map[string]struct{})}
}

func (l *TenantLocks) TryLock(madrasahID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.locked[madrasahID]; busy {
		return ErrTenantBusy
	}
	l.locked[madrasahID] = struct{}{}
	return nil
}

func (l *TenantLocks) Unlock(madrasahID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locked, madrasahID)
}
