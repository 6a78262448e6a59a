// file: internals/features/backups/service/backup_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasahku_backend/internals/features/backups/model"
)

func TestDeleteOrderIsReversedBackupTables(t *testing.T) {
	order := DeleteOrder()
	require.Len(t, order, len(BackupTables))
	for i, table := range BackupTables {
		assert.Equal(t, table, order[len(order)-1-i])
	}
	// DeleteOrder tidak boleh memodifikasi daftar aslinya
	assert.Equal(t, "students", BackupTables[0])
	assert.Equal(t, "learning_reports", BackupTables[len(BackupTables)-1])
}

func TestCreateBackupValidatesInput(t *testing.T) {
	svc := NewBackupService(newFakeStore(), NewTenantLocks())

	_, err := svc.CreateBackup(context.Background(), "", model.BackupTypeManual, "")
	assert.ErrorIs(t, err, ErrMissingMadrasahID)

	_, err = svc.CreateBackup(context.Background(), uuid.NewString(), "weekly", "")
	assert.ErrorIs(t, err, ErrInvalidBackupType)
}

func TestCreateBackupDefaultsToManual(t *testing.T) {
	store := newFakeStore()
	svc := NewBackupService(store, NewTenantLocks())
	mid := uuid.NewString()

	b, err := svc.CreateBackup(context.Background(), mid, "", "")
	require.NoError(t, err)
	assert.Equal(t, model.BackupTypeManual, b.BackupType)
	require.NotNil(t, b.Notes)
	assert.Equal(t, "manual backup", *b.Notes)
}

func TestCreateBackupKeepsCallerNotes(t *testing.T) {
	store := newFakeStore()
	svc := NewBackupService(store, NewTenantLocks())

	b, err := svc.CreateBackup(context.Background(), uuid.NewString(), model.BackupTypeAuto, "backup mingguan")
	require.NoError(t, err)
	require.NotNil(t, b.Notes)
	assert.Equal(t, "backup mingguan", *b.Notes)
}

func TestCreateBackupPayloadCoversAllTables(t *testing.T) {
	store := newFakeStore()
	mid := uuid.NewString()
	store.seed("students", mid,
		Row{"id": uuid.NewString(), "madrasah_id": mid, "name": "Ahmad"},
		Row{"id": uuid.NewString(), "madrasah_id": mid, "name": "Siti"},
	)
	store.seed("fees", mid,
		Row{"id": uuid.NewString(), "madrasah_id": mid, "amount": 150000.0},
	)

	svc := NewBackupService(store, NewTenantLocks())
	b, err := svc.CreateBackup(context.Background(), mid, model.BackupTypeManual, "")
	require.NoError(t, err)

	payload, err := decodePayload(b)
	require.NoError(t, err)

	// semua tabel bisnis hadir sebagai key, termasuk yang kosong
	require.Len(t, payload, len(BackupTables))
	for _, table := range BackupTables {
		_, ok := payload[table]
		assert.Truef(t, ok, "payload harus punya key %s", table)
	}
	assert.Len(t, payload["students"], 2)
	assert.Len(t, payload["fees"], 1)
	assert.Empty(t, payload["loans"])
}

func TestCreateBackupScopedToTenant(t *testing.T) {
	store := newFakeStore()
	midA := uuid.NewString()
	midB := uuid.NewString()
	store.seed("students", midA, Row{"id": uuid.NewString(), "madrasah_id": midA, "name": "Ahmad"})
	store.seed("students", midB, Row{"id": uuid.NewString(), "madrasah_id": midB, "name": "Budi"})

	svc := NewBackupService(store, NewTenantLocks())
	b, err := svc.CreateBackup(context.Background(), midA, model.BackupTypeManual, "")
	require.NoError(t, err)

	payload, err := decodePayload(b)
	require.NoError(t, err)
	require.Len(t, payload["students"], 1)
	assert.Equal(t, "Ahmad", payload["students"][0]["name"])
}

func TestCreateBackupAbortsOnReadFailure(t *testing.T) {
	store := newFakeStore()
	store.failFetch["fees"] = errStoreDown

	svc := NewBackupService(store, NewTenantLocks())
	_, err := svc.CreateBackup(context.Background(), uuid.NewString(), model.BackupTypeManual, "")
	require.ErrorIs(t, err, errStoreDown)

	// gagal baca satu tabel = tidak ada record backup sama sekali
	assert.Empty(t, store.backups)
	assert.Empty(t, store.opsOfKind("insert-backup:"))
}

func TestCreateBackupRejectsWhenTenantBusy(t *testing.T) {
	store := newFakeStore()
	locks := NewTenantLocks()
	svc := NewBackupService(store, locks)
	mid := uuid.NewString()

	require.NoError(t, locks.TryLock(mid))
	defer locks.Unlock(mid)

	_, err := svc.CreateBackup(context.Background(), mid, model.BackupTypeManual, "")
	assert.ErrorIs(t, err, ErrTenantBusy)
}

func TestCreateBackupReleasesLockAfterRun(t *testing.T) {
	store := newFakeStore()
	locks := NewTenantLocks()
	svc := NewBackupService(store, locks)
	mid := uuid.NewString()

	_, err := svc.CreateBackup(context.Background(), mid, model.BackupTypeManual, "")
	require.NoError(t, err)

	// lock dilepas — panggilan berikutnya tidak boleh busy
	_, err = svc.CreateBackup(context.Background(), mid, model.BackupTypeManual, "")
	assert.NoError(t, err)
}

func TestTotalRows(t *testing.T) {
	payload := map[string][]Row{
		"students": {{"a": 1}, {"b": 2}},
		"fees":     {{"c": 3}},
		"loans":    {},
	}
	assert.Equal(t, 3, TotalRows(payload))
	assert.Equal(t, 0, TotalRows(map[string][]Row{}))
}
