// file: internals/features/backups/service/restore_service_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasahku_backend/internals/features/backups/model"
)

func newRestoreFixture() (*fakeStore, *RestoreService) {
	store := newFakeStore()
	locks := NewTenantLocks()
	backups := NewBackupService(store, locks)
	return store, NewRestoreService(store, backups, locks)
}

// insertBackupRecord menanam record backup langsung di store, untuk
// menguji payload yang tidak dibuat lewat BackupService (backup lama dsb).
func insertBackupRecord(t *testing.T, store *fakeStore, mid string, payload map[string][]Row) *model.BackupModel {
	t.Helper()
	raw, err := sonic.Marshal(payload)
	require.NoError(t, err)
	b := &model.BackupModel{
		ID:         uuid.New(),
		MadrasahID: uuid.MustParse(mid),
		BackupType: model.BackupTypeManual,
		BackupData: raw,
	}
	store.backups = append(store.backups, b)
	return b
}

func TestRestoreValidatesInput(t *testing.T) {
	_, svc := newRestoreFixture()

	_, err := svc.RestoreBackup(context.Background(), "", uuid.NewString())
	assert.ErrorIs(t, err, ErrMissingMadrasahID)

	_, err = svc.RestoreBackup(context.Background(), uuid.NewString(), "")
	assert.ErrorIs(t, err, ErrMissingBackupID)
}

func TestRestoreRoundTrip(t *testing.T) {
	store, svc := newRestoreFixture()
	mid := uuid.NewString()

	store.seed("students", mid,
		Row{"id": uuid.NewString(), "madrasah_id": mid, "name": "Ahmad"},
		Row{"id": uuid.NewString(), "madrasah_id": mid, "name": "Siti"},
	)
	store.seed("classes", mid,
		Row{"id": uuid.NewString(), "madrasah_id": mid, "name": "Kelas 1A"},
	)

	backup, err := svc.Backups.CreateBackup(context.Background(), mid, model.BackupTypeManual, "")
	require.NoError(t, err)

	// data berubah setelah backup
	store.seed("students", mid, Row{"id": uuid.NewString(), "madrasah_id": mid, "name": "Penyusup"})

	res, err := svc.RestoreBackup(context.Background(), mid, backup.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 3, res.RecordsRestored)
	assert.NotEmpty(t, res.PreRestoreBackupID)

	// state kembali persis isi backup
	students := store.rowsFor("students", mid)
	require.Len(t, students, 2)
	names := []string{students[0]["name"].(string), students[1]["name"].(string)}
	assert.ElementsMatch(t, []string{"Ahmad", "Siti"}, names)
	assert.Len(t, store.rowsFor("classes", mid), 1)
}

func TestRestoreCreatesSafetyBackupBeforeDeleting(t *testing.T) {
	store, svc := newRestoreFixture()
	mid := uuid.NewString()
	store.seed("students", mid, Row{"id": uuid.NewString(), "madrasah_id": mid, "name": "Ahmad"})

	backup, err := svc.Backups.CreateBackup(context.Background(), mid, model.BackupTypeManual, "")
	require.NoError(t, err)

	_, err = svc.RestoreBackup(context.Background(), mid, backup.ID.String())
	require.NoError(t, err)

	// backup pengaman pre_restore tercatat SEBELUM delete pertama
	preRestoreAt, firstDeleteAt := -1, -1
	for i, op := range store.ops {
		if op == "insert-backup:pre_restore" && preRestoreAt == -1 {
			preRestoreAt = i
		}
		if strings.HasPrefix(op, "delete:") && firstDeleteAt == -1 {
			firstDeleteAt = i
		}
	}
	require.NotEqual(t, -1, preRestoreAt, "backup pengaman harus dibuat")
	require.NotEqual(t, -1, firstDeleteAt, "fase delete harus jalan")
	assert.Less(t, preRestoreAt, firstDeleteAt)

	// dan bertipe pre_restore dengan catatan menunjuk backup target
	var pre *model.BackupModel
	for _, b := range store.backups {
		if b.BackupType == model.BackupTypePreRestore {
			pre = b
		}
	}
	require.NotNil(t, pre)
	require.NotNil(t, pre.Notes)
	assert.Contains(t, *pre.Notes, backup.ID.String())
}

func TestRestoreDeletesInReverseDependencyOrder(t *testing.T) {
	store, svc := newRestoreFixture()
	mid := uuid.NewString()

	backup, err := svc.Backups.CreateBackup(context.Background(), mid, model.BackupTypeManual, "")
	require.NoError(t, err)

	_, err = svc.RestoreBackup(context.Background(), mid, backup.ID.String())
	require.NoError(t, err)

	deletes := store.opsOfKind("delete:")
	require.Len(t, deletes, len(BackupTables))
	for i, table := range DeleteOrder() {
		assert.Equal(t, "delete:"+table, deletes[i])
	}
}

func TestRestoreInsertsForwardSkippingEmptyTables(t *testing.T) {
	store, svc := newRestoreFixture()
	mid := uuid.NewString()

	// payload lama: hanya sebagian key — sisanya dianggap tabel kosong
	backup := insertBackupRecord(t, store, mid, map[string][]Row{
		"students": {{"id": uuid.NewString(), "madrasah_id": mid, "name": "Ahmad"}},
		"teachers": {},
		"fees":     {{"id": uuid.NewString(), "madrasah_id": mid, "amount": 100.0}},
	})

	res, err := svc.RestoreBackup(context.Background(), mid, backup.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, res.RecordsRestored)

	inserts := store.opsOfKind("insert:")
	assert.Equal(t, []string{"insert:students:1", "insert:fees:1"}, inserts)

	// students diinsert sebelum fees (urutan maju dependensi)
	assert.Len(t, store.rowsFor("students", mid), 1)
	assert.Empty(t, store.rowsFor("teachers", mid))
}

func TestRestoreUnknownBackupIsNonDestructive(t *testing.T) {
	store, svc := newRestoreFixture()
	mid := uuid.NewString()
	store.seed("students", mid, Row{"id": uuid.NewString(), "madrasah_id": mid, "name": "Ahmad"})

	_, err := svc.RestoreBackup(context.Background(), mid, uuid.NewString())
	require.ErrorIs(t, err, ErrBackupNotFound)

	// tidak ada fase destruktif yang sempat jalan
	assert.Empty(t, store.opsOfKind("delete:"))
	assert.Len(t, store.rowsFor("students", mid), 1)
}

func TestRestoreBackupFromOtherTenantNotFound(t *testing.T) {
	store, svc := newRestoreFixture()
	midA := uuid.NewString()
	midB := uuid.NewString()

	backupB := insertBackupRecord(t, store, midB, map[string][]Row{
		"students": {{"id": uuid.NewString(), "madrasah_id": midB, "name": "Budi"}},
	})

	// backup milik tenant B tidak resolve untuk tenant A
	_, err := svc.RestoreBackup(context.Background(), midA, backupB.ID.String())
	require.ErrorIs(t, err, ErrBackupNotFound)
	assert.Empty(t, store.opsOfKind("delete:"))
}

func TestRestoreRollsBackOnInsertFailure(t *testing.T) {
	store, svc := newRestoreFixture()
	mid := uuid.NewString()
	store.seed("students", mid, Row{"id": uuid.NewString(), "madrasah_id": mid, "name": "Ahmad"})

	backup, err := svc.Backups.CreateBackup(context.Background(), mid, model.BackupTypeManual, "")
	require.NoError(t, err)

	store.failInsert["students"] = errStoreDown

	_, err = svc.RestoreBackup(context.Background(), mid, backup.ID.String())
	require.ErrorIs(t, err, errStoreDown)

	// error menyebut backup pengaman sebagai jalur pemulihan
	assert.Contains(t, err.Error(), "pre-restore backup")

	// transaksi rollback: data pra-restore masih utuh
	students := store.rowsFor("students", mid)
	require.Len(t, students, 1)
	assert.Equal(t, "Ahmad", students[0]["name"])
}

func TestRestoreAbortsWhenSafetyBackupFails(t *testing.T) {
	store, svc := newRestoreFixture()
	mid := uuid.NewString()
	store.seed("students", mid, Row{"id": uuid.NewString(), "madrasah_id": mid, "name": "Ahmad"})

	backup := insertBackupRecord(t, store, mid, map[string][]Row{})
	store.failInsertBackup = errStoreDown

	_, err := svc.RestoreBackup(context.Background(), mid, backup.ID.String())
	require.ErrorIs(t, err, errStoreDown)

	// backup pengaman gagal = restore batal total sebelum fase destruktif
	assert.Empty(t, store.opsOfKind("delete:"))
	assert.Len(t, store.rowsFor("students", mid), 1)
}

func TestRestoreRejectsWhenTenantBusy(t *testing.T) {
	store, svc := newRestoreFixture()
	mid := uuid.NewString()
	backup := insertBackupRecord(t, store, mid, map[string][]Row{})

	require.NoError(t, svc.Locks.TryLock(mid))
	defer svc.Locks.Unlock(mid)

	_, err := svc.RestoreBackup(context.Background(), mid, backup.ID.String())
	assert.ErrorIs(t, err, ErrTenantBusy)
}
