// file: internals/features/backups/service/store_fake_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"madrasahku_backend/internals/features/backups/model"
)

// fakeStore: implementasi TenantStore in-memory untuk menguji engine
// backup/restore tanpa Postgres. Mencatat op log (fetch/delete/insert)
// dan mendukung injeksi kegagalan per tabel. Transaction meniru
// rollback: snapshot state di awal, pulihkan kalau fn error.
type fakeStore struct {
	mu sync.Mutex

	// data[table][madrasahID] = rows
	data    map[string]map[string][]Row
	backups []*model.BackupModel

	ops []string

	failFetch        map[string]error
	failDelete       map[string]error
	failInsert       map[string]error
	failInsertBackup error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data:       map[string]map[string][]Row{},
		failFetch:  map[string]error{},
		failDelete: map[string]error{},
		failInsert: map[string]error{},
	}
}

func (f *fakeStore) seed(table, madrasahID string, rows ...Row) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data[table] == nil {
		f.data[table] = map[string][]Row{}
	}
	f.data[table][madrasahID] = append(f.data[table][madrasahID], rows...)
}

func (f *fakeStore) rowsFor(table, madrasahID string) []Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Row(nil), f.data[table][madrasahID]...)
}

func (f *fakeStore) FetchRows(_ context.Context, table, madrasahID string) ([]Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "fetch:"+table)
	if err := f.failFetch[table]; err != nil {
		return nil, err
	}
	return append([]Row(nil), f.data[table][madrasahID]...), nil
}

func (f *fakeStore) DeleteRows(_ context.Context, table, madrasahID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "delete:"+table)
	if err := f.failDelete[table]; err != nil {
		return err
	}
	if f.data[table] != nil {
		delete(f.data[table], madrasahID)
	}
	return nil
}

func (f *fakeStore) InsertRows(_ context.Context, table string, rows []Row) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, fmt.Sprintf("insert:%s:%d", table, len(rows)))
	if err := f.failInsert[table]; err != nil {
		return err
	}
	for _, row := range rows {
		mid, _ := row["madrasah_id"].(string)
		if f.data[table] == nil {
			f.data[table] = map[string][]Row{}
		}
		f.data[table][mid] = append(f.data[table][mid], row)
	}
	return nil
}

func (f *fakeStore) InsertBackup(_ context.Context, b *model.BackupModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "insert-backup:"+b.BackupType)
	if f.failInsertBackup != nil {
		return f.failInsertBackup
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.backups = append(f.backups, b)
	return nil
}

func (f *fakeStore) FindBackup(_ context.Context, backupID, madrasahID string) (*model.BackupModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "find-backup")
	for _, b := range f.backups {
		if b.ID.String() == backupID && b.MadrasahID.String() == madrasahID {
			return b, nil
		}
	}
	return nil, ErrBackupNotFound
}

func (f *fakeStore) Transaction(ctx context.Context, fn func(txStore TenantStore) error) error {
	snapData := f.snapshotData()
	snapBackups := append([]*model.BackupModel(nil), f.backups...)
	if err := fn(f); err != nil {
		f.mu.Lock()
		f.data = snapData
		f.backups = snapBackups
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeStore) snapshotData() map[string]map[string][]Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]map[string][]Row{}
	for table, byTenant := range f.data {
		out[table] = map[string][]Row{}
		for mid, rows := range byTenant {
			out[table][mid] = append([]Row(nil), rows...)
		}
	}
	return out
}

// opsOfKind menyaring op log berdasar prefix ("delete:", "insert:", ...)
func (f *fakeStore) opsOfKind(prefix string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []string{}
	for _, op := range f.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			out = append(out, op)
		}
	}
	return out
}

func decodePayload(b *model.BackupModel) (map[string][]Row, error) {
	payload := map[string][]Row{}
	if err := sonic.Unmarshal(b.BackupData, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

var errStoreDown = errors.New("store down")
