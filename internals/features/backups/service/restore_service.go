// file: internals/features/backups/service/restore_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bytedance/sonic"

	"madrasahku_backend/internals/features/backups/model"
)

type RestoreService struct {
	Store   TenantStore
	Backups *BackupService
	Locks   *TenantLocks
}

func NewRestoreService(store TenantStore, backups *BackupService, locks *TenantLocks) *RestoreService {
	return &RestoreService{Store: store, Backups: backups, Locks: locks}
}

// RestoreResult dikembalikan sukses restore: id backup pengaman sebagai
// jalur undo, plus jumlah baris yang dipulihkan.
type RestoreResult struct {
	PreRestoreBackupID string
	RecordsRestored    int
}

// RestoreBackup mengganti seluruh data bisnis satu madrasah dengan isi
// sebuah backup. Urutan langkahnya linear dan urutannya adalah kontrak:
//
//  1. validasi input — tanpa side effect
//  2. backup pengaman (pre_restore) — WAJIB sukses sebelum ada aksi destruktif
//  3. load backup target (filter id + madrasah_id)
//  4. delete semua tabel urutan mundur dependensi
//  5. insert semua tabel urutan maju dependensi (skip list kosong)
//
// Langkah 4–5 jalan dalam satu transaksi: gagal di tengah = rollback,
// bukan tenant setengah terhapus. Backup pengaman tetap dibuat lebih
// dulu sebagai jalur pemulihan manual.
func (s *RestoreService) RestoreBackup(ctx context.Context, madrasahID, backupID string) (*RestoreResult, error) {
	// 1. validasi input
	if strings.TrimSpace(madrasahID) == "" {
		return nil, ErrMissingMadrasahID
	}
	if strings.TrimSpace(backupID) == "" {
		return nil, ErrMissingBackupID
	}

	// satu lock tenant untuk seluruh critical section backup+restore
	if s.Locks != nil {
		if err := s.Locks.TryLock(madrasahID); err != nil {
			return nil, err
		}
		defer s.Locks.Unlock(madrasahID)
	}

	// 2. backup pengaman — gagal di sini berarti restore batal total
	note := fmt.Sprintf("Backup otomatis sebelum restore dari backup %s", backupID)
	preRestore, err := s.Backups.createBackupLocked(ctx, madrasahID, model.BackupTypePreRestore, note)
	if err != nil {
		return nil, fmt.Errorf("backup pengaman gagal, restore dibatalkan: %w", err)
	}

	// 3. load backup target
	target, err := s.Store.FindBackup(ctx, backupID, madrasahID)
	if err != nil {
		return nil, err
	}

	payload := map[string][]Row{}
	if err := sonic.Unmarshal(target.BackupData, &payload); err != nil {
		return nil, fmt.Errorf("payload backup korup: %w", err)
	}

	restored := 0
	err = s.Store.Transaction(ctx, func(tx TenantStore) error {
		// 4. fase destruktif: anak dulu, induk belakangan
		for _, table := range DeleteOrder() {
			if err := tx.DeleteRows(ctx, table, madrasahID); err != nil {
				log.Printf("[ERROR] restore: delete %s gagal: %v", table, err)
				return err
			}
		}

		// 5. fase pemulihan: induk dulu, anak belakangan.
		// Key yang hilang = tabel kosong (kompatibel dengan backup lama
		// saat skema nambah tabel); list kosong = no-op.
		for _, table := range BackupTables {
			rows := payload[table]
			if len(rows) == 0 {
				continue
			}
			if err := tx.InsertRows(ctx, table, rows); err != nil {
				log.Printf("[ERROR] restore: insert %s gagal: %v", table, err)
				return err
			}
			restored += len(rows)
		}
		return nil
	})
	if err != nil {
		// transaksi rollback; data pra-restore masih utuh, dan backup
		// pengaman tetap tersedia sebagai jalur pemulihan
		return nil, fmt.Errorf("restore gagal (pre-restore backup: %s): %w", preRestore.ID, err)
	}

	log.Printf("✅ Restore madrasah %s dari backup %s selesai (%d baris)", madrasahID, backupID, restored)
	return &RestoreResult{
		PreRestoreBackupID: preRestore.ID.String(),
		RecordsRestored:    restored,
	}, nil
}
