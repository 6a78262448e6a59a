// file: internals/features/backups/service/backup_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"madrasahku_backend/internals/features/backups/model"
)

// BackupTables adalah daftar tetap tabel bisnis yang ikut backup, urut
// sesuai dependensi FK (parent dulu). Urutan ini dipakai dua arah:
// restore insert maju, restore delete mundur — jangan diubah tanpa
// menurunkan ulang urutan aman dependensinya.
var BackupTables = []string{
	"students",
	"teachers",
	"classes",
	"class_teachers",
	"attendance",
	"fees",
	"income",
	"expense",
	"salaries",
	"loans",
	"learning_reports",
}

// DeleteOrder mengembalikan BackupTables dibalik: tabel yang mereferensi
// (class_teachers, fees, ...) dihapus sebelum yang direferensi
// (classes, teachers, students) supaya FK tidak meledak.
func DeleteOrder() []string {
	out := make([]string, len(BackupTables))
	for i, t := range BackupTables {
		out[len(BackupTables)-1-i] = t
	}
	return out
}

// Error input fatal (tanpa side effect)
var (
	ErrMissingMadrasahID = errors.New("madrasahId wajib diisi")
	ErrMissingBackupID   = errors.New("backupId wajib diisi")
	ErrInvalidBackupType = errors.New("backupType tidak dikenal")
)

type BackupService struct {
	Store TenantStore
	Locks *TenantLocks
}

func NewBackupService(store TenantStore, locks *TenantLocks) *BackupService {
	return &BackupService{Store: store, Locks: locks}
}

// CreateBackup snapshot seluruh tabel bisnis satu madrasah menjadi satu
// record backups yang immutable. Payload SELALU berisi key untuk semua
// tabel di BackupTables (boleh list kosong) — coverage parsial berarti
// backup korup dan tidak boleh ditawarkan untuk restore.
func (s *BackupService) CreateBackup(ctx context.Context, madrasahID, backupType, notes string) (*model.BackupModel, error) {
	if strings.TrimSpace(madrasahID) == "" {
		return nil, ErrMissingMadrasahID
	}
	if backupType == "" {
		backupType = model.BackupTypeManual
	}
	if !model.IsValidBackupType(backupType) {
		return nil, ErrInvalidBackupType
	}

	if s.Locks != nil {
		if err := s.Locks.TryLock(madrasahID); err != nil {
			return nil, err
		}
		defer s.Locks.Unlock(madrasahID)
	}

	return s.createBackupLocked(ctx, madrasahID, backupType, notes)
}

// createBackupLocked adalah jalur tanpa ambil lock — dipakai juga oleh
// restore engine yang sudah memegang lock tenant yang sama.
func (s *BackupService) createBackupLocked(ctx context.Context, madrasahID, backupType, notes string) (*model.BackupModel, error) {
	payload := make(map[string][]Row, len(BackupTables))

	// seluruh pembacaan dalam satu transaksi read supaya snapshot
	// antar-tabel sedekat mungkin dengan potongan konsisten
	err := s.Store.Transaction(ctx, func(tx TenantStore) error {
		for _, table := range BackupTables {
			rows, err := tx.FetchRows(ctx, table, madrasahID)
			if err != nil {
				log.Printf("[ERROR] backup: baca tabel %s gagal: %v", table, err)
				return err
			}
			if rows == nil {
				rows = []Row{}
			}
			payload[table] = rows
		}
		return nil
	})
	if err != nil {
		// gagal baca satu tabel = batal total, tidak ada backup parsial
		return nil, err
	}

	raw, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload backup: %w", err)
	}

	if strings.TrimSpace(notes) == "" {
		notes = backupType + " backup"
	}

	mid, err := parseUUID(madrasahID)
	if err != nil {
		return nil, ErrMissingMadrasahID
	}

	backup := &model.BackupModel{
		MadrasahID: mid,
		BackupType: backupType,
		BackupData: raw,
		Notes:      &notes,
	}
	if err := s.Store.InsertBackup(ctx, backup); err != nil {
		log.Printf("[ERROR] backup: simpan record gagal: %v", err)
		return nil, err
	}

	log.Printf("✅ Backup %s dibuat untuk madrasah %s (%s)", backup.ID, madrasahID, backupType)
	return backup, nil
}

func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}

// TotalRows menghitung jumlah baris seluruh tabel dalam payload
func TotalRows(payload map[string][]Row) int {
	total := 0
	for _, rows := range payload {
		total += len(rows)
	}
	return total
}
