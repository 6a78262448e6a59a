// file: internals/features/backups/service/store.go
package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"madrasahku_backend/internals/features/backups/model"
)

// ErrBackupNotFound: backup id tidak resolve untuk madrasah tsb
var ErrBackupNotFound = errors.New("backup tidak ditemukan")

// Row adalah satu baris tabel dalam bentuk generik (hasil scan / unmarshal payload)
type Row = map[string]interface{}

// TenantStore mengabstraksi akses data engine backup/restore supaya bisa
// diuji tanpa Postgres. Semua operasi WAJIB ter-scope satu madrasah_id —
// tidak ada jalur "semua tenant".
type TenantStore interface {
	// FetchRows membaca semua baris satu tabel untuk satu madrasah
	FetchRows(ctx context.Context, table, madrasahID string) ([]Row, error)
	// DeleteRows menghapus semua baris satu tabel untuk satu madrasah
	DeleteRows(ctx context.Context, table, madrasahID string) error
	// InsertRows menyisipkan kembali baris hasil backup ke satu tabel
	InsertRows(ctx context.Context, table string, rows []Row) error

	InsertBackup(ctx context.Context, b *model.BackupModel) error
	FindBackup(ctx context.Context, backupID, madrasahID string) (*model.BackupModel, error)

	// Transaction menjalankan fn dalam satu transaksi store; fn menerima
	// TenantStore yang terikat transaksi tersebut.
	Transaction(ctx context.Context, fn func(txStore TenantStore) error) error
}

// ==============================
// Implementasi GORM
// ==============================

type GormTenantStore struct {
	DB *gorm.DB
}

func NewGormTenantStore(db *gorm.DB) *GormTenantStore {
	return &GormTenantStore{DB: db}
}

func (s *GormTenantStore) FetchRows(ctx context.Context, table, madrasahID string) ([]Row, error) {
	rows := []Row{}
	err := s.DB.WithContext(ctx).
		Table(table).
		Where("madrasah_id = ?", madrasahID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("baca tabel %s: %w", table, err)
	}
	return rows, nil
}

func (s *GormTenantStore) DeleteRows(ctx context.Context, table, madrasahID string) error {
	// nama tabel selalu dari daftar internal BackupTables, bukan input user
	err := s.DB.WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s WHERE madrasah_id = ?", table), madrasahID).Error
	if err != nil {
		return fmt.Errorf("hapus tabel %s: %w", table, err)
	}
	return nil
}

func (s *GormTenantStore) InsertRows(ctx context.Context, table string, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	err := s.DB.WithContext(ctx).Table(table).Create(rows).Error
	if err != nil {
		return fmt.Errorf("insert tabel %s: %w", table, err)
	}
	return nil
}

func (s *GormTenantStore) InsertBackup(ctx context.Context, b *model.BackupModel) error {
	return s.DB.WithContext(ctx).Create(b).Error
}

func (s *GormTenantStore) FindBackup(ctx context.Context, backupID, madrasahID string) (*model.BackupModel, error) {
	var b model.BackupModel
	// filter id + madrasah_id: tebak-tebakan id lintas tenant tidak mempan
	err := s.DB.WithContext(ctx).
		Where("id = ? AND madrasah_id = ?", backupID, madrasahID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBackupNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *GormTenantStore) Transaction(ctx context.Context, fn func(txStore TenantStore) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormTenantStore{DB: tx})
	})
}
