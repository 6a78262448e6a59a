// file: internals/features/backups/model/backup_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Jenis backup
const (
	BackupTypeManual     = "manual"
	BackupTypeAuto       = "auto"
	BackupTypePreRestore = "pre_restore"
)

func IsValidBackupType(t string) bool {
	switch t {
	case BackupTypeManual, BackupTypeAuto, BackupTypePreRestore:
		return true
	}
	return false
}

// BackupModel: satu snapshot utuh data bisnis satu madrasah.
// BackupData = jsonb { nama_tabel: [row, ...] } untuk SEMUA tabel backup —
// konsumen wajib memperlakukan key yang hilang sebagai tabel kosong.
// Record ini immutable: tidak ada jalur update, hanya create dan delete.
type BackupModel struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MadrasahID uuid.UUID      `gorm:"column:madrasah_id;type:uuid;not null;index" json:"madrasah_id"`
	BackupDate time.Time      `gorm:"column:backup_date;autoCreateTime" json:"backup_date"`
	BackupType string         `gorm:"column:backup_type;type:varchar(20);not null;default:'manual'" json:"backup_type"`
	BackupData datatypes.JSON `gorm:"column:backup_data;type:jsonb;not null;default:'{}'" json:"backup_data"`
	Notes      *string        `gorm:"column:notes;type:text" json:"notes,omitempty"`
}

func (BackupModel) TableName() string { return "backups" }
