// file: internals/features/backups/dto/backup_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"madrasahku_backend/internals/features/backups/model"
)

// ==============================
// Endpoint admin (envelope standar)
// ==============================

type CreateBackupRequest struct {
	BackupType string `json:"backup_type" validate:"omitempty,oneof=manual auto pre_restore"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

type RestoreRequest struct {
	BackupID uuid.UUID `json:"backup_id" validate:"required"`
}

// BackupSummaryDTO: item list riwayat — tanpa payload (bisa berukuran MB)
type BackupSummaryDTO struct {
	ID         uuid.UUID `json:"id"`
	BackupDate time.Time `json:"backup_date"`
	BackupType string    `json:"backup_type"`
	Notes      *string   `json:"notes,omitempty"`
}

func ToBackupSummaryDTO(m model.BackupModel) BackupSummaryDTO {
	return BackupSummaryDTO{
		ID:         m.ID,
		BackupDate: m.BackupDate,
		BackupType: m.BackupType,
		Notes:      m.Notes,
	}
}

// ==============================
// Endpoint function-style (kontrak publik lama, camelCase)
// ==============================

type BackupFunctionRequest struct {
	MadrasahID string `json:"madrasahId"`
	BackupType string `json:"backupType,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type BackupFunctionResponse struct {
	Success    bool      `json:"success"`
	BackupID   string    `json:"backupId"`
	BackupDate time.Time `json:"backupDate"`
	Message    string    `json:"message"`
}

type RestoreFunctionRequest struct {
	MadrasahID string `json:"madrasahId"`
	BackupID   string `json:"backupId"`
}

type RestoreFunctionResponse struct {
	Success            bool   `json:"success"`
	PreRestoreBackupID string `json:"preRestoreBackupId"`
	RecordsRestored    int    `json:"recordsRestored"`
	Message            string `json:"message"`
}

type FunctionErrorResponse struct {
	Error string `json:"error"`
}
