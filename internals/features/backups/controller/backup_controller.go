// file: internals/features/backups/controller/backup_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/backups/dto"
	"madrasahku_backend/internals/features/backups/model"
	"madrasahku_backend/internals/features/backups/service"
	helpers "madrasahku_backend/internals/helpers"
)

var validate = validator.New()

type BackupController struct {
	DB      *gorm.DB
	Backups *service.BackupService
	Restore *service.RestoreService
}

func NewBackupController(db *gorm.DB) *BackupController {
	store := service.NewGormTenantStore(db)
	locks := service.NewTenantLocks()
	backups := service.NewBackupService(store, locks)
	return &BackupController{
		DB:      db,
		Backups: backups,
		Restore: service.NewRestoreService(store, backups, locks),
	}
}

// =========================
// Buat backup (admin)
// =========================
func (ctrl *BackupController) CreateBackup(c *fiber.Ctx) error {
	var body dto.CreateBackupRequest
	if err := c.BodyParser(&body); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		// body boleh kosong: default manual
		body = dto.CreateBackupRequest{}
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	madrasahID := authz.MadrasahIDFromLocals(c)
	backup, err := ctrl.Backups.CreateBackup(c.UserContext(), madrasahID, body.BackupType, body.Notes)
	if err != nil {
		return backupErrorToJson(c, err)
	}

	return helpers.JsonCreated(c, "Backup berhasil dibuat", dto.ToBackupSummaryDTO(*backup))
}

// =========================
// Riwayat backup (admin)
// =========================
func (ctrl *BackupController) ListBackups(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.BackupModel{}).
		Where("madrasah_id = ?", madrasahID).
		Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung backup")
	}

	var rows []model.BackupModel
	if err := ctrl.DB.
		Select("id", "madrasah_id", "backup_date", "backup_type", "notes").
		Where("madrasah_id = ?", madrasahID).
		Order("backup_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat backup")
	}

	items := make([]dto.BackupSummaryDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ToBackupSummaryDTO(r))
	}

	return helpers.JsonList(c, "ok", items,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =========================
// Restore (admin)
// =========================
func (ctrl *BackupController) RestoreBackup(c *fiber.Ctx) error {
	var body dto.RestoreRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	madrasahID := authz.MadrasahIDFromLocals(c)
	result, err := ctrl.Restore.RestoreBackup(c.UserContext(), madrasahID, body.BackupID.String())
	if err != nil {
		return backupErrorToJson(c, err)
	}

	return helpers.JsonOK(c, "Restore selesai", fiber.Map{
		"pre_restore_backup_id": result.PreRestoreBackupID,
		"records_restored":      result.RecordsRestored,
	})
}

// =========================
// Hapus satu backup (admin)
// =========================
func (ctrl *BackupController) DeleteBackup(c *fiber.Ctx) error {
	backupID, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id backup tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	res := ctrl.DB.Where("id = ? AND madrasah_id = ?", backupID, madrasahID).
		Delete(&model.BackupModel{})
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus backup")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Backup tidak ditemukan")
	}

	return helpers.JsonDeleted(c, "Backup berhasil dihapus", nil)
}

// backupErrorToJson memetakan error service ke envelope admin
func backupErrorToJson(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrMissingMadrasahID),
		errors.Is(err, service.ErrMissingBackupID),
		errors.Is(err, service.ErrInvalidBackupType):
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrBackupNotFound):
		return helpers.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTenantBusy):
		return helpers.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		log.Printf("[ERROR] backup/restore: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Operasi backup/restore gagal")
	}
}
