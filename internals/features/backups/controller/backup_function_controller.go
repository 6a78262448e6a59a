// file: internals/features/backups/controller/backup_function_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"madrasahku_backend/internals/features/backups/dto"
)

// Kontrak function-style lama: dipanggil langsung dari browser, CORS
// permisif, dan SEMUA kegagalan dibalas 500 {error} apa adanya.
// Jangan "dirapikan" ke envelope standar — klien lama parse bentuk ini.

// POST /functions/backup-madrasah-data
func (ctrl *BackupController) BackupFunction(c *fiber.Ctx) error {
	var body dto.BackupFunctionRequest
	if err := c.BodyParser(&body); err != nil {
		return functionError(c, "Invalid request body")
	}

	backup, err := ctrl.Backups.CreateBackup(c.UserContext(), body.MadrasahID, body.BackupType, body.Notes)
	if err != nil {
		log.Printf("[ERROR] backup function: %v", err)
		return functionError(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(dto.BackupFunctionResponse{
		Success:    true,
		BackupID:   backup.ID.String(),
		BackupDate: backup.BackupDate,
		Message:    "Backup berhasil dibuat",
	})
}

// POST /functions/restore-madrasah-data
func (ctrl *BackupController) RestoreFunction(c *fiber.Ctx) error {
	var body dto.RestoreFunctionRequest
	if err := c.BodyParser(&body); err != nil {
		return functionError(c, "Invalid request body")
	}

	result, err := ctrl.Restore.RestoreBackup(c.UserContext(), body.MadrasahID, body.BackupID)
	if err != nil {
		log.Printf("[ERROR] restore function: %v", err)
		return functionError(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(dto.RestoreFunctionResponse{
		Success:            true,
		PreRestoreBackupID: result.PreRestoreBackupID,
		RecordsRestored:    result.RecordsRestored,
		Message:            "Restore selesai",
	})
}

func functionError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.FunctionErrorResponse{Error: msg})
}
