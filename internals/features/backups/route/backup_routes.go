// file: internals/features/backups/route/backup_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/backups/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

// BackupAdminRoutes: riwayat + buat + restore + hapus (admin only)
func BackupAdminRoutes(api fiber.Router, db *gorm.DB, ctrl *controller.BackupController) {
	backups := api.Group("/backups",
		authz.RequireCapability(authz.CapManageBackups, "backup & restore"),
	)
	backups.Get("/", ctrl.ListBackups)
	backups.Post("/", ctrl.CreateBackup)
	backups.Post("/restore", ctrl.RestoreBackup)
	backups.Delete("/:id",
		authz.RequireCapability(authz.CapDeleteData, "hapus backup"),
		ctrl.DeleteBackup,
	)
}

// BackupFunctionRoutes: endpoint function-style dengan CORS permisif
// (kontrak publik lama, dipanggil langsung dari browser — preflight
// OPTIONS wajib lolos).
func BackupFunctionRoutes(app *fiber.App, db *gorm.DB, ctrl *controller.BackupController) {
	fn := app.Group("/functions",
		cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "POST,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept, Authorization, apikey, x-client-info",
		}),
		authMiddleware.AuthMiddleware(db),
		authz.UseMadrasahScope(db),
		authz.RequireCapability(authz.CapManageBackups, "backup & restore"),
		requireOwnMadrasah,
	)
	fn.Post("/backup-madrasah-data", ctrl.BackupFunction)
	fn.Post("/restore-madrasah-data", ctrl.RestoreFunction)
}

// requireOwnMadrasah memastikan madrasahId di body = madrasah caller;
// function endpoint menerima tenant id eksplisit, jadi harus dicek.
func requireOwnMadrasah(c *fiber.Ctx) error {
	var probe struct {
		MadrasahID string `json:"madrasahId"`
	}
	if err := c.BodyParser(&probe); err == nil && probe.MadrasahID != "" {
		if probe.MadrasahID != authz.MadrasahIDFromLocals(c) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "madrasahId tidak sesuai dengan akses Anda",
			})
		}
	}
	return c.Next()
}
