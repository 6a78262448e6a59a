// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	backupController "madrasahku_backend/internals/features/backups/controller"
	backupRoute "madrasahku_backend/internals/features/backups/route"
	inviteRoute "madrasahku_backend/internals/features/invites/route"
	madrasahRoute "madrasahku_backend/internals/features/madrasahs/route"
	schoolRoute "madrasahku_backend/internals/features/school/route"
	authRoute "madrasahku_backend/internals/features/users/auth/route"
	userRoute "madrasahku_backend/internals/features/users/user/route"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

// SetupRoutes menyusun seluruh route aplikasi dalam tiga lapis:
//   - public : health, auth (register/login/google/refresh)
//   - user   : cukup login — setup madrasah & terima undangan
//   - admin  : login + scope madrasah (role resolve dari user_roles)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🌐 Public
	BaseRoutes(app, db)
	authRoute.AuthRoutes(app, db)

	// 🔑 Login saja (belum tentu punya madrasah)
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	madrasahRoute.MadrasahSetupRoutes(user, db)
	inviteRoute.InviteUserRoutes(user, db)

	// 🏫 Scoped ke madrasah
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authz.UseMadrasahScope(db),
	)
	madrasahRoute.MadrasahAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	inviteRoute.InviteAdminRoutes(admin, db)
	schoolRoute.SchoolRoutes(admin, db)

	backupCtrl := backupController.NewBackupController(db)
	backupRoute.BackupAdminRoutes(admin, db, backupCtrl)

	// ⚙️ Function-style endpoints (kontrak lama, CORS permisif)
	backupRoute.BackupFunctionRoutes(app, db, backupCtrl)
}
