// file: internals/features/madrasahs/route/madrasah_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/madrasahs/controller"
	authMw "madrasahku_backend/internals/middlewares/auth"
)

// MadrasahSetupRoutes: hanya butuh login (user belum punya scope madrasah)
func MadrasahSetupRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMadrasahController(db)
	user.Post("/madrasah/setup", ctrl.Setup)
}

// MadrasahAdminRoutes: dipasang di group admin (sudah scoped)
func MadrasahAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMadrasahController(db)

	madrasah := admin.Group("/madrasah")
	madrasah.Get("/", ctrl.Get)
	madrasah.Put("/",
		authMw.OnlyRolesSlice(constants.RoleErrorManager("profil madrasah"), constants.ManagerAndAbove),
		ctrl.Update)
	madrasah.Post("/logo",
		authMw.OnlyRolesSlice(constants.RoleErrorManager("logo madrasah"), constants.ManagerAndAbove),
		ctrl.UploadLogo)
	madrasah.Delete("/",
		authz.RequireCapability(authz.CapDeleteData, "hapus madrasah"),
		ctrl.DeletePermanently)
}
