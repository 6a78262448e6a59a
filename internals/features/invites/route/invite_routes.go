// file: internals/features/invites/route/invite_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/invites/controller"
)

// InviteUserRoutes: terima undangan cukup login, tanpa scope madrasah
func InviteUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInviteController(db)
	user.Post("/invites/accept", ctrl.Accept)
}

// InviteAdminRoutes: kelola undangan, admin saja
func InviteAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInviteController(db)

	invites := admin.Group("/invites",
		authz.RequireCapability(authz.CapManageInvites, "undangan"))
	invites.Get("/", ctrl.List)
	invites.Post("/", ctrl.Create)
	invites.Patch("/:id/deactivate", ctrl.Deactivate)
	invites.Delete("/:id",
		authz.RequireCapability(authz.CapDeleteData, "undangan"),
		ctrl.Delete)
}
