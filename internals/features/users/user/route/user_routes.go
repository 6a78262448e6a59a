package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: manajemen anggota & role (admin only)
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserRoleController(db)

	members := api.Group("/members",
		authz.RequireCapability(authz.CapManageRoles, "manajemen role"),
	)
	members.Get("/", ctrl.ListMembers)
	members.Post("/roles", ctrl.AssignRole)
	members.Delete("/roles/:user_id", ctrl.RevokeRole)
}
