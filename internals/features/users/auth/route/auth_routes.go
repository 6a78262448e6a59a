package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/users/auth/controller"
	"madrasahku_backend/internals/middlewares"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

// AuthRoutes: register/login publik (dengan limiter ketat), sisanya butuh JWT
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	api.Post("/refresh-token", ctrl.RefreshToken)

	protected := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.Me)
}
