// file: internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BaseRoutes: health check & root info (tanpa auth)
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "madrasahku-backend",
			"status":  "ok",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		dbStatus := "ok"

		sqlDB, err := db.DB()
		if err != nil {
			status, dbStatus = "degraded", "error"
		} else if err := sqlDB.Ping(); err != nil {
			status, dbStatus = "degraded", "error"
		}

		return c.JSON(fiber.Map{
			"status":   status,
			"database": dbStatus,
			"time":     time.Now().Format(time.RFC3339),
		})
	})
}
