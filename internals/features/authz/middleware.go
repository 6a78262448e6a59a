// file: internals/features/authz/middleware.go
package authz

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helpers "madrasahku_backend/internals/helpers"
)

// Kunci Locals yang dipakai lintas middleware/controller
const (
	LocMadrasahID = "madrasah_id"
	LocUserRole   = "userRole"
)

// UseMadrasahScope resolve TenantContext dari DB lalu simpan ke Locals.
// Gagal resolve (store down) = request ditolak, bukan lolos tanpa role.
func UseMadrasahScope(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := helpers.GetUserUUID(c)
		if userID == uuid.Nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tc, err := ResolveTenantContext(c.UserContext(), db, userID)
		if err != nil {
			if errors.Is(err, ErrUnprovisioned) {
				return fiber.NewError(fiber.StatusForbidden, "Akun belum terhubung ke madrasah. Selesaikan setup dulu.")
			}
			log.Printf("[ERROR] resolve tenant context: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal resolve akses madrasah")
		}

		c.Locals(LocMadrasahID, tc.MadrasahID.String())
		c.Locals(LocUserRole, tc.Role)
		return c.Next()
	}
}

// RequireCapability guard route berbasis tabel capabilityRoles yang sama
// dengan predikat klien. Role tidak ada / tidak dikenal → 403 (fail-closed).
func RequireCapability(cap Capability, feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocUserRole).(string)
		if !Allowed(role, cap) {
			msg := "❌ Anda tidak punya akses untuk fitur ini."
			if feature != "" {
				msg = "❌ Anda tidak punya akses untuk fitur " + feature + "."
			}
			return fiber.NewError(fiber.StatusForbidden, msg)
		}
		return c.Next()
	}
}

// MadrasahIDFromLocals membaca madrasah_id hasil UseMadrasahScope
func MadrasahIDFromLocals(c *fiber.Ctx) string {
	id, _ := c.Locals(LocMadrasahID).(string)
	return id
}
