// file: internals/features/madrasahs/controller/madrasah_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	"madrasahku_backend/internals/features/authz"
	backupSvc "madrasahku_backend/internals/features/backups/service"
	"madrasahku_backend/internals/features/madrasahs/dto"
	"madrasahku_backend/internals/features/madrasahs/model"
	userModel "madrasahku_backend/internals/features/users/user/model"
	helpers "madrasahku_backend/internals/helpers"
)

var validate = validator.New()

type MadrasahController struct {
	DB *gorm.DB
}

func NewMadrasahController(db *gorm.DB) *MadrasahController {
	return &MadrasahController{DB: db}
}

// =========================
// Setup madrasah baru
// =========================
// Dipanggil user login yang belum punya madrasah: buat record madrasah,
// profile, dan role admin dalam satu transaksi. Pembuatnya otomatis admin.
func (ctrl *MadrasahController) Setup(c *fiber.Ctx) error {
	var body dto.CreateMadrasahRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	userID := helpers.GetUserUUID(c)
	userName, _ := c.Locals("user_name").(string)

	// satu user satu madrasah
	var existing int64
	if err := ctrl.DB.Model(&userModel.UserProfileModel{}).
		Where("user_id = ?", userID).
		Count(&existing).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa profil")
	}
	if existing > 0 {
		return helpers.JsonError(c, fiber.StatusConflict, "Akun sudah terhubung ke madrasah")
	}

	madrasah := body.ToModel()
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&madrasah).Error; err != nil {
			return err
		}
		profile := userModel.UserProfileModel{
			UserID:     userID,
			MadrasahID: madrasah.ID,
			FullName:   userName,
			Role:       constants.RoleAdmin,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		role := userModel.UserRoleModel{
			UserID:     userID,
			MadrasahID: madrasah.ID,
			Role:       constants.RoleAdmin,
		}
		return tx.Create(&role).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat madrasah")
	}

	return helpers.JsonCreated(c, "Madrasah berhasil dibuat", madrasah)
}

// =========================
// Profil madrasah aktif
// =========================
func (ctrl *MadrasahController) Get(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)

	var madrasah model.MadrasahModel
	err := ctrl.DB.Where("id = ?", madrasahID).First(&madrasah).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Madrasah tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil madrasah")
	}
	return helpers.JsonOK(c, "ok", madrasah)
}

func (ctrl *MadrasahController) Update(c *fiber.Ctx) error {
	var body dto.UpdateMadrasahRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	var madrasah model.MadrasahModel
	err := ctrl.DB.Where("id = ?", madrasahID).First(&madrasah).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Madrasah tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil madrasah")
	}

	body.Apply(&madrasah)
	if err := ctrl.DB.Save(&madrasah).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui madrasah")
	}
	return helpers.JsonUpdated(c, "Madrasah berhasil diperbarui", madrasah)
}

// =========================
// Upload logo (multipart, dikonversi webp)
// =========================
func (ctrl *MadrasahController) UploadLogo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "File logo wajib diisi")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	data, err := helpers.ConvertImageToWebp(fileHeader, 512)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "File bukan gambar yang valid")
	}

	rel, err := helpers.SaveUploadBytes("madrasah-logo", fileHeader.Filename+".webp", data)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan logo")
	}

	if err := ctrl.DB.Model(&model.MadrasahModel{}).
		Where("id = ?", madrasahID).
		Update("logo_url", rel).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui logo")
	}

	return helpers.JsonUpdated(c, "Logo berhasil diperbarui", fiber.Map{"logo_url": rel})
}

// =========================
// Hapus madrasah permanen
// =========================
// Menghapus SEMUA data tenant: tabel bisnis (urutan kebalikan dependensi,
// sama dengan urutan delete restore), lalu backup, role, profil, dan
// record madrasah — satu transaksi, admin saja.
func (ctrl *MadrasahController) DeletePermanently(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range backupSvc.DeleteOrder() {
			if err := tx.Exec(
				fmt.Sprintf("DELETE FROM %s WHERE madrasah_id = ?", table),
				madrasahID,
			).Error; err != nil {
				return err
			}
		}
		for _, table := range []string{"backups", "invites", "user_roles", "user_profiles"} {
			if err := tx.Exec(
				fmt.Sprintf("DELETE FROM %s WHERE madrasah_id = ?", table),
				madrasahID,
			).Error; err != nil {
				return err
			}
		}
		return tx.Exec("DELETE FROM madrasah WHERE id = ?", madrasahID).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus madrasah")
	}

	return helpers.JsonDeleted(c, "Madrasah dan seluruh datanya berhasil dihapus", nil)
}
