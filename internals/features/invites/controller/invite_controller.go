// file: internals/features/invites/controller/invite_controller.go
package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/invites/dto"
	"madrasahku_backend/internals/features/invites/model"
	madrasahModel "madrasahku_backend/internals/features/madrasahs/model"
	userModel "madrasahku_backend/internals/features/users/user/model"
	helpers "madrasahku_backend/internals/helpers"
)

var validate = validator.New()

type InviteController struct {
	DB *gorm.DB
}

func NewInviteController(db *gorm.DB) *InviteController {
	return &InviteController{DB: db}
}

// generateInviteToken: 32 byte random → 64 char hex
func generateInviteToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func buildInviteLink(baseURL *string, token string) string {
	if baseURL == nil || *baseURL == "" {
		return ""
	}
	return strings.TrimRight(*baseURL, "/") + "/join?token=" + token
}

// =========================
// Buat link undangan
// =========================
func (ctrl *InviteController) Create(c *fiber.Ctx) error {
	var body dto.CreateInviteRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	madrasahID, err := uuid.Parse(authz.MadrasahIDFromLocals(c))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Scope madrasah tidak valid")
	}
	createdBy := helpers.GetUserUUID(c)

	token, err := generateInviteToken()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token undangan")
	}

	invite := model.InviteModel{
		MadrasahID: madrasahID,
		Token:      token,
		Role:       body.Role,
		IsActive:   true,
		CreatedBy:  &createdBy,
	}
	if err := ctrl.DB.Create(&invite).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan undangan")
	}

	var madrasah madrasahModel.MadrasahModel
	_ = ctrl.DB.Select("base_url").Where("id = ?", madrasahID).First(&madrasah).Error

	return helpers.JsonCreated(c, "Undangan berhasil dibuat",
		dto.ToInviteDTO(invite, buildInviteLink(madrasah.BaseURL, token)))
}

func (ctrl *InviteController) List(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.InviteModel{}).
		Where("madrasah_id = ?", madrasahID).
		Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung undangan")
	}

	var invites []model.InviteModel
	if err := ctrl.DB.Where("madrasah_id = ?", madrasahID).
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&invites).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil undangan")
	}

	var madrasah madrasahModel.MadrasahModel
	_ = ctrl.DB.Select("base_url").Where("id = ?", madrasahID).First(&madrasah).Error

	out := make([]dto.InviteDTO, 0, len(invites))
	for _, inv := range invites {
		out = append(out, dto.ToInviteDTO(inv, buildInviteLink(madrasah.BaseURL, inv.Token)))
	}

	return helpers.JsonList(c, "ok", out,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// Deactivate: token tetap ada buat audit, tapi tidak bisa dipakai lagi
func (ctrl *InviteController) Deactivate(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	res := ctrl.DB.Model(&model.InviteModel{}).
		Where("id = ? AND madrasah_id = ?", id, madrasahID).
		Update("is_active", false)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan undangan")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Undangan tidak ditemukan")
	}
	return helpers.JsonUpdated(c, "Undangan berhasil dinonaktifkan", nil)
}

func (ctrl *InviteController) Delete(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	res := ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		Delete(&model.InviteModel{})
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus undangan")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Undangan tidak ditemukan")
	}
	return helpers.JsonDeleted(c, "Undangan berhasil dihapus", nil)
}

// =========================
// Terima undangan
// =========================
// User login (belum punya madrasah) tukar token jadi keanggotaan: profile
// + user_role dibuat satu transaksi, used_count naik.
func (ctrl *InviteController) Accept(c *fiber.Ctx) error {
	var body dto.AcceptInviteRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	userID := helpers.GetUserUUID(c)

	var invite model.InviteModel
	err := ctrl.DB.Where("token = ? AND is_active = true", body.Token).
		First(&invite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Undangan tidak valid atau sudah dinonaktifkan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa undangan")
	}

	var existing int64
	if err := ctrl.DB.Model(&userModel.UserProfileModel{}).
		Where("user_id = ?", userID).
		Count(&existing).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa profil")
	}
	if existing > 0 {
		return helpers.JsonError(c, fiber.StatusConflict, "Akun sudah terhubung ke madrasah")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		profile := userModel.UserProfileModel{
			UserID:     userID,
			MadrasahID: invite.MadrasahID,
			FullName:   body.FullName,
			Role:       invite.Role,
			Phone:      body.Phone,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		role := userModel.UserRoleModel{
			UserID:     userID,
			MadrasahID: invite.MadrasahID,
			Role:       invite.Role,
			AssignedBy: invite.CreatedBy,
		}
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		return tx.Model(&model.InviteModel{}).
			Where("id = ?", invite.ID).
			Update("used_count", gorm.Expr("used_count + 1")).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses undangan")
	}

	return helpers.JsonOK(c, "Berhasil bergabung ke madrasah", fiber.Map{
		"madrasah_id": invite.MadrasahID,
		"role":        invite.Role,
	})
}
