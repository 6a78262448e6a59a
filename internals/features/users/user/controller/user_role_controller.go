// file: internals/features/users/user/controller/user_role_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/users/user/dto"
	"madrasahku_backend/internals/features/users/user/model"
	helpers "madrasahku_backend/internals/helpers"
)

var validate = validator.New()

type UserRoleController struct {
	DB *gorm.DB
}

func NewUserRoleController(db *gorm.DB) *UserRoleController {
	return &UserRoleController{DB: db}
}

// =========================
// Assign / ganti role anggota
// =========================
func (ctrl *UserRoleController) AssignRole(c *fiber.Ctx) error {
	var body dto.AssignRoleRequest
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
	assignedBy := helpers.GetUserUUID(c)

	var assignment model.UserRoleModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND madrasah_id = ?", body.UserID, madrasahID).
			First(&assignment).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			assignment = model.UserRoleModel{
				UserID:     body.UserID,
				MadrasahID: madrasahID,
				Role:       body.Role,
				AssignedBy: &assignedBy,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			assignment.Role = body.Role
			assignment.AssignedBy = &assignedBy
			if err := tx.Save(&assignment).Error; err != nil {
				return err
			}
		}

		// refresh cache role di profile (tampilan saja, bukan otorisasi)
		return tx.Model(&model.UserProfileModel{}).
			Where("user_id = ? AND madrasah_id = ?", body.UserID, madrasahID).
			Update("role", body.Role).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan role")
	}

	return helpers.JsonUpdated(c, "Role berhasil disimpan", dto.ToUserRoleDTO(assignment))
}

// =========================
// Cabut role anggota
// =========================
func (ctrl *UserRoleController) RevokeRole(c *fiber.Ctx) error {
	userID, err := helpers.ParseUUIDParam(c, "user_id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND madrasah_id = ?", userID, madrasahID).
			Delete(&model.UserRoleModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&model.UserProfileModel{}).
			Where("user_id = ? AND madrasah_id = ?", userID, madrasahID).
			Update("role", "user").Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mencabut role")
	}

	return helpers.JsonDeleted(c, "Role berhasil dicabut", nil)
}

// =========================
// List anggota madrasah + role
// =========================
func (ctrl *UserRoleController) ListMembers(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.UserProfileModel{}).
		Where("madrasah_id = ?", madrasahID).
		Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung anggota")
	}

	var profiles []model.UserProfileModel
	if err := ctrl.DB.Where("madrasah_id = ?", madrasahID).
		Order("full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&profiles).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota")
	}

	return helpers.JsonList(c, "ok", profiles,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
