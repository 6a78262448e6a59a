// file: internals/features/school/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/school/dto"
	"madrasahku_backend/internals/features/school/model"
	helpers "madrasahku_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	var body dto.CreateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	madrasahID, err := scopeMadrasahID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Scope madrasah tidak valid")
	}

	teacher := body.ToModel(madrasahID)
	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan guru")
	}
	return helpers.JsonCreated(c, "Guru berhasil ditambahkan", teacher)
}

func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Teacher{}).Where("madrasah_id = ?", madrasahID)
	if c.Query("active", "") == "true" {
		q = q.Where("is_active = true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung guru")
	}

	var teachers []model.Teacher
	if err := q.Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&teachers).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil guru")
	}

	return helpers.JsonList(c, "ok", teachers,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	var teacher model.Teacher
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil guru")
	}
	return helpers.JsonOK(c, "ok", teacher)
}

func (ctrl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var body dto.UpdateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	var teacher model.Teacher
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil guru")
	}

	body.Apply(&teacher)
	if err := ctrl.DB.Save(&teacher).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui guru")
	}
	return helpers.JsonUpdated(c, "Guru berhasil diperbarui", teacher)
}

func (ctrl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	res := ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		Delete(&model.Teacher{})
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus guru")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	return helpers.JsonDeleted(c, "Guru berhasil dihapus", nil)
}
