// file: internals/features/school/controller/class_controller.go
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

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	var body dto.CreateClassRequest
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

	class := body.ToModel(madrasahID)
	if err := ctrl.DB.Create(&class).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}
	return helpers.JsonCreated(c, "Kelas berhasil ditambahkan", class)
}

func (ctrl *ClassController) List(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.Class{}).
		Where("madrasah_id = ?", madrasahID).
		Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kelas")
	}

	var classes []model.Class
	if err := ctrl.DB.Where("madrasah_id = ?", madrasahID).
		Preload("Teachers.Teacher").
		Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	return helpers.JsonList(c, "ok", classes,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var body dto.UpdateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	var class model.Class
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		First(&class).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	body.Apply(&class)
	if err := ctrl.DB.Save(&class).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	return helpers.JsonUpdated(c, "Kelas berhasil diperbarui", class)
}

func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	res := ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		Delete(&model.Class{})
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helpers.JsonDeleted(c, "Kelas berhasil dihapus", nil)
}

// =========================
// Penugasan guru ke kelas
// =========================
func (ctrl *ClassController) AssignTeacher(c *fiber.Ctx) error {
	classID, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var body dto.AssignClassTeacherRequest
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

	// kelas & guru harus satu madrasah dengan scope
	var class model.Class
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", classID, madrasahID).
		First(&class).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	var teacher model.Teacher
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", body.TeacherID, madrasahID).
		First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil guru")
	}

	link := model.ClassTeacher{
		MadrasahID: madrasahID,
		ClassID:    classID,
		TeacherID:  body.TeacherID,
		IsHomeroom: body.IsHomeroom,
	}
	if err := ctrl.DB.Create(&link).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menugaskan guru")
	}
	return helpers.JsonCreated(c, "Guru berhasil ditugaskan", link)
}

func (ctrl *ClassController) UnassignTeacher(c *fiber.Ctx) error {
	classID, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	teacherID, err := helpers.ParseUUIDParam(c, "teacher_id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	res := ctrl.DB.Where("class_id = ? AND teacher_id = ? AND madrasah_id = ?",
		classID, teacherID, madrasahID).
		Delete(&model.ClassTeacher{})
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mencabut penugasan")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
	}
	return helpers.JsonDeleted(c, "Penugasan berhasil dicabut", nil)
}
