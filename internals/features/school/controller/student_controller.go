// file: internals/features/school/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/school/dto"
	"madrasahku_backend/internals/features/school/model"
	helpers "madrasahku_backend/internals/helpers"
)

var validate = validator.New()

// scopeMadrasahID: ambil scope madrasah dari Locals (diset UseMadrasahScope)
func scopeMadrasahID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(authz.MadrasahIDFromLocals(c))
}

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
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

	student := body.ToModel(madrasahID)
	if err := ctrl.DB.Create(&student).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan santri")
	}
	return helpers.JsonCreated(c, "Santri berhasil ditambahkan", student)
}

func (ctrl *StudentController) List(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Student{}).Where("madrasah_id = ?", madrasahID)
	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("class_id = ?", classID)
	}
	if c.Query("active", "") == "true" {
		q = q.Where("is_active = true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung santri")
	}

	var students []model.Student
	if err := q.Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil santri")
	}

	return helpers.JsonList(c, "ok", students,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	var student model.Student
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil santri")
	}
	return helpers.JsonOK(c, "ok", student)
}

func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	var student model.Student
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil santri")
	}

	body.Apply(&student)
	if err := ctrl.DB.Save(&student).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui santri")
	}
	return helpers.JsonUpdated(c, "Santri berhasil diperbarui", student)
}

func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	res := ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		Delete(&model.Student{})
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus santri")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}
	return helpers.JsonDeleted(c, "Santri berhasil dihapus", nil)
}
