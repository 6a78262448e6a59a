// file: internals/features/school/controller/learning_report_controller.go
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

type LearningReportController struct {
	DB *gorm.DB
}

func NewLearningReportController(db *gorm.DB) *LearningReportController {
	return &LearningReportController{DB: db}
}

func (ctrl *LearningReportController) Create(c *fiber.Ctx) error {
	var body dto.CreateLearningReportRequest
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

	var student model.Student
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", body.StudentID, madrasahID).
		First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil santri")
	}

	report := body.ToModel(madrasahID)
	if err := ctrl.DB.Create(&report).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan laporan")
	}
	return helpers.JsonCreated(c, "Laporan berhasil disimpan", report)
}

func (ctrl *LearningReportController) List(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.LearningReport{}).Where("madrasah_id = ?", madrasahID)
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung laporan")
	}

	var rows []model.LearningReport
	if err := q.Order("date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	return helpers.JsonList(c, "ok", rows,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *LearningReportController) Delete(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	res := ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		Delete(&model.LearningReport{})
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus laporan")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
	}
	return helpers.JsonDeleted(c, "Laporan berhasil dihapus", nil)
}
