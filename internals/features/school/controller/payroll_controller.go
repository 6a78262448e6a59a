// file: internals/features/school/controller/payroll_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/school/dto"
	"madrasahku_backend/internals/features/school/model"
	helpers "madrasahku_backend/internals/helpers"
)

type PayrollController struct {
	DB *gorm.DB
}

func NewPayrollController(db *gorm.DB) *PayrollController {
	return &PayrollController{DB: db}
}

// PaySalary: catat pembayaran gaji bulan tertentu
func (ctrl *PayrollController) PaySalary(c *fiber.Ctx) error {
	var body dto.PaySalaryRequest
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

	var teacher model.Teacher
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", body.TeacherID, madrasahID).
		First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil guru")
	}

	// satu guru satu slip per bulan
	var exists int64
	if err := ctrl.DB.Model(&model.Salary{}).
		Where("madrasah_id = ? AND teacher_id = ? AND month = ?",
			madrasahID, body.TeacherID, body.Month).
		Count(&exists).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa slip gaji")
	}
	if exists > 0 {
		return helpers.JsonError(c, fiber.StatusConflict, "Gaji bulan ini sudah dibayar")
	}

	now := time.Now()
	salary := model.Salary{
		MadrasahID: madrasahID,
		TeacherID:  body.TeacherID,
		Month:      body.Month,
		Amount:     body.Amount,
		PaidAt:     &now,
	}
	if err := ctrl.DB.Create(&salary).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gaji")
	}
	return helpers.JsonCreated(c, "Gaji berhasil dibayar", salary)
}

func (ctrl *PayrollController) ListSalaries(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Salary{}).Where("madrasah_id = ?", madrasahID)
	if month := c.Query("month"); month != "" {
		q = q.Where("month = ?", month)
	}
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		q = q.Where("teacher_id = ?", teacherID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung gaji")
	}

	var rows []model.Salary
	if err := q.Order("month DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil gaji")
	}

	return helpers.JsonList(c, "ok", rows,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *PayrollController) CreateLoan(c *fiber.Ctx) error {
	var body dto.CreateLoanRequest
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

	var teacher model.Teacher
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", body.TeacherID, madrasahID).
		First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil guru")
	}

	loan := model.Loan{
		MadrasahID:  madrasahID,
		TeacherID:   body.TeacherID,
		Amount:      body.Amount,
		Description: body.Description,
		Status:      "active",
	}
	if err := ctrl.DB.Create(&loan).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pinjaman")
	}
	return helpers.JsonCreated(c, "Pinjaman berhasil dicatat", loan)
}

// RepayLoan: cicilan; lunas otomatis saat total cicilan >= pokok
func (ctrl *PayrollController) RepayLoan(c *fiber.Ctx) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var body dto.RepayLoanRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	var loan model.Loan
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", id, madrasahID).
		First(&loan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Pinjaman tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pinjaman")
	}
	if loan.Status == "settled" {
		return helpers.JsonError(c, fiber.StatusConflict, "Pinjaman sudah lunas")
	}

	loan.AmountPaid += body.Amount
	if loan.AmountPaid >= loan.Amount {
		loan.Status = "settled"
	}
	if err := ctrl.DB.Save(&loan).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pinjaman")
	}
	return helpers.JsonUpdated(c, "Cicilan berhasil dicatat", loan)
}

func (ctrl *PayrollController) ListLoans(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Loan{}).Where("madrasah_id = ?", madrasahID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pinjaman")
	}

	var rows []model.Loan
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pinjaman")
	}

	return helpers.JsonList(c, "ok", rows,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
