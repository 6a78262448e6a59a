// file: internals/features/school/controller/finance_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	payments "madrasahku_backend/internals/features/payments/service"
	"madrasahku_backend/internals/features/school/dto"
	"madrasahku_backend/internals/features/school/model"
	helpers "madrasahku_backend/internals/helpers"
)

type FinanceController struct {
	DB *gorm.DB
}

func NewFinanceController(db *gorm.DB) *FinanceController {
	return &FinanceController{DB: db}
}

/* =========================
   Fees (SPP)
========================= */

func (ctrl *FinanceController) CreateFee(c *fiber.Ctx) error {
	var body dto.CreateFeeRequest
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

	// siswa harus milik madrasah yang sama
	var student model.Student
	err = ctrl.DB.Where("id = ? AND madrasah_id = ?", body.StudentID, madrasahID).
		First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil santri")
	}

	fee := body.ToModel(madrasahID)
	if err := ctrl.DB.Create(&fee).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tagihan")
	}
	return helpers.JsonCreated(c, "Tagihan berhasil dibuat", fee)
}

func (ctrl *FinanceController) ListFees(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Fee{}).Where("madrasah_id = ?", madrasahID)
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}
	if month := c.Query("month"); month != "" {
		q = q.Where("month = ?", month)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tagihan")
	}

	var fees []model.Fee
	if err := q.Order("month DESC, created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&fees).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	return helpers.JsonList(c, "ok", fees,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PayFee: tandai lunas (pembayaran tunai / konfirmasi manual)
func (ctrl *FinanceController) PayFee(c *fiber.Ctx) error {
	var body dto.PayFeeRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	madrasahID := authz.MadrasahIDFromLocals(c)
	paidBy := helpers.GetUserUUID(c)

	var fee model.Fee
	err := ctrl.DB.Where("id = ? AND madrasah_id = ?", body.FeeID, madrasahID).
		First(&fee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	if fee.Status == "paid" {
		return helpers.JsonError(c, fiber.StatusConflict, "Tagihan sudah lunas")
	}

	now := time.Now()
	fee.Status = "paid"
	fee.PaidAt = &now
	fee.PaidBy = &paidBy
	if err := ctrl.DB.Save(&fee).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tagihan")
	}
	return helpers.JsonUpdated(c, "Pembayaran berhasil dicatat", fee)
}

// FeeSnapToken: token Snap Midtrans untuk bayar SPP online
func (ctrl *FinanceController) FeeSnapToken(c *fiber.Ctx) error {
	feeID, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	madrasahID := authz.MadrasahIDFromLocals(c)

	var fee model.Fee
	err = ctrl.DB.Preload("Student").
		Where("id = ? AND madrasah_id = ?", feeID, madrasahID).
		First(&fee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	if fee.Status == "paid" {
		return helpers.JsonError(c, fiber.StatusConflict, "Tagihan sudah lunas")
	}

	studentName := ""
	if fee.Student != nil {
		studentName = fee.Student.Name
	}
	token, redirectURL, err := payments.CreateFeeSnapToken(fee.ID.String(), fee.Amount, studentName, fee.Month)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

/* =========================
   Income / Expense
========================= */

func (ctrl *FinanceController) CreateIncome(c *fiber.Ctx) error {
	var body dto.CreateIncomeRequest
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

	income := body.ToModel(madrasahID)
	if err := ctrl.DB.Create(&income).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pemasukan")
	}
	return helpers.JsonCreated(c, "Pemasukan berhasil dicatat", income)
}

func (ctrl *FinanceController) ListIncome(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.Income{}).
		Where("madrasah_id = ?", madrasahID).
		Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pemasukan")
	}

	var rows []model.Income
	if err := ctrl.DB.Where("madrasah_id = ?", madrasahID).
		Order("date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pemasukan")
	}

	return helpers.JsonList(c, "ok", rows,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *FinanceController) CreateExpense(c *fiber.Ctx) error {
	var body dto.CreateExpenseRequest
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

	expense := body.ToModel(madrasahID)
	if err := ctrl.DB.Create(&expense).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengeluaran")
	}
	return helpers.JsonCreated(c, "Pengeluaran berhasil dicatat", expense)
}

func (ctrl *FinanceController) ListExpense(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.Expense{}).
		Where("madrasah_id = ?", madrasahID).
		Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengeluaran")
	}

	var rows []model.Expense
	if err := ctrl.DB.Where("madrasah_id = ?", madrasahID).
		Order("date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}

	return helpers.JsonList(c, "ok", rows,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
