// file: internals/features/school/controller/attendance_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/school/dto"
	"madrasahku_backend/internals/features/school/model"
	helpers "madrasahku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// =========================
// Absensi satu kelas per hari (bulk)
// =========================
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	var body dto.MarkAttendanceRequest
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
	markedBy := helpers.GetUserUUID(c)

	rows := make([]model.Attendance, 0, len(body.Entries))
	for _, e := range body.Entries {
		rows = append(rows, model.Attendance{
			MadrasahID: madrasahID,
			StudentID:  e.StudentID,
			ClassID:    body.ClassID,
			Date:       body.Date,
			Status:     e.Status,
			MarkedBy:   &markedBy,
			Notes:      e.Notes,
		})
	}

	// ulang submit di hari yang sama = replace, bukan duplikat
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		del := tx.Where("madrasah_id = ? AND date = ?", madrasahID, body.Date)
		if body.ClassID != nil {
			del = del.Where("class_id = ?", *body.ClassID)
		}
		studentIDs := make([]interface{}, 0, len(body.Entries))
		for _, e := range body.Entries {
			studentIDs = append(studentIDs, e.StudentID)
		}
		if err := del.Where("student_id IN ?", studentIDs).
			Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helpers.JsonCreated(c, "Absensi berhasil disimpan", fiber.Map{
		"marked": len(rows),
	})
}

func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	madrasahID := authz.MadrasahIDFromLocals(c)
	paging := helpers.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.Attendance{}).Where("madrasah_id = ?", madrasahID)
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}
	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("class_id = ?", classID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung absensi")
	}

	var records []model.Attendance
	if err := q.Order("date DESC, created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&records).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	return helpers.JsonList(c, "ok", records,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
