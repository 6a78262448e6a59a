// file: internals/features/school/route/school_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/authz"
	"madrasahku_backend/internals/features/school/controller"
)

// SchoolRoutes dipasang di group admin (sudah lewat AuthMiddleware +
// UseMadrasahScope). Gating per capability, hapus data selalu admin-only.
func SchoolRoutes(admin fiber.Router, db *gorm.DB) {
	studentCtrl := controller.NewStudentController(db)
	teacherCtrl := controller.NewTeacherController(db)
	classCtrl := controller.NewClassController(db)
	attendanceCtrl := controller.NewAttendanceController(db)
	financeCtrl := controller.NewFinanceController(db)
	payrollCtrl := controller.NewPayrollController(db)
	reportCtrl := controller.NewLearningReportController(db)

	// =========================
	// 🎓 Santri
	// =========================
	students := admin.Group("/students")
	students.Get("/", studentCtrl.List)
	students.Get("/:id", studentCtrl.GetByID)
	students.Post("/", authz.RequireCapability(authz.CapAddStudents, "santri"), studentCtrl.Create)
	students.Put("/:id", authz.RequireCapability(authz.CapAddStudents, "santri"), studentCtrl.Update)
	students.Delete("/:id", authz.RequireCapability(authz.CapDeleteData, "santri"), studentCtrl.Delete)

	// =========================
	// 👳 Guru
	// =========================
	teachers := admin.Group("/teachers")
	teachers.Get("/", teacherCtrl.List)
	teachers.Get("/:id", teacherCtrl.GetByID)
	teachers.Post("/", authz.RequireCapability(authz.CapAddTeachers, "guru"), teacherCtrl.Create)
	teachers.Put("/:id", authz.RequireCapability(authz.CapAddTeachers, "guru"), teacherCtrl.Update)
	teachers.Delete("/:id", authz.RequireCapability(authz.CapDeleteData, "guru"), teacherCtrl.Delete)

	// =========================
	// 🏫 Kelas
	// =========================
	classes := admin.Group("/classes")
	classes.Get("/", classCtrl.List)
	classes.Post("/", authz.RequireCapability(authz.CapManageClasses, "kelas"), classCtrl.Create)
	classes.Put("/:id", authz.RequireCapability(authz.CapManageClasses, "kelas"), classCtrl.Update)
	classes.Delete("/:id", authz.RequireCapability(authz.CapDeleteData, "kelas"), classCtrl.Delete)
	classes.Post("/:id/teachers", authz.RequireCapability(authz.CapManageClasses, "kelas"), classCtrl.AssignTeacher)
	classes.Delete("/:id/teachers/:teacher_id", authz.RequireCapability(authz.CapManageClasses, "kelas"), classCtrl.UnassignTeacher)

	// =========================
	// 📋 Absensi
	// =========================
	attendance := admin.Group("/attendance")
	attendance.Get("/", attendanceCtrl.List)
	attendance.Post("/", authz.RequireCapability(authz.CapMarkAttendance, "absensi"), attendanceCtrl.Mark)

	// =========================
	// 💰 Keuangan (SPP, pemasukan, pengeluaran)
	// =========================
	fees := admin.Group("/fees")
	fees.Get("/", authz.RequireCapability(authz.CapManageFinances, "keuangan"), financeCtrl.ListFees)
	fees.Post("/", authz.RequireCapability(authz.CapManageFinances, "keuangan"), financeCtrl.CreateFee)
	fees.Post("/pay", authz.RequireCapability(authz.CapPayFees, "pembayaran SPP"), financeCtrl.PayFee)
	fees.Post("/:id/snap", authz.RequireCapability(authz.CapPayFees, "pembayaran SPP"), financeCtrl.FeeSnapToken)

	income := admin.Group("/income", authz.RequireCapability(authz.CapManageFinances, "keuangan"))
	income.Get("/", financeCtrl.ListIncome)
	income.Post("/", financeCtrl.CreateIncome)

	expense := admin.Group("/expense", authz.RequireCapability(authz.CapManageFinances, "keuangan"))
	expense.Get("/", financeCtrl.ListExpense)
	expense.Post("/", financeCtrl.CreateExpense)

	// =========================
	// 🧾 Penggajian & pinjaman
	// =========================
	payroll := admin.Group("/payroll", authz.RequireCapability(authz.CapManageFinances, "penggajian"))
	payroll.Get("/salaries", payrollCtrl.ListSalaries)
	payroll.Post("/salaries", payrollCtrl.PaySalary)
	payroll.Get("/loans", payrollCtrl.ListLoans)
	payroll.Post("/loans", payrollCtrl.CreateLoan)
	payroll.Post("/loans/:id/repay", payrollCtrl.RepayLoan)

	// =========================
	// 📖 Laporan pembelajaran
	// =========================
	reports := admin.Group("/learning-reports")
	reports.Get("/", reportCtrl.List)
	reports.Post("/", authz.RequireCapability(authz.CapMarkAttendance, "laporan pembelajaran"), reportCtrl.Create)
	reports.Delete("/:id", authz.RequireCapability(authz.CapDeleteData, "laporan pembelajaran"), reportCtrl.Delete)
}
