package demo

import (
	"log"

	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	madrasahModel "madrasahku_backend/internals/features/madrasahs/model"
	schoolModel "madrasahku_backend/internals/features/school/model"
	authService "madrasahku_backend/internals/features/users/auth/service"
	userModel "madrasahku_backend/internals/features/users/user/model"
)

const demoCode = "DEMO01"

// SeedDemoMadrasah membuat satu tenant demo lengkap: madrasah, admin,
// satu kelas, satu guru, dan beberapa santri. Dipakai untuk dev lokal.
func SeedDemoMadrasah(db *gorm.DB) {
	var existing madrasahModel.MadrasahModel
	if err := db.Where("code = ?", demoCode).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Madrasah demo '%s' sudah ada, dilewati.", demoCode)
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		madrasah := madrasahModel.MadrasahModel{
			Name: "Madrasah Demo Al-Ikhlas",
			Code: demoCode,
		}
		if err := tx.Create(&madrasah).Error; err != nil {
			return err
		}

		hashed, err := authService.HashPassword("demo12345")
		if err != nil {
			return err
		}
		admin := userModel.UserModel{
			UserName: "admin_demo",
			Email:    "admin@demo.madrasahku.id",
			Password: hashed,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		if err := tx.Create(&userModel.UserProfileModel{
			UserID:     admin.ID,
			MadrasahID: madrasah.ID,
			FullName:   "Admin Demo",
			Role:       constants.RoleAdmin,
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&userModel.UserRoleModel{
			UserID:     admin.ID,
			MadrasahID: madrasah.ID,
			Role:       constants.RoleAdmin,
		}).Error; err != nil {
			return err
		}

		teacher := schoolModel.Teacher{
			MadrasahID: madrasah.ID,
			Name:       "Ustadz Fulan",
			Subjects:   []string{"Tahfidz", "Fiqih"},
			IsActive:   true,
		}
		if err := tx.Create(&teacher).Error; err != nil {
			return err
		}

		class := schoolModel.Class{
			MadrasahID: madrasah.ID,
			Name:       "Kelas 1A",
		}
		if err := tx.Create(&class).Error; err != nil {
			return err
		}
		if err := tx.Create(&schoolModel.ClassTeacher{
			MadrasahID: madrasah.ID,
			ClassID:    class.ID,
			TeacherID:  teacher.ID,
			IsHomeroom: true,
		}).Error; err != nil {
			return err
		}

		students := []schoolModel.Student{
			{MadrasahID: madrasah.ID, Name: "Ahmad Fauzi", Gender: "male", ClassID: &class.ID, IsActive: true},
			{MadrasahID: madrasah.ID, Name: "Siti Aminah", Gender: "female", ClassID: &class.ID, IsActive: true},
			{MadrasahID: madrasah.ID, Name: "Muhammad Rizki", Gender: "male", ClassID: &class.ID, IsActive: true},
		}
		return tx.Create(&students).Error
	})
	if err != nil {
		log.Printf("❌ Gagal seed madrasah demo: %v", err)
		return
	}
	log.Printf("✅ Madrasah demo '%s' berhasil dibuat.", demoCode)
}
