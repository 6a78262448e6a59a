package seeds

import (
	demo "madrasahku_backend/internals/seeds/demo"

	"gorm.io/gorm"
)

// RunAllSeeds dipanggil manual saat setup lingkungan dev/demo.
// Idempotent: seeder masing-masing skip kalau datanya sudah ada.
func RunAllSeeds(db *gorm.DB) {
	demo.SeedDemoMadrasah(db)
}
