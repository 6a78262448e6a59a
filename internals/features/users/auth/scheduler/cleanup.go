package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "madrasahku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah
// kedaluwarsa tiap jam supaya tabel tidak tumbuh tanpa batas.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where("expired_at < ?", time.Now()).Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] cleanup blacklist: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("🧹 Blacklist cleanup: %d token dihapus", res.RowsAffected)
			}
		}
	}()
}
