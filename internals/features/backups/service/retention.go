// file: internals/features/backups/service/retention.go
package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	"madrasahku_backend/internals/configs"
)

// PruneOldBackups memangkas backup tiap madrasah ke maxPerTenant record
// terbaru. Backup manual dipertahankan lebih dulu: yang otomatis
// (auto/pre_restore) dipangkas duluan pada posisi tertua.
func PruneOldBackups(db *gorm.DB, maxPerTenant int) (int64, error) {
	if maxPerTenant <= 0 {
		maxPerTenant = 50
	}

	res := db.Exec(`
		DELETE FROM backups WHERE id IN (
			SELECT id FROM (
				SELECT id,
				       ROW_NUMBER() OVER (
				           PARTITION BY madrasah_id
				           ORDER BY (backup_type = 'manual') ASC, backup_date ASC
				       ) AS rn,
				       COUNT(*) OVER (PARTITION BY madrasah_id) AS cnt
				FROM backups
			) ranked
			WHERE cnt - rn >= ?
		)
	`, maxPerTenant)
	return res.RowsAffected, res.Error
}

// StartRetentionScheduler menjalankan pemangkasan harian.
// BACKUP_RETENTION_MAX mengatur batas per madrasah (default 50).
func StartRetentionScheduler(db *gorm.DB) {
	maxPerTenant := configs.GetEnvInt("BACKUP_RETENTION_MAX", 50)
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := PruneOldBackups(db, maxPerTenant)
			if err != nil {
				log.Printf("[ERROR] retention backup: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("🧹 Retention backup: %d record dipangkas", n)
			}
		}
	}()
}
