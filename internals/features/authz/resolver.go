// file: internals/features/authz/resolver.go
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUnprovisioned: user login valid tapi belum punya profile/madrasah —
// frontend mengarahkan ke alur setup madrasah.
var ErrUnprovisioned = errors.New("user belum terdaftar di madrasah manapun")

// TenantContext adalah konteks eksplisit (user, madrasah, role) yang
// di-thread ke semua operasi — tidak ada lookup ambient.
type TenantContext struct {
	UserID     uuid.UUID
	MadrasahID uuid.UUID
	Role       string
}

// ResolveTenantContext memetakan user login → madrasah aktif + role efektif.
//   - madrasah_id diambil dari user_profiles
//   - role diambil dari user_roles (sumber otoritatif; kolom role di
//     user_profiles hanya cache dan TIDAK dipakai untuk otorisasi)
//   - tidak ada baris user_roles = tanpa role efektif (bukan role default)
func ResolveTenantContext(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*TenantContext, error) {
	var profile struct {
		MadrasahID uuid.UUID
	}
	err := db.WithContext(ctx).
		Table("user_profiles").
		Select("madrasah_id").
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Take(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnprovisioned
	}
	if err != nil {
		return nil, fmt.Errorf("resolve madrasah: %w", err)
	}

	tc := &TenantContext{UserID: userID, MadrasahID: profile.MadrasahID}

	var assignment struct {
		Role string
	}
	err = db.WithContext(ctx).
		Table("user_roles").
		Select("role").
		Where("user_id = ? AND madrasah_id = ?", userID, profile.MadrasahID).
		Take(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// role kosong = semua predikat false
		return tc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve role: %w", err)
	}

	tc.Role = assignment.Role
	return tc, nil
}
