package constants

import "fmt"

// =========================
// Role dasar madrasah
// =========================
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleManager = "manager"
	RoleParent  = "parent"
	RoleUser    = "user"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher, admin, atau manager yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyManagersCanAccess = "❌ Hanya admin atau manager yang boleh mengakses fitur %s."
	ErrOnlyNonUserCanAccess  = "❌ Hanya role selain 'user' yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorNonUser(feature string) string {
	return fmt.Sprintf(ErrOnlyNonUserCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleParent,
		RoleTeacher,
		RoleManager,
		RoleAdmin,
	}

	NonUserRoles = []string{
		RoleParent,
		RoleTeacher,
		RoleManager,
		RoleAdmin,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleManager,
		RoleAdmin,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsKnownRole memastikan role yang dikirim klien valid
func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
