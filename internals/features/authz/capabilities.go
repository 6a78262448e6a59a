// file: internals/features/authz/capabilities.go
package authz

import (
	"madrasahku_backend/internals/constants"
)

// Capability adalah aksi bisnis yang bisa di-gate per role.
type Capability string

const (
	CapAddStudents    Capability = "add_students"
	CapAddTeachers    Capability = "add_teachers"
	CapManageClasses  Capability = "manage_classes"
	CapMarkAttendance Capability = "mark_attendance"
	CapManageFinances Capability = "manage_finances"
	CapPayFees        Capability = "pay_fees"
	CapManageRoles    Capability = "manage_roles"
	CapManageInvites  Capability = "manage_invites"
	CapManageBackups  Capability = "manage_backups"
	CapDeleteData     Capability = "delete_data"
)

// capabilityRoles: satu sumber kebenaran role → capability.
// Dipakai oleh predikat murni (CapabilitiesFor) dan guard route
// (RequireCapability) supaya gating klien dan server tidak bisa drift.
var capabilityRoles = map[Capability][]string{
	CapAddStudents:    {constants.RoleAdmin, constants.RoleTeacher, constants.RoleManager},
	CapAddTeachers:    {constants.RoleAdmin, constants.RoleManager},
	CapManageClasses:  {constants.RoleAdmin, constants.RoleTeacher, constants.RoleManager},
	CapMarkAttendance: {constants.RoleAdmin, constants.RoleTeacher, constants.RoleManager},
	CapManageFinances: {constants.RoleAdmin, constants.RoleManager},
	CapPayFees:        {constants.RoleAdmin, constants.RoleManager, constants.RoleParent},
	CapManageRoles:    {constants.RoleAdmin},
	CapManageInvites:  {constants.RoleAdmin},
	CapManageBackups:  {constants.RoleAdmin},
	CapDeleteData:     {constants.RoleAdmin},
}

// Allowed menjawab apakah role boleh melakukan capability.
// Murni dari tabel di atas: tanpa side effect, tanpa akses store,
// role kosong/tidak dikenal selalu false (fail-closed).
func Allowed(role string, cap Capability) bool {
	if role == "" {
		return false
	}
	for _, allowed := range capabilityRoles[cap] {
		if role == allowed {
			return true
		}
	}
	return false
}

// Capabilities adalah hasil evaluasi seluruh predikat untuk satu role,
// bentuk yang enak dikirim ke frontend sekali jalan (response /me).
type Capabilities struct {
	CanAddStudents    bool `json:"can_add_students"`
	CanAddTeachers    bool `json:"can_add_teachers"`
	CanManageClasses  bool `json:"can_manage_classes"`
	CanMarkAttendance bool `json:"can_mark_attendance"`
	CanManageFinances bool `json:"can_manage_finances"`
	CanPayFees        bool `json:"can_pay_fees"`
	CanManageRoles    bool `json:"can_manage_roles"`
	CanManageInvites  bool `json:"can_manage_invites"`
	CanManageBackups  bool `json:"can_manage_backups"`
	CanDeleteData     bool `json:"can_delete_data"`
}

func CapabilitiesFor(role string) Capabilities {
	return Capabilities{
		CanAddStudents:    Allowed(role, CapAddStudents),
		CanAddTeachers:    Allowed(role, CapAddTeachers),
		CanManageClasses:  Allowed(role, CapManageClasses),
		CanMarkAttendance: Allowed(role, CapMarkAttendance),
		CanManageFinances: Allowed(role, CapManageFinances),
		CanPayFees:        Allowed(role, CapPayFees),
		CanManageRoles:    Allowed(role, CapManageRoles),
		CanManageInvites:  Allowed(role, CapManageInvites),
		CanManageBackups:  Allowed(role, CapManageBackups),
		CanDeleteData:     Allowed(role, CapDeleteData),
	}
}
