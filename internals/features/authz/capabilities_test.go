// file: internals/features/authz/capabilities_test.go
package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"madrasahku_backend/internals/constants"
)

func TestAllowedMatrix(t *testing.T) {
	cases := []struct {
		cap     Capability
		allowed []string
	}{
		{CapAddStudents, []string{constants.RoleAdmin, constants.RoleTeacher, constants.RoleManager}},
		{CapAddTeachers, []string{constants.RoleAdmin, constants.RoleManager}},
		{CapManageFinances, []string{constants.RoleAdmin, constants.RoleManager}},
		{CapPayFees, []string{constants.RoleAdmin, constants.RoleManager, constants.RoleParent}},
		{CapDeleteData, []string{constants.RoleAdmin}},
		{CapManageRoles, []string{constants.RoleAdmin}},
		{CapManageInvites, []string{constants.RoleAdmin}},
		{CapManageBackups, []string{constants.RoleAdmin}},
	}

	for _, tc := range cases {
		allowedSet := map[string]bool{}
		for _, r := range tc.allowed {
			allowedSet[r] = true
		}
		for _, role := range constants.AllRoles {
			got := Allowed(role, tc.cap)
			assert.Equalf(t, allowedSet[role], got,
				"capability %s untuk role %s", tc.cap, role)
		}
	}
}

func TestAllowedFailsClosed(t *testing.T) {
	// role kosong, tidak dikenal, atau capability tidak terdaftar → false
	assert.False(t, Allowed("", CapAddStudents))
	assert.False(t, Allowed("superadmin", CapAddStudents))
	assert.False(t, Allowed(constants.RoleAdmin, Capability("unknown_cap")))
	assert.False(t, Allowed(constants.RoleUser, CapPayFees))
}

func TestCapabilitiesFor(t *testing.T) {
	admin := CapabilitiesFor(constants.RoleAdmin)
	assert.True(t, admin.CanAddStudents)
	assert.True(t, admin.CanDeleteData)
	assert.True(t, admin.CanManageBackups)

	teacher := CapabilitiesFor(constants.RoleTeacher)
	assert.True(t, teacher.CanAddStudents)
	assert.True(t, teacher.CanMarkAttendance)
	assert.False(t, teacher.CanAddTeachers)
	assert.False(t, teacher.CanManageFinances)
	assert.False(t, teacher.CanDeleteData)

	parent := CapabilitiesFor(constants.RoleParent)
	assert.True(t, parent.CanPayFees)
	assert.False(t, parent.CanAddStudents)
	assert.False(t, parent.CanManageFinances)

	user := CapabilitiesFor(constants.RoleUser)
	assert.Equal(t, Capabilities{}, user, "role user tidak punya capability apa pun")
}
