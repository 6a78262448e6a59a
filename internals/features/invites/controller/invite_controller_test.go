// file: internals/features/invites/controller/invite_controller_test.go
package controller

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInviteToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := generateInviteToken()
		require.NoError(t, err)
		assert.Len(t, token, 64)

		_, err = hex.DecodeString(token)
		assert.NoError(t, err, "token harus hex valid")

		assert.False(t, seen[token], "token tidak boleh berulang")
		seen[token] = true
	}
}

func TestBuildInviteLink(t *testing.T) {
	base := "https://demo.madrasahku.id/"
	assert.Equal(t,
		"https://demo.madrasahku.id/join?token=abc",
		buildInviteLink(&base, "abc"))

	noSlash := "https://demo.madrasahku.id"
	assert.Equal(t,
		"https://demo.madrasahku.id/join?token=abc",
		buildInviteLink(&noSlash, "abc"))

	// tanpa base_url → link kosong, token tetap bisa dipakai manual
	empty := ""
	assert.Equal(t, "", buildInviteLink(&empty, "abc"))
	assert.Equal(t, "", buildInviteLink(nil, "abc"))
}
