// file: internals/features/backups/dto/backup_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bentuk JSON endpoint function adalah kontrak publik lama: camelCase,
// error polos {"error": ...}. Test ini mengunci key-nya supaya refactor
// DTO tidak diam-diam mematahkan klien lama.
func TestFunctionWireContract(t *testing.T) {
	var req BackupFunctionRequest
	require.NoError(t, sonic.Unmarshal(
		[]byte(`{"madrasahId":"m-1","backupType":"manual","notes":"n"}`), &req))
	assert.Equal(t, "m-1", req.MadrasahID)
	assert.Equal(t, "manual", req.BackupType)
	assert.Equal(t, "n", req.Notes)

	out, err := sonic.Marshal(BackupFunctionResponse{
		Success:    true,
		BackupID:   "b-1",
		BackupDate: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Message:    "ok",
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"backupId":"b-1"`)
	assert.Contains(t, string(out), `"backupDate"`)
	assert.Contains(t, string(out), `"success":true`)

	out, err = sonic.Marshal(RestoreFunctionResponse{
		Success:            true,
		PreRestoreBackupID: "pre-1",
		RecordsRestored:    42,
		Message:            "ok",
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"preRestoreBackupId":"pre-1"`)
	assert.Contains(t, string(out), `"recordsRestored":42`)

	out, err = sonic.Marshal(FunctionErrorResponse{Error: "boom"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"boom"}`, string(out))
}
