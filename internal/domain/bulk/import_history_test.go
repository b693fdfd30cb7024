package bulk

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportEntityType_IsValid(t *testing.T) {
	tests := []struct {
		name       string
		entityType ImportEntityType
		want       bool
	}{
		{"contacts", ImportEntityContacts, true},
		{"partners", ImportEntityPartners, true},
		{"invalid", ImportEntityType("invalid"), false},
		{"empty", ImportEntityType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entityType.IsValid())
		})
	}
}

func TestImportStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status ImportStatus
		want   bool
	}{
		{"pending", ImportStatusPending, false},
		{"processing", ImportStatusProcessing, false},
		{"completed", ImportStatusCompleted, true},
		{"failed", ImportStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestNewImportHistory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		history, err := NewImportHistory(ImportEntityContacts, "contacts-2026-08.json", ConflictModeUpdate)

		require.NoError(t, err)
		assert.Equal(t, ImportEntityContacts, history.EntityType)
		assert.Equal(t, "contacts-2026-08.json", history.SourceRef)
		assert.Equal(t, ConflictModeUpdate, history.ConflictMode)
		assert.Equal(t, ImportStatusPending, history.Status)
		assert.NotEqual(t, uuid.Nil, history.ID)
	})

	t.Run("invalid entity type", func(t *testing.T) {
		_, err := NewImportHistory(ImportEntityType("invalid"), "x.json", ConflictModeSkip)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid entity type")
	})

	t.Run("empty source ref", func(t *testing.T) {
		_, err := NewImportHistory(ImportEntityContacts, "", ConflictModeSkip)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Source reference cannot be empty")
	})

	t.Run("invalid conflict mode", func(t *testing.T) {
		_, err := NewImportHistory(ImportEntityContacts, "x.json", ConflictMode("invalid"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid conflict mode")
	})
}

func TestImportHistory_StartProcessing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		history := createTestHistory(t)

		err := history.StartProcessing(100)

		require.NoError(t, err)
		assert.Equal(t, ImportStatusProcessing, history.Status)
		assert.Equal(t, 100, history.TotalRecords)
		assert.NotNil(t, history.StartedAt)
	})

	t.Run("invalid state", func(t *testing.T) {
		history := createTestHistory(t)
		_ = history.StartProcessing(100)

		err := history.StartProcessing(100)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot start processing from state")
	})

	t.Run("negative total", func(t *testing.T) {
		history := createTestHistory(t)

		err := history.StartProcessing(-1)

		require.Error(t, err)
	})
}

func TestImportHistory_Complete(t *testing.T) {
	t.Run("success with partial errors", func(t *testing.T) {
		history := createTestHistory(t)
		_ = history.StartProcessing(100)

		errors := []ImportErrorDetail{
			{Record: 3, Field: "email", Code: "ERR_INVALID", Message: "Invalid email format"},
		}
		err := history.Complete(90, 5, 4, 1, errors)

		require.NoError(t, err)
		assert.Equal(t, ImportStatusCompleted, history.Status)
		assert.Equal(t, 90, history.CreatedRecords)
		assert.Equal(t, 5, history.UpdatedRecords)
		assert.Len(t, history.ErrorDetails, 1)
		assert.NotNil(t, history.CompletedAt)
	})

	t.Run("failed when nothing was written", func(t *testing.T) {
		history := createTestHistory(t)
		_ = history.StartProcessing(10)

		err := history.Complete(0, 0, 0, 10, nil)

		require.NoError(t, err)
		assert.Equal(t, ImportStatusFailed, history.Status)
	})

	t.Run("invalid state", func(t *testing.T) {
		history := createTestHistory(t)

		err := history.Complete(10, 0, 0, 0, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot complete from state")
	})
}

func TestImportHistory_Fail(t *testing.T) {
	t.Run("from pending", func(t *testing.T) {
		history := createTestHistory(t)

		err := history.Fail([]ImportErrorDetail{{Code: "ERR_PARSE", Message: "Invalid JSON payload"}})

		require.NoError(t, err)
		assert.True(t, history.IsFailed())
		assert.NotNil(t, history.CompletedAt)
	})

	t.Run("terminal state rejected", func(t *testing.T) {
		history := createTestHistory(t)
		_ = history.StartProcessing(10)
		_ = history.Complete(10, 0, 0, 0, nil)

		err := history.Fail(nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot fail from terminal state")
	})
}

func TestImportHistory_ErrorDetailsJSON(t *testing.T) {
	history := createTestHistory(t)

	t.Run("empty", func(t *testing.T) {
		out, err := history.ErrorDetailsJSON()

		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})

	t.Run("round trip", func(t *testing.T) {
		_ = history.StartProcessing(10)
		_ = history.Complete(9, 0, 0, 1, []ImportErrorDetail{
			{Record: 7, Field: "email", Code: "ERR_INVALID", Message: "Invalid email format"},
		})

		out, err := history.ErrorDetailsJSON()
		require.NoError(t, err)
		assert.Contains(t, out, "ERR_INVALID")

		restored := createTestHistory(t)
		require.NoError(t, restored.SetErrorDetailsFromJSON(out))
		require.Len(t, restored.ErrorDetails, 1)
		assert.Equal(t, 7, restored.ErrorDetails[0].Record)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		assert.Error(t, history.SetErrorDetailsFromJSON("invalid"))
	})
}

func TestImportHistory_SuccessRate(t *testing.T) {
	t.Run("zero total", func(t *testing.T) {
		history := createTestHistory(t)
		assert.Equal(t, float64(0), history.SuccessRate())
	})

	t.Run("created plus updated", func(t *testing.T) {
		history := createTestHistory(t)
		_ = history.StartProcessing(100)
		_ = history.Complete(50, 30, 10, 10, nil)

		assert.Equal(t, float64(80), history.SuccessRate())
	})
}

func TestImportHistory_Duration(t *testing.T) {
	t.Run("not started", func(t *testing.T) {
		history := createTestHistory(t)
		assert.Equal(t, time.Duration(0), history.Duration())
	})

	t.Run("completed", func(t *testing.T) {
		history := createTestHistory(t)
		_ = history.StartProcessing(10)

		time.Sleep(10 * time.Millisecond)

		_ = history.Complete(10, 0, 0, 0, nil)
		assert.GreaterOrEqual(t, history.Duration(), 10*time.Millisecond)
	})
}

func createTestHistory(t *testing.T) *ImportHistory {
	t.Helper()
	history, err := NewImportHistory(ImportEntityContacts, "contacts.json", ConflictModeUpdate)
	require.NoError(t, err)
	return history
}
