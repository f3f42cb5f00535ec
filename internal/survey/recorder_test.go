package survey

import (
	"context"
	"testing"
	"time"

	"wedding_directory_backend/internal/platform/database/databasetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecord(t *testing.T) {
	db := databasetest.Open(t, &Survey{})
	rec := NewGORMRecorder(db, zap.NewNop())

	id, err := rec.Record(context.Background(), CategoryAccountDeletion, map[string]string{
		"reasonToLeave":  "Retiring",
		"additionalInfo": "Thanks for everything",
	})
	require.NoError(t, err)

	var stored Survey
	require.NoError(t, db.First(&stored, "id = ?", id).Error)
	assert.Equal(t, CategoryAccountDeletion, stored.Category)
	assert.Equal(t, "Retiring", stored.Response["reasonToLeave"])
	assert.WithinDuration(t, time.Now(), stored.CreatedAt, time.Minute)
}

func TestRecord_NilResponse(t *testing.T) {
	db := databasetest.Open(t, &Survey{})
	rec := NewGORMRecorder(db, zap.NewNop())

	id, err := rec.Record(context.Background(), "feedback", nil)
	require.NoError(t, err)

	var stored Survey
	require.NoError(t, db.First(&stored, "id = ?", id).Error)
	assert.Empty(t, stored.Response)
}
