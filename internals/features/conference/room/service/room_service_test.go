package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestDeleteTrackSessionsSQLShape(t *testing.T) {
	id := uuid.New()

	stmt := deleteTrackSessions(dryRunDB(t), id).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "DELETE")
	assert.Contains(t, sql, "track_sessions")
	assert.Contains(t, sql, "track_id = ?")
	assert.Contains(t, stmt.Vars, id)
}

func TestDeleteTrackSQLShape(t *testing.T) {
	id := uuid.New()

	stmt := deleteTrack(dryRunDB(t), id).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "DELETE")
	assert.Contains(t, sql, "tracks")
	assert.Contains(t, sql, "id = ?")
	assert.Contains(t, stmt.Vars, id)
}
