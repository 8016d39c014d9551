package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// dryRunDB builds statements without a database connection so tests can
// assert the generated SQL.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func captureUpdates(t *testing.T, db *gorm.DB) (sql *string, vars *[]interface{}) {
	t.Helper()
	sql = new(string)
	vars = new([]interface{})
	err := db.Callback().Update().After("gorm:update").Register("capture_update", func(tx *gorm.DB) {
		*sql = tx.Statement.SQL.String()
		*vars = tx.Statement.Vars
	})
	require.NoError(t, err)
	return sql, vars
}

func TestMarkAllAsReadScopesToUser(t *testing.T) {
	db := dryRunDB(t)
	sql, vars := captureUpdates(t, db)
	repo := NewNotificationRepository(db)

	require.NoError(t, repo.MarkAllAsRead("user-1"))

	assert.Contains(t, *sql, "user_id = ? AND is_read = ?")
	assert.Contains(t, *sql, "read_at")
	assert.Contains(t, *vars, "user-1")
	assert.Contains(t, *vars, false)
}

func TestMarkAsReadScopesToNotification(t *testing.T) {
	db := dryRunDB(t)
	sql, vars := captureUpdates(t, db)
	repo := NewNotificationRepository(db)

	require.NoError(t, repo.MarkAsRead("n-7"))

	assert.Contains(t, *sql, "id = ?")
	assert.Contains(t, *vars, "n-7")
}
