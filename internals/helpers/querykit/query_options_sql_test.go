package querykit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// roomRow: model kecil untuk merakit SQL di sesi DryRun.
type roomRow struct {
	ID         string
	Name       string
	Identifier string
	Type       string
	ScheduleID string
	Password   string
}

func (roomRow) TableName() string { return "rooms" }

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestApplySQLShape(t *testing.T) {
	opts := Build(testConfig(), ListQuery{
		GetAll:     false,
		Pagination: &Pagination{Page: 3, Limit: 10},
		Search:     "ballroom",
		Filter:     map[string]any{"type": "PARALLEL"},
		OrderBy:    []OrderBy{{Field: "name", Direction: "desc"}},
	})

	stmt := opts.Apply(dryRunDB(t).Model(&roomRow{})).Find(&[]roomRow{}).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "type = ?")
	assert.Contains(t, sql, "(name ILIKE ? OR identifier ILIKE ?)")
	assert.Contains(t, sql, "name DESC")
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
	assert.NotContains(t, sql, "password")

	assert.Contains(t, stmt.Vars, "PARALLEL")
	assert.Contains(t, stmt.Vars, "%ballroom%")
	assert.Contains(t, stmt.Vars, 10)
	assert.Contains(t, stmt.Vars, 20)
}

func TestApplyForCountSkipsOrderAndPagination(t *testing.T) {
	opts := Build(testConfig(), ListQuery{
		GetAll:     false,
		Pagination: &Pagination{Page: 3, Limit: 10},
		Filter:     map[string]any{"type": "PARALLEL"},
		OrderBy:    []OrderBy{{Field: "name", Direction: "desc"}},
	})

	var n int64
	stmt := opts.ApplyForCount(dryRunDB(t).Model(&roomRow{})).Count(&n).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "count(*)")
	assert.Contains(t, sql, "type = ?")
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
}
