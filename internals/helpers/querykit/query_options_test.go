package querykit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		SearchableFields: []string{"name", "identifier"},
		FilterableFields: []string{"type", "schedule_id"},
		Relations: map[string][]string{
			"schedule": {"Schedule"},
			"track":    {"Track.TrackSessions"},
		},
		OmitFields: []string{"password"},
	}
}

func TestBuildFilters(t *testing.T) {
	opts := Build(testConfig(), ListQuery{
		GetAll: true,
		Filter: map[string]any{
			"type":        "PARALLEL",
			"schedule_id": "7f9b61e2-67a4-4cbb-a67a-17017f1f07e5",
			"ignored":     "nope", // bukan whitelist → tidak ikut
		},
	})

	require.Len(t, opts.Where, 2)
	assert.Equal(t, "type = ?", opts.Where[0].Query)
	assert.Equal(t, []any{"PARALLEL"}, opts.Where[0].Args)
	assert.Equal(t, "schedule_id = ?", opts.Where[1].Query)
}

func TestBuildSearchExpandsToAllSearchableFields(t *testing.T) {
	opts := Build(testConfig(), ListQuery{GetAll: true, Search: "ballroom"})

	require.Len(t, opts.Where, 1)
	assert.Equal(t, "(name ILIKE ? OR identifier ILIKE ?)", opts.Where[0].Query)
	assert.Equal(t, []any{"%ballroom%", "%ballroom%"}, opts.Where[0].Args)
}

func TestBuildSearchIgnoredWithoutSearchableFields(t *testing.T) {
	cfg := testConfig()
	cfg.SearchableFields = nil

	opts := Build(cfg, ListQuery{GetAll: true, Search: "ballroom"})
	assert.Empty(t, opts.Where)
}

func TestBuildOrderKeepsInsertionPriority(t *testing.T) {
	opts := Build(testConfig(), ListQuery{
		GetAll: true,
		OrderBy: []OrderBy{
			{Field: "name", Direction: "desc"},
			{Field: "created_at", Direction: "asc"},
		},
	})

	assert.Equal(t, []string{"name DESC", "created_at ASC"}, opts.Order)
}

func TestBuildPagination(t *testing.T) {
	opts := Build(testConfig(), ListQuery{
		GetAll:     false,
		Pagination: &Pagination{Page: 3, Limit: 10},
	})

	assert.Equal(t, 20, opts.Offset)
	assert.Equal(t, 10, opts.Limit)
}

func TestBuildGetAllSkipsPagination(t *testing.T) {
	opts := Build(testConfig(), ListQuery{GetAll: true})

	assert.Zero(t, opts.Offset)
	assert.Zero(t, opts.Limit)
}

func TestBuildPreloadsFromRelations(t *testing.T) {
	opts := Build(testConfig(), ListQuery{
		GetAll:          true,
		IncludeRelation: []string{"schedule", "track"},
	})

	assert.Equal(t, []string{"Schedule", "Track.TrackSessions"}, opts.Preloads)
}

func TestBuildCarriesOmitFields(t *testing.T) {
	opts := Build(testConfig(), ListQuery{GetAll: true})
	assert.Equal(t, []string{"password"}, opts.Omit)
}

func TestBuildMetaPagination(t *testing.T) {
	meta := BuildMeta(25, ListQuery{
		GetAll:     false,
		Pagination: &Pagination{Page: 2, Limit: 10},
	})

	require.NotNil(t, meta)
	assert.Equal(t, int64(25), meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 10, meta.ItemsPerPage)
}

func TestBuildMetaNilInGetAllMode(t *testing.T) {
	assert.Nil(t, BuildMeta(25, ListQuery{GetAll: true}))
	assert.Nil(t, BuildMeta(25, ListQuery{GetAll: false}))
}
