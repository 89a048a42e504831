package querykit

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "confku_backend/internals/helpers"
)

func testSchema() Schema {
	return Schema{
		SortableFields: []string{"name", "created_at"},
		Filters: []FilterField{
			{Name: "type", Kind: FilterEnum, Enum: []string{"MAIN", "PARALLEL"}},
			{Name: "schedule_id", Kind: FilterUUID},
			{Name: "is_active", Kind: FilterBool},
		},
		Searchable: true,
		Relations:  []string{"schedule", "track"},
	}
}

// parseQuery menjalankan Parse di dalam handler Fiber sungguhan.
func parseQuery(t *testing.T, s Schema, target string) (ListQuery, helper.FieldErrors) {
	t.Helper()

	var (
		query ListQuery
		errs  helper.FieldErrors
	)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		query, errs = s.Parse(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return query, errs
}

func TestParseDefaultsToGetAll(t *testing.T) {
	query, errs := parseQuery(t, testSchema(), "/")

	require.Nil(t, errs)
	assert.True(t, query.GetAll)
	assert.Nil(t, query.Pagination)
}

func TestParsePaginationRequiredWhenNotGetAll(t *testing.T) {
	_, errs := parseQuery(t, testSchema(), "/?get_all=false")

	require.NotNil(t, errs)
	assert.Equal(t, "pagination", errs[0].Path)
	assert.Equal(t, "Pagination is required when get_all is false.", errs[0].Message)
}

func TestParsePaginationPartialKeysGetDefaults(t *testing.T) {
	query, errs := parseQuery(t, testSchema(), "/?get_all=false&pagination[page]=2")

	require.Nil(t, errs)
	require.NotNil(t, query.Pagination)
	assert.Equal(t, 2, query.Pagination.Page)
	assert.Equal(t, DefaultLimit, query.Pagination.Limit)
}

func TestParsePaginationValues(t *testing.T) {
	query, errs := parseQuery(t, testSchema(), "/?get_all=false&pagination[page]=2&pagination[limit]=25")

	require.Nil(t, errs)
	assert.Equal(t, 2, query.Pagination.Page)
	assert.Equal(t, 25, query.Pagination.Limit)
}

func TestParsePaginationForbiddenWithGetAll(t *testing.T) {
	_, errs := parseQuery(t, testSchema(), "/?get_all=true&pagination[page]=2")

	require.NotNil(t, errs)
	assert.Equal(t, "pagination", errs[0].Path)
}

func TestParseLimitOutOfRange(t *testing.T) {
	_, errs := parseQuery(t, testSchema(), "/?get_all=false&pagination[limit]=101")

	require.NotNil(t, errs)
	assert.Equal(t, "pagination.limit", errs[0].Path)
}

func TestParseOrderBy(t *testing.T) {
	query, errs := parseQuery(t, testSchema(), "/?order_by=name:desc&order_by=created_at")

	require.Nil(t, errs)
	require.Len(t, query.OrderBy, 2)
	assert.Equal(t, OrderBy{Field: "name", Direction: "desc"}, query.OrderBy[0])
	assert.Equal(t, OrderBy{Field: "created_at", Direction: "asc"}, query.OrderBy[1])
}

func TestParseOrderByObjectForm(t *testing.T) {
	query, errs := parseQuery(t, testSchema(),
		"/?order_by[0][field]=name&order_by[0][direction]=desc&order_by[1][field]=created_at")

	require.Nil(t, errs)
	require.Len(t, query.OrderBy, 2)
	assert.Equal(t, OrderBy{Field: "name", Direction: "desc"}, query.OrderBy[0])
	assert.Equal(t, OrderBy{Field: "created_at", Direction: "asc"}, query.OrderBy[1])
}

func TestParseOrderByRejectsUnknownField(t *testing.T) {
	_, errs := parseQuery(t, testSchema(), "/?order_by=password:asc")

	require.NotNil(t, errs)
	assert.Equal(t, "order_by.field", errs[0].Path)
}

func TestParseFilterTyped(t *testing.T) {
	query, errs := parseQuery(t, testSchema(),
		"/?filter[type]=MAIN&filter[schedule_id]=7f9b61e2-67a4-4cbb-a67a-17017f1f07e5&filter[is_active]=true")

	require.Nil(t, errs)
	assert.Equal(t, "MAIN", query.Filter["type"])
	assert.Equal(t, "7f9b61e2-67a4-4cbb-a67a-17017f1f07e5", query.Filter["schedule_id"])
	assert.Equal(t, true, query.Filter["is_active"])
}

func TestParseFilterEnumRejected(t *testing.T) {
	_, errs := parseQuery(t, testSchema(), "/?filter[type]=LOBBY")

	require.NotNil(t, errs)
	assert.Equal(t, "filter.type", errs[0].Path)
}

func TestParseFilterUUIDRejected(t *testing.T) {
	_, errs := parseQuery(t, testSchema(), "/?filter[schedule_id]=not-a-uuid")

	require.NotNil(t, errs)
	assert.Equal(t, "filter.schedule_id", errs[0].Path)
}

func TestParseSearchRejectedWhenNotSearchable(t *testing.T) {
	s := testSchema()
	s.Searchable = false

	_, errs := parseQuery(t, s, "/?search=ballroom")

	require.NotNil(t, errs)
	assert.Equal(t, "search", errs[0].Path)
}

func TestParseIncludeRelationWhitelist(t *testing.T) {
	query, errs := parseQuery(t, testSchema(), "/?include_relation=schedule,track")
	require.Nil(t, errs)
	assert.Equal(t, []string{"schedule", "track"}, query.IncludeRelation)

	_, errs = parseQuery(t, testSchema(), "/?include_relation=users")
	require.NotNil(t, errs)
	assert.Equal(t, "include_relation", errs[0].Path)
}

func TestParseCollectsMultipleErrors(t *testing.T) {
	_, errs := parseQuery(t, testSchema(), "/?get_all=false&pagination[page]=0&filter[type]=LOBBY")

	require.NotNil(t, errs)
	assert.Len(t, errs, 2)
}
