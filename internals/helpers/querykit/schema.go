// file: internals/helpers/querykit/schema.go
//
// Schema: lapisan validasi query list. Parse membaca query string
// Fiber (get_all, pagination[page], pagination[limit], order_by,
// search, filter[...], include_relation) lalu menghasilkan ListQuery
// yang sudah ternormalisasi + default, atau daftar FieldError.
package querykit

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"confku_backend/internals/constants"
	helper "confku_backend/internals/helpers"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type FilterKind int

const (
	FilterString FilterKind = iota
	FilterBool
	FilterUUID
	FilterEnum
)

type FilterField struct {
	Name string
	Kind FilterKind
	Enum []string // untuk FilterEnum
}

type Schema struct {
	SortableFields []string
	Filters        []FilterField
	Searchable     bool
	Relations      []string
}

// Parse: query string → ListQuery tervalidasi. Mengembalikan field
// error ber-path supaya client bisa memetakan ke form field.
func (s Schema) Parse(c *fiber.Ctx) (ListQuery, helper.FieldErrors) {
	var errs helper.FieldErrors
	q := ListQuery{GetAll: true, Filter: map[string]any{}}

	if raw := strings.TrimSpace(c.Query("get_all")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs.Add("get_all must be a boolean.", "get_all")
		} else {
			q.GetAll = v
		}
	}

	pageRaw := strings.TrimSpace(c.Query("pagination[page]"))
	limitRaw := strings.TrimSpace(c.Query("pagination[limit]"))

	if q.GetAll {
		if pageRaw != "" || limitRaw != "" {
			errs.Add("Pagination is not allowed when get_all is true.", "pagination")
		}
	} else if pageRaw == "" && limitRaw == "" {
		errs.Add("Pagination is required when get_all is false.", "pagination")
	} else {
		p := Pagination{Page: DefaultPage, Limit: DefaultLimit}
		if pageRaw != "" {
			n, err := strconv.Atoi(pageRaw)
			if err != nil || n < 1 {
				errs.Add("Page must be an integer greater than or equal to 1.", "pagination.page")
			} else {
				p.Page = n
			}
		}
		if limitRaw != "" {
			n, err := strconv.Atoi(limitRaw)
			if err != nil || n < 1 || n > MaxLimit {
				errs.Add("Limit must be an integer between 1 and 100.", "pagination.limit")
			} else {
				p.Limit = n
			}
		}
		q.Pagination = &p
	}

	orderEntries := orderByPairs(c)
	if len(orderEntries) == 0 {
		for _, raw := range queryValues(c, "order_by") {
			field, direction := splitOrderBy(raw)
			orderEntries = append(orderEntries, OrderBy{Field: field, Direction: direction})
		}
	}
	for _, ob := range orderEntries {
		field, direction := ob.Field, ob.Direction
		if !contains(s.SortableFields, field) {
			errs.Add("Order field must be one of: "+strings.Join(s.SortableFields, ", ")+".", "order_by.field")
			continue
		}
		if direction != "asc" && direction != "desc" {
			errs.Add("Order direction must be asc or desc.", "order_by.direction")
			continue
		}
		q.OrderBy = append(q.OrderBy, OrderBy{Field: field, Direction: direction})
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		if !s.Searchable {
			errs.Add("Search is not supported for this resource.", "search")
		} else if len(search) > 100 {
			errs.Add("Search cannot exceed 100 characters.", "search")
		} else {
			q.Search = search
		}
	}

	for _, f := range s.Filters {
		raw := strings.TrimSpace(c.Query("filter[" + f.Name + "]"))
		if raw == "" {
			continue
		}
		path := "filter." + f.Name
		switch f.Kind {
		case FilterBool:
			v, err := strconv.ParseBool(raw)
			if err != nil {
				errs.Add(f.Name+" must be a boolean.", path)
				continue
			}
			q.Filter[f.Name] = v
		case FilterUUID:
			if _, err := uuid.Parse(raw); err != nil {
				errs.Add(f.Name+" must be a valid UUID.", path)
				continue
			}
			q.Filter[f.Name] = raw
		case FilterEnum:
			if !constants.OneOf(raw, f.Enum) {
				errs.Add(f.Name+" must be one of: "+constants.JoinAllowed(f.Enum)+".", path)
				continue
			}
			q.Filter[f.Name] = raw
		default:
			q.Filter[f.Name] = raw
		}
	}

	for _, raw := range queryValues(c, "include_relation") {
		if !contains(s.Relations, raw) {
			errs.Add("Relation must be one of: "+strings.Join(s.Relations, ", ")+".", "include_relation")
			continue
		}
		q.IncludeRelation = append(q.IncludeRelation, raw)
	}

	if len(errs) > 0 {
		return ListQuery{}, errs
	}
	return q, nil
}

// orderByPairs: bentuk objek order_by[0][field]=name&
// order_by[0][direction]=desc. Arah default asc bila tidak dikirim.
func orderByPairs(c *fiber.Ctx) []OrderBy {
	entries := map[int]*OrderBy{}
	maxIdx := -1
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		rest, ok := strings.CutPrefix(string(k), "order_by[")
		if !ok {
			return
		}
		idxRaw, attr, found := strings.Cut(rest, "][")
		if !found || !strings.HasSuffix(attr, "]") {
			return
		}
		idx, err := strconv.Atoi(idxRaw)
		if err != nil || idx < 0 {
			return
		}
		e := entries[idx]
		if e == nil {
			e = &OrderBy{Direction: "asc"}
			entries[idx] = e
		}
		switch strings.TrimSuffix(attr, "]") {
		case "field":
			e.Field = strings.TrimSpace(string(v))
		case "direction":
			e.Direction = strings.ToLower(strings.TrimSpace(string(v)))
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	})

	var out []OrderBy
	for i := 0; i <= maxIdx; i++ {
		if e := entries[i]; e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// queryValues: nilai berulang (?k=a&k=b) atau dipisah koma (?k=a,b).
func queryValues(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// splitOrderBy: "field:desc" → ("field", "desc"); arah default asc.
func splitOrderBy(raw string) (string, string) {
	field, direction, found := strings.Cut(raw, ":")
	if !found || strings.TrimSpace(direction) == "" {
		return strings.TrimSpace(field), "asc"
	}
	return strings.TrimSpace(field), strings.ToLower(strings.TrimSpace(direction))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
