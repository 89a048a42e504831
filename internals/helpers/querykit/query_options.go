// file: internals/helpers/querykit/query_options.go
//
// Query Options Builder: fungsi murni yang mengubah konfigurasi query
// per-entity + query list yang sudah tervalidasi menjadi deskriptor
// list/paginate/filter/sort/search yang siap diterapkan ke GORM.
// Tidak ada I/O di sini — semua whitelist sudah ditegakkan oleh
// Schema.Parse di lapisan validasi.
package querykit

import (
	"math"
	"strings"

	"gorm.io/gorm"
)

/* ===============================
   Konfigurasi statis per-entity
=================================*/

type Config struct {
	SearchableFields []string
	FilterableFields []string
	// Entity dengan soft delete (gorm.DeletedAt) otomatis ter-scope
	// oleh GORM; flag ini mendokumentasikan kontraknya dan dipakai
	// caller untuk memutuskan kapan butuh Unscoped().
	HasSoftDelete bool
	// Nama relasi publik → daftar preload path GORM (termasuk nested).
	Relations map[string][]string
	// Kolom yang tidak boleh ikut terserialisasi (mis. password).
	OmitFields []string
}

/* ===============================
   Query list yang sudah tervalidasi
=================================*/

type Pagination struct {
	Page  int
	Limit int
}

type OrderBy struct {
	Field     string
	Direction string // asc|desc
}

type ListQuery struct {
	GetAll          bool
	Pagination      *Pagination
	OrderBy         []OrderBy
	Search          string
	Filter          map[string]any
	IncludeRelation []string
}

/* ===============================
   Deskriptor hasil build
=================================**/

type Condition struct {
	Query string
	Args  []any
}

type Options struct {
	Where    []Condition // di-AND-kan
	Order    []string    // urutan insersi = prioritas tie-break
	Offset   int
	Limit    int // 0 = tanpa pagination
	Preloads []string
	Omit     []string
}

// Build: deterministik, tanpa side effect, tanpa kondisi error —
// query dianggap sudah well-formed oleh lapisan validasi.
func Build(cfg Config, q ListQuery) Options {
	var o Options

	for _, field := range cfg.FilterableFields {
		if v, ok := q.Filter[field]; ok {
			o.Where = append(o.Where, Condition{Query: field + " = ?", Args: []any{v}})
		}
	}

	if s := strings.TrimSpace(q.Search); s != "" && len(cfg.SearchableFields) > 0 {
		parts := make([]string, 0, len(cfg.SearchableFields))
		args := make([]any, 0, len(cfg.SearchableFields))
		for _, field := range cfg.SearchableFields {
			parts = append(parts, field+" ILIKE ?")
			args = append(args, "%"+s+"%")
		}
		o.Where = append(o.Where, Condition{
			Query: "(" + strings.Join(parts, " OR ") + ")",
			Args:  args,
		})
	}

	for _, ob := range q.OrderBy {
		dir := "ASC"
		if strings.EqualFold(ob.Direction, "desc") {
			dir = "DESC"
		}
		o.Order = append(o.Order, ob.Field+" "+dir)
	}

	if !q.GetAll && q.Pagination != nil {
		o.Offset = (q.Pagination.Page - 1) * q.Pagination.Limit
		o.Limit = q.Pagination.Limit
	}

	for _, name := range q.IncludeRelation {
		o.Preloads = append(o.Preloads, cfg.Relations[name]...)
	}

	o.Omit = cfg.OmitFields
	return o
}

// Apply: materialisasi penuh deskriptor ke query GORM.
func (o Options) Apply(db *gorm.DB) *gorm.DB {
	db = o.ApplyForCount(db)
	for _, ord := range o.Order {
		db = db.Order(ord)
	}
	if o.Limit > 0 {
		db = db.Offset(o.Offset).Limit(o.Limit)
	}
	for _, p := range o.Preloads {
		db = db.Preload(p)
	}
	if len(o.Omit) > 0 {
		db = db.Omit(o.Omit...)
	}
	return db
}

// ApplyForCount: hanya where-tree — count harus berjalan di bawah
// klausa yang sama tanpa include/order/pagination.
func (o Options) ApplyForCount(db *gorm.DB) *gorm.DB {
	for _, w := range o.Where {
		db = db.Where(w.Query, w.Args...)
	}
	return db
}

/* ===============================
   Meta pagination
=================================*/

type Meta struct {
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// BuildMeta: nil saat mode get_all (tanpa pagination) — kontrak API
// mengirim meta: null.
func BuildMeta(total int64, q ListQuery) *Meta {
	if q.GetAll || q.Pagination == nil {
		return nil
	}
	return &Meta{
		TotalItems:   total,
		TotalPages:   int(math.Ceil(float64(total) / float64(q.Pagination.Limit))),
		CurrentPage:  q.Pagination.Page,
		ItemsPerPage: q.Pagination.Limit,
	}
}
