// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

/* ===============================
   Paging resolver (query → page/limit/offset)
=================================*/

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// NewPaging normalisasi page/limit: page<1 → 1, limit<1 → default, limit dibatasi MaxPerPage.
func NewPaging(page, limit int) Paging {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPerPage
	}
	if limit > MaxPerPage {
		limit = MaxPerPage
	}
	return Paging{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// ResolvePaging membaca ?page= & ?limit= (atau alias ?per_page=).
func ResolvePaging(c *fiber.Ctx) Paging {
	page := atoiDefault(strings.TrimSpace(c.Query("page")), DefaultPage)
	limitRaw := strings.TrimSpace(c.Query("limit"))
	if limitRaw == "" {
		limitRaw = strings.TrimSpace(c.Query("per_page"))
	}
	return NewPaging(page, atoiDefault(limitRaw, DefaultPerPage))
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

/* ===============================
   Pagination meta
=================================*/

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// BuildPagination: totalPages = ceil(total/limit), 0 kalau kosong.
func BuildPagination(total int64, p Paging) Pagination {
	totalPages := 0
	if total > 0 && p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}

// Paginate menghitung total lalu mengambil satu halaman dari query yang sama.
// Query harus sudah berisi Model()/Where(); urutan di-set lewat order.
func Paginate[T any](q *gorm.DB, p Paging, order string) ([]T, Pagination, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	rows := make([]T, 0, p.Limit)
	if total > int64(p.Offset) {
		tx := q.Session(&gorm.Session{})
		if order != "" {
			tx = tx.Order(order)
		}
		if err := tx.Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
			return nil, Pagination{}, err
		}
	}
	return rows, BuildPagination(total, p), nil
}
