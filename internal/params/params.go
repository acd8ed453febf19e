package params

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// URL: /transactions?page=2&limit=50
// → ParsePagination() → Pagination{Limit:50, Page:2, Offset:50}, true
// → Window(len(list)) → list[50:100]
// → ComputeMeta(total) → fills TotalPages, HasNext, etc.
type Pagination struct {
	Limit      int  `json:"limit"`  // items per page
	Offset     int  `json:"offset"` // index of the first item
	Page       int  `json:"page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

const (
	defaultLimit = 50
	maxLimit     = 200
	// keeps (page-1)*limit from overflowing
	maxPage = math.MaxInt / maxLimit
)

// ParsePagination parses ?limit=...&page=... safely. The bool reports whether
// the caller asked for a page at all; lists are unpaged otherwise.
func ParsePagination(q url.Values) (Pagination, bool) {
	limitStr := strings.TrimSpace(q.Get("limit"))
	pageStr := strings.TrimSpace(q.Get("page"))

	p := Pagination{
		Limit: defaultLimit,
		Page:  1,
	}

	if limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				p.Limit = defaultLimit
			case limit > maxLimit:
				p.Limit = maxLimit
			default:
				p.Limit = limit
			}
		}
	}

	if pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = min(page, maxPage)
		}
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p, limitStr != "" || pageStr != ""
}

// Window returns the [start, end) bounds of the page within n items.
func (p Pagination) Window(n int) (int, int) {
	start := max(0, min(p.Offset, n))
	end := min(start+p.Limit, n)
	return start, end
}

// ComputeMeta updates pagination after counting the full list.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = p.Offset+p.Limit < total
}

// Decimal reads an optional decimal query parameter.
func Decimal(q url.Values, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &d, nil
}

// UUID parses a path parameter.
func UUID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
