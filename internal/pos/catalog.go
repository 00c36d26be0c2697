package pos

import (
	"strconv"
	"strings"

	"kamakpos/m/domain"
)

const defaultPageSize = 20

// ProductFilter narrows the catalog grid. Search matches name, barcode or
// price as a case-insensitive substring.
type ProductFilter struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

type ProductPage struct {
	Products   []domain.Product `json:"products"`
	Categories []string         `json:"categories"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	Total      int              `json:"total"`
	Pages      int              `json:"pages"`
}

// FilterProducts applies f to the catalog. Page numbers start at 1 and are
// clamped to the available range.
func FilterProducts(products []domain.Product, f ProductFilter) ProductPage {
	size := f.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.TrimSpace(f.Category)

	seen := make(map[string]bool)
	var categories []string
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
		if category != "" && !strings.EqualFold(category, "all") && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		matched = append(matched, p)
	}

	pages := (len(matched) + size - 1) / size
	page := f.Page
	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return ProductPage{
		Products:   matched[start:end],
		Categories: categories,
		Page:       page,
		PageSize:   size,
		Total:      len(matched),
		Pages:      pages,
	}
}

func matchesSearch(p domain.Product, search string) bool {
	price := strconv.FormatFloat(p.Price(), 'f', -1, 64)
	return strings.Contains(strings.ToLower(p.ProductName), search) ||
		strings.Contains(strings.ToLower(p.BarCode), search) ||
		strings.Contains(price, search)
}
