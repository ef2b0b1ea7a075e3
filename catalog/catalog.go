// Package catalog serves the read-only product reference data. The catalog
// is a plain in-memory slice; at this data volume there is nothing to index.
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/HA2345567/buttonhaus/models"
)

type Catalog struct {
	products   []models.Product
	categories []models.Category
}

// New builds the catalog from the built-in seed data.
func New() *Catalog {
	return &Catalog{products: seedProducts(), categories: seedCategories()}
}

// All returns a copy of every product.
func (c *Catalog) All() []models.Product {
	return append([]models.Product(nil), c.products...)
}

// ByID looks a product up by id.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Categories returns a copy of every category.
func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

// CategoryByID looks a category up by id.
func (c *Catalog) CategoryByID(id string) (models.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return models.Category{}, false
}

// ByCategory returns the products belonging to a category.
func (c *Catalog) ByCategory(categoryID string) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// FilterParams are the storefront's browse filters. Nil pointer fields mean
// "no constraint".
type FilterParams struct {
	Search     string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Featured   *bool
	Bestseller *bool
	SortBy     string // "price", "rating", "reviews", "name"
	Order      string // "asc" or "desc"
}

// Filter applies search, category, price-range and flag filters, then sorts.
func (c *Catalog) Filter(params FilterParams) []models.Product {
	search := strings.ToLower(strings.TrimSpace(params.Search))

	var out []models.Product
	for _, p := range c.products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if params.CategoryID != "" && p.Category != params.CategoryID {
			continue
		}
		if params.MinPrice != nil && p.Price.LessThan(*params.MinPrice) {
			continue
		}
		if params.MaxPrice != nil && p.Price.GreaterThan(*params.MaxPrice) {
			continue
		}
		if params.Featured != nil && p.Featured != *params.Featured {
			continue
		}
		if params.Bestseller != nil && p.Bestseller != *params.Bestseller {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, params.SortBy, params.Order)
	return out
}

func matchesSearch(p models.Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, m := range p.Materials {
		if strings.Contains(strings.ToLower(m), search) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, sortBy, order string) {
	desc := strings.ToLower(order) == "desc"

	var less func(a, b models.Product) bool
	switch sortBy {
	case "price":
		less = func(a, b models.Product) bool { return a.Price.LessThan(b.Price) }
	case "rating":
		less = func(a, b models.Product) bool { return a.Rating < b.Rating }
	case "reviews":
		less = func(a, b models.Product) bool { return a.Reviews < b.Reviews }
	case "name":
		less = func(a, b models.Product) bool { return a.Name < b.Name }
	default:
		return // keep catalog order
	}

	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
