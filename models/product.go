package models

import "github.com/shopspring/decimal"

// ProductColor is one selectable color swatch for a product.
type ProductColor struct {
	Name  string `json:"name"`
	Value string `json:"value"` // hex value, e.g. "#b5a642"
}

// Product is immutable reference data served from the in-memory catalog.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Images       []string        `json:"images"`
	Category     string          `json:"category"` // category id
	CategoryName string          `json:"categoryName"`
	Colors       []ProductColor  `json:"colors"`
	Sizes        []string        `json:"sizes"`
	Materials    []string        `json:"materials"`
	Featured     bool            `json:"featured"`
	Bestseller   bool            `json:"bestseller"`
	InStock      bool            `json:"inStock"`
	Rating       float64         `json:"rating"`
	Reviews      int             `json:"reviews"`
}
