package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/HA2345567/buttonhaus/catalog"
)

// GET /user/products
// Query params: search, category_id, min_price, max_price, featured,
// bestseller, sort_by (price|rating|reviews|name), order (asc|desc).
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := catalog.FilterParams{
			Search:     c.Query("search"),
			CategoryID: c.Query("category_id"),
			SortBy:     c.Query("sort_by"),
			Order:      strings.ToLower(c.DefaultQuery("order", "asc")),
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := decimal.NewFromString(minPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			params.MinPrice = &mp
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := decimal.NewFromString(maxPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			params.MaxPrice = &mp
		}
		if featuredStr := c.Query("featured"); featuredStr != "" {
			featured, err := strconv.ParseBool(featuredStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid featured"})
				return
			}
			params.Featured = &featured
		}
		if bestsellerStr := c.Query("bestseller"); bestsellerStr != "" {
			bestseller, err := strconv.ParseBool(bestsellerStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bestseller"})
				return
			}
			params.Bestseller = &bestseller
		}

		c.JSON(http.StatusOK, cat.Filter(params))
	}
}
