package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HA2345567/buttonhaus/catalog"
	"github.com/HA2345567/buttonhaus/models"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, ok := cat.ByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetAllCategoriesWithProducts returns every category together with its
// products, for the category browse page.
func GetAllCategoriesWithProducts(cat *catalog.Catalog) gin.HandlerFunc {
	type categoryWithProducts struct {
		models.Category
		Products []models.Product `json:"products"`
	}

	return func(c *gin.Context) {
		categories := cat.Categories()
		out := make([]categoryWithProducts, 0, len(categories))
		for _, category := range categories {
			out = append(out, categoryWithProducts{
				Category: category,
				Products: cat.ByCategory(category.ID),
			})
		}
		c.JSON(http.StatusOK, out)
	}
}
