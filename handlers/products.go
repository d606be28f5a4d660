package handlers

import (
	"net/http"
	"strings"

	"psc-server/models"
	"psc-server/utils"

	"github.com/gin-gonic/gin"
)

// Get all products (unfiltered catalog view)
func GetProducts(c *gin.Context) {
	products := Catalog.Products()

	if category := c.Query("category"); category != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
		"warning":  Catalog.Warning(),
	})
}

// Get a single product by id
func GetProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	product, found := Catalog.ByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":             product,
		"effective_price":     product.EffectivePrice(),
		"display_price":       utils.FormatGHS(product.EffectivePrice()),
		"discount_percentage": product.DiscountPercentage(),
		"related":             relatedProducts(product),
	})
}

// relatedProducts picks up to four catalog neighbours, preferring the
// same team, then the same category.
func relatedProducts(product models.Product) []models.Product {
	const limit = 4

	related := make([]models.Product, 0, limit)
	seen := map[string]bool{product.ID: true}

	for _, p := range Catalog.Products() {
		if len(related) == limit {
			return related
		}
		if !seen[p.ID] && strings.EqualFold(p.Team, product.Team) {
			seen[p.ID] = true
			related = append(related, p)
		}
	}
	for _, p := range Catalog.Products() {
		if len(related) == limit {
			return related
		}
		if !seen[p.ID] && p.Category == product.Category {
			seen[p.ID] = true
			related = append(related, p)
		}
	}

	return related
}
