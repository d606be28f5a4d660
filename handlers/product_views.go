package handlers

import (
	"net/http"

	"psc-server/models"

	"github.com/gin-gonic/gin"
)

// recentlyViewedLimit caps how many products the rail retains per user.
const recentlyViewedLimit = 8

// Record a product view for the recently-viewed rail
func RegisterProductView(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	productID := c.Param("id")
	if _, found := Catalog.ByID(productID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// Re-viewing bumps the entry to the front instead of duplicating it.
	_, err := DB.Exec(`INSERT INTO recently_viewed (user_id, product_id, viewed_at)
	                   VALUES ($1, $2, now())
	                   ON CONFLICT (user_id, product_id) DO UPDATE SET viewed_at = now()`,
		userID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
		return
	}

	// Trim everything past the cap.
	DB.Exec(`DELETE FROM recently_viewed
	         WHERE user_id = $1 AND product_id NOT IN (
	             SELECT product_id FROM recently_viewed
	             WHERE user_id = $1 ORDER BY viewed_at DESC LIMIT $2
	         )`, userID, recentlyViewedLimit)

	c.JSON(http.StatusOK, gin.H{"message": "View recorded"})
}

// Get the user's recently viewed products, most recent first
func GetRecentlyViewed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	rows, err := DB.Query(`SELECT product_id FROM recently_viewed
	                       WHERE user_id = $1 ORDER BY viewed_at DESC LIMIT $2`,
		userID, recentlyViewedLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var productID string
		if err := rows.Scan(&productID); err != nil {
			continue
		}
		if product, found := Catalog.ByID(productID); found {
			products = append(products, product)
		}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
