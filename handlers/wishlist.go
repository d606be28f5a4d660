package handlers

import (
	"net/http"

	"psc-server/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// Get the user's wishlist, hydrated from the catalog
func GetWishlist(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	rows, err := DB.Query(`SELECT product_id FROM wishlist_items
	                       WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	missing := []string{}
	for rows.Next() {
		var productID string
		if err := rows.Scan(&productID); err != nil {
			continue
		}
		if product, found := Catalog.ByID(productID); found {
			products = append(products, product)
		} else {
			missing = append(missing, productID)
		}
	}

	// Entries for products no longer in the catalog are dropped lazily.
	if len(missing) > 0 {
		DB.Exec(`DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = ANY($2)`,
			userID, pq.Array(missing))
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// Add a product to the wishlist
func AddToWishlist(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if _, found := Catalog.ByID(req.ProductID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	_, err := DB.Exec(`INSERT INTO wishlist_items (user_id, product_id)
	                   VALUES ($1, $2)
	                   ON CONFLICT (user_id, product_id) DO NOTHING`,
		userID, req.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
}

// Check whether a product is on the wishlist
func CheckWishlistStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	productID := c.Param("id")
	var wishlisted bool
	err := DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE user_id = $1 AND product_id = $2)`,
		userID, productID).Scan(&wishlisted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id": productID,
		"wishlisted": wishlisted,
	})
}

// Remove every wishlist entry for the user
func ClearWishlist(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	_, err := DB.Exec(`DELETE FROM wishlist_items WHERE user_id = $1`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
}

// Remove a product from the wishlist
func RemoveFromWishlist(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	productID := c.Param("id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	_, err := DB.Exec(`DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`,
		userID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}
