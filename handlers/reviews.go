package handlers

import (
	"net/http"
	"strings"

	"psc-server/models"

	"github.com/gin-gonic/gin"
)

// Get all reviews for a product, with the rating summary
func GetProductReviews(c *gin.Context) {
	productID := c.Param("id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	rows, err := DB.Query(`SELECT id, product_id, name, rating, comment, verified, created_at
	                       FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	reviews := []models.Review{}
	var ratingSum int
	distribution := map[int]int{5: 0, 4: 0, 3: 0, 2: 0, 1: 0}

	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.ID, &review.ProductID, &review.Name,
			&review.Rating, &review.Comment, &review.Verified, &review.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, review)
		ratingSum += review.Rating
		distribution[review.Rating]++
	}

	average := 0.0
	if len(reviews) > 0 {
		average = float64(ratingSum) / float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":      reviews,
		"count":        len(reviews),
		"average":      average,
		"distribution": distribution,
	})
}

// Create a review for a product
func CreateReview(c *gin.Context) {
	productID := c.Param("id")
	if _, found := Catalog.ByID(productID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req struct {
		Name    string `json:"name" binding:"required"`
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	fieldErrors := gin.H{}
	if len(strings.TrimSpace(req.Name)) < 2 {
		fieldErrors["name"] = "Name must be at least 2 characters"
	}
	if req.Rating < 1 || req.Rating > 5 {
		fieldErrors["rating"] = "Rating must be between 1 and 5"
	}
	if len(strings.TrimSpace(req.Comment)) < 10 {
		fieldErrors["comment"] = "Review must be at least 10 characters"
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
		return
	}

	// A reviewer counts as verified when they have actually bought the
	// product under the email on their account.
	verified := false
	if userID, ok := c.Get("user_id"); ok {
		DB.QueryRow(`SELECT EXISTS(
		    SELECT 1 FROM order_items oi
		    JOIN orders o ON o.id = oi.order_id
		    WHERE o.user_id = $1 AND oi.product_id = $2)`,
			userID, productID).Scan(&verified)
	}

	var review models.Review
	query := `INSERT INTO reviews (product_id, name, rating, comment, verified)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, product_id, name, rating, comment, verified, created_at`
	err := DB.QueryRow(query, productID, strings.TrimSpace(req.Name), req.Rating,
		strings.TrimSpace(req.Comment), verified).Scan(
		&review.ID, &review.ProductID, &review.Name, &review.Rating,
		&review.Comment, &review.Verified, &review.CreatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}
