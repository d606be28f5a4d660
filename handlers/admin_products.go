package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"psc-server/models"
	"psc-server/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

var productIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type productInput struct {
	ID            string   `json:"id"`
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required"`
	DiscountPrice *float64 `json:"discount_price"`
	Category      string   `json:"category"`
	League        string   `json:"league"`
	Team          string   `json:"team"`
	Sizes         []string `json:"sizes"`
	InStock       *bool    `json:"in_stock"`
	Images        []string `json:"images"`
	Features      []string `json:"features"`
	Stock         *int     `json:"stock"`
	ReleaseDate   string   `json:"release_date"`
}

// slugify derives a product id from the title when none is supplied.
func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = regexp.MustCompile(`[^a-z0-9]+`).ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Create a product (admin)
func CreateProduct(c *gin.Context) {
	var req productInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id := req.ID
	if id == "" {
		id = slugify(req.Title)
	}
	if !productIDPattern.MatchString(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if req.Category == "" {
		req.Category = models.CategoryJersey
	}
	if !models.IsValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
		return
	}
	if req.DiscountPrice != nil && *req.DiscountPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Discount price cannot be negative"})
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	query := `INSERT INTO products (id, title, description, price, discount_price,
	              category, league, team, sizes, in_stock, images, features, stock, release_date)
	          VALUES ($1, $2, $3, $4, $5, $6,
	                  COALESCE(NULLIF($7, ''), 'Neutral'),
	                  COALESCE(NULLIF($8, ''), 'Neutral'),
	                  $9, $10, $11, $12, $13,
	                  COALESCE(NULLIF($14, '')::date, CURRENT_DATE))`
	_, err := DB.Exec(query,
		id, req.Title, req.Description, req.Price, req.DiscountPrice,
		req.Category, req.League, req.Team,
		pq.Array(req.Sizes), inStock, pq.Array(req.Images), pq.Array(req.Features),
		req.Stock, req.ReleaseDate,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "A product with this ID already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	Catalog.Refresh()

	product, _ := Catalog.ByID(id)
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// Update a product (admin)
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var exists bool
	if err := DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req productInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Category != "" && !models.IsValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	query := `UPDATE products SET
	              title = $1, description = $2, price = $3, discount_price = $4,
	              category = COALESCE(NULLIF($5, ''), category),
	              league = COALESCE(NULLIF($6, ''), league),
	              team = COALESCE(NULLIF($7, ''), team),
	              sizes = $8, in_stock = $9, images = $10, features = $11, stock = $12,
	              release_date = COALESCE(NULLIF($13, '')::date, release_date),
	              updated_at = now()
	          WHERE id = $14`
	_, err := DB.Exec(query,
		req.Title, req.Description, req.Price, req.DiscountPrice,
		req.Category, req.League, req.Team,
		pq.Array(req.Sizes), inStock, pq.Array(req.Images), pq.Array(req.Features),
		req.Stock, req.ReleaseDate, id,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	Catalog.Refresh()

	product, _ := Catalog.ByID(id)
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// Delete a product (admin)
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	result, err := DB.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	Catalog.Refresh()

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// Upload a product image to Cloudinary (admin)
func UploadProductImage(c *gin.Context) {
	if services.Cloudinary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	url, err := services.Cloudinary.UploadImage(file, "products")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Force a catalog reload from the database (admin)
func RefreshCatalog(c *gin.Context) {
	Catalog.Refresh()

	c.JSON(http.StatusOK, gin.H{
		"count":   len(Catalog.Products()),
		"warning": Catalog.Warning(),
	})
}
