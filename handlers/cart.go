package handlers

import (
	"net/http"

	"psc-server/services"

	"github.com/gin-gonic/gin"
)

// cartResponse is the standard cart payload: the lines plus the derived
// totals the storefront shows in the drawer and on the checkout summary.
func cartResponse(cart *services.Cart, shippingMethod string) gin.H {
	if shippingMethod == "" {
		shippingMethod = services.ShippingStandard
	}
	totals := services.CalculateOrderTotals(cart.Subtotal(), cart.TotalItems(), shippingMethod)

	return gin.H{
		"items":       cart.Items(),
		"total_items": cart.TotalItems(),
		"totals":      totals,
	}
}

// sessionCart resolves the caller's cart from the authenticated user id.
func sessionCart(c *gin.Context) (*services.Cart, string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, "", false
	}
	id := userID.(string)
	return Carts.Cart(id), id, true
}

// Get the current cart
func GetCart(c *gin.Context) {
	cart, sessionID, ok := sessionCart(c)
	if !ok {
		return
	}

	shippingMethod := services.ShippingStandard
	if session, found := Checkouts.Get(sessionID); found {
		shippingMethod = session.Form().ShippingMethod
	}

	c.JSON(http.StatusOK, cartResponse(cart, shippingMethod))
}

// Add a product to the cart
func AddToCart(c *gin.Context) {
	cart, _, ok := sessionCart(c)
	if !ok {
		return
	}

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, found := Catalog.ByID(req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if !product.InStock {
		c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
		return
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	var originalPrice *float64
	if product.DiscountPrice != nil {
		price := product.Price
		originalPrice = &price
	}

	cart.AddItem(services.CartProduct{
		ID:            product.ID,
		Title:         product.Title,
		UnitPrice:     product.EffectivePrice(),
		OriginalPrice: originalPrice,
		Image:         image,
		InStock:       product.InStock,
	}, req.Quantity)

	c.JSON(http.StatusOK, cartResponse(cart, services.ShippingStandard))
}

// Change a cart line's quantity by a signed delta
func UpdateCartItem(c *gin.Context) {
	cart, _, ok := sessionCart(c)
	if !ok {
		return
	}

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Delta     int    `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cart.ChangeQuantity(req.ProductID, req.Delta)

	c.JSON(http.StatusOK, cartResponse(cart, services.ShippingStandard))
}

// Remove a cart line
func RemoveFromCart(c *gin.Context) {
	cart, _, ok := sessionCart(c)
	if !ok {
		return
	}

	productID := c.Param("id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	cart.RemoveItem(productID)

	c.JSON(http.StatusOK, cartResponse(cart, services.ShippingStandard))
}

// Empty the cart
func ClearCart(c *gin.Context) {
	cart, _, ok := sessionCart(c)
	if !ok {
		return
	}

	cart.Clear()

	c.JSON(http.StatusOK, cartResponse(cart, services.ShippingStandard))
}
