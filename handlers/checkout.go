package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"psc-server/models"
	"psc-server/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// paymentProcessingDelay simulates the payment provider round trip.
const paymentProcessingDelay = 2 * time.Second

// Start (or resume) a checkout session
func StartCheckout(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	sessionID := userID.(string)

	cart := Carts.Cart(sessionID)
	if cart.LineCount() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	session := Checkouts.Start(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"step": session.Step(),
		"form": session.Form(),
	})
}

// Submit the current step's fields and advance on success
func SubmitCheckoutStep(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	session, found := Checkouts.Get(userID.(string))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout session"})
		return
	}

	var form services.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	step, fieldErrors := session.Submit(form)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"step":   step,
			"errors": fieldErrors,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"step": step,
		"form": session.Form(),
	})
}

// Step back to the previous checkout step
func CheckoutBack(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	session, found := Checkouts.Get(userID.(string))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"step": session.Back(),
		"form": session.Form(),
	})
}

// Place the order: persist it, then clear the cart and session
func PlaceOrder(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	sessionID := userID.(string)

	session, found := Checkouts.Get(sessionID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout session"})
		return
	}

	if !session.ReadyToPlaceOrder() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Checkout is not complete"})
		return
	}

	cart := Carts.Cart(sessionID)
	items := cart.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	form := session.Form()
	totals := services.CalculateOrderTotals(cart.Subtotal(), cart.TotalItems(), form.ShippingMethod)

	// Simulated payment provider round trip.
	time.Sleep(paymentProcessingDelay)

	orderNumber := generateOrderNumber()

	tx, err := DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer tx.Rollback()

	var order models.Order
	query := `INSERT INTO orders (user_id, order_number, status,
	              first_name, last_name, email, phone,
	              address, city, region, postal_code, country,
	              shipping_method, payment_method,
	              subtotal, discount, shipping, tax, total_amount)
	          VALUES ($1, $2, 'confirmed', $3, $4, $5, $6, $7, $8, $9, $10, $11,
	                  $12, $13, $14, $15, $16, $17, $18)
	          RETURNING id, created_at`
	err = tx.QueryRow(query,
		sessionID, orderNumber,
		form.FirstName, form.LastName, form.Email, form.Phone,
		form.Address, form.City, form.Region, form.PostalCode, form.Country,
		form.ShippingMethod, form.PaymentMethod,
		totals.Subtotal, totals.Discount, totals.Shipping, totals.Tax, totals.Total,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	for _, item := range items {
		_, err = tx.Exec(`INSERT INTO order_items (order_id, product_id, product_title, product_image, unit_price, quantity)
		                  VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, item.ID, item.Title, item.Image, item.UnitPrice, item.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order items"})
			return
		}
	}

	if err = tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	cart.Clear()
	Carts.Drop(sessionID)
	Checkouts.Finish(sessionID)

	c.JSON(http.StatusCreated, gin.H{
		"order_id":     order.ID,
		"order_number": orderNumber,
		"status":       "confirmed",
		"totals":       totals,
	})
}

// Get one order (must belong to the caller)
func GetOrder(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var order models.Order
	query := `SELECT id, user_id, order_number, status,
	              first_name, last_name, email, phone,
	              address, city, region, postal_code, country,
	              shipping_method, payment_method,
	              subtotal, discount, shipping, tax, total_amount, created_at
	          FROM orders WHERE id = $1 AND user_id = $2`
	err := DB.QueryRow(query, orderID, userID).Scan(
		&order.ID, &order.UserID, &order.OrderNumber, &order.Status,
		&order.FirstName, &order.LastName, &order.Email, &order.Phone,
		&order.Address, &order.City, &order.Region, &order.PostalCode, &order.Country,
		&order.ShippingMethod, &order.PaymentMethod,
		&order.Subtotal, &order.Discount, &order.Shipping, &order.Tax,
		&order.TotalAmount, &order.CreatedAt,
	)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	rows, err := DB.Query(`SELECT id, order_id, product_id, product_title, product_image, unit_price, quantity, created_at
	                       FROM order_items WHERE order_id = $1 ORDER BY created_at`, order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductTitle,
			&item.ProductImage, &item.UnitPrice, &item.Quantity, &item.CreatedAt); err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// List the caller's orders, newest first
func GetUserOrders(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	rows, err := DB.Query(`SELECT id, order_number, status, shipping_method, payment_method,
	                           subtotal, discount, shipping, tax, total_amount, created_at
	                       FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		if err, ok := err.(*pq.Error); ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Code.Name()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	orders := []gin.H{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.OrderNumber, &order.Status,
			&order.ShippingMethod, &order.PaymentMethod,
			&order.Subtotal, &order.Discount, &order.Shipping, &order.Tax,
			&order.TotalAmount, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, gin.H{
			"id":              order.ID,
			"order_number":    order.OrderNumber,
			"status":          order.Status,
			"shipping_method": order.ShippingMethod,
			"payment_method":  order.PaymentMethod,
			"total_amount":    order.TotalAmount,
			"created_at":      order.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// generateOrderNumber builds a human-readable unique order reference.
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("PSC-%s-%s", time.Now().Format("20060102"), suffix)
}
