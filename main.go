package main

import (
	"log"
	"net/http"

	"psc-server/config"
	"psc-server/database"
	"psc-server/handlers"
	"psc-server/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Connect to database
	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Initialize tables
	if err := db.InitializeTables(); err != nil {
		log.Fatal("Failed to initialize tables:", err)
	}

	// Initialize Cloudinary (optional, admin image uploads only)
	if config.AppConfig.CloudinaryURL != "" {
		if err := services.InitializeCloudinary(config.AppConfig.CloudinaryURL); err != nil {
			log.Printf("Failed to initialize Cloudinary: %v", err)
		}
	}

	// Load the catalog
	catalog := services.NewCatalogService(db)
	catalog.Refresh()
	if warning := catalog.Warning(); warning != "" {
		log.Printf("Catalog: %s", warning)
	}
	log.Printf("Catalog loaded with %d products", len(catalog.Products()))

	carts := services.NewCartStore()
	checkouts := services.NewCheckoutManager()

	handlers.InitializeHandlers(db, catalog, carts, checkouts)

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Add CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Configure this properly for production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "PSC Server is running",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		// Authentication routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/validate", handlers.ValidateToken)
		}

		// Public catalog routes (no auth)
		api.GET("/public/products", handlers.SearchProducts)
		products := api.Group("/products")
		{
			products.GET("/", handlers.GetProducts)
			products.GET("/:id", handlers.GetProduct)
			products.GET("/:id/reviews", handlers.GetProductReviews)
			products.POST("/:id/reviews", handlers.CreateReview)
			products.POST("/:id/view", handlers.AuthMiddleware(), handlers.RegisterProductView)
			products.GET("/recently-viewed", handlers.AuthMiddleware(), handlers.GetRecentlyViewed)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(handlers.AuthMiddleware())
		{
			users.GET("/profile", handlers.GetUserProfile)
			users.PUT("/profile", handlers.UpdateUserProfile)
		}

		// Cart routes (protected)
		cart := api.Group("/cart")
		cart.Use(handlers.AuthMiddleware())
		{
			cart.GET("/", handlers.GetCart)
			cart.POST("/add", handlers.AddToCart)
			cart.PUT("/update", handlers.UpdateCartItem)
			cart.DELETE("/remove/:id", handlers.RemoveFromCart)
			cart.DELETE("/clear", handlers.ClearCart)
		}

		// Checkout routes (protected)
		checkout := api.Group("/checkout")
		checkout.Use(handlers.AuthMiddleware())
		{
			checkout.POST("/", handlers.StartCheckout)
			checkout.PUT("/step", handlers.SubmitCheckoutStep)
			checkout.POST("/back", handlers.CheckoutBack)
			checkout.POST("/place-order", handlers.PlaceOrder)
		}

		// Order routes (protected)
		orders := api.Group("/orders")
		orders.Use(handlers.AuthMiddleware())
		{
			orders.GET("/", handlers.GetUserOrders)
			orders.GET("/:id", handlers.GetOrder)
		}

		// Wishlist routes (protected)
		wishlist := api.Group("/wishlist")
		wishlist.Use(handlers.AuthMiddleware())
		{
			wishlist.GET("/", handlers.GetWishlist)
			wishlist.POST("/add", handlers.AddToWishlist)
			wishlist.GET("/check/:id", handlers.CheckWishlistStatus)
			wishlist.DELETE("/remove/:id", handlers.RemoveFromWishlist)
			wishlist.DELETE("/clear", handlers.ClearWishlist)
		}

		// Admin routes (protected, admin only)
		admin := api.Group("/admin")
		admin.Use(handlers.AuthMiddleware(), handlers.AdminMiddleware())
		{
			admin.POST("/products", handlers.CreateProduct)
			admin.PUT("/products/:id", handlers.UpdateProduct)
			admin.DELETE("/products/:id", handlers.DeleteProduct)
			admin.POST("/products/upload-image", handlers.UploadProductImage)
			admin.POST("/catalog/refresh", handlers.RefreshCatalog)
		}
	}

	log.Printf("Starting PSC Server on 0.0.0.0:%s", config.AppConfig.ServerPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.AppConfig.ServerPort, c.Handler(router)))
}
