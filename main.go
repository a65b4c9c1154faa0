package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"dukatrack-backend/config"
	"dukatrack-backend/internal/api"
	"dukatrack-backend/internal/middleware"
	"dukatrack-backend/internal/repository"
	"dukatrack-backend/internal/services"
	"dukatrack-backend/store"
)

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		return store.OpenRedis(cfg.RedisURL, cfg.RedisPassword)
	case "memory":
		log.Println("Using in-memory store; data will not survive a restart")
		return store.NewMemoryStore(), nil
	default:
		return store.OpenSQLite(cfg.DatabaseURL)
	}
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	kv, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer kv.Close()

	// Repositories over the key-value store
	shopRepo := repository.NewShopRepository(kv)
	productRepo := repository.NewProductRepository(kv)
	saleRepo := repository.NewSaleRepository(kv)
	salesmanRepo := repository.NewSalesmanRepository(kv)
	sessionRepo := repository.NewSessionRepository(kv)

	// Services
	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpiration)
	ownerService := services.NewOwnerService(sessionRepo)
	shopService := services.NewShopService(shopRepo, sessionRepo)
	productService := services.NewProductService(productRepo)
	salesmanService := services.NewSalesmanService(salesmanRepo, sessionRepo)
	saleService := services.NewSaleService(saleRepo, productRepo, salesmanRepo, cfg.StockDecrementOnSale)
	reportService := services.NewReportService(saleRepo)
	liveFeedService := services.NewLiveFeedService(reportService)

	// Handlers
	authHandlers := api.NewAuthHandlers(ownerService, salesmanService, authService)
	shopHandlers := api.NewShopHandlers(shopService)
	productHandlers := api.NewProductHandlers(productService)
	salesmanHandlers := api.NewSalesmanHandlers(salesmanService)
	saleHandlers := api.NewSaleHandlers(saleService, liveFeedService)
	reportHandlers := api.NewReportHandlers(reportService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS
	router.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		allowed := cfg.AllowAllOrigins
		if !allowed {
			for _, o := range cfg.AllowedOrigins {
				if o == origin {
					allowed = true
					break
				}
			}
		}
		if allowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	securityConfig := middleware.DefaultSecurityConfig()
	securityConfig.RateLimitRequests = cfg.RateLimitRequests
	securityConfig.RateLimitWindow = time.Duration(cfg.RateLimitWindow) * time.Second
	router.Use(middleware.SecurityMiddleware(securityConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "online"})
	})

	apiGroup := router.Group("/api/v1")
	{
		auth := apiGroup.Group("/auth")
		auth.Use(middleware.AuthRateLimitMiddleware())
		{
			auth.POST("/owner/register", authHandlers.OwnerRegister)
			auth.POST("/owner/login", authHandlers.OwnerLogin)
			auth.POST("/salesman/login", authHandlers.SalesmanLogin)
		}

		protected := apiGroup.Group("/")
		protected.Use(authMiddleware.AuthRequired())
		{
			protected.POST("/auth/logout", authHandlers.Logout)

			// Sales: recorded by salesmen, settled by the owner
			sales := protected.Group("/sales")
			{
				sales.POST("", saleHandlers.CreateSale)
				sales.GET("", saleHandlers.GetSales)
				sales.GET("/:id", saleHandlers.GetSale)
				sales.PUT("/:id/complete", authMiddleware.OwnerRequired(), saleHandlers.CompleteSale)
				sales.PUT("/:id/reject", authMiddleware.OwnerRequired(), saleHandlers.RejectSale)
			}

			reports := protected.Group("/reports")
			{
				reports.GET("/summary", reportHandlers.GetSalesSummary)
			}

			protected.GET("/ws/dashboard", authMiddleware.OwnerRequired(), liveFeedService.HandleWebSocket)

			// Entity management is owner territory
			owner := protected.Group("/")
			owner.Use(authMiddleware.OwnerRequired())
			{
				shops := owner.Group("/shops")
				{
					shops.POST("", shopHandlers.CreateShop)
					shops.GET("", shopHandlers.GetShops)
					shops.GET("/current", shopHandlers.GetCurrentShop)
					shops.GET("/:id", shopHandlers.GetShop)
					shops.PUT("/:id", shopHandlers.UpdateShop)
					shops.DELETE("/:id", shopHandlers.DeleteShop)
					shops.PUT("/:id/select", shopHandlers.SelectShop)
				}

				products := owner.Group("/products")
				{
					products.POST("", productHandlers.CreateProduct)
					products.GET("", productHandlers.GetProducts)
					products.GET("/:id", productHandlers.GetProduct)
					products.PUT("/:id", productHandlers.UpdateProduct)
					products.PUT("/:id/stock", productHandlers.AdjustStock)
					products.DELETE("/:id", productHandlers.DeleteProduct)
				}

				salesmen := owner.Group("/salesmen")
				{
					salesmen.POST("", salesmanHandlers.CreateSalesman)
					salesmen.GET("", salesmanHandlers.GetSalesmen)
					salesmen.GET("/:id", salesmanHandlers.GetSalesman)
					salesmen.PUT("/:id", salesmanHandlers.UpdateSalesman)
					salesmen.DELETE("/:id", salesmanHandlers.DeleteSalesman)
				}
			}
		}
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("DukaTrack API server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server shutdown complete")
}
