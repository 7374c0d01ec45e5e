package main

import (
	"log"
	"os"
	"strings"
	"time"

	"inventory-pos/internal/ai"
	"inventory-pos/internal/auth"
	"inventory-pos/internal/database"
	"inventory-pos/internal/handlers"
	"inventory-pos/internal/middleware"
	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"
	"inventory-pos/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}
	auth.InitSecret()

	database.Connect()
	if err := database.Seed(database.DB); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	db := database.DB

	// repositories
	productRepo := repository.NewProductRepo(db)
	variantRepo := repository.NewVariantRepo(db)
	brandRepo := repository.NewBrandRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	eventRepo := repository.NewEventRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	saleItemRepo := repository.NewSaleItemRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	// services
	catalogSvc := service.NewCatalogService(catalogRepo)
	productSvc := service.NewProductService(productRepo, catalogSvc)
	variantSvc := service.NewVariantService(variantRepo, catalogSvc)
	brandSvc := service.NewBrandService(brandRepo)
	eventSvc := service.NewEventService(eventRepo)
	saleSvc := service.NewSaleService(db, saleRepo, saleItemRepo, eventRepo, catalogSvc)
	roleSvc := service.NewRoleService(roleRepo)
	userSvc := service.NewUserService(userRepo, roleRepo)

	// handlers
	authHandler := handlers.NewAuthHandler(userSvc, roleSvc)
	productHandler := handlers.NewProductHandler(productSvc, variantSvc)
	variantHandler := handlers.NewVariantHandler(variantSvc)
	brandHandler := handlers.NewBrandHandler(brandSvc)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc)
	eventHandler := handlers.NewEventHandler(eventSvc)
	saleHandler := handlers.NewSaleHandler(saleSvc, productSvc, variantSvc)
	reportHandler := handlers.NewReportHandler(saleSvc)
	userHandler := handlers.NewUserHandler(userSvc, roleSvc)
	aiHandler := handlers.NewAIHandler(ai.NewAgent(productSvc, eventSvc, saleSvc))

	r := gin.Default()

	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck)
	r.POST("/login", authHandler.Login)

	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/register", authHandler.Register)
		log.Println("⚠️ WARNING: Registration route is OPEN. Disable this in production!")
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// every logged-in role can read the catalog and sell
		api.GET("/products", productHandler.List)
		api.GET("/products/picker", productHandler.Picker)
		api.GET("/products/:id", productHandler.Get)
		api.GET("/products/:id/variants", variantHandler.ListForProduct)
		api.GET("/variants", variantHandler.List)
		api.GET("/variants/colors", variantHandler.Colors)
		api.GET("/variants/designs", variantHandler.Designs)
		api.GET("/variants/:id", variantHandler.Get)
		api.GET("/brands", brandHandler.List)
		api.GET("/brands/:id", brandHandler.Get)
		api.GET("/events", eventHandler.List)
		api.GET("/events/:id", eventHandler.Get)
		api.GET("/catalogs/:kind", catalogHandler.Values)

		api.POST("/sales", saleHandler.Checkout)
		api.GET("/sales", saleHandler.List)
		api.GET("/sales/:id", saleHandler.Get)
		api.GET("/sales/:id/items", saleHandler.Items)
		api.POST("/sales/:id/cancel", saleHandler.Cancel)
		api.POST("/sales/:id/pay", saleHandler.MarkPaid)
		api.POST("/sales/:id/unpay", saleHandler.MarkUnpaid)

		// inventory management and reporting
		manage := api.Group("/")
		manage.Use(middleware.RequireRole(models.RoleAdmin, models.RoleManager))
		{
			manage.POST("/products", productHandler.Create)
			manage.PUT("/products/:id", productHandler.Update)
			manage.DELETE("/products/:id", productHandler.Delete)
			manage.PUT("/products/:id/stock", productHandler.UpdateStock)
			manage.POST("/products/:id/reduce-stock", productHandler.ReduceStock)

			manage.POST("/variants", variantHandler.Create)
			manage.PUT("/variants/:id", variantHandler.Update)
			manage.DELETE("/variants/:id", variantHandler.Delete)
			manage.PUT("/variants/:id/status", variantHandler.SetStatus)
			manage.PUT("/variants/:id/stock", variantHandler.UpdateStock)
			manage.POST("/variants/:id/reduce-stock", variantHandler.ReduceStock)

			manage.POST("/brands", brandHandler.Create)
			manage.PUT("/brands/:id", brandHandler.Update)
			manage.PUT("/brands/:id/status", brandHandler.SetStatus)

			manage.POST("/events", eventHandler.Create)
			manage.PUT("/events/:id", eventHandler.Update)
			manage.PUT("/events/:id/status", eventHandler.SetStatus)

			manage.POST("/catalogs/:kind", catalogHandler.Add)

			manage.GET("/reports/events/:id/statistics", reportHandler.EventStatistics)
			manage.GET("/reports/events/:id/brands", reportHandler.BrandStatistics)
			manage.GET("/reports/revenue", reportHandler.Revenue)

			manage.DELETE("/sales/:id", saleHandler.Delete)
		}

		// user administration and the assistant
		admin := api.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", userHandler.List)
			admin.GET("/users/:id", userHandler.Get)
			admin.POST("/users", userHandler.Create)
			admin.PUT("/users/:id", userHandler.Update)
			admin.PUT("/users/:id/password", userHandler.ResetPassword)
			admin.PUT("/users/:id/status", userHandler.SetStatus)
			admin.DELETE("/users/:id", userHandler.Delete)
			admin.GET("/roles", userHandler.Roles)

			admin.POST("/ask", aiHandler.Chat)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Server starting on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
