package main

import (
	"log"
	"time"

	"food_ordering/internal/config"
	"food_ordering/internal/database"
	"food_ordering/internal/handlers"
	"food_ordering/internal/models"
	"food_ordering/internal/redis"
	"food_ordering/internal/repository"
	"food_ordering/internal/services"
	"food_ordering/pkg/logger"
	"food_ordering/pkg/payment"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	appLog := logger.New("food_ordering")

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize payment provider
	stripeService := payment.NewStripeService(cfg.StripeSecretKey)
	if !stripeService.Configured() {
		appLog.Warning("stripe secret key not set, payment endpoints disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, redisClient, time.Duration(cfg.SessionTTL)*time.Second)
	notificationService := services.NewNotificationService(notificationRepo)
	loyaltyService := services.NewLoyaltyService(loyaltyRepo, notificationRepo)
	catalogService := services.NewCatalogService(catalogRepo, restaurantRepo)
	orderService := services.NewOrderService(orderRepo, restaurantRepo, catalogRepo, userRepo, loyaltyService, cfg.PointsPerUnit, appLog)
	reservationService := services.NewReservationService(reservationRepo, cfg.SlotCapacity)
	reviewService := services.NewReviewService(reviewRepo, orderRepo, reservationRepo, restaurantRepo)
	paymentService := services.NewPaymentService(stripeService, paymentRepo, cfg.Currency)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLog)
	catalogHandler := handlers.NewCatalogHandler(catalogService, appLog)
	orderHandler := handlers.NewOrderHandler(orderService, catalogService, appLog)
	loyaltyHandler := handlers.NewLoyaltyHandler(loyaltyService, appLog)
	reservationHandler := handlers.NewReservationHandler(reservationService, appLog)
	reviewHandler := handlers.NewReviewHandler(reviewService, appLog)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, appLog)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Public storefront reads
		api.GET("/restaurants", catalogHandler.ListRestaurants)
		api.GET("/menu", catalogHandler.Menu)
		api.GET("/reviews", reviewHandler.List)
		api.GET("/ratings", reviewHandler.ListRatings)
		api.GET("/promotions", catalogHandler.ListPromotions)

		authed := api.Group("")
		authed.Use(handlers.Auth(authService))
		{
			authed.POST("/auth/logout", authHandler.Logout)
			authed.GET("/auth/me", authHandler.Me)
			authed.POST("/addresses", authHandler.CreateAddress)
			authed.GET("/addresses", authHandler.ListAddresses)

			authed.POST("/orders", orderHandler.Create)
			authed.GET("/orders", orderHandler.ListMine)
			authed.PATCH("/orders/:id",
				handlers.RequireRole(models.RoleRestaurant, models.RoleDriver, models.RoleAdmin),
				orderHandler.UpdateStatus)
			authed.GET("/restaurant/orders",
				handlers.RequireRole(models.RoleRestaurant),
				orderHandler.ListForRestaurant)
			authed.GET("/driver/orders",
				handlers.RequireRole(models.RoleDriver, models.RoleAdmin),
				orderHandler.ListForDrivers)

			authed.GET("/loyalty", loyaltyHandler.Summary)
			authed.POST("/loyalty", loyaltyHandler.Apply)
			authed.POST("/loyalty/redeem", loyaltyHandler.Redeem)

			authed.POST("/reservations", reservationHandler.Create)
			authed.GET("/reservations", reservationHandler.ListMine)
			authed.PATCH("/reservations/:id",
				handlers.RequireRole(models.RoleAdmin),
				reservationHandler.UpdateStatus)

			authed.POST("/reviews", reviewHandler.Create)
			authed.POST("/ratings", reviewHandler.CreateRating)

			authed.GET("/notifications", notificationHandler.List)
			authed.POST("/notifications", notificationHandler.Create)
			authed.POST("/notifications/:id/read", notificationHandler.MarkRead)

			authed.POST("/payment/create-intent", paymentHandler.CreateIntent)
			authed.GET("/payments", paymentHandler.List)

			authed.POST("/restaurants",
				handlers.RequireRole(models.RoleAdmin),
				catalogHandler.CreateRestaurant)
			authed.POST("/menu",
				handlers.RequireRole(models.RoleRestaurant, models.RoleAdmin),
				catalogHandler.CreateMenuItem)
			authed.PUT("/menu/:id",
				handlers.RequireRole(models.RoleRestaurant, models.RoleAdmin),
				catalogHandler.UpdateMenuItem)
			authed.POST("/categories",
				handlers.RequireRole(models.RoleRestaurant, models.RoleAdmin),
				catalogHandler.CreateCategory)
			authed.POST("/promotions",
				handlers.RequireRole(models.RoleAdmin),
				catalogHandler.CreatePromotion)
		}
	}

	// Start server
	appLog.Info("server starting", logger.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
