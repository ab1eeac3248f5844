package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-management-backend/internal/config"
	"clinic-management-backend/internal/database"
	"clinic-management-backend/internal/handler"
	"clinic-management-backend/internal/middleware"
	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"
	"clinic-management-backend/internal/service"
	"clinic-management-backend/internal/session"
	"clinic-management-backend/pkg/logger"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize structured logging and JWT utilities
	appLogger := logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})
	utils.InitJWT(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenExpiry)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize Redis-backed session store
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	sessions := session.NewStore(redisClient, cfg.Auth.SessionTTL)

	// 5. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	availabilityRepo := repository.NewAvailabilityRepo(db)
	rateRepo := repository.NewRateRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	messageRepo := repository.NewMessageRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo, appLogger)
	appointmentService := service.NewAppointmentService(appointmentRepo, availabilityRepo, rateRepo, auditRepo, appLogger)
	availabilityService := service.NewAvailabilityService(availabilityRepo)
	rateService := service.NewRateService(rateRepo)
	messageService := service.NewMessageService(messageRepo, userRepo)
	reminderService := service.NewReminderService(appointmentRepo, 15*time.Minute, appLogger)

	// 7. Start reminder worker in goroutine
	go reminderService.Start(ctx)

	// 8. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService, sessions)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityService)
	rateHandler := handler.NewRateHandler(rateService)
	messageHandler := handler.NewMessageHandler(messageService)

	// 10. Define routes
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "clinic-management-backend",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	// Protected routes (session cookie or bearer token)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(sessions))
	{
		api.GET("/dashboard", appointmentHandler.Dashboard)

		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", middleware.RequireRole(models.RolePatient, models.RoleReceptionist), appointmentHandler.Schedule)
		api.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.POST("/appointments/:id/reschedule", appointmentHandler.Reschedule)
		api.POST("/appointments/:id/pay", middleware.RequireRole(models.RoleDoctor, models.RoleReceptionist), appointmentHandler.MarkPaid)

		// Doctor-only management
		api.GET("/availability", middleware.RequireRole(models.RoleDoctor), availabilityHandler.List)
		api.PUT("/availability", middleware.RequireRole(models.RoleDoctor), availabilityHandler.Set)
		api.GET("/rate", middleware.RequireRole(models.RoleDoctor), rateHandler.Get)
		api.PUT("/rate", middleware.RequireRole(models.RoleDoctor), rateHandler.Set)

		api.GET("/billing", middleware.RequireRole(models.RoleDoctor, models.RoleReceptionist), appointmentHandler.Billing)

		api.POST("/messages", messageHandler.Send)
		api.GET("/messages/:user_id", messageHandler.Conversation)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel reminder worker context
	cancel()
	log.Println("Server exited")
}
