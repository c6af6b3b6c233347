package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/config"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/engine"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/fixtures"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/handlers"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/middleware"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/seatmap"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/services"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Busmate passenger app backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Load the fixture set
	logger.Info("Loading fixture data...")
	store, err := fixtures.Load()
	if err != nil {
		logger.Fatalf("Failed to load fixtures: %v", err)
	}
	logger.Infof("Loaded %d routes, %d notifications", len(store.Routes()), len(store.Notifications()))

	// Initialize repositories
	routeRepository := repository.NewRouteRepository(store.Routes(), store.RoutePaths())
	bookingRepository := repository.NewBookingRepository()
	walletRepository := repository.NewWalletRepository(cfg.Wallet.InitialBalance)
	notificationRepository := repository.NewNotificationRepository(store.Notifications())

	// Initialize services
	logger.Info("Initializing services...")
	queryEngine := engine.NewRouteQueryEngine()
	searchService := services.NewSearchService(routeRepository, queryEngine, logger)
	bookingService := services.NewBookingService(
		routeRepository,
		bookingRepository,
		walletRepository,
		seatmap.DefaultTemplate(),
		logger,
	)
	walletService := services.NewWalletService(walletRepository, logger)
	ticketService := services.NewTicketService(bookingRepository, routeRepository, walletRepository, logger)
	trackingService := services.NewTrackingService(routeRepository, cfg.Tracking.JitterMeters, logger)
	logger.Info("Services initialized")

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(searchService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	walletHandler := handlers.NewWalletHandler(walletService, logger)
	ticketHandler := handlers.NewTicketHandler(ticketService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationRepository, logger)
	trackingHandler := handlers.NewTrackingHandler(trackingService, logger)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.Identity())
	router.Use(middleware.RequestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(len(store.Routes())))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Search routes
		search := v1.Group("/search")
		{
			search.POST("", searchHandler.SearchRoutes)
			search.GET("/popular", searchHandler.GetPopularRoutes)
			search.GET("/autocomplete", searchHandler.GetPlaceAutocomplete)
		}

		// Seat selection and booking sessions
		sessions := v1.Group("/bookings/sessions")
		{
			sessions.POST("", bookingHandler.StartSession)
			sessions.GET("/:id", bookingHandler.GetSession)
			sessions.POST("/:id/seats/:seatId", bookingHandler.ToggleSeat)
			sessions.POST("/:id/confirm", bookingHandler.Confirm)
			sessions.DELETE("/:id", bookingHandler.Abandon)
		}

		// Wallet routes
		wallet := v1.Group("/wallet")
		{
			wallet.GET("", walletHandler.GetWallet)
			wallet.POST("/topup", walletHandler.TopUp)
			wallet.GET("/transactions", walletHandler.GetTransactions)
		}

		// Ticket routes
		tickets := v1.Group("/tickets")
		{
			tickets.GET("", ticketHandler.GetTickets)
			tickets.GET("/:id", ticketHandler.GetTicket)
			tickets.GET("/:id/pdf", ticketHandler.DownloadTicketPDF)
			tickets.DELETE("/:id", ticketHandler.CancelTicket)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}

		// Live-tracking map routes
		v1.GET("/tracking/:routeId", trackingHandler.GetPosition)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(routeCount int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"routes":    routeCount,
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
