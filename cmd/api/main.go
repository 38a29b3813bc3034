package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ruralconnect/ruralconnect-backend/internal/database"
	"github.com/ruralconnect/ruralconnect-backend/internal/geocode"
	"github.com/ruralconnect/ruralconnect-backend/internal/handlers"
	"github.com/ruralconnect/ruralconnect-backend/internal/services"
	"github.com/ruralconnect/ruralconnect-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize database
	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis (optional - geocode results just go uncached without it)
	var geocodeCache geocode.Cache
	if err := services.InitRedis(); err != nil {
		log.Printf("Redis initialization warning: %v", err)
	} else {
		geocodeCache = services.NewRedisGeocodeCache(services.RedisClient)
	}

	// Initialize WebSocket hub and notification stream
	hub := services.NewHub()
	go hub.Run()
	notifier := services.NewHubNotifier(hub)

	// Ride store over the hosted rides collection
	rides := store.New(database.NewRideRepository(db), notifier, os.Getenv("SELF_DRIVER_NAME"))

	// Initial snapshot fetch. Fire-and-forget: a failure surfaces as a
	// notification and the server starts with an empty snapshot.
	go func() {
		if err := rides.Refresh(context.Background()); err != nil {
			log.Printf("Initial ride fetch failed: %v", err)
		}
	}()

	// Geocoding
	geocoder := geocode.NewClient(os.Getenv("NOMINATIM_BASE_URL"), geocodeCache)
	locator := geocode.NewLocator(geocoder, notifier)

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Routes
	api := r.Group("/api")
	{
		// WebSocket notification stream
		api.GET("/ws", handlers.WebSocketHandler(hub))

		// Home view
		api.GET("/home", handlers.GetHome())

		// Find-ride and offer-ride views
		ridesGroup := api.Group("/rides")
		{
			ridesGroup.GET("", handlers.SearchRides(rides))
			ridesGroup.POST("", handlers.CreateRide(rides))
			ridesGroup.POST("/:id/book", handlers.BookRide(notifier))
		}

		// Dashboard view
		api.GET("/dashboard", handlers.GetDashboard(rides))

		// Profile view
		profile := api.Group("/profile")
		{
			profile.GET("", handlers.GetProfile())
			profile.PUT("", handlers.UpdateProfile())
			profile.POST("/vehicles/:index/verify", handlers.VerifyVehicle(notifier))
		}

		// Geolocation helper
		api.GET("/location/resolve", handlers.ResolveLocation(locator))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
