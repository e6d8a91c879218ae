package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"roteiro/database"
	"roteiro/handlers"
	"roteiro/services"
)

func setupRouter() *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// CORS for the web frontend
	allowedOrigins := []string{"http://localhost:5173"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = strings.Split(frontendURL, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/api/health", handlers.HealthHandler)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", handlers.SignupHandler)
		auth.POST("/signin", handlers.SigninHandler)
	}

	// Relays to paid third-party APIs sit behind the rate limiter
	api := r.Group("/api", handlers.AuthRequired(), handlers.RateLimit(1, 5))
	{
		api.POST("/flights", handlers.FlightOffersHandler)
		api.GET("/places/:placeId", handlers.PlaceDetailsHandler)
	}

	trip := r.Group("/trip", handlers.AuthRequired())
	{
		trip.POST("/create", handlers.CreateTripHandler)
		trip.GET("/list/:userId", handlers.ListTripsHandler)
		trip.GET("/summary/:id", handlers.TripSummaryHandler)
		trip.GET("/:id", handlers.GetTripHandler)
		trip.DELETE("/delete/:id", handlers.DeleteTripHandler)
	}

	activity := r.Group("/activity", handlers.AuthRequired())
	{
		activity.POST("/create", handlers.CreateActivityHandler)
		activity.GET("/list/:destinationId", handlers.ListActivitiesHandler)
		activity.DELETE("/delete/:id", handlers.DeleteActivityHandler)
	}

	hotel := r.Group("/hotel", handlers.AuthRequired())
	{
		hotel.POST("/create", handlers.CreateHotelHandler)
		hotel.GET("/list/:destinationId", handlers.ListHotelsHandler)
		hotel.DELETE("/delete/:id", handlers.DeleteHotelHandler)
	}

	restaurant := r.Group("/restaurant", handlers.AuthRequired())
	{
		restaurant.POST("/create", handlers.CreateRestaurantHandler)
		restaurant.GET("/list/:destinationId", handlers.ListRestaurantsHandler)
		restaurant.DELETE("/delete/:id", handlers.DeleteRestaurantHandler)
	}

	flight := r.Group("/flight", handlers.AuthRequired())
	{
		flight.POST("/create", handlers.CreateFlightHandler)
		flight.GET("/list/:destinationId", handlers.ListFlightsHandler)
		flight.DELETE("/delete/:id", handlers.DeleteFlightHandler)
	}

	return r
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	database.InitDB()
	defer database.DB.Close()

	services.InitAuth()
	services.InitAmadeus()
	services.InitCache()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
