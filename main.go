package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/Jose-TorresCL/Diditracker-bot/bot"
	"github.com/Jose-TorresCL/Diditracker-bot/handlers"
	"github.com/Jose-TorresCL/Diditracker-bot/repository"
	"github.com/Jose-TorresCL/Diditracker-bot/routes"
	"github.com/Jose-TorresCL/Diditracker-bot/services"
	"github.com/Jose-TorresCL/Diditracker-bot/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Diditracker"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Initialize database
	if err := repository.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repository.CloseDB()

	// The per-km target is read once at startup; it only affects how the
	// adapters present results, never what the core computes.
	metaPerKm := utils.DefaultMetaPerKm
	if v := os.Getenv("META_PER_KM"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Fatalf("Invalid META_PER_KM value: %v", err)
		}
		metaPerKm = parsed
	}

	// Initialize services
	tripService := services.NewTripService(repository.NewTripRepository())
	excelService := services.NewExcelService(tripService)
	handlerServices := handlers.NewHandlerServices(tripService, excelService, metaPerKm)

	// Start the Telegram bot when a token is configured; the HTTP API
	// works standalone without it
	if token := os.Getenv("BOT_TOKEN"); token != "" {
		tripBot, err := bot.New(token, tripService, excelService, metaPerKm)
		if err != nil {
			log.Fatalf("Failed to start Telegram bot: %v", err)
		}
		go tripBot.Run()
	} else {
		log.Println("Warning: BOT_TOKEN not set, Telegram bot disabled")
	}

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, handlerServices)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
