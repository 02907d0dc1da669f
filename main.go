package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lumistudio/backend-studio/config"
	"github.com/lumistudio/backend-studio/metrics"
	"github.com/lumistudio/backend-studio/middleware"
	"github.com/lumistudio/backend-studio/routes"
	"github.com/lumistudio/backend-studio/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize Supabase client
	supabaseClient, err := config.NewSupabaseClient(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var notifier services.Notifier
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := services.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		notifier = tg
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Register()

	router := gin.Default()
	router.MaxMultipartMemory = 8 << 20

	router.Use(config.CORSMiddleware(cfg))
	router.Use(middleware.Metrics())

	routes.SetupRoutes(router, supabaseClient, cfg, notifier)

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
