package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/sourdough-shop/auth"
	"github.com/yeremiapane/sourdough-shop/config"
	"github.com/yeremiapane/sourdough-shop/middlewares"
	"github.com/yeremiapane/sourdough-shop/router"
	"github.com/yeremiapane/sourdough-shop/services"
	"github.com/yeremiapane/sourdough-shop/sheets"
	"github.com/yeremiapane/sourdough-shop/utils"
)

func main() {
	// Load .env before anything reads the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}
	utils.JWTSecret = []byte(cfg.JWTSecret)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := sheets.NewClient(cfg.SheetsURL)
	verifier := auth.NewSharedSecret(cfg.AdminPassword, cfg.AdminPasswordHash)

	store := services.NewInventoryStore(client, cfg.RefreshInterval)
	if err := store.Refresh(); err != nil {
		// The sheet may be unreachable at boot; serve the (empty) stale
		// state and let the re-sync loop catch up.
		utils.ErrorLogger.Printf("Initial inventory load failed: %v", err)
	}
	store.Start()
	defer store.Stop()

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(store, client, verifier)
	r.Use(rateLimiter.RateLimit())

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
