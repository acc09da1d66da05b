package main

import (
	"context"
	"log"

	"app/chatbot"
	"app/config"
	"app/database"
	"app/handlers"
	"app/middleware"
	"app/predictor"
	"app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	config.Load()
	if config.AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	if config.AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	middleware.JWTSecret = []byte(config.AppConfig.JWTSecret)

	// Initialize database
	database.Connect(config.AppConfig.DatabaseURL)
	defer database.Close()

	ctx := context.Background()
	if err := database.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}
	if err := database.SeedProducts(ctx, config.AppConfig.ProductsPath); err != nil {
		log.Printf("Failed to seed products: %v", err)
	}

	// Build the prediction core: catalog and pattern table are loaded once
	// and injected; both are immutable from here on.
	catalog, err := database.GetAllProducts(ctx)
	if err != nil || len(catalog) == 0 {
		if err != nil {
			log.Printf("Could not load catalog from database: %v", err)
		}
		catalog = predictor.LoadCatalog(config.AppConfig.ProductsPath)
	}
	patterns := predictor.LoadPatterns(config.AppConfig.PatternsPath)
	pred := predictor.New(catalog, patterns)

	// Chatbot: remote Gemini with a local keyword fallback.
	categories := categoryNames(pred)
	if config.AppConfig.GeminiAPIKey == "" {
		log.Println("No Gemini API key configured, chat will use fallback responses")
	}
	remote := chatbot.NewGemini(config.AppConfig.GeminiAPIKey, categories)
	local := chatbot.NewFallback()

	handlers.Configure(pred, remote, local)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

func categoryNames(pred *predictor.Predictor) []string {
	insights := pred.CategoryInsights()
	names := make([]string, 0, len(insights))
	for name := range insights {
		names = append(names, name)
	}
	return names
}
