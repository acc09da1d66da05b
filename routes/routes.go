package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)
	auth.Post("/register", handlers.HandleRegister)

	// --- Profile ---
	api.Put("/profile", middleware.JWTMiddleware, handlers.HandleUpdateProfile)

	// --- Catalog ---
	products := api.Group("/products", middleware.JWTMiddleware)
	products.Get("/", handlers.HandleGetProducts)
	products.Get("/:name/history", handlers.HandleGetProductHistory)

	// --- Dashboard & Analytics ---
	api.Get("/dashboard/stats", middleware.JWTMiddleware, handlers.HandleDashboardStats)
	api.Get("/analytics", middleware.JWTMiddleware, handlers.HandleGetAnalytics)
	api.Get("/analyses/recent", middleware.JWTMiddleware, handlers.HandleGetRecentAnalyses)
	api.Get("/insights/categories", middleware.JWTMiddleware, handlers.HandleGetCategoryInsights)
	api.Get("/activity", middleware.JWTMiddleware, handlers.HandleGetActivity)

	// --- Prediction & Chat ---
	api.Post("/analyze", middleware.JWTMiddleware, handlers.HandleAnalyze)
	api.Post("/chat", middleware.JWTMiddleware, handlers.HandleChat)
}
