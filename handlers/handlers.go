package handlers

import (
	"context"
	"log"

	"app/chatbot"
	"app/config"
	"app/database"
	"app/models"
	"app/predictor"
)

var (
	stockPredictor *predictor.Predictor
	remoteBot      chatbot.Responder
	localBot       chatbot.Responder
)

// Configure wires the handler package with its collaborators. Called once
// from main before routes are registered.
func Configure(pred *predictor.Predictor, remote, local chatbot.Responder) {
	stockPredictor = pred
	remoteBot = remote
	localBot = local
}

// logActivity records a user activity row. Failures are logged and swallowed;
// activity logging is never allowed to fail a request.
func logActivity(ctx context.Context, activityType, description, details string) {
	var d interface{}
	if details != "" {
		d = details
	}
	query := `INSERT INTO user_activity (activity_type, description, details) VALUES ($1, $2, $3)`
	if _, err := database.GetDB().Exec(ctx, query, activityType, description, d); err != nil {
		log.Printf("Failed to log activity %s: %v", activityType, err)
	}
}

// fetchCatalog prefers the persisted catalog and falls back to the JSON file.
func fetchCatalog(ctx context.Context) []models.Product {
	products, err := database.GetAllProducts(ctx)
	if err != nil {
		log.Printf("Error fetching products from database: %v", err)
	}
	if len(products) > 0 {
		return products
	}
	return predictor.LoadCatalog(config.AppConfig.ProductsPath)
}
