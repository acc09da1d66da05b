package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
)

// HandleAnalyze runs a stock prediction for one product and persists the
// result. Validation happens here; the prediction core is total over its
// inputs and never fails.
// POST /api/v1/analyze
func HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid stock value"})
	}

	if req.Product == "" || req.Season == "" || req.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}
	if *req.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid stock value"})
	}

	prediction := stockPredictor.Predict(req.Product, *req.Stock, req.Season)

	ctx := context.Background()
	if err := saveAnalysis(ctx, prediction); err != nil {
		// Persistence is best-effort; the prediction is still returned.
		log.Printf("Failed to save analysis: %v", err)
	}

	details, _ := json.Marshal(fiber.Map{"stock": *req.Stock, "decision": prediction.Recommendation.Decision})
	logActivity(ctx, "inventory_analysis",
		fmt.Sprintf("Analyzed %s for %s season", req.Product, req.Season), string(details))

	return c.JSON(prediction)
}

func saveAnalysis(ctx context.Context, p models.PredictionResult) error {
	query := `
		INSERT INTO inventory_analysis
			(product_name, category, season, current_stock, predicted_demand,
			 recommendation, decision, price, unit, optimal_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := database.GetDB().Exec(ctx, query,
		p.Product,
		p.Category,
		p.Season,
		p.CurrentStock,
		p.PredictedDemand,
		p.Recommendation.Advice,
		p.Recommendation.Decision,
		p.Price,
		p.Unit,
		p.Recommendation.OptimalLevel,
	)
	return err
}
