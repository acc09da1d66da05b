package handlers

import (
	"context"
	"database/sql"
	"log"
	"math"

	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleGetProducts returns the full product catalog.
// GET /api/v1/products
func HandleGetProducts(c *fiber.Ctx) error {
	products := fetchCatalog(context.Background())
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(products)
}

// HandleGetProductHistory returns all past analyses for one product, newest
// first.
// GET /api/v1/products/:name/history
func HandleGetProductHistory(c *fiber.Ctx) error {
	productName := c.Params("name")
	ctx := context.Background()

	query := `
		SELECT id, product_name, category, season, current_stock, predicted_demand,
		       recommendation, decision, price, unit, optimal_level, created_at
		FROM inventory_analysis
		WHERE product_name = $1
		ORDER BY created_at DESC
	`
	rows, err := database.GetDB().Query(ctx, query, productName)
	if err != nil {
		log.Printf("Error fetching history for product %q: %v", productName, err)
		return c.JSON([]models.AnalysisRecord{})
	}
	defer rows.Close()

	history, err := scanAnalysisRows(rows)
	if err != nil {
		log.Printf("Error scanning history for product %q: %v", productName, err)
		return c.JSON([]models.AnalysisRecord{})
	}
	return c.JSON(history)
}

// HandleDashboardStats returns the dashboard header statistics: catalog
// totals plus analysis/chat counts. Store failures degrade to zero counts.
// GET /api/v1/dashboard/stats
func HandleDashboardStats(c *fiber.Ctx) error {
	ctx := context.Background()
	products := fetchCatalog(ctx)

	distribution := map[string]int{}
	var totalPrice float64
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = "Miscellaneous"
		}
		distribution[category]++
		totalPrice += p.CurrentPrice
	}

	stats := models.DashboardStats{
		TotalProducts:        len(products),
		Categories:           []string{},
		CategoryDistribution: distribution,
	}
	for category := range distribution {
		stats.Categories = append(stats.Categories, category)
	}
	if len(products) > 0 {
		stats.AvgPrice = math.Round(totalPrice/float64(len(products))*100) / 100
	}

	db := database.GetDB()
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_analysis`).Scan(&stats.TotalAnalyses); err != nil {
		log.Printf("Error counting analyses: %v", err)
	}
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM chatbot_conversations`).Scan(&stats.TotalChats); err != nil {
		log.Printf("Error counting chats: %v", err)
	}

	return c.JSON(stats)
}

// HandleGetCategoryInsights returns per-category product counts and average
// prices over the loaded catalog.
// GET /api/v1/insights/categories
func HandleGetCategoryInsights(c *fiber.Ctx) error {
	return c.JSON(stockPredictor.CategoryInsights())
}

// HandleGetActivity returns recent activity log entries, newest first.
// GET /api/v1/activity?limit=
func HandleGetActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}
	ctx := context.Background()

	query := `
		SELECT id, activity_type, description, details, created_at
		FROM user_activity
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := database.GetDB().Query(ctx, query, limit)
	if err != nil {
		log.Printf("Error fetching activity log: %v", err)
		return c.JSON([]models.ActivityRecord{})
	}
	defer rows.Close()

	activity := []models.ActivityRecord{}
	for rows.Next() {
		var rec models.ActivityRecord
		var details sql.NullString
		if err := rows.Scan(&rec.ID, &rec.ActivityType, &rec.Description, &details, &rec.CreatedAt); err != nil {
			log.Printf("Error scanning activity row: %v", err)
			continue
		}
		rec.Details = utils.NullStringToStringPtr(details)
		activity = append(activity, rec)
	}
	return c.JSON(activity)
}
