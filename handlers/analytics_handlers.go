package handlers

import (
	"context"
	"database/sql"
	"log"

	"app/analytics"
	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleGetAnalytics reduces the persisted history into the dashboard
// summary. Store failures degrade to an empty summary, never a 5xx: analytics
// is supplementary, not critical-path.
// GET /api/v1/analytics
func HandleGetAnalytics(c *fiber.Ctx) error {
	ctx := context.Background()

	analyses, err := fetchAnalyses(ctx, 0)
	if err != nil {
		log.Printf("Error fetching analyses for summary: %v", err)
		return c.JSON(analytics.Summarize(nil, nil))
	}

	chats, err := fetchChats(ctx)
	if err != nil {
		log.Printf("Error fetching chats for summary: %v", err)
		return c.JSON(analytics.Summarize(nil, nil))
	}

	return c.JSON(analytics.Summarize(analyses, chats))
}

// HandleGetRecentAnalyses returns the most recent analyses, newest first.
// GET /api/v1/analyses/recent?limit=
func HandleGetRecentAnalyses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	analyses, err := fetchAnalyses(context.Background(), limit)
	if err != nil {
		log.Printf("Error fetching recent analyses: %v", err)
		return c.JSON([]models.AnalysisRecord{})
	}
	return c.JSON(analyses)
}

// fetchAnalyses reads analysis records newest first. A limit of 0 means all.
func fetchAnalyses(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	query := `
		SELECT id, product_name, category, season, current_stock, predicted_demand,
		       recommendation, decision, price, unit, optimal_level, created_at
		FROM inventory_analysis
		ORDER BY created_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := database.GetDB().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAnalysisRows(rows)
}

func fetchChats(ctx context.Context) ([]models.ChatRecord, error) {
	query := `
		SELECT id, user_message, bot_response, source, created_at
		FROM chatbot_conversations
		ORDER BY created_at DESC
	`
	rows, err := database.GetDB().Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := []models.ChatRecord{}
	for rows.Next() {
		var rec models.ChatRecord
		var source sql.NullString
		if err := rows.Scan(&rec.ID, &rec.UserMessage, &rec.BotResponse, &source, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Source = source.String
		chats = append(chats, rec)
	}
	return chats, rows.Err()
}

func scanAnalysisRows(rows pgx.Rows) ([]models.AnalysisRecord, error) {
	analyses := []models.AnalysisRecord{}
	for rows.Next() {
		var rec models.AnalysisRecord
		var category, recommendation, decision, unit sql.NullString
		var predictedDemand, optimalLevel sql.NullInt64
		var price sql.NullFloat64
		err := rows.Scan(
			&rec.ID, &rec.ProductName, &category, &rec.Season, &rec.CurrentStock,
			&predictedDemand, &recommendation, &decision, &price, &unit,
			&optimalLevel, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		rec.Category = category.String
		rec.Recommendation = recommendation.String
		rec.Decision = decision.String
		rec.Unit = unit.String
		rec.PredictedDemand = int(predictedDemand.Int64)
		rec.OptimalLevel = int(optimalLevel.Int64)
		rec.Price = price.Float64
		analyses = append(analyses, rec)
	}
	return analyses, rows.Err()
}
