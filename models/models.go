package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- Custom JSON Type for database/sql ---

// JSONB allows storing JSON data in a PostgreSQL jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, &j)
	case string:
		return json.Unmarshal([]byte(v), &j)
	default:
		return errors.New("unsupported type for JSONB scan")
	}
}

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// User represents a dashboard user account.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Request DTOs ---

// AnalyzeRequest is the body of POST /api/v1/analyze. Stock is a pointer so a
// missing field can be told apart from an explicit zero.
type AnalyzeRequest struct {
	Product string `json:"product"`
	Season  string `json:"season"`
	Stock   *int   `json:"stock"`
}

// --- Core Models ---

// Product is one entry of the catalog. Read-only to the prediction core.
type Product struct {
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	CurrentPrice       float64 `json:"current_price"`
	Unit               string  `json:"unit"`
	HistoricalPriceAvg float64 `json:"historical_price_avg"`
	Metadata           JSONB   `json:"metadata,omitempty"`
}

// Stock decision values emitted by the recommendation engine.
const (
	DecisionMaintain    = "MAINTAIN"
	DecisionAddStock    = "ADD_STOCK"
	DecisionReduceStock = "REDUCE_STOCK"
)

// Recommendation is the stock-action decision derived from current stock and
// predicted demand. Not persisted on its own; flattened into AnalysisRecord.
type Recommendation struct {
	Decision       string `json:"decision"`
	Advice         string `json:"advice"`
	QuantityAction int    `json:"quantity_action"`
	OptimalLevel   int    `json:"optimal_level"`
	ReorderPoint   int    `json:"reorder_point"`
	SafetyStock    int    `json:"safety_stock"`
	RequiredStock  int    `json:"required_stock"`
	StockGap       int    `json:"stock_gap"`
}

// PredictionResult is the value object produced by one analyze call.
type PredictionResult struct {
	Product            string         `json:"product"`
	Category           string         `json:"category"`
	CurrentStock       int            `json:"current_stock"`
	Season             string         `json:"season"`
	PredictedDemand    int            `json:"predicted_demand"`
	SeasonalMultiplier float64        `json:"seasonal_multiplier"`
	Recommendation     Recommendation `json:"recommendation"`
	Price              float64        `json:"price"`
	Unit               string         `json:"unit"`
}

// --- Persisted records ---

// AnalysisRecord is a persisted prediction (inventory_analysis row).
type AnalysisRecord struct {
	ID              int64     `json:"id"`
	ProductName     string    `json:"product_name"`
	Category        string    `json:"category"`
	Season          string    `json:"season"`
	CurrentStock    int       `json:"current_stock"`
	PredictedDemand int       `json:"predicted_demand"`
	Recommendation  string    `json:"recommendation"`
	Decision        string    `json:"decision"`
	Price           float64   `json:"price"`
	Unit            string    `json:"unit"`
	OptimalLevel    int       `json:"optimal_level"`
	CreatedAt       time.Time `json:"created_at"`
}

// ChatRecord is a persisted chatbot exchange (chatbot_conversations row).
type ChatRecord struct {
	ID          int64     `json:"id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivityRecord is a persisted activity log entry (user_activity row).
type ActivityRecord struct {
	ID           int64     `json:"id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	Details      *string   `json:"details,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// --- Analytics ---

// ProductCount pairs a product name with its analysis count.
type ProductCount struct {
	ProductName string `json:"product_name"`
	Count       int    `json:"count"`
}

// AnalyticsSummary is the reduction of the persisted analysis/chat history.
type AnalyticsSummary struct {
	TotalAnalyses  int              `json:"total_analyses"`
	Categories     map[string]int   `json:"categories"`
	Seasons        map[string]int   `json:"seasons"`
	Decisions      map[string]int   `json:"decisions"`
	TopProducts    []ProductCount   `json:"top_products"`
	RecentAnalyses []AnalysisRecord `json:"recent_analyses"`
	TotalChats     int              `json:"total_chats"`
	ChatSources    map[string]int   `json:"chat_sources"`
}

// CategoryInsight summarises the catalog for one category.
type CategoryInsight struct {
	Count      int     `json:"count"`
	AvgPrice   float64 `json:"avg_price"`
	TotalPrice float64 `json:"total_price"`
}

// DashboardStats backs the dashboard header cards.
type DashboardStats struct {
	TotalProducts        int            `json:"total_products"`
	TotalAnalyses        int            `json:"total_analyses"`
	TotalChats           int            `json:"total_chats"`
	Categories           []string       `json:"categories"`
	AvgPrice             float64        `json:"avg_price"`
	CategoryDistribution map[string]int `json:"category_distribution"`
}
