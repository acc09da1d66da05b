package analytics

import (
	"fmt"
	"testing"

	"app/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyHistory(t *testing.T) {
	summary := Summarize(nil, nil)

	assert.Equal(t, 0, summary.TotalAnalyses)
	assert.Equal(t, 0, summary.TotalChats)
	assert.NotNil(t, summary.Categories)
	assert.NotNil(t, summary.Seasons)
	assert.NotNil(t, summary.Decisions)
	assert.NotNil(t, summary.ChatSources)
	assert.Empty(t, summary.TopProducts)
	assert.Empty(t, summary.RecentAnalyses)
}

func TestSummarize_Distributions(t *testing.T) {
	analyses := []models.AnalysisRecord{
		{ProductName: "Milk 1L", Category: "Dairy", Season: "Summer", Decision: models.DecisionAddStock},
		{ProductName: "Milk 1L", Category: "Dairy", Season: "Winter", Decision: models.DecisionMaintain},
		{ProductName: "Cola 2L", Category: "Beverages", Season: "Summer", Decision: models.DecisionAddStock},
		{ProductName: "Tomato 1kg", Category: "Vegetables", Season: "Summer"},
	}
	chats := []models.ChatRecord{
		{Source: "google-gemini"},
		{Source: "fallback"},
		{Source: "fallback"},
	}

	summary := Summarize(analyses, chats)

	assert.Equal(t, 4, summary.TotalAnalyses)
	assert.Equal(t, 2, summary.Categories["Dairy"])
	assert.Equal(t, 3, summary.Seasons["Summer"])
	assert.Equal(t, 2, summary.Decisions[models.DecisionAddStock])
	// Records without a decision are not counted.
	assert.Equal(t, 2, len(summary.Decisions))

	assert.Equal(t, 3, summary.TotalChats)
	assert.Equal(t, 2, summary.ChatSources["fallback"])
	assert.Equal(t, 1, summary.ChatSources["google-gemini"])
}

func TestSummarize_TopProductsOrderAndLimit(t *testing.T) {
	var analyses []models.AnalysisRecord
	// 12 distinct products, each analyzed once: ties resolve to first-seen
	// order and only ten survive the cut.
	for i := 0; i < 12; i++ {
		analyses = append(analyses, models.AnalysisRecord{
			ProductName: fmt.Sprintf("Product %02d", i),
			Category:    "Groceries",
			Season:      "Regular",
		})
	}
	// A later product with more analyses must rank first.
	analyses = append(analyses,
		models.AnalysisRecord{ProductName: "Milk 1L", Category: "Dairy", Season: "Regular"},
		models.AnalysisRecord{ProductName: "Milk 1L", Category: "Dairy", Season: "Regular"},
	)

	summary := Summarize(analyses, nil)

	if len(summary.TopProducts) != 10 {
		t.Fatalf("expected top products capped at 10, got %d", len(summary.TopProducts))
	}
	assert.Equal(t, "Milk 1L", summary.TopProducts[0].ProductName)
	assert.Equal(t, 2, summary.TopProducts[0].Count)
	assert.Equal(t, "Product 00", summary.TopProducts[1].ProductName)
	assert.Equal(t, "Product 01", summary.TopProducts[2].ProductName)
}

func TestSummarize_RecentWindow(t *testing.T) {
	var analyses []models.AnalysisRecord
	for i := 0; i < 25; i++ {
		analyses = append(analyses, models.AnalysisRecord{
			ID:          int64(25 - i), // newest first, as the store returns them
			ProductName: "Milk 1L",
			Season:      "Regular",
		})
	}

	summary := Summarize(analyses, nil)

	if len(summary.RecentAnalyses) != 20 {
		t.Fatalf("expected recent window of 20, got %d", len(summary.RecentAnalyses))
	}
	assert.Equal(t, int64(25), summary.RecentAnalyses[0].ID)
	assert.Equal(t, int64(6), summary.RecentAnalyses[19].ID)
}

func TestSummarize_DoesNotMutateInputs(t *testing.T) {
	analyses := []models.AnalysisRecord{
		{ProductName: "Milk 1L", Category: "Dairy", Season: "Summer", Decision: models.DecisionAddStock},
	}

	_ = Summarize(analyses, nil)

	assert.Equal(t, "Milk 1L", analyses[0].ProductName)
	assert.Equal(t, models.DecisionAddStock, analyses[0].Decision)
}
