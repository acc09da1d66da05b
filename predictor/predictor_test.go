package predictor

import (
	"testing"

	"app/models"

	"github.com/stretchr/testify/assert"
)

func testCatalog() []models.Product {
	return []models.Product{
		{Name: "Milk 1L", Category: "Dairy", CurrentPrice: 60, Unit: "pack"},
		{Name: "Orange Juice 1L", Category: "Beverages", CurrentPrice: 120, Unit: "bottle"},
		{Name: "Mystery Item", CurrentPrice: 25, Unit: "pack"},
	}
}

func TestMultiplier_KnownAndUnknownPairs(t *testing.T) {
	patterns := DefaultPatterns()

	if got := patterns.Multiplier("Summer", "Beverages"); got != 1.5 {
		t.Fatalf("expected 1.5 for Summer/Beverages, got %v", got)
	}
	if got := patterns.Multiplier("Winter", "Groceries"); got != 1.1 {
		t.Fatalf("expected 1.1 for Winter/Groceries, got %v", got)
	}

	// Any miss resolves to 1.0: unknown season, unknown category, or a
	// category absent from that season's sub-table.
	if got := patterns.Multiplier("Autumn", "Beverages"); got != 1.0 {
		t.Fatalf("expected 1.0 for unknown season, got %v", got)
	}
	if got := patterns.Multiplier("Summer", "Dairy"); got != 1.0 {
		t.Fatalf("expected 1.0 for category absent from Summer, got %v", got)
	}
	if got := patterns.Multiplier("", ""); got != 1.0 {
		t.Fatalf("expected 1.0 for empty pair, got %v", got)
	}
}

func TestBaseDemand(t *testing.T) {
	cases := map[string]int{
		"Groceries":     150,
		"Dairy":         200,
		"Beverages":     180,
		"Fruits":        120,
		"Vegetables":    140,
		"Personal Care": 90,
		"Snacks":        160,
		"Frozen":        80,
		"Condiments":    70,
		"Miscellaneous": 100,
	}
	for category, want := range cases {
		if got := BaseDemand(category); got != want {
			t.Fatalf("BaseDemand(%q) = %d, want %d", category, got, want)
		}
	}
	if got := BaseDemand("Electronics"); got != 100 {
		t.Fatalf("expected default 100 for unknown category, got %d", got)
	}
}

func TestPredict_KnownProduct(t *testing.T) {
	p := New(testCatalog(), nil)

	result := p.Predict("Milk 1L", 50, "Summer")

	// Default table has no Dairy entry under Summer, so the multiplier
	// falls back to 1.0 and demand stays at the Dairy base of 200.
	assert.Equal(t, "Dairy", result.Category)
	assert.Equal(t, 1.0, result.SeasonalMultiplier)
	assert.Equal(t, 200, result.PredictedDemand)
	assert.Equal(t, 60.0, result.Price)
	assert.Equal(t, "pack", result.Unit)

	rec := result.Recommendation
	assert.Equal(t, 40, rec.SafetyStock)
	assert.Equal(t, 200, rec.ReorderPoint)
	assert.Equal(t, 240, rec.OptimalLevel)
	assert.Equal(t, models.DecisionAddStock, rec.Decision)
	assert.Equal(t, 190, rec.QuantityAction)
	assert.Equal(t, "Add 190 units", rec.Advice)
	assert.Equal(t, 190, rec.StockGap)
}

func TestPredict_KnownProductWithSeasonalEntry(t *testing.T) {
	p := New(testCatalog(), nil)

	result := p.Predict("Orange Juice 1L", 300, "Summer")

	assert.Equal(t, 1.5, result.SeasonalMultiplier)
	assert.Equal(t, 270, result.PredictedDemand) // floor(180 * 1.5)
}

func TestPredict_UnknownProductFallback(t *testing.T) {
	p := New(testCatalog(), nil)

	result := p.Predict("Unknown Widget", 10, "Winter")

	assert.Equal(t, "Miscellaneous", result.Category)
	assert.Equal(t, 0.9, result.SeasonalMultiplier)
	assert.Equal(t, 90, result.PredictedDemand)
	assert.Equal(t, 0.0, result.Price)
	assert.Equal(t, "pack", result.Unit)

	rec := result.Recommendation
	assert.Equal(t, 18, rec.SafetyStock)
	assert.Equal(t, 108, rec.OptimalLevel)
	assert.Equal(t, models.DecisionAddStock, rec.Decision)
	assert.Equal(t, 98, rec.QuantityAction)
}

func TestPredict_UnknownProductUnknownSeason(t *testing.T) {
	p := New(nil, nil)

	result := p.Predict("Unknown Widget", 10, "Autumn")

	assert.Equal(t, 1.0, result.SeasonalMultiplier)
	assert.Equal(t, 100, result.PredictedDemand)
}

func TestPredict_MissingCategoryDefaultsToGroceries(t *testing.T) {
	p := New(testCatalog(), nil)

	result := p.Predict("Mystery Item", 10, "Regular")

	assert.Equal(t, "Groceries", result.Category)
	assert.Equal(t, 150, result.PredictedDemand)
}

func TestPredict_Idempotent(t *testing.T) {
	p := New(testCatalog(), nil)

	first := p.Predict("Milk 1L", 50, "Summer")
	second := p.Predict("Milk 1L", 50, "Summer")

	assert.Equal(t, first, second)
}

func TestRecommend_Boundaries(t *testing.T) {
	// Stock equal to the reorder point is not an ADD.
	rec := Recommend(100, 100, "Summer")
	if rec.Decision != models.DecisionMaintain {
		t.Fatalf("expected MAINTAIN at reorder point, got %s", rec.Decision)
	}
	if rec.QuantityAction != 100 {
		t.Fatalf("expected quantity_action 100, got %d", rec.QuantityAction)
	}
	if rec.SafetyStock != 20 || rec.OptimalLevel != 120 {
		t.Fatalf("unexpected levels: safety=%d optimal=%d", rec.SafetyStock, rec.OptimalLevel)
	}

	// Stock equal to 1.5x optimal is still MAINTAIN; one above reduces.
	rec = Recommend(180, 100, "Summer")
	if rec.Decision != models.DecisionMaintain {
		t.Fatalf("expected MAINTAIN at 1.5x optimal, got %s", rec.Decision)
	}
	rec = Recommend(181, 100, "Summer")
	if rec.Decision != models.DecisionReduceStock {
		t.Fatalf("expected REDUCE_STOCK above 1.5x optimal, got %s", rec.Decision)
	}
	if rec.QuantityAction != 61 {
		t.Fatalf("expected quantity_action 61, got %d", rec.QuantityAction)
	}
	if rec.Advice != "Reduce by 61 units" {
		t.Fatalf("unexpected advice %q", rec.Advice)
	}
}

func TestRecommend_ZeroDemand(t *testing.T) {
	rec := Recommend(0, 0, "Regular")
	assert.Equal(t, models.DecisionMaintain, rec.Decision)
	assert.Equal(t, 0, rec.QuantityAction)
	assert.Equal(t, 0, rec.SafetyStock)
	assert.Equal(t, 0, rec.OptimalLevel)
	assert.Equal(t, 0, rec.StockGap)
	assert.Equal(t, "Maintain 0 units", rec.Advice)
}

func TestRecommend_StockGapNeverNegative(t *testing.T) {
	rec := Recommend(500, 100, "Summer")
	if rec.StockGap != 0 {
		t.Fatalf("expected zero stock gap for surplus, got %d", rec.StockGap)
	}

	rec = Recommend(50, 100, "Summer")
	if rec.StockGap != 70 {
		t.Fatalf("expected stock gap 70, got %d", rec.StockGap)
	}
}

func TestLoadPatterns_MissingFileFallsBack(t *testing.T) {
	table := LoadPatterns("testdata/does-not-exist.json")
	assert.Equal(t, DefaultPatterns(), table)
}

func TestLoadPatterns_OverrideFile(t *testing.T) {
	table := LoadPatterns("testdata/patterns_override.json")

	if got := table.Multiplier("Summer", "Dairy"); got != 1.25 {
		t.Fatalf("expected override multiplier 1.25, got %v", got)
	}
	// The override replaces the whole table; entries it does not carry
	// resolve to 1.0 like any other miss.
	if got := table.Multiplier("Summer", "Beverages"); got != 1.0 {
		t.Fatalf("expected 1.0 for pair absent from override, got %v", got)
	}

	p := New([]models.Product{{Name: "Milk 1L", Category: "Dairy", CurrentPrice: 60, Unit: "pack"}}, table)
	result := p.Predict("Milk 1L", 50, "Summer")
	assert.Equal(t, 250, result.PredictedDemand) // floor(200 * 1.25)
}

func TestCategoryInsights(t *testing.T) {
	p := New([]models.Product{
		{Name: "A", Category: "Dairy", CurrentPrice: 60},
		{Name: "B", Category: "Dairy", CurrentPrice: 35},
		{Name: "C", CurrentPrice: 10},
	}, nil)

	insights := p.CategoryInsights()

	dairy := insights["Dairy"]
	assert.Equal(t, 2, dairy.Count)
	assert.Equal(t, 95.0, dairy.TotalPrice)
	assert.Equal(t, 47.5, dairy.AvgPrice)

	misc := insights["Miscellaneous"]
	assert.Equal(t, 1, misc.Count)
}
