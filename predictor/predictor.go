// Package predictor computes rule-based seasonal restock recommendations.
// Predictors are immutable once constructed and safe for concurrent use.
package predictor

import (
	"fmt"
	"math"

	"app/models"
)

// Predictor resolves a product's category and seasonal multiplier, estimates
// demand, and derives a stock recommendation. The catalog and pattern table
// are injected at construction and never mutated.
type Predictor struct {
	patterns PatternTable
	catalog  []models.Product
}

// New builds a Predictor over the given catalog. A nil pattern table selects
// the built-in defaults.
func New(catalog []models.Product, patterns PatternTable) *Predictor {
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	return &Predictor{patterns: patterns, catalog: catalog}
}

// Predict estimates demand for a product in the given season and derives a
// stock recommendation. currentStock must already be validated as
// non-negative by the caller; productName and season are free-form.
func (p *Predictor) Predict(productName string, currentStock int, season string) models.PredictionResult {
	product, found := p.find(productName)
	if !found {
		return p.predictUnknown(productName, currentStock, season)
	}

	category := product.Category
	if category == "" {
		category = "Groceries"
	}

	multiplier := p.patterns.Multiplier(season, category)
	predictedDemand := int(float64(BaseDemand(category)) * multiplier)

	return models.PredictionResult{
		Product:            productName,
		Category:           category,
		CurrentStock:       currentStock,
		Season:             season,
		PredictedDemand:    predictedDemand,
		SeasonalMultiplier: multiplier,
		Recommendation:     Recommend(currentStock, predictedDemand, season),
		Price:              product.CurrentPrice,
		Unit:               product.Unit,
	}
}

// predictUnknown handles products absent from the catalog with a season-only
// factor against a flat base of 100.
func (p *Predictor) predictUnknown(productName string, currentStock int, season string) models.PredictionResult {
	factor, ok := fallbackSeasonFactor[season]
	if !ok {
		factor = 1.0
	}
	predictedDemand := int(100 * factor)

	return models.PredictionResult{
		Product:            productName,
		Category:           "Miscellaneous",
		CurrentStock:       currentStock,
		Season:             season,
		PredictedDemand:    predictedDemand,
		SeasonalMultiplier: factor,
		Recommendation:     Recommend(currentStock, predictedDemand, season),
		Price:              0,
		Unit:               "pack",
	}
}

func (p *Predictor) find(name string) (models.Product, bool) {
	for _, product := range p.catalog {
		if product.Name == name {
			return product, true
		}
	}
	return models.Product{}, false
}

// Recommend derives the stock-action decision from current stock and
// predicted demand. The season parameter is part of the contract but does not
// influence the computation.
func Recommend(currentStock, predictedDemand int, season string) models.Recommendation {
	safetyStock := int(float64(predictedDemand) * 0.2)
	reorderPoint := predictedDemand
	optimalLevel := predictedDemand + safetyStock

	rec := models.Recommendation{
		OptimalLevel:  optimalLevel,
		ReorderPoint:  reorderPoint,
		SafetyStock:   safetyStock,
		RequiredStock: optimalLevel,
	}

	// Comparison operators are strict on both boundaries: stock equal to the
	// reorder point or to 1.5x the optimal level stays in MAINTAIN.
	switch {
	case currentStock < reorderPoint:
		rec.Decision = models.DecisionAddStock
		rec.QuantityAction = optimalLevel - currentStock
		rec.Advice = fmt.Sprintf("Add %d units", rec.QuantityAction)
	case float64(currentStock) > float64(optimalLevel)*1.5:
		rec.Decision = models.DecisionReduceStock
		rec.QuantityAction = currentStock - optimalLevel
		rec.Advice = fmt.Sprintf("Reduce by %d units", rec.QuantityAction)
	default:
		rec.Decision = models.DecisionMaintain
		rec.QuantityAction = currentStock
		rec.Advice = fmt.Sprintf("Maintain %d units", currentStock)
	}

	if gap := optimalLevel - currentStock; gap > 0 {
		rec.StockGap = gap
	}

	return rec
}

// CategoryInsights folds the catalog into per-category product counts and
// average prices.
func (p *Predictor) CategoryInsights() map[string]models.CategoryInsight {
	insights := make(map[string]models.CategoryInsight)
	for _, product := range p.catalog {
		category := product.Category
		if category == "" {
			category = "Miscellaneous"
		}
		insight := insights[category]
		insight.Count++
		insight.TotalPrice += product.CurrentPrice
		insights[category] = insight
	}
	for category, insight := range insights {
		if insight.Count > 0 {
			insight.AvgPrice = roundTo2(insight.TotalPrice / float64(insight.Count))
			insights[category] = insight
		}
	}
	return insights
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
