package predictor

import (
	"encoding/json"
	"os"
)

// PatternTable maps season -> category -> demand multiplier. Lookups are
// case-sensitive and total: any miss resolves to 1.0.
type PatternTable map[string]map[string]float64

// Multiplier returns the configured multiplier for a (season, category) pair,
// or 1.0 when either level of the lookup misses.
func (t PatternTable) Multiplier(season, category string) float64 {
	if categories, ok := t[season]; ok {
		if m, ok := categories[category]; ok {
			return m
		}
	}
	return 1.0
}

// DefaultPatterns returns the built-in seasonal pattern table, used when no
// external table is supplied.
func DefaultPatterns() PatternTable {
	return PatternTable{
		"Summer": {
			"Beverages":     1.5,
			"Fruits":        1.4,
			"Vegetables":    1.3,
			"Groceries":     1.0,
			"Personal Care": 1.2,
		},
		"Winter": {
			"Beverages":     0.8,
			"Fruits":        0.9,
			"Vegetables":    1.2,
			"Groceries":     1.1,
			"Personal Care": 1.0,
		},
		"Monsoon": {
			"Beverages":     1.2,
			"Fruits":        1.1,
			"Vegetables":    1.0,
			"Groceries":     1.3,
			"Personal Care": 1.4,
		},
		"Regular": {
			"Beverages":     1.0,
			"Fruits":        1.0,
			"Vegetables":    1.0,
			"Groceries":     1.0,
			"Personal Care": 1.0,
		},
	}
}

// LoadPatterns reads a pattern table from a JSON file. A missing or malformed
// file silently falls back to the built-in defaults.
func LoadPatterns(path string) PatternTable {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPatterns()
	}
	var table PatternTable
	if err := json.Unmarshal(data, &table); err != nil || len(table) == 0 {
		return DefaultPatterns()
	}
	return table
}

// categoryBaseDemand holds the per-category base unit demand.
var categoryBaseDemand = map[string]int{
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

const defaultBaseDemand = 100

// BaseDemand returns the base unit demand for a category, or 100 for unknown
// categories.
func BaseDemand(category string) int {
	if d, ok := categoryBaseDemand[category]; ok {
		return d
	}
	return defaultBaseDemand
}

// fallbackSeasonFactor is the coarser season-only table applied to products
// that are not in the catalog. It is intentionally separate from PatternTable
// and must not be unified with it: doing so would change the output for
// unknown products.
var fallbackSeasonFactor = map[string]float64{
	"Summer":  1.3,
	"Winter":  0.9,
	"Monsoon": 1.2,
	"Regular": 1.0,
}
