// Package analytics reduces persisted analysis and chat history into the
// distribution summaries shown on the dashboard.
package analytics

import (
	"sort"

	"app/models"
)

const (
	topProductsLimit = 10
	recentLimit      = 20
)

// Summarize folds the given records into an AnalyticsSummary. Inputs are not
// mutated; analyses are expected newest-first (the store's read order). Empty
// input yields a zero-valued summary with empty maps.
func Summarize(analyses []models.AnalysisRecord, chats []models.ChatRecord) models.AnalyticsSummary {
	summary := models.AnalyticsSummary{
		TotalAnalyses:  len(analyses),
		Categories:     map[string]int{},
		Seasons:        map[string]int{},
		Decisions:      map[string]int{},
		TopProducts:    []models.ProductCount{},
		RecentAnalyses: []models.AnalysisRecord{},
		TotalChats:     len(chats),
		ChatSources:    map[string]int{},
	}

	productCounts := map[string]int{}
	productOrder := []string{}

	for _, a := range analyses {
		summary.Categories[a.Category]++
		summary.Seasons[a.Season]++
		if a.Decision != "" {
			summary.Decisions[a.Decision]++
		}
		if _, seen := productCounts[a.ProductName]; !seen {
			productOrder = append(productOrder, a.ProductName)
		}
		productCounts[a.ProductName]++
	}

	summary.TopProducts = topProducts(productCounts, productOrder)
	summary.RecentAnalyses = recentWindow(analyses)

	for _, c := range chats {
		summary.ChatSources[c.Source]++
	}

	return summary
}

// topProducts ranks products by analysis count. Ties keep the first-seen
// order of the record stream, which makes the ranking stable across calls.
func topProducts(counts map[string]int, order []string) []models.ProductCount {
	ranked := make([]models.ProductCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, models.ProductCount{ProductName: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}
	return ranked
}

// recentWindow bounds the newest-first analyses to the display window.
func recentWindow(analyses []models.AnalysisRecord) []models.AnalysisRecord {
	recent := make([]models.AnalysisRecord, 0, recentLimit)
	for _, a := range analyses {
		if len(recent) == recentLimit {
			break
		}
		recent = append(recent, a)
	}
	return recent
}
