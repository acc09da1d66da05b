package predictor

import (
	"encoding/json"
	"os"

	"app/models"
)

// LoadCatalog reads a product catalog from a JSON file. A missing or
// malformed file yields an empty catalog; predictions then take the
// unknown-product path.
func LoadCatalog(path string) []models.Product {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil
	}
	return products
}
