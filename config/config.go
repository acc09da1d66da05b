package config

import "os"

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// The prediction core itself never reads from here; its tables are injected.
type Config struct {
	JWTSecret    string
	GeminiAPIKey string
	DatabaseURL  string
	Port         string
	ProductsPath string
	PatternsPath string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load fills AppConfig from the environment. godotenv is expected to have
// populated the environment already (see main).
func Load() {
	AppConfig = Config{
		JWTSecret:    os.Getenv("JWT_SECRET"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Port:         getEnv("PORT", "8000"),
		ProductsPath: getEnv("PRODUCTS_PATH", "data/products.json"),
		PatternsPath: getEnv("SEASONAL_PATTERNS_PATH", "data/seasonal_patterns.json"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
