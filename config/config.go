package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	CredentialsFile    string
	ProjectID          string
	ProductsCollection string
	DataDir            string
}

// Load lê a configuração do ambiente, com um .env opcional
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		CredentialsFile:    getEnv("FIREBASE_CREDENTIALS_FILE", "./config/key.json"),
		ProjectID:          os.Getenv("FIRESTORE_PROJECT_ID"),
		ProductsCollection: getEnv("PRODUCTS_COLLECTION", "products"),
		DataDir:            getEnv("DATA_DIR", "./data"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
