package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr string
	// DatabaseURL selects the Postgres repositories when set; otherwise the
	// server runs on seeded in-memory collections.
	DatabaseURL string
	// BasketSnapshotPath points the in-memory basket at a JSON file so baskets
	// survive restarts. Empty means no persistence.
	BasketSnapshotPath string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("WHEEL_SHOP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:               addr,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		BasketSnapshotPath: os.Getenv("BASKET_SNAPSHOT_PATH"),
	}
}
