package main

import (
	"github.com/boetepot/boetepot-backend/config"
	"github.com/boetepot/boetepot-backend/utils/logger"
)

// Standalone migration runner: connects, migrates and seeds the admin
// credential, then exits.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("config: %v", err)
	}

	if _, err := config.SetupDatabase(cfg); err != nil {
		logger.Log.Fatalf("migration failed: %v", err)
	}

	logger.Info("Database migration completed")
}
