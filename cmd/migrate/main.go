package main

import (
	"athar_commerce/internal/config" // Custom import path (Config)
	"athar_commerce/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())
}
