package db

import (
	"fmt"

	"auto360_server/internal/models"
	"auto360_server/pkg/colors"

	"gorm.io/gorm"
)

// RunMigrations creates or updates all tables
func RunMigrations(db *gorm.DB) error {
	colors.PrintSubHeader("Running database migrations")

	// Base tables first, then tables with foreign keys
	if err := db.AutoMigrate(&models.Store{}); err != nil {
		return fmt.Errorf("store table migration failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("user table migration failed: %v", err)
	}
	if err := db.AutoMigrate(&models.StoreUser{}); err != nil {
		return fmt.Errorf("store_users table migration failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Device{}); err != nil {
		return fmt.Errorf("device table migration failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CatalogEntry{}); err != nil {
		return fmt.Errorf("catalog table migration failed: %v", err)
	}
	if err := db.AutoMigrate(&models.IntakeFile{}); err != nil {
		return fmt.Errorf("intake_files table migration failed: %v", err)
	}
	if err := db.AutoMigrate(&models.StoreSetting{}); err != nil {
		return fmt.Errorf("settings_store table migration failed: %v", err)
	}
	if err := db.AutoMigrate(&models.HubItem{}); err != nil {
		return fmt.Errorf("info_hub_items table migration failed: %v", err)
	}

	if err := ensureCatalogSearchIndexes(db); err != nil {
		return fmt.Errorf("failed to create catalog search indexes: %v", err)
	}

	colors.PrintSuccess("Database migrations completed successfully")
	return nil
}

// ensureCatalogSearchIndexes adds trigram indexes for the ILIKE contains
// search on the catalog. pg_trgm may be unavailable on restricted
// databases; the search still works without the indexes, so failures here
// only log a warning.
func ensureCatalogSearchIndexes(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pg_trgm").Error; err != nil {
		colors.PrintWarning("pg_trgm extension unavailable, catalog search will be unindexed: %v", err)
		return nil
	}

	indexes := map[string]string{
		"idx_catalog_clean_trgm": "CREATE INDEX IF NOT EXISTS idx_catalog_clean_trgm ON parts_master_catalog USING gin (part_number_clean gin_trgm_ops)",
		"idx_catalog_desc_trgm":  "CREATE INDEX IF NOT EXISTS idx_catalog_desc_trgm ON parts_master_catalog USING gin (description gin_trgm_ops)",
	}
	for name, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			colors.PrintWarning("Could not create index %s: %v", name, err)
		}
	}
	return nil
}
