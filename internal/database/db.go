package database

import (
	"fmt"
	"log"

	"kebab-inventory-backend/internal/config"
	"kebab-inventory-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// DefaultProducts is the fixed catalog seeded on first run, in catalog order.
var DefaultProducts = []string{
	"Kabab Kobideh",
	"Fileh Zafrani",
	"Fileh Mast",
	"Ba Ostokhan",
	"Shishlik",
	"Barg",
}

// Open connects to the SQLite file at path, migrates the schema and seeds the
// default catalog. Safe to call on every startup: migration and seeding are
// both insert-if-absent.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("storage unavailable at %s: %w", path, err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.InventoryEntry{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	for _, name := range DefaultProducts {
		var p models.Product
		if err := db.FirstOrCreate(&p, models.Product{Name: name}).Error; err != nil {
			return nil, fmt.Errorf("seeding product %q failed: %w", name, err)
		}
	}

	return db, nil
}

// Init opens the shared handle used by the services. A storage failure here
// is fatal: nothing downstream can run without the catalog.
func Init(cfg *config.Config) {
	var err error
	DB, err = Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}
	log.Println("Database ready:", cfg.DatabasePath)
}
