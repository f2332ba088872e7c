package catalog

import (
	"errors"
	"fmt"
	"strings"

	"kebab-inventory-backend/internal/database"
	"kebab-inventory-backend/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateProduct is returned when an added name already exists (exact,
// case-sensitive match) so handlers can respond with 409.
var ErrDuplicateProduct = errors.New("product name already exists")

// ErrEmptyProductName rejects blank names before they reach storage.
var ErrEmptyProductName = errors.New("product name is required")

// ListProducts returns every product in catalog order. Catalog order is
// insertion order, which for the seeded set is the seed-list order.
func ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := database.DB.Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("products could not be listed: %w", err)
	}
	return products, nil
}

// AddProduct creates a product with a fresh id. The unique index on name
// backs the duplicate check against racing writers.
func AddProduct(name string) (models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Product{}, ErrEmptyProductName
	}

	var existing models.Product
	err := database.DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return models.Product{}, ErrDuplicateProduct
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, fmt.Errorf("product lookup failed: %w", err)
	}

	p := models.Product{Name: name}
	if err := database.DB.Create(&p).Error; err != nil {
		return models.Product{}, fmt.Errorf("product could not be created: %w", err)
	}
	return p, nil
}
