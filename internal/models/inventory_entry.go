package models

import "time"

// InventoryEntry: one product's skewer counters for one calendar day.
// (product_id, date) is unique; a save fully replaces the four counters.
type InventoryEntry struct {
	ID         uint `gorm:"primaryKey"`
	ProductID  uint `gorm:"not null;uniqueIndex:idx_inventory_product_date,priority:1"`
	Product    Product
	Date       string `gorm:"size:10;not null;uniqueIndex:idx_inventory_product_date,priority:2"` // "2006-01-02"
	Initial    int    `gorm:"not null;default:0"`
	Production int    `gorm:"not null;default:0"`
	Shipment   int    `gorm:"not null;default:0"`
	Returns    int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
