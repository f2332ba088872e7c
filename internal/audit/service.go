package audit

import (
	"encoding/json"
	"fmt"

	"kebab-inventory-backend/internal/database"
	"kebab-inventory-backend/internal/models"
)

type LogOptions struct {
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Data        any
}

// WriteLog appends one audit row for a mutating operation.
func WriteLog(opts LogOptions) error {
	dataStr := "null"
	if opts.Data != nil {
		if b, err := json.Marshal(opts.Data); err == nil {
			dataStr = string(b)
		}
	}

	row := models.AuditLog{
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		Data:        dataStr,
	}

	if err := database.DB.Create(&row).Error; err != nil {
		return fmt.Errorf("audit log could not be written: %w", err)
	}
	return nil
}
