package audit

import (
	"fmt"

	"kebab-inventory-backend/internal/database"
	"kebab-inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?entity_type=inventory_day&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if entityType := c.Query("entity_type"); entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}

		limit := 50
		if limitStr := c.Query("limit"); limitStr != "" {
			if _, err := fmt.Sscan(limitStr, &limit); err != nil || limit < 1 || limit > 500 {
				return fiber.NewError(fiber.StatusBadRequest, "limit must be between 1 and 500")
			}
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at DESC, id DESC").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "audit logs could not be listed")
		}
		return c.JSON(logs)
	}
}
