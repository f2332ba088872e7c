package ledger

import (
	"errors"
	"fmt"

	"kebab-inventory-backend/internal/audit"
	"kebab-inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SaveDayRequest struct {
	Entries []EntryInput `json:"entries"`
}

type EntryErrorResponse struct {
	ProductID uint   `json:"product_id"`
	Date      string `json:"date"`
	Error     string `json:"error"`
}

type SaveDayResponse struct {
	Date   string               `json:"date"`
	Saved  int                  `json:"saved"`
	Failed []EntryErrorResponse `json:"failed,omitempty"`
}

// GET /api/inventory/:date
func GetDayHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := GetDay(c.Params("date"))
		if err != nil {
			if errors.Is(err, ErrInvalidDate) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(view)
	}
}

// POST /api/inventory/:date
func SaveDayHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Params("date")

		var body SaveDayRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		saved, failed, err := SaveDay(date, body.Entries)
		if err != nil {
			if errors.Is(err, ErrInvalidDate) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		resp := SaveDayResponse{Date: date, Saved: saved}
		for _, f := range failed {
			resp.Failed = append(resp.Failed, EntryErrorResponse{
				ProductID: f.ProductID,
				Date:      f.Date,
				Error:     f.Err.Error(),
			})
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "inventory_day",
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Day %s saved: %d ok, %d failed", date, saved, len(failed)),
			Data:        body.Entries,
		})

		status := fiber.StatusOK
		if len(failed) > 0 {
			status = fiber.StatusMultiStatus
		}
		return c.Status(status).JSON(resp)
	}
}

// GET /api/reports/daily/:date
func DailyReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := GetDay(c.Params("date"))
		if err != nil {
			if errors.Is(err, ErrInvalidDate) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(Summarize(view))
	}
}
