package catalog

import (
	"errors"
	"fmt"

	"kebab-inventory-backend/internal/audit"
	"kebab-inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProductResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CreateProductRequest struct {
	Name string `json:"name"`
}

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := ListProducts()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, ProductResponse{ID: p.ID, Name: p.Name})
		}
		return c.JSON(res)
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		p, err := AddProduct(body.Name)
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicateProduct):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			case errors.Is(err, ErrEmptyProductName):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "product",
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Product added: %s", p.Name),
			Data:        p,
		})

		return c.Status(fiber.StatusCreated).JSON(ProductResponse{ID: p.ID, Name: p.Name})
	}
}
