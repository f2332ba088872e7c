package main

import (
	"log"
	"strings"

	"kebab-inventory-backend/internal/audit"
	"kebab-inventory-backend/internal/catalog"
	"kebab-inventory-backend/internal/config"
	"kebab-inventory-backend/internal/database"
	"kebab-inventory-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	api := app.Group("/api")

	// Catalog
	api.Get("/products", catalog.ListProductsHandler())
	api.Post("/products", catalog.CreateProductHandler())

	// Daily ledger
	api.Get("/inventory/:date", ledger.GetDayHandler())
	api.Post("/inventory/:date", ledger.SaveDayHandler())

	// Daily report
	api.Get("/reports/daily/:date", ledger.DailyReportHandler())

	// Audit logs
	api.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
