package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the public catalog surface plus the guarded
// admin export. Admin routes must be registered after the admin guard.
func RegisterRoutes(app *fiber.App, h *CatalogHandler) {
	api := app.Group("/api")

	api.Get("/products", h.ListProducts)

	api.Get("/compatibility", h.ListCompatibility)
	api.Post("/compatibility", h.CreateCompatibility)

	api.Get("/configurations", h.ListConfigurations)
	api.Post("/configurations", h.CreateConfiguration)
	api.Get("/configurations/custom/:id", h.GetCustomConfiguration)
	api.Get("/configuration_products/:id", h.ListConfigurationProducts)

	api.Get("/orders", h.ListOrders)
	api.Post("/orders", h.CreateOrder)

	api.Get("/admin/orders/export", h.ExportOrders)
}
