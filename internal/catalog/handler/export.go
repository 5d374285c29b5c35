package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const ordersSheet = "Orders"

// ExportOrders renders all orders as an .xlsx workbook for the admin
// panel's reporting download.
func (h *CatalogHandler) ExportOrders(c *fiber.Ctx) error {
	orders, err := h.repo.ListOrders(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("export orders failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", ordersSheet)

	headers := []string{"ID", "Customer", "Email", "Phone", "Address", "Items", "Total", "Status", "Created"}
	for col, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(ordersSheet, cell, title); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	for i, order := range orders {
		items := ""
		for _, item := range order.Items {
			if items != "" {
				items += "; "
			}
			items += fmt.Sprintf("%s x%d", item.Name, item.Quantity)
		}

		values := []any{
			order.ID, order.CustomerName, order.Email, order.Phone,
			order.Address, items, order.Total, order.Status,
			order.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(ordersSheet, cell, value); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error().Err(err).Msg("write orders workbook failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.xlsx"`)

	return c.Send(buf.Bytes())
}
