package media

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	store Uploader
}

func NewHandler(store Uploader) *Handler {
	return &Handler{store: store}
}

// Upload accepts a multipart file and returns the hosted image URL.
func (h *Handler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	defer file.Close()

	url, err := h.store.Upload(c.Context(), file)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("image upload failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
}

func (h *Handler) StorageUsage(c *fiber.Ctx) error {
	usage, err := h.store.Usage(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("storage usage query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(usage)
}

func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Post("/api/upload", h.Upload)
	app.Get("/api/admin/settings/storage", h.StorageUsage)
}
