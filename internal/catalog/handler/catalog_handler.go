package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/ErDev77/pc-configurator-sub001/internal/catalog/domain"
	"github.com/ErDev77/pc-configurator-sub001/internal/catalog/dto"
	apperrors "github.com/ErDev77/pc-configurator-sub001/internal/errors"
	"github.com/ErDev77/pc-configurator-sub001/internal/notify"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type CatalogHandler struct {
	repo  domain.CatalogRepository
	email notify.Sender
	chat  notify.Sender
}

func NewCatalogHandler(repo domain.CatalogRepository, email, chat notify.Sender) *CatalogHandler {
	return &CatalogHandler{repo: repo, email: email, chat: chat}
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.repo.ListProducts(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("list products failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

func (h *CatalogHandler) ListCompatibility(c *fiber.Ctx) error {
	componentID := c.QueryInt("componentId")

	pairs, err := h.repo.ListCompatibility(c.Context(), componentID)
	if err != nil {
		log.Error().Err(err).Msg("list compatibility failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(pairs)
}

func (h *CatalogHandler) CreateCompatibility(c *fiber.Ctx) error {
	var input dto.CreateCompatibilityInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Component1ID <= 0 || input.Component2ID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "component1Id and component2Id are required"})
	}

	pair, err := h.repo.CreateCompatibility(c.Context(), input.Component1ID, input.Component2ID)
	if err != nil {
		log.Error().Err(err).Msg("create compatibility failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(pair)
}

func (h *CatalogHandler) ListConfigurations(c *fiber.Ctx) error {
	configs, err := h.repo.ListConfigurations(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("list configurations failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(configs)
}

func (h *CatalogHandler) CreateConfiguration(c *fiber.Ctx) error {
	var input dto.CreateConfigurationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if len(input.Products) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": apperrors.ErrConfigurationEmpty.Error()})
	}

	cfg := domain.Configuration{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Custom:      input.Custom,
	}

	created, err := h.repo.CreateConfiguration(c.Context(), &cfg, input.Products)
	if err != nil {
		log.Error().Err(err).Msg("create configuration failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CatalogHandler) GetCustomConfiguration(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	cfg, err := h.repo.GetCustomConfiguration(c.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("get custom configuration failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	if cfg == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": apperrors.ErrConfigurationAbsent.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(cfg)
}

func (h *CatalogHandler) ListConfigurationProducts(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	links, err := h.repo.ListConfigurationProducts(c.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("list configuration products failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(links)
}

func (h *CatalogHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.repo.ListOrders(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("list orders failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *CatalogHandler) CreateOrder(c *fiber.Ctx) error {
	var input dto.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.CustomerName == "" || input.Email == "" || input.Phone == "" || input.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "customerName, email, phone and address are required"})
	}
	if len(input.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "items must not be empty"})
	}

	order := domain.Order{
		CustomerName: input.CustomerName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		Items:        input.Items,
		Total:        input.Total,
	}

	created, err := h.repo.CreateOrder(c.Context(), &order)
	if err != nil {
		log.Error().Err(err).Msg("create order failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	// A failed notification never fails the order.
	h.notifyNewOrder(c.Context(), created)

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CatalogHandler) notifyNewOrder(ctx context.Context, order *domain.Order) {
	subject := fmt.Sprintf("New order #%d", order.ID)
	message := formatOrder(order)

	if err := h.email.Send(ctx, subject, message); err != nil {
		log.Error().Err(err).Int("order_id", order.ID).Msg("order email notification failed")
	}
	if err := h.chat.Send(ctx, subject, message); err != nil {
		log.Error().Err(err).Int("order_id", order.ID).Msg("order chat notification failed")
	}
}

func formatOrder(order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer: %s\nEmail: %s\nPhone: %s\nAddress: %s\n\nItems:\n",
		order.CustomerName, order.Email, order.Phone, order.Address)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %s x%d - %.2f\n", item.Name, item.Quantity, item.Price)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f", order.Total)

	return b.String()
}
