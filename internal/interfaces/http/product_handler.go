package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agentes-ledger/internal/application/catalog"
	"github.com/tu-usuario/agentes-ledger/internal/application/dto"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	catalog *catalog.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(cat *catalog.UseCase) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

// Create registra un producto con su precio estándar inicial.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.catalog.AddProduct(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista el catálogo completo.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.catalog.ListProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdatePrice cambia el precio estándar vigente (solo hacia adelante).
func (h *ProductHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.UpdatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.catalog.SetProductPrice(c.Context(), c.Params("name"), in.Price)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
