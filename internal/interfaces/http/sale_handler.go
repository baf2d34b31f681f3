package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/precios-pro/internal/application/dto"
	"github.com/tu-usuario/precios-pro/internal/application/usecase"
)

// SaleHandler maneja el libro de ventas: registro, consulta y el resumen de
// ventana por producto.
type SaleHandler struct {
	uc *usecase.SalesUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SalesUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Register registra una venta y descuenta stock.
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una entrada del libro.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// WindowSummary unidades e ingresos del producto en la ventana pedida
// (window_days, 0 o ausente usa la ventana estándar de 30).
func (h *SaleHandler) WindowSummary(c *fiber.Ctx) error {
	out, err := h.uc.WindowSummary(c.UserContext(), c.Params("id"), c.QueryInt("window_days", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
