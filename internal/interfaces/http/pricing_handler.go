package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/precios-pro/internal/application/dto"
	"github.com/tu-usuario/precios-pro/internal/application/usecase"
	"github.com/tu-usuario/precios-pro/internal/domain/pricing"
)

// PricingHandler expone el motor de precios: cálculo por producto, cálculo
// con persistencia del precio sugerido, y el simulador sobre valores crudos.
type PricingHandler struct {
	uc *usecase.PricingUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Compute calcula precio y utilidad para un producto sin persistir.
func (h *PricingHandler) Compute(c *fiber.Ctx) error {
	out, err := h.uc.Compute(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Apply calcula y guarda el precio y la utilidad sobre el producto.
func (h *PricingHandler) Apply(c *fiber.Ctx) error {
	out, err := h.uc.ComputeAndSave(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Preview simulador: despeja el precio para valores capturados al vuelo.
func (h *PricingHandler) Preview(c *fiber.Ctx) error {
	var in dto.PricingPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Preview(c.UserContext(), pricing.PricingInput{
		UnitCost:         in.UnitCost,
		ExtraCost:        in.ExtraCost,
		DesiredMarginPct: in.DesiredMarginPct,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
