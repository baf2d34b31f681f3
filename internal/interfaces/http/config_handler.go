package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/precios-pro/internal/application/dto"
	"github.com/tu-usuario/precios-pro/internal/application/usecase"
)

// ConfigHandler maneja la configuración del negocio: los tres mapas
// nombrados, el volumen estimado, los umbrales de alerta y las metas.
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Get devuelve la configuración vigente.
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetEntry agrega o reemplaza una entrada del mapa nombrado en la ruta
// (operating_percentages, fixed_monthly_costs o tool_costs).
func (h *ConfigHandler) SetEntry(c *fiber.Ctx) error {
	var in dto.SetNamedAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetEntry(c.UserContext(), c.Params("map"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveEntry elimina una entrada del mapa nombrado en la ruta.
func (h *ConfigHandler) RemoveEntry(c *fiber.Ctx) error {
	out, err := h.uc.RemoveEntry(c.UserContext(), c.Params("map"), c.Params("key"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetVolume cambia el volumen mensual estimado de ventas.
func (h *ConfigHandler) SetVolume(c *fiber.Ctx) error {
	var in dto.SetVolumeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetVolume(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetThresholds devuelve los umbrales de alerta.
func (h *ConfigHandler) GetThresholds(c *fiber.Ctx) error {
	out, err := h.uc.GetThresholds(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveThresholds reemplaza los umbrales de alerta.
func (h *ConfigHandler) SaveThresholds(c *fiber.Ctx) error {
	var in dto.ThresholdsDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SaveThresholds(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetGoals devuelve las metas mensuales.
func (h *ConfigHandler) GetGoals(c *fiber.Ctx) error {
	out, err := h.uc.GetGoals(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveGoals reemplaza las metas mensuales.
func (h *ConfigHandler) SaveGoals(c *fiber.Ctx) error {
	var in dto.GoalsDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SaveGoals(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
