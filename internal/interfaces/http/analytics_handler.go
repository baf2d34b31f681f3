package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/precios-pro/internal/application/usecase"
)

// AnalyticsHandler expone los reportes: tendencia semanal, curva ABC,
// alertas vigentes y el dashboard que los agrupa.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Trend comparación de ingresos de las dos últimas semanas.
func (h *AnalyticsHandler) Trend(c *fiber.Ctx) error {
	out, err := h.uc.GetTrend(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ABC clasificación del catálogo por concentración de ingreso.
func (h *AnalyticsHandler) ABC(c *fiber.Ctx) error {
	out, err := h.uc.GetABC(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Alerts condiciones detectadas sobre el catálogo.
func (h *AnalyticsHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.GetAlerts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dashboard totales de 30 días, tendencia, ABC y alertas en una sola respuesta.
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
