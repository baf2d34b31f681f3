package analytics

import (
	"fmt"
	"time"

	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/sales"
)

// Reglas de alerta.
const (
	AlertLowMargin     = "low_margin"
	AlertLowStock      = "low_stock"
	AlertNoRecentSales = "no_recent_sales"
	AlertPriceGap      = "price_gap"
)

// Severidades.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Alert una condición detectada sobre un producto. Las reglas son
// independientes y pueden dispararse varias para el mismo producto; la lista
// no trae orden ni deduplicación.
type Alert struct {
	ProductID   string
	ProductName string
	Rule        string
	Severity    string
	Message     string
}

// EvaluateAlerts recorre el catálogo comparando métricas contra los umbrales
// configurados. El margen se calcula sobre el precio de venta cacheado; con
// precio en cero el margen es indefinido y la regla se omite para ese
// producto.
func EvaluateAlerts(products []*entity.Product, ledger []*entity.Sale, th entity.AlertThresholds, now time.Time) []Alert {
	var alerts []Alert
	for _, p := range products {
		if p.SalePrice.IsPositive() {
			margin := p.SalePrice.Sub(p.EffectiveUnitCost()).Div(p.SalePrice).Mul(hundred)
			if margin.LessThan(th.MinMarginPct) {
				alerts = append(alerts, Alert{
					ProductID:   p.ID,
					ProductName: p.Name,
					Rule:        AlertLowMargin,
					Severity:    SeverityWarning,
					Message: fmt.Sprintf("margen %s%% por debajo del mínimo %s%%",
						margin.Round(2), th.MinMarginPct),
				})
			}
		}

		if p.StockQuantity < th.MinStock {
			alerts = append(alerts, Alert{
				ProductID:   p.ID,
				ProductName: p.Name,
				Rule:        AlertLowStock,
				Severity:    SeverityCritical,
				Message:     fmt.Sprintf("stock %d por debajo del mínimo %d", p.StockQuantity, th.MinStock),
			})
		}

		if sales.UnitsSoldInWindow(p.ID, ledger, now, sales.DefaultWindowDays) == 0 {
			alerts = append(alerts, Alert{
				ProductID:   p.ID,
				ProductName: p.Name,
				Rule:        AlertNoRecentSales,
				Severity:    SeverityWarning,
				Message:     "sin ventas reales en los últimos 30 días",
			})
		}

		if p.CompetitorPrice.IsPositive() {
			gap := p.SalePrice.Sub(p.CompetitorPrice).Div(p.CompetitorPrice).Mul(hundred)
			if gap.Abs().GreaterThan(th.CompetitorGapPct) {
				direction := "por encima de"
				if gap.IsNegative() {
					direction = "por debajo de"
				}
				alerts = append(alerts, Alert{
					ProductID:   p.ID,
					ProductName: p.Name,
					Rule:        AlertPriceGap,
					Severity:    SeverityWarning,
					Message: fmt.Sprintf("precio %s%% %s la competencia (umbral %s%%)",
						gap.Abs().Round(2), direction, th.CompetitorGapPct),
				})
			}
		}
	}
	return alerts
}
