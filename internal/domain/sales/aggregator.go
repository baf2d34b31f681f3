// Package sales agrega el libro de ventas por ventanas móviles de días y
// clasifica la tendencia de ingresos. Todas las funciones son puras y reciben
// el "ahora" de referencia como parámetro para ser testeables.
package sales

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
)

// DefaultWindowDays ventana estándar de agregados móviles.
const DefaultWindowDays = 30

// inWindow reporta si la venta cae en [now - windowDays, ∞). El inicio de la
// ventana es inclusivo: una venta con exactamente windowDays de antigüedad
// cuenta adentro.
func inWindow(s *entity.Sale, now time.Time, windowDays int) bool {
	start := now.AddDate(0, 0, -windowDays)
	return !s.Date.Before(start)
}

// UnitsSoldInWindow suma las cantidades vendidas de un producto dentro de la
// ventana. Libro vacío o sin coincidencias devuelve 0.
func UnitsSoldInWindow(productID string, ledger []*entity.Sale, now time.Time, windowDays int) int {
	units := 0
	for _, s := range ledger {
		if s.ProductID == productID && inWindow(s, now, windowDays) {
			units += s.Quantity
		}
	}
	return units
}

// RevenueInWindow suma TotalRevenue dentro de la ventana, sobre todo el libro.
func RevenueInWindow(ledger []*entity.Sale, now time.Time, windowDays int) decimal.Decimal {
	total := decimal.Zero
	for _, s := range ledger {
		if inWindow(s, now, windowDays) {
			total = total.Add(s.TotalRevenue)
		}
	}
	return total
}

// RevenueInWindowForProduct suma TotalRevenue dentro de la ventana filtrando
// por producto.
func RevenueInWindowForProduct(productID string, ledger []*entity.Sale, now time.Time, windowDays int) decimal.Decimal {
	total := decimal.Zero
	for _, s := range ledger {
		if s.ProductID == productID && inWindow(s, now, windowDays) {
			total = total.Add(s.TotalRevenue)
		}
	}
	return total
}

// ProfitInWindow suma TotalProfit dentro de la ventana, sobre todo el libro.
func ProfitInWindow(ledger []*entity.Sale, now time.Time, windowDays int) decimal.Decimal {
	total := decimal.Zero
	for _, s := range ledger {
		if inWindow(s, now, windowDays) {
			total = total.Add(s.TotalProfit)
		}
	}
	return total
}

// revenueBetween suma TotalRevenue en [start, end) — usado por la tendencia,
// que compara ventanas consecutivas semiabiertas.
func revenueBetween(ledger []*entity.Sale, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, s := range ledger {
		if !s.Date.Before(start) && s.Date.Before(end) {
			total = total.Add(s.TotalRevenue)
		}
	}
	return total
}
