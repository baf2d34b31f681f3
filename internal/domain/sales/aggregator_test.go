package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/sales"
)

var testNow = time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)

// saleAt crea una venta de prueba con fecha now - daysAgo.
func saleAt(productID string, qty int, price, cost int64, daysAgo int) *entity.Sale {
	return entity.NewSale(
		"venta-"+productID,
		productID, "Producto "+productID,
		qty,
		decimal.NewFromInt(price),
		decimal.NewFromInt(cost),
		testNow.AddDate(0, 0, -daysAgo),
		"", "efectivo", entity.SaleModeUnit,
	)
}

func TestUnitsSoldInWindow_SumaSoloElProducto(t *testing.T) {
	ledger := []*entity.Sale{
		saleAt("p1", 3, 1000, 600, 5),
		saleAt("p1", 2, 1000, 600, 10),
		saleAt("p2", 7, 500, 200, 5),
		saleAt("p1", 4, 1000, 600, 45), // fuera de la ventana de 30 días
	}

	units := sales.UnitsSoldInWindow("p1", ledger, testNow, 30)
	assert.Equal(t, 5, units, "solo cuentan las ventas de p1 dentro de la ventana")
}

func TestUnitsSoldInWindow_SinCoincidencias(t *testing.T) {
	ledger := []*entity.Sale{saleAt("p2", 7, 500, 200, 5)}

	assert.Equal(t, 0, sales.UnitsSoldInWindow("p1", ledger, testNow, 30),
		"producto sin ventas devuelve 0, nunca falla")
	assert.Equal(t, 0, sales.UnitsSoldInWindow("p1", nil, testNow, 30),
		"libro vacío devuelve 0")
}

// TestUnitsSoldInWindow_BordeInclusivo una venta con exactamente windowDays
// de antigüedad cuenta adentro.
func TestUnitsSoldInWindow_BordeInclusivo(t *testing.T) {
	ledger := []*entity.Sale{
		saleAt("p1", 2, 1000, 600, 30), // exactamente en el borde
		saleAt("p1", 9, 1000, 600, 31), // un día afuera
	}

	assert.Equal(t, 2, sales.UnitsSoldInWindow("p1", ledger, testNow, 30))
}

func TestRevenueInWindow_TotalYPorProducto(t *testing.T) {
	ledger := []*entity.Sale{
		saleAt("p1", 2, 1000, 600, 5),  // revenue 2.000
		saleAt("p2", 3, 500, 200, 10),  // revenue 1.500
		saleAt("p1", 1, 1000, 600, 40), // fuera de ventana
	}

	total := sales.RevenueInWindow(ledger, testNow, 30)
	assert.True(t, total.Equal(decimal.NewFromInt(3_500)),
		"revenue total de la ventana debe ser 3.500, fue %s", total)

	p1 := sales.RevenueInWindowForProduct("p1", ledger, testNow, 30)
	assert.True(t, p1.Equal(decimal.NewFromInt(2_000)),
		"revenue de p1 debe ser 2.000, fue %s", p1)
}

func TestProfitInWindow_UsaTotalesCongelados(t *testing.T) {
	ledger := []*entity.Sale{
		saleAt("p1", 2, 1000, 600, 5), // profit (1000-600)*2 = 800
		saleAt("p2", 3, 500, 200, 10), // profit (500-200)*3 = 900
	}

	profit := sales.ProfitInWindow(ledger, testNow, 30)
	assert.True(t, profit.Equal(decimal.NewFromInt(1_700)),
		"la utilidad de la ventana suma los TotalProfit congelados: %s", profit)
}

func TestRevenueInWindow_LibroVacio(t *testing.T) {
	assert.True(t, sales.RevenueInWindow(nil, testNow, 30).IsZero())
	assert.True(t, sales.ProfitInWindow(nil, testNow, 30).IsZero())
}
