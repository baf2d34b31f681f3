package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/precios-pro/internal/domain/analytics"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
)

func buildThresholds() entity.AlertThresholds {
	return entity.AlertThresholds{
		MinMarginPct:     decimal.NewFromInt(20),
		MinStock:         5,
		CompetitorGapPct: decimal.NewFromInt(10),
	}
}

func rulesFor(alerts []analytics.Alert, productID string) []string {
	var rules []string
	for _, a := range alerts {
		if a.ProductID == productID {
			rules = append(rules, a.Rule)
		}
	}
	return rules
}

func TestEvaluateAlerts_MargenBajo(t *testing.T) {
	p := &entity.Product{
		ID:            "p1",
		Name:          "Margen bajo",
		SalePrice:     decimal.NewFromInt(1000),
		PurchaseCost:  decimal.NewFromInt(900), // margen 10% < 20%
		StockQuantity: 50,
	}
	ledger := []*entity.Sale{saleRecent("p1")}

	alerts := analytics.EvaluateAlerts([]*entity.Product{p}, ledger, buildThresholds(), testNow)

	assert.Equal(t, []string{analytics.AlertLowMargin}, rulesFor(alerts, "p1"))
}

// TestEvaluateAlerts_PrecioCeroOmiteMargen con precio 0 el margen es
// indefinido: la regla se salta, las demás siguen evaluándose.
func TestEvaluateAlerts_PrecioCeroOmiteMargen(t *testing.T) {
	p := &entity.Product{
		ID:            "p1",
		Name:          "Sin precio",
		SalePrice:     decimal.Zero,
		PurchaseCost:  decimal.NewFromInt(900),
		StockQuantity: 2, // bajo stock sí dispara
	}
	ledger := []*entity.Sale{saleRecent("p1")}

	alerts := analytics.EvaluateAlerts([]*entity.Product{p}, ledger, buildThresholds(), testNow)

	rules := rulesFor(alerts, "p1")
	assert.NotContains(t, rules, analytics.AlertLowMargin)
	assert.Contains(t, rules, analytics.AlertLowStock)
}

func TestEvaluateAlerts_SinVentasRecientes(t *testing.T) {
	p := &entity.Product{
		ID:            "p1",
		Name:          "Estancado",
		SalePrice:     decimal.NewFromInt(1000),
		PurchaseCost:  decimal.NewFromInt(500),
		StockQuantity: 50,
	}

	alerts := analytics.EvaluateAlerts([]*entity.Product{p}, nil, buildThresholds(), testNow)

	assert.Equal(t, []string{analytics.AlertNoRecentSales}, rulesFor(alerts, "p1"))
}

// TestEvaluateAlerts_BrechaCompetencia dispara en ambas direcciones y marca
// si el precio propio está por encima o por debajo.
func TestEvaluateAlerts_BrechaCompetencia(t *testing.T) {
	caro := &entity.Product{
		ID: "caro", Name: "Caro",
		SalePrice:       decimal.NewFromInt(1200),
		PurchaseCost:    decimal.NewFromInt(500),
		StockQuantity:   50,
		CompetitorPrice: decimal.NewFromInt(1000), // +20% > 10%
	}
	barato := &entity.Product{
		ID: "barato", Name: "Barato",
		SalePrice:       decimal.NewFromInt(800),
		PurchaseCost:    decimal.NewFromInt(300),
		StockQuantity:   50,
		CompetitorPrice: decimal.NewFromInt(1000), // -20%
	}
	ledger := []*entity.Sale{saleRecent("caro"), saleRecent("barato")}

	alerts := analytics.EvaluateAlerts([]*entity.Product{caro, barato}, ledger, buildThresholds(), testNow)

	require.Equal(t, []string{analytics.AlertPriceGap}, rulesFor(alerts, "caro"))
	require.Equal(t, []string{analytics.AlertPriceGap}, rulesFor(alerts, "barato"))

	for _, a := range alerts {
		if a.ProductID == "caro" {
			assert.Contains(t, a.Message, "por encima")
		}
		if a.ProductID == "barato" {
			assert.Contains(t, a.Message, "por debajo")
		}
	}
}

// TestEvaluateAlerts_CompetidorDesconocido precio de competencia 0 significa
// "sin dato": la regla de brecha no aplica.
func TestEvaluateAlerts_CompetidorDesconocido(t *testing.T) {
	p := &entity.Product{
		ID: "p1", Name: "Sin referencia",
		SalePrice:     decimal.NewFromInt(1000),
		PurchaseCost:  decimal.NewFromInt(500),
		StockQuantity: 50,
	}
	ledger := []*entity.Sale{saleRecent("p1")}

	alerts := analytics.EvaluateAlerts([]*entity.Product{p}, ledger, buildThresholds(), testNow)
	assert.Empty(t, rulesFor(alerts, "p1"))
}

// TestEvaluateAlerts_ReglasIndependientes un mismo producto puede disparar
// varias reglas a la vez.
func TestEvaluateAlerts_ReglasIndependientes(t *testing.T) {
	p := &entity.Product{
		ID: "p1", Name: "Problemático",
		SalePrice:       decimal.NewFromInt(1000),
		PurchaseCost:    decimal.NewFromInt(950), // margen 5%
		StockQuantity:   1,                       // bajo stock
		CompetitorPrice: decimal.NewFromInt(700), // brecha ~42,9%
	}

	alerts := analytics.EvaluateAlerts([]*entity.Product{p}, nil, buildThresholds(), testNow)

	rules := rulesFor(alerts, "p1")
	assert.ElementsMatch(t, []string{
		analytics.AlertLowMargin,
		analytics.AlertLowStock,
		analytics.AlertNoRecentSales,
		analytics.AlertPriceGap,
	}, rules)
}

// TestEvaluateAlerts_ProductoEmpacadoUsaCostoUnitario el margen de un
// empacado se calcula sobre el costo por unidad derivado, no sobre el costo
// total de la compra.
func TestEvaluateAlerts_ProductoEmpacadoUsaCostoUnitario(t *testing.T) {
	p := &entity.Product{
		ID: "p1", Name: "Empacado",
		IsPackaged:    true,
		SalePrice:     decimal.NewFromInt(10_000),
		PurchaseCost:  decimal.NewFromInt(60_000), // total de la compra
		UnitCost:      decimal.NewFromInt(5_000),  // margen real 50%
		StockQuantity: 12,
	}
	ledger := []*entity.Sale{saleRecent("p1")}

	alerts := analytics.EvaluateAlerts([]*entity.Product{p}, ledger, buildThresholds(), testNow)
	assert.Empty(t, rulesFor(alerts, "p1"),
		"margen del 50%% sobre costo unitario no debe alertar")
}

// saleRecent venta dentro de la ventana de 30 días para silenciar la regla
// de "sin ventas recientes".
func saleRecent(productID string) *entity.Sale {
	return entity.NewSale("s-"+productID, productID, "Producto",
		1, decimal.NewFromInt(1000), decimal.NewFromInt(500),
		testNow.AddDate(0, 0, -3), "", "efectivo", entity.SaleModeUnit)
}
