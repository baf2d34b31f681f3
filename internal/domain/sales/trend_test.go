package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/sales"
)

// ledgerWithWeeks arma un libro con una venta en la semana reciente
// [now-7, now) y otra en la anterior [now-14, now-7).
func ledgerWithWeeks(recentRevenue, priorRevenue int64) []*entity.Sale {
	var ledger []*entity.Sale
	if recentRevenue > 0 {
		ledger = append(ledger, saleAt("p1", 1, recentRevenue, 0, 3))
	}
	if priorRevenue > 0 {
		ledger = append(ledger, saleAt("p1", 1, priorRevenue, 0, 10))
	}
	return ledger
}

func TestClassifySalesTrend_Subiendo(t *testing.T) {
	res := sales.ClassifySalesTrend(ledgerWithWeeks(120, 100), testNow)

	assert.Equal(t, sales.TrendRising, res.Trend)
	assert.True(t, res.PercentChange.Equal(decimal.NewFromInt(20)),
		"cambio debe ser +20%%, fue %s", res.PercentChange)
}

func TestClassifySalesTrend_Bajando(t *testing.T) {
	res := sales.ClassifySalesTrend(ledgerWithWeeks(80, 100), testNow)

	assert.Equal(t, sales.TrendFalling, res.Trend)
	assert.True(t, res.PercentChange.Equal(decimal.NewFromInt(-20)))
}

// TestClassifySalesTrend_BandaMuertaExclusiva el límite de ±5% clasifica
// como "flat": la banda evita oscilaciones por ruido semanal.
func TestClassifySalesTrend_BandaMuertaExclusiva(t *testing.T) {
	enElBorde := sales.ClassifySalesTrend(ledgerWithWeeks(105, 100), testNow)
	assert.Equal(t, sales.TrendFlat, enElBorde.Trend, "+5,0%% exacto es flat")

	bajoElBorde := sales.ClassifySalesTrend(ledgerWithWeeks(95, 100), testNow)
	assert.Equal(t, sales.TrendFlat, bajoElBorde.Trend, "-5,0%% exacto es flat")

	apenasArriba := sales.ClassifySalesTrend(ledgerWithWeeks(106, 100), testNow)
	assert.Equal(t, sales.TrendRising, apenasArriba.Trend, "+6%% ya es rising")
}

// TestClassifySalesTrend_SemanaAnteriorEnCero división por cero evitada por
// política: cambio 0 y tendencia plana.
func TestClassifySalesTrend_SemanaAnteriorEnCero(t *testing.T) {
	res := sales.ClassifySalesTrend(ledgerWithWeeks(500, 0), testNow)

	assert.True(t, res.PercentChange.IsZero(),
		"sin ingresos previos el cambio es 0 por definición")
	assert.Equal(t, sales.TrendFlat, res.Trend)
	assert.True(t, res.RecentRevenue.Equal(decimal.NewFromInt(500)))
	assert.True(t, res.PriorRevenue.IsZero())
}

func TestClassifySalesTrend_LibroVacio(t *testing.T) {
	res := sales.ClassifySalesTrend(nil, testNow)

	assert.Equal(t, sales.TrendFlat, res.Trend)
	assert.True(t, res.RecentRevenue.IsZero())
	assert.True(t, res.PriorRevenue.IsZero())
}

// TestClassifySalesTrend_VentanasSemiabiertas una venta con exactamente 7
// días de antigüedad pertenece a la semana anterior, no a la reciente.
func TestClassifySalesTrend_VentanasSemiabiertas(t *testing.T) {
	ledger := []*entity.Sale{saleAt("p1", 1, 1000, 0, 7)}

	res := sales.ClassifySalesTrend(ledger, testNow)
	assert.True(t, res.RecentRevenue.IsZero(), "el borde now-7 es exclusivo para la semana reciente")
	assert.True(t, res.PriorRevenue.Equal(decimal.NewFromInt(1000)))
}
