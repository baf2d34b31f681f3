package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/precios-pro/internal/domain/pricing"
)

func TestNormalizePackage_DosCajasDeSeis(t *testing.T) {
	res := pricing.NormalizePackage(pricing.PackageInput{
		IsPackaged:      true,
		PurchaseCost:    decimal.NewFromInt(60_000),
		UnitsPerPackage: 6,
		PackageCount:    2,
	})

	assert.Equal(t, 12, res.StockQuantity)
	assert.Equal(t, 6, res.UnitsPerPackage)
	assert.True(t, res.UnitCost.Equal(decimal.NewFromInt(5_000)),
		"costo unitario debe ser 5.000, fue %s", res.UnitCost)
}

// TestNormalizePackage_PrecisionCompleta el costo unitario no se redondea en
// la normalización; la división conserva los decimales para el motor.
func TestNormalizePackage_PrecisionCompleta(t *testing.T) {
	res := pricing.NormalizePackage(pricing.PackageInput{
		IsPackaged:      true,
		PurchaseCost:    decimal.NewFromInt(10_000),
		UnitsPerPackage: 3,
		PackageCount:    1,
	})

	assert.Equal(t, 3, res.StockQuantity)
	assert.InDelta(t, 3333.3333333333, res.UnitCost.InexactFloat64(), 1e-9,
		"10.000/3 debe conservar la precisión decimal")
}

// TestNormalizePackage_DesactivarEmpaque política de reset explícita:
// unidades por paquete vuelven a 1 y el stock a 0.
func TestNormalizePackage_DesactivarEmpaque(t *testing.T) {
	res := pricing.NormalizePackage(pricing.PackageInput{
		IsPackaged:      false,
		PurchaseCost:    decimal.NewFromInt(60_000),
		UnitsPerPackage: 6,
		PackageCount:    2,
	})

	assert.Equal(t, 0, res.StockQuantity)
	assert.Equal(t, 1, res.UnitsPerPackage)
	assert.True(t, res.UnitCost.IsZero())
}

// TestNormalizePackage_DenominadorCero sin unidades o sin paquetes no hay
// error: el costo unitario queda en cero y el flujo sigue.
func TestNormalizePackage_DenominadorCero(t *testing.T) {
	res := pricing.NormalizePackage(pricing.PackageInput{
		IsPackaged:      true,
		PurchaseCost:    decimal.NewFromInt(60_000),
		UnitsPerPackage: 0,
		PackageCount:    2,
	})

	assert.Equal(t, 0, res.StockQuantity)
	assert.True(t, res.UnitCost.IsZero(), "sin denominador el costo unitario queda en 0")
}
