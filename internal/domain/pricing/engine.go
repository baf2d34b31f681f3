package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/precios-pro/internal/domain"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// PricingInput costos por unidad de un producto listo para tarificar.
// Para productos empacados, UnitCost y ExtraCost llegan ya divididos por las
// unidades del paquete (ver NormalizePackage); el costo fijo por unidad NO se
// vuelve a dividir porque es una asignación mensual por unidad vendida,
// independiente del empaque.
type PricingInput struct {
	UnitCost         decimal.Decimal // C: costo de compra por unidad
	ExtraCost        decimal.Decimal // G: gasto extra asignado por unidad
	DesiredMarginPct decimal.Decimal // M: margen neto objetivo (0 <= M < 100)
}

// PricingResult desglose del cálculo. FinalPrice y UnitProfit van redondeados
// a la unidad de moneda para display; BaseCost y FixedCostPerUnit conservan
// la precisión completa para recálculos encadenados.
type PricingResult struct {
	FinalPrice       decimal.Decimal
	UnitProfit       decimal.Decimal
	BaseCost         decimal.Decimal
	FixedCostPerUnit decimal.Decimal
	UnitCost         decimal.Decimal
}

// ComputePricing despeja el precio de venta a partir del costo unitario, el
// costo fijo distribuido y los porcentajes operativos de la configuración:
//
//	baseCost   = C + G + totalFijo/volumenEstimado
//	precio1    = baseCost / (1 - %operativos/100)
//	finalPrice = precio1 / (1 - M/100)
//
// Cuando la suma de porcentajes operativos o el margen alcanzan el 100% la
// división deja de estar definida: se devuelve ErrInvalidConfiguration en vez
// de dejar que un precio infinito o negativo se propague hasta la UI.
func ComputePricing(in PricingInput, cfg entity.BusinessConfig) (PricingResult, error) {
	if in.UnitCost.IsNegative() || in.ExtraCost.IsNegative() || in.DesiredMarginPct.IsNegative() {
		return PricingResult{}, domain.ErrInvalidInput
	}

	totalOperating := cfg.OperatingPercentages.Sum()
	if totalOperating.GreaterThanOrEqual(hundred) || in.DesiredMarginPct.GreaterThanOrEqual(hundred) {
		return PricingResult{}, domain.ErrInvalidConfiguration
	}

	totalFixed := cfg.FixedMonthlyCosts.Sum().Add(cfg.ToolCosts.Sum())
	volume := cfg.EstimatedMonthlySalesVolume
	if volume < 1 {
		volume = 1
	}
	fixedPerUnit := totalFixed.Div(decimal.NewFromInt(int64(volume)))

	baseCost := in.UnitCost.Add(in.ExtraCost).Add(fixedPerUnit)

	one := decimal.NewFromInt(1)
	afterOperating := baseCost.Div(one.Sub(totalOperating.Div(hundred)))
	finalPrice := afterOperating.Div(one.Sub(in.DesiredMarginPct.Div(hundred)))

	return PricingResult{
		FinalPrice:       finalPrice.Round(0),
		UnitProfit:       finalPrice.Sub(baseCost).Round(0),
		BaseCost:         baseCost,
		FixedCostPerUnit: fixedPerUnit,
		UnitCost:         in.UnitCost,
	}, nil
}
