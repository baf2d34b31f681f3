package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario. SalePrice y UnitProfit son
// valores derivados que el caso de uso de precios cachea en la entidad tras
// cada cálculo; UnitCost siempre se deriva del costo de compra, nunca se
// captura a mano.
//
// Invariante de empaque: si IsPackaged es true, StockQuantity se mantiene
// igual a UnitsPerPackage * PackageCount en cada edición.
type Product struct {
	ID       string
	Name     string
	Category string

	PurchaseCost       decimal.Decimal // costo total pagado por la compra
	FixedCostAllocated decimal.Decimal // gasto extra asignado manualmente al producto
	DesiredMarginPct   decimal.Decimal // margen neto objetivo sobre el precio final (0-100)

	SalePrice  decimal.Decimal // derivado, cacheado tras ComputePricing
	UnitProfit decimal.Decimal // derivado, cacheado tras ComputePricing

	StockQuantity         int
	EstimatedMonthlySales int             // estimado usado cuando no hay ventas reales
	CompetitorPrice       decimal.Decimal // 0 = desconocido
	LastSaleDate          time.Time

	IsPackaged      bool
	UnitsPerPackage int
	PackageCount    int
	UnitCost        decimal.Decimal // derivado: PurchaseCost / (UnitsPerPackage * PackageCount)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveUnitCost devuelve el costo unitario que aplica para márgenes y
// alertas: el costo por unidad derivado si es empacado, el costo de compra
// directo si no.
func (p *Product) EffectiveUnitCost() decimal.Decimal {
	if p.IsPackaged {
		return p.UnitCost
	}
	return p.PurchaseCost
}
