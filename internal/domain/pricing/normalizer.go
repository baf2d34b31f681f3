// Package pricing contiene los servicios de dominio del motor de precios:
// normalización de compras por paquete y despeje de precio por margen.
// Funciones puras sobre decimales; el caso de uso decide qué persistir.
package pricing

import "github.com/shopspring/decimal"

// PackageInput datos de compra de un producto en edición.
type PackageInput struct {
	IsPackaged      bool
	PurchaseCost    decimal.Decimal // costo total pagado por todos los paquetes
	UnitsPerPackage int
	PackageCount    int
}

// PackageResult stock y costo unitario derivados.
type PackageResult struct {
	StockQuantity   int
	UnitsPerPackage int
	UnitCost        decimal.Decimal // PurchaseCost / unidades totales, sin redondear
}

// NormalizePackage convierte una compra por paquetes en stock y costo por
// unidad. El costo unitario conserva toda la precisión decimal: el redondeo
// a moneda ocurre solo en la salida del motor de precios.
//
// Política de reset: si IsPackaged pasa a false, UnitsPerPackage vuelve a 1 y
// el stock a 0 (no se preserva el valor anterior). Denominadores en cero no
// son error: el costo unitario simplemente queda en cero.
func NormalizePackage(in PackageInput) PackageResult {
	if !in.IsPackaged {
		return PackageResult{StockQuantity: 0, UnitsPerPackage: 1}
	}
	if in.UnitsPerPackage <= 0 || in.PackageCount <= 0 {
		return PackageResult{StockQuantity: 0, UnitsPerPackage: in.UnitsPerPackage}
	}
	totalUnits := in.UnitsPerPackage * in.PackageCount
	return PackageResult{
		StockQuantity:   totalUnits,
		UnitsPerPackage: in.UnitsPerPackage,
		UnitCost:        in.PurchaseCost.Div(decimal.NewFromInt(int64(totalUnits))),
	}
}
