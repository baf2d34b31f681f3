package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de venta: por unidad suelta o por paquete completo.
const (
	SaleModeUnit    = "unit"
	SaleModePackage = "package"
)

// Sale es una entrada inmutable del libro de ventas. ProductName, precio y
// costo son instantáneas al momento de la venta; TotalRevenue y TotalProfit
// se calculan una sola vez en NewSale y nunca se recalculan desde ediciones
// posteriores del producto (preserva la exactitud histórica del libro).
type Sale struct {
	ID          string
	ProductID   string
	ProductName string

	Quantity        int
	SalePriceAtSale decimal.Decimal
	UnitCostAtSale  decimal.Decimal

	Date          time.Time
	Customer      string
	PaymentMethod string
	SaleMode      string

	TotalRevenue decimal.Decimal
	TotalProfit  decimal.Decimal
}

// NewSale construye una entrada del libro con los totales congelados.
// Cantidad no positiva es entrada inválida; el caso de uso traduce el nil
// a domain.ErrInvalidInput para no acoplar entity con el paquete domain.
func NewSale(id, productID, productName string, quantity int, priceAtSale, costAtSale decimal.Decimal, date time.Time, customer, paymentMethod, saleMode string) *Sale {
	if quantity <= 0 {
		return nil
	}
	qty := decimal.NewFromInt(int64(quantity))
	return &Sale{
		ID:              id,
		ProductID:       productID,
		ProductName:     productName,
		Quantity:        quantity,
		SalePriceAtSale: priceAtSale,
		UnitCostAtSale:  costAtSale,
		Date:            date,
		Customer:        customer,
		PaymentMethod:   paymentMethod,
		SaleMode:        saleMode,
		TotalRevenue:    priceAtSale.Mul(qty),
		TotalProfit:     priceAtSale.Sub(costAtSale).Mul(qty),
	}
}
