package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest entrada para registrar una venta. Precio y costo se
// toman como instantánea del producto al momento del registro.
type RegisterSaleRequest struct {
	ProductID     string    `json:"product_id"`
	Quantity      int       `json:"quantity"`
	Date          time.Time `json:"date"`
	Customer      string    `json:"customer"`
	PaymentMethod string    `json:"payment_method"`
	SaleMode      string    `json:"sale_mode"` // unit | package
}

// SaleResponse salida de una entrada del libro de ventas.
type SaleResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Quantity        int             `json:"quantity"`
	SalePriceAtSale decimal.Decimal `json:"sale_price_at_sale"`
	UnitCostAtSale  decimal.Decimal `json:"unit_cost_at_sale"`
	Date            time.Time       `json:"date"`
	Customer        string          `json:"customer"`
	PaymentMethod   string          `json:"payment_method"`
	SaleMode        string          `json:"sale_mode"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
}

// WindowSummaryDTO agregados de una ventana móvil para un producto.
type WindowSummaryDTO struct {
	ProductID  string          `json:"product_id"`
	WindowDays int             `json:"window_days"`
	UnitsSold  int             `json:"units_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
}
