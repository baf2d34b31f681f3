package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Los campos derivados
// (stock de empacados, costo unitario, precio) los calcula el caso de uso.
type CreateProductRequest struct {
	Name                  string          `json:"name"`
	Category              string          `json:"category"`
	PurchaseCost          decimal.Decimal `json:"purchase_cost"`
	FixedCostAllocated    decimal.Decimal `json:"fixed_cost_allocated"`
	DesiredMarginPct      decimal.Decimal `json:"desired_margin_pct"`
	StockQuantity         int             `json:"stock_quantity"`
	EstimatedMonthlySales int             `json:"estimated_monthly_sales"`
	CompetitorPrice       decimal.Decimal `json:"competitor_price"`
	IsPackaged            bool            `json:"is_packaged"`
	UnitsPerPackage       int             `json:"units_per_package"`
	PackageCount          int             `json:"package_count"`
}

// UpdateProductRequest entrada para actualizar un producto; campos nil no se
// tocan. Editar campos de empaque re-ejecuta la normalización.
type UpdateProductRequest struct {
	Name                  *string          `json:"name"`
	Category              *string          `json:"category"`
	PurchaseCost          *decimal.Decimal `json:"purchase_cost"`
	FixedCostAllocated    *decimal.Decimal `json:"fixed_cost_allocated"`
	DesiredMarginPct      *decimal.Decimal `json:"desired_margin_pct"`
	StockQuantity         *int             `json:"stock_quantity"`
	EstimatedMonthlySales *int             `json:"estimated_monthly_sales"`
	CompetitorPrice       *decimal.Decimal `json:"competitor_price"`
	IsPackaged            *bool            `json:"is_packaged"`
	UnitsPerPackage       *int             `json:"units_per_package"`
	PackageCount          *int             `json:"package_count"`
}

// ProductResponse salida de un producto con sus derivados cacheados.
type ProductResponse struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Category              string          `json:"category"`
	PurchaseCost          decimal.Decimal `json:"purchase_cost"`
	FixedCostAllocated    decimal.Decimal `json:"fixed_cost_allocated"`
	DesiredMarginPct      decimal.Decimal `json:"desired_margin_pct"`
	SalePrice             decimal.Decimal `json:"sale_price"`
	UnitProfit            decimal.Decimal `json:"unit_profit"`
	StockQuantity         int             `json:"stock_quantity"`
	EstimatedMonthlySales int             `json:"estimated_monthly_sales"`
	CompetitorPrice       decimal.Decimal `json:"competitor_price"`
	LastSaleDate          time.Time       `json:"last_sale_date"`
	IsPackaged            bool            `json:"is_packaged"`
	UnitsPerPackage       int             `json:"units_per_package"`
	PackageCount          int             `json:"package_count"`
	UnitCost              decimal.Decimal `json:"unit_cost"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
