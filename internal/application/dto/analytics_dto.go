package dto

import "github.com/shopspring/decimal"

// PricingResponse desglose del cálculo de precio para un producto.
type PricingResponse struct {
	ProductID        string          `json:"product_id,omitempty"`
	FinalPrice       decimal.Decimal `json:"final_price"`
	UnitProfit       decimal.Decimal `json:"unit_profit"`
	BaseCost         decimal.Decimal `json:"base_cost"`
	FixedCostPerUnit decimal.Decimal `json:"fixed_cost_per_unit"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// PricingPreviewRequest entrada del simulador de precios: valores crudos sin
// producto persistido de por medio.
type PricingPreviewRequest struct {
	UnitCost         decimal.Decimal `json:"unit_cost"`
	ExtraCost        decimal.Decimal `json:"extra_cost"`
	DesiredMarginPct decimal.Decimal `json:"desired_margin_pct"`
}

// TrendDTO comparación de ingresos de las dos últimas semanas.
type TrendDTO struct {
	RecentRevenue decimal.Decimal `json:"recent_revenue"`
	PriorRevenue  decimal.Decimal `json:"prior_revenue"`
	PercentChange decimal.Decimal `json:"percent_change"`
	Trend         string          `json:"trend"` // rising | falling | flat
}

// RankedProductDTO un producto dentro de la curva ABC.
type RankedProductDTO struct {
	ProductID             string          `json:"product_id"`
	ProductName           string          `json:"product_name"`
	EffectiveMonthlySales int             `json:"effective_monthly_sales"`
	MonthlyRevenue        decimal.Decimal `json:"monthly_revenue"`
	SharePct              decimal.Decimal `json:"share_pct"`
	CumulativeSharePct    decimal.Decimal `json:"cumulative_share_pct"`
	Tier                  string          `json:"tier"`
}

// ABCReportDTO las tres particiones del catálogo.
type ABCReportDTO struct {
	A []RankedProductDTO `json:"a"`
	B []RankedProductDTO `json:"b"`
	C []RankedProductDTO `json:"c"`
}

// AlertDTO una condición detectada sobre un producto.
type AlertDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Rule        string `json:"rule"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
}

// DashboardDTO resumen de analítica: totales de 30 días, tendencia semanal,
// curva ABC y alertas vigentes, todos calculados sobre la misma instantánea.
type DashboardDTO struct {
	Revenue30Days decimal.Decimal `json:"revenue_30_days"`
	Profit30Days  decimal.Decimal `json:"profit_30_days"`
	Trend         TrendDTO        `json:"trend"`
	ABC           ABCReportDTO    `json:"abc"`
	Alerts        []AlertDTO      `json:"alerts"`
}
