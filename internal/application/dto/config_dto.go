package dto

import "github.com/shopspring/decimal"

// NamedAmountDTO una entrada nombre→monto de la configuración.
type NamedAmountDTO struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// BusinessConfigResponse configuración del negocio con los mapas en su orden
// de inserción.
type BusinessConfigResponse struct {
	OperatingPercentages        []NamedAmountDTO `json:"operating_percentages"`
	FixedMonthlyCosts           []NamedAmountDTO `json:"fixed_monthly_costs"`
	ToolCosts                   []NamedAmountDTO `json:"tool_costs"`
	EstimatedMonthlySalesVolume int              `json:"estimated_monthly_sales_volume"`
}

// SetNamedAmountRequest agrega o reemplaza una entrada de un mapa de la
// configuración.
type SetNamedAmountRequest struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// SetVolumeRequest cambia el volumen estimado de ventas mensuales.
type SetVolumeRequest struct {
	EstimatedMonthlySalesVolume int `json:"estimated_monthly_sales_volume"`
}

// ThresholdsDTO umbrales de alerta (entrada y salida).
type ThresholdsDTO struct {
	MinMarginPct       decimal.Decimal `json:"min_margin_pct"`
	MinStock           int             `json:"min_stock"`
	MaxDaysWithoutSale int             `json:"max_days_without_sale"`
	CompetitorGapPct   decimal.Decimal `json:"competitor_gap_pct"`
}

// GoalsDTO metas mensuales (entrada y salida).
type GoalsDTO struct {
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	MonthlyUnits   int             `json:"monthly_units"`
	AverageMargin  decimal.Decimal `json:"average_margin"`
	InventoryTurns decimal.Decimal `json:"inventory_turns"`
}
