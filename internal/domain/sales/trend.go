package sales

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
)

// Direcciones de tendencia.
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendFlat    = "flat"
)

const trendWindowDays = 7

// trendDeadBand banda muerta de ±5%: evita que el indicador oscile con ruido
// semana a semana. El límite es exclusivo: un cambio de exactamente ±5%
// clasifica como "flat".
var (
	trendDeadBand = decimal.NewFromInt(5)
	hundred       = decimal.NewFromInt(100)
)

// TrendResult comparación de ingresos entre las dos últimas semanas.
type TrendResult struct {
	RecentRevenue decimal.Decimal // [now-7, now)
	PriorRevenue  decimal.Decimal // [now-14, now-7)
	PercentChange decimal.Decimal // 0 cuando la semana anterior no tuvo ingresos
	Trend         string
}

// ClassifySalesTrend compara los ingresos de [now-7, now) contra
// [now-14, now-7) y clasifica la dirección.
func ClassifySalesTrend(ledger []*entity.Sale, now time.Time) TrendResult {
	weekAgo := now.AddDate(0, 0, -trendWindowDays)
	twoWeeksAgo := now.AddDate(0, 0, -2*trendWindowDays)

	recent := revenueBetween(ledger, weekAgo, now)
	prior := revenueBetween(ledger, twoWeeksAgo, weekAgo)

	// Semana anterior sin ingresos: cambio 0 por política explícita, no un
	// error de división.
	change := decimal.Zero
	if prior.IsPositive() {
		change = recent.Sub(prior).Div(prior).Mul(hundred)
	}

	trend := TrendFlat
	switch {
	case change.GreaterThan(trendDeadBand):
		trend = TrendRising
	case change.LessThan(trendDeadBand.Neg()):
		trend = TrendFalling
	}

	return TrendResult{
		RecentRevenue: recent,
		PriorRevenue:  prior,
		PercentChange: change,
		Trend:         trend,
	}
}
