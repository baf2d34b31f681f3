// Package analytics clasifica el catálogo por participación de ingresos
// (ABC/Pareto) y evalúa umbrales de alerta sobre métricas calculadas.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/sales"
)

// Umbrales de participación acumulada para los niveles ABC (corte 80/15/5).
var (
	tierACutoff = decimal.NewFromInt(80)
	tierBCutoff = decimal.NewFromInt(95)
	hundred     = decimal.NewFromInt(100)
)

// Niveles ABC.
const (
	TierA = "A"
	TierB = "B"
	TierC = "C"
)

// RankedProduct un producto enriquecido con su posición en la curva de
// ingresos. CumulativeSharePct es la participación acumulada en el momento de
// la asignación (para barras de progreso; no afecta decisiones posteriores).
type RankedProduct struct {
	Product               *entity.Product
	EffectiveMonthlySales int
	MonthlyRevenue        decimal.Decimal
	SharePct              decimal.Decimal
	CumulativeSharePct    decimal.Decimal
	Tier                  string
}

// ABCResult las tres particiones del catálogo.
type ABCResult struct {
	A []RankedProduct
	B []RankedProduct
	C []RankedProduct
}

// ClassifyABC ordena los productos por ingreso mensual descendente y los
// particiona por participación acumulada: nivel A mientras el acumulado no
// supere el 80%, B hasta el 95%, C el resto.
//
// Ventas efectivas: unidades reales de los últimos 30 días si las hay; si no,
// el estimado guardado en el producto. El orden relativo original se conserva
// entre productos con ingreso igual (orden estable).
//
// Con ingreso total cero todas las participaciones se tratan como 0 y todo el
// catálogo queda en C: sin ingresos no hay productos "A" que proteger.
func ClassifyABC(products []*entity.Product, ledger []*entity.Sale, now time.Time) ABCResult {
	result := ABCResult{
		A: []RankedProduct{},
		B: []RankedProduct{},
		C: []RankedProduct{},
	}
	if len(products) == 0 {
		return result
	}

	ranked := make([]RankedProduct, 0, len(products))
	totalRevenue := decimal.Zero
	for _, p := range products {
		effective := sales.UnitsSoldInWindow(p.ID, ledger, now, sales.DefaultWindowDays)
		if effective <= 0 {
			effective = p.EstimatedMonthlySales
		}
		revenue := p.SalePrice.Mul(decimal.NewFromInt(int64(effective)))
		totalRevenue = totalRevenue.Add(revenue)
		ranked = append(ranked, RankedProduct{
			Product:               p,
			EffectiveMonthlySales: effective,
			MonthlyRevenue:        revenue,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MonthlyRevenue.GreaterThan(ranked[j].MonthlyRevenue)
	})

	if !totalRevenue.IsPositive() {
		// Catálogo sin ingresos: participaciones en cero, todo a nivel C.
		for _, r := range ranked {
			r.Tier = TierC
			result.C = append(result.C, r)
		}
		return result
	}

	cumulative := decimal.Zero
	for _, r := range ranked {
		r.SharePct = r.MonthlyRevenue.Div(totalRevenue).Mul(hundred)
		cumulative = cumulative.Add(r.SharePct)
		r.CumulativeSharePct = cumulative
		switch {
		case cumulative.LessThanOrEqual(tierACutoff):
			r.Tier = TierA
			result.A = append(result.A, r)
		case cumulative.LessThanOrEqual(tierBCutoff):
			r.Tier = TierB
			result.B = append(result.B, r)
		default:
			r.Tier = TierC
			result.C = append(result.C, r)
		}
	}
	return result
}
