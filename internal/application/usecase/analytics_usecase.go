package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/precios-pro/internal/application/dto"
	"github.com/tu-usuario/precios-pro/internal/domain/analytics"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/repository"
	"github.com/tu-usuario/precios-pro/internal/domain/sales"
)

// AnalyticsUseCase arma los reportes de negocio sobre una instantánea única
// del catálogo y del libro de ventas: tendencia semanal, curva ABC, alertas y
// totales de 30 días comparten el mismo "ahora".
type AnalyticsUseCase struct {
	products  repository.ProductRepository
	salesRepo repository.SaleRepository
	config    repository.ConfigRepository
	now       func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso. nowFn nil usa time.Now.
func NewAnalyticsUseCase(
	products repository.ProductRepository,
	salesRepo repository.SaleRepository,
	config repository.ConfigRepository,
	nowFn func() time.Time,
) *AnalyticsUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &AnalyticsUseCase{products: products, salesRepo: salesRepo, config: config, now: nowFn}
}

// GetTrend tendencia de ingresos de las dos últimas semanas.
func (uc *AnalyticsUseCase) GetTrend(ctx context.Context) (*dto.TrendDTO, error) {
	now := uc.now()
	ledger, err := uc.salesRepo.ListSince(ctx, now.AddDate(0, 0, -2*7))
	if err != nil {
		return nil, fmt.Errorf("tendencia: leer libro: %w", err)
	}
	trend := sales.ClassifySalesTrend(ledger, now)
	return toTrendDTO(trend), nil
}

// GetABC clasificación ABC del catálogo completo.
func (uc *AnalyticsUseCase) GetABC(ctx context.Context) (*dto.ABCReportDTO, error) {
	now := uc.now()
	products, ledger, err := uc.snapshot(ctx, now)
	if err != nil {
		return nil, err
	}
	res := analytics.ClassifyABC(products, ledger, now)
	report := toABCReportDTO(res)
	return &report, nil
}

// GetAlerts alertas vigentes según los umbrales configurados.
func (uc *AnalyticsUseCase) GetAlerts(ctx context.Context) ([]dto.AlertDTO, error) {
	now := uc.now()
	products, ledger, err := uc.snapshot(ctx, now)
	if err != nil {
		return nil, err
	}
	th, err := uc.config.GetAlertThresholds(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: cargar umbrales: %w", err)
	}
	return toAlertDTOs(analytics.EvaluateAlerts(products, ledger, *th, now)), nil
}

// GetDashboard reporte combinado: totales de 30 días, tendencia, ABC y
// alertas sobre la misma instantánea.
func (uc *AnalyticsUseCase) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	now := uc.now()
	products, ledger, err := uc.snapshot(ctx, now)
	if err != nil {
		return nil, err
	}
	th, err := uc.config.GetAlertThresholds(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: cargar umbrales: %w", err)
	}

	trend := sales.ClassifySalesTrend(ledger, now)
	abc := analytics.ClassifyABC(products, ledger, now)
	alerts := analytics.EvaluateAlerts(products, ledger, *th, now)

	return &dto.DashboardDTO{
		Revenue30Days: sales.RevenueInWindow(ledger, now, sales.DefaultWindowDays),
		Profit30Days:  sales.ProfitInWindow(ledger, now, sales.DefaultWindowDays),
		Trend:         *toTrendDTO(trend),
		ABC:           toABCReportDTO(abc),
		Alerts:        toAlertDTOs(alerts),
	}, nil
}

// snapshot catálogo completo + libro de los últimos 30 días (ventana que
// cubre todos los agregados del reporte).
func (uc *AnalyticsUseCase) snapshot(ctx context.Context, now time.Time) ([]*entity.Product, []*entity.Sale, error) {
	products, err := uc.products.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("leer catálogo: %w", err)
	}
	ledger, err := uc.salesRepo.ListSince(ctx, now.AddDate(0, 0, -sales.DefaultWindowDays))
	if err != nil {
		return nil, nil, fmt.Errorf("leer libro de ventas: %w", err)
	}
	return products, ledger, nil
}

func toTrendDTO(t sales.TrendResult) *dto.TrendDTO {
	return &dto.TrendDTO{
		RecentRevenue: t.RecentRevenue,
		PriorRevenue:  t.PriorRevenue,
		PercentChange: t.PercentChange.Round(2),
		Trend:         t.Trend,
	}
}

func toABCReportDTO(res analytics.ABCResult) dto.ABCReportDTO {
	convert := func(in []analytics.RankedProduct) []dto.RankedProductDTO {
		out := make([]dto.RankedProductDTO, 0, len(in))
		for _, r := range in {
			out = append(out, dto.RankedProductDTO{
				ProductID:             r.Product.ID,
				ProductName:           r.Product.Name,
				EffectiveMonthlySales: r.EffectiveMonthlySales,
				MonthlyRevenue:        r.MonthlyRevenue.Round(2),
				SharePct:              r.SharePct.Round(2),
				CumulativeSharePct:    r.CumulativeSharePct.Round(2),
				Tier:                  r.Tier,
			})
		}
		return out
	}
	return dto.ABCReportDTO{A: convert(res.A), B: convert(res.B), C: convert(res.C)}
}

func toAlertDTOs(alerts []analytics.Alert) []dto.AlertDTO {
	out := make([]dto.AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertDTO{
			ProductID:   a.ProductID,
			ProductName: a.ProductName,
			Rule:        a.Rule,
			Severity:    a.Severity,
			Message:     a.Message,
		})
	}
	return out
}
