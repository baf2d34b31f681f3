package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/precios-pro/internal/application/dto"
	"github.com/tu-usuario/precios-pro/internal/domain"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/repository"
)

// Mapas nombrados de la configuración sobre los que operan Set/Remove.
const (
	MapOperatingPercentages = "operating_percentages"
	MapFixedMonthlyCosts    = "fixed_monthly_costs"
	MapToolCosts            = "tool_costs"
)

// ConfigUseCase administra la configuración del negocio: los tres mapas
// nombrados (porcentajes, costos fijos, herramientas), el volumen estimado,
// las metas y los umbrales. Las mutaciones son operaciones explícitas de
// agregar/quitar entrada, no edición dinámica de claves.
type ConfigUseCase struct {
	repo repository.ConfigRepository
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(repo repository.ConfigRepository) *ConfigUseCase {
	return &ConfigUseCase{repo: repo}
}

// Get devuelve la configuración vigente.
func (uc *ConfigUseCase) Get(ctx context.Context) (*dto.BusinessConfigResponse, error) {
	cfg, err := uc.repo.GetBusinessConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	return toConfigResponse(cfg), nil
}

// SetEntry agrega o reemplaza una entrada de uno de los mapas nombrados.
func (uc *ConfigUseCase) SetEntry(ctx context.Context, mapName string, in dto.SetNamedAmountRequest) (*dto.BusinessConfigResponse, error) {
	if in.Key == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cfg, err := uc.repo.GetBusinessConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	target, err := mapByName(cfg, mapName)
	if err != nil {
		return nil, err
	}
	target.Set(in.Key, in.Amount)

	if err := uc.repo.SaveBusinessConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("guardar configuración: %w", err)
	}
	return toConfigResponse(cfg), nil
}

// RemoveEntry elimina una entrada de uno de los mapas nombrados.
func (uc *ConfigUseCase) RemoveEntry(ctx context.Context, mapName, key string) (*dto.BusinessConfigResponse, error) {
	cfg, err := uc.repo.GetBusinessConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	target, err := mapByName(cfg, mapName)
	if err != nil {
		return nil, err
	}
	if !target.Remove(key) {
		return nil, domain.ErrNotFound
	}

	if err := uc.repo.SaveBusinessConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("guardar configuración: %w", err)
	}
	return toConfigResponse(cfg), nil
}

// SetVolume cambia el denominador de distribución del costo fijo.
func (uc *ConfigUseCase) SetVolume(ctx context.Context, in dto.SetVolumeRequest) (*dto.BusinessConfigResponse, error) {
	if in.EstimatedMonthlySalesVolume <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cfg, err := uc.repo.GetBusinessConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	cfg.EstimatedMonthlySalesVolume = in.EstimatedMonthlySalesVolume
	if err := uc.repo.SaveBusinessConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("guardar configuración: %w", err)
	}
	return toConfigResponse(cfg), nil
}

// GetThresholds devuelve los umbrales de alerta.
func (uc *ConfigUseCase) GetThresholds(ctx context.Context) (*dto.ThresholdsDTO, error) {
	th, err := uc.repo.GetAlertThresholds(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar umbrales: %w", err)
	}
	return &dto.ThresholdsDTO{
		MinMarginPct:       th.MinMarginPct,
		MinStock:           th.MinStock,
		MaxDaysWithoutSale: th.MaxDaysWithoutSale,
		CompetitorGapPct:   th.CompetitorGapPct,
	}, nil
}

// SaveThresholds reemplaza los umbrales de alerta.
func (uc *ConfigUseCase) SaveThresholds(ctx context.Context, in dto.ThresholdsDTO) error {
	if in.MinStock < 0 || in.MinMarginPct.IsNegative() || in.CompetitorGapPct.IsNegative() {
		return domain.ErrInvalidInput
	}
	th := entity.AlertThresholds{
		MinMarginPct:       in.MinMarginPct,
		MinStock:           in.MinStock,
		MaxDaysWithoutSale: in.MaxDaysWithoutSale,
		CompetitorGapPct:   in.CompetitorGapPct,
	}
	if err := uc.repo.SaveAlertThresholds(ctx, &th); err != nil {
		return fmt.Errorf("guardar umbrales: %w", err)
	}
	return nil
}

// GetGoals devuelve las metas mensuales.
func (uc *ConfigUseCase) GetGoals(ctx context.Context) (*dto.GoalsDTO, error) {
	g, err := uc.repo.GetGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar metas: %w", err)
	}
	return &dto.GoalsDTO{
		MonthlyRevenue: g.MonthlyRevenue,
		MonthlyUnits:   g.MonthlyUnits,
		AverageMargin:  g.AverageMargin,
		InventoryTurns: g.InventoryTurns,
	}, nil
}

// SaveGoals reemplaza las metas mensuales.
func (uc *ConfigUseCase) SaveGoals(ctx context.Context, in dto.GoalsDTO) error {
	g := entity.Goals{
		MonthlyRevenue: in.MonthlyRevenue,
		MonthlyUnits:   in.MonthlyUnits,
		AverageMargin:  in.AverageMargin,
		InventoryTurns: in.InventoryTurns,
	}
	if err := uc.repo.SaveGoals(ctx, &g); err != nil {
		return fmt.Errorf("guardar metas: %w", err)
	}
	return nil
}

func mapByName(cfg *entity.BusinessConfig, name string) (*entity.NamedAmounts, error) {
	switch name {
	case MapOperatingPercentages:
		return &cfg.OperatingPercentages, nil
	case MapFixedMonthlyCosts:
		return &cfg.FixedMonthlyCosts, nil
	case MapToolCosts:
		return &cfg.ToolCosts, nil
	default:
		return nil, domain.ErrNotFound
	}
}

func toConfigResponse(cfg *entity.BusinessConfig) *dto.BusinessConfigResponse {
	convert := func(n entity.NamedAmounts) []dto.NamedAmountDTO {
		entries := n.Entries()
		out := make([]dto.NamedAmountDTO, 0, len(entries))
		for _, e := range entries {
			out = append(out, dto.NamedAmountDTO{Key: e.Key, Amount: e.Amount})
		}
		return out
	}
	return &dto.BusinessConfigResponse{
		OperatingPercentages:        convert(cfg.OperatingPercentages),
		FixedMonthlyCosts:           convert(cfg.FixedMonthlyCosts),
		ToolCosts:                   convert(cfg.ToolCosts),
		EstimatedMonthlySalesVolume: cfg.EstimatedMonthlySalesVolume,
	}
}
