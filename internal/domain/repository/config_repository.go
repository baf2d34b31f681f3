package repository

import (
	"context"

	"github.com/tu-usuario/precios-pro/internal/domain/entity"
)

// ConfigRepository puerto de persistencia para la configuración del negocio,
// las metas y los umbrales de alerta. Hay una sola instancia de cada registro.
type ConfigRepository interface {
	GetBusinessConfig(ctx context.Context) (*entity.BusinessConfig, error)
	SaveBusinessConfig(ctx context.Context, cfg *entity.BusinessConfig) error

	GetGoals(ctx context.Context) (*entity.Goals, error)
	SaveGoals(ctx context.Context, goals *entity.Goals) error

	GetAlertThresholds(ctx context.Context) (*entity.AlertThresholds, error)
	SaveAlertThresholds(ctx context.Context, th *entity.AlertThresholds) error
}
