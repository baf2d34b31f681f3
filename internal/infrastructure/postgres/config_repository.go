package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo implementación del puerto ConfigRepository sobre PostgreSQL.
// Configuración, metas y umbrales viven cada uno en una tabla de fila única
// (id = 1, upsert). Los mapas nombrados se guardan como arreglos JSONB para
// preservar el orden de inserción; un objeto JSON lo perdería.
type ConfigRepo struct {
	q Querier
}

// NewConfigRepository construye el adaptador de configuración. Pasar pool o tx (Querier).
func NewConfigRepository(q Querier) *ConfigRepo {
	return &ConfigRepo{q: q}
}

// namedAmountRow forma JSON de una entrada de mapa nombrado.
type namedAmountRow struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// GetBusinessConfig carga la configuración; si la fila no existe todavía,
// devuelve la configuración vacía con volumen 1.
func (r *ConfigRepo) GetBusinessConfig(ctx context.Context) (*entity.BusinessConfig, error) {
	query := `
		SELECT operating_percentages, fixed_monthly_costs, tool_costs, estimated_monthly_sales_volume
		FROM business_config WHERE id = 1`
	var opJSON, fixedJSON, toolsJSON []byte
	var volume int
	err := r.q.QueryRow(ctx, query).Scan(&opJSON, &fixedJSON, &toolsJSON, &volume)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.BusinessConfig{EstimatedMonthlySalesVolume: 1}, nil
		}
		return nil, fmt.Errorf("get business config: %w", err)
	}

	cfg := entity.BusinessConfig{EstimatedMonthlySalesVolume: volume}
	for _, pair := range []struct {
		raw    []byte
		target *entity.NamedAmounts
	}{
		{opJSON, &cfg.OperatingPercentages},
		{fixedJSON, &cfg.FixedMonthlyCosts},
		{toolsJSON, &cfg.ToolCosts},
	} {
		amounts, err := decodeNamedAmounts(pair.raw)
		if err != nil {
			return nil, fmt.Errorf("decode business config: %w", err)
		}
		*pair.target = amounts
	}
	return &cfg, nil
}

// SaveBusinessConfig reemplaza la configuración completa (upsert de la fila única).
func (r *ConfigRepo) SaveBusinessConfig(ctx context.Context, cfg *entity.BusinessConfig) error {
	opJSON, err := encodeNamedAmounts(cfg.OperatingPercentages)
	if err != nil {
		return fmt.Errorf("encode business config: %w", err)
	}
	fixedJSON, err := encodeNamedAmounts(cfg.FixedMonthlyCosts)
	if err != nil {
		return fmt.Errorf("encode business config: %w", err)
	}
	toolsJSON, err := encodeNamedAmounts(cfg.ToolCosts)
	if err != nil {
		return fmt.Errorf("encode business config: %w", err)
	}

	query := `
		INSERT INTO business_config (id, operating_percentages, fixed_monthly_costs, tool_costs, estimated_monthly_sales_volume, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET
			operating_percentages = EXCLUDED.operating_percentages,
			fixed_monthly_costs = EXCLUDED.fixed_monthly_costs,
			tool_costs = EXCLUDED.tool_costs,
			estimated_monthly_sales_volume = EXCLUDED.estimated_monthly_sales_volume,
			updated_at = now()`
	if _, err := r.q.Exec(ctx, query, opJSON, fixedJSON, toolsJSON, cfg.EstimatedMonthlySalesVolume); err != nil {
		return fmt.Errorf("save business config: %w", err)
	}
	return nil
}

// GetGoals carga las metas; fila ausente devuelve metas en cero.
func (r *ConfigRepo) GetGoals(ctx context.Context) (*entity.Goals, error) {
	query := `SELECT monthly_revenue, monthly_units, average_margin, inventory_turns FROM goals WHERE id = 1`
	var g entity.Goals
	err := r.q.QueryRow(ctx, query).Scan(&g.MonthlyRevenue, &g.MonthlyUnits, &g.AverageMargin, &g.InventoryTurns)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Goals{}, nil
		}
		return nil, fmt.Errorf("get goals: %w", err)
	}
	return &g, nil
}

// SaveGoals reemplaza las metas (upsert de la fila única).
func (r *ConfigRepo) SaveGoals(ctx context.Context, g *entity.Goals) error {
	query := `
		INSERT INTO goals (id, monthly_revenue, monthly_units, average_margin, inventory_turns, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET
			monthly_revenue = EXCLUDED.monthly_revenue,
			monthly_units = EXCLUDED.monthly_units,
			average_margin = EXCLUDED.average_margin,
			inventory_turns = EXCLUDED.inventory_turns,
			updated_at = now()`
	if _, err := r.q.Exec(ctx, query, g.MonthlyRevenue, g.MonthlyUnits, g.AverageMargin, g.InventoryTurns); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	return nil
}

// GetAlertThresholds carga los umbrales; fila ausente devuelve los umbrales
// por defecto del evaluador.
func (r *ConfigRepo) GetAlertThresholds(ctx context.Context) (*entity.AlertThresholds, error) {
	query := `SELECT min_margin_pct, min_stock, max_days_without_sale, competitor_gap_pct FROM alert_thresholds WHERE id = 1`
	var th entity.AlertThresholds
	err := r.q.QueryRow(ctx, query).Scan(&th.MinMarginPct, &th.MinStock, &th.MaxDaysWithoutSale, &th.CompetitorGapPct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.AlertThresholds{
				MinMarginPct:     decimal.NewFromInt(10),
				MinStock:         5,
				CompetitorGapPct: decimal.NewFromInt(15),
			}, nil
		}
		return nil, fmt.Errorf("get alert thresholds: %w", err)
	}
	return &th, nil
}

// SaveAlertThresholds reemplaza los umbrales (upsert de la fila única).
func (r *ConfigRepo) SaveAlertThresholds(ctx context.Context, th *entity.AlertThresholds) error {
	query := `
		INSERT INTO alert_thresholds (id, min_margin_pct, min_stock, max_days_without_sale, competitor_gap_pct, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET
			min_margin_pct = EXCLUDED.min_margin_pct,
			min_stock = EXCLUDED.min_stock,
			max_days_without_sale = EXCLUDED.max_days_without_sale,
			competitor_gap_pct = EXCLUDED.competitor_gap_pct,
			updated_at = now()`
	if _, err := r.q.Exec(ctx, query, th.MinMarginPct, th.MinStock, th.MaxDaysWithoutSale, th.CompetitorGapPct); err != nil {
		return fmt.Errorf("save alert thresholds: %w", err)
	}
	return nil
}

func encodeNamedAmounts(n entity.NamedAmounts) ([]byte, error) {
	entries := n.Entries()
	rows := make([]namedAmountRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, namedAmountRow{Key: e.Key, Amount: e.Amount})
	}
	return json.Marshal(rows)
}

func decodeNamedAmounts(raw []byte) (entity.NamedAmounts, error) {
	if len(raw) == 0 {
		return entity.NamedAmounts{}, nil
	}
	var rows []namedAmountRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return entity.NamedAmounts{}, err
	}
	entries := make([]entity.NamedAmount, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, entity.NamedAmount{Key: r.Key, Amount: r.Amount})
	}
	return entity.NamedAmountsFrom(entries), nil
}
