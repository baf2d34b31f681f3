package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/precios-pro/internal/application/dto"
	"github.com/tu-usuario/precios-pro/internal/application/usecase"
	"github.com/tu-usuario/precios-pro/internal/domain"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/infrastructure/memory"
)

// seedConfig configuración de referencia: fijos 1.000.000, volumen 100,
// operativos 39%.
func seedConfig(t *testing.T, store *memory.ConfigStore) {
	t.Helper()
	cfg := entity.BusinessConfig{EstimatedMonthlySalesVolume: 100}
	cfg.FixedMonthlyCosts.Set("arriendo", decimal.NewFromInt(1_000_000))
	cfg.OperatingPercentages.Set("operativos", decimal.NewFromInt(39))
	require.NoError(t, store.SaveBusinessConfig(context.Background(), &cfg))
}

func TestPricingUseCase_ComputeNoPersiste(t *testing.T) {
	ctx := context.Background()
	products := memory.NewProductStore()
	config := memory.NewConfigStore()
	seedConfig(t, config)

	productUC := usecase.NewProductUseCase(products)
	created, err := productUC.Create(ctx, dto.CreateProductRequest{
		Name:             "Café 500g",
		PurchaseCost:     decimal.NewFromInt(10_000),
		DesiredMarginPct: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	uc := usecase.NewPricingUseCase(products, config)
	res, err := uc.Compute(ctx, created.ID)
	require.NoError(t, err)

	assert.True(t, res.FinalPrice.Equal(decimal.NewFromInt(46_838)),
		"precio del vector de referencia: %s", res.FinalPrice)

	// El producto no cambió: Compute es solo lectura.
	stored, err := productUC.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.SalePrice.IsZero(), "Compute no debe cachear el precio")
}

func TestPricingUseCase_ComputeAndSaveCachea(t *testing.T) {
	ctx := context.Background()
	products := memory.NewProductStore()
	config := memory.NewConfigStore()
	seedConfig(t, config)

	productUC := usecase.NewProductUseCase(products)
	created, err := productUC.Create(ctx, dto.CreateProductRequest{
		Name:             "Café 500g",
		PurchaseCost:     decimal.NewFromInt(10_000),
		DesiredMarginPct: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	uc := usecase.NewPricingUseCase(products, config)
	res, err := uc.ComputeAndSave(ctx, created.ID)
	require.NoError(t, err)

	stored, err := productUC.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.SalePrice.Equal(res.FinalPrice), "el precio queda cacheado en la entidad")
	assert.True(t, stored.UnitProfit.Equal(res.UnitProfit))
}

func TestPricingUseCase_ProductoInexistente(t *testing.T) {
	uc := usecase.NewPricingUseCase(memory.NewProductStore(), memory.NewConfigStore())

	_, err := uc.Compute(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestPricingUseCase_EmpacadoDividePorUnidades para empacados el costo de
// compra y el gasto asignado entran al motor divididos por las unidades del
// paquete; el costo fijo por unidad no.
func TestPricingUseCase_EmpacadoDividePorUnidades(t *testing.T) {
	ctx := context.Background()
	products := memory.NewProductStore()
	config := memory.NewConfigStore()
	seedConfig(t, config)

	productUC := usecase.NewProductUseCase(products)
	created, err := productUC.Create(ctx, dto.CreateProductRequest{
		Name:               "Gaseosa x6",
		PurchaseCost:       decimal.NewFromInt(60_000),
		FixedCostAllocated: decimal.NewFromInt(12_000),
		DesiredMarginPct:   decimal.NewFromInt(30),
		IsPackaged:         true,
		UnitsPerPackage:    6,
		PackageCount:       2,
	})
	require.NoError(t, err)
	require.Equal(t, 12, created.StockQuantity)

	uc := usecase.NewPricingUseCase(products, config)
	res, err := uc.Compute(ctx, created.ID)
	require.NoError(t, err)

	// base = 60.000/12 + 12.000/12 + 10.000 = 5.000 + 1.000 + 10.000
	assert.True(t, res.BaseCost.Equal(decimal.NewFromInt(16_000)),
		"baseCost empacado debe ser 16.000, fue %s", res.BaseCost)
}

func TestPricingUseCase_ConfiguracionInvalida(t *testing.T) {
	ctx := context.Background()
	products := memory.NewProductStore()
	config := memory.NewConfigStore()

	cfg := entity.BusinessConfig{EstimatedMonthlySalesVolume: 100}
	cfg.OperatingPercentages.Set("todo", decimal.NewFromInt(100))
	require.NoError(t, config.SaveBusinessConfig(ctx, &cfg))

	productUC := usecase.NewProductUseCase(products)
	created, err := productUC.Create(ctx, dto.CreateProductRequest{
		Name:         "X",
		PurchaseCost: decimal.NewFromInt(1_000),
	})
	require.NoError(t, err)

	uc := usecase.NewPricingUseCase(products, config)
	_, err = uc.Compute(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}
