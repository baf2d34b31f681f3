package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/precios-pro/internal/application/dto"
	"github.com/tu-usuario/precios-pro/internal/domain"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/pricing"
	"github.com/tu-usuario/precios-pro/internal/domain/repository"
)

// PricingUseCase orquesta el motor de precios para un producto: normaliza los
// costos al por-unidad, ejecuta el despeje y, solo si el llamador lo pide,
// persiste el precio y la utilidad sobre la entidad. El motor en sí es puro;
// la decisión de guardar vive acá.
type PricingUseCase struct {
	products repository.ProductRepository
	config   repository.ConfigRepository
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(products repository.ProductRepository, config repository.ConfigRepository) *PricingUseCase {
	return &PricingUseCase{products: products, config: config}
}

// Compute calcula precio y utilidad para un producto sin persistir nada.
func (uc *PricingUseCase) Compute(ctx context.Context, productID string) (*dto.PricingResponse, error) {
	_, res, err := uc.compute(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := toPricingResponse(res)
	out.ProductID = productID
	return out, nil
}

// ComputeAndSave calcula y cachea SalePrice, UnitProfit y UnitCost en el
// producto.
func (uc *PricingUseCase) ComputeAndSave(ctx context.Context, productID string) (*dto.PricingResponse, error) {
	product, res, err := uc.compute(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.SalePrice = res.FinalPrice
	product.UnitProfit = res.UnitProfit
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("guardar precio calculado: %w", err)
	}

	out := toPricingResponse(res)
	out.ProductID = productID
	return out, nil
}

// Preview calcula un precio con entradas sueltas, sin producto persistido
// (simulador de la pantalla de captura).
func (uc *PricingUseCase) Preview(ctx context.Context, in pricing.PricingInput) (*dto.PricingResponse, error) {
	cfg, err := uc.config.GetBusinessConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	res, err := pricing.ComputePricing(in, *cfg)
	if err != nil {
		return nil, err
	}
	return toPricingResponse(res), nil
}

func (uc *PricingUseCase) compute(ctx context.Context, productID string) (*entity.Product, pricing.PricingResult, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, pricing.PricingResult{}, err
	}
	if product == nil {
		return nil, pricing.PricingResult{}, domain.ErrNotFound
	}

	cfg, err := uc.config.GetBusinessConfig(ctx)
	if err != nil {
		return nil, pricing.PricingResult{}, fmt.Errorf("cargar configuración: %w", err)
	}

	res, err := pricing.ComputePricing(pricingInputFor(product), *cfg)
	if err != nil {
		return nil, pricing.PricingResult{}, err
	}
	return product, res, nil
}

// pricingInputFor arma la entrada por unidad del motor. Para empacados, el
// costo de compra y el gasto asignado se dividen entre las unidades totales
// del paquete; el costo fijo por unidad NO (ya es una asignación mensual por
// unidad vendida).
func pricingInputFor(p *entity.Product) pricing.PricingInput {
	unitCost := p.PurchaseCost
	extra := p.FixedCostAllocated
	if p.IsPackaged && p.UnitsPerPackage > 0 && p.PackageCount > 0 {
		totalUnits := decimal.NewFromInt(int64(p.UnitsPerPackage * p.PackageCount))
		unitCost = p.UnitCost // ya derivado por la normalización
		extra = extra.Div(totalUnits)
	}
	return pricing.PricingInput{
		UnitCost:         unitCost,
		ExtraCost:        extra,
		DesiredMarginPct: p.DesiredMarginPct,
	}
}

func toPricingResponse(res pricing.PricingResult) *dto.PricingResponse {
	return &dto.PricingResponse{
		FinalPrice:       res.FinalPrice,
		UnitProfit:       res.UnitProfit,
		BaseCost:         res.BaseCost,
		FixedCostPerUnit: res.FixedCostPerUnit,
		UnitCost:         res.UnitCost,
	}
}
