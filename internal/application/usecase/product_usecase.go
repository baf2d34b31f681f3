package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/precios-pro/internal/application/dto"
	"github.com/tu-usuario/precios-pro/internal/domain"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/pricing"
	"github.com/tu-usuario/precios-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Mantiene el invariante de
// empaque en cada escritura: stock y costo unitario de un empacado siempre
// salen de NormalizePackage, nunca de captura manual.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Si es empacado, stock y costo unitario se
// derivan de los campos de paquete; el stock capturado a mano se ignora.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.PurchaseCost.IsNegative() || in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.IsPackaged && in.UnitsPerPackage <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:                    uuid.New().String(),
		Name:                  in.Name,
		Category:              in.Category,
		PurchaseCost:          in.PurchaseCost,
		FixedCostAllocated:    in.FixedCostAllocated,
		DesiredMarginPct:      in.DesiredMarginPct,
		StockQuantity:         in.StockQuantity,
		EstimatedMonthlySales: in.EstimatedMonthlySales,
		CompetitorPrice:       in.CompetitorPrice,
		IsPackaged:            in.IsPackaged,
		UnitsPerPackage:       in.UnitsPerPackage,
		PackageCount:          in.PackageCount,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	applyPackageNormalization(product)

	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto; campos nil no se tocan. Cualquier edición de
// costo de compra o de campos de empaque re-ejecuta la normalización para
// conservar el invariante stock = unidades*paquetes.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	wasPackaged := product.IsPackaged

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.PurchaseCost != nil {
		if in.PurchaseCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchaseCost = *in.PurchaseCost
	}
	if in.FixedCostAllocated != nil {
		product.FixedCostAllocated = *in.FixedCostAllocated
	}
	if in.DesiredMarginPct != nil {
		product.DesiredMarginPct = *in.DesiredMarginPct
	}
	if in.EstimatedMonthlySales != nil {
		product.EstimatedMonthlySales = *in.EstimatedMonthlySales
	}
	if in.CompetitorPrice != nil {
		product.CompetitorPrice = *in.CompetitorPrice
	}
	if in.IsPackaged != nil {
		product.IsPackaged = *in.IsPackaged
	}
	if in.UnitsPerPackage != nil {
		product.UnitsPerPackage = *in.UnitsPerPackage
	}
	if in.PackageCount != nil {
		product.PackageCount = *in.PackageCount
	}
	if product.IsPackaged && product.UnitsPerPackage <= 0 {
		return nil, domain.ErrInvalidInput
	}
	// Al desactivar el empaque el stock vuelve a 0 (política de reset
	// explícita); el valor anterior no se preserva.
	if wasPackaged && !product.IsPackaged {
		product.StockQuantity = 0
	}
	// El stock manual solo aplica a productos sueltos; para empacados lo
	// impone la normalización.
	if in.StockQuantity != nil && !product.IsPackaged {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockQuantity = *in.StockQuantity
	}

	applyPackageNormalization(product)
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// applyPackageNormalization aplica el resultado del normalizador sobre la
// entidad (empacado: deriva stock y costo unitario; suelto: resetea campos de
// empaque).
func applyPackageNormalization(p *entity.Product) {
	res := pricing.NormalizePackage(pricing.PackageInput{
		IsPackaged:      p.IsPackaged,
		PurchaseCost:    p.PurchaseCost,
		UnitsPerPackage: p.UnitsPerPackage,
		PackageCount:    p.PackageCount,
	})
	if p.IsPackaged {
		p.StockQuantity = res.StockQuantity
		p.UnitCost = res.UnitCost
		return
	}
	p.UnitsPerPackage = res.UnitsPerPackage
	p.PackageCount = 0
	p.UnitCost = res.UnitCost
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Category:              p.Category,
		PurchaseCost:          p.PurchaseCost,
		FixedCostAllocated:    p.FixedCostAllocated,
		DesiredMarginPct:      p.DesiredMarginPct,
		SalePrice:             p.SalePrice,
		UnitProfit:            p.UnitProfit,
		StockQuantity:         p.StockQuantity,
		EstimatedMonthlySales: p.EstimatedMonthlySales,
		CompetitorPrice:       p.CompetitorPrice,
		LastSaleDate:          p.LastSaleDate,
		IsPackaged:            p.IsPackaged,
		UnitsPerPackage:       p.UnitsPerPackage,
		PackageCount:          p.PackageCount,
		UnitCost:              p.UnitCost,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
