package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/precios-pro/internal/application/dto"
	"github.com/tu-usuario/precios-pro/internal/domain"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/repository"
	"github.com/tu-usuario/precios-pro/internal/domain/sales"
)

// SaleTxRunner ejecuta fn con repos atados a una misma transacción. El
// registro de una venta escribe el libro y descuenta stock del producto; el
// runner garantiza que ambas escrituras entran o ninguna.
type SaleTxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		salesRepo repository.SaleRepository,
	) error) error
}

// SalesUseCase registra ventas en el libro y expone los agregados de ventana
// por producto. El registro congela precio, costo y nombre del producto como
// instantánea; ediciones posteriores del producto no tocan el libro.
type SalesUseCase struct {
	salesRepo repository.SaleRepository
	products  repository.ProductRepository
	tx        SaleTxRunner
	now       func() time.Time
}

// NewSalesUseCase construye el caso de uso. nowFn permite inyectar el reloj
// en pruebas; nil usa time.Now.
func NewSalesUseCase(salesRepo repository.SaleRepository, products repository.ProductRepository, tx SaleTxRunner, nowFn func() time.Time) *SalesUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &SalesUseCase{salesRepo: salesRepo, products: products, tx: tx, now: nowFn}
}

// Register registra una venta: valida el producto, toma la instantánea de
// precio/costo, congela los totales y descuenta stock, todo en una sola
// transacción.
func (uc *SalesUseCase) Register(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	mode := in.SaleMode
	if mode == "" {
		mode = entity.SaleModeUnit
	}
	if mode != entity.SaleModeUnit && mode != entity.SaleModePackage {
		return nil, domain.ErrInvalidInput
	}

	date := in.Date
	if date.IsZero() {
		date = uc.now()
	}

	var sale *entity.Sale
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, salesRepo repository.SaleRepository) error {
		product, err := products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		sale = entity.NewSale(
			uuid.New().String(),
			product.ID, product.Name,
			in.Quantity,
			product.SalePrice, product.EffectiveUnitCost(),
			date, in.Customer, in.PaymentMethod, mode,
		)
		if sale == nil {
			return domain.ErrInvalidInput
		}

		if err := salesRepo.Create(ctx, sale); err != nil {
			return fmt.Errorf("registrar venta: %w", err)
		}

		// El stock se descuenta con piso en 0: vender más de lo registrado
		// no bloquea la venta, se refleja en la alerta de bajo stock.
		units := in.Quantity
		if mode == entity.SaleModePackage {
			units = in.Quantity * product.UnitsPerPackage
		}
		product.StockQuantity -= units
		if product.StockQuantity < 0 {
			product.StockQuantity = 0
		}
		product.LastSaleDate = date
		product.UpdatedAt = uc.now()
		if err := products.Update(ctx, product); err != nil {
			return fmt.Errorf("descontar stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// GetByID obtiene una entrada del libro.
func (uc *SalesUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.salesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// WindowSummary unidades e ingresos de un producto en la ventana de días
// indicada (0 usa la ventana estándar de 30). Producto inexistente devuelve
// ErrNotFound en vez de un agregado engañosamente en cero.
func (uc *SalesUseCase) WindowSummary(ctx context.Context, productID string, windowDays int) (*dto.WindowSummaryDTO, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if windowDays <= 0 {
		windowDays = sales.DefaultWindowDays
	}

	now := uc.now()
	ledger, err := uc.salesRepo.ListSince(ctx, now.AddDate(0, 0, -windowDays))
	if err != nil {
		return nil, fmt.Errorf("leer libro de ventas: %w", err)
	}

	return &dto.WindowSummaryDTO{
		ProductID:  productID,
		WindowDays: windowDays,
		UnitsSold:  sales.UnitsSoldInWindow(productID, ledger, now, windowDays),
		Revenue:    sales.RevenueInWindowForProduct(productID, ledger, now, windowDays),
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:              s.ID,
		ProductID:       s.ProductID,
		ProductName:     s.ProductName,
		Quantity:        s.Quantity,
		SalePriceAtSale: s.SalePriceAtSale,
		UnitCostAtSale:  s.UnitCostAtSale,
		Date:            s.Date,
		Customer:        s.Customer,
		PaymentMethod:   s.PaymentMethod,
		SaleMode:        s.SaleMode,
		TotalRevenue:    s.TotalRevenue,
		TotalProfit:     s.TotalProfit,
	}
}
