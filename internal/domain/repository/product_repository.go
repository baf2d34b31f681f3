package repository

import (
	"context"

	"github.com/tu-usuario/precios-pro/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los valores derivados (SalePrice, UnitProfit, UnitCost, StockQuantity para
// empacados) llegan ya calculados por los casos de uso; el repositorio solo
// los guarda.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
