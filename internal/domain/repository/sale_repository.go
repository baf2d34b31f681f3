package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/precios-pro/internal/domain/entity"
)

// SaleRepository puerto de persistencia del libro de ventas. El libro es de
// solo inserción: no hay Update ni Delete, una venta registrada no cambia.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// ListSince devuelve las ventas con fecha >= since, las más recientes
	// primero. Los agregados de ventana filtran en memoria sobre este corte.
	ListSince(ctx context.Context, since time.Time) ([]*entity.Sale, error)
	ListAll(ctx context.Context) ([]*entity.Sale, error)
}
