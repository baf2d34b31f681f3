package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/precios-pro/internal/domain"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category, purchase_cost, fixed_cost_allocated, desired_margin_pct,
	sale_price, unit_profit, stock_quantity, estimated_monthly_sales, competitor_price, last_sale_date,
	is_packaged, units_per_package, package_count, unit_cost, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Guarda los derivados (precio, utilidad, costo
// unitario, stock de empacados) tal cual llegan del caso de uso.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.PurchaseCost, p.FixedCostAllocated, p.DesiredMarginPct,
		p.SalePrice, p.UnitProfit, p.StockQuantity, p.EstimatedMonthlySales, p.CompetitorPrice, nullableTime(p.LastSaleDate),
		p.IsPackaged, p.UnitsPerPackage, p.PackageCount, p.UnitCost, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente, derivados incluidos.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, purchase_cost = $4, fixed_cost_allocated = $5,
			desired_margin_pct = $6, sale_price = $7, unit_profit = $8, stock_quantity = $9,
			estimated_monthly_sales = $10, competitor_price = $11, last_sale_date = $12,
			is_packaged = $13, units_per_package = $14, package_count = $15, unit_cost = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.PurchaseCost, p.FixedCostAllocated,
		p.DesiredMarginPct, p.SalePrice, p.UnitProfit, p.StockQuantity,
		p.EstimatedMonthlySales, p.CompetitorPrice, nullableTime(p.LastSaleDate),
		p.IsPackaged, p.UnitsPerPackage, p.PackageCount, p.UnitCost, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con paginación, en orden de creación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListAll devuelve el catálogo completo (lo consumen los reportes ABC y de alertas).
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var lastSale *time.Time
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.PurchaseCost, &p.FixedCostAllocated, &p.DesiredMarginPct,
		&p.SalePrice, &p.UnitProfit, &p.StockQuantity, &p.EstimatedMonthlySales, &p.CompetitorPrice, &lastSale,
		&p.IsPackaged, &p.UnitsPerPackage, &p.PackageCount, &p.UnitCost, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastSale != nil {
		p.LastSaleDate = *lastSale
	}
	return &p, nil
}

// nullableTime mapea el cero de time.Time (sin venta registrada) a NULL.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
