// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Respalda las pruebas de casos de uso y el modo demo sin base de
// datos; el despliegue normal usa las implementaciones de postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/precios-pro/internal/domain"
	"github.com/tu-usuario/precios-pro/internal/domain/entity"
	"github.com/tu-usuario/precios-pro/internal/domain/repository"
)

// ProductStore implementación en memoria de repository.ProductRepository.
type ProductStore struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	order    []string // orden de creación para listados estables
}

// NewProductStore construye el almacén vacío.
func NewProductStore() *ProductStore {
	return &ProductStore{products: map[string]*entity.Product{}}
}

func (s *ProductStore) Create(_ context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *product
	s.products[product.ID] = &cp
	s.order = append(s.order, product.ID)
	return nil
}

func (s *ProductStore) GetByID(_ context.Context, id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *ProductStore) Update(_ context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	s.products[product.ID] = &cp
	return nil
}

func (s *ProductStore) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Product
	for i := offset; i < len(s.order) && len(out) < limit; i++ {
		if p, ok := s.products[s.order[i]]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *ProductStore) ListAll(_ context.Context) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(s.products))
	for _, id := range s.order {
		if p, ok := s.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *ProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// SaleStore implementación en memoria de repository.SaleRepository (libro de
// solo inserción).
type SaleStore struct {
	mu    sync.RWMutex
	sales []*entity.Sale
}

// NewSaleStore construye el libro vacío.
func NewSaleStore() *SaleStore {
	return &SaleStore{}
}

func (s *SaleStore) Create(_ context.Context, sale *entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.sales {
		if existing.ID == sale.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *sale
	s.sales = append(s.sales, &cp)
	return nil
}

func (s *SaleStore) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sale := range s.sales {
		if sale.ID == id {
			cp := *sale
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *SaleStore) ListSince(_ context.Context, since time.Time) ([]*entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Sale
	for _, sale := range s.sales {
		if !sale.Date.Before(since) {
			cp := *sale
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *SaleStore) ListAll(_ context.Context) ([]*entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		cp := *sale
		out = append(out, &cp)
	}
	return out, nil
}

// ConfigStore implementación en memoria de repository.ConfigRepository con
// valores iniciales utilizables.
type ConfigStore struct {
	mu         sync.RWMutex
	config     entity.BusinessConfig
	goals      entity.Goals
	thresholds entity.AlertThresholds
}

// NewConfigStore construye el almacén con una configuración mínima por
// defecto (volumen 1 para que la distribución de fijos esté definida).
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config: entity.BusinessConfig{EstimatedMonthlySalesVolume: 1},
		thresholds: entity.AlertThresholds{
			MinMarginPct:     decimal.NewFromInt(10),
			MinStock:         5,
			CompetitorGapPct: decimal.NewFromInt(15),
		},
	}
}

func (s *ConfigStore) GetBusinessConfig(_ context.Context) (*entity.BusinessConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := s.config.Clone()
	return &cp, nil
}

func (s *ConfigStore) SaveBusinessConfig(_ context.Context, cfg *entity.BusinessConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg.Clone()
	return nil
}

func (s *ConfigStore) GetGoals(_ context.Context) (*entity.Goals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := s.goals
	return &cp, nil
}

func (s *ConfigStore) SaveGoals(_ context.Context, goals *entity.Goals) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = *goals
	return nil
}

func (s *ConfigStore) GetAlertThresholds(_ context.Context) (*entity.AlertThresholds, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := s.thresholds
	return &cp, nil
}

func (s *ConfigStore) SaveAlertThresholds(_ context.Context, th *entity.AlertThresholds) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thresholds = *th
	return nil
}

// TxRunner versión en memoria de usecase.SaleTxRunner. No hay transacción
// real: ejecuta fn directo sobre los almacenes. Las pruebas de atomicidad de
// verdad viven en la implementación de postgres.
type TxRunner struct {
	products *ProductStore
	sales    *SaleStore
}

// NewTxRunner construye el runner sobre los dos almacenes.
func NewTxRunner(products *ProductStore, sales *SaleStore) *TxRunner {
	return &TxRunner{products: products, sales: sales}
}

func (r *TxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	salesRepo repository.SaleRepository,
) error) error {
	return fn(r.products, r.sales)
}
