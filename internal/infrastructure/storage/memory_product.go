package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/telegram-warehouse-bot/internal/domain/entity"
	"github.com/yourusername/telegram-warehouse-bot/internal/domain/repository"
)

// memoryProductRepository in-memory sklad store (Postgres sozlanmagan
// bo'lsa fallback, testlarda ham ishlatiladi)
type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]entity.Product // key: product ID
	byKey    map[string]string         // warehouse + "\x00" + searchKey -> ID
}

// NewMemoryProductRepository in-memory product repository yaratish
func NewMemoryProductRepository() repository.ProductRepository {
	return &memoryProductRepository{
		products: make(map[string]entity.Product),
		byKey:    make(map[string]string),
	}
}

func lookupKey(warehouse, searchKey string) string {
	return warehouse + "\x00" + searchKey
}

func (m *memoryProductRepository) FindOne(ctx context.Context, warehouse, searchKey string) (*entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byKey[lookupKey(warehouse, searchKey)]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	product := m.products[id]
	return &product, nil
}

func (m *memoryProductRepository) FindAll(ctx context.Context, warehouse string) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var res []entity.Product
	for _, p := range m.products {
		if p.Warehouse == warehouse {
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

// UpsertIncrement mutex ostida bitta qadamda bajariladi, shuning uchun
// increment-or-create lost update bermaydi
func (m *memoryProductRepository) UpsertIncrement(ctx context.Context, warehouse, searchKey, name string, delta int) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	key := lookupKey(warehouse, searchKey)
	if id, ok := m.byKey[key]; ok {
		product := m.products[id]
		product.Quantity += delta
		product.UpdatedAt = now
		m.products[id] = product
		return &product, nil
	}

	product := entity.Product{
		ID:        uuid.New().String(),
		Warehouse: warehouse,
		Name:      name,
		SearchKey: searchKey,
		Quantity:  delta,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.products[product.ID] = product
	m.byKey[key] = product.ID
	return &product, nil
}

func (m *memoryProductRepository) DecrementQuantity(ctx context.Context, id string, expected, delta int) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	// Optimistik tekshiruv: qoldiq o'zgarib ketgan bo'lsa qo'llamaymiz
	if product.Quantity != expected || delta > product.Quantity {
		return nil, repository.ErrInsufficientStock
	}
	product.Quantity -= delta
	product.UpdatedAt = time.Now()
	m.products[id] = product
	return &product, nil
}

func (m *memoryProductRepository) Delete(ctx context.Context, id string, expected int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if product.Quantity != expected {
		return repository.ErrInsufficientStock
	}
	delete(m.products, id)
	delete(m.byKey, lookupKey(product.Warehouse, product.SearchKey))
	return nil
}
