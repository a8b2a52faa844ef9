package orders

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore implements Store with the same atomicity contract as the
// PostgreSQL repo, guarded by a single mutex. It backs the service tests.
type MemoryStore struct {
	mu     sync.Mutex
	stock  map[int64]int
	orders map[int64]*Order
	nextID int64
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		stock:  map[int64]int{},
		orders: map[int64]*Order{},
	}
}

// SeedProduct registers a product id with an initial stock level.
func (m *MemoryStore) SeedProduct(productID int64, stock int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stock[productID] = stock
}

// StockOf reports the current stock of a seeded product.
func (m *MemoryStore) StockOf(productID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stock[productID]
}

func (m *MemoryStore) CreatePending(_ context.Context, o *Order) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stock, ok := m.stock[o.ProductID]
	if !ok {
		return 0, ErrProductNotFound
	}
	if stock < o.Quantity {
		return 0, ErrInsufficientStock
	}
	m.stock[o.ProductID] = stock - o.Quantity

	m.nextID++
	clone := *o
	clone.ID = m.nextID
	clone.Status = StatusPending
	clone.CreatedAt = time.Now()
	m.orders[clone.ID] = &clone
	return clone.ID, nil
}

func (m *MemoryStore) Cancel(_ context.Context, orderID int64) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if o.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if _, ok := m.stock[o.ProductID]; ok {
		m.stock[o.ProductID] += o.Quantity
	}
	o.Status = StatusCancelled
	clone := *o
	return &clone, nil
}

func (m *MemoryStore) UpdateStatus(_ context.Context, orderID int64, to Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if !CanTransition(o.Status, to) {
		return ErrInvalidStatus
	}
	o.Status = to
	return nil
}

func (m *MemoryStore) ListByUser(_ context.Context, userID int64) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	// newest first, matching the pgx repo's ordering
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *MemoryStore) GetStatus(_ context.Context, orderID int64) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return "", ErrOrderNotFound
	}
	return o.Status, nil
}
