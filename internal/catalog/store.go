package catalog

import "context"

// Store is the listing gateway backed by the producto table.
type Store interface {
	Recent(ctx context.Context, limit int) ([]Product, error)
	Search(ctx context.Context, term string) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error) // ErrNotFound when absent
	ListBySeller(ctx context.Context, sellerID int64) ([]Product, error)
	Create(ctx context.Context, p *Product) (int64, error)
	// Delete removes the listing only when it belongs to sellerID;
	// ErrNotFound otherwise.
	Delete(ctx context.Context, id, sellerID int64) error
}
