package orders

import "context"

// Store is the order/inventory gateway. Every mutating operation is a single
// atomic unit at the store level: the stock check, the stock adjustment and
// the order row change commit together or not at all. Callers must never
// stitch these together from separate round trips.
type Store interface {
	// CreatePending inserts a pending order and decrements product stock in
	// one transaction. Returns ErrProductNotFound or ErrInsufficientStock
	// with no observable side effect.
	CreatePending(ctx context.Context, o *Order) (int64, error)

	// Cancel restores the order's quantity to product stock and marks the
	// order cancelled, exactly once. Returns ErrOrderNotFound or
	// ErrAlreadyCancelled, the latter leaving stock untouched.
	Cancel(ctx context.Context, orderID int64) (*Order, error)

	// UpdateStatus moves an order between non-terminal states. Returns
	// ErrOrderNotFound or ErrInvalidStatus.
	UpdateStatus(ctx context.Context, orderID int64, to Status) error

	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	GetStatus(ctx context.Context, orderID int64) (Status, error)
}
