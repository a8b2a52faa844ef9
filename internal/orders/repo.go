package orders

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the PostgreSQL order store. Purchase and cancel run inside a
// transaction that locks the affected rows (FOR UPDATE), so concurrent
// requests against the same product or order serialize at the database.
type Repo struct{ DB *pgxpool.Pool }

var _ Store = (*Repo)(nil)

func (r *Repo) CreatePending(ctx context.Context, o *Order) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var stock int
	err = tx.QueryRow(ctx, `SELECT cantidad FROM producto WHERE id=$1 FOR UPDATE`, o.ProductID).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}
	if stock < o.Quantity {
		return 0, ErrInsufficientStock
	}

	ct, err := tx.Exec(ctx,
		`UPDATE producto SET cantidad = cantidad - $2 WHERE id=$1 AND cantidad >= $2`,
		o.ProductID, o.Quantity)
	if err != nil {
		return 0, err
	}
	if ct.RowsAffected() != 1 {
		return 0, ErrInsufficientStock
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO pedidos (usuario_id, producto_id, nombre_producto, descripcion_producto,
		                     imagen_principal, cantidad, precio_total, direccion_envio, estado)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id`,
		o.UserID, o.ProductID, o.ProductName, o.ProductDescription,
		o.MainImage, o.Quantity, o.TotalPrice, o.ShippingAddress, StatusPending,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repo) Cancel(ctx context.Context, orderID int64) (*Order, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var o Order
	err = tx.QueryRow(ctx, `
		SELECT id, usuario_id, producto_id, nombre_producto, COALESCE(descripcion_producto,''),
		       COALESCE(imagen_principal,''), cantidad, precio_total, direccion_envio, estado, fecha_creacion
		FROM pedidos WHERE id=$1 FOR UPDATE`, orderID).
		Scan(&o.ID, &o.UserID, &o.ProductID, &o.ProductName, &o.ProductDescription,
			&o.MainImage, &o.Quantity, &o.TotalPrice, &o.ShippingAddress, &o.Status, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if o.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	// Restoring stock on a deleted listing updates zero rows; the order is
	// still cancelled.
	if _, err := tx.Exec(ctx,
		`UPDATE producto SET cantidad = cantidad + $2 WHERE id=$1`,
		o.ProductID, o.Quantity); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE pedidos SET estado=$2 WHERE id=$1`, orderID, StatusCancelled); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	o.Status = StatusCancelled
	return &o, nil
}

func (r *Repo) UpdateStatus(ctx context.Context, orderID int64, to Status) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var current Status
	err = tx.QueryRow(ctx, `SELECT estado FROM pedidos WHERE id=$1 FOR UPDATE`, orderID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if !CanTransition(current, to) {
		return ErrInvalidStatus
	}

	if _, err := tx.Exec(ctx, `UPDATE pedidos SET estado=$2 WHERE id=$1`, orderID, to); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, usuario_id, producto_id, nombre_producto, COALESCE(descripcion_producto,''),
		       COALESCE(imagen_principal,''), cantidad, precio_total, direccion_envio, estado, fecha_creacion
		FROM pedidos WHERE usuario_id=$1 ORDER BY fecha_creacion DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.ProductName, &o.ProductDescription,
			&o.MainImage, &o.Quantity, &o.TotalPrice, &o.ShippingAddress, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repo) GetStatus(ctx context.Context, orderID int64) (Status, error) {
	var s Status
	err := r.DB.QueryRow(ctx, `SELECT estado FROM pedidos WHERE id=$1`, orderID).Scan(&s)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}
	return s, nil
}
