package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

var _ Store = (*Repo)(nil)

const userColumns = `id, nombres, apellidos, correo_electronico, contrasena, rol,
	COALESCE(telefono,''), COALESCE(direccion,'')`

func (r *Repo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE correo_electronico=$1`, email)
}

func (r *Repo) FindByID(ctx context.Context, id int64) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id=$1`, id)
}

func (r *Repo) findOne(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	err := r.DB.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordDigest, &u.Role, &u.Phone, &u.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) Create(ctx context.Context, u *User) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO usuarios (nombres, apellidos, correo_electronico, contrasena, rol)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		u.FirstName, u.LastName, u.Email, u.PasswordDigest, u.Role,
	).Scan(&id)
	if err != nil {
		// unique_violation on correo_electronico
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, u *User) error {
	ct, err := r.DB.Exec(ctx, `
		UPDATE usuarios
		SET nombres=$2, apellidos=$3, correo_electronico=$4, telefono=$5, direccion=$6
		WHERE id=$1`,
		u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.Address)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
