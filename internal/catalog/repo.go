package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

var _ Store = (*Repo)(nil)

const productColumns = `id, nombre, descripcion, precio, cantidad,
	imagen_principal, imagen_segundaria, imagen_terciaria, imagen_cuarta, imagen_quinta,
	usuario_id, fecha_publicacion`

func (r *Repo) Recent(ctx context.Context, limit int) ([]Product, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+productColumns+` FROM producto ORDER BY fecha_publicacion DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *Repo) Search(ctx context.Context, term string) ([]Product, error) {
	// Parameterized pattern; the term is never concatenated into the SQL and
	// LIKE metacharacters in it match literally.
	rows, err := r.DB.Query(ctx,
		`SELECT `+productColumns+` FROM producto
		 WHERE nombre ILIKE '%'||$1||'%' OR descripcion ILIKE '%'||$1||'%'
		 ORDER BY fecha_publicacion DESC`, escapeLike(term))
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Product, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+productColumns+` FROM producto WHERE id=$1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repo) ListBySeller(ctx context.Context, sellerID int64) ([]Product, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+productColumns+` FROM producto WHERE usuario_id=$1 ORDER BY fecha_publicacion DESC`, sellerID)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *Repo) Create(ctx context.Context, p *Product) (int64, error) {
	imgs := imageColumns(p.Images)
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO producto (nombre, descripcion, precio, cantidad,
		                      imagen_principal, imagen_segundaria, imagen_terciaria, imagen_cuarta, imagen_quinta,
		                      usuario_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id`,
		p.Name, p.Description, p.Price, p.Stock,
		imgs[0], imgs[1], imgs[2], imgs[3], imgs[4],
		p.SellerID,
	).Scan(&id)
	return id, err
}

func (r *Repo) Delete(ctx context.Context, id, sellerID int64) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM producto WHERE id=$1 AND usuario_id=$2`, id, sellerID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes % and _ so an ILIKE pattern built from user input
// stays a substring match.
func escapeLike(s string) string { return likeEscaper.Replace(s) }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var p Product
	imgs := make([]*string, MaxImages)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&imgs[0], &imgs[1], &imgs[2], &imgs[3], &imgs[4],
		&p.SellerID, &p.PublishedAt)
	if err != nil {
		return nil, err
	}
	for _, img := range imgs {
		if img != nil && *img != "" {
			p.Images = append(p.Images, *img)
		}
	}
	return &p, nil
}

func collect(rows pgx.Rows) ([]Product, error) {
	defer rows.Close()
	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// imageColumns spreads up to five image paths over the fixed columns,
// leaving the rest NULL.
func imageColumns(images []string) [MaxImages]*string {
	var out [MaxImages]*string
	for i := range images {
		if i >= MaxImages {
			break
		}
		img := images[i]
		out[i] = &img
	}
	return out
}
