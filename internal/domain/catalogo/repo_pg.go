package catalogo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

const ciudadCols = `id, nombre, created_at, updated_at`

type ciudadRepoPG struct{ db queryable }

func NewCiudadRepoPG(pool *pgxpool.Pool) CiudadRepository {
	return &ciudadRepoPG{db: pool}
}

func scanCiudad(row pgx.Row) (*Ciudad, error) {
	var c Ciudad
	err := row.Scan(&c.ID, &c.Nombre, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *ciudadRepoPG) List(ctx context.Context) ([]*Ciudad, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ciudadCols+` FROM ciudades ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Ciudad{}
	for rows.Next() {
		c, err := scanCiudad(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *ciudadRepoPG) GetByID(ctx context.Context, id int64) (*Ciudad, error) {
	c, err := scanCiudad(r.db.QueryRow(ctx, `SELECT `+ciudadCols+` FROM ciudades WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ciudadRepoPG) Create(ctx context.Context, ciudad *Ciudad) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO ciudades (nombre) VALUES ($1) RETURNING id, created_at, updated_at`,
		ciudad.Nombre).Scan(&ciudad.ID, &ciudad.CreatedAt, &ciudad.UpdatedAt)
}

func (r *ciudadRepoPG) Update(ctx context.Context, ciudad *Ciudad) error {
	err := r.db.QueryRow(ctx,
		`UPDATE ciudades SET nombre = $2, updated_at = now() WHERE id = $1 RETURNING updated_at`,
		ciudad.ID, ciudad.Nombre).Scan(&ciudad.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *ciudadRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ciudades WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const especialidadCols = `id, nombre, created_at, updated_at`

type especialidadRepoPG struct{ db queryable }

func NewEspecialidadRepoPG(pool *pgxpool.Pool) EspecialidadRepository {
	return &especialidadRepoPG{db: pool}
}

func scanEspecialidad(row pgx.Row) (*Especialidad, error) {
	var e Especialidad
	err := row.Scan(&e.ID, &e.Nombre, &e.CreatedAt, &e.UpdatedAt)
	return &e, err
}

func (r *especialidadRepoPG) List(ctx context.Context) ([]*Especialidad, error) {
	rows, err := r.db.Query(ctx, `SELECT `+especialidadCols+` FROM especialidades ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Especialidad{}
	for rows.Next() {
		e, err := scanEspecialidad(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *especialidadRepoPG) GetByID(ctx context.Context, id int64) (*Especialidad, error) {
	e, err := scanEspecialidad(r.db.QueryRow(ctx, `SELECT `+especialidadCols+` FROM especialidades WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *especialidadRepoPG) Create(ctx context.Context, esp *Especialidad) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO especialidades (nombre) VALUES ($1) RETURNING id, created_at, updated_at`,
		esp.Nombre).Scan(&esp.ID, &esp.CreatedAt, &esp.UpdatedAt)
}

func (r *especialidadRepoPG) Update(ctx context.Context, esp *Especialidad) error {
	err := r.db.QueryRow(ctx,
		`UPDATE especialidades SET nombre = $2, updated_at = now() WHERE id = $1 RETURNING updated_at`,
		esp.ID, esp.Nombre).Scan(&esp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *especialidadRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM especialidades WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *especialidadRepoPG) HasCitas(ctx context.Context, id int64) (bool, error) {
	var has bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM citas WHERE especialidad_id = $1)`, id).Scan(&has)
	return has, err
}
