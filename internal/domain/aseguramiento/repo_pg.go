package aseguramiento

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

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

const aseguradoraCols = `id, nombre, nit, direccion, telefono, email, ciudad_id, created_at, updated_at`

type aseguradoraRepoPG struct{ db queryable }

func NewAseguradoraRepoPG(pool *pgxpool.Pool) AseguradoraRepository {
	return &aseguradoraRepoPG{db: pool}
}

func scanAseguradora(row pgx.Row) (*Aseguradora, error) {
	var a Aseguradora
	err := row.Scan(&a.ID, &a.Nombre, &a.NIT, &a.Direccion, &a.Telefono,
		&a.Email, &a.CiudadID, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *aseguradoraRepoPG) List(ctx context.Context) ([]*Aseguradora, error) {
	rows, err := r.db.Query(ctx, `SELECT `+aseguradoraCols+` FROM aseguradoras ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Aseguradora{}
	for rows.Next() {
		a, err := scanAseguradora(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *aseguradoraRepoPG) GetByID(ctx context.Context, id int64) (*Aseguradora, error) {
	a, err := scanAseguradora(r.db.QueryRow(ctx, `SELECT `+aseguradoraCols+` FROM aseguradoras WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return a, nil
}

func (r *aseguradoraRepoPG) Create(ctx context.Context, a *Aseguradora) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO aseguradoras (nombre, nit, direccion, telefono, email, ciudad_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at`,
		a.Nombre, a.NIT, a.Direccion, a.Telefono, a.Email, a.CiudadID).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *aseguradoraRepoPG) Update(ctx context.Context, a *Aseguradora) error {
	err := r.db.QueryRow(ctx, `
		UPDATE aseguradoras SET nombre=$2, nit=$3, direccion=$4, telefono=$5,
			email=$6, ciudad_id=$7, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		a.ID, a.Nombre, a.NIT, a.Direccion, a.Telefono, a.Email, a.CiudadID).
		Scan(&a.UpdatedAt)
	return notFoundOr(err)
}

func (r *aseguradoraRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM aseguradoras WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const afiliacionCols = `id, paciente_id, aseguradora_id,
	to_char(fecha_inicio, 'YYYY-MM-DD'), to_char(fecha_fin, 'YYYY-MM-DD'), estado, created_at, updated_at`

type afiliacionRepoPG struct{ db queryable }

func NewAfiliacionRepoPG(pool *pgxpool.Pool) AfiliacionRepository {
	return &afiliacionRepoPG{db: pool}
}

func scanAfiliacion(row pgx.Row) (*Afiliacion, error) {
	var af Afiliacion
	err := row.Scan(&af.ID, &af.PacienteID, &af.AseguradoraID,
		&af.FechaInicio, &af.FechaFin, &af.Estado, &af.CreatedAt, &af.UpdatedAt)
	return &af, err
}

func (r *afiliacionRepoPG) List(ctx context.Context) ([]*Afiliacion, error) {
	rows, err := r.db.Query(ctx, `SELECT `+afiliacionCols+` FROM afiliaciones ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Afiliacion{}
	for rows.Next() {
		af, err := scanAfiliacion(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, af)
	}
	return items, rows.Err()
}

func (r *afiliacionRepoPG) GetByID(ctx context.Context, id int64) (*Afiliacion, error) {
	af, err := scanAfiliacion(r.db.QueryRow(ctx, `SELECT `+afiliacionCols+` FROM afiliaciones WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return af, nil
}

func (r *afiliacionRepoPG) Create(ctx context.Context, af *Afiliacion) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO afiliaciones (paciente_id, aseguradora_id, fecha_inicio, fecha_fin, estado)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at`,
		af.PacienteID, af.AseguradoraID, af.FechaInicio, af.FechaFin, af.Estado).
		Scan(&af.ID, &af.CreatedAt, &af.UpdatedAt)
}

func (r *afiliacionRepoPG) Update(ctx context.Context, af *Afiliacion) error {
	err := r.db.QueryRow(ctx, `
		UPDATE afiliaciones SET paciente_id=$2, aseguradora_id=$3, fecha_inicio=$4,
			fecha_fin=$5, estado=$6, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		af.ID, af.PacienteID, af.AseguradoraID, af.FechaInicio, af.FechaFin, af.Estado).
		Scan(&af.UpdatedAt)
	return notFoundOr(err)
}

func (r *afiliacionRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM afiliaciones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
