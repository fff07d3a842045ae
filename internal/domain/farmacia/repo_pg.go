package farmacia

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

const medicamentoCols = `id, nombre, descripcion, presentacion, stock, precio, created_at, updated_at`

type medicamentoRepoPG struct{ db queryable }

func NewMedicamentoRepoPG(pool *pgxpool.Pool) MedicamentoRepository {
	return &medicamentoRepoPG{db: pool}
}

func scanMedicamento(row pgx.Row) (*Medicamento, error) {
	var m Medicamento
	err := row.Scan(&m.ID, &m.Nombre, &m.Descripcion, &m.Presentacion,
		&m.Stock, &m.Precio, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *medicamentoRepoPG) List(ctx context.Context) ([]*Medicamento, error) {
	rows, err := r.db.Query(ctx, `SELECT `+medicamentoCols+` FROM medicamentos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Medicamento{}
	for rows.Next() {
		m, err := scanMedicamento(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *medicamentoRepoPG) GetByID(ctx context.Context, id int64) (*Medicamento, error) {
	m, err := scanMedicamento(r.db.QueryRow(ctx, `SELECT `+medicamentoCols+` FROM medicamentos WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return m, nil
}

func (r *medicamentoRepoPG) Create(ctx context.Context, med *Medicamento) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO medicamentos (nombre, descripcion, presentacion, stock, precio)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at`,
		med.Nombre, med.Descripcion, med.Presentacion, med.Stock, med.Precio).
		Scan(&med.ID, &med.CreatedAt, &med.UpdatedAt)
}

func (r *medicamentoRepoPG) Update(ctx context.Context, med *Medicamento) error {
	err := r.db.QueryRow(ctx, `
		UPDATE medicamentos SET nombre=$2, descripcion=$3, presentacion=$4,
			stock=$5, precio=$6, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		med.ID, med.Nombre, med.Descripcion, med.Presentacion, med.Stock, med.Precio).
		Scan(&med.UpdatedAt)
	return notFoundOr(err)
}

func (r *medicamentoRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM medicamentos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const recetaCols = `id, consulta_medica_id, medicamento_id, dosis, frecuencia, duracion, created_at, updated_at`

type recetaRepoPG struct{ db queryable }

func NewRecetaMedicaRepoPG(pool *pgxpool.Pool) RecetaMedicaRepository {
	return &recetaRepoPG{db: pool}
}

func scanReceta(row pgx.Row) (*RecetaMedica, error) {
	var rec RecetaMedica
	err := row.Scan(&rec.ID, &rec.ConsultaMedicaID, &rec.MedicamentoID,
		&rec.Dosis, &rec.Frecuencia, &rec.Duracion, &rec.CreatedAt, &rec.UpdatedAt)
	return &rec, err
}

func (r *recetaRepoPG) List(ctx context.Context) ([]*RecetaMedica, error) {
	rows, err := r.db.Query(ctx, `SELECT `+recetaCols+` FROM recetas_medicas ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*RecetaMedica{}
	for rows.Next() {
		rec, err := scanReceta(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

func (r *recetaRepoPG) GetByID(ctx context.Context, id int64) (*RecetaMedica, error) {
	rec, err := scanReceta(r.db.QueryRow(ctx, `SELECT `+recetaCols+` FROM recetas_medicas WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return rec, nil
}

func (r *recetaRepoPG) Create(ctx context.Context, rec *RecetaMedica) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO recetas_medicas (consulta_medica_id, medicamento_id, dosis, frecuencia, duracion)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at`,
		rec.ConsultaMedicaID, rec.MedicamentoID, rec.Dosis, rec.Frecuencia, rec.Duracion).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *recetaRepoPG) Update(ctx context.Context, rec *RecetaMedica) error {
	err := r.db.QueryRow(ctx, `
		UPDATE recetas_medicas SET consulta_medica_id=$2, medicamento_id=$3,
			dosis=$4, frecuencia=$5, duracion=$6, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		rec.ID, rec.ConsultaMedicaID, rec.MedicamentoID, rec.Dosis, rec.Frecuencia, rec.Duracion).
		Scan(&rec.UpdatedAt)
	return notFoundOr(err)
}

func (r *recetaRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recetas_medicas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
