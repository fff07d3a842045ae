package pacientes

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

const pacienteCols = `id, nombre, documento, telefono, email, direccion, ciudad_id, created_at, updated_at`

type pacienteRepoPG struct{ db queryable }

func NewPacienteRepoPG(pool *pgxpool.Pool) PacienteRepository {
	return &pacienteRepoPG{db: pool}
}

func scanPaciente(row pgx.Row) (*Paciente, error) {
	var p Paciente
	err := row.Scan(&p.ID, &p.Nombre, &p.Documento, &p.Telefono, &p.Email,
		&p.Direccion, &p.CiudadID, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *pacienteRepoPG) List(ctx context.Context) ([]*Paciente, error) {
	rows, err := r.db.Query(ctx, `SELECT `+pacienteCols+` FROM pacientes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Paciente{}
	for rows.Next() {
		p, err := scanPaciente(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *pacienteRepoPG) GetByID(ctx context.Context, id int64) (*Paciente, error) {
	p, err := scanPaciente(r.db.QueryRow(ctx, `SELECT `+pacienteCols+` FROM pacientes WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return p, nil
}

func (r *pacienteRepoPG) Create(ctx context.Context, pac *Paciente) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO pacientes (nombre, documento, telefono, email, direccion, ciudad_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at`,
		pac.Nombre, pac.Documento, pac.Telefono, pac.Email, pac.Direccion, pac.CiudadID).
		Scan(&pac.ID, &pac.CreatedAt, &pac.UpdatedAt)
}

func (r *pacienteRepoPG) Update(ctx context.Context, pac *Paciente) error {
	err := r.db.QueryRow(ctx, `
		UPDATE pacientes SET nombre=$2, documento=$3, telefono=$4, email=$5,
			direccion=$6, ciudad_id=$7, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		pac.ID, pac.Nombre, pac.Documento, pac.Telefono, pac.Email, pac.Direccion, pac.CiudadID).
		Scan(&pac.UpdatedAt)
	return notFoundOr(err)
}

func (r *pacienteRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pacientes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const historiaCols = `id, paciente_id, antecedentes, alergias, observaciones, created_at, updated_at`

type historiaRepoPG struct{ db queryable }

func NewHistoriaClinicaRepoPG(pool *pgxpool.Pool) HistoriaClinicaRepository {
	return &historiaRepoPG{db: pool}
}

func scanHistoria(row pgx.Row) (*HistoriaClinica, error) {
	var h HistoriaClinica
	err := row.Scan(&h.ID, &h.PacienteID, &h.Antecedentes, &h.Alergias,
		&h.Observaciones, &h.CreatedAt, &h.UpdatedAt)
	return &h, err
}

func (r *historiaRepoPG) List(ctx context.Context) ([]*HistoriaClinica, error) {
	rows, err := r.db.Query(ctx, `SELECT `+historiaCols+` FROM historias_clinicas ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*HistoriaClinica{}
	for rows.Next() {
		h, err := scanHistoria(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

func (r *historiaRepoPG) GetByID(ctx context.Context, id int64) (*HistoriaClinica, error) {
	h, err := scanHistoria(r.db.QueryRow(ctx, `SELECT `+historiaCols+` FROM historias_clinicas WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return h, nil
}

func (r *historiaRepoPG) Create(ctx context.Context, his *HistoriaClinica) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO historias_clinicas (paciente_id, antecedentes, alergias, observaciones)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at, updated_at`,
		his.PacienteID, his.Antecedentes, his.Alergias, his.Observaciones).
		Scan(&his.ID, &his.CreatedAt, &his.UpdatedAt)
}

func (r *historiaRepoPG) Update(ctx context.Context, his *HistoriaClinica) error {
	err := r.db.QueryRow(ctx, `
		UPDATE historias_clinicas SET paciente_id=$2, antecedentes=$3, alergias=$4,
			observaciones=$5, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		his.ID, his.PacienteID, his.Antecedentes, his.Alergias, his.Observaciones).
		Scan(&his.UpdatedAt)
	return notFoundOr(err)
}

func (r *historiaRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM historias_clinicas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
