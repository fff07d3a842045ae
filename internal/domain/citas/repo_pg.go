package citas

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

const citaCols = `id, paciente_id, especialidad_id, medico_id, consultorio_id,
	to_char(fecha, 'YYYY-MM-DD'), to_char(hora, 'HH24:MI'), estado, created_at, updated_at`

type citaRepoPG struct{ db queryable }

func NewCitaRepoPG(pool *pgxpool.Pool) CitaRepository {
	return &citaRepoPG{db: pool}
}

func scanCita(row pgx.Row) (*Cita, error) {
	var c Cita
	err := row.Scan(&c.ID, &c.PacienteID, &c.EspecialidadID, &c.MedicoID, &c.ConsultorioID,
		&c.Fecha, &c.Hora, &c.Estado, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *citaRepoPG) List(ctx context.Context) ([]*Cita, error) {
	rows, err := r.db.Query(ctx, `SELECT `+citaCols+` FROM citas ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Cita{}
	for rows.Next() {
		c, err := scanCita(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *citaRepoPG) GetByID(ctx context.Context, id int64) (*Cita, error) {
	c, err := scanCita(r.db.QueryRow(ctx, `SELECT `+citaCols+` FROM citas WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return c, nil
}

func (r *citaRepoPG) Create(ctx context.Context, cita *Cita) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO citas (paciente_id, especialidad_id, medico_id, consultorio_id, fecha, hora, estado)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at, updated_at`,
		cita.PacienteID, cita.EspecialidadID, cita.MedicoID, cita.ConsultorioID,
		cita.Fecha, cita.Hora, cita.Estado).
		Scan(&cita.ID, &cita.CreatedAt, &cita.UpdatedAt)
}

func (r *citaRepoPG) Update(ctx context.Context, cita *Cita) error {
	err := r.db.QueryRow(ctx, `
		UPDATE citas SET paciente_id=$2, especialidad_id=$3, medico_id=$4, consultorio_id=$5,
			fecha=$6, hora=$7, estado=$8, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		cita.ID, cita.PacienteID, cita.EspecialidadID, cita.MedicoID, cita.ConsultorioID,
		cita.Fecha, cita.Hora, cita.Estado).
		Scan(&cita.UpdatedAt)
	return notFoundOr(err)
}

func (r *citaRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM citas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const consultaCols = `id, cita_id, motivo, diagnostico, tratamiento,
	to_char(fecha_consulta, 'YYYY-MM-DD'), created_at, updated_at`

type consultaRepoPG struct{ db queryable }

func NewConsultaMedicaRepoPG(pool *pgxpool.Pool) ConsultaMedicaRepository {
	return &consultaRepoPG{db: pool}
}

func scanConsulta(row pgx.Row) (*ConsultaMedica, error) {
	var c ConsultaMedica
	err := row.Scan(&c.ID, &c.CitaID, &c.Motivo, &c.Diagnostico, &c.Tratamiento,
		&c.FechaConsulta, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *consultaRepoPG) List(ctx context.Context) ([]*ConsultaMedica, error) {
	rows, err := r.db.Query(ctx, `SELECT `+consultaCols+` FROM consultas_medicas ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*ConsultaMedica{}
	for rows.Next() {
		c, err := scanConsulta(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *consultaRepoPG) GetByID(ctx context.Context, id int64) (*ConsultaMedica, error) {
	c, err := scanConsulta(r.db.QueryRow(ctx, `SELECT `+consultaCols+` FROM consultas_medicas WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return c, nil
}

func (r *consultaRepoPG) Create(ctx context.Context, con *ConsultaMedica) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO consultas_medicas (cita_id, motivo, diagnostico, tratamiento, fecha_consulta)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at`,
		con.CitaID, con.Motivo, con.Diagnostico, con.Tratamiento, con.FechaConsulta).
		Scan(&con.ID, &con.CreatedAt, &con.UpdatedAt)
}

func (r *consultaRepoPG) Update(ctx context.Context, con *ConsultaMedica) error {
	err := r.db.QueryRow(ctx, `
		UPDATE consultas_medicas SET cita_id=$2, motivo=$3, diagnostico=$4,
			tratamiento=$5, fecha_consulta=$6, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		con.ID, con.CitaID, con.Motivo, con.Diagnostico, con.Tratamiento, con.FechaConsulta).
		Scan(&con.UpdatedAt)
	return notFoundOr(err)
}

func (r *consultaRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM consultas_medicas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
