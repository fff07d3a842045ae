package directorio

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

const medicoCols = `id, nombre, documento, telefono, email, especialidad_id, ciudad_id, created_at, updated_at`

type medicoRepoPG struct{ db queryable }

func NewMedicoRepoPG(pool *pgxpool.Pool) MedicoRepository {
	return &medicoRepoPG{db: pool}
}

func scanMedico(row pgx.Row) (*Medico, error) {
	var m Medico
	err := row.Scan(&m.ID, &m.Nombre, &m.Documento, &m.Telefono, &m.Email,
		&m.EspecialidadID, &m.CiudadID, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *medicoRepoPG) List(ctx context.Context) ([]*Medico, error) {
	rows, err := r.db.Query(ctx, `SELECT `+medicoCols+` FROM medicos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Medico{}
	for rows.Next() {
		m, err := scanMedico(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *medicoRepoPG) GetByID(ctx context.Context, id int64) (*Medico, error) {
	m, err := scanMedico(r.db.QueryRow(ctx, `SELECT `+medicoCols+` FROM medicos WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return m, nil
}

func (r *medicoRepoPG) Create(ctx context.Context, m *Medico) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO medicos (nombre, documento, telefono, email, especialidad_id, ciudad_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at`,
		m.Nombre, m.Documento, m.Telefono, m.Email, m.EspecialidadID, m.CiudadID).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *medicoRepoPG) Update(ctx context.Context, m *Medico) error {
	err := r.db.QueryRow(ctx, `
		UPDATE medicos SET nombre=$2, documento=$3, telefono=$4, email=$5,
			especialidad_id=$6, ciudad_id=$7, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		m.ID, m.Nombre, m.Documento, m.Telefono, m.Email, m.EspecialidadID, m.CiudadID).
		Scan(&m.UpdatedAt)
	return notFoundOr(err)
}

func (r *medicoRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM medicos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const consultorioCols = `id, ciudad_id, nombre, direccion, telefono, created_at, updated_at`

type consultorioRepoPG struct{ db queryable }

func NewConsultorioRepoPG(pool *pgxpool.Pool) ConsultorioRepository {
	return &consultorioRepoPG{db: pool}
}

func scanConsultorio(row pgx.Row) (*Consultorio, error) {
	var c Consultorio
	err := row.Scan(&c.ID, &c.CiudadID, &c.Nombre, &c.Direccion, &c.Telefono, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *consultorioRepoPG) List(ctx context.Context) ([]*Consultorio, error) {
	rows, err := r.db.Query(ctx, `SELECT `+consultorioCols+` FROM consultorios ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Consultorio{}
	for rows.Next() {
		c, err := scanConsultorio(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *consultorioRepoPG) GetByID(ctx context.Context, id int64) (*Consultorio, error) {
	c, err := scanConsultorio(r.db.QueryRow(ctx, `SELECT `+consultorioCols+` FROM consultorios WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return c, nil
}

func (r *consultorioRepoPG) Create(ctx context.Context, con *Consultorio) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO consultorios (ciudad_id, nombre, direccion, telefono)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at, updated_at`,
		con.CiudadID, con.Nombre, con.Direccion, con.Telefono).
		Scan(&con.ID, &con.CreatedAt, &con.UpdatedAt)
}

func (r *consultorioRepoPG) Update(ctx context.Context, con *Consultorio) error {
	err := r.db.QueryRow(ctx, `
		UPDATE consultorios SET ciudad_id=$2, nombre=$3, direccion=$4, telefono=$5, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		con.ID, con.CiudadID, con.Nombre, con.Direccion, con.Telefono).
		Scan(&con.UpdatedAt)
	return notFoundOr(err)
}

func (r *consultorioRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM consultorios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const horarioCols = `id, medico_id, consultorio_id, dia_semana,
	to_char(hora_inicio, 'HH24:MI'), to_char(hora_fin, 'HH24:MI'), created_at, updated_at`

type horarioRepoPG struct{ db queryable }

func NewHorarioRepoPG(pool *pgxpool.Pool) HorarioRepository {
	return &horarioRepoPG{db: pool}
}

func scanHorario(row pgx.Row) (*Horario, error) {
	var h Horario
	err := row.Scan(&h.ID, &h.MedicoID, &h.ConsultorioID, &h.DiaSemana,
		&h.HoraInicio, &h.HoraFin, &h.CreatedAt, &h.UpdatedAt)
	return &h, err
}

func (r *horarioRepoPG) List(ctx context.Context) ([]*Horario, error) {
	rows, err := r.db.Query(ctx, `SELECT `+horarioCols+` FROM horarios ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Horario{}
	for rows.Next() {
		h, err := scanHorario(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

func (r *horarioRepoPG) GetByID(ctx context.Context, id int64) (*Horario, error) {
	h, err := scanHorario(r.db.QueryRow(ctx, `SELECT `+horarioCols+` FROM horarios WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return h, nil
}

func (r *horarioRepoPG) Create(ctx context.Context, hor *Horario) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO horarios (medico_id, consultorio_id, dia_semana, hora_inicio, hora_fin)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at`,
		hor.MedicoID, hor.ConsultorioID, hor.DiaSemana, hor.HoraInicio, hor.HoraFin).
		Scan(&hor.ID, &hor.CreatedAt, &hor.UpdatedAt)
}

func (r *horarioRepoPG) Update(ctx context.Context, hor *Horario) error {
	err := r.db.QueryRow(ctx, `
		UPDATE horarios SET medico_id=$2, consultorio_id=$3, dia_semana=$4,
			hora_inicio=$5, hora_fin=$6, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		hor.ID, hor.MedicoID, hor.ConsultorioID, hor.DiaSemana, hor.HoraInicio, hor.HoraFin).
		Scan(&hor.UpdatedAt)
	return notFoundOr(err)
}

func (r *horarioRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM horarios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
