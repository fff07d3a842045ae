package laboratorio

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

const laboratorioCols = `id, nombre, direccion, telefono, ciudad_id, created_at, updated_at`

type laboratorioRepoPG struct{ db queryable }

func NewLaboratorioRepoPG(pool *pgxpool.Pool) LaboratorioRepository {
	return &laboratorioRepoPG{db: pool}
}

func scanLaboratorio(row pgx.Row) (*Laboratorio, error) {
	var l Laboratorio
	err := row.Scan(&l.ID, &l.Nombre, &l.Direccion, &l.Telefono, &l.CiudadID, &l.CreatedAt, &l.UpdatedAt)
	return &l, err
}

func (r *laboratorioRepoPG) List(ctx context.Context) ([]*Laboratorio, error) {
	rows, err := r.db.Query(ctx, `SELECT `+laboratorioCols+` FROM laboratorios ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Laboratorio{}
	for rows.Next() {
		l, err := scanLaboratorio(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (r *laboratorioRepoPG) GetByID(ctx context.Context, id int64) (*Laboratorio, error) {
	l, err := scanLaboratorio(r.db.QueryRow(ctx, `SELECT `+laboratorioCols+` FROM laboratorios WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return l, nil
}

func (r *laboratorioRepoPG) Create(ctx context.Context, l *Laboratorio) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO laboratorios (nombre, direccion, telefono, ciudad_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at, updated_at`,
		l.Nombre, l.Direccion, l.Telefono, l.CiudadID).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *laboratorioRepoPG) Update(ctx context.Context, l *Laboratorio) error {
	err := r.db.QueryRow(ctx, `
		UPDATE laboratorios SET nombre=$2, direccion=$3, telefono=$4, ciudad_id=$5, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		l.ID, l.Nombre, l.Direccion, l.Telefono, l.CiudadID).
		Scan(&l.UpdatedAt)
	return notFoundOr(err)
}

func (r *laboratorioRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM laboratorios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const examenCols = `id, laboratorio_id, nombre, descripcion, precio, created_at, updated_at`

type examenRepoPG struct{ db queryable }

func NewExamenMedicoRepoPG(pool *pgxpool.Pool) ExamenMedicoRepository {
	return &examenRepoPG{db: pool}
}

func scanExamen(row pgx.Row) (*ExamenMedico, error) {
	var e ExamenMedico
	err := row.Scan(&e.ID, &e.LaboratorioID, &e.Nombre, &e.Descripcion, &e.Precio, &e.CreatedAt, &e.UpdatedAt)
	return &e, err
}

func (r *examenRepoPG) List(ctx context.Context) ([]*ExamenMedico, error) {
	rows, err := r.db.Query(ctx, `SELECT `+examenCols+` FROM examenes_medicos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*ExamenMedico{}
	for rows.Next() {
		e, err := scanExamen(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *examenRepoPG) GetByID(ctx context.Context, id int64) (*ExamenMedico, error) {
	e, err := scanExamen(r.db.QueryRow(ctx, `SELECT `+examenCols+` FROM examenes_medicos WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return e, nil
}

func (r *examenRepoPG) Create(ctx context.Context, e *ExamenMedico) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO examenes_medicos (laboratorio_id, nombre, descripcion, precio)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at, updated_at`,
		e.LaboratorioID, e.Nombre, e.Descripcion, e.Precio).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *examenRepoPG) Update(ctx context.Context, e *ExamenMedico) error {
	err := r.db.QueryRow(ctx, `
		UPDATE examenes_medicos SET laboratorio_id=$2, nombre=$3, descripcion=$4, precio=$5, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		e.ID, e.LaboratorioID, e.Nombre, e.Descripcion, e.Precio).
		Scan(&e.UpdatedAt)
	return notFoundOr(err)
}

func (r *examenRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM examenes_medicos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const ordenCols = `id, consulta_medica_id, examen_medico_id, laboratorio_id,
	to_char(fecha_orden, 'YYYY-MM-DD'), estado, created_at, updated_at`

type ordenRepoPG struct{ db queryable }

func NewOrdenExamenRepoPG(pool *pgxpool.Pool) OrdenExamenRepository {
	return &ordenRepoPG{db: pool}
}

func scanOrden(row pgx.Row) (*OrdenExamen, error) {
	var o OrdenExamen
	err := row.Scan(&o.ID, &o.ConsultaMedicaID, &o.ExamenMedicoID, &o.LaboratorioID,
		&o.FechaOrden, &o.Estado, &o.CreatedAt, &o.UpdatedAt)
	return &o, err
}

func (r *ordenRepoPG) List(ctx context.Context) ([]*OrdenExamen, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ordenCols+` FROM ordenes_examenes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*OrdenExamen{}
	for rows.Next() {
		o, err := scanOrden(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

func (r *ordenRepoPG) GetByID(ctx context.Context, id int64) (*OrdenExamen, error) {
	o, err := scanOrden(r.db.QueryRow(ctx, `SELECT `+ordenCols+` FROM ordenes_examenes WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return o, nil
}

func (r *ordenRepoPG) Create(ctx context.Context, o *OrdenExamen) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO ordenes_examenes (consulta_medica_id, examen_medico_id, laboratorio_id, fecha_orden, estado)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at`,
		o.ConsultaMedicaID, o.ExamenMedicoID, o.LaboratorioID, o.FechaOrden, o.Estado).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *ordenRepoPG) Update(ctx context.Context, o *OrdenExamen) error {
	err := r.db.QueryRow(ctx, `
		UPDATE ordenes_examenes SET consulta_medica_id=$2, examen_medico_id=$3,
			laboratorio_id=$4, fecha_orden=$5, estado=$6, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		o.ID, o.ConsultaMedicaID, o.ExamenMedicoID, o.LaboratorioID, o.FechaOrden, o.Estado).
		Scan(&o.UpdatedAt)
	return notFoundOr(err)
}

func (r *ordenRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ordenes_examenes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
