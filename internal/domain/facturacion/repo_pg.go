package facturacion

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

const facturaCols = `id, paciente_id, cita_id, monto_total,
	to_char(fecha_emision, 'YYYY-MM-DD'), estado, created_at, updated_at`

type facturaRepoPG struct{ db queryable }

func NewFacturaRepoPG(pool *pgxpool.Pool) FacturaRepository {
	return &facturaRepoPG{db: pool}
}

func scanFactura(row pgx.Row) (*Factura, error) {
	var f Factura
	err := row.Scan(&f.ID, &f.PacienteID, &f.CitaID, &f.MontoTotal,
		&f.FechaEmision, &f.Estado, &f.CreatedAt, &f.UpdatedAt)
	return &f, err
}

func (r *facturaRepoPG) List(ctx context.Context) ([]*Factura, error) {
	rows, err := r.db.Query(ctx, `SELECT `+facturaCols+` FROM facturas ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Factura{}
	for rows.Next() {
		f, err := scanFactura(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

func (r *facturaRepoPG) GetByID(ctx context.Context, id int64) (*Factura, error) {
	f, err := scanFactura(r.db.QueryRow(ctx, `SELECT `+facturaCols+` FROM facturas WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return f, nil
}

func (r *facturaRepoPG) Create(ctx context.Context, f *Factura) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO facturas (paciente_id, cita_id, monto_total, fecha_emision, estado)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at`,
		f.PacienteID, f.CitaID, f.MontoTotal, f.FechaEmision, f.Estado).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *facturaRepoPG) Update(ctx context.Context, f *Factura) error {
	err := r.db.QueryRow(ctx, `
		UPDATE facturas SET paciente_id=$2, cita_id=$3, monto_total=$4,
			fecha_emision=$5, estado=$6, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		f.ID, f.PacienteID, f.CitaID, f.MontoTotal, f.FechaEmision, f.Estado).
		Scan(&f.UpdatedAt)
	return notFoundOr(err)
}

func (r *facturaRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM facturas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const pagoCols = `id, factura_id, monto, to_char(fecha_pago, 'YYYY-MM-DD'), metodo_pago, created_at, updated_at`

type pagoRepoPG struct{ db queryable }

func NewPagoRepoPG(pool *pgxpool.Pool) PagoRepository {
	return &pagoRepoPG{db: pool}
}

func scanPago(row pgx.Row) (*Pago, error) {
	var p Pago
	err := row.Scan(&p.ID, &p.FacturaID, &p.Monto, &p.FechaPago, &p.MetodoPago, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *pagoRepoPG) List(ctx context.Context) ([]*Pago, error) {
	rows, err := r.db.Query(ctx, `SELECT `+pagoCols+` FROM pagos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Pago{}
	for rows.Next() {
		p, err := scanPago(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *pagoRepoPG) GetByID(ctx context.Context, id int64) (*Pago, error) {
	p, err := scanPago(r.db.QueryRow(ctx, `SELECT `+pagoCols+` FROM pagos WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return p, nil
}

func (r *pagoRepoPG) Create(ctx context.Context, p *Pago) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO pagos (factura_id, monto, fecha_pago, metodo_pago)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at, updated_at`,
		p.FacturaID, p.Monto, p.FechaPago, p.MetodoPago).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *pagoRepoPG) Update(ctx context.Context, p *Pago) error {
	err := r.db.QueryRow(ctx, `
		UPDATE pagos SET factura_id=$2, monto=$3, fecha_pago=$4, metodo_pago=$5, updated_at=now()
		WHERE id = $1 RETURNING updated_at`,
		p.ID, p.FacturaID, p.Monto, p.FechaPago, p.MetodoPago).
		Scan(&p.UpdatedAt)
	return notFoundOr(err)
}

func (r *pagoRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
