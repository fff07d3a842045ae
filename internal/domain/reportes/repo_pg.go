package reportes

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type repoPG struct{ db queryable }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{db: pool}
}

func (r *repoPG) CitasPorPaciente(ctx context.Context, pacienteID int64) ([]*CitaConDetalle, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.paciente_id, to_char(c.fecha, 'YYYY-MM-DD'), to_char(c.hora, 'HH24:MI'), c.estado,
			m.id, m.nombre, e.id, e.nombre
		FROM citas c
		JOIN medicos m ON m.id = c.medico_id
		JOIN especialidades e ON e.id = c.especialidad_id
		WHERE c.paciente_id = $1
		ORDER BY c.id`, pacienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*CitaConDetalle{}
	for rows.Next() {
		var c CitaConDetalle
		if err := rows.Scan(&c.ID, &c.PacienteID, &c.Fecha, &c.Hora, &c.Estado,
			&c.Medico.ID, &c.Medico.Nombre, &c.Especialidad.ID, &c.Especialidad.Nombre); err != nil {
			return nil, err
		}
		items = append(items, &c)
	}
	return items, rows.Err()
}

func (r *repoPG) HistorialPaciente(ctx context.Context, pacienteID int64) (*HistorialPaciente, error) {
	var h HistorialPaciente
	err := r.db.QueryRow(ctx,
		`SELECT id, nombre, documento FROM pacientes WHERE id = $1`, pacienteID).
		Scan(&h.ID, &h.Nombre, &h.Documento)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var hist HistoriaResumen
	err = r.db.QueryRow(ctx, `
		SELECT id, antecedentes, alergias, observaciones
		FROM historias_clinicas WHERE paciente_id = $1
		ORDER BY id LIMIT 1`, pacienteID).
		Scan(&hist.ID, &hist.Antecedentes, &hist.Alergias, &hist.Observaciones)
	switch {
	case err == nil:
		h.HistoriaClinica = &hist
	case errors.Is(err, pgx.ErrNoRows):
		// paciente sin historia registrada
	default:
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT cm.id, cm.cita_id, cm.motivo, cm.diagnostico, cm.tratamiento,
			to_char(cm.fecha_consulta, 'YYYY-MM-DD')
		FROM consultas_medicas cm
		JOIN citas c ON c.id = cm.cita_id
		WHERE c.paciente_id = $1
		ORDER BY cm.id`, pacienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	h.ConsultasMedicas = []*ConsultaResumen{}
	for rows.Next() {
		var cm ConsultaResumen
		if err := rows.Scan(&cm.ID, &cm.CitaID, &cm.Motivo, &cm.Diagnostico,
			&cm.Tratamiento, &cm.FechaConsulta); err != nil {
			return nil, err
		}
		h.ConsultasMedicas = append(h.ConsultasMedicas, &cm)
	}
	return &h, rows.Err()
}

func (r *repoPG) RecetasPorConsulta(ctx context.Context, consultaID int64) ([]*RecetaConMedicamento, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rm.id, rm.consulta_medica_id, rm.dosis, rm.frecuencia, rm.duracion,
			md.id, md.nombre, md.presentacion
		FROM recetas_medicas rm
		JOIN medicamentos md ON md.id = rm.medicamento_id
		WHERE rm.consulta_medica_id = $1
		ORDER BY rm.id`, consultaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*RecetaConMedicamento{}
	for rows.Next() {
		var rec RecetaConMedicamento
		if err := rows.Scan(&rec.ID, &rec.ConsultaMedicaID, &rec.Dosis, &rec.Frecuencia, &rec.Duracion,
			&rec.Medicamento.ID, &rec.Medicamento.Nombre, &rec.Medicamento.Presentacion); err != nil {
			return nil, err
		}
		items = append(items, &rec)
	}
	return items, rows.Err()
}

func (r *repoPG) PagosPorPaciente(ctx context.Context, pacienteID int64) ([]*PagoConFactura, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.factura_id, p.monto, to_char(p.fecha_pago, 'YYYY-MM-DD'), p.metodo_pago,
			f.id, f.paciente_id, f.cita_id, f.monto_total, to_char(f.fecha_emision, 'YYYY-MM-DD'), f.estado
		FROM pagos p
		JOIN facturas f ON f.id = p.factura_id
		WHERE f.paciente_id = $1
		ORDER BY p.id`, pacienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*PagoConFactura{}
	for rows.Next() {
		var pg PagoConFactura
		if err := rows.Scan(&pg.ID, &pg.FacturaID, &pg.Monto, &pg.FechaPago, &pg.MetodoPago,
			&pg.Factura.ID, &pg.Factura.PacienteID, &pg.Factura.CitaID, &pg.Factura.MontoTotal,
			&pg.Factura.FechaEmision, &pg.Factura.Estado); err != nil {
			return nil, err
		}
		items = append(items, &pg)
	}
	return items, rows.Err()
}

func (r *repoPG) PacientesPorAseguradora(ctx context.Context, aseguradoraID int64) (*AseguradoraConPacientes, error) {
	var a AseguradoraConPacientes
	err := r.db.QueryRow(ctx,
		`SELECT id, nombre, nit FROM aseguradoras WHERE id = $1`, aseguradoraID).
		Scan(&a.ID, &a.Nombre, &a.NIT)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT p.id, p.nombre, p.documento
		FROM pacientes p
		JOIN afiliaciones af ON af.paciente_id = p.id
		WHERE af.aseguradora_id = $1
		ORDER BY p.id`, aseguradoraID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	a.Pacientes = []*PacienteResumen{}
	for rows.Next() {
		var p PacienteResumen
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Documento); err != nil {
			return nil, err
		}
		a.Pacientes = append(a.Pacientes, &p)
	}
	return &a, rows.Err()
}
