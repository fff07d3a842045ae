// Package seed loads a small, deterministic test fixture: three cities,
// five specialties, three doctors and patients with one pending cita each,
// plus the downstream clinical and billing rows that hang off them.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/epsalud/eps-api/internal/platform/auth"
)

type Seeder struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func New(pool *pgxpool.Pool, logger zerolog.Logger) *Seeder {
	return &Seeder{pool: pool, logger: logger}
}

// Run wipes the domain tables and reloads the fixture. It is meant for
// development and test databases only.
func (s *Seeder) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"limpiar tablas", s.truncate},
		{"ciudades", s.ciudades},
		{"especialidades", s.especialidades},
		{"consultorios", s.consultorios},
		{"medicos", s.medicos},
		{"pacientes", s.pacientes},
		{"citas", s.citas},
		{"aseguradoras", s.aseguradoras},
		{"afiliaciones", s.afiliaciones},
		{"historias clinicas", s.historiasClinicas},
		{"consultas medicas", s.consultasMedicas},
		{"medicamentos", s.medicamentos},
		{"recetas medicas", s.recetasMedicas},
		{"laboratorios", s.laboratorios},
		{"examenes medicos", s.examenesMedicos},
		{"ordenes de examen", s.ordenesExamenes},
		{"facturas", s.facturas},
		{"pagos", s.pagos},
		{"horarios", s.horarios},
		{"usuarios", s.usuarios},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		s.logger.Info().Str("paso", step.name).Msg("seed aplicado")
	}
	return nil
}

func (s *Seeder) truncate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		TRUNCATE TABLE access_tokens, users, pagos, facturas, ordenes_examenes,
			examenes_medicos, laboratorios, recetas_medicas, medicamentos,
			consultas_medicas, historias_clinicas, afiliaciones, aseguradoras,
			citas, horarios, pacientes, medicos, consultorios, especialidades, ciudades
		RESTART IDENTITY CASCADE`)
	return err
}

func (s *Seeder) ciudades(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO ciudades (nombre) VALUES
		('Bogotá'), ('Medellín'), ('Cali'), ('Barranquilla'), ('Cartagena')`)
	return err
}

func (s *Seeder) especialidades(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO especialidades (nombre) VALUES
		('Medicina General'), ('Cardiología'), ('Dermatología'), ('Ginecología'), ('Pediatría')`)
	return err
}

func (s *Seeder) consultorios(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO consultorios (nombre, ciudad_id) VALUES
		('Consultorio 101', 1), ('Consultorio 102', 1),
		('Consultorio 201', 2), ('Consultorio 202', 2), ('Consultorio 301', 3)`)
	return err
}

func (s *Seeder) medicos(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO medicos (nombre, documento, telefono, email, especialidad_id, ciudad_id) VALUES
		('Dr. Juan Pérez', '12345678', '3001234567', 'juan.perez@hospital.com', 1, 1),
		('Dra. María García', '87654321', '3007654321', 'maria.garcia@hospital.com', 2, 1),
		('Dr. Carlos López', '11223344', '3001122334', 'carlos.lopez@hospital.com', 3, 2)`)
	return err
}

func (s *Seeder) pacientes(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO pacientes (nombre, documento, telefono, email, direccion, ciudad_id) VALUES
		('Ana Rodríguez', '98765432', '3009876543', 'ana.rodriguez@email.com', 'Calle 123 #45-67', 1),
		('Luis Martínez', '55667788', '3005566778', 'luis.martinez@email.com', 'Carrera 78 #90-12', 2),
		('Carmen Silva', '33445566', '3003344556', 'carmen.silva@email.com', 'Avenida 56 #78-90', 3)`)
	return err
}

func (s *Seeder) citas(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO citas (paciente_id, especialidad_id, medico_id, consultorio_id, fecha, hora, estado) VALUES
		(1, 1, 1, 1, '2025-01-15', '09:00', 'pendiente'),
		(2, 2, 2, 2, '2025-01-16', '10:00', 'pendiente'),
		(3, 3, 3, 3, '2025-01-17', '11:00', 'pendiente')`)
	return err
}

func (s *Seeder) aseguradoras(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO aseguradoras (nombre, nit, direccion, telefono, ciudad_id) VALUES
		('EPS Sanitas', '900123456-7', 'Calle 100 #15-20', '6011234567', 1),
		('EPS Sura', '900765432-1', 'Carrera 50 #25-30', '6017654321', 2),
		('EPS Famisanar', '900987654-3', 'Avenida 68 #40-50', '6019876543', 3)`)
	return err
}

func (s *Seeder) afiliaciones(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO afiliaciones (paciente_id, aseguradora_id, fecha_inicio, fecha_fin, estado) VALUES
		(1, 1, '2024-01-01', '2025-12-31', 'activo'),
		(2, 2, '2024-01-01', '2025-12-31', 'activo'),
		(3, 3, '2024-01-01', '2025-12-31', 'activo')`)
	return err
}

func (s *Seeder) historiasClinicas(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO historias_clinicas (paciente_id, antecedentes, alergias, observaciones) VALUES
		(1, NULL, NULL, 'Paciente sin antecedentes importantes'),
		(2, 'Antecedentes cardíacos', NULL, 'Paciente con antecedentes cardíacos'),
		(3, NULL, 'Alergia a penicilina', 'Paciente con alergias a medicamentos')`)
	return err
}

func (s *Seeder) consultasMedicas(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO consultas_medicas (cita_id, motivo, diagnostico, tratamiento, fecha_consulta) VALUES
		(1, 'Dolor de cabeza frecuente', 'Cefalea tensional', 'Analgésicos y relajación', '2025-01-15'),
		(2, 'Dolor en el pecho', 'Ansiedad', 'Terapia de relajación', '2025-01-16'),
		(3, 'Erupción en la piel', 'Dermatitis de contacto', 'Cremas tópicas', '2025-01-17')`)
	return err
}

func (s *Seeder) medicamentos(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO medicamentos (nombre, descripcion, presentacion, stock, precio) VALUES
		('Paracetamol', 'Analgésico y antipirético', 'Tableta 500mg', 100, 350.00),
		('Ibuprofeno', 'Antiinflamatorio no esteroideo', 'Tableta 400mg', 75, 800.00),
		('Amoxicilina', 'Antibiótico de amplio espectro', 'Cápsula 500mg', 50, 1200.00)`)
	return err
}

func (s *Seeder) recetasMedicas(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO recetas_medicas (consulta_medica_id, medicamento_id, dosis, frecuencia, duracion) VALUES
		(1, 1, '500mg', 'Cada 8 horas', '5 días'),
		(2, 2, '400mg', 'Cada 12 horas', '7 días'),
		(3, 3, '500mg', 'Cada 8 horas', '10 días')`)
	return err
}

func (s *Seeder) laboratorios(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO laboratorios (nombre, direccion, telefono, ciudad_id) VALUES
		('Laboratorio Central', 'Calle 80 #15-25', '6012345678', 1),
		('Laboratorio Norte', 'Carrera 60 #30-40', '6018765432', 2),
		('Laboratorio Sur', 'Avenida 40 #50-60', '6014567890', 3)`)
	return err
}

func (s *Seeder) examenesMedicos(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO examenes_medicos (laboratorio_id, nombre, descripcion, precio) VALUES
		(1, 'Hemograma Completo', 'Análisis de sangre completo', 25000.00),
		(2, 'Radiografía de Tórax', 'Imagen del tórax', 45000.00),
		(3, 'Electrocardiograma', 'Registro de actividad cardíaca', 60000.00)`)
	return err
}

func (s *Seeder) ordenesExamenes(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO ordenes_examenes (consulta_medica_id, examen_medico_id, laboratorio_id, fecha_orden, estado) VALUES
		(1, 1, 1, '2025-01-15', 'pendiente'),
		(2, 3, 2, '2025-01-16', 'pendiente'),
		(3, 2, 3, '2025-01-17', 'pendiente')`)
	return err
}

func (s *Seeder) facturas(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO facturas (paciente_id, cita_id, monto_total, fecha_emision, estado) VALUES
		(1, 1, 50000.00, '2025-01-15', 'pagada'),
		(2, 2, 75000.00, '2025-01-16', 'pendiente'),
		(3, 3, 60000.00, '2025-01-17', 'pendiente')`)
	return err
}

func (s *Seeder) pagos(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO pagos (factura_id, monto, fecha_pago, metodo_pago) VALUES
		(1, 50000.00, '2025-01-15', 'tarjeta'),
		(2, 75000.00, '2025-01-16', 'efectivo'),
		(3, 60000.00, '2025-01-17', 'transferencia')`)
	return err
}

func (s *Seeder) horarios(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO horarios (medico_id, consultorio_id, dia_semana, hora_inicio, hora_fin) VALUES
		(1, 1, 'lunes', '08:00', '12:00'),
		(2, 2, 'martes', '09:00', '13:00'),
		(3, 3, 'miercoles', '10:00', '14:00')`)
	return err
}

func (s *Seeder) usuarios(ctx context.Context) error {
	hash, err := auth.HashPassword("superadmin123")
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO users (name, email, password, role) VALUES
		('Super Admin', 'superadmin@epsalud.local', $1, 'superadmin')`, hash)
	return err
}
