package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and applies the
// idempotent schema migration. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey and can be mapped to 409s.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates the schema. Every statement is idempotent
// (CREATE ... IF NOT EXISTS / OR REPLACE), and nothing here ever drops or
// rewrites tables it does not own, so re-running on an existing database is a
// no-op.
func RunMigrations(db *gorm.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS empresas (
			id SERIAL PRIMARY KEY,
			nombre VARCHAR(255) NOT NULL,
			telefono VARCHAR(20),
			url_empresa TEXT,
			url_logo TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS clientes (
			id SERIAL PRIMARY KEY,
			nombre VARCHAR(255) NOT NULL,
			empresa_nombre VARCHAR(200),
			telefono VARCHAR(20) NOT NULL,
			email VARCHAR(100) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS jefes_proyectos (
			id SERIAL PRIMARY KEY,
			nombre VARCHAR(255) NOT NULL,
			telefono VARCHAR(20),
			email VARCHAR(100) NOT NULL,
			cargo VARCHAR(100),
			url_foto_jefe TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS informacion (
			id SERIAL PRIMARY KEY,
			titulo TEXT DEFAULT NULL,
			icono_url VARCHAR(255) DEFAULT NULL,
			contenido TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS contenido_presupuesto (
			id SERIAL PRIMARY KEY,
			nombre VARCHAR(255) DEFAULT NULL,
			titulo VARCHAR(255),
			contenido TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS presupuestos (
			id SERIAL PRIMARY KEY,
			nombre_presupuesto VARCHAR(255) NOT NULL,
			descripcion_presupuesto TEXT,
			cliente_id INT NOT NULL REFERENCES clientes(id) ON DELETE CASCADE,
			empresa_id INT NOT NULL REFERENCES empresas(id) ON DELETE CASCADE,
			jefe_proyecto_id INT REFERENCES jefes_proyectos(id) ON DELETE SET NULL,
			fecha DATE NOT NULL,
			url_presupuesto VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS presupuesto_contenido (
			id SERIAL PRIMARY KEY,
			presupuesto_id INT NOT NULL REFERENCES presupuestos(id) ON DELETE CASCADE,
			contenido_presupuesto_id INT NOT NULL REFERENCES contenido_presupuesto(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS presupuesto_informacion (
			presupuesto_id INT NOT NULL REFERENCES presupuestos(id) ON DELETE CASCADE,
			informacion_id INT NOT NULL REFERENCES informacion(id) ON DELETE CASCADE,
			PRIMARY KEY (presupuesto_id, informacion_id)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			role VARCHAR(50) NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			name VARCHAR(250),
			password VARCHAR(100),
			company VARCHAR(100),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		// updated_at refresh trigger, shared by every non-junction table
		`CREATE OR REPLACE FUNCTION update_updated_at_column()
		RETURNS TRIGGER AS $$
		BEGIN
			NEW.updated_at = NOW();
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
	}

	triggerTables := []string{
		"empresas", "clientes", "jefes_proyectos", "informacion",
		"contenido_presupuesto", "presupuestos", "users",
	}
	for _, t := range triggerTables {
		stmts = append(stmts, fmt.Sprintf(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'set_updated_at' AND tgrelid = '%s'::regclass) THEN
				CREATE TRIGGER set_updated_at
				BEFORE UPDATE ON %s
				FOR EACH ROW
				EXECUTE PROCEDURE update_updated_at_column();
			END IF;
		END $$`, t, t))
	}

	for _, sql := range stmts {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("migration %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
